// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

var _ rpc.Codec = (*Codec)(nil)

// NewCodec returns a JSON-RPC 2.0 codec that uppercases the first character of
// the method name, so "service.getState" is served by Service.GetState.
func NewCodec() *Codec {
	return &Codec{Codec: json2.NewCodec()}
}

type Codec struct {
	*json2.Codec
}

func (c *Codec) NewRequest(r *http.Request) rpc.CodecRequest {
	return &request{CodecRequest: c.Codec.NewRequest(r)}
}

type request struct {
	rpc.CodecRequest
}

func (r *request) Method() (string, error) {
	method, err := r.CodecRequest.Method()
	if err != nil {
		return method, err
	}
	class, function, ok := strings.Cut(method, ".")
	if !ok {
		return method, nil
	}

	firstRune, runeLen := utf8.DecodeRuneInString(function)
	if firstRune == utf8.RuneError {
		return method, nil
	}
	return fmt.Sprintf("%s.%c%s", class, unicode.ToUpper(firstRune), function[runeLen:]), nil
}
