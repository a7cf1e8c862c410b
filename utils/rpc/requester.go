// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/rpc/v2/json2"
)

const requestTimeout = 30 * time.Second

var (
	_ EndpointRequester = (*endpointRequester)(nil)

	errStatusCode = errors.New("received status code")

	defaultClient = &http.Client{Timeout: requestTimeout}
)

// EndpointRequester sends JSON-RPC 2.0 requests to one service. Errors
// returned by the service are *json2.Error.
type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params interface{}, reply interface{}, options ...Option) error
}

type endpointRequester struct {
	uri    *url.URL
	uriErr error
	base   string
	client *http.Client
}

// NewEndpointRequester returns a requester of the service registered as
// [base] at [uri]. A request for method "m" is sent as "[base].m".
func NewEndpointRequester(uri, base string) EndpointRequester {
	parsed, err := url.Parse(uri)
	return &endpointRequester{
		uri:    parsed,
		uriErr: err,
		base:   base,
		client: defaultClient,
	}
}

func (e *endpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
	options ...Option,
) error {
	if e.uriErr != nil {
		return e.uriErr
	}

	body, err := json2.EncodeClientRequest(e.base+"."+method, params)
	if err != nil {
		return fmt.Errorf("failed to encode %s params: %w", method, err)
	}

	ops := NewOptions(options)
	uri := *e.uri
	uri.RawQuery = ops.QueryParams().Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header = ops.Headers()
	request.Header.Set("Content-Type", "application/json")

	//nolint:bodyclose // body is closed via CleanlyCloseBody
	resp, err := e.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer CleanlyCloseBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", errStatusCode, resp.StatusCode)
	}
	return json2.DecodeClientResponse(resp.Body, reply)
}
