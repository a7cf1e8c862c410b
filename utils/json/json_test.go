// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Uint64(42))
	require.NoError(err)
	require.Equal(`"42"`, string(b))

	for _, encoded := range []string{`"42"`, `42`} {
		var u Uint64
		require.NoError(json.Unmarshal([]byte(encoded), &u))
		require.Equal(Uint64(42), u)
	}

	u := Uint64(7)
	require.NoError(u.UnmarshalJSON([]byte(Null)))
	require.Equal(Uint64(7), u)

	require.Error(json.Unmarshal([]byte(`"-1"`), &u))
}

type pingService struct{}

type PingReply struct {
	Pong bool `json:"pong"`
}

func (*pingService) GetPing(_ *http.Request, _ *struct{}, reply *PingReply) error {
	reply.Pong = true
	return nil
}

func TestCodecMethodCase(t *testing.T) {
	server := rpc.NewServer()
	server.RegisterCodec(NewCodec(), "application/json")
	require.NoError(t, server.RegisterService(&pingService{}, "ping"))

	for _, method := range []string{"ping.getPing", "ping.GetPing"} {
		t.Run(method, func(t *testing.T) {
			require := require.New(t)

			body, err := json2.EncodeClientRequest(method, struct{}{})
			require.NoError(err)

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)

			var reply PingReply
			require.NoError(json2.DecodeClientResponse(w.Body, &reply))
			require.True(reply.Pong)
		})
	}
}
