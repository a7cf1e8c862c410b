// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/stretchr/testify/require"

	cjson "github.com/ava-labs/whitelist-dapp/utils/json"
)

var errEcho = errors.New("nothing to echo")

type EchoArgs struct {
	Message string `json:"message"`
}

type EchoReply struct {
	Message string `json:"message"`
	Header  string `json:"header"`
	Query   string `json:"query"`
}

type echoService struct{}

func (*echoService) Echo(r *http.Request, args *EchoArgs, reply *EchoReply) error {
	if args.Message == "" {
		return errEcho
	}
	reply.Message = args.Message
	reply.Header = r.Header.Get("X-Test")
	reply.Query = r.URL.Query().Get("q")
	return nil
}

func newEchoServer(t *testing.T) *httptest.Server {
	server := rpc.NewServer()
	server.RegisterCodec(cjson.NewCodec(), "application/json")
	require.NoError(t, server.RegisterService(&echoService{}, "echo"))

	mux := http.NewServeMux()
	mux.Handle("/ext/echo", server)
	s := httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func TestSendRequest(t *testing.T) {
	require := require.New(t)

	s := newEchoServer(t)
	requester := NewEndpointRequester(s.URL+"/ext/echo", "echo")

	var reply EchoReply
	require.NoError(requester.SendRequest(
		context.Background(),
		"echo",
		&EchoArgs{Message: "hello"},
		&reply,
		WithHeader("X-Test", "header"),
		WithQueryParam("q", "query"),
	))
	require.Equal(EchoReply{
		Message: "hello",
		Header:  "header",
		Query:   "query",
	}, reply)
}

func TestSendRequestServiceError(t *testing.T) {
	require := require.New(t)

	s := newEchoServer(t)
	requester := NewEndpointRequester(s.URL+"/ext/echo", "echo")

	err := requester.SendRequest(context.Background(), "echo", &EchoArgs{}, &EchoReply{})
	var rpcErr *json2.Error
	require.ErrorAs(err, &rpcErr)
	require.Equal(errEcho.Error(), rpcErr.Message)
}

func TestSendRequestStatusCode(t *testing.T) {
	s := newEchoServer(t)
	requester := NewEndpointRequester(s.URL+"/ext/missing", "echo")

	err := requester.SendRequest(context.Background(), "echo", &EchoArgs{Message: "hello"}, &EchoReply{})
	require.ErrorIs(t, err, errStatusCode)
	require.ErrorContains(t, err, "404")
}

func TestSendRequestInvalidURI(t *testing.T) {
	requester := NewEndpointRequester("http://[::1", "echo")

	err := requester.SendRequest(context.Background(), "echo", &EchoArgs{Message: "hello"}, &EchoReply{})
	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
}

func TestSendRequestKeepsURI(t *testing.T) {
	require := require.New(t)

	s := newEchoServer(t)
	requester := NewEndpointRequester(s.URL+"/ext/echo", "echo")

	var reply EchoReply
	require.NoError(requester.SendRequest(context.Background(), "echo", &EchoArgs{Message: "a"}, &reply, WithQueryParam("q", "first")))
	require.Equal("first", reply.Query)

	reply = EchoReply{}
	require.NoError(requester.SendRequest(context.Background(), "echo", &EchoArgs{Message: "b"}, &reply))
	require.Empty(reply.Query)
}

func TestSendRequestCancelled(t *testing.T) {
	s := newEchoServer(t)
	requester := NewEndpointRequester(s.URL+"/ext/echo", "echo")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := requester.SendRequest(ctx, "echo", &EchoArgs{Message: "hello"}, &EchoReply{})
	require.ErrorIs(t, err, context.Canceled)
}
