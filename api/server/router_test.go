// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type testHandler struct{ called bool }

func (t *testHandler) ServeHTTP(_ http.ResponseWriter, _ *http.Request) {
	t.called = true
}

func TestRouter(t *testing.T) {
	require := require.New(t)

	r := newRouter()

	handler1 := &testHandler{}
	require.NoError(r.AddRouter("/ext/1", "", handler1))
	err := r.AddRouter("/ext/1", "", handler1)
	require.ErrorIs(err, errAlreadyExists)

	handler, err := r.GetHandler("/ext/1", "")
	require.NoError(err)
	require.Equal(handler1, handler)

	_, err = r.GetHandler("/ext/2", "")
	require.ErrorIs(err, errUnknownBaseURL)

	_, err = r.GetHandler("/ext/1", "/sub")
	require.ErrorIs(err, errUnknownEndpoint)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ext/1", nil))
	require.True(handler1.called)
}

func TestRouterMethods(t *testing.T) {
	require := require.New(t)

	r := newRouter()
	handler := &testHandler{}
	require.NoError(r.AddRouter("", "/join", handler, http.MethodPost))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/join", nil))
	require.Equal(http.StatusMethodNotAllowed, w.Code)
	require.False(handler.called)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/join", nil))
	require.True(handler.called)
}
