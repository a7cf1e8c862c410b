// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/version"
)

var contractAddress = common.HexToAddress("0x4D4a9e7D7Aa1f81B6aB6cAb3d0E2c0bc7F6EDd1b")

func newTestClient(t *testing.T) Client {
	require := require.New(t)

	handler, err := NewService(logging.NoLog{}, Parameters{
		Version: &version.Application{
			Name:  "whitelistd",
			Major: 1,
			Minor: 2,
			Patch: 3,
		},
		GitCommit:       "abc",
		NetworkName:     "rinkeby",
		ChainID:         4,
		ContractAddress: contractAddress,
	})
	require.NoError(err)

	mux := http.NewServeMux()
	mux.Handle("/ext/info", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestGetNodeVersion(t *testing.T) {
	require := require.New(t)

	c := newTestClient(t)
	reply, err := c.GetNodeVersion(context.Background())
	require.NoError(err)
	require.Equal("whitelistd/1.2.3", reply.Version)
	require.Equal("abc", reply.GitCommit)
}

func TestGetNetwork(t *testing.T) {
	require := require.New(t)

	c := newTestClient(t)
	reply, err := c.GetNetwork(context.Background())
	require.NoError(err)
	require.Equal("rinkeby", reply.NetworkName)
	require.Equal(uint64(4), uint64(reply.ChainID))
	require.Equal(contractAddress, reply.Contract)
}
