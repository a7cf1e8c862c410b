// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/wallet"
	"github.com/ava-labs/whitelist-dapp/whitelist"
)

const testChainID = 4

var accountAddress = common.HexToAddress("0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC")

type testEnv struct {
	connector  *wallet.MockConnector
	provider   *wallet.MockProvider
	signer     *wallet.MockSigner
	contract   *whitelist.MockContract
	controller *whitelist.Controller
	client     Client
}

func newTestEnv(t *testing.T, chainID int64) *testEnv {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	env := &testEnv{
		connector: wallet.NewMockConnector(ctrl),
		provider:  wallet.NewMockProvider(ctrl),
		signer:    wallet.NewMockSigner(ctrl),
		contract:  whitelist.NewMockContract(ctrl),
	}
	env.connector.EXPECT().Connect(gomock.Any()).Return(env.provider, nil).AnyTimes()
	env.connector.EXPECT().Close().AnyTimes()
	env.provider.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(chainID), nil).AnyTimes()
	env.provider.EXPECT().Signer(gomock.Any()).Return(env.signer, nil).AnyTimes()
	env.signer.EXPECT().Address().Return(accountAddress).AnyTimes()

	controller, err := whitelist.New(
		logging.NoLog{},
		whitelist.Config{ChainID: testChainID},
		func() wallet.Connector {
			return env.connector
		},
		func(common.Address, wallet.Provider) (whitelist.Contract, error) {
			return env.contract, nil
		},
		prometheus.NewRegistry(),
	)
	require.NoError(err)
	t.Cleanup(controller.Close)
	env.controller = controller

	handler, err := NewService(logging.NoLog{}, controller)
	require.NoError(err)

	mux := http.NewServeMux()
	mux.Handle("/ext/whitelist", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	env.client = NewClient(server.URL)
	return env
}

// connect connects the page of an account that hasn't joined yet.
func (env *testEnv) connect(t *testing.T) {
	env.contract.EXPECT().AddressWhitelisted(gomock.Any(), accountAddress).Return(false, nil)
	env.contract.EXPECT().GetNumAddressesWhitelisted(gomock.Any()).Return(uint8(42), nil)

	reply, err := env.client.ConnectWallet(context.Background(), true)
	require.NoError(t, err)
	require.Empty(t, reply.Error)
}

func TestGetState(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, testChainID)

	reply, err := env.client.GetState(context.Background())
	require.NoError(err)
	require.Equal(&StateReply{
		View:  whitelist.ViewConnect,
		Label: "Connect your Wallet",
	}, reply)
}

func TestConnectWallet(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, testChainID)
	env.contract.EXPECT().AddressWhitelisted(gomock.Any(), accountAddress).Return(false, nil)
	env.contract.EXPECT().GetNumAddressesWhitelisted(gomock.Any()).Return(uint8(42), nil)

	reply, err := env.client.ConnectWallet(context.Background(), true)
	require.NoError(err)
	require.Equal(&OperationReply{
		StateReply: StateReply{
			Connected: true,
			Count:     42,
			View:      whitelist.ViewJoin,
			Label:     "Join the Whitelist",
		},
	}, reply)
}

func TestConnectWalletWrongNetwork(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, 1)

	reply, err := env.client.ConnectWallet(context.Background(), false)
	require.NoError(err)
	require.False(reply.Connected)
	require.Equal(whitelist.ViewConnect, reply.View)
	require.Equal(whitelist.WrongNetworkAlert, reply.Alert)
	require.Contains(reply.Error, whitelist.ErrWrongNetwork.Error())

	// The alert is shown once.
	state, err := env.client.GetState(context.Background())
	require.NoError(err)
	require.Empty(state.Alert)
}

func TestJoin(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, testChainID)
	env.connect(t)
	env.signer.EXPECT().TransactOpts(gomock.Any()).Return(&bind.TransactOpts{}, nil)
	env.contract.EXPECT().AddAddressToWhitelist(gomock.Any()).Return(types.NewTx(&types.LegacyTx{}), nil)
	env.contract.EXPECT().GetNumAddressesWhitelisted(gomock.Any()).Return(uint8(43), nil)

	reply, err := env.client.Join(context.Background(), false)
	require.NoError(err)
	require.Empty(reply.Error)

	env.controller.Wait()
	state, err := env.client.GetState(context.Background())
	require.NoError(err)
	require.True(state.Joined)
	require.False(state.Loading)
	require.Equal(whitelist.ViewThanks, state.View)
	require.Equal("Thanks for joining the Whitelist!", state.Label)
	require.Equal(uint64(43), uint64(state.Count))
}

func TestJoinFailure(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, testChainID)
	env.connect(t)
	env.signer.EXPECT().TransactOpts(gomock.Any()).Return(&bind.TransactOpts{}, nil)
	env.contract.EXPECT().AddAddressToWhitelist(gomock.Any()).Return(nil, errors.New("execution reverted"))

	reply, err := env.client.Join(context.Background(), true)
	require.NoError(err)
	require.Contains(reply.Error, whitelist.ErrContractRevert.Error())
	require.True(reply.Loading)
	require.False(reply.Joined)
	require.Equal(uint64(42), uint64(reply.Count))
	require.Equal(whitelist.ViewLoading, reply.View)
	require.Equal("Loading ...", reply.Label)
}

func TestRefresh(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, testChainID)
	env.contract.EXPECT().AddressWhitelisted(gomock.Any(), accountAddress).Return(true, nil)
	env.contract.EXPECT().GetNumAddressesWhitelisted(gomock.Any()).Return(uint8(0), errors.New("connection refused"))

	reply, err := env.client.Refresh(context.Background())
	require.NoError(err)
	require.True(reply.Joined)
	require.Zero(reply.Count)
	require.Contains(reply.Error, whitelist.ErrRPCFailure.Error())
}
