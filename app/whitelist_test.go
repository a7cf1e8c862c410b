// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/whitelist-dapp/api/health"
	"github.com/ava-labs/whitelist-dapp/api/info"
	"github.com/ava-labs/whitelist-dapp/config"
	"github.com/ava-labs/whitelist-dapp/utils/constants"
	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/version"
	"github.com/ava-labs/whitelist-dapp/wallet"
	"github.com/ava-labs/whitelist-dapp/whitelist"
)

func testConfig() config.Config {
	// Nothing answers on the RPC endpoint, so the wallet never connects.
	rpcServer := httptest.NewServer(http.NotFoundHandler())
	rpcServer.Close()

	return config.Config{
		HTTPConfig: config.HTTPConfig{
			Host:            "127.0.0.1",
			Port:            0,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: time.Second,
		},
		NetworkName: constants.RinkebyName,
		WalletConfig: wallet.Options{
			Network:  constants.RinkebyName,
			Endpoint: rpcServer.URL,
		},
		WhitelistConfig: whitelist.Config{
			ChainID:         constants.RinkebyID,
			ContractAddress: common.HexToAddress("0x4D4a9e7D7Aa1f81B6aB6cAb3d0E2c0bc7F6EDd1b"),
			WaitForReceipt:  true,
		},
		LoggingConfig: logging.Config{
			DisableWriterDisplaying: true,
			LogLevel:                logging.Off,
			DisplayLevel:            logging.Off,
		},
	}
}

func TestAppServesAndStops(t *testing.T) {
	require := require.New(t)

	a, err := New(testConfig())
	require.NoError(err)
	require.NoError(a.Start())

	uri := "http://" + a.(*app).listener.Addr().String()

	infoClient := info.NewClient(uri)
	versionReply, err := infoClient.GetNodeVersion(context.Background())
	require.NoError(err)
	require.Equal(version.Current.String(), versionReply.Version)

	networkReply, err := infoClient.GetNetwork(context.Background())
	require.NoError(err)
	require.Equal(constants.RinkebyName, networkReply.NetworkName)
	require.Equal(constants.RinkebyID, uint64(networkReply.ChainID))

	require.Eventually(func() bool {
		res, err := http.Get(uri + "/ext/health" + health.Liveness.Endpoint())
		if err != nil {
			return false
		}
		_ = res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	res, err := http.Get(uri + "/ext/health" + health.Readiness.Endpoint())
	require.NoError(err)
	require.NoError(res.Body.Close())
	require.Equal(http.StatusServiceUnavailable, res.StatusCode)

	res, err = http.Post(uri+"/", "text/plain", nil)
	require.NoError(err)
	require.NoError(res.Body.Close())
	require.Equal(http.StatusMethodNotAllowed, res.StatusCode)

	require.NoError(a.Stop())
	require.NoError(a.Stop())

	exitCode, err := a.ExitCode()
	require.NoError(err)
	require.Zero(exitCode)
}

func TestNewRejectsInvalidKey(t *testing.T) {
	cfg := testConfig()
	cfg.KeyConfig.PrivateKey = "not a key"

	_, err := New(cfg)
	require.Error(t, err)
}
