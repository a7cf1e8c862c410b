// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/ava-labs/whitelist-dapp/utils/constants"
	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/wallet"
	"github.com/ava-labs/whitelist-dapp/whitelist"
)

var (
	errMissingRPCEndpoint     = errors.New("rpc endpoint must be provided")
	errMissingContractAddress = errors.New("contract address must be provided")
	errInvalidContractAddress = errors.New("invalid contract address")
	errConflictingChainID     = errors.New("chain ID doesn't match network name")
)

type HTTPConfig struct {
	Host            string        `json:"host"`
	Port            uint16        `json:"port"`
	AllowedOrigins  []string      `json:"allowedOrigins"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout"`
	JoinRateLimit   float64       `json:"joinRateLimit"`
}

// KeyConfig locates the key of the account joining the whitelist. At most one
// of PrivateKey and KeystoreFile may be set.
type KeyConfig struct {
	PrivateKey       string `json:"-"`
	KeystoreFile     string `json:"keystoreFile"`
	KeystorePassword string `json:"-"`
}

// Config of whitelistd
type Config struct {
	HTTPConfig      `json:"httpConfig"`
	NetworkName     string           `json:"networkName"`
	WalletConfig    wallet.Options   `json:"walletConfig"`
	KeyConfig       KeyConfig        `json:"keyConfig"`
	WhitelistConfig whitelist.Config `json:"whitelistConfig"`
	LoggingConfig   logging.Config   `json:"loggingConfig"`
}

// GetConfig returns the config defined in the [v] environment.
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		err    error
	)

	config.HTTPConfig = HTTPConfig{
		Host:            v.GetString(HTTPHostKey),
		Port:            uint16(v.GetUint(HTTPPortKey)),
		AllowedOrigins:  v.GetStringSlice(HTTPAllowedOriginsKey),
		ShutdownTimeout: v.GetDuration(HTTPShutdownTimeoutKey),
		JoinRateLimit:   v.GetFloat64(JoinRateLimitKey),
	}

	config.NetworkName, config.WhitelistConfig.ChainID, err = getNetwork(v)
	if err != nil {
		return Config{}, err
	}

	config.WalletConfig, err = getWalletConfig(v, config.NetworkName)
	if err != nil {
		return Config{}, err
	}

	config.KeyConfig = KeyConfig{
		PrivateKey:       v.GetString(PrivateKeyKey),
		KeystoreFile:     os.ExpandEnv(v.GetString(KeystoreFileKey)),
		KeystorePassword: v.GetString(KeystorePasswordKey),
	}

	contractAddress := v.GetString(ContractAddressKey)
	switch {
	case contractAddress == "":
		return Config{}, errMissingContractAddress
	case !common.IsHexAddress(contractAddress):
		return Config{}, fmt.Errorf("%w: %q", errInvalidContractAddress, contractAddress)
	}
	config.WhitelistConfig.ContractAddress = common.HexToAddress(contractAddress)
	config.WhitelistConfig.WaitForReceipt = v.GetBool(WaitForReceiptKey)
	config.WhitelistConfig.ResetLoadingOnFailure = v.GetBool(ResetLoadingOnFailureKey)
	config.WhitelistConfig.RejectConcurrentJoin = v.GetBool(RejectConcurrentJoinKey)
	config.WhitelistConfig.OperationTimeout = v.GetDuration(RPCTimeoutKey)

	config.LoggingConfig, err = getLoggingConfig(v)
	return config, err
}

// getNetwork returns the network name and the chain ID the wallet must be on.
// An explicit chain ID takes precedence over the one the name maps to, but the
// two must agree when both are known.
func getNetwork(v *viper.Viper) (string, uint64, error) {
	networkName := v.GetString(NetworkNameKey)
	chainID := v.GetUint64(ChainIDKey)
	if chainID == 0 {
		id, err := constants.NetworkID(networkName)
		if err != nil {
			return "", 0, err
		}
		return networkName, id, nil
	}

	if !v.IsSet(NetworkNameKey) {
		return constants.NetworkName(chainID), chainID, nil
	}
	if id, err := constants.NetworkID(networkName); err == nil && id != chainID {
		return "", 0, fmt.Errorf("%w: %s is chain %d, not %d",
			errConflictingChainID,
			networkName,
			id,
			chainID,
		)
	}
	return networkName, chainID, nil
}

func getWalletConfig(v *viper.Viper, networkName string) (wallet.Options, error) {
	endpoint := v.GetString(RPCEndpointKey)
	if endpoint == "" {
		return wallet.Options{}, errMissingRPCEndpoint
	}
	return wallet.Options{
		Network:                 networkName,
		Endpoint:                endpoint,
		ProviderOptions:         v.GetStringMapString(ProviderHeadersKey),
		DisableInjectedProvider: v.GetBool(DisableInjectedProviderKey),
	}, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:  int(v.GetUint(LogRotaterMaxSizeKey)),
			MaxFiles: int(v.GetUint(LogRotaterMaxFilesKey)),
			MaxAge:   int(v.GetUint(LogRotaterMaxAgeKey)),
			Compress: v.GetBool(LogRotaterCompressEnabledKey),
		},
		DisableWriterDisplaying: v.GetBool(LogDisableDisplayKey),
	}
	if v.IsSet(LogsDirKey) {
		loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogDisplayHighlightKey), os.Stdout.Fd())
	return loggingConfig, err
}
