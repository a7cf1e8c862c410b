// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/whitelist-dapp/utils/constants"
)

const envPrefix = "whitelist"

var (
	defaultNetworkName = constants.RinkebyName

	logLevelHelp = "Should be one of {verbo, debug, trace, info, warn, error, fatal, off}"
)

// BuildFlagSet returns the complete set of flags for whitelistd
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)

	fs.Bool(VersionKey, false, "If true, print version and quit")
	fs.String(ConfigFileKey, "", "Specifies a config file")

	// HTTP
	fs.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	fs.Uint16(HTTPPortKey, 3000, "Port of the HTTP server")
	fs.StringSlice(HTTPAllowedOriginsKey, []string{"*"}, "Origins to allow on the HTTP port. Defaults to * which allows all origins")
	fs.Duration(HTTPShutdownTimeoutKey, 10*time.Second, "Maximum duration to wait for existing connections to complete during shutdown")

	// Chain
	fs.String(RPCEndpointKey, "", "URI of the Ethereum JSON-RPC endpoint the wallet connects to")
	fs.String(NetworkNameKey, defaultNetworkName, "Name of the network the wallet must be on")
	fs.Uint64(ChainIDKey, 0, fmt.Sprintf("Chain ID the wallet must be on. If 0, it is derived from --%s", NetworkNameKey))
	fs.String(ContractAddressKey, "", "Address of the deployed whitelist contract")
	fs.Duration(RPCTimeoutKey, 0, "Timeout of operations started in the background. 0 means no timeout")

	// Wallet
	fs.String(PrivateKeyKey, "", "Hex encoded private key of the account joining the whitelist")
	fs.String(KeystoreFileKey, "", "Encrypted keystore file of the account joining the whitelist")
	fs.String(KeystorePasswordKey, "", "Password of the keystore file")
	fs.Bool(DisableInjectedProviderKey, false, "If true, no account is exposed to the page and joining is rejected")
	fs.StringToString(ProviderHeadersKey, map[string]string{}, "Headers sent with every request to the RPC endpoint")

	// Join
	fs.Bool(WaitForReceiptKey, true, "If true, a join waits for its transaction to be mined")
	fs.Bool(ResetLoadingOnFailureKey, false, "If true, a failed join clears the loading state")
	fs.Bool(RejectConcurrentJoinKey, false, "If true, a join is rejected while another one is in flight")
	fs.Float64(JoinRateLimitKey, 0, "Number of joins per second accepted from the page. 0 means unlimited")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. If empty, logs are only displayed")
	fs.String(LogLevelKey, "info", "The log level. "+logLevelHelp)
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. "+logLevelHelp)
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Bool(LogDisableDisplayKey, false, "If true, logs are not displayed")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressEnabledKey, false, "Enables the compression of rotated log files through gzip")

	return fs
}

// BuildViper parses [args] against [fs] and returns the viper environment.
// Values are looked up in the flags, then in WHITELIST_ prefixed environment
// variables, then in the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
