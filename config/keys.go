// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey                = "config-file"
	VersionKey                   = "version"
	HTTPHostKey                  = "http-host"
	HTTPPortKey                  = "http-port"
	HTTPAllowedOriginsKey        = "http-allowed-origins"
	HTTPShutdownTimeoutKey       = "http-shutdown-timeout"
	JoinRateLimitKey             = "join-rate-limit"
	RPCEndpointKey               = "rpc-endpoint"
	NetworkNameKey               = "network-name"
	ChainIDKey                   = "chain-id"
	ContractAddressKey           = "contract-address"
	PrivateKeyKey                = "private-key"
	KeystoreFileKey              = "keystore-file"
	KeystorePasswordKey          = "keystore-password"
	DisableInjectedProviderKey   = "disable-injected-provider"
	ProviderHeadersKey           = "provider-headers"
	WaitForReceiptKey            = "wait-for-receipt"
	ResetLoadingOnFailureKey     = "reset-loading-on-failure"
	RejectConcurrentJoinKey      = "reject-concurrent-join"
	RPCTimeoutKey                = "rpc-timeout"
	LogsDirKey                   = "log-dir"
	LogLevelKey                  = "log-level"
	LogDisplayLevelKey           = "log-display-level"
	LogDisplayHighlightKey       = "log-display-highlight"
	LogDisableDisplayKey         = "log-disable-display"
	LogRotaterMaxSizeKey         = "log-rotater-max-size"
	LogRotaterMaxFilesKey        = "log-rotater-max-files"
	LogRotaterMaxAgeKey          = "log-rotater-max-age"
	LogRotaterCompressEnabledKey = "log-rotater-compress-enabled"
)
