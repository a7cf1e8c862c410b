// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wallet provides the session through which the whitelist controller
// reaches the chain: a lazily dialled JSON-RPC connection plus the locally
// configured account that signs transactions.
package wallet

//go:generate mockgen -package=wallet -destination=mocks.go . Connector,Provider,Signer

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrNoAccount is returned when a signer is requested but the session has
	// no account that could sign.
	ErrNoAccount = errors.New("no account available to sign")

	errNoEndpoint = errors.New("no rpc endpoint configured")
)

// Options configure a Connector.
type Options struct {
	// Network is the name of the chain the session is expected to target.
	Network string
	// Endpoint is the JSON-RPC URI of the chain.
	Endpoint string
	// ProviderOptions are sent as headers with every RPC request.
	ProviderOptions map[string]string
	// DisableInjectedProvider prevents the configured account from being
	// exposed, so every signer request is rejected.
	DisableInjectedProvider bool
}

// Connector opens the wallet session. The underlying connection is created on
// the first call and reused afterwards.
type Connector interface {
	Connect(ctx context.Context) (Provider, error)
	Close()
}

// Provider is a read-only handle on the chain.
type Provider interface {
	// ChainID of the network the session is currently pointed at.
	ChainID(ctx context.Context) (*big.Int, error)
	// Signer returns a provider bound to the session's account.
	Signer(ctx context.Context) (Signer, error)
	// Backend to bind contracts against.
	Backend() bind.ContractBackend
	// WaitMined blocks until [tx] is included in a block.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// Signer is a Provider that can authorize state changing calls.
type Signer interface {
	Provider

	Address() common.Address
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}
