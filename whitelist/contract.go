// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/ava-labs/whitelist-dapp/contracts/bindings"
	"github.com/ava-labs/whitelist-dapp/wallet"
)

//go:generate mockgen -package=whitelist -destination=mocks.go . Contract

var _ Contract = (*bindings.Whitelist)(nil)

// Contract is the whitelist contract as seen by the controller.
type Contract interface {
	AddAddressToWhitelist(opts *bind.TransactOpts) (*types.Transaction, error)
	AddressWhitelisted(opts *bind.CallOpts, addr common.Address) (bool, error)
	GetNumAddressesWhitelisted(opts *bind.CallOpts) (uint8, error)
}

// Binder returns a handle on the contract deployed at [address] that executes
// through [provider]. When [provider] is a wallet.Signer the handle can send
// transactions.
type Binder func(address common.Address, provider wallet.Provider) (Contract, error)

// BindContract binds the deployed whitelist contract.
func BindContract(address common.Address, provider wallet.Provider) (Contract, error) {
	return bindings.NewWhitelist(address, provider.Backend())
}
