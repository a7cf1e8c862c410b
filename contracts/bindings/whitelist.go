// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindings

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	AddAddressToWhitelistMethod      = "addAddressToWhitelist"
	AddressWhitelistedMethod         = "addressWhitelisted"
	GetNumAddressesWhitelistedMethod = "getNumAddressesWhitelisted"
)

var (
	errNilABI           = errors.New("GetABI returned nil")
	errUnexpectedOutput = errors.New("unexpected contract output")
)

// WhitelistMetaData contains all meta data concerning the Whitelist contract.
var WhitelistMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[],\"name\":\"addAddressToWhitelist\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"\",\"type\":\"address\"}],\"name\":\"addressWhitelisted\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"getNumAddressesWhitelisted\",\"outputs\":[{\"internalType\":\"uint8\",\"name\":\"\",\"type\":\"uint8\"}],\"stateMutability\":\"view\",\"type\":\"function\"}]",
}

// Whitelist is a Go binding around the on-chain whitelist contract. Reads work
// against any backend; AddAddressToWhitelist needs TransactOpts from a signer.
type Whitelist struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewWhitelist creates a new instance of Whitelist, bound to a specific
// deployed contract.
func NewWhitelist(address common.Address, backend bind.ContractBackend) (*Whitelist, error) {
	parsed, err := WhitelistMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, errNilABI
	}
	return &Whitelist{
		address:  address,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// Address of the bound contract.
func (w *Whitelist) Address() common.Address {
	return w.address
}

// AddAddressToWhitelist is a paid mutator transaction binding the contract
// method addAddressToWhitelist().
func (w *Whitelist) AddAddressToWhitelist(opts *bind.TransactOpts) (*types.Transaction, error) {
	return w.contract.Transact(opts, AddAddressToWhitelistMethod)
}

// AddressWhitelisted is a free data retrieval call binding the contract
// method addressWhitelisted(address) returning bool.
func (w *Whitelist) AddressWhitelisted(opts *bind.CallOpts, addr common.Address) (bool, error) {
	var out []interface{}
	if err := w.contract.Call(opts, &out, AddressWhitelistedMethod, addr); err != nil {
		return false, err
	}
	if len(out) != 1 {
		return false, fmt.Errorf("%w: %s returned %d values", errUnexpectedOutput, AddressWhitelistedMethod, len(out))
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// GetNumAddressesWhitelisted is a free data retrieval call binding the
// contract method getNumAddressesWhitelisted() returning uint8.
func (w *Whitelist) GetNumAddressesWhitelisted(opts *bind.CallOpts) (uint8, error) {
	var out []interface{}
	if err := w.contract.Call(opts, &out, GetNumAddressesWhitelistedMethod); err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("%w: %s returned %d values", errUnexpectedOutput, GetNumAddressesWhitelistedMethod, len(out))
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}
