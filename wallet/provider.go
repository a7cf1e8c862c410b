// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	_ Provider = (*provider)(nil)
	_ Signer   = (*signer)(nil)
)

type provider struct {
	client *ethclient.Client
	key    *ecdsa.PrivateKey
}

func (p *provider) ChainID(ctx context.Context) (*big.Int, error) {
	return p.client.ChainID(ctx)
}

func (p *provider) Signer(context.Context) (Signer, error) {
	if p.key == nil {
		return nil, ErrNoAccount
	}
	return &signer{
		provider: p,
		address:  crypto.PubkeyToAddress(p.key.PublicKey),
	}, nil
}

func (p *provider) Backend() bind.ContractBackend {
	return p.client
}

func (p *provider) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, p.client, tx)
}

type signer struct {
	*provider

	address common.Address
}

func (s *signer) Address() common.Address {
	return s.address
}

func (s *signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := s.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
