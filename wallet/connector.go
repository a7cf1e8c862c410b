// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/url"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
)

var _ Connector = (*connector)(nil)

type connector struct {
	log  logging.Logger
	opts Options
	key  *ecdsa.PrivateKey

	lock   sync.Mutex
	client *ethclient.Client
}

// NewConnector returns a Connector for the chain described by [opts]. [key]
// is the account exposed to signer requests; it may be nil.
func NewConnector(log logging.Logger, opts Options, key *ecdsa.PrivateKey) Connector {
	return &connector{
		log:  log,
		opts: opts,
		key:  key,
	}
}

func (c *connector) Connect(ctx context.Context) (Provider, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.client == nil {
		if c.opts.Endpoint == "" {
			return nil, errNoEndpoint
		}

		rpcClient, err := rpc.DialContext(ctx, c.opts.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("couldn't dial %s: %w", redact(c.opts.Endpoint), err)
		}
		for key, value := range c.opts.ProviderOptions {
			rpcClient.SetHeader(key, value)
		}
		c.client = ethclient.NewClient(rpcClient)

		fields := []zap.Field{
			zap.String("network", c.opts.Network),
			zap.String("endpoint", redact(c.opts.Endpoint)),
		}
		if key := c.account(); key != nil {
			fields = append(fields, zap.Stringer("account", crypto.PubkeyToAddress(key.PublicKey)))
		}
		c.log.Info("wallet session opened", fields...)
	}

	return &provider{
		client: c.client,
		key:    c.account(),
	}, nil
}

func (c *connector) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

func (c *connector) account() *ecdsa.PrivateKey {
	if c.opts.DisableInjectedProvider {
		return nil
	}
	return c.key
}

func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return u.Redacted()
}
