// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package whitelist drives the whitelist page: it owns the page state, opens
// the wallet session, validates the network and issues the contract calls.
//
// Every operation logs its failure and returns it. The page layer ignores the
// returned error so that, to the user, a failed operation only shows up as a
// state that did not change. The one exception is a wrong network, which also
// leaves an alert to be shown.
package whitelist

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/wallet"
)

const (
	// WrongNetworkAlert is shown when the wallet is on another chain.
	WrongNetworkAlert = "Change the network"

	getProviderOrSignerOp       = "getProviderOrSigner"
	addAddressToWhitelistOp     = "addAddressToWhitelist"
	getNumberOfWhitelistedOp    = "getNumberOfWhitelisted"
	checkIfAddressInWhitelistOp = "checkIfAddressInWhitelist"
	connectWalletOp             = "connectWallet"
	metricsNamespace            = "whitelist"
)

var (
	errNotSigner    = errors.New("provider can't sign")
	errNotConnected = errors.New("wallet not connected")
)

// Config of the controller.
type Config struct {
	// ChainID the wallet must be pointed at.
	ChainID uint64 `json:"chainID"`
	// ContractAddress of the deployed whitelist contract.
	ContractAddress common.Address `json:"contractAddress"`
	// WaitForReceipt makes a join wait until its transaction is mined.
	WaitForReceipt bool `json:"waitForReceipt"`
	// ResetLoadingOnFailure clears the loading flag when a join fails. When
	// false, a join that fails after being marked in flight leaves the page
	// loading for the life of the process. Reloading the page doesn't clear
	// it.
	ResetLoadingOnFailure bool `json:"resetLoadingOnFailure"`
	// RejectConcurrentJoin refuses a join while another one is in flight.
	RejectConcurrentJoin bool `json:"rejectConcurrentJoin"`
	// OperationTimeout bounds operations started by the controller itself. No
	// timeout is applied when zero.
	OperationTimeout time.Duration `json:"operationTimeout"`
}

// Controller owns the page state and the wallet session.
type Controller struct {
	log     logging.Logger
	config  Config
	chainID *big.Int
	bind    Binder
	metrics *metrics
	state   state

	newSession  func() wallet.Connector
	sessionOnce sync.Once
	sessionConn wallet.Connector

	// Operations the controller starts on its own run under this context and
	// are tracked by [pending].
	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup
}

// New returns a controller that is not connected. [newSession] is called at
// most once, the first time the session is needed.
func New(
	log logging.Logger,
	config Config,
	newSession func() wallet.Connector,
	binder Binder,
	registerer prometheus.Registerer,
) (*Controller, error) {
	m, err := newMetrics(metricsNamespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		log:        log,
		config:     config,
		chainID:    new(big.Int).SetUint64(config.ChainID),
		bind:       binder,
		metrics:    m,
		newSession: newSession,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// session returns the wallet session, constructing it on first use.
func (c *Controller) session() wallet.Connector {
	c.sessionOnce.Do(func() {
		c.sessionConn = c.newSession()
		c.log.Debug("wallet session created")
	})
	return c.sessionConn
}

// Activate is called whenever the page is shown. While not connected it
// attempts to connect the wallet. It never retries on its own.
func (c *Controller) Activate(ctx context.Context) {
	if c.state.get().Connected {
		return
	}
	c.session()
	_ = c.ConnectWallet(ctx)
}

// GetProviderOrSigner connects the wallet session and checks that it is on the
// configured chain. It returns a wallet.Signer if [needSigner] is true and a
// read-only wallet.Provider otherwise.
func (c *Controller) GetProviderOrSigner(ctx context.Context, needSigner bool) (wallet.Provider, error) {
	provider, err := c.getProviderOrSigner(ctx, needSigner)
	c.metrics.observe(getProviderOrSignerOp, err)
	return provider, err
}

func (c *Controller) getProviderOrSigner(ctx context.Context, needSigner bool) (wallet.Provider, error) {
	provider, err := c.session().Connect(ctx)
	if err != nil {
		return nil, Classify(fmt.Errorf("couldn't connect wallet: %w", err))
	}

	chainID, err := provider.ChainID(ctx)
	if err != nil {
		return nil, Classify(fmt.Errorf("couldn't fetch chain ID: %w", err))
	}
	c.log.Debug("wallet network",
		zap.Stringer("chainID", chainID),
	)
	if chainID.Cmp(c.chainID) != 0 {
		c.state.setAlert(WrongNetworkAlert)
		return nil, &Error{
			Kind: ErrWrongNetwork,
			Err:  fmt.Errorf("expected chain %s but wallet is on chain %s", c.chainID, chainID),
		}
	}

	if !needSigner {
		return provider, nil
	}
	signer, err := provider.Signer(ctx)
	if err != nil {
		return nil, Classify(fmt.Errorf("couldn't get signer: %w", err))
	}
	return signer, nil
}

func (c *Controller) signer(ctx context.Context) (wallet.Signer, error) {
	provider, err := c.GetProviderOrSigner(ctx, true)
	if err != nil {
		return nil, err
	}
	signer, ok := provider.(wallet.Signer)
	if !ok {
		return nil, &Error{
			Kind: ErrWalletRejected,
			Err:  fmt.Errorf("%w: %T", errNotSigner, provider),
		}
	}
	return signer, nil
}

// AddAddressToWhitelist submits a transaction adding the wallet's account to
// the whitelist. On success the count is refreshed and the account is marked
// as joined.
func (c *Controller) AddAddressToWhitelist(ctx context.Context) error {
	err := c.addAddressToWhitelist(ctx)
	c.done(addAddressToWhitelistOp, err)
	return err
}

func (c *Controller) addAddressToWhitelist(ctx context.Context) (err error) {
	signer, err := c.signer(ctx)
	if err != nil {
		return err
	}
	contract, err := c.bind(c.config.ContractAddress, signer)
	if err != nil {
		return Classify(fmt.Errorf("couldn't bind contract: %w", err))
	}
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return Classify(fmt.Errorf("couldn't create transaction options: %w", err))
	}

	if c.config.RejectConcurrentJoin {
		if !c.state.beginJoin() {
			return &Error{
				Kind: ErrJoinInFlight,
				Err:  fmt.Errorf("account %s", signer.Address()),
			}
		}
	} else {
		c.state.setLoading(true)
	}
	c.metrics.observeState(c.state.get())
	if c.config.ResetLoadingOnFailure {
		defer func() {
			if err != nil {
				c.state.setLoading(false)
			}
		}()
	}

	tx, err := contract.AddAddressToWhitelist(opts)
	if err != nil {
		return Classify(fmt.Errorf("couldn't add %s to whitelist: %w", signer.Address(), err))
	}
	c.log.Info("submitted whitelist transaction",
		zap.Stringer("account", signer.Address()),
		zap.Stringer("txID", tx.Hash()),
	)

	if c.config.WaitForReceipt {
		receipt, err := signer.WaitMined(ctx, tx)
		if err != nil {
			return Classify(fmt.Errorf("couldn't wait for transaction %s: %w", tx.Hash(), err))
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return &Error{
				Kind: ErrContractRevert,
				Err:  fmt.Errorf("transaction %s failed in block %s", tx.Hash(), receipt.BlockNumber),
			}
		}
		c.log.Info("whitelist transaction accepted",
			zap.Stringer("txID", tx.Hash()),
			zap.Stringer("blockNumber", receipt.BlockNumber),
		)
	}

	c.state.setLoading(false)
	// A failed refresh is logged by GetNumberOfWhitelisted and doesn't undo
	// the join.
	_, _ = c.GetNumberOfWhitelisted(ctx)
	c.state.setJoined(true)
	return nil
}

// GetNumberOfWhitelisted reads the number of whitelisted addresses and stores
// it in the page state.
func (c *Controller) GetNumberOfWhitelisted(ctx context.Context) (uint64, error) {
	count, err := c.getNumberOfWhitelisted(ctx)
	c.done(getNumberOfWhitelistedOp, err)
	return count, err
}

func (c *Controller) getNumberOfWhitelisted(ctx context.Context) (uint64, error) {
	provider, err := c.GetProviderOrSigner(ctx, false)
	if err != nil {
		return 0, err
	}
	contract, err := c.bind(c.config.ContractAddress, provider)
	if err != nil {
		return 0, Classify(fmt.Errorf("couldn't bind contract: %w", err))
	}
	count, err := contract.GetNumAddressesWhitelisted(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, Classify(fmt.Errorf("couldn't fetch number of whitelisted addresses: %w", err))
	}

	c.state.setCount(uint64(count))
	return uint64(count), nil
}

// CheckIfAddressInWhitelist reads whether the wallet's account is whitelisted
// and stores it in the page state. A signer is needed for the account address
// even though nothing is signed.
func (c *Controller) CheckIfAddressInWhitelist(ctx context.Context) (bool, error) {
	joined, err := c.checkIfAddressInWhitelist(ctx)
	c.done(checkIfAddressInWhitelistOp, err)
	return joined, err
}

func (c *Controller) checkIfAddressInWhitelist(ctx context.Context) (bool, error) {
	signer, err := c.signer(ctx)
	if err != nil {
		return false, err
	}
	contract, err := c.bind(c.config.ContractAddress, signer)
	if err != nil {
		return false, Classify(fmt.Errorf("couldn't bind contract: %w", err))
	}

	address := signer.Address()
	joined, err := contract.AddressWhitelisted(&bind.CallOpts{
		Context: ctx,
		From:    address,
	}, address)
	if err != nil {
		return false, Classify(fmt.Errorf("couldn't check whether %s is whitelisted: %w", address, err))
	}

	c.state.setJoined(joined)
	return joined, nil
}

// ConnectWallet connects the wallet session. Once connected, the membership and
// the count are read in the background, in no particular order.
func (c *Controller) ConnectWallet(ctx context.Context) error {
	_, err := c.connectWallet(ctx)
	return err
}

// ConnectWalletAndRead is ConnectWallet, but it also waits for the membership
// and the count to be read. Other background operations, such as a join in
// flight, are not waited for.
func (c *Controller) ConnectWalletAndRead(ctx context.Context) error {
	reads, err := c.connectWallet(ctx)
	reads.Wait()
	return err
}

func (c *Controller) connectWallet(ctx context.Context) (*sync.WaitGroup, error) {
	reads := &sync.WaitGroup{}
	_, err := c.GetProviderOrSigner(ctx, false)
	if err == nil {
		c.state.setConnected()
		c.start(reads, func(ctx context.Context) {
			_, _ = c.CheckIfAddressInWhitelist(ctx)
		})
		c.start(reads, func(ctx context.Context) {
			_, _ = c.GetNumberOfWhitelisted(ctx)
		})
	}
	c.done(connectWalletOp, err)
	return reads, err
}

// StartJoin runs AddAddressToWhitelist in the background. It doesn't guard
// against a join already being in flight unless RejectConcurrentJoin is set.
func (c *Controller) StartJoin() {
	c.start(nil, func(ctx context.Context) {
		_ = c.AddAddressToWhitelist(ctx)
	})
}

// start runs [op] in the background under the controller's context. [op] is
// also tracked by [group] when it isn't nil.
func (c *Controller) start(group *sync.WaitGroup, op func(ctx context.Context)) {
	c.pending.Add(1)
	if group != nil {
		group.Add(1)
	}
	go func() {
		defer c.pending.Done()
		if group != nil {
			defer group.Done()
		}

		ctx := c.ctx
		if c.config.OperationTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.config.OperationTimeout)
			defer cancel()
		}
		op(ctx)
	}()
}

// Wait blocks until every operation started in the background has returned.
// It must not be called while operations may still be started, so request
// handlers wait on ConnectWalletAndRead instead.
func (c *Controller) Wait() {
	c.pending.Wait()
}

// Snapshot of the current page state.
func (c *Controller) Snapshot() Snapshot {
	return c.state.get()
}

// View to render for the current page state.
func (c *Controller) View() View {
	return Select(c.state.get())
}

// TakeAlert returns the pending alert, if any, and clears it.
func (c *Controller) TakeAlert() string {
	return c.state.takeAlert()
}

// HealthCheck reports whether the wallet is connected and its chain still
// answers with the configured chain ID. It never touches the page state.
func (c *Controller) HealthCheck(ctx context.Context) (interface{}, error) {
	snapshot := c.state.get()
	if !snapshot.Connected {
		return snapshot, errNotConnected
	}

	provider, err := c.session().Connect(ctx)
	if err != nil {
		return snapshot, Classify(fmt.Errorf("couldn't connect wallet: %w", err))
	}
	chainID, err := provider.ChainID(ctx)
	if err != nil {
		return snapshot, Classify(fmt.Errorf("couldn't fetch chain ID: %w", err))
	}
	if chainID.Cmp(c.chainID) != 0 {
		return snapshot, &Error{
			Kind: ErrWrongNetwork,
			Err:  fmt.Errorf("expected chain %s but wallet is on chain %s", c.chainID, chainID),
		}
	}
	return snapshot, nil
}

// Close cancels background operations, waits for them and closes the wallet
// session if one was created.
func (c *Controller) Close() {
	c.cancel()
	c.Wait()

	// Marks the session as constructed, so it can't be created concurrently
	// with closing it.
	c.sessionOnce.Do(func() {})
	if c.sessionConn != nil {
		c.sessionConn.Close()
	}
}

func (c *Controller) done(op string, err error) {
	c.metrics.observe(op, err)
	c.metrics.observeState(c.state.get())
	if err == nil {
		return
	}
	c.log.Warn("whitelist operation failed",
		zap.String("op", op),
		zap.Error(err),
	)
}
