// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/ava-labs/whitelist-dapp/wallet"
)

// userRejectedCode is the EIP-1193 error code for a request the user declined.
const userRejectedCode = 4001

var (
	// ErrWrongNetwork is returned when the wallet is pointed at a chain other
	// than the configured one.
	ErrWrongNetwork = errors.New("wrong network")
	// ErrWalletRejected is returned when the wallet declined to connect or to
	// sign.
	ErrWalletRejected = errors.New("wallet rejected request")
	// ErrRPCFailure is returned when the chain could not be reached or
	// answered with an error.
	ErrRPCFailure = errors.New("rpc failure")
	// ErrContractRevert is returned when the contract call failed on chain.
	ErrContractRevert = errors.New("contract reverted")
	// ErrJoinInFlight is returned when a join is attempted while another one
	// is pending and concurrent joins are rejected.
	ErrJoinInFlight = errors.New("join already in flight")

	kinds = []error{
		ErrWrongNetwork,
		ErrWalletRejected,
		ErrRPCFailure,
		ErrContractRevert,
		ErrJoinInFlight,
	}
)

// Error attaches one of the kinds above to the error that caused it.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Classify wraps [err] into an *Error carrying its kind. Errors that already
// carry a kind are returned unchanged.
func Classify(err error) error {
	if err == nil || Kind(err) != nil {
		return err
	}

	var kind error
	switch {
	case errors.Is(err, wallet.ErrNoAccount), errors.Is(err, keystore.ErrDecrypt), isUserRejection(err):
		kind = ErrWalletRejected
	case isRevert(err):
		kind = ErrContractRevert
	default:
		kind = ErrRPCFailure
	}
	return &Error{
		Kind: kind,
		Err:  err,
	}
}

// Kind returns the kind carried by [err], or nil if it has none.
func Kind(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

func isUserRejection(err error) bool {
	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedCode
}

func isRevert(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}
