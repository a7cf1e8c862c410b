// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/whitelist-dapp/wallet"
)

type testRPCError struct {
	code int
}

func (e testRPCError) Error() string {
	return fmt.Sprintf("rpc error %d", e.code)
}

func (e testRPCError) ErrorCode() int {
	return e.code
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind error
	}{
		{
			name: "nil",
		},
		{
			name:         "no account",
			err:          fmt.Errorf("couldn't get signer: %w", wallet.ErrNoAccount),
			expectedKind: ErrWalletRejected,
		},
		{
			name:         "wrong keystore password",
			err:          keystore.ErrDecrypt,
			expectedKind: ErrWalletRejected,
		},
		{
			name:         "user rejected request",
			err:          testRPCError{code: 4001},
			expectedKind: ErrWalletRejected,
		},
		{
			name:         "other rpc error",
			err:          testRPCError{code: -32000},
			expectedKind: ErrRPCFailure,
		},
		{
			name:         "revert",
			err:          errors.New("execution reverted: Sender has already been whitelisted"),
			expectedKind: ErrContractRevert,
		},
		{
			name:         "revert wrapping a cancellation",
			err:          fmt.Errorf("execution reverted: %w", context.Canceled),
			expectedKind: ErrRPCFailure,
		},
		{
			name:         "unreachable",
			err:          errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"),
			expectedKind: ErrRPCFailure,
		},
		{
			name:         "already classified",
			err:          &Error{Kind: ErrWrongNetwork, Err: errors.New("execution reverted")},
			expectedKind: ErrWrongNetwork,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			err := Classify(test.err)
			if test.err == nil {
				require.NoError(err)
				return
			}
			require.ErrorIs(err, test.expectedKind)
			require.ErrorIs(err, test.err)
			require.Equal(test.expectedKind, Kind(err))
		})
	}
}

func TestErrorIsOnlyItsKind(t *testing.T) {
	require := require.New(t)

	err := &Error{Kind: ErrRPCFailure, Err: errors.New("boom")}
	require.ErrorIs(err, ErrRPCFailure)
	require.NotErrorIs(err, ErrContractRevert)
	require.Equal("rpc failure: boom", err.Error())
}
