// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworkName(t *testing.T) {
	require := require.New(t)

	require.Equal(MainnetName, NetworkName(MainnetID))
	require.Equal(RinkebyName, NetworkName(RinkebyID))
	require.Equal(FujiName, NetworkName(FujiID))
	require.Equal("network-424242", NetworkName(424242))
}

func TestNetworkID(t *testing.T) {
	tests := []struct {
		name        string
		expectedID  uint64
		expectedErr error
	}{
		{
			name:       MainnetName,
			expectedID: MainnetID,
		},
		{
			name:       "Rinkeby",
			expectedID: RinkebyID,
		},
		{
			name:       "network-31337",
			expectedID: 31337,
		},
		{
			name:       "31337",
			expectedID: 31337,
		},
		{
			name:        "network-",
			expectedErr: ErrParseNetworkName,
		},
		{
			name:        "not-a-network",
			expectedErr: ErrParseNetworkName,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			id, err := NetworkID(test.name)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedID, id)
		})
	}
}
