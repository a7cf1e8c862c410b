// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EVM chain IDs of the networks that can be referred to by name
const (
	MainnetID  uint64 = 1
	RinkebyID  uint64 = 4
	GoerliID   uint64 = 5
	SepoliaID  uint64 = 11155111
	LocalID    uint64 = 1337
	FujiID     uint64 = 43113
	CChainID   uint64 = 43114
	UnitTestID uint64 = 10

	MainnetName  = "mainnet"
	RinkebyName  = "rinkeby"
	GoerliName   = "goerli"
	SepoliaName  = "sepolia"
	LocalName    = "local"
	FujiName     = "fuji"
	CChainName   = "avalanche"
	UnitTestName = "testing"
)

var (
	NetworkIDToNetworkName = map[uint64]string{
		MainnetID:  MainnetName,
		RinkebyID:  RinkebyName,
		GoerliID:   GoerliName,
		SepoliaID:  SepoliaName,
		LocalID:    LocalName,
		FujiID:     FujiName,
		CChainID:   CChainName,
		UnitTestID: UnitTestName,
	}
	NetworkNameToNetworkID = map[string]uint64{
		MainnetName:  MainnetID,
		RinkebyName:  RinkebyID,
		GoerliName:   GoerliID,
		SepoliaName:  SepoliaID,
		LocalName:    LocalID,
		FujiName:     FujiID,
		CChainName:   CChainID,
		UnitTestName: UnitTestID,
	}

	ValidNetworkPrefix = "network-"

	ErrParseNetworkName = errors.New("failed to parse network name")
)

// NetworkName returns a human readable name for the chain with ID [chainID]
func NetworkName(chainID uint64) string {
	if name, exists := NetworkIDToNetworkName[chainID]; exists {
		return name
	}
	return fmt.Sprintf("%s%d", ValidNetworkPrefix, chainID)
}

// NetworkID returns the chain ID of the network with name [networkName]
func NetworkID(networkName string) (uint64, error) {
	networkName = strings.ToLower(networkName)
	if id, exists := NetworkNameToNetworkID[networkName]; exists {
		return id, nil
	}

	idStr := networkName
	if strings.HasPrefix(networkName, ValidNetworkPrefix) {
		idStr = networkName[len(ValidNetworkPrefix):]
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseNetworkName, networkName)
	}
	return id, nil
}
