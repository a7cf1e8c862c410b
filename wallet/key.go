// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

var errConflictingKeys = errors.New("both a private key and a keystore file were provided")

// LoadKey returns the account key described by either a hex encoded private
// key or an encrypted keystore file. It returns nil if neither is provided.
func LoadKey(hexKey, keystoreFile, password string) (*ecdsa.PrivateKey, error) {
	switch {
	case hexKey != "" && keystoreFile != "":
		return nil, errConflictingKeys
	case hexKey != "":
		key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("couldn't parse private key: %w", err)
		}
		return key, nil
	case keystoreFile != "":
		keyJSON, err := os.ReadFile(keystoreFile)
		if err != nil {
			return nil, fmt.Errorf("couldn't read keystore file: %w", err)
		}
		key, err := keystore.DecryptKey(keyJSON, password)
		if err != nil {
			return nil, fmt.Errorf("couldn't decrypt keystore file %q: %w", keystoreFile, err)
		}
		return key.PrivateKey, nil
	default:
		return nil, nil
	}
}
