// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"github.com/ava-labs/whitelist-dapp/utils/constants"
)

var (
	Current = &Application{
		Name:  constants.AppName,
		Major: 1,
		Minor: 0,
		Patch: 0,
	}

	// GitCommit is set by the build script
	GitCommit string
)
