// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// AppName is the name of this application
const AppName = "whitelistd"
