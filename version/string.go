// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
)

// String returns the version line printed by --version
func String(commit string) string {
	if commit == "" {
		return fmt.Sprintf("%s\n", Current)
	}
	return fmt.Sprintf("%s [commit=%s]\n", Current, commit)
}
