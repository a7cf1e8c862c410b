// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
)

type Application struct {
	Name  string `json:"name"`
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	Patch int    `json:"patch"`
}

// String formats the application as name/major.minor.patch
func (a *Application) String() string {
	return fmt.Sprintf(
		"%s/%d.%d.%d",
		a.Name,
		a.Major,
		a.Minor,
		a.Patch,
	)
}

// Compare returns a positive number if a > o, 0 if a == o, or a negative
// number if a < o. Names are ignored.
func (a *Application) Compare(o *Application) int {
	if a.Major != o.Major {
		return a.Major - o.Major
	}
	if a.Minor != o.Minor {
		return a.Minor - o.Minor
	}
	return a.Patch - o.Patch
}
