// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationString(t *testing.T) {
	tests := []struct {
		app      *Application
		expected string
	}{
		{
			app: &Application{
				Name:  "whitelistd",
				Major: 0,
				Minor: 0,
				Patch: 1,
			},
			expected: "whitelistd/0.0.1",
		},
		{
			app: &Application{
				Name:  "myClient",
				Major: 10,
				Minor: 20,
				Patch: 30,
			},
			expected: "myClient/10.20.30",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, test.app.String())
		})
	}
}

func TestApplicationCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        *Application
		o        *Application
		expected int
	}{
		{
			name:     "equal",
			a:        &Application{Major: 1, Minor: 2, Patch: 3},
			o:        &Application{Major: 1, Minor: 2, Patch: 3},
			expected: 0,
		},
		{
			name:     "newer major",
			a:        &Application{Major: 2},
			o:        &Application{Major: 1, Minor: 9, Patch: 9},
			expected: 1,
		},
		{
			name:     "older minor",
			a:        &Application{Major: 1, Minor: 1},
			o:        &Application{Major: 1, Minor: 2},
			expected: -1,
		},
		{
			name:     "newer patch",
			a:        &Application{Major: 1, Minor: 1, Patch: 5},
			o:        &Application{Major: 1, Minor: 1, Patch: 2},
			expected: 3,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.a.Compare(test.o))
		})
	}
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal(Current.String()+"\n", String(""))
	require.Equal(Current.String()+" [commit=abc]\n", String("abc"))
}
