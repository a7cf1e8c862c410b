// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"errors"
	"fmt"
)

var errUnknownView = errors.New("unknown view")

// View is the affordance shown to the user. Exactly one is shown at a time.
type View uint8

const (
	// ViewConnect offers to connect the wallet.
	ViewConnect View = iota
	// ViewThanks thanks the user for having joined.
	ViewThanks
	// ViewLoading shows a disabled button while a join is in flight.
	ViewLoading
	// ViewJoin offers to join the whitelist.
	ViewJoin
)

// Select returns the view for [s]. The count never influences the view.
func Select(s Snapshot) View {
	switch {
	case !s.Connected:
		return ViewConnect
	case s.Joined:
		return ViewThanks
	case s.Loading:
		return ViewLoading
	default:
		return ViewJoin
	}
}

func (v View) String() string {
	switch v {
	case ViewConnect:
		return "connect"
	case ViewThanks:
		return "thanks"
	case ViewLoading:
		return "loading"
	case ViewJoin:
		return "join"
	default:
		return "unknown"
	}
}

// Label is the text rendered for the view.
func (v View) Label() string {
	switch v {
	case ViewConnect:
		return "Connect your Wallet"
	case ViewThanks:
		return "Thanks for joining the Whitelist!"
	case ViewLoading:
		return "Loading ..."
	case ViewJoin:
		return "Join the Whitelist"
	default:
		return ""
	}
}

// Actionable returns true if the view is a button the user can press.
func (v View) Actionable() bool {
	return v == ViewConnect || v == ViewJoin
}

func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	for _, view := range []View{ViewConnect, ViewThanks, ViewLoading, ViewJoin} {
		if view.String() == string(text) {
			*v = view
			return nil
		}
	}
	return fmt.Errorf("%w: %q", errUnknownView, text)
}
