// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSelectProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("disconnected always selects connect", prop.ForAll(
		func(joined, loading bool, count uint64) bool {
			return Select(Snapshot{
				Joined:  joined,
				Loading: loading,
				Count:   count,
			}) == ViewConnect
		},
		gen.Bool(),
		gen.Bool(),
		gen.UInt64(),
	))

	properties.Property("joined always selects thanks", prop.ForAll(
		func(loading bool, count uint64) bool {
			return Select(Snapshot{
				Connected: true,
				Joined:    true,
				Loading:   loading,
				Count:     count,
			}) == ViewThanks
		},
		gen.Bool(),
		gen.UInt64(),
	))

	properties.Property("count never changes the view", prop.ForAll(
		func(connected, joined, loading bool, count uint64) bool {
			s := Snapshot{
				Connected: connected,
				Joined:    joined,
				Loading:   loading,
			}
			expected := Select(s)
			s.Count = count
			return Select(s) == expected
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestWrongNetworkProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("other chains never yield a provider", prop.ForAll(
		func(chainID uint64, needSigner bool) string {
			env := newTestEnv(t, Config{})
			env.connector.EXPECT().Connect(gomock.Any()).Return(env.provider, nil).AnyTimes()
			env.provider.EXPECT().ChainID(gomock.Any()).Return(new(big.Int).SetUint64(chainID), nil).AnyTimes()

			provider, err := env.controller.GetProviderOrSigner(context.Background(), needSigner)
			switch {
			case !errors.Is(err, ErrWrongNetwork):
				return fmt.Sprintf("expected %s but got %v", ErrWrongNetwork, err)
			case provider != nil:
				return "unexpected provider"
			case env.controller.Snapshot() != (Snapshot{}):
				return fmt.Sprintf("unexpected state %+v", env.controller.Snapshot())
			case env.controller.TakeAlert() != WrongNetworkAlert:
				return "missing alert"
			}
			return ""
		},
		gen.UInt64().SuchThat(func(chainID uint64) bool {
			return chainID != testChainID
		}),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
