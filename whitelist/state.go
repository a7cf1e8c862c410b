// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import "sync"

// Snapshot is a point in time copy of the controller state.
type Snapshot struct {
	Connected bool   `json:"connected"`
	Joined    bool   `json:"joined"`
	Loading   bool   `json:"loading"`
	Count     uint64 `json:"count"`
}

// state is shared by every operation of the controller. Operations run
// concurrently, so every access goes through the lock.
type state struct {
	lock sync.RWMutex

	snapshot Snapshot
	// alert is shown to the user once and then cleared.
	alert string
}

func (s *state) get() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.snapshot
}

// setConnected marks the session connected. Nothing ever marks it
// disconnected again.
func (s *state) setConnected() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.snapshot.Connected = true
}

func (s *state) setJoined(joined bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.snapshot.Joined = joined
}

func (s *state) setLoading(loading bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.snapshot.Loading = loading
}

// beginJoin sets the loading flag unless it is already set. Returns false if a
// join was already in flight.
func (s *state) beginJoin() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.snapshot.Loading {
		return false
	}
	s.snapshot.Loading = true
	return true
}

func (s *state) setCount(count uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.snapshot.Count = count
}

func (s *state) setAlert(alert string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.alert = alert
}

func (s *state) takeAlert() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	alert := s.alert
	s.alert = ""
	return alert
}
