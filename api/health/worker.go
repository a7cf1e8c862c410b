// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/maps"
)

var errDuplicateCheck = errors.New("duplicated check")

// worker periodically runs the checks of one kind
type worker struct {
	failing prometheus.Gauge
	timeout time.Duration

	// lock guards [checks] and [latest]. It is never held while a check runs.
	lock   sync.RWMutex
	checks map[string]Checker
	latest map[string]Result

	startOnce sync.Once
	stopOnce  sync.Once
	closer    chan struct{}
	wg        sync.WaitGroup
}

func newWorker(timeout time.Duration, failing prometheus.Gauge) *worker {
	return &worker{
		failing: failing,
		timeout: timeout,
		checks:  make(map[string]Checker),
		latest:  make(map[string]Result),
		closer:  make(chan struct{}),
	}
}

// register adds a check that fails until it first runs
func (w *worker) register(name string, checker Checker) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if _, ok := w.checks[name]; ok {
		return fmt.Errorf("%w: %q", errDuplicateCheck, name)
	}
	w.checks[name] = checker
	w.latest[name] = notYetRunResult
	w.failing.Inc()
	return nil
}

func (w *worker) results() (map[string]Result, bool) {
	w.lock.RLock()
	defer w.lock.RUnlock()

	healthy := true
	for _, result := range w.latest {
		if result.Error != nil {
			healthy = false
			break
		}
	}
	return maps.Clone(w.latest), healthy
}

func (w *worker) start(freq time.Duration) {
	w.startOnce.Do(func() {
		w.wg.Add(1)
		go w.loop(freq)
	})
}

func (w *worker) stop() {
	w.stopOnce.Do(func() {
		close(w.closer)
		w.wg.Wait()
	})
}

func (w *worker) loop(freq time.Duration) {
	defer w.wg.Done()

	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for {
		w.runChecks()
		select {
		case <-ticker.C:
		case <-w.closer:
			return
		}
	}
}

// runChecks runs every registered check concurrently. Checks registered while
// running are picked up by the next run.
func (w *worker) runChecks() {
	w.lock.RLock()
	checks := maps.Clone(w.checks)
	w.lock.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var wg sync.WaitGroup
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check Checker) {
			defer wg.Done()

			start := time.Now()
			details, err := check.HealthCheck(ctx)
			w.record(name, details, err, start, time.Now())
		}(name, check)
	}
	wg.Wait()
}

func (w *worker) record(name string, details interface{}, err error, start, end time.Time) {
	w.lock.Lock()
	defer w.lock.Unlock()

	prev := w.latest[name]
	next := prev.next(details, err, start, end)
	switch {
	case prev.Error == nil && next.Error != nil:
		w.failing.Inc()
	case prev.Error != nil && next.Error == nil:
		w.failing.Dec()
	}
	w.latest[name] = next
}
