// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
)

const (
	// Readiness checks report whether the page can be served with a working
	// wallet behind it.
	Readiness Kind = iota
	// Liveness checks report whether the process needs a restart.
	Liveness

	numKinds = int(Liveness) + 1
)

var (
	_ Health = (*health)(nil)

	errUnknownKind = errors.New("unknown kind of check")
)

// Kind of a health check
type Kind uint8

func (k Kind) String() string {
	switch k {
	case Readiness:
		return "readiness"
	case Liveness:
		return "liveness"
	default:
		return "unknown"
	}
}

// Endpoint is the path, relative to the health API, serving GET requests for
// checks of this kind
func (k Kind) Endpoint() string {
	return "/" + k.String()
}

// Reporter returns the latest results of the checks of a kind and whether all
// of them passed.
type Reporter interface {
	Report(kind Kind) (map[string]Result, bool)
}

type Health interface {
	Reporter

	// Register [checker] as the check [name] of [kind]. Names are unique per
	// kind.
	Register(kind Kind, name string, checker Checker) error

	Start(freq time.Duration)
	Stop()
}

type health struct {
	log     logging.Logger
	workers [numKinds]*worker
}

// New returns a health service whose checks each run with [timeout].
func New(log logging.Logger, timeout time.Duration, registerer prometheus.Registerer) (Health, error) {
	failingChecks := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "health",
			Name:      "checks_failing",
			Help:      "number of currently failing health checks",
		},
		[]string{"kind"},
	)
	if err := registerer.Register(failingChecks); err != nil {
		return nil, err
	}

	h := &health{log: log}
	for i := range h.workers {
		kind := Kind(i)
		h.workers[i] = newWorker(timeout, failingChecks.WithLabelValues(kind.String()))
	}
	return h, nil
}

func (h *health) worker(kind Kind) (*worker, error) {
	if int(kind) >= numKinds {
		return nil, fmt.Errorf("%w: %d", errUnknownKind, kind)
	}
	return h.workers[kind], nil
}

func (h *health) Register(kind Kind, name string, checker Checker) error {
	w, err := h.worker(kind)
	if err != nil {
		return err
	}
	return w.register(name, checker)
}

func (h *health) Report(kind Kind) (map[string]Result, bool) {
	w, err := h.worker(kind)
	if err != nil {
		return nil, false
	}

	results, healthy := w.results()
	if !healthy {
		h.log.Warn("failing health check",
			zap.Stringer("kind", kind),
			zap.Reflect("reason", results),
		)
	}
	return results, healthy
}

func (h *health) Start(freq time.Duration) {
	for _, w := range h.workers {
		w.start(freq)
	}
}

func (h *health) Stop() {
	for _, w := range h.workers {
		w.stop()
	}
}
