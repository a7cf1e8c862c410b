// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opLabel     = "op"
	resultLabel = "result"

	resultSuccess = "success"
	resultUnknown = "unknown"
)

var resultLabels = map[error]string{
	ErrWrongNetwork:   "wrong_network",
	ErrWalletRejected: "wallet_rejected",
	ErrRPCFailure:     "rpc_failure",
	ErrContractRevert: "contract_revert",
	ErrJoinInFlight:   "join_in_flight",
}

type metrics struct {
	operations  *prometheus.CounterVec
	whitelisted prometheus.Gauge
	loading     prometheus.Gauge
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations",
				Help:      "Number of whitelist operations by outcome",
			},
			[]string{opLabel, resultLabel},
		),
		whitelisted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "whitelisted_addresses",
			Help:      "Last observed number of whitelisted addresses",
		}),
		loading: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "join_in_flight",
			Help:      "1 while a join transaction is marked in flight",
		}),
	}

	err := errors.Join(
		registerer.Register(m.operations),
		registerer.Register(m.whitelisted),
		registerer.Register(m.loading),
	)
	return m, err
}

func (m *metrics) observe(op string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultUnknown
		if label, ok := resultLabels[Kind(err)]; ok {
			result = label
		}
	}
	m.operations.WithLabelValues(op, result).Inc()
}

func (m *metrics) observeState(s Snapshot) {
	m.whitelisted.Set(float64(s.Count))
	if s.Loading {
		m.loading.Set(1)
	} else {
		m.loading.Set(0)
	}
}
