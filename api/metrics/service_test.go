// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestGetMetrics(t *testing.T) {
	require := require.New(t)

	registry, handler, err := NewService()
	require.NoError(err)

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "whitelist",
		Name:      "test",
		Help:      "test counter",
	})
	require.NoError(registry.Register(counter))
	counter.Add(3)

	mux := http.NewServeMux()
	mux.Handle("/ext/metrics", handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	metrics, err := NewClient(server.URL).GetMetrics(context.Background())
	require.NoError(err)

	require.Contains(metrics, "whitelist_test")
	require.Equal(3.0, metrics["whitelist_test"].GetMetric()[0].GetCounter().GetValue())
	require.Contains(metrics, "go_goroutines")
	require.Contains(metrics, "promhttp_metric_handler_requests_total")
}

func TestGetMetricsStatusCode(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewClient(server.URL).GetMetrics(context.Background())
	require.ErrorContains(t, err, "received status code: 404")
}

func TestGetWhitelistMetrics(t *testing.T) {
	require := require.New(t)

	registry, handler, err := NewService()
	require.NoError(err)

	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whitelist",
			Name:      "operations",
			Help:      "test operations",
		},
		[]string{"op", "result"},
	)
	whitelisted := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "whitelist",
		Name:      "whitelisted_addresses",
		Help:      "test whitelisted",
	})
	joinInFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "whitelist",
		Name:      "join_in_flight",
		Help:      "test in flight",
	})
	require.NoError(registry.Register(operations))
	require.NoError(registry.Register(whitelisted))
	require.NoError(registry.Register(joinInFlight))

	operations.WithLabelValues("connectWallet", "success").Inc()
	operations.WithLabelValues("addAddressToWhitelist", "wrong_network").Add(2)
	whitelisted.Set(42)
	joinInFlight.Set(1)

	server := httptest.NewServer(handler)
	defer server.Close()

	c := &Client{uri: server.URL}
	m, err := c.GetWhitelistMetrics(context.Background())
	require.NoError(err)
	require.Equal(&WhitelistMetrics{
		Whitelisted:  42,
		JoinInFlight: true,
		Operations: map[string]map[string]uint64{
			"connectWallet":         {"success": 1},
			"addAddressToWhitelist": {"wrong_network": 2},
		},
	}, m)
}

func TestGetWhitelistMetricsMissing(t *testing.T) {
	require := require.New(t)

	_, handler, err := NewService()
	require.NoError(err)
	server := httptest.NewServer(handler)
	defer server.Close()

	c := &Client{uri: server.URL}
	m, err := c.GetWhitelistMetrics(context.Background())
	require.NoError(err)
	require.Zero(m.Whitelisted)
	require.False(m.JoinInFlight)
	require.Empty(m.Operations)
}
