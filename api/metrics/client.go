// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/common/expfmt"

	"github.com/ava-labs/whitelist-dapp/utils/rpc"

	dto "github.com/prometheus/client_model/go"
)

const (
	whitelistedName  = "whitelist_whitelisted_addresses"
	joinInFlightName = "whitelist_join_in_flight"
	operationsName   = "whitelist_operations"
)

// WhitelistMetrics are the metrics exported by the whitelist controller
type WhitelistMetrics struct {
	Whitelisted  uint64
	JoinInFlight bool
	// Operations counts operations by name, then by result
	Operations map[string]map[string]uint64
}

// Client scrapes the metrics of a running whitelistd
type Client struct {
	uri string
}

// NewClient returns a client of the metrics served at [uri]
func NewClient(uri string) *Client {
	return &Client{
		uri: uri + "/ext/metrics",
	}
}

// GetMetrics returns every metric family exposed, keyed by name
func (c *Client) GetMetrics(ctx context.Context) (map[string]*dto.MetricFamily, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	//nolint:bodyclose // body is closed via rpc.CleanlyCloseBody
	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to issue request: %w", err)
	}
	defer rpc.CleanlyCloseBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received status code: %d", resp.StatusCode)
	}

	var parser expfmt.TextParser
	return parser.TextToMetricFamilies(resp.Body)
}

// GetWhitelistMetrics returns the controller metrics. Metrics that weren't
// exposed are left at their zero value.
func (c *Client) GetWhitelistMetrics(ctx context.Context) (*WhitelistMetrics, error) {
	families, err := c.GetMetrics(ctx)
	if err != nil {
		return nil, err
	}

	m := &WhitelistMetrics{
		Operations: make(map[string]map[string]uint64),
	}
	if family, ok := families[whitelistedName]; ok && len(family.GetMetric()) > 0 {
		m.Whitelisted = uint64(family.GetMetric()[0].GetGauge().GetValue())
	}
	if family, ok := families[joinInFlightName]; ok && len(family.GetMetric()) > 0 {
		m.JoinInFlight = family.GetMetric()[0].GetGauge().GetValue() != 0
	}
	for _, metric := range families[operationsName].GetMetric() {
		var op, result string
		for _, label := range metric.GetLabel() {
			switch label.GetName() {
			case "op":
				op = label.GetValue()
			case "result":
				result = label.GetValue()
			}
		}
		results, ok := m.Operations[op]
		if !ok {
			results = make(map[string]uint64)
			m.Operations[op] = results
		}
		results[result] = uint64(metric.GetCounter().GetValue())
	}
	return m, nil
}
