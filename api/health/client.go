// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"time"

	"github.com/ava-labs/whitelist-dapp/utils/rpc"
)

var _ Client = (*client)(nil)

// Client for the health API endpoint
type Client interface {
	Readiness(context.Context, ...rpc.Option) (*APIReply, error)
	Liveness(context.Context, ...rpc.Option) (*APIReply, error)
	// AwaitReady polls readiness every [freq] until it is healthy or [ctx] is
	// done
	AwaitReady(ctx context.Context, freq time.Duration, options ...rpc.Option) (bool, error)
}

type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a client of the health API served at [uri]
func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri+"/ext/health",
		serviceName,
	)}
}

func (c *client) Readiness(ctx context.Context, options ...rpc.Option) (*APIReply, error) {
	return c.report(ctx, Readiness, options)
}

func (c *client) Liveness(ctx context.Context, options ...rpc.Option) (*APIReply, error) {
	return c.report(ctx, Liveness, options)
}

func (c *client) report(ctx context.Context, kind Kind, options []rpc.Option) (*APIReply, error) {
	res := &APIReply{}
	err := c.requester.SendRequest(ctx, kind.String(), struct{}{}, res, options...)
	return res, err
}

func (c *client) AwaitReady(ctx context.Context, freq time.Duration, options ...rpc.Option) (bool, error) {
	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for {
		if res, err := c.Readiness(ctx, options...); err == nil && res.Healthy {
			return true, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
