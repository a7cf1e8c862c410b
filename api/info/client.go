// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"context"

	"github.com/ava-labs/whitelist-dapp/utils/rpc"
)

var _ Client = (*client)(nil)

// Client interface for an Info API Client
type Client interface {
	GetNodeVersion(context.Context, ...rpc.Option) (*GetNodeVersionReply, error)
	GetNetwork(context.Context, ...rpc.Option) (*GetNetworkReply, error)
}

type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a new Info API Client
func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri+"/ext/info",
		serviceName,
	)}
}

func (c *client) GetNodeVersion(ctx context.Context, options ...rpc.Option) (*GetNodeVersionReply, error) {
	res := &GetNodeVersionReply{}
	err := c.requester.SendRequest(ctx, "getNodeVersion", struct{}{}, res, options...)
	return res, err
}

func (c *client) GetNetwork(ctx context.Context, options ...rpc.Option) (*GetNetworkReply, error) {
	res := &GetNetworkReply{}
	err := c.requester.SendRequest(ctx, "getNetwork", struct{}{}, res, options...)
	return res, err
}
