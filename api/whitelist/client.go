// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package whitelist

import (
	"context"

	"github.com/ava-labs/whitelist-dapp/utils/rpc"
)

var _ Client = (*client)(nil)

// Client for the whitelist API endpoint
type Client interface {
	GetState(context.Context, ...rpc.Option) (*StateReply, error)
	ConnectWallet(ctx context.Context, wait bool, options ...rpc.Option) (*OperationReply, error)
	Join(ctx context.Context, wait bool, options ...rpc.Option) (*OperationReply, error)
	Refresh(context.Context, ...rpc.Option) (*OperationReply, error)
}

type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a client of the whitelist API served at [uri]
func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri+"/ext/whitelist",
		serviceName,
	)}
}

func (c *client) GetState(ctx context.Context, options ...rpc.Option) (*StateReply, error) {
	res := &StateReply{}
	err := c.requester.SendRequest(ctx, "getState", struct{}{}, res, options...)
	return res, err
}

func (c *client) ConnectWallet(ctx context.Context, wait bool, options ...rpc.Option) (*OperationReply, error) {
	res := &OperationReply{}
	err := c.requester.SendRequest(ctx, "connectWallet", &OperationArgs{
		Wait: wait,
	}, res, options...)
	return res, err
}

func (c *client) Join(ctx context.Context, wait bool, options ...rpc.Option) (*OperationReply, error) {
	res := &OperationReply{}
	err := c.requester.SendRequest(ctx, "join", &OperationArgs{
		Wait: wait,
	}, res, options...)
	return res, err
}

func (c *client) Refresh(ctx context.Context, options ...rpc.Option) (*OperationReply, error) {
	res := &OperationReply{}
	err := c.requester.SendRequest(ctx, "refresh", struct{}{}, res, options...)
	return res, err
}
