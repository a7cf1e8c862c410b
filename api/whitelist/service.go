// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package whitelist exposes the whitelist controller over JSON-RPC.
//
// Operation failures never fail the call. They are reported in the reply next
// to the state, which is unchanged by the failed operation.
package whitelist

import (
	"errors"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/whitelist"

	cjson "github.com/ava-labs/whitelist-dapp/utils/json"
)

const serviceName = "whitelist"

// Whitelist is the API service for the whitelist page
type Whitelist struct {
	log        logging.Logger
	controller *whitelist.Controller
}

// NewService returns a new whitelist API service
func NewService(log logging.Logger, controller *whitelist.Controller) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(&Whitelist{
		log:        log,
		controller: controller,
	}, serviceName)
}

// StateReply is the page state as it would be rendered
type StateReply struct {
	Connected bool           `json:"connected"`
	Joined    bool           `json:"joined"`
	Loading   bool           `json:"loading"`
	Count     cjson.Uint64   `json:"count"`
	View      whitelist.View `json:"view"`
	Label     string         `json:"label"`
	// Alert is returned once and then cleared.
	Alert string `json:"alert,omitempty"`
}

// OperationReply is the page state after an operation
type OperationReply struct {
	StateReply
	// Error is the reason the operation failed, if it did.
	Error string `json:"error,omitempty"`
}

// OperationArgs are the arguments of operations that run in the background
type OperationArgs struct {
	// Wait makes the call return once the background work is done.
	Wait bool `json:"wait"`
}

// GetState returns the page state
func (w *Whitelist) GetState(_ *http.Request, _ *struct{}, reply *StateReply) error {
	w.log.Debug("API called",
		zap.String("service", serviceName),
		zap.String("method", "getState"),
	)

	w.state(reply)
	return nil
}

// ConnectWallet connects the wallet session. The membership and the count are
// read in the background unless [args.Wait] is set.
func (w *Whitelist) ConnectWallet(r *http.Request, args *OperationArgs, reply *OperationReply) error {
	w.log.Debug("API called",
		zap.String("service", serviceName),
		zap.String("method", "connectWallet"),
		zap.Bool("wait", args.Wait),
	)

	var err error
	if args.Wait {
		err = w.controller.ConnectWalletAndRead(r.Context())
	} else {
		err = w.controller.ConnectWallet(r.Context())
	}
	w.operation(err, reply)
	return nil
}

// Join adds the wallet's account to the whitelist. The transaction is
// submitted in the background unless [args.Wait] is set, in which case the
// reply carries the outcome of the join.
func (w *Whitelist) Join(r *http.Request, args *OperationArgs, reply *OperationReply) error {
	w.log.Debug("API called",
		zap.String("service", serviceName),
		zap.String("method", "join"),
		zap.Bool("wait", args.Wait),
	)

	var err error
	if args.Wait {
		err = w.controller.AddAddressToWhitelist(r.Context())
	} else {
		w.controller.StartJoin()
	}
	w.operation(err, reply)
	return nil
}

// Refresh reads the membership and the count again
func (w *Whitelist) Refresh(r *http.Request, _ *struct{}, reply *OperationReply) error {
	w.log.Debug("API called",
		zap.String("service", serviceName),
		zap.String("method", "refresh"),
	)

	_, joinedErr := w.controller.CheckIfAddressInWhitelist(r.Context())
	_, countErr := w.controller.GetNumberOfWhitelisted(r.Context())
	w.operation(errors.Join(joinedErr, countErr), reply)
	return nil
}

func (w *Whitelist) state(reply *StateReply) {
	snapshot := w.controller.Snapshot()
	view := whitelist.Select(snapshot)
	*reply = StateReply{
		Connected: snapshot.Connected,
		Joined:    snapshot.Joined,
		Loading:   snapshot.Loading,
		Count:     cjson.Uint64(snapshot.Count),
		View:      view,
		Label:     view.Label(),
		Alert:     w.controller.TakeAlert(),
	}
}

func (w *Whitelist) operation(err error, reply *OperationReply) {
	w.state(&reply.StateReply)
	if err != nil {
		reply.Error = err.Error()
	}
}
