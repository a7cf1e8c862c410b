// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/version"

	cjson "github.com/ava-labs/whitelist-dapp/utils/json"
)

const serviceName = "info"

// Info is the API service for static information about this process
type Info struct {
	Parameters
	log logging.Logger
}

type Parameters struct {
	Version         *version.Application
	GitCommit       string
	NetworkName     string
	ChainID         uint64
	ContractAddress common.Address
}

// NewService returns a new info API service
func NewService(log logging.Logger, parameters Parameters) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(&Info{
		Parameters: parameters,
		log:        log,
	}, serviceName)
}

// GetNodeVersionReply are the results from calling GetNodeVersion
type GetNodeVersionReply struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
}

// GetNodeVersion returns the version this process is running
func (i *Info) GetNodeVersion(_ *http.Request, _ *struct{}, reply *GetNodeVersionReply) error {
	i.log.Debug("API called",
		zap.String("service", serviceName),
		zap.String("method", "getNodeVersion"),
	)

	reply.Version = i.Version.String()
	reply.GitCommit = i.GitCommit
	return nil
}

// GetNetworkReply are the results from calling GetNetwork
type GetNetworkReply struct {
	NetworkName string         `json:"networkName"`
	ChainID     cjson.Uint64   `json:"chainID"`
	Contract    common.Address `json:"contract"`
}

// GetNetwork returns the network the whitelist contract is expected on
func (i *Info) GetNetwork(_ *http.Request, _ *struct{}, reply *GetNetworkReply) error {
	i.log.Debug("API called",
		zap.String("service", serviceName),
		zap.String("method", "getNetwork"),
	)

	reply.NetworkName = i.NetworkName
	reply.ChainID = cjson.Uint64(i.ChainID)
	reply.Contract = i.ContractAddress
	return nil
}
