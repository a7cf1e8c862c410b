// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"

	cjson "github.com/ava-labs/whitelist-dapp/utils/json"
)

const serviceName = "health"

// Service exposes a [Reporter] over JSON-RPC
type Service struct {
	log      logging.Logger
	reporter Reporter
}

// APIReply is the response for Readiness and Liveness.
type APIReply struct {
	Checks  map[string]Result `json:"checks"`
	Healthy bool              `json:"healthy"`
}

// NewService returns the health API service
func NewService(log logging.Logger, reporter Reporter) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(&Service{
		log:      log,
		reporter: reporter,
	}, serviceName)
}

// Readiness returns if the page is served with a working wallet behind it
func (s *Service) Readiness(_ *http.Request, _ *struct{}, reply *APIReply) error {
	s.report(Readiness, reply)
	return nil
}

// Liveness returns if the process is in need of a restart
func (s *Service) Liveness(_ *http.Request, _ *struct{}, reply *APIReply) error {
	s.report(Liveness, reply)
	return nil
}

func (s *Service) report(kind Kind, reply *APIReply) {
	s.log.Debug("API called",
		zap.String("service", serviceName),
		zap.Stringer("method", kind),
	)
	reply.Checks, reply.Healthy = s.reporter.Report(kind)
}

// NewGetHandler returns a handler answering GET requests with the checks of
// [kind]. Unhealthy reports are answered with 503.
func NewGetHandler(reporter Reporter, kind Kind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		checks, healthy := reporter.Report(kind)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		// The header is already written, so an encoding error can't be
		// reported.
		_ = json.NewEncoder(w).Encode(APIReply{
			Checks:  checks,
			Healthy: healthy,
		})
	})
}
