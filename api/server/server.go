// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
)

const (
	baseURL           = "/ext"
	readHeaderTimeout = 10 * time.Second
)

type Config struct {
	Host            string
	Port            uint16
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	// JoinRateLimit is the number of joins per second the page accepts. If
	// 0, joins aren't throttled.
	JoinRateLimit float64
}

// Server maintains the HTTP router
type Server struct {
	// log this server writes to
	log logging.Logger
	// Maps endpoints to handlers
	router *router
	// points to the router handlers
	handler http.Handler
	// Listens for HTTP traffic on this address
	listenAddress   string
	shutdownTimeout time.Duration
	joinLimiter     *rate.Limiter

	srv *http.Server
}

// New creates the API server at the configured host and port
func New(log logging.Logger, config Config) *Server {
	router := newRouter()

	log.Info("API created",
		zap.Strings("allowedOrigins", config.AllowedOrigins),
	)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowCredentials: true,
	}).Handler(router)

	return &Server{
		log:             log,
		router:          router,
		handler:         gziphandler.GzipHandler(corsHandler),
		listenAddress:   net.JoinHostPort(config.Host, fmt.Sprint(config.Port)),
		shutdownTimeout: config.ShutdownTimeout,
		joinLimiter:     newLimiter(config.JoinRateLimit),
		srv: &http.Server{
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// DispatchListener serves the API on [listener]
func (s *Server) DispatchListener(listener net.Listener) error {
	s.log.Info("HTTP API server listening",
		zap.Stringer("address", listener.Addr()),
	)
	s.srv.Handler = s.handler
	return s.srv.Serve(listener)
}

// AddRoute registers [handler] at /ext/[base][endpoint]. Requests are logged
// to [loggingWriter] in the Apache combined log format.
func (s *Server) AddRoute(handler http.Handler, base, endpoint string, loggingWriter io.Writer) error {
	url := fmt.Sprintf("%s/%s", baseURL, base)
	s.log.Info("adding route",
		zap.String("url", url),
		zap.String("endpoint", endpoint),
	)
	h := handlers.CombinedLoggingHandler(loggingWriter, handler)
	return s.router.AddRouter(url, endpoint, h)
}

// AddPage registers the routes of the whitelist page at the root
func (s *Server) AddPage(page *Page, loggingWriter io.Writer) error {
	routes := []struct {
		endpoint string
		method   string
		handler  http.Handler
	}{
		{
			endpoint: "/",
			method:   http.MethodGet,
			handler:  http.HandlerFunc(page.Render),
		},
		{
			endpoint: connectEndpoint,
			method:   http.MethodPost,
			handler:  http.HandlerFunc(page.Connect),
		},
		{
			endpoint: joinEndpoint,
			method:   http.MethodPost,
			handler:  throttle(s.joinLimiter, http.HandlerFunc(page.Join)),
		},
	}
	for _, route := range routes {
		s.log.Info("adding page route",
			zap.String("endpoint", route.endpoint),
			zap.String("method", route.method),
		)
		h := handlers.CombinedLoggingHandler(loggingWriter, route.handler)
		if err := s.router.AddRouter("", route.endpoint, h, route.method); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown this server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
