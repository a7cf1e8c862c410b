// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/whitelist-dapp/api/health"
	"github.com/ava-labs/whitelist-dapp/api/info"
	"github.com/ava-labs/whitelist-dapp/api/metrics"
	"github.com/ava-labs/whitelist-dapp/api/server"
	"github.com/ava-labs/whitelist-dapp/config"
	"github.com/ava-labs/whitelist-dapp/utils/constants"
	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/version"
	"github.com/ava-labs/whitelist-dapp/wallet"
	"github.com/ava-labs/whitelist-dapp/whitelist"

	whitelistapi "github.com/ava-labs/whitelist-dapp/api/whitelist"
)

const (
	healthCheckFreq    = 30 * time.Second
	healthCheckTimeout = 10 * time.Second
)

var _ App = (*app)(nil)

type app struct {
	log        logging.Logger
	logFactory logging.Factory

	controller *whitelist.Controller
	health     health.Health
	server     *server.Server
	listener   net.Listener

	stopOnce sync.Once
	eg       errgroup.Group
}

// New wires whitelistd from [config]. Nothing is started until Start is
// called.
func New(config config.Config) (App, error) {
	logFactory := logging.NewFactory(config.LoggingConfig)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("failed to initialize log: %w", err)
	}

	a, err := newApp(log, logFactory, config)
	if err != nil {
		log.Fatal("failed to initialize "+constants.AppName,
			zap.Error(err),
		)
		logFactory.Close()
		return nil, err
	}
	return a, nil
}

func newApp(log logging.Logger, logFactory logging.Factory, config config.Config) (*app, error) {
	log.Info("initializing "+constants.AppName,
		zap.Stringer("version", version.Current),
		zap.Reflect("config", config),
	)

	key, err := wallet.LoadKey(
		config.KeyConfig.PrivateKey,
		config.KeyConfig.KeystoreFile,
		config.KeyConfig.KeystorePassword,
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't load account key: %w", err)
	}
	if key == nil && !config.WalletConfig.DisableInjectedProvider {
		log.Warn("no account configured, joining the whitelist will be rejected")
	}

	walletLog, err := logFactory.Make("wallet")
	if err != nil {
		return nil, err
	}
	whitelistLog, err := logFactory.Make("whitelist")
	if err != nil {
		return nil, err
	}
	httpLog, err := logFactory.Make("http")
	if err != nil {
		return nil, err
	}

	registry, metricsHandler, err := metrics.NewService()
	if err != nil {
		return nil, fmt.Errorf("couldn't register process metrics: %w", err)
	}

	controller, err := whitelist.New(
		whitelistLog,
		config.WhitelistConfig,
		func() wallet.Connector {
			return wallet.NewConnector(walletLog, config.WalletConfig, key)
		},
		whitelist.BindContract,
		registry,
	)
	if err != nil {
		return nil, err
	}

	healthChecker, err := health.New(log, healthCheckTimeout, registry)
	if err != nil {
		return nil, fmt.Errorf("couldn't register health metrics: %w", err)
	}
	err = errors.Join(
		healthChecker.Register(health.Readiness, "wallet", health.CheckerFunc(controller.HealthCheck)),
		healthChecker.Register(health.Liveness, "whitelist", health.CheckerFunc(func(context.Context) (interface{}, error) {
			return controller.Snapshot(), nil
		})),
	)
	if err != nil {
		return nil, err
	}

	whitelistHandler, err := whitelistapi.NewService(whitelistLog, controller)
	if err != nil {
		return nil, fmt.Errorf("couldn't create whitelist API: %w", err)
	}
	infoHandler, err := info.NewService(log, info.Parameters{
		Version:         version.Current,
		GitCommit:       version.GitCommit,
		NetworkName:     config.NetworkName,
		ChainID:         config.WhitelistConfig.ChainID,
		ContractAddress: config.WhitelistConfig.ContractAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't create info API: %w", err)
	}
	healthHandler, err := health.NewService(log, healthChecker)
	if err != nil {
		return nil, fmt.Errorf("couldn't create health API: %w", err)
	}

	httpServer := server.New(log, server.Config{
		Host:            config.Host,
		Port:            config.Port,
		AllowedOrigins:  config.AllowedOrigins,
		ShutdownTimeout: config.ShutdownTimeout,
		JoinRateLimit:   config.JoinRateLimit,
	})
	err = errors.Join(
		httpServer.AddPage(server.NewPage(whitelistLog, controller), httpLog),
		httpServer.AddRoute(whitelistHandler, "whitelist", "", httpLog),
		httpServer.AddRoute(infoHandler, "info", "", httpLog),
		httpServer.AddRoute(metricsHandler, "metrics", "", httpLog),
		httpServer.AddRoute(healthHandler, "health", "", httpLog),
		httpServer.AddRoute(health.NewGetHandler(healthChecker, health.Readiness), "health", health.Readiness.Endpoint(), httpLog),
		httpServer.AddRoute(health.NewGetHandler(healthChecker, health.Liveness), "health", health.Liveness.Endpoint(), httpLog),
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't add API routes: %w", err)
	}

	listener, err := net.Listen("tcp", net.JoinHostPort(config.Host, fmt.Sprint(config.Port)))
	if err != nil {
		return nil, err
	}

	return &app{
		log:        log,
		logFactory: logFactory,
		controller: controller,
		health:     healthChecker,
		server:     httpServer,
		listener:   listener,
	}, nil
}

func (a *app) Start() error {
	a.health.Start(healthCheckFreq)
	a.eg.Go(func() error {
		err := a.server.DispatchListener(a.listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	return nil
}

func (a *app) Stop() error {
	var err error
	a.stopOnce.Do(func() {
		a.log.Info("shutting down " + constants.AppName)
		err = a.server.Shutdown()
	})
	return err
}

func (a *app) ExitCode() (int, error) {
	err := a.eg.Wait()

	a.health.Stop()
	a.controller.Close()
	if err != nil {
		a.log.Error("HTTP server failed",
			zap.Error(err),
		)
	}
	a.log.Info(constants.AppName + " stopped")
	a.logFactory.Close()

	if err != nil {
		return 1, err
	}
	return 0, nil
}
