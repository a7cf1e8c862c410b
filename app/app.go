// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

type App interface {
	// Start kicks off the application and returns immediately
	Start() error

	// Stop notifies the application to exit and returns immediately. It may be
	// called more than once.
	Stop() error

	// ExitCode should only be called after [Start] returns with no error. It
	// should block until the application finishes
	ExitCode() (int, error)
}

// Run starts [app] and stops it once [ctx] is done or the process receives
// SIGINT or SIGTERM. It returns 1 if [app] failed and its exit code otherwise.
func Run(ctx context.Context, app App) int {
	if err := app.Start(); err != nil {
		return 1
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		<-ctx.Done()
		return app.Stop()
	})

	exitCode, err := app.ExitCode()
	cancel()
	if stopErr := eg.Wait(); stopErr != nil || err != nil {
		return 1
	}
	return exitCode
}
