// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ava-labs/whitelist-dapp/app"
	"github.com/ava-labs/whitelist-dapp/config"
	"github.com/ava-labs/whitelist-dapp/version"
)

func main() {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Printf("couldn't configure flags: %s\n", err)
		os.Exit(1)
	}

	if v.GetBool(config.VersionKey) {
		fmt.Print(version.String(version.GitCommit))
		os.Exit(0)
	}

	whitelistConfig, err := config.GetConfig(v)
	if err != nil {
		fmt.Printf("couldn't load config: %s\n", err)
		os.Exit(1)
	}

	whitelistApp, err := app.New(whitelistConfig)
	if err != nil {
		fmt.Printf("couldn't start whitelistd: %s\n", err)
		os.Exit(1)
	}

	exitCode := app.Run(context.Background(), whitelistApp)
	os.Exit(exitCode)
}
