// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	_ Factory = (*factory)(nil)

	errLoggerExists = errors.New("logger already exists")
)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type factory struct {
	config Config
	lock   sync.Mutex

	// For each logger created by this factory:
	// Logger name --> the logger.
	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured with
// the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]Logger),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(config Config) (Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("%w: %q", errLoggerExists, config.LoggerName)
	}

	consoleEnc := config.LogFormat.ConsoleEncoder()
	consoleCore := NewWrappedCore(config.DisplayLevel, stdout{os.Stdout}, consoleEnc)
	consoleCore.WriterDisabled = config.DisableWriterDisplaying

	cores := []WrappedCore{consoleCore}
	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory %q: %w", config.Directory, err)
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,  // megabytes
			MaxAge:     config.MaxAge,   // days
			MaxBackups: config.MaxFiles, // files
			Compress:   config.Compress,
		}
		fileCore := NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder())
		cores = append(cores, fileCore)
	}

	prefix := config.LogFormat.WrapPrefix(config.MsgPrefix)
	l := NewLogger(prefix, cores...)
	f.loggers[config.LoggerName] = l
	return l, nil
}

func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	if config.MsgPrefix == "" {
		config.MsgPrefix = name
	}
	return f.makeLogger(config)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = nil
}

// stdout is never closed by a logger being stopped.
type stdout struct {
	*os.File
}

func (stdout) Close() error {
	return nil
}
