/*
Copyright 2026 the Storebook Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/storebook/api-tests/pkg/server"
)

func main() {
	var options server.Options

	var debug bool

	options.AddFlags(pflag.CommandLine)
	pflag.BoolVar(&debug, "debug", false, "Log every request.")

	pflag.Parse()

	config := zap.NewProductionConfig()

	if debug {
		// logr V(1) maps to zap level -1.
		config.Level = zap.NewAtomicLevelAt(zapcore.Level(-1))
	}

	zl, err := config.Build()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := zapr.NewLogger(zl)
	logger.Info("service starting", "application", "storebook-reference-api")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = logr.NewContext(ctx, logger)

	data, err := options.Dataset()
	if err != nil {
		logger.Error(err, "failed to load fixtures")
		os.Exit(1)
	}

	s, err := server.New(ctx, logger, data, &options)
	if err != nil {
		logger.Error(err, "failed to create server")
		os.Exit(1)
	}

	defer s.Close()

	if err := s.Run(ctx); err != nil {
		logger.Error(err, "server failed")
		os.Exit(1) //nolint:gocritic
	}
}
