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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/server/handler"
	"github.com/storebook/api-tests/pkg/store"
)

// Options configure the reference API.
type Options struct {
	// ListenAddress is where the server listens.
	ListenAddress string

	// FixturesFile overrides the embedded dataset.
	FixturesFile string

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Handler options.
	Handler handler.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":8080", "API listener address.")
	f.StringVar(&o.FixturesFile, "fixtures-file", "", "YAML fixtures to load instead of the embedded dataset.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for request headers.")
	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", 10*time.Second, "How long to wait for requests to drain on shutdown.")

	o.Handler.AddFlags(f)
}

// Dataset loads the configured fixtures.
func (o *Options) Dataset() (*fixtures.Dataset, error) {
	if o.FixturesFile == "" {
		return fixtures.Default()
	}

	return fixtures.Load(o.FixturesFile)
}

// Server is a reference API loaded with a dataset.
type Server struct {
	options *Options
	store   *store.Store
	handler http.Handler
}

// New loads the dataset into a fresh store and builds the router.
func New(ctx context.Context, log logr.Logger, data *fixtures.Dataset, options *Options) (*Server, error) {
	s, err := store.New(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	h, err := handler.New(s, &options.Handler)
	if err != nil {
		_ = s.Close()

		return nil, err
	}

	return &Server{
		options: options,
		store:   s,
		handler: Routes(log, h),
	}, nil
}

// Handler returns the API router, e.g. for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)

	server := &http.Server{
		Addr:              s.options.ListenAddress,
		Handler:           s.handler,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		log.Info("server listening", "address", s.options.ListenAddress)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
