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

package api

import (
	"context"
	"net/http/httptest"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/server"
	"github.com/storebook/api-tests/pkg/server/handler"
)

// LocalServer is an in process reference API seeded with the fixtures, used
// when no API base URL is configured.
type LocalServer struct {
	server *server.Server
	http   *httptest.Server
}

// localLogger sends server logs to the Ginkgo writer when debugging, so they
// are interleaved with the request logs of the failing spec.
func localLogger(debug bool) logr.Logger {
	if !debug {
		return logr.Discard()
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(ginkgo.GinkgoWriter), zapcore.Level(-1))

	return zapr.NewLogger(zap.New(core))
}

func StartLocalServer(ctx context.Context, data *fixtures.Dataset, debug bool) (*LocalServer, error) {
	options := &server.Options{
		Handler: *handler.DefaultOptions(),
	}

	s, err := server.New(ctx, localLogger(debug), data, options)
	if err != nil {
		return nil, err
	}

	return &LocalServer{
		server: s,
		http:   httptest.NewServer(s.Handler()),
	}, nil
}

func (l *LocalServer) URL() string {
	return l.http.URL
}

func (l *LocalServer) Close() error {
	l.http.Close()

	return l.server.Close()
}
