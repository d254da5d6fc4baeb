// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/handler"
	myHTTP "github.com/MKhiriev/go-vmind/internal/handler/http"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVersion string

func (v staticVersion) GetAppVersion(context.Context) string {
	return string(v)
}

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers(cfg config.StructuredConfig) *handler.Handlers {
	services := &service.Services{AppInfoService: staticVersion("v0.1.0")}
	return &handler.Handlers{HTTP: myHTTP.NewHandler(services, cfg, logger.Nop())}
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: freeAddress(t)}}
	srv, err := NewServer(newTestHandlers(cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	url := "http://" + cfg.Server.HTTPAddress + "/api/version/"
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		body = string(raw)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "v0.1.0", body)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}
