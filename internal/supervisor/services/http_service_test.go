// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

// mockServer simulates *http.Server lifecycle behavior.
type mockServer struct {
	listenErr  error
	shutdownCh chan struct{}
	shutdown   bool
}

func newMockServer(listenErr error) *mockServer {
	return &mockServer{listenErr: listenErr, shutdownCh: make(chan struct{})}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.shutdownCh
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(_ context.Context) error {
	m.shutdown = true
	close(m.shutdownCh)
	return nil
}

func TestServeReturnsStartupError(t *testing.T) {
	boom := errors.New("bind: address already in use")
	svc := NewHTTPServerService(newMockServer(boom), time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, boom) {
		t.Errorf("expected wrapped startup error, got: %v", err)
	}
}

func TestServeGracefulShutdownOnCancel(t *testing.T) {
	server := newMockServer(nil)
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
	if !server.shutdown {
		t.Error("expected Shutdown to be called")
	}
}

func TestServiceString(t *testing.T) {
	svc := NewHTTPServerService(newMockServer(nil), 0)
	if svc.String() != "http-server" {
		t.Errorf("unexpected service name %q", svc.String())
	}
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("expected default shutdown timeout, got %s", svc.shutdownTimeout)
	}
}
