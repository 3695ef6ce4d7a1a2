package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartHTTPServerStopsOnContextCancel(t *testing.T) {
	app := newTestApplication()
	app.config.Server.Port = 0 // let the OS pick a free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, app.setupRouter())
	}()

	// Give the listener a moment to come up before requesting shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestStartHTTPServerReportsListenFailure(t *testing.T) {
	// Occupy a port so the server cannot bind to it.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	app := newTestApplication()
	app.config.Server.Port = listener.Addr().(*net.TCPAddr).Port

	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(context.Background(), app.setupRouter())
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not report the listen failure")
	}
}
