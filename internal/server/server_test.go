package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

func TestNewServer_RequiresAddress(t *testing.T) {
	_, err := NewServer(http.NotFoundHandler(), config.DevServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)

	_, err = NewServer(nil, config.DevServerConfig{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	srv, err := NewServer(handler, config.DevServerConfig{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx, l)
	}()

	resp, err := http.Get("http://" + l.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
