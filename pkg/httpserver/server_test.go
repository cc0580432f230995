package httpserver_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credportal/pkg/httpserver"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func testConfig() httpserver.Config {
	cfg := httpserver.DefaultConfig()
	cfg.ShutdownTimeout = time.Second
	return cfg
}

// serve runs srv in the background and waits until it reports ready.
func serve(t *testing.T, ctx context.Context, srv *httpserver.Server, ln net.Listener, h http.Handler) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, h) }()
	require.Eventually(t, func() bool {
		return srv.Ready(context.Background()) == nil
	}, 2*time.Second, 10*time.Millisecond)
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		require.FailNow(t, "server did not stop")
		return nil
	}
}

func statusOf(t *testing.T, url string) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp.StatusCode
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	url := "http://" + ln.Addr().String()
	srv := httpserver.New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := serve(t, ctx, srv, ln, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	assert.Equal(t, http.StatusAccepted, statusOf(t, url))

	cancel()
	require.NoError(t, wait(t, done))
	assert.ErrorIs(t, srv.Ready(context.Background()), httpserver.ErrDraining)
}

func TestServer_ReadinessDuringDrain(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	url := "http://" + ln.Addr().String()
	cfg := testConfig()
	cfg.DrainDelay = 400 * time.Millisecond
	srv := httpserver.New(cfg)

	mux := http.NewServeMux()
	mux.Handle("/health/ready", httpserver.ReadinessHandler(nil, httpserver.Check{Name: "http_server", Fn: srv.Ready}))
	mux.Handle("/health/live", httpserver.LivenessHandler())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := serve(t, ctx, srv, ln, mux)
	assert.Equal(t, http.StatusOK, statusOf(t, url+"/health/ready"))

	cancel()
	require.Eventually(t, func() bool {
		return srv.Ready(context.Background()) != nil
	}, time.Second, 5*time.Millisecond)

	// Still serving while draining, but no longer ready.
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(t, url+"/health/ready"))
	assert.Equal(t, http.StatusOK, statusOf(t, url+"/health/live"))

	require.NoError(t, wait(t, done))
}

func TestServer_RunInvalidAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Addr = "127.0.0.1:-1"
	err := httpserver.New(cfg).Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestServer_RunListensOnAddr(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := testConfig()
	cfg.Addr = addr
	srv := httpserver.New(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, wait(t, done))
}

func TestServer_AlreadyRunning(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := serve(t, ctx, srv, listen(t), nil)

	second := listen(t)
	err := srv.Serve(ctx, second, nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
	_, err = second.Accept()
	assert.Error(t, err, "listener should be closed")

	cancel()
	require.NoError(t, wait(t, done))
}

func TestServer_ManualShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(testConfig())
	done := serve(t, context.Background(), srv, listen(t), nil)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, wait(t, done))
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown")
}

func TestServer_ShutdownBeforeServe(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(testConfig())
	assert.ErrorIs(t, srv.Ready(context.Background()), httpserver.ErrNotRunning)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.ErrorIs(t, srv.Ready(context.Background()), httpserver.ErrDraining)

	err := srv.Serve(context.Background(), listen(t), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, http.ErrServerClosed)
}

func TestServer_ShutdownWaitsForInFlight(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	url := "http://" + ln.Addr().String()
	srv := httpserver.New(testConfig())

	started := make(chan struct{})
	release := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := serve(t, ctx, srv, ln, h)

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get(url)
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()
	<-started

	cancel()
	time.Sleep(50 * time.Millisecond)
	close(release)

	require.NoError(t, wait(t, done))
	assert.Equal(t, http.StatusOK, <-status)
}
