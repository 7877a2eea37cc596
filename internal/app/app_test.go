package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heavybuild/heavybuild-pro/internal/config"
	testhelpers "github.com/heavybuild/heavybuild-pro/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewStoreFacadeUsesGatewayKey(t *testing.T) {
	facade := newStoreFacade(facadeParams{Config: &config.Config{RazorpayKeyID: "rzp_live_key"}})
	if facade.GatewayKeyID() != "rzp_live_key" {
		t.Fatalf("unexpected key id %q", facade.GatewayKeyID())
	}
}

func TestBootstrapAdmin(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		seeder    *testhelpers.AdminSeederStub
		wantCalls int
		wantErr   bool
	}{
		{
			name:   "skipped without credentials",
			cfg:    &config.Config{},
			seeder: &testhelpers.AdminSeederStub{},
		},
		{
			name:      "creates admin",
			cfg:       &config.Config{AdminLogin: "root", AdminPassword: "secret", AdminEmail: "ops@example.com"},
			seeder:    &testhelpers.AdminSeederStub{Created: true},
			wantCalls: 1,
		},
		{
			name:      "existing admin",
			cfg:       &config.Config{AdminLogin: "root", AdminPassword: "secret"},
			seeder:    &testhelpers.AdminSeederStub{},
			wantCalls: 1,
		},
		{
			name:      "storage failure aborts start",
			cfg:       &config.Config{AdminLogin: "root", AdminPassword: "secret"},
			seeder:    &testhelpers.AdminSeederStub{Err: errors.New("db down")},
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &testhelpers.LifecycleRecorder{}
			bootstrapAdmin(recorder, tt.seeder, tt.cfg, discardLogger())

			err := recorder.Start(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected start error: %v", err)
			}
			if len(tt.seeder.Calls) != tt.wantCalls {
				t.Fatalf("expected %d seeder calls, got %d", tt.wantCalls, len(tt.seeder.Calls))
			}
		})
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := recorder.Start(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.Stop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "bad addr"},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = recorder.Stop(context.Background())
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
