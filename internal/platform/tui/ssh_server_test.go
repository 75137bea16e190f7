package tui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	return SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "keys", "host_key"),
		IdleTimeout: time.Minute,
		Tick:        150 * time.Millisecond,
		Theme:       testTheme(t),
	}
}

func TestHostPort(t *testing.T) {
	tests := []struct {
		addr string
		ok   bool
	}{
		{":23234", true},
		{"127.0.0.1:0", true},
		{"localhost:2222", true},
		{"23234", false},
		{"", false},
	}

	for _, tt := range tests {
		err := hostPort(tt.addr)
		if tt.ok && err != nil {
			t.Errorf("hostPort(%q) = %v, want nil", tt.addr, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("hostPort(%q) = nil, want error", tt.addr)
		}
	}
}

func TestNewSSHServerRejectsBadAddress(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Address = "nope"
	_, err := NewSSHServer(cfg, log.New(io.Discard))
	require.Error(t, err)

	cfg = testServerConfig(t)
	cfg.MetricsAddress = "9090"
	_, err = NewSSHServer(cfg, log.New(io.Discard))
	require.Error(t, err)
}

func TestNewSSHServer(t *testing.T) {
	cfg := testServerConfig(t)
	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, cfg.Address, srv.Addr())
	assert.NotNil(t, srv.Metrics())
	assert.Nil(t, srv.http, "metrics server is off without an address")
	assert.DirExists(t, filepath.Dir(cfg.HostKeyPath))
}

func TestNewSSHServerMetricsEndpoint(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.MetricsAddress = "127.0.0.1:0"
	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, srv.http)

	srv.Metrics().ConnectionOpened()

	rec := httptest.NewRecorder()
	srv.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "snek_ssh_connections 1")
}

func TestCloseGameRecordsAbandoned(t *testing.T) {
	srv, err := NewSSHServer(testServerConfig(t), log.New(io.Discard))
	require.NoError(t, err)

	srv.closeGame("finished", &gameTracker{score: 2})
	srv.closeGame("running", &gameTracker{running: true, score: 4})
	srv.closeGame("no tracker", nil)

	rec := httptest.NewRecorder()
	srv.Metrics().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `snek_games_over_total{cause="abandoned"} 1`)
	assert.Contains(t, body, "snek_final_score_count 1")
}
