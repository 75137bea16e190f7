package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// abandonedCause labels games that were running when the connection ended.
const abandonedCause = "abandoned"

type trackerKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snek/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MetricsAddress serves /metrics when non-empty.
	MetricsAddress string

	// Game settings shared by every session.
	Tick     time.Duration
	Seed     int64
	ShowHelp bool
	Theme    config.Theme
}

// SSHServer wraps a Wish SSH server; every connection plays its own game.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	metrics *metrics.Collector
	http    *http.Server
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snek-ssh",
		})
	}

	if err := hostPort(cfg.Address); err != nil {
		return nil, err
	}
	if cfg.MetricsAddress != "" {
		if err := hostPort(cfg.MetricsAddress); err != nil {
			return nil, err
		}
	}

	srv := &SSHServer{
		config:  cfg,
		metrics: metrics.New(),
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = "~/.snek/host_key"
	}
	hostKeyPath, err := config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, err
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", srv.metrics.Handler())
		srv.http = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	tracker, _ := sshSession.Context().Value(trackerKey{}).(*gameTracker)
	model := NewModel(Options{
		Runtime: core.RuntimeConfig{
			ScreenW: pty.Window.Width,
			ScreenH: pty.Window.Height,
			Tick:    s.config.Tick,
			Seed:    s.config.Seed,
		},
		Theme:    s.config.Theme,
		ShowHelp: s.config.ShowHelp,
		Logger:   s.logger.With("user", sshSession.User()),
		Metrics:  s.metrics,
		tracker:  tracker,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		connID := uuid.NewString()
		s.logger.Info("connection opened",
			"conn", connID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		s.metrics.ConnectionOpened()
		start := time.Now()

		tracker := &gameTracker{}
		sshSession.Context().SetValue(trackerKey{}, tracker)

		next(sshSession)

		s.closeGame(connID, tracker)
		s.metrics.ConnectionClosed()
		s.logger.Info("connection closed",
			"conn", connID,
			"user", sshSession.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// closeGame records a game that was still running when its program ended.
func (s *SSHServer) closeGame(connID string, tracker *gameTracker) {
	score, running := tracker.abandoned()
	if !running {
		return
	}
	s.logger.Info("game abandoned", "conn", connID, "score", score)
	s.metrics.GameOver(abandonedCause, score)
}

// ListenAndServe serves SSH (and metrics, when configured) until ctx is done,
// then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	errs := make(chan error, 2)

	s.logger.Info("starting SSH server", "address", s.config.Address)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs <- fmt.Errorf("ssh server: %w", err)
		}
	}()

	if s.http != nil {
		s.logger.Info("serving metrics", "address", s.http.Addr)
		go func() {
			if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
	case serveErr = <-errs:
		s.logger.Error("server error", "error", serveErr)
	}

	if err := s.Shutdown(); err != nil {
		return errors.Join(serveErr, err)
	}
	return serveErr
}

// Shutdown gracefully stops the servers.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Metrics returns the server's collector.
func (s *SSHServer) Metrics() *metrics.Collector {
	return s.metrics
}

// hostPort reports whether addr is a usable listen address.
func hostPort(addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	return nil
}
