package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/tomz197/aimtrainer/internal/config"
	"github.com/tomz197/aimtrainer/internal/draw"
	"github.com/tomz197/aimtrainer/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultMaxSessions = 64
	defaultIdleTimeout = 5 * time.Minute
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aimtrainer",
	})
	log.SetDefault(logger)

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	maxSessions := config.GetEnvInt("SSH_MAX_SESSIONS", defaultMaxSessions)
	idleTimeout := config.GetEnvDuration("SSH_IDLE_TIMEOUT", defaultIdleTimeout)
	log.Info("ssh config", "host", host, "port", port, "hostKey", hostKeyPath,
		"maxSessions", maxSessions, "idleTimeout", idleTimeout)

	games := &gameHandler{maxSessions: int64(maxSessions)}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithIdleTimeout(idleTimeout),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for mouse input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("shutting down server", "activeSessions", games.active.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		// Players still mid-game are cut off
		log.Warn("graceful shutdown timed out, closing connections", "err", err)
		if err := s.Close(); err != nil {
			log.Error("close error", "err", err)
		}
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	maxSessions int64
	active      atomic.Int64
}

// middleware handles SSH sessions and runs the game.
func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		if n := g.active.Add(1); g.maxSessions > 0 && n > g.maxSessions {
			g.active.Add(-1)
			fmt.Fprintln(sess, "Server is full, please try again later.")
			log.Warn("session rejected", "user", sess.User(), "active", n-1)
			return
		}
		defer g.active.Add(-1)

		id := uuid.NewString()
		logger := log.With("id", id, "user", sess.User())
		logger.Info("session started", "term", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		stats, err := loop.Run(sess, sess, loop.Options{TermSizeFunc: sizeTracker.getSize})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		accuracy := "n/a"
		if pct, ok := stats.Accuracy(); ok {
			accuracy = fmt.Sprintf("%.1f%%", pct)
		}
		logger.Info("session ended",
			"elapsed", loop.FormatTime(stats.Elapsed),
			"hits", stats.Hits,
			"misses", stats.Misses,
			"clicks", stats.Clicks,
			"accuracy", accuracy,
		)
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
