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

	"github.com/tomz197/ufostrike/internal/audio"
	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/draw"
	"github.com/tomz197/ufostrike/internal/loop"
	gameconfig "github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/render"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultMaxSessions = 64
)

// shutdownGrace is how long players see the shutdown notice.
const shutdownGrace = time.Duration(gameconfig.ShutdownDisplaySeconds * float64(time.Second))

// games tracks the running game sessions.
type games struct {
	ctx    context.Context // Cancelled when the server shuts down
	logger *log.Logger
	max    int64
	active atomic.Int64
	wg     sync.WaitGroup
}

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")
	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	maxSessions, err := config.GetEnvInt("SSH_MAX_SESSIONS", defaultMaxSessions)
	if err != nil {
		logger.Fatal("invalid config", "err", err)
	}
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath,
		"maxSessions", maxSessions, "workingDir", workingDir)

	rootCtx, cancelGames := context.WithCancel(context.Background())
	g := &games{ctx: rootCtx, logger: logger, max: int64(maxSessions)}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			g.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
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
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "players", g.active.Load())

	// Players get the shutdown notice and are disconnected after the grace.
	cancelGames()
	g.wait(shutdownGrace + 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// wait blocks until every game has ended or the timeout passes.
func (g *games) wait(timeout time.Duration) {
	finished := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		g.logger.Info("all games ended")
	case <-time.After(timeout):
		g.logger.Warn("games still running at shutdown", "players", g.active.Load())
	}
}

// middleware runs one single-player game per SSH session.
func (g *games) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		if g.ctx.Err() != nil {
			fmt.Fprintln(sess, "Server is shutting down. Please try again later.")
			return
		}
		if n := g.active.Add(1); n > g.max {
			g.active.Add(-1)
			g.logger.Warn("session limit reached", "user", sess.User(), "limit", g.max)
			fmt.Fprintln(sess, "Server is full. Please try again later.")
			return
		}
		g.wg.Add(1)
		defer func() {
			g.active.Add(-1)
			g.wg.Done()
		}()

		g.logger.Info("new game session", "user", sess.User(), "term", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(g.ctx, cancel)
		defer stop()

		opts := loop.Options{
			Seed:            time.Now().UnixNano(),
			Logger:          g.logger.With("user", sess.User()),
			Sound:           audio.Nop{},
			TrackInactivity: true,
			ShutdownGrace:   shutdownGrace,
		}
		view := render.New(sess, sizeTracker.getSize)
		if err := loop.Run(ctx, sess, view, opts); err != nil {
			g.logger.Error("game error", "user", sess.User(), "err", err)
		}

		g.logger.Info("session ended", "user", sess.User())
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
