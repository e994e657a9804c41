package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio"
	"github.com/aisha947/amazon-q-game-challenge/internal/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/draw"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/client"
	gameconfig "github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/server"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

// Global hub - shared by all SSH sessions
var hub *server.Hub

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load env file", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catch-ssh",
		Level:           log.Level(config.GetEnvInt("CATCH_LOG_LEVEL", int64(log.InfoLevel))),
	})
	log.SetDefault(logger)

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.Warn("failed to get working directory", "err", workErr)
	}
	log.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	hub = server.NewHub(logger)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
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
	log.Info("shutting down server")

	// Notify players and wait for them to disconnect
	log.Info("notifying connected players", "players", hub.Players())
	hub.Shutdown(gameconfig.ShutdownWait)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware handles SSH sessions and runs one game per session.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		size := newWindowSize(pty.Window)
		go func() {
			for win := range winCh {
				size.set(win)
			}
		}()

		reader := bufio.NewReader(sess)
		c := client.NewClient(reader, sess, client.ClientOptions{
			TermSizeFunc: size.get,
			Username:     sess.User(),
			Hub:          hub,
		})
		m := loop.NewMachine(loop.Options{
			Audio:  audio.NewBell(sess, logger),
			Logger: logger,
		})

		c.Open()
		if err := loop.Run(sess.Context(), c, m); err != nil {
			logger.Warn("game error", "err", err)
		}
		c.Close()

		logger.Info("session ended")
		next(sess)
	}
}

// windowSize holds the latest PTY size, packed into one word so the frame
// loop reads it without locking.
type windowSize struct {
	v atomic.Uint64
}

func newWindowSize(win ssh.Window) *windowSize {
	ws := &windowSize{}
	ws.set(win)
	return ws
}

func (ws *windowSize) set(win ssh.Window) {
	ws.v.Store(uint64(uint32(win.Width))<<32 | uint64(uint32(win.Height)))
}

func (ws *windowSize) get() (int, int, error) {
	v := ws.v.Load()
	return int(uint32(v >> 32)), int(uint32(v)), nil
}

// Ensure windowSize.get satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*windowSize)(nil).get
