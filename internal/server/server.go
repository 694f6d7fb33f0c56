package server

import (
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sophistafunk/socket-adventure/internal/config"
)

// SessionHandler processes the connected client's session.
// Implementations run the command loop until the adventurer quits or
// the connection drops.
type SessionHandler interface {
	HandleSession(conn *Conn) error
}

// GameServer owns the TCP listener for the adventure protocol. It
// accepts exactly one connection, serves that session to completion,
// and returns; restarting the process starts the next adventure.
type GameServer struct {
	cfg     config.ServerConfig
	handler SessionHandler
	logger  *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	client   net.Conn
	quit     chan struct{}
	running  bool
}

// New creates a game server with the given configuration.
//
// Precondition: cfg must have a valid port; handler and logger must be non-nil.
// Postcondition: Returns a GameServer ready to be started with ListenAndServe.
func New(cfg config.ServerConfig, handler SessionHandler, logger *zap.Logger) *GameServer {
	return &GameServer{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// ListenAndServe starts the TCP listener, accepts one connection, and
// serves its session. This method blocks until the session ends or
// Stop is called.
//
// Precondition: The server must not already be running.
// Postcondition: The client socket and the listener are closed, in
// that order, when this method returns.
func (s *GameServer) ListenAndServe() error {
	start := time.Now()

	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr(), err)
	}

	s.mu.Lock()
	s.listener = listener
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()
	defer listener.Close()

	s.logger.Info("game server listening",
		zap.String("addr", listener.Addr().String()),
		zap.Duration("startup", time.Since(start)),
	)

	raw, err := listener.Accept()
	if err != nil {
		select {
		case <-s.quit:
			return nil
		default:
			return fmt.Errorf("accepting connection: %w", err)
		}
	}
	defer raw.Close()

	s.mu.Lock()
	s.client = raw
	s.mu.Unlock()

	sessionStart := time.Now()
	addr := raw.RemoteAddr().String()
	s.logger.Info("client connected",
		zap.String("remote_addr", addr),
	)

	if err := s.handler.HandleSession(NewConn(raw)); err != nil {
		select {
		case <-s.quit:
			s.logger.Info("session aborted by shutdown",
				zap.String("remote_addr", addr),
				zap.Duration("duration", time.Since(sessionStart)),
			)
			return nil
		default:
		}
		s.logger.Error("session ended",
			zap.String("remote_addr", addr),
			zap.Error(err),
			zap.Duration("duration", time.Since(sessionStart)),
		)
		return fmt.Errorf("session: %w", err)
	}

	s.logger.Info("session ended cleanly",
		zap.String("remote_addr", addr),
		zap.Duration("duration", time.Since(sessionStart)),
	)
	return nil
}

// Stop interrupts the server, closing the client socket and the
// listener so a blocked ListenAndServe returns.
//
// Postcondition: All sockets are closed.
func (s *GameServer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	close(s.quit)
	if s.client != nil {
		s.client.Close()
	}
	if s.listener != nil {
		s.listener.Close()
	}

	s.logger.Info("game server stopped")
}

// Addr returns the actual listening address, or empty string if not yet listening.
func (s *GameServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// IsRunning returns whether the server is listening or serving a session.
func (s *GameServer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
