package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sophistafunk/socket-adventure/internal/game/world"
	"github.com/sophistafunk/socket-adventure/internal/server"
)

// Runner serves accepted connections by running the full greet,
// command, response loop over each one.
type Runner struct {
	world  *world.World
	logger *zap.Logger
}

// NewRunner creates a Runner over the given world.
//
// Precondition: w must be validated and logger non-nil.
func NewRunner(w *world.World, logger *zap.Logger) *Runner {
	return &Runner{world: w, logger: logger}
}

// HandleSession runs one adventurer's session over conn: the greeting
// first, then one response per command line until the adventurer quits.
//
// Postcondition: Returns nil after a quit, or the first socket error.
func (r *Runner) HandleSession(conn *server.Conn) error {
	sess := New(r.world, r.logger)

	if err := conn.WriteResponse(sess.Greeting()); err != nil {
		return fmt.Errorf("sending greeting: %w", err)
	}

	for !sess.Done() {
		line, err := conn.ReadCommand()
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}
		if err := conn.WriteResponse(sess.HandleLine(line)); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
	}

	return nil
}
