// Package session drives a single adventurer's play session: parsing
// protocol lines, applying them to the world, and producing response
// lines.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sophistafunk/socket-adventure/internal/game/command"
	"github.com/sophistafunk/socket-adventure/internal/game/world"
	"github.com/sophistafunk/socket-adventure/internal/observability"
)

// Session tracks one adventurer's progress: the room they stand in and
// whether they have quit.
type Session struct {
	world  *world.World
	logger *zap.Logger
	id     string
	room   world.RoomID
	done   bool
}

// New creates a session positioned in the world's start room.
//
// Precondition: w must be validated and logger non-nil.
func New(w *world.World, logger *zap.Logger) *Session {
	id := uuid.New().String()
	s := &Session{
		world:  w,
		logger: observability.SessionLogger(logger, id),
		id:     id,
		room:   w.StartRoom,
	}
	s.logger.Info("session started",
		zap.Int("room", int(s.room)),
	)
	return s
}

// Greeting returns the welcome line: the game name followed by the
// description of the room the adventurer starts in.
func (s *Session) Greeting() string {
	return fmt.Sprintf("Welcome to %s! %s", s.world.Name, s.world.Description(s.room))
}

// HandleLine applies one protocol line to the session and returns the
// response text. Unknown commands produce a hint response and leave
// the session state untouched.
//
// Precondition: the session must not be done.
func (s *Session) HandleLine(line string) string {
	s.logger.Info("command received",
		zap.String("line", line),
	)

	cmd, err := command.Parse(line)
	if err != nil {
		var unknown *command.UnknownError
		if errors.As(err, &unknown) {
			s.logger.Warn("unknown command",
				zap.String("command", unknown.Name),
			)
			return fmt.Sprintf("Huh? Unknown command \"%s\". You can move, say, or quit.", unknown.Name)
		}
		// Parse only fails with UnknownError.
		panic(fmt.Sprintf("session: unexpected parse error: %v", err))
	}

	switch cmd.Kind {
	case command.KindMove:
		return s.move(cmd.Direction)
	case command.KindSay:
		return s.say(cmd.Text)
	case command.KindQuit:
		return s.quit()
	default:
		panic(fmt.Sprintf("session: unhandled command kind %d", cmd.Kind))
	}
}

// move walks the adventurer through an exit if one matches, then
// describes whichever room they now occupy. An unmapped direction
// leaves them where they stand.
func (s *Session) move(dir world.Direction) string {
	if dest, ok := s.world.Navigate(s.room, dir); ok {
		s.room = dest
	}
	s.logger.Info("moved",
		zap.String("direction", string(dir)),
		zap.Int("room", int(s.room)),
	)
	return s.world.Description(s.room)
}

// say echoes the adventurer's words back. Text arrives with its spaces
// already dropped by parsing.
func (s *Session) say(text string) string {
	s.logger.Info("say",
		zap.String("text", text),
	)
	return fmt.Sprintf("You say, \"%s\"", text)
}

// quit marks the session done and returns the farewell.
func (s *Session) quit() string {
	s.logger.Info("quitting")
	s.done = true
	return s.world.Farewell
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Room returns the room the adventurer currently occupies.
func (s *Session) Room() world.RoomID { return s.room }

// Done reports whether the adventurer has quit.
func (s *Session) Done() bool { return s.done }
