// Package command parses protocol lines into game commands.
package command

import (
	"fmt"
	"strings"

	"github.com/sophistafunk/socket-adventure/internal/game/world"
)

// Kind identifies which game command a line resolved to.
type Kind int

const (
	KindMove Kind = iota
	KindSay
	KindQuit
)

// Command is a parsed protocol line.
type Command struct {
	Kind Kind
	// Direction is set for KindMove. It is not validated against the
	// world here; unmapped directions are a navigation concern.
	Direction world.Direction
	// Text is set for KindSay. Spaces inside the argument are dropped
	// during parsing, so Text never contains a space.
	Text string
}

// UnknownError reports a command word that is not part of the protocol.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// Parse resolves a protocol line into a Command.
//
// The command word is matched case-sensitively: "move" is a command,
// "MOVE" is not. Everything after the first space is the argument,
// with its remaining spaces removed, so "say hello world" carries the
// text "helloworld" and "move ea st" moves east. Tabs and other
// whitespace inside the argument survive.
//
// Precondition: line has been trimmed of leading/trailing whitespace.
// Postcondition: returns a Command, or *UnknownError if the command
// word is not move, say, or quit.
func Parse(line string) (Command, error) {
	word := line
	var arg string
	if i := strings.IndexByte(line, ' '); i >= 0 {
		word = line[:i]
		arg = strings.ReplaceAll(line[i+1:], " ", "")
	}

	switch word {
	case "move":
		return Command{Kind: KindMove, Direction: world.Direction(arg)}, nil
	case "say":
		return Command{Kind: KindSay, Text: arg}, nil
	case "quit":
		return Command{Kind: KindQuit}, nil
	default:
		return Command{}, &UnknownError{Name: word}
	}
}
