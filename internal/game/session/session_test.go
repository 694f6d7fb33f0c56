package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/sophistafunk/socket-adventure/internal/game/world"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	w, err := world.Load()
	require.NoError(t, err)
	return New(w, zaptest.NewLogger(t))
}

func TestNew_StartsInStartRoom(t *testing.T) {
	sess := newTestSession(t)
	assert.Equal(t, world.RoomID(0), sess.Room())
	assert.False(t, sess.Done())
	assert.NotEmpty(t, sess.ID())
}

func TestSession_Greeting(t *testing.T) {
	sess := newTestSession(t)
	assert.Equal(t,
		"Welcome to Land of the Lost! You are in the white room with black curtains, a sword glistens in the corner...",
		sess.Greeting(),
	)
}

func TestSession_MoveChangesRoom(t *testing.T) {
	sess := newTestSession(t)
	resp := sess.HandleLine("move north")
	assert.Equal(t, world.RoomID(3), sess.Room())
	assert.Contains(t, resp, "dungeon")
}

func TestSession_MoveUnmappedDirectionStays(t *testing.T) {
	sess := newTestSession(t)
	resp := sess.HandleLine("move south")
	assert.Equal(t, world.RoomID(0), sess.Room())
	assert.Contains(t, resp, "white room")
}

func TestSession_MoveGibberishDirectionStays(t *testing.T) {
	sess := newTestSession(t)
	resp := sess.HandleLine("move sideways")
	assert.Equal(t, world.RoomID(0), sess.Room())
	assert.Contains(t, resp, "white room")
}

func TestSession_MoveResponseIsAlwaysCurrentRoom(t *testing.T) {
	sess := newTestSession(t)
	sess.HandleLine("move east")
	resp := sess.HandleLine("move east")
	assert.Equal(t, world.RoomID(2), sess.Room())
	assert.Contains(t, resp, "jungle room")
}

func TestSession_SayEchoes(t *testing.T) {
	sess := newTestSession(t)
	assert.Equal(t, `You say, "hello"`, sess.HandleLine("say hello"))
}

func TestSession_SayDropsSpaces(t *testing.T) {
	// Multi-word text loses its spaces in the echo.
	sess := newTestSession(t)
	assert.Equal(t, `You say, "hellothere"`, sess.HandleLine("say hello there"))
}

func TestSession_SayEmpty(t *testing.T) {
	sess := newTestSession(t)
	assert.Equal(t, `You say, ""`, sess.HandleLine("say"))
}

func TestSession_QuitSetsDone(t *testing.T) {
	sess := newTestSession(t)
	resp := sess.HandleLine("quit")
	assert.True(t, sess.Done())
	assert.Equal(t, "Goodbye Adventurer!", resp)
}

func TestSession_UnknownCommandResponse(t *testing.T) {
	sess := newTestSession(t)
	resp := sess.HandleLine("fly up")
	assert.Equal(t, `Huh? Unknown command "fly". You can move, say, or quit.`, resp)
}

func TestSession_UnknownCommandKeepsSessionAlive(t *testing.T) {
	sess := newTestSession(t)
	sess.HandleLine("move east")
	sess.HandleLine("look")
	assert.False(t, sess.Done())
	assert.Equal(t, world.RoomID(2), sess.Room())
}

func TestSession_EmptyLineIsUnknown(t *testing.T) {
	sess := newTestSession(t)
	resp := sess.HandleLine("")
	assert.Equal(t, `Huh? Unknown command "". You can move, say, or quit.`, resp)
	assert.False(t, sess.Done())
}

func TestSession_FullGameScript(t *testing.T) {
	sess := newTestSession(t)

	assert.Contains(t, sess.Greeting(), "white room")
	assert.Contains(t, sess.HandleLine("move east"), "jungle room")
	assert.Contains(t, sess.HandleLine("move west"), "white room")
	assert.Equal(t, `You say, "hellothere"`, sess.HandleLine("say hello there"))
	assert.Equal(t, "Goodbye Adventurer!", sess.HandleLine("quit"))
	assert.True(t, sess.Done())
}

// Property: no input line panics the session, and every line gets a
// non-empty response.
func TestPropertySessionAlwaysResponds(t *testing.T) {
	w, err := world.Load()
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)

	rapid.Check(t, func(t *rapid.T) {
		sess := New(w, logger)
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,20}`), 0, 20).Draw(t, "lines")
		for _, line := range lines {
			if sess.Done() {
				break
			}
			resp := sess.HandleLine(strings.TrimSpace(line))
			if resp == "" {
				t.Fatalf("line %q produced an empty response", line)
			}
		}
	})
}

// Property: only quit ends a session.
func TestPropertyOnlyQuitSetsDone(t *testing.T) {
	w, err := world.Load()
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)

	rapid.Check(t, func(t *rapid.T) {
		sess := New(w, logger)
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}( [a-z]{1,8})?`), 1, 15).Draw(t, "lines")
		for _, line := range lines {
			if strings.HasPrefix(line, "quit") {
				continue
			}
			sess.HandleLine(line)
			if sess.Done() {
				t.Fatalf("line %q ended the session", line)
			}
		}
	})
}
