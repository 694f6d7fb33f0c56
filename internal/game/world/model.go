// Package world provides the fixed game world: rooms, directions, and the
// adjacency between them.
package world

import (
	"fmt"
	"sort"
)

// Direction is a compass direction used as an exit label.
type Direction string

// The compass directions the fixed map uses.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// StandardDirections contains the four compass directions.
var StandardDirections = []Direction{North, South, East, West}

// IsStandard reports whether d is one of the four compass directions.
// Client input is not restricted to these; an arbitrary token is simply
// absent from every room's exits.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// RoomID identifies a room in the fixed map.
type RoomID int

// Room is a location node: a unique description plus its outgoing exits.
type Room struct {
	// ID uniquely identifies this room.
	ID RoomID
	// Description is the fixed text shown whenever the room is described.
	Description string
	// Exits maps each outgoing direction to its destination room.
	Exits map[Direction]RoomID
}

// World is the complete game world, loaded once at startup and immutable
// afterwards.
type World struct {
	// Name is the game name used in the greeting.
	Name string
	// Farewell is the response sent for quit.
	Farewell string
	// StartRoom is the room every session begins in.
	StartRoom RoomID
	// Rooms contains all rooms, keyed by room ID.
	Rooms map[RoomID]*Room
}

// Validate checks the world's structural invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (w *World) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("world name must not be empty")
	}
	if w.Farewell == "" {
		return fmt.Errorf("world farewell must not be empty")
	}
	if len(w.Rooms) == 0 {
		return fmt.Errorf("world must contain at least one room")
	}
	if _, ok := w.Rooms[w.StartRoom]; !ok {
		return fmt.Errorf("start room %d not found", w.StartRoom)
	}

	described := make(map[string]RoomID, len(w.Rooms))
	for _, id := range w.RoomIDs() {
		room := w.Rooms[id]
		if room.ID != id {
			return fmt.Errorf("room key %d does not match room ID %d", id, room.ID)
		}
		if room.Description == "" {
			return fmt.Errorf("room %d: description must not be empty", id)
		}
		if other, dup := described[room.Description]; dup {
			return fmt.Errorf("rooms %d and %d share a description", other, id)
		}
		described[room.Description] = id
		for dir, target := range room.Exits {
			if _, ok := w.Rooms[target]; !ok {
				return fmt.Errorf("room %d: exit %q targets unknown room %d", id, dir, target)
			}
		}
	}
	return nil
}

// Description returns the fixed description for a room id.
//
// Precondition: id must exist in the world. The adjacency guarantees
// sessions only ever hold valid ids, so an unknown id is a programming
// error and Description panics rather than returning a zero value.
func (w *World) Description(id RoomID) string {
	room, ok := w.Rooms[id]
	if !ok {
		panic(fmt.Sprintf("world: no room %d", id))
	}
	return room.Description
}

// Navigate resolves one step of movement.
//
// Postcondition: Returns (destination, true) if the (room, direction) pair
// is mapped, or (0, false) if it is unlisted; unlisted pairs are no-ops and
// the caller keeps its current room.
func (w *World) Navigate(from RoomID, dir Direction) (RoomID, bool) {
	room, ok := w.Rooms[from]
	if !ok {
		return 0, false
	}
	dest, ok := room.Exits[dir]
	return dest, ok
}

// RoomIDs returns all room ids in ascending order.
func (w *World) RoomIDs() []RoomID {
	ids := make([]RoomID, 0, len(w.Rooms))
	for id := range w.Rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RoomCount returns the number of rooms in the world.
func (w *World) RoomCount() int {
	return len(w.Rooms)
}
