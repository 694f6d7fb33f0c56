package world

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// The world is compiled into the binary: rooms, their adjacency, and the
// greeting/farewell text are static data, not runtime input.
//
//go:embed content/world.yaml
var embeddedWorld []byte

// yamlWorldFile is the top-level YAML structure for the world document.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

// yamlWorld is the YAML representation of the world.
type yamlWorld struct {
	Name      string     `yaml:"name"`
	Farewell  string     `yaml:"farewell"`
	StartRoom int        `yaml:"start_room"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          int            `yaml:"id"`
	Description string         `yaml:"description"`
	Exits       map[string]int `yaml:"exits"`
}

// Load parses and validates the world compiled into the binary.
//
// Postcondition: Returns a validated World or a non-nil error.
func Load() (*World, error) {
	return LoadFromBytes(embeddedWorld)
}

// LoadFromBytes parses and validates a world from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	w, err := convertYAMLWorld(file.World)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	return w, nil
}

// convertYAMLWorld converts the parsed YAML structures into domain types.
func convertYAMLWorld(yw yamlWorld) (*World, error) {
	w := &World{
		Name:      yw.Name,
		Farewell:  yw.Farewell,
		StartRoom: RoomID(yw.StartRoom),
		Rooms:     make(map[RoomID]*Room, len(yw.Rooms)),
	}

	for _, yr := range yw.Rooms {
		room := &Room{
			ID:          RoomID(yr.ID),
			Description: strings.TrimSpace(yr.Description),
			Exits:       make(map[Direction]RoomID, len(yr.Exits)),
		}
		if _, exists := w.Rooms[room.ID]; exists {
			return nil, fmt.Errorf("duplicate room id %d", yr.ID)
		}
		for dir, target := range yr.Exits {
			room.Exits[Direction(dir)] = RoomID(target)
		}
		w.Rooms[room.ID] = room
	}

	return w, nil
}
