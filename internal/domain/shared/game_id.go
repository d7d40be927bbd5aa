package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// GameID is a value object identifying a saved game
type GameID struct {
	value string
}

// NewGameID generates a fresh random identifier
func NewGameID() GameID {
	return GameID{value: uuid.NewString()}
}

// ParseGameID validates an identifier read from storage or the command line
func ParseGameID(id string) (GameID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return GameID{}, fmt.Errorf("invalid game id %q: %w", id, err)
	}
	return GameID{value: parsed.String()}, nil
}

// MustParseGameID parses an identifier, panicking if invalid
// Use this only when you're certain the ID is valid (e.g., from database)
func MustParseGameID(id string) GameID {
	gameID, err := ParseGameID(id)
	if err != nil {
		panic(err)
	}
	return gameID
}

func (g GameID) String() string {
	return g.value
}

// Short returns the first block of the uuid, enough for display
func (g GameID) Short() string {
	if len(g.value) < 8 {
		return g.value
	}
	return g.value[:8]
}

func (g GameID) Equals(other GameID) bool {
	return g.value == other.value
}

// IsZero checks if the GameID is the zero value (uninitialized)
func (g GameID) IsZero() bool {
	return g.value == ""
}
