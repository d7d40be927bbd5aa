package player

import (
	"fmt"
	"strings"

	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// MaxPlayers is the largest roster a game accepts
const MaxPlayers = 6

// Color is a ship livery. The numeric values are the persisted codes.
type Color int16

const (
	Blue Color = iota
	Red
	Green
	Purple
	Orange
	Yellow
)

var colorNames = []string{"Blue", "Red", "Green", "Purple", "Orange", "Yellow"}

// Colors lists every livery in roster order
func Colors() []Color {
	return []Color{Blue, Red, Green, Purple, Orange, Yellow}
}

func ColorFromCode(code int16) (Color, error) {
	c := Color(code)
	if !c.IsValid() {
		return Blue, fmt.Errorf("invalid color code: %d", code)
	}
	return c, nil
}

// ParseColor accepts a color name in any case
func ParseColor(s string) (Color, error) {
	for i, name := range colorNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Color(i), nil
		}
	}
	return Blue, fmt.Errorf("unknown color %q", s)
}

func (c Color) IsValid() bool { return c >= Blue && c <= Yellow }

func (c Color) Code() int16 { return int16(c) }

func (c Color) String() string {
	if c.IsValid() {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", int16(c))
}

// Entry is one racer signing up for a game
type Entry struct {
	Name     string
	ShipName string
	Color    Color
}

// ValidateRoster checks a game's sign-up sheet: one to MaxPlayers racers,
// unique non-empty names and a distinct livery each.
func ValidateRoster(entries []Entry) error {
	if len(entries) == 0 {
		return shared.NewValidationError("players", "at least one player is required")
	}
	if len(entries) > MaxPlayers {
		return shared.NewValidationError("players", fmt.Sprintf("at most %d players, got %d", MaxPlayers, len(entries)))
	}

	names := make(map[string]bool, len(entries))
	colors := make(map[Color]bool, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return shared.NewValidationError("player_name", "cannot be empty")
		}
		if strings.TrimSpace(e.ShipName) == "" {
			return shared.NewValidationError("ship_name", fmt.Sprintf("%s needs a ship name", e.Name))
		}
		if names[e.Name] {
			return shared.NewValidationError("player_name", fmt.Sprintf("%s is already racing", e.Name))
		}
		if !e.Color.IsValid() {
			return shared.NewValidationError("color", fmt.Sprintf("invalid color %d", e.Color))
		}
		if colors[e.Color] {
			return shared.NewValidationError("color", fmt.Sprintf("%s is already taken", e.Color))
		}
		names[e.Name] = true
		colors[e.Color] = true
	}
	return nil
}

// AssignColors gives every entry without an explicit color the next free
// livery, in roster order
func AssignColors(entries []Entry, explicit []bool) []Entry {
	taken := make(map[Color]bool)
	for i, e := range entries {
		if i < len(explicit) && explicit[i] {
			taken[e.Color] = true
		}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	next := 0
	palette := Colors()
	for i := range out {
		if i < len(explicit) && explicit[i] {
			continue
		}
		for next < len(palette) && taken[palette[next]] {
			next++
		}
		if next < len(palette) {
			out[i].Color = palette[next]
			taken[palette[next]] = true
			next++
		}
	}
	return out
}
