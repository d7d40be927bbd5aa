// Package catalog reads solar system descriptions from YAML files so boards
// can be built for systems other than the built-in Sol.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
)

// File is the on-disk layout of a system catalog
type File struct {
	Name       string      `yaml:"name" validate:"required"`
	HomeWorld  string      `yaml:"home_world" validate:"required"`
	AUDistance float64     `yaml:"au_distance" validate:"gt=0"`
	Density    DensityFile `yaml:"density"`
	Bodies     []BodyFile  `yaml:"bodies" validate:"required,min=1,dive"`
	// Asteroids are the fixed asteroid hexes of the classic layout, as
	// [x, y] slant coordinates
	Asteroids [][]int `yaml:"asteroids" validate:"dive,len=2"`
}

type DensityFile struct {
	MinAU float64 `yaml:"min_au" validate:"gte=0"`
	MaxAU float64 `yaml:"max_au" validate:"gtefield=MinAU"`
	Table []int   `yaml:"table" validate:"dive,gte=0,lte=800"`
}

type BodyFile struct {
	Name          string  `yaml:"name" validate:"required"`
	Kind          string  `yaml:"kind" validate:"required,oneof=star planet moon"`
	Radius        float64 `yaml:"radius" validate:"gt=0"`
	Landable      bool    `yaml:"landable"`
	Gravity       string  `yaml:"gravity" validate:"required,oneof=none half full"`
	Orbiting      string  `yaml:"orbiting"`
	OrbitDistance float64 `yaml:"orbit_distance" validate:"gte=0"`
	Classic       []int   `yaml:"classic" validate:"len=2"`
}

// LoadSystemFile reads and validates a catalog file
func LoadSystemFile(path string) (*board.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("system catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog YAML, checks field constraints and then the
// catalog's own consistency rules
func Parse(data []byte) (*board.Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	normalize(&f)

	if err := validator.New().Struct(&f); err != nil {
		return nil, formatValidationError(err)
	}

	c, err := f.toCatalog()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func normalize(f *File) {
	for i := range f.Bodies {
		f.Bodies[i].Kind = strings.ToLower(strings.TrimSpace(f.Bodies[i].Kind))
		f.Bodies[i].Gravity = strings.ToLower(strings.TrimSpace(f.Bodies[i].Gravity))
	}
}

func (f *File) toCatalog() (*board.Catalog, error) {
	c := &board.Catalog{
		SystemName: f.Name,
		Home:       f.HomeWorld,
		AUDistance: f.AUDistance,
		Density: board.DensityBand{
			MinAU: f.Density.MinAU,
			MaxAU: f.Density.MaxAU,
			Table: f.Density.Table,
		},
	}
	for _, b := range f.Bodies {
		kind, err := board.ParseKind(title(b.Kind))
		if err != nil {
			return nil, err
		}
		gravity, err := board.ParseGravity(title(b.Gravity))
		if err != nil {
			return nil, err
		}
		c.Entries = append(c.Entries, board.BodyInfo{
			Name:            b.Name,
			Kind:            kind,
			Radius:          b.Radius,
			Landable:        b.Landable,
			Gravity:         gravity,
			Orbiting:        b.Orbiting,
			OrbitDistance:   b.OrbitDistance,
			ClassicLocation: hex.Pt(b.Classic[0], b.Classic[1]),
		})
	}
	for _, a := range f.Asteroids {
		c.Asteroids = append(c.Asteroids, hex.Pt(a[0], a[1]))
	}
	return c, nil
}

// FromCatalog converts a catalog back into its file layout, used to export
// the built-in systems as a starting point for custom ones
func FromCatalog(c *board.Catalog) *File {
	f := &File{
		Name:       c.SystemName,
		HomeWorld:  c.Home,
		AUDistance: c.AUDistance,
		Density: DensityFile{
			MinAU: c.Density.MinAU,
			MaxAU: c.Density.MaxAU,
			Table: c.Density.Table,
		},
	}
	for _, info := range c.Entries {
		f.Bodies = append(f.Bodies, BodyFile{
			Name:          info.Name,
			Kind:          strings.ToLower(info.Kind.String()),
			Radius:        info.Radius,
			Landable:      info.Landable,
			Gravity:       strings.ToLower(info.Gravity.String()),
			Orbiting:      info.Orbiting,
			OrbitDistance: info.OrbitDistance,
			Classic:       []int{info.ClassicLocation.X, info.ClassicLocation.Y},
		})
	}
	for _, p := range c.Asteroids {
		f.Asteroids = append(f.Asteroids, []int{p.X, p.Y})
	}
	return f
}

// Marshal encodes a catalog as YAML
func Marshal(c *board.Catalog) ([]byte, error) {
	return yaml.Marshal(FromCatalog(c))
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var messages []string
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: '%v')",
			e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid catalog:\n  %s", strings.Join(messages, "\n  "))
}
