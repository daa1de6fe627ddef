package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Height, Length, MineCount int
}

func (p Params) Unpack() (h int, l int, mc int) {
	return p.Height, p.Length, p.MineCount
}

func (p Params) Area() int {
	return p.Height * p.Length
}

// Validate reports whether a game can be played with p. At least one cell must
// stay free of mines so the first move is always safe.
func (p Params) Validate() error {
	switch {
	case p.Height < 1 || p.Length < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Height, p.Length)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d",
			ErrInvalidParams, p.MineCount)
	case p.MineCount >= p.Area():
		return fmt.Errorf("%w: %d mines do not fit on a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Height, p.Length)
	}
	return nil
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Height, p.Length, p.MineCount)
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Height, p.Length, p.MineCount)
}

func ParseSeed(seed string) (Params, error) {
	var p Params
	sseed := strings.ReplaceAll(strings.TrimSpace(seed), ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Height, &p.Length, &p.MineCount)
	if n != 3 || err != nil {
		return Params{}, fmt.Errorf(
			`%w: invalid seed (seed = "%s", n = %d, err = %v)`,
			ErrInvalidParams, seed, n, err,
		)
	}
	return p, p.Validate()
}

type Preset string

const (
	Beginner     Preset = "beginner"
	Intermediate Preset = "intermediate"
	Expert       Preset = "expert"
)

var presets = map[Preset]Params{
	Beginner:     {Height: 10, Length: 10, MineCount: 20},
	Intermediate: {Height: 25, Length: 25, MineCount: 125},
	Expert:       {Height: 100, Length: 100, MineCount: 300},
}

// Presets lists the named difficulties from easiest to hardest.
func Presets() []Preset {
	return []Preset{Beginner, Intermediate, Expert}
}

func (p Preset) Params() (Params, bool) {
	params, ok := presets[p]
	return params, ok
}

func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: unknown preset %q", ErrInvalidParams, name)
	}
	return p, nil
}
