// Package config loads the gridwalk settings from an optional YAML file.
//
// Every field has a default; a file only needs the keys it overrides:
//
//	maze:
//	  move_cost: 1
//	  turn_cost: 1000
//	memspace:
//	  size: 71
//	  bytes: 1024
//	patrol:
//	  workers: 8
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/maze"
)

// ErrInvalid indicates a setting outside its valid range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every solver setting.
type Config struct {
	Maze     maze.Costs `yaml:"maze"`
	Memspace Memspace   `yaml:"memspace"`
	Patrol   Patrol     `yaml:"patrol"`
}

// Memspace sizes the memory-space puzzle.
type Memspace struct {
	// Size is the side of the square space.
	Size int `yaml:"size"`
	// Bytes is how many bytes have fallen for the shortest-walk part.
	Bytes int `yaml:"bytes"`
}

// Patrol tunes the obstruction search.
type Patrol struct {
	Workers int `yaml:"workers"`
}

// Default returns the puzzle defaults.
func Default() Config {
	return Config{
		Maze:     maze.DefaultCosts(),
		Memspace: Memspace{Size: 71, Bytes: 1024},
		Patrol:   Patrol{Workers: runtime.GOMAXPROCS(0)},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting's range.
func (c Config) Validate() error {
	switch {
	case c.Maze.Move < 0:
		return fmt.Errorf("%w: maze.move_cost must be non-negative (%d)", ErrInvalid, c.Maze.Move)
	case c.Maze.Turn < 0:
		return fmt.Errorf("%w: maze.turn_cost must be non-negative (%d)", ErrInvalid, c.Maze.Turn)
	case c.Memspace.Size <= 0:
		return fmt.Errorf("%w: memspace.size must be positive (%d)", ErrInvalid, c.Memspace.Size)
	case c.Memspace.Bytes < 0:
		return fmt.Errorf("%w: memspace.bytes must be non-negative (%d)", ErrInvalid, c.Memspace.Bytes)
	case c.Patrol.Workers <= 0:
		return fmt.Errorf("%w: patrol.workers must be positive (%d)", ErrInvalid, c.Patrol.Workers)
	}
	return nil
}

// String renders c as YAML.
func (c Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(out)
}
