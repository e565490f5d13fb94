// Package aoc holds what the advent command needs besides the puzzles:
// configuration, input files, recorded answers and solution naming.
package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// DefaultConfigFile is read when no path is given and $ADVENT_CONFIG is
// unset.
const DefaultConfigFile = "advent.ini"

// Environment variables that override the configuration file.
const (
	EnvConfig   = "ADVENT_CONFIG"
	EnvInputDir = "ADVENT_INPUT_DIR"
)

type Config struct {
	// InputDir is where relative input file names are resolved.
	InputDir string
	// Inputs maps a solution name ("1a") to its input file name.
	Inputs map[string]string
	// Cubes is the bag used to decide which cube games are possible.
	Cubes map[string]int
}

func DefaultConfig() *Config {
	return &Config{
		InputDir: "inputs",
		Inputs:   make(map[string]string),
		Cubes:    map[string]int{"red": 12, "green": 13, "blue": 14},
	}
}

// LoadConfig reads an INI file such as
//
//	[inputs]
//	dir = inputs
//	1b = day1_2.txt
//
//	[cubes]
//	red = 12
//
// If path is empty, $ADVENT_CONFIG is used, and then DefaultConfigFile. A
// missing file is not an error; the defaults apply. $ADVENT_INPUT_DIR
// overrides inputs.dir.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultConfigFile
	}
	cfg := DefaultConfig()
	file, err := ini.LoadFile(path)
	switch {
	case err == nil:
		if err := cfg.apply(file); err != nil {
			return nil, fmt.Errorf("error loading config (%s): %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("error loading config (%s): %w", path, err)
	}
	if dir := os.Getenv(EnvInputDir); dir != "" {
		cfg.InputDir = dir
	}
	return cfg, nil
}

func (c *Config) apply(file ini.File) error {
	for k, v := range file.Section("inputs") {
		if k == "dir" {
			c.InputDir = v
			continue
		}
		c.Inputs[k] = v
	}
	for color, v := range file.Section("cubes") {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("bad cube limit %s = %q", color, v)
		}
		c.Cubes[color] = n
	}
	return nil
}

// InputPath returns the input file for the named solution. The configured
// file wins over fallback, and relative names are joined to InputDir.
func (c *Config) InputPath(name, fallback string) string {
	file := fallback
	if f, ok := c.Inputs[name]; ok {
		file = f
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.InputDir, file)
}
