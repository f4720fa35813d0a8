package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"numgame/game"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const envPrefix = "NUMGAME_"

type Config struct {
	EndNumber      int
	MinStartNumber int
	MaxStartNumber int
	MinFactor      int
	MaxFactor      int
	SearchDepth    int
	Debug          bool
	LogLevel       zerolog.Level
}

func Default() Config {
	return Config{
		EndNumber:      END_NUMBER,
		MinStartNumber: MIN_START_NUMBER,
		MaxStartNumber: MAX_START_NUMBER,
		MinFactor:      MIN_FACTOR,
		MaxFactor:      MAX_FACTOR,
		SearchDepth:    SEARCH_DEPTH,
		LogLevel:       zerolog.InfoLevel,
	}
}

// Load reads the given .env files (".env" if none), then applies NUMGAME_*
// environment variables over the defaults. Missing files are skipped and
// variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := Default()
	ints := map[string]*int{
		"END_NUMBER":       &cfg.EndNumber,
		"MIN_START_NUMBER": &cfg.MinStartNumber,
		"MAX_START_NUMBER": &cfg.MaxStartNumber,
		"MIN_FACTOR":       &cfg.MinFactor,
		"MAX_FACTOR":       &cfg.MaxFactor,
		"SEARCH_DEPTH":     &cfg.SearchDepth,
	}
	for name, field := range ints {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
		}
		*field = n
	}

	if value, ok := lookup("DEBUG"); ok {
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sDEBUG: %w", envPrefix, err)
		}
		cfg.Debug = debug
	}
	if value, ok := lookup("LOG_LEVEL"); ok {
		level, err := zerolog.ParseLevel(value)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sLOG_LEVEL: %w", envPrefix, err)
		}
		cfg.LogLevel = level
	}

	return cfg, cfg.Validate()
}

func lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(envPrefix + name)
	return strings.TrimSpace(value), ok && strings.TrimSpace(value) != ""
}

func (c Config) Validate() error {
	switch {
	case c.MinFactor < 2:
		return fmt.Errorf("min factor %d must be at least 2", c.MinFactor)
	case c.MinFactor > c.MaxFactor:
		return fmt.Errorf("min factor %d exceeds max factor %d", c.MinFactor, c.MaxFactor)
	case c.MinStartNumber < 1:
		return fmt.Errorf("min start number %d must be positive", c.MinStartNumber)
	case c.MinStartNumber > c.MaxStartNumber:
		return fmt.Errorf("min start number %d exceeds max start number %d", c.MinStartNumber, c.MaxStartNumber)
	case c.EndNumber <= c.MaxStartNumber:
		return fmt.Errorf("end number %d must exceed max start number %d", c.EndNumber, c.MaxStartNumber)
	case c.EndNumber > math.MaxInt/c.MaxFactor:
		return fmt.Errorf("end number %d times max factor %d overflows", c.EndNumber, c.MaxFactor)
	case c.SearchDepth < 1:
		return fmt.Errorf("search depth %d must be at least 1", c.SearchDepth)
	}
	return nil
}

func (c Config) Rules() *game.Rules {
	return &game.Rules{
		EndNumber:      c.EndNumber,
		MinStartNumber: c.MinStartNumber,
		MaxStartNumber: c.MaxStartNumber,
		MinFactor:      c.MinFactor,
		MaxFactor:      c.MaxFactor,
	}
}
