package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvFile     = "PLACES_FILE"
	EnvSheet    = "PLACES_SHEET"
	EnvFormat   = "PLACE_DISTANCE_FORMAT"
	EnvOutput   = "PLACE_DISTANCE_OUTPUT"
	EnvMethod   = "PLACE_DISTANCE_METHOD"
	EnvSeed     = "PLACE_DISTANCE_SEED"
	EnvNames    = "PLACE_DISTANCE_NAMES"
	EnvLogLevel = "PLACE_DISTANCE_LOG_LEVEL"
)

// Config holds the settings of a run. Command line flags are applied on top
// of the values returned by Load.
type Config struct {
	File     string
	Sheet    string
	Format   string
	Output   string
	Method   string
	Names    string
	Color    string
	Seed     uint64
	HasSeed  bool
	LogLevel log.Level
}

func Default() Config {
	return Config{
		File:     "places.csv",
		Format:   "plain",
		Output:   "distances.xlsx",
		Method:   "cosine",
		Names:    "numbered",
		Color:    "auto",
		LogLevel: log.InfoLevel,
	}
}

// LoadEnv reads an optional .env file into the process environment.
// Variables that are already set win over the file.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no .env file found, using environment variables only")
			return nil
		}
		return fmt.Errorf("unable to load .env: %w", err)
	}
	return nil
}

// Load returns the defaults overridden by any environment variables set.
func Load() (Config, error) {
	cfg := Default()

	setString(&cfg.File, EnvFile)
	setString(&cfg.Sheet, EnvSheet)
	setString(&cfg.Format, EnvFormat)
	setString(&cfg.Output, EnvOutput)
	setString(&cfg.Method, EnvMethod)
	setString(&cfg.Names, EnvNames)

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not an unsigned integer", EnvSeed, v)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
