package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/service/cablecolor"
	"github.com/urfave/cli/v3"
)

const defaultPatternLength = 3

// DefaultReservedColors are excluded from random generation unless the
// generation file overrides the list.
var DefaultReservedColors = []string{"black", "white"}

// GenerationFile is the TOML layout of --generation-config. Keys that are
// absent keep their defaults.
type GenerationFile struct {
	Length      int      `toml:"length"`
	MaxAttempts int      `toml:"max_attempts"`
	Reserved    []string `toml:"reserved"`
}

// DefaultGenerationFile returns the settings used when no file is given
func DefaultGenerationFile() *GenerationFile {
	return &GenerationFile{
		Length:      defaultPatternLength,
		MaxAttempts: cablecolor.DefaultMaxAttempts,
		Reserved:    append([]string{}, DefaultReservedColors...),
	}
}

// Validate checks if the GenerationFile is valid
func (f *GenerationFile) Validate() error {
	if f.Length < 1 || f.Length > model.MaxColorSequenceLength {
		return goerr.Wrap(ErrInvalidLength, "length must be between 1 and 10", goerr.V("length", f.Length))
	}
	if f.MaxAttempts < 1 {
		return goerr.Wrap(ErrInvalidAttempts, "max_attempts must be at least 1", goerr.V("max_attempts", f.MaxAttempts))
	}
	for i, name := range f.Reserved {
		if name == "" {
			return goerr.Wrap(ErrInvalidConfig, "reserved color name is empty", goerr.V("index", i))
		}
	}
	return nil
}

// LoadGenerationFile loads generation settings from a TOML file
func LoadGenerationFile(path string) (*GenerationFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "generation config not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read generation config", goerr.V(ConfigPathKey, path))
	}

	file := DefaultGenerationFile()
	if err := toml.Unmarshal(data, file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse generation config",
			goerr.V(ConfigPathKey, path),
			goerr.V("error", err.Error()))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "generation config validation failed", goerr.V(ConfigPathKey, path))
	}

	return file, nil
}

// Generation holds CLI flags for random pattern generation
type Generation struct {
	configPath  string
	length      int
	maxAttempts int
	seed        uint64
}

// Flags returns CLI flags for generation configuration
func (x *Generation) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "generation-config",
			Usage:       "Path to generation settings TOML file",
			Sources:     cli.EnvVars("HYPERDASHI_GENERATION_CONFIG"),
			Destination: &x.configPath,
		},
		&cli.IntFlag{
			Name:        "length",
			Aliases:     []string{"n"},
			Usage:       "Number of colors in the generated pattern (overrides the generation config)",
			Destination: &x.length,
		},
		&cli.IntFlag{
			Name:        "max-attempts",
			Usage:       "Samples checked before falling back (overrides the generation config)",
			Destination: &x.maxAttempts,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "Seed for reproducible generation (0 uses a random source)",
			Sources:     cli.EnvVars("HYPERDASHI_GENERATION_SEED"),
			Destination: &x.seed,
		},
	}
}

// GenerationSettings is the resolved result of Generation.Configure
type GenerationSettings struct {
	Length    int
	Generator *cablecolor.Generator
}

// LogValue implements slog.LogValuer
func (x Generation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", x.configPath),
		slog.Int("length", x.length),
		slog.Int("max_attempts", x.maxAttempts),
		slog.Uint64("seed", x.seed),
	)
}

// Configure merges the generation file with flag overrides and builds the
// generator.
func (x *Generation) Configure() (*GenerationSettings, error) {
	file := DefaultGenerationFile()
	if x.configPath != "" {
		loaded, err := LoadGenerationFile(x.configPath)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	if x.length != 0 {
		file.Length = x.length
	}
	if x.maxAttempts != 0 {
		file.MaxAttempts = x.maxAttempts
	}
	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid generation settings")
	}

	opts := []cablecolor.Option{
		cablecolor.WithMaxAttempts(file.MaxAttempts),
		cablecolor.WithReservedNames(file.Reserved...),
	}
	if x.seed != 0 {
		opts = append(opts, cablecolor.WithRandom(cablecolor.NewSeededRandom(x.seed)))
	}

	return &GenerationSettings{
		Length:    file.Length,
		Generator: cablecolor.New(opts...),
	}, nil
}
