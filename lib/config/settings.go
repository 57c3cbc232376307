package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type Settings struct {
	Config         Config
	VerboseLogging bool
}

type options struct {
	ConfigFilePath string   `short:"c" long:"config" description:"path to the config file"`
	Verbose        bool     `short:"v" long:"verbose" description:"debug logging" optional:"true"`
	InputPath      string   `short:"i" long:"input" description:"path to the input CSV file"`
	OutputPath     string   `short:"o" long:"output" description:"path to the output JSON file"`
	SampleFraction *float64 `long:"fraction" description:"probability that a row is kept, between 0 and 1"`
	Seed           *uint64  `long:"seed" description:"seed for the random generator"`
}

// LoadSettings will parse the flags and the optional config file. Flags take precedence over the config file.
func LoadSettings(args []string) (*Settings, error) {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	var cfg Config
	if opts.ConfigFilePath != "" {
		fileCfg, err := readFileToConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		cfg = *fileCfg
	}

	if opts.InputPath != "" {
		cfg.InputPath = opts.InputPath
	}

	if opts.OutputPath != "" {
		cfg.OutputPath = opts.OutputPath
	}

	if opts.SampleFraction != nil {
		cfg.SampleFraction = opts.SampleFraction
	}

	if opts.Seed != nil {
		cfg.Seed = opts.Seed
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &Settings{
		Config:         cfg,
		VerboseLogging: opts.Verbose,
	}, nil
}
