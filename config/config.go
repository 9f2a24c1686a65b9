package config

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/packit"
)

// defaultOpenBins is applied when open_bins is omitted: a single open bin,
// the plain next-fit policy.
const defaultOpenBins = 1

// Config holds the packing parameters shared by the algorithm entry points.
type Config struct {
	// BinCapacity is the fixed capacity of every bin. Must be positive; it
	// has no default.
	BinCapacity int `yaml:"bin_capacity"`
	// OpenBins is the number of bins an online packer keeps open. Must be
	// positive. Offline algorithms ignore it.
	OpenBins int `yaml:"open_bins"`
}

// yamlConfig represents the YAML configuration file structure. OpenBins is a
// pointer so that an omitted field (defaulted) can be told apart from an
// explicit zero (a validation error).
type yamlConfig struct {
	BinCapacity int  `yaml:"bin_capacity"`
	OpenBins    *int `yaml:"open_bins"`
}

// FromYAML parses a YAML document into a validated Config. An omitted
// open_bins field defaults to 1; an explicit zero is a validation error, as
// is an omitted bin_capacity. Neither is ever defaulted into a valid value.
func FromYAML(data []byte) (Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse YAML config: %w", err)
	}

	cfg := Config{
		BinCapacity: raw.BinCapacity,
		OpenBins:    defaultOpenBins,
	}
	if raw.OpenBins != nil {
		cfg.OpenBins = *raw.OpenBins
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every violation, combined
// with multierr. Invalid values are never clamped: proceeding with them
// would produce meaningless bins.
func (c Config) Validate() error {
	var err error
	if c.BinCapacity < 1 {
		err = multierr.Append(err, packit.ErrInvalidBinCapacity)
	}
	if c.OpenBins < 1 {
		err = multierr.Append(err, packit.ErrInvalidOpenBins)
	}
	return err
}
