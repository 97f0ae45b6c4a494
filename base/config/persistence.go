package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Load reads options from the YAML file at the given path. Values missing in
// the file keep their defaults. The loaded options are validated.
func Load(path string) (*Options, error) {
	// read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses options from YAML data. Values missing in the data keep their
// defaults. The parsed options are validated.
func Parse(data []byte) (*Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Save writes the options to the YAML file at the given path.
func (opts *Options) Save(path string) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
