package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads DatabaseOptions from a YAML file, grounded on
// Adithya-Monish-Kumar-K-Distributed-Search-Analytics-Platform's
// pkg/config/config.go Load function. Unlike that file, no env-var
// override layer is added — the programmatic Database.create(options)
// contract is the primary entry point and this loader exists purely
// as a cmd/lexicon convenience.
func Load(path string) (DatabaseOptions, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	opts.ApplyDefaults()
	return opts, nil
}
