package queries

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SchedulerConfig is the file form of scheduler settings:
//
//	skip_validation: false
//	systems:
//	  movement:
//	    enabled: true
//	    skip_validation: true
type SchedulerConfig struct {
	SkipValidation bool                    `yaml:"skip_validation"`
	Systems        map[string]SystemConfig `yaml:"systems"`
}

type SystemConfig struct {
	// Enabled defaults to true when omitted
	Enabled        *bool `yaml:"enabled"`
	SkipValidation bool  `yaml:"skip_validation"`
}

// LoadSchedulerConfig decodes YAML from r. Unknown keys are rejected; empty input
// yields the zero config.
func LoadSchedulerConfig(r io.Reader) (SchedulerConfig, error) {
	var cfg SchedulerConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SchedulerConfig{}, fmt.Errorf("decode scheduler config: %w", err)
	}
	return cfg, nil
}

func LoadSchedulerConfigFile(path string) (SchedulerConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return SchedulerConfig{}, err
	}
	defer f.Close()
	return LoadSchedulerConfig(f)
}

func (c SchedulerConfig) enabled(system string) bool {
	sc, ok := c.Systems[system]
	if !ok || sc.Enabled == nil {
		return true
	}
	return *sc.Enabled
}

// skipValidation can only turn the presence check off; a builder that skips keeps skipping.
func (c SchedulerConfig) skipValidation(system string) bool {
	return c.SkipValidation || c.Systems[system].SkipValidation
}
