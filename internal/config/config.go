// Package config holds the tunable thresholds of a tracing run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Contact controls the CA-CA candidate search.
type Contact struct {
	Distance  float64 `yaml:"ca_ca_distance"`
	Variation float64 `yaml:"variation"`
}

// Ranking controls pair scoring.
type Ranking struct {
	TopPairs int `yaml:"top_pairs"`
}

// Growth controls tree growth.
type Growth struct {
	MinRefoldDistance         float64 `yaml:"min_refold_distance"`
	DuplicateGeometryDistance float64 `yaml:"duplicate_geometry_distance"`
	ProgenitorMargin          int     `yaml:"progenitor_margin"`
	MinTraceLength            int     `yaml:"min_trace_length"`
}

// Build controls fragment construction.
type Build struct {
	TopFragments int `yaml:"top_fragments"`
}

// Overlap controls duplicate chain removal.
type Overlap struct {
	ContactDistance     float64 `yaml:"contact_distance"`
	MinOverlapFraction  float64 `yaml:"min_overlap_fraction"`
	BigOverlapFraction  float64 `yaml:"big_overlap_fraction"`
	SameDirectionStdDev float64 `yaml:"same_direction_stddev"`
}

// Filters controls the post-build chain filters.
type Filters struct {
	MinChainResidues    int     `yaml:"min_chain_residues"`
	TwistedPerChainMax  int     `yaml:"twisted_per_chain_max"`
	TwistLimitDegrees   float64 `yaml:"twist_limit_degrees"`
	TrimDensityFraction float64 `yaml:"trim_density_fraction"`
	TrimOmegaDegrees    float64 `yaml:"trim_omega_degrees"`
	SequenceMinResidues int     `yaml:"sequence_min_residues"`
}

// Refine controls per chain refinement.
type Refine struct {
	Enabled bool    `yaml:"enabled"`
	Weight  float64 `yaml:"weight"`
}

// Globularize controls moving peaks to their most compact symmetry images.
type Globularize struct {
	Enabled bool        `yaml:"enabled"`
	Centre  *[3]float64 `yaml:"centre,omitempty"`
}

// Config is the full set of run parameters.
type Config struct {
	Threads     int         `yaml:"threads"`
	Contact     Contact     `yaml:"contact"`
	Ranking     Ranking     `yaml:"ranking"`
	Growth      Growth      `yaml:"growth"`
	Build       Build       `yaml:"build"`
	Overlap     Overlap     `yaml:"overlap"`
	Filters     Filters     `yaml:"filters"`
	Refine      Refine      `yaml:"refine"`
	Globularize Globularize `yaml:"globularize"`
}

// Default returns the standard parameter set.
func Default() Config {
	return Config{
		Threads: 0,
		Contact: Contact{
			Distance:  3.81,
			Variation: 0.4,
		},
		Ranking: Ranking{
			TopPairs: 1000,
		},
		Growth: Growth{
			MinRefoldDistance:         5.0,
			DuplicateGeometryDistance: 3.0,
			ProgenitorMargin:          4,
			MinTraceLength:            4,
		},
		Build: Build{
			TopFragments: 2000,
		},
		Overlap: Overlap{
			ContactDistance:     1.0,
			MinOverlapFraction:  0.5,
			BigOverlapFraction:  0.89,
			SameDirectionStdDev: 3.0,
		},
		Filters: Filters{
			MinChainResidues:    3,
			TwistedPerChainMax:  1,
			TwistLimitDegrees:   33.3,
			TrimDensityFraction: 0.9,
			TrimOmegaDegrees:    160,
			SequenceMinResidues: 6,
		},
		Refine: Refine{
			Enabled: true,
			Weight:  60,
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Workers resolves the worker count, defaulting to GOMAXPROCS.
func (c Config) Workers() int {
	if c.Threads > 0 {
		return c.Threads
	}

	return runtime.GOMAXPROCS(0)
}

// Validate checks that every threshold is usable.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Threads >= 0, "threads"},
		{c.Contact.Distance > 0, "contact.ca_ca_distance"},
		{c.Contact.Variation >= 0 && c.Contact.Variation < c.Contact.Distance, "contact.variation"},
		{c.Growth.MinRefoldDistance >= 0, "growth.min_refold_distance"},
		{c.Growth.DuplicateGeometryDistance >= 0, "growth.duplicate_geometry_distance"},
		{c.Growth.ProgenitorMargin >= 0, "growth.progenitor_margin"},
		{c.Growth.MinTraceLength >= 1, "growth.min_trace_length"},
		{c.Overlap.ContactDistance > 0, "overlap.contact_distance"},
		{c.Overlap.MinOverlapFraction >= 0 && c.Overlap.MinOverlapFraction <= 1, "overlap.min_overlap_fraction"},
		{c.Overlap.BigOverlapFraction >= 0 && c.Overlap.BigOverlapFraction <= 1, "overlap.big_overlap_fraction"},
		{c.Overlap.SameDirectionStdDev > 0, "overlap.same_direction_stddev"},
		{c.Filters.MinChainResidues >= 0, "filters.min_chain_residues"},
		{c.Filters.TwistedPerChainMax >= 0, "filters.twisted_per_chain_max"},
		{c.Filters.TwistLimitDegrees >= 0 && c.Filters.TwistLimitDegrees <= 180, "filters.twist_limit_degrees"},
		{c.Filters.TrimDensityFraction >= 0, "filters.trim_density_fraction"},
		{c.Filters.TrimOmegaDegrees >= 0 && c.Filters.TrimOmegaDegrees <= 180, "filters.trim_omega_degrees"},
		{c.Refine.Weight >= 0, "refine.weight"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, check.name)
		}
	}

	return nil
}
