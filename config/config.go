// Package config loads and validates the solver configuration.
//
// Values start from Default, are overlaid by an optional YAML file (unknown
// keys are rejected), and may then be overridden field by field by the
// command line before Validate runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cvrp/auxgraph"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/refine"
	"github.com/katalvlaran/cvrp/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable knob of a run.
type Config struct {
	SectorWidth float64 `yaml:"sector_width"`
	Strategy    string  `yaml:"strategy"`
	MaxDegree   int     `yaml:"max_degree"`
	Wedge       float64 `yaml:"wedge"`
	Trials      int     `yaml:"trials"`
	Restarts    int     `yaml:"restarts"`
	Seed        uint64  `yaml:"seed"` // 0 means search.DefaultSeed
	Parallelism int     `yaml:"parallelism"`
	MatrixLimit int     `yaml:"matrix_limit"`
	Refine      Refine  `yaml:"refine"`
}

// Refine configures the post-construction local search.
type Refine struct {
	Enabled   bool `yaml:"enabled"`
	MaxPasses int  `yaml:"max_passes"`
}

// Default returns the tuned proximity-graph configuration.
func Default() Config {
	return Config{
		SectorWidth: search.DefaultWidth,
		Strategy:    auxgraph.StrategyProximity,
		MaxDegree:   auxgraph.DefaultMaxDegree,
		Trials:      search.DefaultTrials,
		Restarts:    auxgraph.DefaultRestarts,
		Seed:        search.DefaultSeed,
		MatrixLimit: instance.DefaultMatrixLimit,
		Refine: Refine{
			Enabled:   true,
			MaxPasses: refine.DefaultMaxPasses,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns Default unchanged. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over Default, rejecting unknown keys.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: yaml: %w", err)
	}
	return cfg, nil
}

// Validate reports every violated constraint in one error wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if !(c.SectorWidth > 0 && c.SectorWidth <= 360) {
		errs = append(errs, fmt.Errorf("sector_width %g not in (0, 360]", c.SectorWidth))
	}
	switch c.Strategy {
	case auxgraph.StrategyProximity:
		if c.MaxDegree <= 0 {
			errs = append(errs, fmt.Errorf("max_degree %d must be positive", c.MaxDegree))
		}
		if !(c.Wedge >= 0 && c.Wedge < 180) {
			errs = append(errs, fmt.Errorf("wedge %g not in [0, 180)", c.Wedge))
		}
	case auxgraph.StrategyMST:
	case auxgraph.StrategyMSTRestart:
		if c.Restarts < 1 {
			errs = append(errs, fmt.Errorf("restarts %d must be at least 1", c.Restarts))
		}
	default:
		errs = append(errs, fmt.Errorf("strategy %q not one of %s, %s, %s", c.Strategy,
			auxgraph.StrategyProximity, auxgraph.StrategyMST, auxgraph.StrategyMSTRestart))
	}
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("trials %d must be positive", c.Trials))
	}
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism %d must be non-negative", c.Parallelism))
	}
	if c.Refine.MaxPasses < 0 {
		errs = append(errs, fmt.Errorf("refine.max_passes %d must be non-negative", c.Refine.MaxPasses))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Builder returns the graph builder the configuration selects.
func (c Config) Builder() (auxgraph.Builder, error) {
	return auxgraph.New(c.Strategy, c.MaxDegree, c.Wedge, c.Restarts)
}

// SearchOptions maps the configuration onto search.Options. Logger and
// Observer are left for the caller.
func (c Config) SearchOptions() (search.Options, error) {
	b, err := c.Builder()
	if err != nil {
		return search.Options{}, err
	}
	o := search.DefaultOptions()
	o.Width = c.SectorWidth
	o.Builder = b
	o.Trials = c.Trials
	o.Seed = c.Seed
	o.Parallelism = c.Parallelism
	return o, nil
}

// RefineOptions maps the configuration onto refine.Options.
func (c Config) RefineOptions() refine.Options {
	o := refine.DefaultOptions()
	o.MaxPasses = c.Refine.MaxPasses
	return o
}

// InstanceOptions returns the loader options the configuration implies.
func (c Config) InstanceOptions() []instance.Option {
	return []instance.Option{instance.WithMatrixLimit(c.MatrixLimit)}
}
