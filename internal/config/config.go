package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"inventory-sim/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// ForecastFile points at the forecast dataset JSON (per-day means plus a
	// residual stdev). Relative paths resolve against the config file's
	// directory first, then the working directory.
	ForecastFile string `yaml:"forecast_file"`

	Policy PolicyConfig `yaml:"policy"`
	Search SearchConfig `yaml:"search"`
	Seeds  SeedsConfig  `yaml:"seeds"`
}

type PolicyConfig struct {
	LeadTimeDays       int     `yaml:"lead_time_days"`
	HoldCostPerUnitDay float64 `yaml:"hold_cost_per_unit_day"`
	OrderCostPerOrder  float64 `yaml:"order_cost_per_order"`

	// ServiceZ feeds only the closed-form baseline formulas. Zero means
	// "derive from search.target_service".
	ServiceZ float64 `yaml:"service_z"`
}

type SearchConfig struct {
	HalfWidth     int     `yaml:"half_width"`
	NSims         int     `yaml:"n_sims"`
	NGridSims     int     `yaml:"n_grid_sims"`
	TargetService float64 `yaml:"target_service"`
	TopN          int     `yaml:"top_n"`
	Workers       int     `yaml:"workers"`
}

// SeedsConfig names one independent random stream per pipeline phase.
// The streams must never be reused across phases.
type SeedsConfig struct {
	Baseline   int64 `yaml:"baseline"`
	Grid       int64 `yaml:"grid"`
	Validation int64 `yaml:"validation"`
}

// Default returns the reference configuration: the values the policy and
// search were originally tuned with.
func Default() Config {
	return Config{
		Policy: PolicyConfig{
			LeadTimeDays:       5,
			HoldCostPerUnitDay: 1.0,
			OrderCostPerOrder:  50.0,
			ServiceZ:           1.65,
		},
		Search: SearchConfig{
			HalfWidth:     20,
			NSims:         10000,
			NGridSims:     100,
			TargetService: 0.95,
			TopN:          10,
		},
		Seeds: SeedsConfig{
			Baseline:   42,
			Grid:       7,
			Validation: 123,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config with defaults applied but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ForecastFile != "" && !filepath.IsAbs(c.ForecastFile) {
		// Prefer interpreting relative paths as relative to the config file
		// directory, but fall back to the provided path (relative to cwd).
		cand := filepath.Join(filepath.Dir(path), c.ForecastFile)
		if _, err := os.Stat(cand); err == nil {
			c.ForecastFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Policy.LeadTimeDays < 1 {
		return fmt.Errorf("policy.lead_time_days must be >= 1, got %d", c.Policy.LeadTimeDays)
	}
	if c.Policy.HoldCostPerUnitDay <= 0 {
		return errors.New("policy.hold_cost_per_unit_day must be > 0")
	}
	if c.Policy.OrderCostPerOrder < 0 {
		return errors.New("policy.order_cost_per_order must be >= 0")
	}
	if c.Search.HalfWidth < 1 {
		return fmt.Errorf("search.half_width must be >= 1, got %d", c.Search.HalfWidth)
	}
	if c.Search.NSims < 1 || c.Search.NGridSims < 1 {
		return errors.New("search.n_sims and search.n_grid_sims must be >= 1")
	}
	if c.Search.TargetService <= 0 || c.Search.TargetService > 1 {
		return fmt.Errorf("search.target_service must be in (0, 1], got %v", c.Search.TargetService)
	}
	if c.Search.TopN < 1 {
		return fmt.Errorf("search.top_n must be >= 1, got %d", c.Search.TopN)
	}
	if c.Seeds.Baseline == c.Seeds.Grid || c.Seeds.Baseline == c.Seeds.Validation || c.Seeds.Grid == c.Seeds.Validation {
		return errors.New("seeds.baseline, seeds.grid and seeds.validation must be pairwise distinct")
	}
	return nil
}

// ToModelParams returns the policy cost constants with (R, Q) unset; the
// baseline formulas and grid search fill those in.
func (p PolicyConfig) ToModelParams() model.PolicyParameters {
	return model.PolicyParameters{
		LeadTimeDays:       p.LeadTimeDays,
		HoldCostPerUnitDay: p.HoldCostPerUnitDay,
		OrderCostPerOrder:  p.OrderCostPerOrder,
	}
}

// MergePolicy overlays non-zero fields from override onto base.
// Used when an API request overrides parts of a stored configuration.
func MergePolicy(base, override PolicyConfig) PolicyConfig {
	out := base
	if override.LeadTimeDays != 0 {
		out.LeadTimeDays = override.LeadTimeDays
	}
	if override.HoldCostPerUnitDay != 0 {
		out.HoldCostPerUnitDay = override.HoldCostPerUnitDay
	}
	if override.OrderCostPerOrder != 0 {
		out.OrderCostPerOrder = override.OrderCostPerOrder
	}
	if override.ServiceZ != 0 {
		out.ServiceZ = override.ServiceZ
	}
	return out
}

// MergeSearch overlays non-zero fields from override onto base.
func MergeSearch(base, override SearchConfig) SearchConfig {
	out := base
	if override.HalfWidth != 0 {
		out.HalfWidth = override.HalfWidth
	}
	if override.NSims != 0 {
		out.NSims = override.NSims
	}
	if override.NGridSims != 0 {
		out.NGridSims = override.NGridSims
	}
	if override.TargetService != 0 {
		out.TargetService = override.TargetService
	}
	if override.TopN != 0 {
		out.TopN = override.TopN
	}
	if override.Workers != 0 {
		out.Workers = override.Workers
	}
	return out
}
