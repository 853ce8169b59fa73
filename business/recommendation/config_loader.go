package recommendation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads scoring overrides from a YAML file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read recommendation config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse recommendation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.TopN <= 0 {
		return errors.New("top_n must be positive")
	}
	if c.DecayDays <= 0 {
		return errors.New("decay_days must be positive")
	}
	if c.RecentWindowDays <= 0 || c.TrendWindowDays <= c.RecentWindowDays {
		return fmt.Errorf("trend windows must satisfy 0 < recent (%d) < trend (%d)",
			c.RecentWindowDays, c.TrendWindowDays)
	}
	if c.Collaborative.NeighborsEnabled && c.Collaborative.Neighbors <= 0 {
		return errors.New("collaborative.neighbors must be positive when neighbors are enabled")
	}
	return nil
}
