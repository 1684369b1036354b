package config

import "fmt"

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validateThresholds("matching", c.Matching.MatchThreshold, c.Matching.PotentialThreshold, c.Matching.YearPenalty); err != nil {
		return err
	}
	if err := validateThresholds("dedup", c.Dedup.DuplicateThreshold, c.Dedup.PotentialThreshold, c.Dedup.YearPenalty); err != nil {
		return err
	}

	switch c.Merge.Confirmation {
	case "prompt", "approve", "deny":
	default:
		return fmt.Errorf("merge.confirmation must be one of prompt, approve, deny (got %q)", c.Merge.Confirmation)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}

	return nil
}

func validateThresholds(section string, high, low, penalty float64) error {
	if high <= 0 || high > 1 {
		return fmt.Errorf("%s: definite threshold must be in (0, 1] (got %g)", section, high)
	}
	if low <= 0 || low > 1 {
		return fmt.Errorf("%s: potential threshold must be in (0, 1] (got %g)", section, low)
	}
	if low >= high {
		return fmt.Errorf("%s: potential threshold %g must be below definite threshold %g", section, low, high)
	}
	if penalty <= 0 || penalty > 1 {
		return fmt.Errorf("%s: year penalty must be in (0, 1] (got %g)", section, penalty)
	}
	return nil
}
