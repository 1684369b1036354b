package config

import "strings"

// normalize expands path fields and trims whitespace-only values back to
// their defaults.
func (c *Config) normalize() error {
	var err error

	if strings.TrimSpace(c.Paths.StorePath) == "" {
		c.Paths.StorePath = defaultStorePath
	}
	if c.Paths.StorePath, err = expandPath(c.Paths.StorePath); err != nil {
		return err
	}

	// An empty checkpoint dir keeps checkpoints beside the store.
	c.Paths.CheckpointDir = strings.TrimSpace(c.Paths.CheckpointDir)
	if c.Paths.CheckpointDir != "" {
		if c.Paths.CheckpointDir, err = expandPath(c.Paths.CheckpointDir); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		c.Paths.ReportDir = defaultReportDir
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return err
	}

	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return err
	}

	c.Merge.Confirmation = strings.ToLower(strings.TrimSpace(c.Merge.Confirmation))
	if c.Merge.Confirmation == "" {
		c.Merge.Confirmation = defaultConfirmation
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}
