package config

import "bibsync/internal/match"

const (
	defaultStorePath = "~/.local/share/bibsync/publications.json"
	defaultReportDir = "~/.local/share/bibsync/reports"
	defaultHistoryPath   = "~/.local/share/bibsync/history.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultConfirmation  = "prompt"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StorePath: defaultStorePath,
			ReportDir: defaultReportDir,
		},
		Matching: Matching{
			MatchThreshold:     match.DefaultMatchThreshold,
			PotentialThreshold: match.DefaultPotentialThreshold,
			YearPenalty:        match.DefaultYearPenalty,
		},
		Dedup: Dedup{
			DuplicateThreshold: match.DefaultMatchThreshold,
			PotentialThreshold: match.DefaultPotentialThreshold,
			YearPenalty:        match.DefaultYearPenalty,
		},
		Merge: Merge{
			BackupEnabled: true,
			Confirmation:  defaultConfirmation,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
	}
}

// MatchingOptions maps the matching section onto scorer options.
func (c *Config) MatchingOptions() match.Options {
	return match.Options{
		MatchThreshold:     c.Matching.MatchThreshold,
		PotentialThreshold: c.Matching.PotentialThreshold,
		YearPenalty:        c.Matching.YearPenalty,
	}
}

// DedupOptions maps the dedup section onto scorer options.
func (c *Config) DedupOptions() match.Options {
	return match.Options{
		MatchThreshold:     c.Dedup.DuplicateThreshold,
		PotentialThreshold: c.Dedup.PotentialThreshold,
		YearPenalty:        c.Dedup.YearPenalty,
	}
}
