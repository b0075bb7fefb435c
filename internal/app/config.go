package app

// Config holds all the necessary configuration for an App instance to run.
// Every field is optional; the zero value produces the unfiltered full
// document listing.
type Config struct {
	StandardFilter string // substring filter on standard display names
	IndustryFilter string // substring filter on industry tag names
	Code           string // non-empty triggers search mode
	ShowAll        bool   // search mode: match every document
	ListStandards  bool   // standards-listing mode
	Detailed       bool   // standards-listing mode: extended fields

	NoColor   bool
	LogFormat string
	LogLevel  string
}

// NewConfig normalizes cfg and returns it. Unset logging fields fall back to
// their defaults so an App can be built from a zero Config in tests.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
