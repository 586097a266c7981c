package types

// LibraryConfig configures the structured search-provider backend.
// An empty APIHost means the backend is absent; that is decided once at
// process start and never re-probed.
type LibraryConfig struct {
	APIHost           string `mapstructure:"api_host"`
	BasicAuthUsername string `mapstructure:"basic_auth_username"`
	BasicAuthPassword string `mapstructure:"basic_auth_password"`
	Timeout           int    `mapstructure:"timeout"` // seconds
}

// Enabled reports whether the library backend was configured.
func (c *LibraryConfig) Enabled() bool {
	return c != nil && c.APIHost != ""
}

// Validate validates the library configuration.
func (c *LibraryConfig) Validate() error {
	if c.APIHost == "" {
		return ErrInvalidAPIHost
	}
	if c.BasicAuthUsername != "" && c.BasicAuthPassword == "" {
		return ErrMissingBasicAuthPassword
	}
	return nil
}

// ScrapeConfig configures the direct page-scraping backend.
type ScrapeConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	Timeout   int    `mapstructure:"timeout"` // seconds
}

// Validate validates the scrape configuration.
func (c *ScrapeConfig) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidBaseURL
	}
	return nil
}
