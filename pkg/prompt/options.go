package prompt

// Theme captures optional prefixes applied to prompt and info messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
}

// Option configures a Collector.
type Option func(*Collector)

// WithPromptDriver overrides the driver used by the collector.
func WithPromptDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(c *Collector) {
		c.theme = theme
	}
}
