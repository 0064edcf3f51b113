package ui

// Config holds the windowed front-end's user-facing settings.
type Config struct {
	Title string
	Scale int
}

func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "gbemu"
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
}
