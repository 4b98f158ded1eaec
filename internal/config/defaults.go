package config

// DefaultConfig returns a Config with sensible defaults for local
// development: client on port 3000, backend guessed on 8000.
func DefaultConfig() *Config {
	return &Config{
		Backend: "",
		Origin: Origin{
			Scheme: "http",
			Host:   "localhost:3000",
		},
		TimeoutSeconds: 10,
		CachePath:      ".folio/cache.db",
		Fixture: Fixture{
			Port: 8000,
			File: "content.yml",
		},
		Export: Export{
			OutputDir: "public",
			Title:     "Portfolio",
		},
	}
}
