package config

// Origin is the scheme and host the client considers itself served from.
// The resolver derives sibling-service candidates from it.
type Origin struct {
	Scheme string `yaml:"scheme" koanf:"scheme"`
	Host   string `yaml:"host" koanf:"host"`
}

// Fixture configures the local development backend started by `folio serve`.
type Fixture struct {
	Port int    `yaml:"port" koanf:"port"`
	File string `yaml:"file" koanf:"file"`
}

// Export configures the static HTML export.
type Export struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	Title     string `yaml:"title" koanf:"title"`
}

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	// Backend is the explicit base URL override. When set it becomes the
	// first candidate tried; when empty the client relies on the derived
	// candidates alone.
	Backend string `yaml:"backend" koanf:"backend"`

	Origin         Origin  `yaml:"origin" koanf:"origin"`
	TimeoutSeconds int     `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	CachePath      string  `yaml:"cache_path" koanf:"cache_path"`
	Fixture        Fixture `yaml:"fixture" koanf:"fixture"`
	Export         Export  `yaml:"export" koanf:"export"`
}
