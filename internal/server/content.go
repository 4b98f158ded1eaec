package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/django-nerd/folio/internal/content"
)

// ContentFile is the fixture content document. Every section is a list of
// flat string maps, mirroring what the real backend returns.
type ContentFile struct {
	Menu     []content.Item `yaml:"menu"`
	Tech     []content.Item `yaml:"tech"`
	Focus    []content.Item `yaml:"focus"`
	Reviews  []content.Item `yaml:"reviews"`
	Contacts []content.Item `yaml:"contacts"`
	Projects []content.Item `yaml:"projects"`
	Gallery  []content.Item `yaml:"gallery"`
}

// LoadContent reads and parses the fixture content file.
func LoadContent(path string) (*ContentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}

	var cf ContentFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing content file %s: %w", path, err)
	}
	return &cf, nil
}
