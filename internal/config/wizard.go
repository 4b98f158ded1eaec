package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio client.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Explicit backend override (optional).
	backendPrompt := promptui.Prompt{
		Label:   "Backend base URL (leave empty to auto-discover)",
		Default: "",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			u, err := url.Parse(s)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("must be an absolute URL like http://localhost:8000")
			}
			return nil
		},
	}
	backend, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend prompt: %w", err)
	}
	cfg.Backend = strings.TrimSpace(backend)

	// 2. Origin scheme.
	schemePrompt := promptui.Select{
		Label: "Origin scheme",
		Items: []string{"http", "https"},
	}
	_, scheme, err := schemePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("scheme selection: %w", err)
	}
	cfg.Origin.Scheme = scheme

	// 3. Origin host.
	hostPrompt := promptui.Prompt{
		Label:   "Origin host",
		Default: cfg.Origin.Host,
	}
	host, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host prompt: %w", err)
	}
	cfg.Origin.Host = strings.TrimSpace(host)

	// 4. Fixture server port.
	portPrompt := promptui.Prompt{
		Label:   "Fixture server port",
		Default: strconv.Itoa(cfg.Fixture.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Fixture.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nSaved configuration to %s\n", path)
	return cfg, nil
}
