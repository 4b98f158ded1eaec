package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/django-nerd/folio/internal/endpoint"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the candidate base URLs in the order they are tried",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		candidates := endpoint.Candidates(cfg.Backend, endpoint.Origin{
			Scheme: cfg.Origin.Scheme,
			Host:   cfg.Origin.Host,
		})
		for i, c := range candidates {
			if c == "" {
				c = fmt.Sprintf("(relative to %s)", originURL(cfg))
			}
			fmt.Printf("%d. %s\n", i+1, c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
