package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/django-nerd/folio/internal/browser"
	"github.com/django-nerd/folio/internal/cache"
)

var browseNoCache bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio interactively",
	Long: `Loads the menu, technology, design focus, review and contact collections,
then walks through the portfolio with interactive menus. When no backend
candidate is reachable, previously cached content is shown instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var store *cache.Store
		if !browseNoCache && cfg.CachePath != "" {
			store, err = cache.Open(cfg.CachePath)
			if err != nil {
				// Caching is best-effort; browse without it.
				log.Printf("browse: opening cache: %v", err)
				store = nil
			} else {
				defer store.Close()
			}
		}

		b := browser.New(newService(cfg), store)
		if err := b.Run(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Bye.")
		return nil
	},
}

func init() {
	browseCmd.Flags().BoolVar(&browseNoCache, "no-cache", false, "disable the content snapshot cache")
	rootCmd.AddCommand(browseCmd)
}
