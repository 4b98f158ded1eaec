package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/django-nerd/folio/internal/content"
	"github.com/django-nerd/folio/internal/progress"
	"github.com/django-nerd/folio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the portfolio to a static HTML page",
	Long: `Fetches every collection, including the projects for each technology and
the gallery for each design focus, and writes a standalone HTML page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		svc := newService(cfg)

		reporter := progress.NewReporter()
		reporter.Start(5)
		cols := svc.Bootstrap(ctx, func(done, total int, name string) {
			reporter.Update(done, name)
		})
		reporter.Finish()

		if cols.Degraded {
			fmt.Printf("Warning: some content could not be loaded (%v)\n", cols.FirstErr)
		}

		data := site.Data{
			Collections: cols,
			Projects:    make(map[string][]content.Item),
			Gallery:     make(map[string][]content.Item),
		}
		for _, tech := range cols.Tech {
			name := tech.Label()
			if name == "" {
				continue
			}
			projects, err := svc.Projects(ctx, name)
			if err != nil {
				fmt.Printf("Warning: projects for %s: %v\n", name, err)
				continue
			}
			data.Projects[name] = projects
		}
		for _, focus := range cols.Focus {
			name := focus.Label()
			if name == "" {
				continue
			}
			shots, err := svc.Gallery(ctx, name)
			if err != nil {
				fmt.Printf("Warning: gallery for %s: %v\n", name, err)
				continue
			}
			data.Gallery[name] = shots
		}

		gen := site.NewGenerator(cfg.Export.OutputDir, cfg.Export.Title)
		n, err := gen.Generate(data)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d sections to %s/index.html\n", n, cfg.Export.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
