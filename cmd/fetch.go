package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <path>",
	Short: "Fetch one backend path through the candidate scan",
	Long: `Performs a single resilient GET of a root-relative path (for example
/api/menu) and prints the JSON response. Useful for checking which
candidate base URL actually answers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := args[0]
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		client := newFetchClient(cfg)

		var body json.RawMessage
		if err := client.GetJSON(cmd.Context(), path, &body); err != nil {
			return err
		}

		var pretty map[string]any
		if err := json.Unmarshal(body, &pretty); err != nil {
			// Not an object; print as-is.
			fmt.Println(string(body))
			return nil
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
