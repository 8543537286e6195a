package cmd

import (
	"fmt"
	"os"
	"strings"

	"commitlens/internal/clix"
	"commitlens/internal/models"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List all commit types known to the classifier",
	Long: `Lists every commit type in the rule table with its description, the keywords
used for fallback matching, and an example message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}

		infos := appInstance.ClassificationService.Types()

		if format == clix.FormatJSON {
			// Keyed by type id, matching the HTTP /types response shape.
			resp := make(map[string]models.CategoryInfo, len(infos))
			for _, info := range infos {
				resp[info.ID] = info
			}
			return printJSON(cmd, resp)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Type", "Description", "Keywords", "Example"})
		table.SetBorder(true)
		table.SetRowLine(true)

		for _, info := range infos {
			table.Append([]string{
				info.ID,
				info.Description,
				strings.Join(info.Keywords, ", "),
				info.Example,
			})
		}

		table.Render()
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show classifier statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}

		stats := appInstance.ClassificationService.Stats()

		if format == clix.FormatJSON {
			return printJSON(cmd, stats)
		}

		fmt.Printf("Commit types: %d\n", stats.TotalCommitTypes)
		fmt.Printf("Supported:    %s\n", strings.Join(stats.SupportedTypes, ", "))
		fmt.Printf("API version:  %s\n", stats.APIVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(statsCmd)

	typesCmd.Flags().Bool("json", false, "Print the type table as JSON")
	statsCmd.Flags().Bool("json", false, "Print stats as JSON")
}
