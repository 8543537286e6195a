package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"commitlens/internal/clix"
	"commitlens/internal/models"
	"commitlens/pkg/classifier"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <message...>",
	Short: "Classify a single commit message",
	Long: `Classifies a commit message into a conventional commit category (feat, fix,
docs, ...), extracts the scope if present, and prints style suggestions.
Provide the message as arguments; it will be joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}

		result, err := appInstance.ClassificationService.ClassifyMessage(cmd.Context(), message)
		if err != nil {
			if errors.Is(err, classifier.ErrEmptyMessage) {
				return fmt.Errorf("commit message is empty")
			}
			return fmt.Errorf("classification failed: %w", err)
		}

		if format == clix.FormatJSON {
			return printJSON(cmd, result)
		}

		printClassification(result)
		return nil
	},
}

// printClassification renders a single result for humans.
func printClassification(result *models.ClassificationResult) {
	fmt.Printf("Type:        %s\n", color.GreenString(result.Type))
	if result.Scope != nil {
		fmt.Printf("Scope:       %s\n", *result.Scope)
	}
	fmt.Printf("Description: %s\n", result.Description)
	fmt.Printf("Confidence:  %.0f%%\n", result.Confidence*100)

	if len(result.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", color.YellowString(s))
		}
	}
}

// printJSON writes any value as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Bool("json", false, "Print the result as JSON")
}
