package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"commitlens/internal/clix"
	"commitlens/internal/models"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Classify multiple commit messages at once",
	Long: `Classifies commit messages read one per line from the given file, or from
stdin when no file is provided (e.g. piped from 'git log --format=%s').
A message that fails to classify is reported as an error for that line
without aborting the rest of the batch. Results keep input order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}

		messages, err := readBatchMessages(args)
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			return models.ErrNoMessages
		}

		batch, err := appInstance.ClassificationService.ClassifyBatch(cmd.Context(), messages)
		if err != nil {
			return fmt.Errorf("batch classification failed: %w", err)
		}

		if format == clix.FormatJSON {
			return printJSON(cmd, batch)
		}

		printBatchTable(batch)
		return nil
	},
}

// readBatchMessages collects non-blank lines from the file argument or stdin.
func readBatchMessages(args []string) ([]string, error) {
	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open messages file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var messages []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		messages = append(messages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return messages, nil
}

func printBatchTable(batch *models.BatchResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Message", "Type", "Scope", "Confidence", "Suggestions"})
	table.SetBorder(true)
	table.SetRowLine(true)

	for _, item := range batch.Results {
		if item.Error != "" {
			table.Append([]string{item.Message, color.RedString("ERROR"), "", "", item.Error})
			continue
		}

		scope := ""
		if item.Result.Scope != nil {
			scope = *item.Result.Scope
		}
		table.Append([]string{
			item.Message,
			item.Result.Type,
			scope,
			fmt.Sprintf("%.2f", item.Result.Confidence),
			fmt.Sprintf("%d", len(item.Result.Suggestions)),
		})
	}

	table.Render()
	fmt.Printf("Processed %d messages.\n", batch.Total)
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Bool("json", false, "Print results as JSON")
}
