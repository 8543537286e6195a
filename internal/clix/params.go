package clix

import (
	"fmt"

	"github.com/spf13/pflag"
)

// OutputFormat selects how a command renders its results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat reads the shared --json flag and returns the effective
// output format for a command.
func ParseOutputFormat(flags *pflag.FlagSet) (OutputFormat, error) {
	asJSON, err := flags.GetBool("json")
	if err != nil {
		return FormatText, fmt.Errorf("read --json flag: %w", err)
	}
	if asJSON {
		return FormatJSON, nil
	}
	return FormatText, nil
}
