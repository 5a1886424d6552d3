package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// writeOutput renders v according to the global --output flag: json and
// yaml encode v directly, anything else renders the table fill builds.
func writeOutput(w io.Writer, v any, fill func(table *tablewriter.Table)) error {
	switch viper.GetString("output") {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	case "yaml":
		return yaml.NewEncoder(w).Encode(v)
	default:
		table := tablewriter.NewWriter(w)
		fill(table)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
