package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fulcrumops/jira-mcp/internal/tools"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// NewToolsCommand creates the tools command.
func NewToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools and their status under the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := jira.LoadConfig()
			if err != nil {
				return err
			}

			type toolStatus struct {
				tools.ToolInfo `yaml:",inline"`
				Enabled        bool `json:"enabled" yaml:"enabled"`
			}

			catalog := tools.Catalog()
			statuses := make([]toolStatus, 0, len(catalog))

			for _, info := range catalog {
				enabled := cfg.IsToolEnabled(info.Name)
				if info.Write && cfg.ReadOnly {
					enabled = false
				}

				statuses = append(statuses, toolStatus{ToolInfo: info, Enabled: enabled})
			}

			return writeOutput(os.Stdout, statuses, func(table *tablewriter.Table) {
				table.Header("Tool", "Access", "Enabled", "Description")

				for _, st := range statuses {
					access := "read"
					if st.Write {
						access = "write"
					}

					_ = table.Append(st.Name, access, fmt.Sprintf("%t", st.Enabled), st.Description)
				}
			})
		},
	}
}
