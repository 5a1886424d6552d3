package commands

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/fulcrumops/jira-mcp/internal/client"
	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/internal/tools"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// Static errors for err113 compliance.
var ErrUnknownTransport = errors.New("transport must be stdio or sse")

// NewServeCommand creates the serve command.
func NewServeCommand(version string) *cobra.Command {
	var (
		transport string
		sseAddr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Run the MCP server over the chosen transport.

stdio serves a single session over stdin/stdout and is what MCP clients
such as Claude Desktop spawn. sse serves multiple sessions over HTTP
with server-sent events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := jira.LoadConfig()
			if err != nil {
				return err
			}

			// Stdout carries the protocol on stdio transport; logs go to
			// stderr unconditionally so both transports behave the same.
			logger := jira.NewStderrLogger(cfg.LogLevel)

			jiraClient := client.New(cfg,
				http.WithLogger(logger),
				http.WithUserAgent("jira-mcp/"+version),
			)
			defer jiraClient.Close()

			mcpServer := tools.NewServer(&tools.Deps{
				Client: jiraClient,
				Config: cfg,
				Logger: logger,
			}, version)

			logger.Info("starting MCP server", map[string]interface{}{
				"transport": transport,
				"url":       cfg.BaseURL,
				"cloud":     cfg.IsCloud(),
				"read_only": cfg.ReadOnly,
			})

			switch transport {
			case "stdio":
				return server.ServeStdio(mcpServer)
			case "sse":
				return server.NewSSEServer(mcpServer).Start(sseAddr)
			default:
				return fmt.Errorf("%w: got %q", ErrUnknownTransport, transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "transport to serve on (stdio, sse)")
	cmd.Flags().StringVar(&sseAddr, "sse-addr", ":8000", "listen address for the sse transport")

	return cmd
}
