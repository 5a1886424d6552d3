package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fulcrumops/jira-mcp/internal/constants"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify connectivity and credentials against the Jira instance",
		Long: `Resolve the configuration, call the Jira instance and report who the
credentials authenticate as. Prompts for an API token when none is
configured and stdin is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptForToken(); err != nil {
				return err
			}

			cfg, err := jira.LoadConfig()
			if err != nil {
				return err
			}

			user, err := probeMyself(cfg)
			if err != nil {
				return err
			}

			generation := "Server/Data Center"
			if cfg.IsCloud() {
				generation = "Cloud"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: authenticated as %s\n", user.DisplayName)
			fmt.Fprintf(cmd.OutOrStdout(), "Instance: %s (%s)\n", cfg.BaseURL, generation)

			return nil
		},
	}
}

// promptForToken asks for an API token interactively when none is
// configured. Non-interactive invocations fall through to validation.
func promptForToken() error {
	if viper.GetString("api_token") != "" || viper.GetString("personal_access_token") != "" {
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	fmt.Fprint(os.Stderr, "API token: ")

	token, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}

	viper.Set("api_token", string(token))

	return nil
}

// probeMyself calls the myself endpoint once, with client-side retries
// handled by retryablehttp rather than the MCP request pipeline. A
// dedicated probe keeps the check usable even when the pipeline
// configuration itself is what is broken.
func probeMyself(cfg *jira.Config) (*jira.User, error) {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.HTTPClient.Timeout = constants.ShortHTTPTimeout
	rc.Logger = nil

	req, err := retryablehttp.NewRequest(http.MethodGet, cfg.BaseURL+"/rest/api/2/myself", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for k, v := range jira.AuthHeaders(cfg) {
		req.Header.Set(k, v)
	}

	resp, err := rc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", cfg.BaseURL, err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, jira.NewAPIError(
			fmt.Sprintf("connectivity check failed: %d", resp.StatusCode), resp.StatusCode, nil)
	}

	var user jira.User

	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return &user, nil
}
