package token

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/config"
)

type opts struct {
	organizationURL string
	withToken       bool
	lookupEnv       func(string) (string, bool)
	store           func(organization, token string) error
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{
		lookupEnv: os.LookupEnv,
		store:     config.StoreToken,
	}

	cmd := &cobra.Command{
		Use:   "store-token",
		Short: "Save a personal access token in the system keyring",
		Long: heredoc.Docf(`
			Save the personal access token of an organization in the system keyring. The token
			is used whenever %[1]sAZDO_TOKEN%[1]s is not set and the configuration file carries none.

			The organization URL defaults to %[1]sAZDO_ORG_URL%[1]s. Without a terminal, or with
			--with-token, the token is read from standard input.
		`, "`"),
		Example: heredoc.Doc(`
			$ envmgr store-token --org-url https://dev.azure.com/contoso
			$ echo "$PAT" | envmgr store-token --with-token
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.organizationURL, "org-url", "", "URL of the Azure DevOps organization")
	cmd.Flags().BoolVar(&opts.withToken, "with-token", false, "Read the token from standard input")

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	orgURL := opts.organizationURL
	if orgURL == "" {
		orgURL, _ = opts.lookupEnv("AZDO_ORG_URL")
	}
	if strings.TrimSpace(orgURL) == "" {
		return util.FlagErrorf("--org-url is required when AZDO_ORG_URL is not set")
	}
	orgURL, err := config.NormalizeOrganizationURL(orgURL)
	if err != nil {
		return util.FlagErrorWrap(err)
	}
	organization := config.OrganizationFromURL(orgURL)

	ios, err := cmdCtx.IOStreams()
	if err != nil {
		return err
	}

	var token string
	if opts.withToken || !ios.CanPrompt() {
		raw, err := io.ReadAll(ios.In)
		if err != nil {
			return fmt.Errorf("failed to read token from standard input: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	} else {
		p, err := cmdCtx.Prompter()
		if err != nil {
			return err
		}
		token, err = p.Password(fmt.Sprintf("Personal access token for %s:", organization))
		if err != nil {
			return err
		}
		token = strings.TrimSpace(token)
	}
	if token == "" {
		return util.FlagErrorf("token must not be empty")
	}

	if err := opts.store(organization, token); err != nil {
		return fmt.Errorf("failed to store token for %s: %w", organization, err)
	}
	if ios.IsStderrTTY() {
		fmt.Fprintf(ios.ErrOut, "Stored token for organization %s\n", organization)
	}
	return nil
}
