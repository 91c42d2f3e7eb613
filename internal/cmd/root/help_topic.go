package root

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/muesli/reflow/indent"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
)

type helpTopic struct {
	name  string
	short string
	long  string
}

var HelpTopics = []helpTopic{
	{
		name:  "environment",
		short: "Environment variables that can be used with envmgr",
		long: heredoc.Doc(`
			AZDO_ORG_URL: URL of the Azure DevOps organization, for example
			https://dev.azure.com/contoso.

			AZDO_TOKEN: personal access token used for every request. When unset the token
			from the configuration file or the system keyring is used.

			AZDO_PROJECT: name of the project all pipelines and libraries belong to.

			AZDO_ENVMGR_LISTEN: address the web interface listens on. Defaults to ":8080".

			AZDO_ENVMGR_CONFIG_DIR: directory of config.yml. Defaults to
			$XDG_CONFIG_HOME/azdo-envmgr or ~/.config/azdo-envmgr.

			AZDO_ENVMGR_DEBUG, AZDO_DEBUG: set to a truthy value to enable verbose logging on
			standard error.

			AZDO_PROMPT_DISABLED: set to any value to disable interactive prompting in the terminal.

			AZDO_FORCE_TTY: set to any value to force terminal-style output even when the output is
			redirected. When the value is a number, it is interpreted as the number of columns.

			NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

			CLICOLOR_FORCE: set to a value other than "0" to keep ANSI colors in the output
			even when the output is piped.

			A .env file in the working directory is read as well; real environment variables
			take precedence over it.
		`),
	},
	{
		name:  "exit-codes",
		short: "Exit codes used by envmgr",
		long: heredoc.Doc(`
			envmgr follows normal conventions regarding exit codes.

			- If a command completes successfully, the exit code will be 0

			- If a command fails for any reason, the exit code will be 1

			- If a command is running but gets cancelled, the exit code will be 2

			- If the organization, project or token is not configured, the exit code will be 4

			NOTE: a list command that finds nothing still exits with 0.
		`),
	},
}

func NewCmdHelpTopic(ios *iostreams.IOStreams, ht helpTopic) *cobra.Command {
	cmd := &cobra.Command{
		Use:    ht.name,
		Short:  ht.short,
		Long:   ht.long,
		Hidden: true,
		Annotations: map[string]string{
			"markdown:generate": "true",
			"markdown:basename": "envmgr_help_" + ht.name,
		},
	}

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return helpTopicUsageFunc(ios.ErrOut, c)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		helpTopicHelpFunc(ios.Out, c)
	})

	return cmd
}

func helpTopicHelpFunc(w io.Writer, command *cobra.Command) {
	fmt.Fprint(w, command.Long)
	if command.Example != "" {
		fmt.Fprintf(w, "\n\nEXAMPLES\n")
		fmt.Fprint(w, indent.String(command.Example, 2))
	}
}

func helpTopicUsageFunc(w io.Writer, command *cobra.Command) error {
	fmt.Fprintf(w, "Usage: envmgr help %s", command.Use)
	return nil
}
