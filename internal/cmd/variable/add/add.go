package add

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
)

type opts struct {
	groupID  string
	name     string
	value    string
	hasValue bool
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "add-variable <library-id> <name> [<value>]",
		Short: "Add a variable to a library",
		Long: heredoc.Doc(`
			Add a new plain variable to a variable group. The command fails when a variable
			with the same name already exists.

			When the value is omitted and the terminal is interactive, it is prompted for.
		`),
		Example: heredoc.Doc(`
			$ envmgr add-variable 12 postgresPort 5433
		`),
		Args: util.RangeArgs(2, 3, "library ID and variable name are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.groupID = args[0]
			opts.name = args[1]
			if len(args) == 3 {
				opts.value = args[2]
				opts.hasValue = true
			}
			return run(ctx, opts)
		},
	}

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	groupID, err := util.ParseID("library ID", opts.groupID)
	if err != nil {
		return err
	}
	if opts.name == "" {
		return util.FlagErrorf("variable name must not be empty")
	}
	ios, err := cmdCtx.IOStreams()
	if err != nil {
		return err
	}

	if !opts.hasValue {
		if !ios.CanPrompt() {
			return util.FlagErrorf("value argument required when not running interactively")
		}
		p, err := cmdCtx.Prompter()
		if err != nil {
			return err
		}
		opts.value, err = p.Input(fmt.Sprintf("Value for %q:", opts.name), "")
		if err != nil {
			return err
		}
	}

	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}
	err = ios.RunWithProgress("Adding variable", func() error {
		return manager.AddVariable(cmdCtx.Context(), groupID, opts.name, opts.value)
	})
	if err != nil {
		return err
	}
	if ios.IsStdoutTTY() {
		fmt.Fprintf(ios.Out, "Added variable %q to library %d\n", opts.name, groupID)
	}
	return nil
}
