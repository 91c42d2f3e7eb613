package get

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
)

type opts struct {
	groupID string
	name    string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "get-variable <library-id> <name>",
		Short: "Print the value of a variable",
		Long: heredoc.Doc(`
			Print the value of one variable of a variable group. Names are matched exactly.
			Secret variables print as "***".
		`),
		Example: heredoc.Doc(`
			$ envmgr get-variable 12 environment
		`),
		Args: util.ExactArgs(2, "library ID and variable name are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.groupID = args[0]
			opts.name = args[1]
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
	ios, err := cmdCtx.IOStreams()
	if err != nil {
		return err
	}
	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}

	var value string
	err = ios.RunWithProgress("Fetching variable", func() (err error) {
		value, err = manager.GetVariable(cmdCtx.Context(), groupID, opts.name)
		return
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(ios.Out, value)
	return nil
}
