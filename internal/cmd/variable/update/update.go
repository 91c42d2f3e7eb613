package update

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
)

type opts struct {
	groupID string
	name    string
	value   string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "update-variable <library-id> <name> <value>",
		Short: "Set the value of a variable",
		Long: heredoc.Doc(`
			Set the value of a variable in a variable group. A missing variable is added as
			a plain (non-secret) variable; an existing one keeps its secret and read-only flags.
		`),
		Example: heredoc.Doc(`
			$ envmgr update-variable 12 app1Port 8081
		`),
		Args: util.ExactArgs(3, "library ID, variable name and value are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.groupID = args[0]
			opts.name = args[1]
			opts.value = args[2]
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
	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}

	err = ios.RunWithProgress("Updating variable", func() error {
		return manager.UpdateVariable(cmdCtx.Context(), groupID, opts.name, opts.value)
	})
	if err != nil {
		return err
	}
	if ios.IsStdoutTTY() {
		fmt.Fprintf(ios.Out, "Updated variable %q in library %d\n", opts.name, groupID)
	}
	return nil
}
