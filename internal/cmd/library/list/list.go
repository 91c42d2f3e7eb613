package list

import (
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/printer"
	"github.com/tmeckel/azdo-envmgr/internal/text"
)

type opts struct {
	exporter util.Exporter
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "list-libraries",
		Short: "List variable groups",
		Long: heredoc.Doc(`
			List every variable group (library) of the configured project together with the
			number of variables it holds.
		`),
		Example: heredoc.Doc(`
			# List all libraries of the project
			$ envmgr list-libraries

			# Print only the names
			$ envmgr list-libraries --json name --jq '.[].name'
		`),
		Aliases: []string{"libraries"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, opts)
		},
	}

	util.AddJSONFlags(cmd, &opts.exporter, []string{"id", "name", "description", "variables"})

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	ios, err := cmdCtx.IOStreams()
	if err != nil {
		return err
	}
	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}

	var groups []envmgr.VariableGroup
	err = ios.RunWithProgress("Fetching libraries", func() (err error) {
		groups, err = manager.ListVariableGroups(cmdCtx.Context())
		return
	})
	if err != nil {
		return err
	}

	if opts.exporter != nil {
		return opts.exporter.Write(ios, groups)
	}
	if len(groups) == 0 {
		return util.NewNoResultsError("no libraries found")
	}

	tp, err := cmdCtx.Printer("table")
	if err != nil {
		return err
	}
	tp.AddColumns("ID", "NAME", "VARIABLES", "DESCRIPTION")
	for _, g := range groups {
		tp.AddField(strconv.Itoa(g.ID), printer.WithoutTruncation())
		tp.AddField(g.Name)
		tp.AddField(text.Pluralize(len(g.Variables), "variable"))
		tp.AddField(g.Description)
		tp.EndRow()
	}
	return tp.Render()
}
