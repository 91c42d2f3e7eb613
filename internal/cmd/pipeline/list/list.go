package list

import (
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/printer"
)

type opts struct {
	exporter util.Exporter
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "list-pipelines",
		Short: "List build pipelines",
		Long: heredoc.Doc(`
			List the build pipeline definitions of the configured project.
		`),
		Example: heredoc.Doc(`
			$ envmgr list-pipelines
			$ envmgr list-pipelines --json id,name
		`),
		Aliases: []string{"pipelines"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, opts)
		},
	}

	util.AddJSONFlags(cmd, &opts.exporter, []string{"id", "name", "path", "kind"})

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

	var pipelines []envmgr.PipelineDefinition
	err = ios.RunWithProgress("Fetching pipelines", func() (err error) {
		pipelines, err = manager.ListPipelines(cmdCtx.Context())
		return
	})
	if err != nil {
		return err
	}

	if opts.exporter != nil {
		return opts.exporter.Write(ios, pipelines)
	}
	if len(pipelines) == 0 {
		return util.NewNoResultsError("no pipelines found")
	}

	tp, err := cmdCtx.Printer("table")
	if err != nil {
		return err
	}
	tp.AddColumns("ID", "NAME", "PATH", "KIND")
	for _, p := range pipelines {
		tp.AddField(strconv.Itoa(p.ID), printer.WithoutTruncation())
		tp.AddField(p.Name)
		tp.AddField(p.Path)
		tp.AddField(p.Kind)
		tp.EndRow()
	}
	return tp.Render()
}
