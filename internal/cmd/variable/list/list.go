package list

import (
	"slices"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
)

type opts struct {
	groupID  string
	all      bool
	exporter util.Exporter
}

type variableJSON struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	Library    string `json:"library,omitempty"`
	IsSecret   bool   `json:"isSecret"`
	IsReadOnly bool   `json:"isReadOnly"`
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "list-variables [<library-id>]",
		Short: "List the variables of a library",
		Long: heredoc.Doc(`
			List the variables of one variable group, or with --all the variables of every
			variable group in the project. Secret values are shown as "***".
		`),
		Example: heredoc.Doc(`
			$ envmgr list-variables 12
			$ envmgr list-variables --all --json name,library
		`),
		Aliases: []string{"variables"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.groupID = args[0]
			}
			return run(ctx, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "List the variables of every library")
	util.AddJSONFlags(cmd, &opts.exporter, []string{"name", "value", "library", "isSecret", "isReadOnly"})

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	if err := util.MutuallyExclusive("specify either a library ID or --all", opts.all, opts.groupID != ""); err != nil {
		return err
	}
	if !opts.all && opts.groupID == "" {
		return util.FlagErrorf("library ID argument is required unless --all is given")
	}

	var groupID int
	if !opts.all {
		id, err := util.ParseID("library ID", opts.groupID)
		if err != nil {
			return err
		}
		groupID = id
	}

	ios, err := cmdCtx.IOStreams()
	if err != nil {
		return err
	}
	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}

	var rows []variableJSON
	err = ios.RunWithProgress("Fetching variables", func() error {
		if opts.all {
			entries, err := manager.ListAllVariables(cmdCtx.Context())
			if err != nil {
				return err
			}
			rows = lo.Map(entries, func(e envmgr.VariableEntry, _ int) variableJSON {
				return variableJSON{Name: e.Name, Value: e.Value, Library: e.Library, IsSecret: e.IsSecret}
			})
			return nil
		}
		group, err := manager.GetVariableGroup(cmdCtx.Context(), groupID)
		if err != nil {
			return err
		}
		names := lo.Keys(group.Variables)
		slices.Sort(names)
		rows = lo.Map(names, func(name string, _ int) variableJSON {
			v := group.Variables[name]
			return variableJSON{Name: name, Value: v.Value, Library: group.Name, IsSecret: v.IsSecret, IsReadOnly: v.IsReadOnly}
		})
		return nil
	})
	if err != nil {
		return err
	}

	if opts.exporter != nil {
		return opts.exporter.Write(ios, rows)
	}
	if len(rows) == 0 {
		return util.NewNoResultsError("no variables found")
	}

	tp, err := cmdCtx.Printer("table")
	if err != nil {
		return err
	}
	if opts.all {
		tp.AddColumns("NAME", "VALUE", "LIBRARY")
	} else {
		tp.AddColumns("NAME", "VALUE", "SECRET", "READ-ONLY")
	}
	for _, r := range rows {
		tp.AddField(r.Name)
		tp.AddField(r.Value)
		if opts.all {
			tp.AddField(r.Library)
		} else {
			tp.AddField(strconv.FormatBool(r.IsSecret))
			tp.AddField(strconv.FormatBool(r.IsReadOnly))
		}
		tp.EndRow()
	}
	return tp.Render()
}
