package clone

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"go.uber.org/zap"
)

type opts struct {
	templateID string
	name       string
	set        []string
	exporter   util.Exporter
}

type clonedJSON struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TemplateID int    `json:"templateId"`
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "clone-library <template-id> <name>",
		Short: "Create a variable group from a template",
		Long: heredoc.Doc(`
			Create a new variable group by copying every variable of a template group.

			Values given with --set replace the template value of the variable with the same
			name. An empty override keeps the template value. Keys that do not exist in the
			template are ignored. Secret variables keep their secret flag; secret values
			are only copied when they are overridden.
		`),
		Example: heredoc.Doc(`
			# Create "qa-7" from template library 12 with a new environment name
			$ envmgr clone-library 12 qa-7 --set environment=qa-7 --set app1Port=8107
		`),
		Args: util.ExactArgs(2, "template library ID and name of the new library are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.templateID = args[0]
			opts.name = args[1]
			return run(ctx, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Override a template variable (`key=value`); may be repeated")
	util.AddJSONFlags(cmd, &opts.exporter, []string{"id", "name", "templateId"})

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	templateID, err := util.ParseID("template library ID", opts.templateID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.name) == "" {
		return util.FlagErrorf("name of the new library must not be empty")
	}
	overrides, err := parseOverrides(opts.set)
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

	var newID int
	err = ios.RunWithProgress("Creating library", func() (err error) {
		newID, err = manager.CreateGroupFromTemplate(cmdCtx.Context(), templateID, opts.name, overrides)
		return
	})
	if err != nil {
		return err
	}
	zap.L().Debug("library created", zap.Int("templateId", templateID), zap.Int("id", newID))

	if opts.exporter != nil {
		return opts.exporter.Write(ios, clonedJSON{ID: newID, Name: opts.name, TemplateID: templateID})
	}
	if ios.IsStdoutTTY() {
		fmt.Fprintf(ios.Out, "Created library %q with ID %d\n", opts.name, newID)
		return nil
	}
	fmt.Fprintln(ios.Out, newID)
	return nil
}

func parseOverrides(pairs []string) (map[string]string, error) {
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, util.FlagErrorf("invalid --set value %q; expected key=value", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}
