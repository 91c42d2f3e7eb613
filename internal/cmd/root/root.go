package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	libraryclone "github.com/tmeckel/azdo-envmgr/internal/cmd/library/clone"
	librarylist "github.com/tmeckel/azdo-envmgr/internal/cmd/library/list"
	pipelinelist "github.com/tmeckel/azdo-envmgr/internal/cmd/pipeline/list"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/pipeline/trigger"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/serve"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/token"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	variableadd "github.com/tmeckel/azdo-envmgr/internal/cmd/variable/add"
	variableget "github.com/tmeckel/azdo-envmgr/internal/cmd/variable/get"
	variablelist "github.com/tmeckel/azdo-envmgr/internal/cmd/variable/list"
	variableupdate "github.com/tmeckel/azdo-envmgr/internal/cmd/variable/update"
	versionCmd "github.com/tmeckel/azdo-envmgr/internal/cmd/version"
)

const (
	groupLibraries = "libraries"
	groupVariables = "variables"
	groupPipelines = "pipelines"
)

func NewCmdRoot(ctx util.CmdContext, version, buildDate string) (*cobra.Command, error) {
	iostrms, err := ctx.IOStreams()
	if err != nil {
		return nil, fmt.Errorf("failed to get IOStreams: %w", err)
	}

	cmd := &cobra.Command{
		Use:   "envmgr <command> [flags]",
		Short: "Azure DevOps environment manager",
		Long: heredoc.Doc(`
			Manage the environments of an Azure DevOps project: list and run build pipelines,
			inspect and edit variable groups, and create new variable groups from a template.
		`),
		Example: heredoc.Doc(`
			$ envmgr list-libraries
			$ envmgr update-variable 12 environment qa-7
			$ envmgr serve
		`),
		Annotations: map[string]string{
			"versionInfo": versionCmd.Format(version, buildDate),
		},
	}

	cmd.PersistentFlags().Bool("help", false, "Show help for command")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Flags().Bool("version", false, "Show envmgr version")

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		rootHelpFunc(iostrms, c, args)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return rootUsageFunc(iostrms.ErrOut, c)
	})

	cmd.SetFlagErrorFunc(rootFlagErrorFunc)

	cmd.AddGroup(
		&cobra.Group{ID: groupLibraries, Title: "Libraries"},
		&cobra.Group{ID: groupVariables, Title: "Variables"},
		&cobra.Group{ID: groupPipelines, Title: "Pipelines"},
	)

	addToGroup(cmd, groupLibraries,
		librarylist.NewCmd(ctx),
		libraryclone.NewCmd(ctx),
	)
	addToGroup(cmd, groupVariables,
		variablelist.NewCmd(ctx),
		variableget.NewCmd(ctx),
		variableupdate.NewCmd(ctx),
		variableadd.NewCmd(ctx),
	)
	addToGroup(cmd, groupPipelines,
		pipelinelist.NewCmd(ctx),
		trigger.NewCmd(ctx),
	)
	cmd.AddCommand(serve.NewCmd(ctx))
	cmd.AddCommand(token.NewCmd(ctx))
	cmd.AddCommand(versionCmd.NewCmd(ctx, version, buildDate))

	for _, ht := range HelpTopics {
		cmd.AddCommand(NewCmdHelpTopic(iostrms, ht))
	}

	return cmd, nil
}

func addToGroup(root *cobra.Command, groupID string, cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.GroupID = groupID
		root.AddCommand(c)
	}
}
