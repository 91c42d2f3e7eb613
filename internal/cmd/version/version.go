package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
)

const repositoryURL = "https://github.com/tmeckel/azdo-envmgr"

var rxSemver = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[\w.]+)?$`)

func NewCmd(ctx util.CmdContext, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ios, err := ctx.IOStreams()
			if err != nil {
				return err
			}
			fmt.Fprint(ios.Out, Format(version, buildDate))
			return nil
		},
	}

	return cmd
}

func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")

	var dateStr string
	if buildDate != "" {
		dateStr = fmt.Sprintf(" (%s)", buildDate)
	}

	return fmt.Sprintf("envmgr version %s%s\n%s\n", version, dateStr, changelogURL(version))
}

func changelogURL(version string) string {
	if !rxSemver.MatchString(version) {
		return repositoryURL + "/releases/latest"
	}
	return fmt.Sprintf("%s/releases/tag/v%s", repositoryURL, strings.TrimPrefix(version, "v"))
}
