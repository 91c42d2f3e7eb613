package root

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
)

// width of the "name:" column in command and topic listings
const nameColumn = 19

var hasFailed bool

// HasFailed reports whether help output ended in an error the process must exit 1 for.
func HasFailed() bool {
	return hasFailed
}

type helpSection struct {
	title string
	body  string
}

func rootUsageFunc(w io.Writer, cmd *cobra.Command) error {
	fmt.Fprintf(w, "Usage:  %s", cmd.UseLine())

	subs := availableCommands(cmd, func(*cobra.Command) bool { return true })
	if len(subs) > 0 {
		fmt.Fprint(w, "\n\nAvailable commands:\n\n")
		for _, c := range subs {
			fmt.Fprintf(w, "  %s\n", c.Name())
		}
		return nil
	}
	if usages := cmd.LocalFlags().FlagUsages(); usages != "" {
		fmt.Fprint(w, "\n\nFlags:\n")
		fmt.Fprint(w, indent.String(dedent(usages), 2))
	}
	return nil
}

func rootFlagErrorFunc(_ *cobra.Command, err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}
	return util.FlagErrorWrap(err)
}

// suggest prints the candidates for a mistyped command name. cobra only does this for
// the root command.
func suggest(w io.Writer, cmd *cobra.Command, arg string) {
	fmt.Fprintf(w, "unknown command %q for %q\n", arg, cmd.CommandPath())

	candidates := []string{"--help"}
	if arg != "help" {
		if cmd.SuggestionsMinimumDistance <= 0 {
			cmd.SuggestionsMinimumDistance = 2
		}
		candidates = cmd.SuggestionsFor(arg)
	}
	if len(candidates) > 0 {
		fmt.Fprint(w, "\nDid you mean this?\n")
		for _, c := range candidates {
			fmt.Fprintf(w, "\t%s\n", c)
		}
	}
	fmt.Fprintln(w)
	_ = rootUsageFunc(w, cmd)
}

func rootHelpFunc(ios *iostreams.IOStreams, cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()

	if !cmd.HasParent() {
		showVersion, err := flags.GetBool("version")
		if err != nil {
			fmt.Fprintln(ios.ErrOut, err)
			hasFailed = true
			return
		}
		if showVersion {
			fmt.Fprint(ios.Out, cmd.Annotations["versionInfo"])
			return
		}
	}

	if help, _ := flags.GetBool("help"); !help && !cmd.Runnable() && flags.NArg() > 0 {
		suggest(ios.ErrOut, cmd, flags.Arg(0))
		hasFailed = true
		return
	}

	title := lipgloss.NewRenderer(ios.Out).NewStyle().Bold(ios.ColorEnabled())
	for _, s := range helpSections(cmd) {
		if s.title == "" {
			fmt.Fprintln(ios.Out, s.body)
		} else {
			fmt.Fprintln(ios.Out, title.Render(s.title))
			fmt.Fprintln(ios.Out, indent.String(strings.Trim(s.body, "\r\n"), 2))
		}
		fmt.Fprintln(ios.Out)
	}
}

func helpSections(cmd *cobra.Command) []helpSection {
	var sections []helpSection

	description := cmd.Long
	if description == "" {
		description = cmd.Short
	}
	if description != "" && cmd.LocalFlags().Lookup("jq") != nil {
		description = strings.TrimRight(description, "\n") +
			"\n\nUse --json with a comma separated list of fields, and --jq to filter the result."
	}
	if description != "" {
		sections = append(sections, helpSection{body: description})
	}
	sections = append(sections, helpSection{"USAGE", cmd.UseLine()})

	if aliases := AliasPaths(cmd); len(aliases) > 0 {
		sections = append(sections, helpSection{"ALIASES", strings.Join(aliases, ", ")})
	}

	for _, g := range GroupedCommands(cmd) {
		lines := make([]string, 0, len(g.Commands))
		for _, c := range g.Commands {
			lines = append(lines, listingLine(c.Name(), c.Short))
		}
		sections = append(sections, helpSection{strings.ToUpper(g.Title), strings.Join(lines, "\n")})
	}

	if !cmd.HasParent() {
		topics := make([]string, 0, len(HelpTopics))
		for _, t := range HelpTopics {
			topics = append(topics, listingLine(t.name, t.short))
		}
		slices.Sort(topics)
		sections = append(sections, helpSection{"HELP TOPICS", strings.Join(topics, "\n")})
	}

	if usages := cmd.LocalFlags().FlagUsages(); usages != "" {
		sections = append(sections, helpSection{"FLAGS", dedent(usages)})
	}
	if usages := cmd.InheritedFlags().FlagUsages(); usages != "" {
		sections = append(sections, helpSection{"INHERITED FLAGS", dedent(usages)})
	}
	if raw, ok := cmd.Annotations["help:json-fields"]; ok {
		fields := strings.Join(strings.Split(raw, ","), ", ")
		sections = append(sections, helpSection{"JSON FIELDS", wordwrap.String(fields, 78)})
	}
	if args, ok := cmd.Annotations["help:arguments"]; ok {
		sections = append(sections, helpSection{"ARGUMENTS", args})
	}
	if cmd.Example != "" {
		sections = append(sections, helpSection{"EXAMPLES", cmd.Example})
	}
	return append(sections, helpSection{"LEARN MORE", "Use 'envmgr <command> --help' for more information about a command."})
}

func listingLine(name, short string) string {
	return fmt.Sprintf("%-*s%s", nameColumn, name+":", short)
}

type CommandGroup struct {
	Title    string
	Commands []*cobra.Command
}

// GroupedCommands lists the available subcommands of cmd by help group. Commands without
// a group come last.
func GroupedCommands(cmd *cobra.Command) []CommandGroup {
	var groups []CommandGroup
	for _, g := range cmd.Groups() {
		id := g.ID
		if cmds := availableCommands(cmd, func(c *cobra.Command) bool { return c.GroupID == id }); len(cmds) > 0 {
			groups = append(groups, CommandGroup{Title: g.Title, Commands: cmds})
		}
	}

	ungrouped := availableCommands(cmd, func(c *cobra.Command) bool { return c.GroupID == "" })
	if len(ungrouped) > 0 {
		title := "Additional commands"
		if len(cmd.Groups()) == 0 {
			title = "Available commands"
		}
		groups = append(groups, CommandGroup{Title: title, Commands: ungrouped})
	}
	return groups
}

func availableCommands(cmd *cobra.Command, keep func(*cobra.Command) bool) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && keep(c) {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// AliasPaths returns the full invocation of every alias of cmd, e.g. "envmgr libraries".
func AliasPaths(cmd *cobra.Command) []string {
	prefix := ""
	if cmd.HasParent() {
		prefix = cmd.Parent().CommandPath() + " "
	}
	paths := make([]string, 0, len(cmd.Aliases))
	for _, a := range cmd.Aliases {
		paths = append(paths, prefix+a)
	}
	return paths
}

// dedent removes the indentation all non-empty lines of s share.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	common := -1
	for _, l := range lines {
		if l == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " "))
		if common == -1 || n < common {
			common = n
		}
	}
	if common <= 0 {
		return s
	}
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, strings.Repeat(" ", common))
	}
	return strings.Join(lines, "\n")
}
