// Package docs renders the command reference as markdown pages and manual pages.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/root"
)

// GenMarkdownTree writes one page per visible command of the tree below cmd into dir.
// linkHandler turns a page file name into the link target used between pages.
func GenMarkdownTree(cmd *cobra.Command, dir string, linkHandler func(string) string) error {
	for _, c := range cmd.Commands() {
		_, forceGeneration := c.Annotations["markdown:generate"]
		if (c.Hidden || !c.IsAvailableCommand()) && !forceGeneration {
			continue
		}
		if err := GenMarkdownTree(c, dir, linkHandler); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(dir, pageName(cmd))) //nolint:gosec
	if err != nil {
		return err
	}
	defer f.Close()
	return genMarkdown(cmd, f, linkHandler)
}

// GenManTree writes a section 1 manual page per command into dir.
func GenManTree(cmd *cobra.Command, dir, version string) error {
	header := &doc.GenManHeader{
		Title:   "ENVMGR",
		Section: "1",
		Source:  strings.TrimSpace("envmgr " + version),
		Manual:  "Azure DevOps environment manager",
	}
	return doc.GenManTree(cmd, header, dir)
}

func genMarkdown(cmd *cobra.Command, w io.Writer, linkHandler func(string) string) error {
	fmt.Fprintf(w, "## `%s`\n\n", cmd.CommandPath())

	if cmd.Long != "" {
		fmt.Fprintf(w, "%s\n", strings.TrimRight(cmd.Long, "\n"))
	} else {
		fmt.Fprintf(w, "%s\n", cmd.Short)
	}
	if cmd.Runnable() {
		fmt.Fprintf(w, "\n```\n%s\n```\n", cmd.UseLine())
	}

	for _, g := range root.GroupedCommands(cmd) {
		fmt.Fprintf(w, "\n### %s\n\n", g.Title)
		for _, sub := range g.Commands {
			fmt.Fprintf(w, "* [%s](%s): %s\n", sub.CommandPath(), linkHandler(pageName(sub)), sub.Short)
		}
	}

	if usages := cmd.NonInheritedFlags().FlagUsages(); usages != "" {
		fmt.Fprintf(w, "\n### Options\n\n```\n%s```\n", usages)
	}

	if len(cmd.Aliases) > 0 {
		fmt.Fprint(w, "\n### Aliases\n\n")
		for _, a := range root.AliasPaths(cmd) {
			fmt.Fprintf(w, "- `%s`\n", a)
		}
	}

	if raw, ok := cmd.Annotations["help:json-fields"]; ok {
		fields := strings.Split(raw, ",")
		slices.Sort(fields)
		fmt.Fprint(w, "\n### JSON fields\n\n")
		for _, f := range fields {
			fmt.Fprintf(w, "`%s` ", f)
		}
		fmt.Fprint(w, "\n")
	}

	if cmd.Example != "" {
		fmt.Fprintf(w, "\n### Examples\n\n```bash\n%s```\n", cmd.Example)
	}

	if cmd.HasParent() {
		p := cmd.Parent()
		fmt.Fprintf(w, "\n### See also\n\n* [%s](%s)\n", p.CommandPath(), linkHandler(pageName(p)))
	}
	return nil
}

func pageName(c *cobra.Command) string {
	if basename, found := c.Annotations["markdown:basename"]; found {
		return basename + ".md"
	}
	return strings.ReplaceAll(c.CommandPath(), " ", "_") + ".md"
}
