// Command gen-docs renders the envmgr command reference as markdown pages or man pages.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/tmeckel/azdo-envmgr/internal/build"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/root"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/docs"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet(filepath.Base(args[0]), pflag.ContinueOnError)
	var (
		dir      = flags.String("doc-path", "", "Directory the generated files are written to")
		website  = flags.Bool("website", false, "Generate markdown pages")
		manPages = flags.Bool("man-page", false, "Generate manual pages")
	)
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *dir == "" {
		return errors.New("--doc-path not set")
	}
	zap.L().Debug("generating docs", zap.String("version", build.Version), zap.String("dir", *dir))

	// the tree is only walked; configuration and the remote client stay untouched
	rootCmd, err := root.NewCmdRoot(util.NewCmdContext(context.Background()), build.Version, build.Date)
	if err != nil {
		return err
	}
	rootCmd.InitDefaultHelpCmd()

	if err := os.MkdirAll(*dir, 0o755); err != nil { //nolint:gosec
		return err
	}
	if *website {
		if err := docs.GenMarkdownTree(rootCmd, *dir, func(name string) string { return "./" + name }); err != nil {
			return err
		}
	}
	if *manPages {
		return docs.GenManTree(rootCmd, *dir, build.Version)
	}
	return nil
}
