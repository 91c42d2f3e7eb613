package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/build"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/root"
	cmdutil "github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/config"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/util"
	"go.uber.org/zap"
)

type exitCode int

const (
	exitOK     exitCode = 0
	exitError  exitCode = 1
	exitCancel exitCode = 2
	exitConfig exitCode = 4
)

func init() {
	var logger *zap.Logger
	var err error
	if debug, _ := util.IsDebugEnabled(); debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	zap.ReplaceGlobals(zap.Must(logger, err))
}

func main() {
	code := mainRun()
	_ = zap.L().Sync()
	os.Exit(int(code))
}

func mainRun() exitCode {
	zap.L().Sugar().Debugf("Version %s, Date %+v", build.Version, build.Date)

	cmdCtx := cmdutil.NewCmdContext(context.Background())
	defer func() {
		if err := cmdCtx.Close(); err != nil {
			zap.L().Warn("failed to close Azure DevOps connection", zap.Error(err))
		}
	}()

	iostrms, err := cmdCtx.IOStreams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get IOStreams: %s", err)
		return exitError
	}

	rootCmd, err := root.NewCmdRoot(cmdCtx, build.Version, build.Date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create root command: %s", err)
		return exitError
	}

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		if root.HasFailed() {
			return exitError
		}
		return exitOK
	}

	return exitCodeFor(iostrms.ErrOut, iostrms.IsStdoutTTY(), err, cmd)
}

// exitCodeFor reports err on stderr and maps it to the process exit status.
func exitCodeFor(stderr io.Writer, stdoutTTY bool, err error, cmd *cobra.Command) exitCode {
	var (
		noResults     cmdutil.ErrNoResults
		missingConfig *config.MissingConfigError
	)
	switch {
	case errors.Is(err, cmdutil.ErrSilent):
		return exitError
	case cmdutil.IsUserCancellation(err):
		if errors.Is(err, terminal.InterruptErr) {
			// keep the next shell prompt on its own line
			fmt.Fprintln(stderr)
		}
		return exitCancel
	case errors.As(err, &missingConfig):
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, "Set AZDO_ORG_URL, AZDO_TOKEN and AZDO_PROJECT or run `envmgr help environment`.")
		return exitConfig
	case errors.As(err, &noResults):
		if stdoutTTY {
			fmt.Fprintln(stderr, noResults.Error())
		}
		return exitOK
	}
	printError(stderr, err, cmd)
	return exitError
}

func printError(out io.Writer, err error, cmd *cobra.Command) {
	var dnsError *net.DNSError
	if errors.As(err, &dnsError) {
		debug, _ := util.IsDebugEnabled()
		fmt.Fprintf(out, "error connecting to %s\n", dnsError.Name)
		if debug {
			fmt.Fprintln(out, dnsError)
		}
		fmt.Fprintln(out, "check your internet connection or https://status.dev.azure.com")
		return
	}

	if envmgr.IsRemote(err) {
		fmt.Fprintf(out, "Azure DevOps request failed: %s\n", err)
		return
	}
	fmt.Fprintln(out, err)

	var flagError *cmdutil.ErrFlag
	if errors.As(err, &flagError) || strings.HasPrefix(err.Error(), "unknown command ") {
		if !strings.HasSuffix(err.Error(), "\n") {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, cmd.UsageString())
	}
}
