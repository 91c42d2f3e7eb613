package trigger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"go.uber.org/zap"
)

const resultSucceeded = "succeeded"

type opts struct {
	pipelineID string
	branch     string
	wait       bool
	timeout    time.Duration
	exporter   util.Exporter
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "trigger-pipeline <pipeline-id> [<branch>]",
		Short: "Queue a run of a pipeline",
		Long: heredoc.Doc(`
			Queue a new run of a pipeline. Without a branch the pipeline's default branch is
			built; a branch without a "refs/" prefix is taken from refs/heads/.

			With --wait the command blocks until the run completes and fails unless the run
			succeeded.
		`),
		Example: heredoc.Doc(`
			$ envmgr trigger-pipeline 42
			$ envmgr trigger-pipeline 42 release/1.4 --wait --timeout 30m
		`),
		Aliases: []string{"run"},
		Args:    util.RangeArgs(1, 2, "pipeline ID argument is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.pipelineID = args[0]
			if len(args) > 1 {
				opts.branch = args[1]
			}
			return run(ctx, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.wait, "wait", "w", false, "Wait for the run to complete")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Hour, "Maximum time to wait for the run with --wait")
	util.AddJSONFlags(cmd, &opts.exporter, []string{"id", "name", "state", "result"})

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	pipelineID, err := util.ParseID("pipeline ID", opts.pipelineID)
	if err != nil {
		return err
	}
	if opts.timeout <= 0 {
		return util.FlagErrorf("invalid --timeout value %s; must be greater than 0", opts.timeout)
	}
	ios, err := cmdCtx.IOStreams()
	if err != nil {
		return err
	}
	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}

	var r *envmgr.Run
	err = ios.RunWithProgress("Queueing run", func() (err error) {
		r, err = manager.QueuePipelineRun(cmdCtx.Context(), pipelineID, envmgr.RunOptions{Branch: opts.branch})
		return
	})
	if err != nil {
		return err
	}

	if opts.wait {
		if ios.IsStderrTTY() {
			fmt.Fprintf(ios.ErrOut, "Queued run %d (%s), waiting for completion\n", r.ID, r.Name)
		}
		err = ios.RunWithProgress(fmt.Sprintf("Waiting for run %d", r.ID), func() (err error) {
			r, err = manager.WaitForRun(cmdCtx.Context(), pipelineID, r.ID, opts.timeout)
			return
		})
		if err != nil {
			return err
		}
		zap.L().Debug("run completed", zap.Int("pipelineId", pipelineID), zap.Int("runId", r.ID), zap.String("result", r.Result))
	}

	if opts.exporter != nil {
		err = opts.exporter.Write(ios, r)
	} else {
		err = printRun(cmdCtx, ios, r)
	}
	if err != nil {
		return err
	}

	if opts.wait && !strings.EqualFold(r.Result, resultSucceeded) {
		return fmt.Errorf("run %d finished with result %q", r.ID, r.Result)
	}
	return nil
}

func printRun(cmdCtx util.CmdContext, ios *iostreams.IOStreams, r *envmgr.Run) error {
	if !ios.IsStdoutTTY() {
		_, err := fmt.Fprintf(ios.Out, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.State, r.Result)
		return err
	}
	lp, err := cmdCtx.Printer("list")
	if err != nil {
		return err
	}
	lp.AddColumns("Run", "Name", "State")
	lp.AddField(strconv.Itoa(r.ID))
	lp.AddField(r.Name)
	lp.AddField(r.State)
	if r.Result != "" {
		lp.AddColumns("Result")
		lp.AddField(r.Result)
	}
	return lp.Render()
}
