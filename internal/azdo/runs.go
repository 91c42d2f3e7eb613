package azdo

import (
	"context"
	"fmt"
	"time"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/tmeckel/azdo-envmgr/internal/types"
	"github.com/tmeckel/azdo-envmgr/internal/util"
	"go.uber.org/zap"
)

const (
	defaultRunPollDelay = 5 * time.Second
	DefaultRunTimeout   = time.Hour
)

// PollRunResult polls a pipeline run until its state is completed or the timeout expires.
// Errors returned by the service end the polling immediately. A timeout <= 0 selects
// DefaultRunTimeout.
func PollRunResult(ctx context.Context, client RunClient, project string, pipelineID, runID int, timeout time.Duration) (*pipelines.Run, error) {
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}
	return pollRunResult(ctx, client, project, pipelineID, runID, util.PollOptions{
		Delay:   defaultRunPollDelay,
		Timeout: timeout,
	})
}

func pollRunResult(ctx context.Context, client RunClient, project string, pipelineID, runID int, opts util.PollOptions) (*pipelines.Run, error) {
	var run *pipelines.Run
	err := util.Poll(ctx, func(ctx context.Context) error {
		r, err := client.GetRun(ctx, pipelines.GetRunArgs{
			Project:    types.ToPtr(project),
			PipelineId: types.ToPtr(pipelineID),
			RunId:      types.ToPtr(runID),
		})
		if err != nil {
			return util.Permanent(err)
		}
		if r == nil {
			return util.Permanent(fmt.Errorf("run %d of pipeline %d not found", runID, pipelineID))
		}
		run = r
		state := types.GetValue(r.State, pipelines.RunState(""))
		zap.L().Debug("polled pipeline run", zap.Int("pipelineId", pipelineID), zap.Int("runId", runID), zap.String("state", string(state)))
		if state != pipelines.RunStateValues.Completed {
			return fmt.Errorf("run %d of pipeline %d is %s", runID, pipelineID, state)
		}
		return nil
	}, opts)
	return run, err
}
