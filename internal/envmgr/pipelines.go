package envmgr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/samber/lo"
	"github.com/tmeckel/azdo-envmgr/internal/azdo"
	"github.com/tmeckel/azdo-envmgr/internal/types"
	"go.uber.org/zap"
)

// ListPipelines returns the build definitions of the project in the order the service
// returns them. On failure the slice is empty.
func (c *Client) ListPipelines(ctx context.Context) ([]PipelineDefinition, error) {
	const op = "ListPipelines"
	if err := c.checkOpen(); err != nil {
		return []PipelineDefinition{}, err
	}

	defs, err := azdo.ListDefinitions(ctx, c.clients.Definitions, build.GetDefinitionsArgs{
		Project: c.project(),
	})
	if err != nil {
		return []PipelineDefinition{}, c.remoteFailure(op, err)
	}

	return lo.Map(defs, func(d build.BuildDefinitionReference, _ int) PipelineDefinition {
		return PipelineDefinition{
			ID:   types.GetValue(d.Id, 0),
			Name: types.GetValue(d.Name, ""),
			Path: types.GetValue(d.Path, ""),
			Kind: string(types.GetValue(d.Type, build.DefinitionType(""))),
		}
	}), nil
}

// QueuePipelineRun queues a run of the pipeline. The request always carries the resources
// and templateParameters objects, even when empty, because the service rejects a run
// request without them.
func (c *Client) QueuePipelineRun(ctx context.Context, pipelineID int, opts RunOptions) (*Run, error) {
	const op = "QueuePipelineRun"
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	if pipelineID <= 0 {
		return nil, fmt.Errorf("%w: pipeline id must be positive, got %d", ErrInvalidArgument, pipelineID)
	}

	params := &pipelines.RunPipelineParameters{
		Resources:          &pipelines.RunResourcesParameters{},
		TemplateParameters: &map[string]string{},
	}
	if ref := branchRef(opts.Branch); ref != "" {
		params.Resources.Repositories = &map[string]pipelines.RepositoryResourceParameters{
			"self": {RefName: types.ToPtr(ref)},
		}
	}

	zap.L().Debug("queueing pipeline run", zap.Int("pipelineID", pipelineID), zap.String("branch", opts.Branch))
	run, err := c.clients.Runs.RunPipeline(ctx, pipelines.RunPipelineArgs{
		RunParameters: params,
		Project:       c.project(),
		PipelineId:    types.ToPtr(pipelineID),
	})
	if err != nil {
		return nil, c.remoteFailure(op, err, zap.Int("pipelineID", pipelineID))
	}
	if run == nil || run.Id == nil {
		return nil, c.remoteFailure(op, errors.New("service returned no run"), zap.Int("pipelineID", pipelineID))
	}
	return toRun(run), nil
}

// WaitForRun polls a run until it is completed or timeout elapses.
func (c *Client) WaitForRun(ctx context.Context, pipelineID, runID int, timeout time.Duration) (*Run, error) {
	const op = "WaitForRun"
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	run, err := azdo.PollRunResult(ctx, c.clients.Runs, c.cfg.Project(), pipelineID, runID, timeout)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("run %d of pipeline %d did not complete: %w", runID, pipelineID, err)
		}
		return nil, c.remoteFailure(op, err, zap.Int("pipelineID", pipelineID), zap.Int("runID", runID))
	}
	return toRun(run), nil
}

func branchRef(branch string) string {
	branch = strings.TrimSpace(branch)
	if branch == "" || strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return "refs/heads/" + branch
}

func toRun(r *pipelines.Run) *Run {
	return &Run{
		ID:     types.GetValue(r.Id, 0),
		Name:   types.GetValue(r.Name, ""),
		State:  string(types.GetValue(r.State, pipelines.RunState(""))),
		Result: string(types.GetValue(r.Result, pipelines.RunResult(""))),
	}
}
