package azdo

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
)

// The interfaces below are the subsets of the SDK clients the environment manager calls.
// The SDK clients satisfy them directly.

//go:generate mockgen -destination ../mocks/azdo_clients_mock.go -package mocks -mock_names VariableGroupClient=MockVariableGroupClient,DefinitionClient=MockDefinitionClient,RunClient=MockRunClient,ProjectClient=MockProjectClient . VariableGroupClient,DefinitionClient,RunClient,ProjectClient

type VariableGroupClient interface {
	GetVariableGroup(ctx context.Context, args taskagent.GetVariableGroupArgs) (*taskagent.VariableGroup, error)
	AddVariableGroup(ctx context.Context, args taskagent.AddVariableGroupArgs) (*taskagent.VariableGroup, error)
	UpdateVariableGroup(ctx context.Context, args taskagent.UpdateVariableGroupArgs) (*taskagent.VariableGroup, error)
}

type DefinitionClient interface {
	GetDefinitions(ctx context.Context, args build.GetDefinitionsArgs) (*build.GetDefinitionsResponseValue, error)
}

type RunClient interface {
	RunPipeline(ctx context.Context, args pipelines.RunPipelineArgs) (*pipelines.Run, error)
	GetRun(ctx context.Context, args pipelines.GetRunArgs) (*pipelines.Run, error)
}

type ProjectClient interface {
	GetProject(ctx context.Context, args core.GetProjectArgs) (*core.TeamProject, error)
}

var (
	_ VariableGroupClient = (taskagent.Client)(nil)
	_ DefinitionClient    = (build.Client)(nil)
	_ RunClient           = (pipelines.Client)(nil)
	_ ProjectClient       = (core.Client)(nil)
)
