package azdo

import (
	"context"
	"errors"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/tmeckel/azdo-envmgr/internal/azdo/extensions"
)

// ErrConnectionClosed is returned by a ClientFactory after Close was called.
var ErrConnectionClosed = errors.New("azure devops connection closed")

// ClientFactory provides SDK clients bound to the single organization connection of the
// process. It owns the connection and releases it on Close.
type ClientFactory interface {
	TaskAgent(ctx context.Context) (taskagent.Client, error)
	Build(ctx context.Context) (build.Client, error)
	Pipelines(ctx context.Context) (pipelines.Client, error)
	Core(ctx context.Context) (core.Client, error)
	Extensions(ctx context.Context) (extensions.Client, error)
	Organization() string
	Close() error
}
