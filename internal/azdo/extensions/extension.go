// Package extensions calls REST endpoints whose SDK wrappers lose data the environment
// manager needs.
package extensions

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
)

//go:generate mockgen -destination ../../mocks/extensions_mock.go -package mocks -mock_names Client=MockAzDOExtension . Client

type Client interface {
	// GetVariableGroups returns one page of the variable groups of a project and the
	// token of the next page.
	GetVariableGroups(ctx context.Context, args taskagent.GetVariableGroupsArgs) (*VariableGroupsResponse, error)
}

type extensionClient struct {
	conn *azuredevops.Connection
}

// NewClient sends requests over conn, reusing its authorization and HTTP client.
func NewClient(_ context.Context, conn *azuredevops.Connection) Client {
	return &extensionClient{conn: conn}
}
