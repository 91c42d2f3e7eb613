package azdo

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/tmeckel/azdo-envmgr/internal/azdo/extensions"
	"github.com/tmeckel/azdo-envmgr/internal/config"
	"go.uber.org/zap"
)

const userAgent = "azdo-envmgr"

type clientFactory struct {
	conn         *azuredevops.Connection
	organization string
	closed       atomic.Bool
	closeOnce    sync.Once
}

var _ ClientFactory = (*clientFactory)(nil)

func NewClientFactory(cfg config.Config, auth Authenticator) (ClientFactory, error) {
	authHdr, err := auth.GetAuthorizationHeader()
	if err != nil {
		return nil, err
	}
	return &clientFactory{
		conn: &azuredevops.Connection{
			AuthorizationString:     authHdr,
			BaseUrl:                 strings.TrimRight(cfg.OrganizationURL(), "/"),
			SuppressFedAuthRedirect: true,
			UserAgent:               userAgent,
		},
		organization: cfg.Organization(),
	}, nil
}

func (c *clientFactory) connection() (*azuredevops.Connection, error) {
	if c.closed.Load() {
		return nil, ErrConnectionClosed
	}
	return c.conn, nil
}

func (c *clientFactory) TaskAgent(ctx context.Context) (taskagent.Client, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}
	return taskagent.NewClient(ctx, conn)
}

func (c *clientFactory) Build(ctx context.Context) (build.Client, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}
	return build.NewClient(ctx, conn)
}

func (c *clientFactory) Pipelines(ctx context.Context) (pipelines.Client, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}
	return pipelines.NewClient(ctx, conn), nil
}

func (c *clientFactory) Core(ctx context.Context) (core.Client, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}
	return core.NewClient(ctx, conn)
}

func (c *clientFactory) Extensions(ctx context.Context) (extensions.Client, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}
	return extensions.NewClient(ctx, conn), nil
}

func (c *clientFactory) Organization() string {
	return c.organization
}

// Close marks the factory closed and drops idle keep-alive connections. The SDK
// clients send through http.DefaultTransport, which holds the pooled connections.
func (c *clientFactory) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if t, ok := http.DefaultTransport.(interface{ CloseIdleConnections() }); ok {
			t.CloseIdleConnections()
		}
		zap.L().Debug("closed Azure DevOps connection", zap.String("organization", c.organization))
	})
	return nil
}
