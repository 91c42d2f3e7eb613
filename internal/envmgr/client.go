// Package envmgr manages the environments of an Azure DevOps project: build pipelines,
// variable groups (libraries) and the variables inside them. Every operation is a short
// chain of blocking calls to the Azure DevOps REST API; nothing is cached locally.
package envmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/tmeckel/azdo-envmgr/internal/azdo"
	"github.com/tmeckel/azdo-envmgr/internal/azdo/extensions"
	"github.com/tmeckel/azdo-envmgr/internal/config"
	"go.uber.org/zap"
)

//go:generate mockgen -destination ../mocks/envmgr_mock.go -package mocks -mock_names Manager=MockManager . Manager

// Manager is the set of operations offered to the web UI and the CLI.
type Manager interface {
	ListPipelines(ctx context.Context) ([]PipelineDefinition, error)
	ListVariableGroups(ctx context.Context) ([]VariableGroup, error)
	ListAllVariables(ctx context.Context) ([]VariableEntry, error)
	GetVariableGroup(ctx context.Context, groupID int) (*VariableGroup, error)
	GetVariable(ctx context.Context, groupID int, name string) (string, error)
	UpdateVariable(ctx context.Context, groupID int, name, value string) error
	AddVariable(ctx context.Context, groupID int, name, value string) error
	CreateGroupFromTemplate(ctx context.Context, templateGroupID int, newGroupName string, overrides map[string]string) (int, error)
	QueuePipelineRun(ctx context.Context, pipelineID int, opts RunOptions) (*Run, error)
	WaitForRun(ctx context.Context, pipelineID, runID int, timeout time.Duration) (*Run, error)
	Close() error
}

// Clients bundles the Azure DevOps clients a Client calls.
type Clients struct {
	VariableGroups azdo.VariableGroupClient
	GroupLister    extensions.Client
	Definitions    azdo.DefinitionClient
	Runs           azdo.RunClient
	Projects       azdo.ProjectClient
	// Closer releases the connection the clients share. Optional.
	Closer io.Closer
}

// Client implements Manager against one project of one organization.
//
// UpdateVariable and AddVariable replace the whole variable map of a group. Calls for the
// same group are serialized inside one Client; writers in other processes are not
// coordinated and the last write wins.
type Client struct {
	cfg     config.Config
	clients Clients
	locks   groupLocks

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

var _ Manager = (*Client)(nil)

func New(cfg config.Config, clients Clients) *Client {
	return &Client{
		cfg:     cfg,
		clients: clients,
	}
}

// Open connects to the organization of cfg and returns a Client owning the connection.
// The caller must Close it.
func Open(ctx context.Context, cfg config.Config) (*Client, error) {
	if cfg.IsZero() {
		return nil, fmt.Errorf("%w: configuration is not initialized", ErrInvalidArgument)
	}
	factory, err := azdo.NewClientFactory(cfg, azdo.NewPatAuthenticator(cfg.Token()))
	if err != nil {
		return nil, err
	}

	clients, err := newClients(ctx, factory)
	if err != nil {
		_ = factory.Close()
		return nil, err
	}
	zap.L().Debug("opened Azure DevOps client", zap.Stringer("config", cfg))
	return New(cfg, clients), nil
}

func newClients(ctx context.Context, factory azdo.ClientFactory) (Clients, error) {
	taskClient, err := factory.TaskAgent(ctx)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to create task agent client: %w", err)
	}
	buildClient, err := factory.Build(ctx)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to create build client: %w", err)
	}
	pipelinesClient, err := factory.Pipelines(ctx)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to create pipelines client: %w", err)
	}
	coreClient, err := factory.Core(ctx)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to create core client: %w", err)
	}
	extClient, err := factory.Extensions(ctx)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to create extensions client: %w", err)
	}
	return Clients{
		VariableGroups: taskClient,
		GroupLister:    extClient,
		Definitions:    buildClient,
		Runs:           pipelinesClient,
		Projects:       coreClient,
		Closer:         factory,
	}, nil
}

// Close releases the connection. It is safe to call more than once; every operation
// started afterwards fails with ErrClosed.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if c.clients.Closer != nil {
			c.closeErr = c.clients.Closer.Close()
		}
	})
	return c.closeErr
}

func (c *Client) checkOpen() error {
	if c.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (c *Client) project() *string {
	p := c.cfg.Project()
	return &p
}

// remoteFailure logs a failed call and wraps it into a *RemoteError.
func (c *Client) remoteFailure(op string, err error, fields ...zap.Field) error {
	fields = append([]zap.Field{
		zap.String("op", op),
		zap.String("project", c.cfg.Project()),
		zap.Error(err),
	}, fields...)
	zap.L().Error("Azure DevOps request failed", fields...)
	return &RemoteError{Op: op, Err: err}
}

func isNotFound(err error) bool {
	var wrapped *azuredevops.WrappedError
	if !errors.As(err, &wrapped) {
		return false
	}
	for wrapped != nil {
		if wrapped.StatusCode != nil && *wrapped.StatusCode == http.StatusNotFound {
			return true
		}
		wrapped = wrapped.InnerError
	}
	return false
}

type groupLocks struct {
	mu    sync.Mutex
	locks map[int]*groupLock
}

type groupLock struct {
	sync.Mutex
	refs int
}

// lock acquires the write lock of a group and returns its release function.
// An entry lives only while a caller holds or waits for it.
func (l *groupLocks) lock(groupID int) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = map[int]*groupLock{}
	}
	g, ok := l.locks[groupID]
	if !ok {
		g = &groupLock{}
		l.locks[groupID] = g
	}
	g.refs++
	l.mu.Unlock()

	g.Lock()
	return func() {
		g.Unlock()
		l.mu.Lock()
		g.refs--
		if g.refs == 0 {
			delete(l.locks, groupID)
		}
		l.mu.Unlock()
	}
}

func (l *groupLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
