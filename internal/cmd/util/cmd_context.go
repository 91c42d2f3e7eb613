package util

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/tmeckel/azdo-envmgr/internal/config"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"github.com/tmeckel/azdo-envmgr/internal/printer"
	"github.com/tmeckel/azdo-envmgr/internal/prompter"
	"github.com/tmeckel/azdo-envmgr/internal/util"
	"go.uber.org/zap"
)

//go:generate mockgen -destination ../../mocks/cmd_context_mock.go -package mocks -mock_names CmdContext=MockCmdContext . CmdContext

// CmdContext is what every command needs from the process it runs in. Configuration and
// the remote client are resolved lazily so commands that need neither work without them.
type CmdContext interface {
	util.ContextAware
	IOStreams() (*iostreams.IOStreams, error)
	Prompter() (prompter.Prompter, error)
	Config() (config.Config, error)
	Manager() (envmgr.Manager, error)
	Printer(string) (printer.Printer, error)
	Close() error
}

// ManagerFactory opens the remote client for a resolved configuration.
type ManagerFactory func(ctx context.Context, cfg config.Config) (envmgr.Manager, error)

type cmdContext struct {
	ctx       context.Context
	ioStreams *iostreams.IOStreams
	prompter  prompter.Prompter
	loader    *config.Loader
	open      ManagerFactory

	mu      sync.Mutex
	cfg     config.Config
	cfgErr  error
	cfgDone bool
	manager envmgr.Manager
}

func NewCmdContext(ctx context.Context) CmdContext {
	iostrms := newIOStreams()
	return &cmdContext{
		ctx:       ctx,
		ioStreams: iostrms,
		prompter:  prompter.New(iostrms.In, iostrms.Out, iostrms.ErrOut),
		loader:    &config.Loader{},
		open: func(ctx context.Context, cfg config.Config) (envmgr.Manager, error) {
			return envmgr.Open(ctx, cfg)
		},
	}
}

func (c *cmdContext) Context() context.Context {
	return c.ctx
}

func (c *cmdContext) IOStreams() (*iostreams.IOStreams, error) {
	return c.ioStreams, nil
}

func (c *cmdContext) Prompter() (prompter.Prompter, error) {
	return c.prompter, nil
}

func (c *cmdContext) Config() (config.Config, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cfgDone {
		c.cfg, c.cfgErr = c.loader.Load()
		c.cfgDone = true
		if c.cfgErr == nil {
			zap.L().Debug("configuration resolved", zap.Stringer("config", c.cfg))
		}
	}
	return c.cfg, c.cfgErr
}

func (c *cmdContext) Manager() (envmgr.Manager, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.manager == nil {
		m, err := c.open(c.ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", cfg.OrganizationURL(), err)
		}
		c.manager = m
	}
	return c.manager, nil
}

func (c *cmdContext) Printer(t string) (p printer.Printer, err error) {
	switch t {
	case "table":
		p, err = newTablePrinter(c.ioStreams)
	case "list":
		p, err = printer.NewListPrinter(c.ioStreams.Out)
	case "json":
		p, err = printer.NewJSONPrinter(c.ioStreams.Out)
	default:
		return nil, printer.NewUnsupportedPrinterError(t)
	}
	return
}

// Close releases the remote client if one was opened.
func (c *cmdContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.manager == nil {
		return nil
	}
	err := c.manager.Close()
	c.manager = nil
	return err
}

func newIOStreams() *iostreams.IOStreams {
	io := iostreams.System()
	if _, promptDisabled := os.LookupEnv("AZDO_PROMPT_DISABLED"); promptDisabled {
		io.SetNeverPrompt(true)
	}
	return io
}

func newTablePrinter(ios *iostreams.IOStreams) (printer.TablePrinter, error) {
	maxWidth := iostreams.DefaultWidth
	isTTY := ios.IsStdoutTTY()
	if isTTY {
		maxWidth = ios.TerminalWidth()
	}
	pt, err := printer.NewTablePrinter(ios.Out, isTTY, maxWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to create new table printer: %w", err)
	}
	return pt, nil
}
