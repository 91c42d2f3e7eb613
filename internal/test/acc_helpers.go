// Package test runs acceptance tests against a live Azure DevOps project. The tests
// are skipped unless AZDO_ACC_TEST is set.
package test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/config"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"github.com/tmeckel/azdo-envmgr/internal/printer"
	"github.com/tmeckel/azdo-envmgr/internal/prompter"
)

const (
	accToggleEnv      = "AZDO_ACC_TEST"
	accOrgURLEnv      = "AZDO_ACC_ORG_URL"
	accPATEnv         = "AZDO_ACC_PAT"
	accProjectEnv     = "AZDO_ACC_PROJECT"
	accLibraryEnv     = "AZDO_ACC_LIBRARY"
	accTimeoutEnv     = "AZDO_ACC_TIMEOUT"
	accDefaultTimeout = 60 * time.Second
)

var errPromptDisabled = errors.New("interactive prompts are disabled in acceptance tests")

type TestCase struct {
	PreCheck func() error
	Steps    []Step
}

// Step hooks run in order; PostRun always runs once PreRun succeeded.
type Step struct {
	PreRun  func(TestContext) error
	Run     func(TestContext) error
	PostRun func(TestContext) error
	Verify  func(TestContext) error
}

type TestContext interface {
	util.CmdContext
	Project() string
	// LibraryID is the scratch variable group from AZDO_ACC_LIBRARY, 0 when unset.
	LibraryID() int
	SetValue(key, value any)
	Value(key any) (any, bool)
}

type testContext struct {
	util.CmdContext
	project   string
	libraryID int
	data      sync.Map
}

var _ TestContext = (*testContext)(nil)

func (tc *testContext) Project() string { return tc.project }

func (tc *testContext) LibraryID() int { return tc.libraryID }

func (tc *testContext) SetValue(key, value any) {
	if key == nil {
		return
	}
	tc.data.Store(key, value)
}

func (tc *testContext) Value(key any) (any, bool) {
	if key == nil {
		return nil, false
	}
	return tc.data.Load(key)
}

type acceptanceCmdContext struct {
	baseCtx context.Context
	ios     *iostreams.IOStreams
	cfg     config.Config
	manager envmgr.Manager
}

func (a *acceptanceCmdContext) Context() context.Context                  { return a.baseCtx }
func (a *acceptanceCmdContext) IOStreams() (*iostreams.IOStreams, error) { return a.ios, nil }
func (a *acceptanceCmdContext) Prompter() (prompter.Prompter, error)     { return stubPrompter{}, nil }
func (a *acceptanceCmdContext) Config() (config.Config, error)           { return a.cfg, nil }
func (a *acceptanceCmdContext) Manager() (envmgr.Manager, error)         { return a.manager, nil }
func (a *acceptanceCmdContext) Close() error                             { return a.manager.Close() }

func (a *acceptanceCmdContext) Printer(t string) (printer.Printer, error) {
	switch t {
	case "table":
		return printer.NewTablePrinter(a.ios.Out, false, iostreams.DefaultWidth)
	case "list":
		return printer.NewListPrinter(a.ios.Out)
	case "json":
		return printer.NewJSONPrinter(a.ios.Out)
	}
	return nil, printer.NewUnsupportedPrinterError(t)
}

func newTestContext(t *testing.T) TestContext {
	orgURL := os.Getenv(accOrgURLEnv)
	pat := os.Getenv(accPATEnv)
	project := os.Getenv(accProjectEnv)
	if orgURL == "" || pat == "" || project == "" {
		t.Fatalf("missing acceptance env variables: %q, %q, %q", accOrgURLEnv, accPATEnv, accProjectEnv)
	}

	var libraryID int
	if raw := os.Getenv(accLibraryEnv); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("invalid %s value %q: %v", accLibraryEnv, raw, err)
		}
		libraryID = id
	}

	cfg, err := config.New(orgURL, pat, project)
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}

	timeout := accDefaultTimeout
	if raw := os.Getenv(accTimeoutEnv); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			t.Fatalf("invalid %s value %q; provide a positive duration such as \"90s\"", accTimeoutEnv, raw)
		}
		timeout = d
	}
	baseCtx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)

	client, err := envmgr.Open(baseCtx, cfg)
	if err != nil {
		t.Fatalf("failed to connect to %s: %v", cfg.OrganizationURL(), err)
	}
	t.Cleanup(func() { _ = client.Close() })

	ios, _, _, _ := iostreams.Test()
	return &testContext{
		project:   strings.TrimSpace(project),
		libraryID: libraryID,
		CmdContext: &acceptanceCmdContext{
			baseCtx: baseCtx,
			ios:     ios,
			cfg:     cfg,
			manager: client,
		},
	}
}

type stubPrompter struct{}

func (stubPrompter) Input(string, string) (string, error) { return "", errPromptDisabled }

func (stubPrompter) Password(string) (string, error) { return "", errPromptDisabled }

func runStep(ctx TestContext, s Step) error {
	var errs []error

	if s.PreRun != nil {
		if err := s.PreRun(ctx); err != nil {
			return fmt.Errorf("pre: %w", err)
		}
	}
	if s.Run != nil {
		if err := s.Run(ctx); err != nil {
			errs = append(errs, fmt.Errorf("run: %w", err))
		}
	}
	if s.Verify != nil && len(errs) == 0 {
		if err := s.Verify(ctx); err != nil {
			errs = append(errs, fmt.Errorf("verify: %w", err))
		}
	}
	if s.PostRun != nil {
		if err := s.PostRun(ctx); err != nil {
			errs = append(errs, fmt.Errorf("post: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Test runs tc against the live project configured through the AZDO_ACC_* variables.
func Test(t *testing.T, tc TestCase) {
	if os.Getenv(accToggleEnv) == "" {
		t.Skipf("Acceptance tests skipped unless env '%s' set", accToggleEnv)
		return
	}

	if tc.PreCheck != nil {
		if err := tc.PreCheck(); err != nil {
			t.Fatalf("test PreCheck failed: %v", err)
		}
	}
	ctx := newTestContext(t)
	for _, s := range tc.Steps {
		if err := runStep(ctx, s); err != nil {
			t.Fatalf("%v", err)
		}
	}
}
