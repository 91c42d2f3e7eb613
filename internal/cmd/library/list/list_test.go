package list

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"github.com/tmeckel/azdo-envmgr/internal/mocks"
	"github.com/tmeckel/azdo-envmgr/internal/printer"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockCmdContext, *mocks.MockManager, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ios, _, out, _ := iostreams.Test()
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	manager := mocks.NewMockManager(ctrl)

	cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()
	cmdCtx.EXPECT().Context().Return(context.Background()).AnyTimes()
	cmdCtx.EXPECT().Manager().Return(manager, nil).AnyTimes()
	cmdCtx.EXPECT().Printer("table").DoAndReturn(func(string) (printer.Printer, error) {
		return printer.NewTablePrinter(ios.Out, false, 80)
	}).AnyTimes()
	return cmdCtx, manager, out
}

var groups = []envmgr.VariableGroup{
	{ID: 12, Name: "qa", Description: "QA stage", Variables: map[string]envmgr.Variable{
		"environment": {Value: "qa"},
		"app1Port":    {Value: "8081"},
	}},
	{ID: 13, Name: "prod", Variables: map[string]envmgr.Variable{
		"environment": {Value: "prod"},
	}},
}

func TestListLibraries_Table(t *testing.T) {
	cmdCtx, manager, out := setup(t)
	manager.EXPECT().ListVariableGroups(gomock.Any()).Return(groups, nil)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{})
	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Equal(t, "12\tqa\t2 variables\tQA stage\n13\tprod\t1 variable\t\n", out.String())
}

func TestListLibraries_JSON(t *testing.T) {
	cmdCtx, manager, out := setup(t)
	manager.EXPECT().ListVariableGroups(gomock.Any()).Return(groups, nil)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{"--json", "id,name"})
	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":12,"name":"qa"},{"id":13,"name":"prod"}]`, out.String())
}

func TestListLibraries_Empty(t *testing.T) {
	cmdCtx, manager, _ := setup(t)
	manager.EXPECT().ListVariableGroups(gomock.Any()).Return([]envmgr.VariableGroup{}, nil)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{})
	_, err := cmd.ExecuteC()
	require.Error(t, err)
	assert.EqualError(t, err, "no libraries found")
}

func TestListLibraries_RemoteError(t *testing.T) {
	cmdCtx, manager, out := setup(t)
	manager.EXPECT().ListVariableGroups(gomock.Any()).Return([]envmgr.VariableGroup{}, &envmgr.RemoteError{Op: "list variable groups", Err: errors.New("401")})

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	_, err := cmd.ExecuteC()
	require.Error(t, err)
	assert.True(t, envmgr.IsRemote(err))
	assert.Empty(t, out.String())
}
