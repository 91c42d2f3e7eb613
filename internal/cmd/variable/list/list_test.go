package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
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

func TestListVariables_Group(t *testing.T) {
	cmdCtx, manager, out := setup(t)
	manager.EXPECT().GetVariableGroup(gomock.Any(), 12).Return(&envmgr.VariableGroup{
		ID:   12,
		Name: "qa",
		Variables: map[string]envmgr.Variable{
			"environment": {Value: "qa"},
			"dbPassword":  {Value: envmgr.SecretMarker, IsSecret: true},
			"app1Port":    {Value: "8081", IsReadOnly: true},
		},
	}, nil)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{"12"})
	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Equal(t,
		"app1Port\t8081\tfalse\ttrue\n"+
			"dbPassword\t***\ttrue\tfalse\n"+
			"environment\tqa\tfalse\tfalse\n",
		out.String())
}

func TestListVariables_All_JSON(t *testing.T) {
	cmdCtx, manager, out := setup(t)
	manager.EXPECT().ListAllVariables(gomock.Any()).Return([]envmgr.VariableEntry{
		{Name: "environment", Value: "qa", Library: "qa"},
		{Name: "environment", Value: "prod", Library: "prod"},
	}, nil)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{"--all", "--json", "name,library,value"})
	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"environment","library":"qa","value":"qa"},
		{"name":"environment","library":"prod","value":"prod"}
	]`, out.String())
}

func TestListVariables_Arguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no id", args: []string{}},
		{name: "id and all", args: []string{"12", "--all"}},
		{name: "bad id", args: []string{"-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmdCtx, _, _ := setup(t)
			cmd := NewCmd(cmdCtx)
			cmd.SetArgs(tt.args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			_, err := cmd.ExecuteC()
			require.Error(t, err)
		})
	}
}

func TestListVariables_GroupNotFound(t *testing.T) {
	cmdCtx, manager, _ := setup(t)
	manager.EXPECT().GetVariableGroup(gomock.Any(), 77).Return(nil, envmgr.ErrGroupNotFound)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{"77"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	_, err := cmd.ExecuteC()
	assert.ErrorIs(t, err, envmgr.ErrGroupNotFound)
	var flagErr *util.ErrFlag
	assert.NotErrorAs(t, err, &flagErr)
}
