package update

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"github.com/tmeckel/azdo-envmgr/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestUpdateVariable(t *testing.T) {
	ctrl := gomock.NewController(t)
	ios, _, out, _ := iostreams.Test()
	ios.SetStdoutTTY(true)
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	manager := mocks.NewMockManager(ctrl)
	cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()
	cmdCtx.EXPECT().Context().Return(context.Background()).AnyTimes()
	cmdCtx.EXPECT().Manager().Return(manager, nil).AnyTimes()
	manager.EXPECT().UpdateVariable(gomock.Any(), 12, "app1Port", "").Return(nil)

	cmd := NewCmd(cmdCtx)
	cmd.SetArgs([]string{"12", "app1Port", ""})
	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Equal(t, "Updated variable \"app1Port\" in library 12\n", out.String())
}

func TestUpdateVariable_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		remoteErr error
		wantFlag  bool
	}{
		{name: "empty name", args: []string{"12", "", "v"}, wantFlag: true},
		{name: "bad id", args: []string{"x", "a", "v"}, wantFlag: true},
		{name: "missing value", args: []string{"12", "a"}, wantFlag: true},
		{name: "remote", args: []string{"12", "a", "v"}, remoteErr: &envmgr.RemoteError{Op: "update variable group", Err: assert.AnError}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ios, _, _, _ := iostreams.Test()
			cmdCtx := mocks.NewMockCmdContext(ctrl)
			manager := mocks.NewMockManager(ctrl)
			cmdCtx.EXPECT().IOStreams().Return(ios, nil).AnyTimes()
			cmdCtx.EXPECT().Context().Return(context.Background()).AnyTimes()
			cmdCtx.EXPECT().Manager().Return(manager, nil).AnyTimes()
			if tt.remoteErr != nil {
				manager.EXPECT().UpdateVariable(gomock.Any(), 12, "a", "v").Return(tt.remoteErr)
			}

			cmd := NewCmd(cmdCtx)
			cmd.SetArgs(tt.args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			_, err := cmd.ExecuteC()
			require.Error(t, err)
			var flagErr *util.ErrFlag
			assert.Equal(t, tt.wantFlag, errors.As(err, &flagErr))
			if tt.remoteErr != nil {
				assert.True(t, envmgr.IsRemote(err))
			}
		})
	}
}
