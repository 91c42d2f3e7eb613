package version

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"github.com/tmeckel/azdo-envmgr/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildDate string
		want      string
	}{
		{
			name:      "release",
			version:   "v1.2.3",
			buildDate: "2026-01-02",
			want:      "envmgr version 1.2.3 (2026-01-02)\nhttps://github.com/tmeckel/azdo-envmgr/releases/tag/v1.2.3\n",
		},
		{
			name:    "development build",
			version: "DEV",
			want:    "envmgr version DEV\nhttps://github.com/tmeckel/azdo-envmgr/releases/latest\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.version, tt.buildDate))
		})
	}
}

func TestNewCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	ios, _, out, _ := iostreams.Test()
	cmdCtx := mocks.NewMockCmdContext(ctrl)
	cmdCtx.EXPECT().IOStreams().Return(ios, nil)
	cmdCtx.EXPECT().Context().Return(context.Background()).AnyTimes()

	cmd := NewCmd(cmdCtx, "1.0.0", "")
	cmd.SetArgs([]string{})
	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "envmgr version 1.0.0\n")
}
