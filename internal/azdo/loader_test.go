package azdo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/azdo"
	"github.com/tmeckel/azdo-envmgr/internal/azdo/extensions"
	"github.com/tmeckel/azdo-envmgr/internal/mocks"
	"github.com/tmeckel/azdo-envmgr/internal/types"
	"go.uber.org/mock/gomock"
)

func TestListDefinitions(t *testing.T) {
	ctx := context.Background()
	project := types.ToPtr("proj")

	t.Run("success - single page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockDefinitionClient(ctrl)

		expected := []build.BuildDefinitionReference{
			{Id: types.ToPtr(1), Name: types.ToPtr("deploy")},
			{Id: types.ToPtr(2), Name: types.ToPtr("build")},
		}
		client.EXPECT().GetDefinitions(ctx, build.GetDefinitionsArgs{Project: project}).
			Return(&build.GetDefinitionsResponseValue{Value: expected}, nil)

		defs, err := azdo.ListDefinitions(ctx, client, build.GetDefinitionsArgs{Project: project})
		require.NoError(t, err)
		assert.Equal(t, expected, defs)
	})

	t.Run("success - multiple pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockDefinitionClient(ctrl)

		gomock.InOrder(
			client.EXPECT().GetDefinitions(ctx, build.GetDefinitionsArgs{Project: project}).
				Return(&build.GetDefinitionsResponseValue{
					Value:             []build.BuildDefinitionReference{{Id: types.ToPtr(1)}},
					ContinuationToken: "abc",
				}, nil),
			client.EXPECT().GetDefinitions(ctx, build.GetDefinitionsArgs{Project: project, ContinuationToken: types.ToPtr("abc")}).
				Return(&build.GetDefinitionsResponseValue{
					Value: []build.BuildDefinitionReference{{Id: types.ToPtr(2)}},
				}, nil),
		)

		defs, err := azdo.ListDefinitions(ctx, client, build.GetDefinitionsArgs{Project: project})
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, 2, *defs[1].Id)
	})

	t.Run("nil response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockDefinitionClient(ctrl)
		client.EXPECT().GetDefinitions(ctx, gomock.Any()).Return(nil, nil)

		defs, err := azdo.ListDefinitions(ctx, client, build.GetDefinitionsArgs{Project: project})
		require.NoError(t, err)
		assert.Empty(t, defs)
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockDefinitionClient(ctrl)
		client.EXPECT().GetDefinitions(ctx, gomock.Any()).Return(nil, errors.New("boom"))

		defs, err := azdo.ListDefinitions(ctx, client, build.GetDefinitionsArgs{Project: project})
		require.EqualError(t, err, "boom")
		assert.Empty(t, defs)
	})
}

func TestListVariableGroups(t *testing.T) {
	ctx := context.Background()
	project := types.ToPtr("proj")

	t.Run("success - multiple pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockAzDOExtension(ctrl)

		gomock.InOrder(
			client.EXPECT().GetVariableGroups(ctx, taskagent.GetVariableGroupsArgs{Project: project}).
				Return(&extensions.VariableGroupsResponse{
					Value:             []taskagent.VariableGroup{{Id: types.ToPtr(1)}},
					ContinuationToken: types.ToPtr("7"),
				}, nil),
			client.EXPECT().GetVariableGroups(ctx, taskagent.GetVariableGroupsArgs{Project: project, ContinuationToken: types.ToPtr(7)}).
				Return(&extensions.VariableGroupsResponse{
					Value: []taskagent.VariableGroup{{Id: types.ToPtr(7)}},
				}, nil),
		)

		groups, err := azdo.ListVariableGroups(ctx, client, taskagent.GetVariableGroupsArgs{Project: project})
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, 7, *groups[1].Id)
	})

	t.Run("invalid continuation token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockAzDOExtension(ctrl)
		client.EXPECT().GetVariableGroups(ctx, gomock.Any()).
			Return(&extensions.VariableGroupsResponse{ContinuationToken: types.ToPtr("not-a-number")}, nil)

		_, err := azdo.ListVariableGroups(ctx, client, taskagent.GetVariableGroupsArgs{Project: project})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not-a-number")
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockAzDOExtension(ctrl)
		client.EXPECT().GetVariableGroups(ctx, gomock.Any()).Return(nil, errors.New("unauthorized"))

		groups, err := azdo.ListVariableGroups(ctx, client, taskagent.GetVariableGroupsArgs{Project: project})
		require.EqualError(t, err, "unauthorized")
		assert.Empty(t, groups)
	})
}
