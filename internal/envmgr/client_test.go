package envmgr_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/azdo-envmgr/internal/azdo/extensions"
	"github.com/tmeckel/azdo-envmgr/internal/config"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
	"github.com/tmeckel/azdo-envmgr/internal/mocks"
	"github.com/tmeckel/azdo-envmgr/internal/types"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.New("https://dev.azure.com/org", "pat", "proj")
	require.NoError(t, err)
	return cfg
}

func newStoreClient(t *testing.T, store *groupStore) *envmgr.Client {
	t.Helper()
	return envmgr.New(testConfig(t), envmgr.Clients{VariableGroups: store})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestListPipelines(t *testing.T) {
	ctx := context.Background()

	t.Run("maps definitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defs := mocks.NewMockDefinitionClient(ctrl)
		defs.EXPECT().GetDefinitions(ctx, build.GetDefinitionsArgs{Project: types.ToPtr("proj")}).
			Return(&build.GetDefinitionsResponseValue{Value: []build.BuildDefinitionReference{
				{Id: types.ToPtr(7), Name: types.ToPtr("deploy"), Path: types.ToPtr(`\env`), Type: &build.DefinitionTypeValues.Build},
				{Id: types.ToPtr(3), Name: types.ToPtr("legacy")},
			}}, nil)

		c := envmgr.New(testConfig(t), envmgr.Clients{Definitions: defs})
		got, err := c.ListPipelines(ctx)
		require.NoError(t, err)
		assert.Equal(t, []envmgr.PipelineDefinition{
			{ID: 7, Name: "deploy", Path: `\env`, Kind: "build"},
			{ID: 3, Name: "legacy"},
		}, got)
	})

	t.Run("failure yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defs := mocks.NewMockDefinitionClient(ctrl)
		defs.EXPECT().GetDefinitions(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		c := envmgr.New(testConfig(t), envmgr.Clients{Definitions: defs})
		got, err := c.ListPipelines(ctx)
		require.Error(t, err)
		assert.True(t, envmgr.IsRemote(err))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestListVariableGroups_MasksSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockAzDOExtension(ctrl)
	lister.EXPECT().GetVariableGroups(gomock.Any(), taskagent.GetVariableGroupsArgs{Project: types.ToPtr("proj")}).
		Return(&extensions.VariableGroupsResponse{Value: []taskagent.VariableGroup{{
			Id:   types.ToPtr(5),
			Name: types.ToPtr("dev"),
			Variables: &map[string]interface{}{
				"app1Port": map[string]interface{}{"value": "8080"},
				"password": map[string]interface{}{"value": "hunter2", "isSecret": true},
				"token":    taskagent.VariableValue{IsSecret: types.ToPtr(true)},
			},
		}}}, nil)

	c := envmgr.New(testConfig(t), envmgr.Clients{GroupLister: lister})
	groups, err := c.ListVariableGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "8080", groups[0].Variables["app1Port"].Value)
	assert.Equal(t, envmgr.SecretMarker, groups[0].Variables["password"].Value)
	assert.Equal(t, envmgr.SecretMarker, groups[0].Variables["token"].Value)
	assert.True(t, groups[0].Variables["password"].IsSecret)
}

func TestListAllVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockAzDOExtension(ctrl)
	lister.EXPECT().GetVariableGroups(gomock.Any(), gomock.Any()).
		Return(&extensions.VariableGroupsResponse{Value: []taskagent.VariableGroup{
			{Id: types.ToPtr(1), Name: types.ToPtr("dev"), Variables: &map[string]interface{}{
				"b": map[string]interface{}{"value": "2"},
				"a": map[string]interface{}{"value": "1"},
			}},
			{Id: types.ToPtr(2), Name: types.ToPtr("prod"), Variables: &map[string]interface{}{
				"s": map[string]interface{}{"isSecret": true},
			}},
			{Id: types.ToPtr(3), Name: types.ToPtr("empty")},
		}}, nil)

	c := envmgr.New(testConfig(t), envmgr.Clients{GroupLister: lister})
	entries, err := c.ListAllVariables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []envmgr.VariableEntry{
		{Name: "a", Value: "1", Library: "dev"},
		{Name: "b", Value: "2", Library: "dev"},
		{Name: "s", Value: envmgr.SecretMarker, Library: "prod", IsSecret: true},
	}, entries)
}

func TestListAllVariables_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockAzDOExtension(ctrl)
	lister.EXPECT().GetVariableGroups(gomock.Any(), gomock.Any()).Return(nil, errors.New("401"))

	c := envmgr.New(testConfig(t), envmgr.Clients{GroupLister: lister})
	entries, err := c.ListAllVariables(context.Background())
	require.Error(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAddThenGet(t *testing.T) {
	ctx := context.Background()
	store := newGroupStore()
	store.put(5, "dev", map[string]storedVariable{"domena": {value: "example.com"}})
	c := newStoreClient(t, store)

	require.NoError(t, c.AddVariable(ctx, 5, "app1Port", "8080"))
	v, err := c.GetVariable(ctx, 5, "app1Port")
	require.NoError(t, err)
	assert.Equal(t, "8080", v)

	err = c.AddVariable(ctx, 5, "app1Port", "9090")
	require.ErrorIs(t, err, envmgr.ErrVariableExists)
	v, err = c.GetVariable(ctx, 5, "app1Port")
	require.NoError(t, err)
	assert.Equal(t, "8080", v)

	assert.Equal(t, storedVariable{value: "8080"}, store.snapshot(5)["app1Port"])
	assert.Equal(t, "example.com", store.snapshot(5)["domena"].value)
	assert.Equal(t, 1, store.writes)
}

func TestUpdateVariable(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites existing", func(t *testing.T) {
		store := newGroupStore()
		store.put(5, "dev", map[string]storedVariable{"app1Port": {value: "8080", readOnly: true}})
		c := newStoreClient(t, store)

		require.NoError(t, c.UpdateVariable(ctx, 5, "app1Port", "9090"))
		v, err := c.GetVariable(ctx, 5, "app1Port")
		require.NoError(t, err)
		assert.Equal(t, "9090", v)
		assert.True(t, store.snapshot(5)["app1Port"].readOnly)
	})

	t.Run("inserts missing as non-secret", func(t *testing.T) {
		store := newGroupStore()
		store.put(5, "dev", map[string]storedVariable{"domena": {value: "example.com"}})
		c := newStoreClient(t, store)

		require.NoError(t, c.UpdateVariable(ctx, 5, "app1Port", "9090"))
		assert.Equal(t, storedVariable{value: "9090"}, store.snapshot(5)["app1Port"])
		assert.Equal(t, "example.com", store.snapshot(5)["domena"].value)
	})

	t.Run("keeps secrets of other variables", func(t *testing.T) {
		store := newGroupStore()
		store.put(5, "dev", map[string]storedVariable{
			"password": {value: "hunter2", secret: true},
			"domena":   {value: "example.com"},
		})
		c := newStoreClient(t, store)

		require.NoError(t, c.UpdateVariable(ctx, 5, "domena", "new.example.com"))
		assert.Equal(t, storedVariable{value: "hunter2", secret: true}, store.snapshot(5)["password"])

		v, err := c.GetVariable(ctx, 5, "password")
		require.NoError(t, err)
		assert.Equal(t, envmgr.SecretMarker, v)
	})

	t.Run("empty name", func(t *testing.T) {
		c := newStoreClient(t, newGroupStore())
		require.ErrorIs(t, c.UpdateVariable(ctx, 5, " ", "x"), envmgr.ErrInvalidArgument)
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		groups := mocks.NewMockVariableGroupClient(ctrl)
		groups.EXPECT().GetVariableGroup(gomock.Any(), gomock.Any()).Return(&taskagent.VariableGroup{
			Id:   types.ToPtr(5),
			Name: types.ToPtr("dev"),
			VariableGroupProjectReferences: &[]taskagent.VariableGroupProjectReference{{
				ProjectReference: &taskagent.ProjectReference{Id: &testProjectID, Name: types.ToPtr("proj")},
			}},
		}, nil)
		groups.EXPECT().UpdateVariableGroup(gomock.Any(), gomock.Any()).Return(nil, errors.New("conflict"))

		c := envmgr.New(testConfig(t), envmgr.Clients{VariableGroups: groups})
		err := c.UpdateVariable(ctx, 5, "a", "b")
		require.Error(t, err)
		var re *envmgr.RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "UpdateVariable", re.Op)
	})
}

func TestUpdateVariable_SerializesWritesPerGroup(t *testing.T) {
	ctx := context.Background()
	store := newGroupStore()
	store.put(5, "dev", map[string]storedVariable{})
	c := newStoreClient(t, store)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.UpdateVariable(ctx, 5, fmt.Sprintf("key%02d", i), "v"))
		}()
	}
	wg.Wait()
	assert.Len(t, store.snapshot(5), 20)
	assert.Zero(t, envmgr.HeldGroupLocks(c))
}

func TestUpdateVariable_ReleasesGroupLocks(t *testing.T) {
	ctx := context.Background()
	store := newGroupStore()
	for id := 1; id <= 10; id++ {
		store.put(id, fmt.Sprintf("g%d", id), map[string]storedVariable{})
	}
	c := newStoreClient(t, store)

	var wg sync.WaitGroup
	for id := 1; id <= 10; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.UpdateVariable(ctx, id, "key", "v"))
		}()
	}
	wg.Wait()
	assert.Zero(t, envmgr.HeldGroupLocks(c))

	// a failing write releases its lock as well
	assert.Error(t, c.UpdateVariable(ctx, 99, "key", "v"))
	assert.Zero(t, envmgr.HeldGroupLocks(c))
}

func TestGetVariable(t *testing.T) {
	ctx := context.Background()
	store := newGroupStore()
	store.put(5, "dev", map[string]storedVariable{"Domena": {value: "example.com"}})
	c := newStoreClient(t, store)

	_, err := c.GetVariable(ctx, 5, "domena")
	require.ErrorIs(t, err, envmgr.ErrVariableNotFound)

	_, err = c.GetVariable(ctx, 6, "Domena")
	require.ErrorIs(t, err, envmgr.ErrGroupNotFound)
	assert.False(t, envmgr.IsRemote(err))
}

func TestGetVariableGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("masks secrets", func(t *testing.T) {
		store := newGroupStore()
		store.put(5, "dev", map[string]storedVariable{
			"a": {value: "1"},
			"s": {value: "x", secret: true},
		})
		c := newStoreClient(t, store)

		g, err := c.GetVariableGroup(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "dev", g.Name)
		assert.Equal(t, map[string]envmgr.Variable{
			"a": {Value: "1"},
			"s": {Value: envmgr.SecretMarker, IsSecret: true},
		}, g.Variables)
	})

	t.Run("nil group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		groups := mocks.NewMockVariableGroupClient(ctrl)
		groups.EXPECT().GetVariableGroup(gomock.Any(), gomock.Any()).Return(nil, nil)

		c := envmgr.New(testConfig(t), envmgr.Clients{VariableGroups: groups})
		g, err := c.GetVariableGroup(ctx, 9)
		require.ErrorIs(t, err, envmgr.ErrGroupNotFound)
		assert.Nil(t, g)
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		groups := mocks.NewMockVariableGroupClient(ctrl)
		groups.EXPECT().GetVariableGroup(gomock.Any(), gomock.Any()).
			Return(nil, &azuredevops.WrappedError{StatusCode: types.ToPtr(500), Message: types.ToPtr("boom")})

		c := envmgr.New(testConfig(t), envmgr.Clients{VariableGroups: groups})
		_, err := c.GetVariableGroup(ctx, 9)
		require.Error(t, err)
		assert.True(t, envmgr.IsRemote(err))
	})
}

func TestCreateGroupFromTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges overrides into template", func(t *testing.T) {
		store := newGroupStore()
		template := map[string]storedVariable{
			"app1Port": {value: "8080"},
			"domena":   {value: "example.com"},
			"password": {value: "hunter2", secret: true},
			"region":   {value: "eu", readOnly: true},
		}
		store.put(5, "template", template)
		c := newStoreClient(t, store)

		id, err := c.CreateGroupFromTemplate(ctx, 5, "staging", map[string]string{
			"domena":     "new.example.com",
			"region":     "",
			"unknownKey": "x",
		})
		require.NoError(t, err)
		require.NotZero(t, id)

		assert.Equal(t, map[string]storedVariable{
			"app1Port": {value: "8080"},
			"domena":   {value: "new.example.com"},
			"password": {secret: true},
			"region":   {value: "eu", readOnly: true},
		}, store.snapshot(id))
		assert.Equal(t, "staging", store.names[id])
		assert.Equal(t, template, store.snapshot(5))
	})

	t.Run("empty name makes no remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		groups := mocks.NewMockVariableGroupClient(ctrl)

		c := envmgr.New(testConfig(t), envmgr.Clients{VariableGroups: groups})
		id, err := c.CreateGroupFromTemplate(ctx, 5, "  ", nil)
		require.ErrorIs(t, err, envmgr.ErrInvalidArgument)
		assert.Zero(t, id)
	})

	t.Run("resolves project when template is not shared with it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		groups := mocks.NewMockVariableGroupClient(ctrl)
		projects := mocks.NewMockProjectClient(ctrl)

		groups.EXPECT().GetVariableGroup(gomock.Any(), gomock.Any()).Return(&taskagent.VariableGroup{
			Id:        types.ToPtr(5),
			Name:      types.ToPtr("template"),
			Variables: &map[string]interface{}{"a": map[string]interface{}{"value": "1"}},
		}, nil)
		projects.EXPECT().GetProject(gomock.Any(), core.GetProjectArgs{ProjectId: types.ToPtr("proj")}).
			Return(&core.TeamProject{Id: &testProjectID, Name: types.ToPtr("proj")}, nil)
		groups.EXPECT().AddVariableGroup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args taskagent.AddVariableGroupArgs) (*taskagent.VariableGroup, error) {
				refs := *args.VariableGroupParameters.VariableGroupProjectReferences
				require.Len(t, refs, 1)
				assert.Equal(t, testProjectID, *refs[0].ProjectReference.Id)
				assert.Equal(t, "staging", *refs[0].Name)
				assert.Equal(t, "Vsts", *args.VariableGroupParameters.Type)
				return &taskagent.VariableGroup{Id: types.ToPtr(77)}, nil
			})

		c := envmgr.New(testConfig(t), envmgr.Clients{VariableGroups: groups, Projects: projects})
		id, err := c.CreateGroupFromTemplate(ctx, 5, "staging", nil)
		require.NoError(t, err)
		assert.Equal(t, 77, id)
	})

	t.Run("template not found", func(t *testing.T) {
		c := newStoreClient(t, newGroupStore())
		id, err := c.CreateGroupFromTemplate(ctx, 5, "staging", nil)
		require.ErrorIs(t, err, envmgr.ErrGroupNotFound)
		assert.Zero(t, id)
	})
}

func TestQueuePipelineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("sends empty resources and parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runs := mocks.NewMockRunClient(ctrl)
		runs.EXPECT().RunPipeline(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args pipelines.RunPipelineArgs) (*pipelines.Run, error) {
				assert.Equal(t, 42, *args.PipelineId)
				assert.Equal(t, "proj", *args.Project)
				require.NotNil(t, args.RunParameters.Resources)
				assert.Nil(t, args.RunParameters.Resources.Repositories)
				require.NotNil(t, args.RunParameters.TemplateParameters)
				assert.Empty(t, *args.RunParameters.TemplateParameters)
				return &pipelines.Run{Id: types.ToPtr(1001), Name: types.ToPtr("20260101.1"), State: &pipelines.RunStateValues.InProgress}, nil
			})

		c := envmgr.New(testConfig(t), envmgr.Clients{Runs: runs})
		run, err := c.QueuePipelineRun(ctx, 42, envmgr.RunOptions{})
		require.NoError(t, err)
		assert.Equal(t, &envmgr.Run{ID: 1001, Name: "20260101.1", State: "inProgress"}, run)
	})

	t.Run("branch selects self repository ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runs := mocks.NewMockRunClient(ctrl)
		runs.EXPECT().RunPipeline(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args pipelines.RunPipelineArgs) (*pipelines.Run, error) {
				repos := *args.RunParameters.Resources.Repositories
				assert.Equal(t, "refs/heads/release/1.0", *repos["self"].RefName)
				return &pipelines.Run{Id: types.ToPtr(1)}, nil
			})

		c := envmgr.New(testConfig(t), envmgr.Clients{Runs: runs})
		_, err := c.QueuePipelineRun(ctx, 42, envmgr.RunOptions{Branch: "release/1.0"})
		require.NoError(t, err)
	})

	t.Run("unknown pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runs := mocks.NewMockRunClient(ctrl)
		runs.EXPECT().RunPipeline(gomock.Any(), gomock.Any()).
			Return(nil, &azuredevops.WrappedError{StatusCode: types.ToPtr(404), Message: types.ToPtr("pipeline 42 not found")})

		c := envmgr.New(testConfig(t), envmgr.Clients{Runs: runs})
		run, err := c.QueuePipelineRun(ctx, 42, envmgr.RunOptions{})
		require.Error(t, err)
		assert.True(t, envmgr.IsRemote(err))
		assert.Nil(t, run)
	})
}

func TestWaitForRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	runs := mocks.NewMockRunClient(ctrl)
	runs.EXPECT().GetRun(gomock.Any(), pipelines.GetRunArgs{
		Project:    types.ToPtr("proj"),
		PipelineId: types.ToPtr(42),
		RunId:      types.ToPtr(1001),
	}).Return(&pipelines.Run{
		Id:     types.ToPtr(1001),
		State:  &pipelines.RunStateValues.Completed,
		Result: &pipelines.RunResultValues.Failed,
	}, nil)

	c := envmgr.New(testConfig(t), envmgr.Clients{Runs: runs})
	run, err := c.WaitForRun(context.Background(), 42, 1001, 0)
	require.NoError(t, err)
	assert.Equal(t, "completed", run.State)
	assert.Equal(t, "failed", run.Result)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	calls := 0
	c := envmgr.New(testConfig(t), envmgr.Clients{
		VariableGroups: newGroupStore(),
		Closer:         closerFunc(func() error { calls++; return nil }),
	})

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, calls)

	pipelinesList, err := c.ListPipelines(ctx)
	require.ErrorIs(t, err, envmgr.ErrClosed)
	assert.Empty(t, pipelinesList)
	_, err = c.GetVariable(ctx, 5, "a")
	require.ErrorIs(t, err, envmgr.ErrClosed)
	require.ErrorIs(t, c.UpdateVariable(ctx, 5, "a", "b"), envmgr.ErrClosed)
	_, err = c.QueuePipelineRun(ctx, 1, envmgr.RunOptions{})
	require.ErrorIs(t, err, envmgr.ErrClosed)
}
