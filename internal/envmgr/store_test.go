package envmgr_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/tmeckel/azdo-envmgr/internal/types"
)

var testProjectID = uuid.MustParse("2a4b6c8d-0000-4000-8000-000000000001")

type storedVariable struct {
	value    string
	secret   bool
	readOnly bool
}

// groupStore is an in-memory variable group service. Like the real service it never
// returns secret values and keeps the stored secret when a write sends none.
type groupStore struct {
	mu     sync.Mutex
	nextID int
	names  map[int]string
	vars   map[int]map[string]storedVariable
	writes int
}

func newGroupStore() *groupStore {
	return &groupStore{
		nextID: 100,
		names:  map[int]string{},
		vars:   map[int]map[string]storedVariable{},
	}
}

func (s *groupStore) put(id int, name string, vars map[string]storedVariable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[id] = name
	s.vars[id] = vars
}

func (s *groupStore) snapshot(id int) map[string]storedVariable {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]storedVariable{}
	for k, v := range s.vars[id] {
		out[k] = v
	}
	return out
}

func (s *groupStore) wire(id int) *taskagent.VariableGroup {
	vars := map[string]interface{}{}
	for k, v := range s.vars[id] {
		entry := map[string]interface{}{"isSecret": v.secret, "isReadOnly": v.readOnly}
		if !v.secret {
			entry["value"] = v.value
		}
		vars[k] = entry
	}
	g := taskagent.VariableGroup{
		Id:        types.ToPtr(id),
		Name:      types.ToPtr(s.names[id]),
		Type:      types.ToPtr("Vsts"),
		Variables: &vars,
		VariableGroupProjectReferences: &[]taskagent.VariableGroupProjectReference{{
			Name: types.ToPtr(s.names[id]),
			ProjectReference: &taskagent.ProjectReference{
				Id:   &testProjectID,
				Name: types.ToPtr("proj"),
			},
		}},
	}
	// round trip through JSON so callers see the shapes the SDK decodes
	raw, _ := json.Marshal(g)
	var out taskagent.VariableGroup
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (s *groupStore) GetVariableGroup(_ context.Context, args taskagent.GetVariableGroupArgs) (*taskagent.VariableGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := types.GetValue(args.GroupId, 0)
	if _, ok := s.vars[id]; !ok {
		return nil, &azuredevops.WrappedError{StatusCode: types.ToPtr(404), Message: types.ToPtr("not found")}
	}
	return s.wire(id), nil
}

func (s *groupStore) decode(id int, params *taskagent.VariableGroupParameters) map[string]storedVariable {
	raw, _ := json.Marshal(params.Variables)
	var in map[string]struct {
		Value      *string `json:"value"`
		IsSecret   bool    `json:"isSecret"`
		IsReadOnly bool    `json:"isReadOnly"`
	}
	_ = json.Unmarshal(raw, &in)

	out := map[string]storedVariable{}
	for k, v := range in {
		sv := storedVariable{secret: v.IsSecret, readOnly: v.IsReadOnly}
		if v.Value != nil {
			sv.value = *v.Value
		} else if old, ok := s.vars[id][k]; ok && v.IsSecret {
			sv.value = old.value
		}
		out[k] = sv
	}
	return out
}

func (s *groupStore) AddVariableGroup(_ context.Context, args taskagent.AddVariableGroupArgs) (*taskagent.VariableGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.names[id] = types.GetValue(args.VariableGroupParameters.Name, "")
	s.vars[id] = s.decode(id, args.VariableGroupParameters)
	s.writes++
	return s.wire(id), nil
}

func (s *groupStore) UpdateVariableGroup(_ context.Context, args taskagent.UpdateVariableGroupArgs) (*taskagent.VariableGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := types.GetValue(args.GroupId, 0)
	if _, ok := s.vars[id]; !ok {
		return nil, &azuredevops.WrappedError{StatusCode: types.ToPtr(404), Message: types.ToPtr("not found")}
	}
	s.vars[id] = s.decode(id, args.VariableGroupParameters)
	s.writes++
	return s.wire(id), nil
}
