package envmgr

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/samber/lo"
	"github.com/tmeckel/azdo-envmgr/internal/azdo"
	"github.com/tmeckel/azdo-envmgr/internal/types"
	"go.uber.org/zap"
)

// ListVariableGroups returns all variable groups of the project with secret values
// replaced by SecretMarker. On failure the slice is empty.
func (c *Client) ListVariableGroups(ctx context.Context) ([]VariableGroup, error) {
	const op = "ListVariableGroups"
	if err := c.checkOpen(); err != nil {
		return []VariableGroup{}, err
	}

	groups, err := azdo.ListVariableGroups(ctx, c.clients.GroupLister, taskagent.GetVariableGroupsArgs{
		Project: c.project(),
	})
	if err != nil {
		return []VariableGroup{}, c.remoteFailure(op, err)
	}

	return lo.Map(groups, func(g taskagent.VariableGroup, _ int) VariableGroup {
		return toVariableGroup(&g)
	}), nil
}

// ListAllVariables flattens ListVariableGroups into one entry per variable. Groups keep
// their order, variables are sorted by name within a group.
func (c *Client) ListAllVariables(ctx context.Context) ([]VariableEntry, error) {
	groups, err := c.ListVariableGroups(ctx)
	if err != nil {
		return []VariableEntry{}, err
	}
	return Flatten(groups), nil
}

// Flatten joins the variables of groups into VariableEntry values.
func Flatten(groups []VariableGroup) []VariableEntry {
	entries := []VariableEntry{}
	for _, g := range groups {
		names := lo.Keys(g.Variables)
		slices.Sort(names)
		for _, name := range names {
			v := g.Variables[name]
			entries = append(entries, VariableEntry{
				Name:     name,
				Value:    v.Value,
				Library:  g.Name,
				IsSecret: v.IsSecret,
			})
		}
	}
	return entries
}

func (c *Client) GetVariableGroup(ctx context.Context, groupID int) (*VariableGroup, error) {
	const op = "GetVariableGroup"
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	group, err := c.fetchGroup(ctx, op, groupID)
	if err != nil {
		return nil, err
	}
	g := toVariableGroup(group)
	return &g, nil
}

// GetVariable returns the value of a variable, or SecretMarker for a secret one. Names
// are case-sensitive.
func (c *Client) GetVariable(ctx context.Context, groupID int, name string) (string, error) {
	const op = "GetVariable"
	if err := c.checkOpen(); err != nil {
		return "", err
	}
	group, err := c.fetchGroup(ctx, op, groupID)
	if err != nil {
		return "", err
	}
	raw, ok := types.GetMapValue(group.Variables)[name]
	if !ok {
		return "", fmt.Errorf("variable %q in group %d: %w", name, groupID, ErrVariableNotFound)
	}
	return decodeVariable(raw).masked().Value, nil
}

// UpdateVariable sets the value of a variable, inserting it as a non-secret variable
// when the group does not have it yet. The flags of an existing variable are kept.
func (c *Client) UpdateVariable(ctx context.Context, groupID int, name, value string) error {
	return c.modifyGroup(ctx, "UpdateVariable", groupID, name, func(vars map[string]interface{}) error {
		v := rawVariable{}
		if existing, ok := vars[name]; ok {
			v = decodeVariable(existing)
		}
		v.Value = types.ToPtr(value)
		vars[name] = v.encode()
		return nil
	})
}

// AddVariable inserts a new non-secret variable and fails with ErrVariableExists when
// the group already has one with that name.
func (c *Client) AddVariable(ctx context.Context, groupID int, name, value string) error {
	return c.modifyGroup(ctx, "AddVariable", groupID, name, func(vars map[string]interface{}) error {
		if _, ok := vars[name]; ok {
			return fmt.Errorf("variable %q in group %d: %w", name, groupID, ErrVariableExists)
		}
		vars[name] = rawVariable{Value: types.ToPtr(value)}.encode()
		return nil
	})
}

// modifyGroup reads the group, lets mutate change a copy of its variables and writes the
// whole map back. Entries mutate does not touch are sent back as received, so secret
// variables without a value keep their remote value.
func (c *Client) modifyGroup(ctx context.Context, op string, groupID int, name string, mutate func(map[string]interface{}) error) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: variable name must not be empty", ErrInvalidArgument)
	}

	unlock := c.locks.lock(groupID)
	defer unlock()

	group, err := c.fetchGroup(ctx, op, groupID)
	if err != nil {
		return err
	}

	vars := map[string]interface{}{}
	for k, v := range types.GetMapValue(group.Variables) {
		vars[k] = v
	}
	if err := mutate(vars); err != nil {
		return err
	}

	refs, err := c.groupProjectReferences(ctx, op, group, types.GetValue(group.Name, ""), types.GetValue(group.Description, ""))
	if err != nil {
		return err
	}

	zap.L().Debug("updating variable group", zap.String("op", op), zap.Int("groupID", groupID), zap.String("variable", name))
	_, err = c.clients.VariableGroups.UpdateVariableGroup(ctx, taskagent.UpdateVariableGroupArgs{
		GroupId: types.ToPtr(groupID),
		VariableGroupParameters: &taskagent.VariableGroupParameters{
			Name:                           group.Name,
			Description:                    group.Description,
			Type:                           group.Type,
			ProviderData:                   group.ProviderData,
			Variables:                      &vars,
			VariableGroupProjectReferences: refs,
		},
	})
	if err != nil {
		return c.remoteFailure(op, err, zap.Int("groupID", groupID))
	}
	return nil
}

func (c *Client) fetchGroup(ctx context.Context, op string, groupID int) (*taskagent.VariableGroup, error) {
	group, err := c.clients.VariableGroups.GetVariableGroup(ctx, taskagent.GetVariableGroupArgs{
		Project: c.project(),
		GroupId: types.ToPtr(groupID),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("variable group %d: %w", groupID, ErrGroupNotFound)
		}
		return nil, c.remoteFailure(op, err, zap.Int("groupID", groupID))
	}
	if group == nil {
		return nil, fmt.Errorf("variable group %d: %w", groupID, ErrGroupNotFound)
	}
	return group, nil
}

// groupProjectReferences returns the project references a written group is shared with.
// The references of group are reused when one of them points to the configured project;
// otherwise a reference is built from the project id the core API reports.
func (c *Client) groupProjectReferences(ctx context.Context, op string, group *taskagent.VariableGroup, name, description string) (*[]taskagent.VariableGroupProjectReference, error) {
	if group != nil && group.VariableGroupProjectReferences != nil {
		for _, ref := range *group.VariableGroupProjectReferences {
			if ref.ProjectReference == nil || !strings.EqualFold(types.GetValue(ref.ProjectReference.Name, ""), c.cfg.Project()) {
				continue
			}
			return &[]taskagent.VariableGroupProjectReference{{
				Name:        types.ToPtr(name),
				Description: types.ToPtr(description),
				ProjectReference: &taskagent.ProjectReference{
					Id:   ref.ProjectReference.Id,
					Name: ref.ProjectReference.Name,
				},
			}}, nil
		}
	}

	project, err := c.clients.Projects.GetProject(ctx, core.GetProjectArgs{
		ProjectId: c.project(),
	})
	if err != nil {
		return nil, c.remoteFailure(op, err)
	}
	if project == nil || project.Id == nil {
		return nil, c.remoteFailure(op, errors.New("project not found"))
	}
	return &[]taskagent.VariableGroupProjectReference{{
		Name:        types.ToPtr(name),
		Description: types.ToPtr(description),
		ProjectReference: &taskagent.ProjectReference{
			Id:   project.Id,
			Name: project.Name,
		},
	}}, nil
}

func toVariableGroup(g *taskagent.VariableGroup) VariableGroup {
	vars := map[string]Variable{}
	for name, raw := range types.GetMapValue(g.Variables) {
		vars[name] = decodeVariable(raw).masked()
	}
	return VariableGroup{
		ID:          types.GetValue(g.Id, 0),
		Name:        types.GetValue(g.Name, ""),
		Description: types.GetValue(g.Description, ""),
		Variables:   vars,
	}
}
