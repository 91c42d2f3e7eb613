package envmgr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/tmeckel/azdo-envmgr/internal/types"
	"go.uber.org/zap"
)

const vstsGroupType = "Vsts"

// CreateGroupFromTemplate creates a new variable group holding every variable of the
// template group. A variable takes its value from overrides when the override is present
// and not empty, otherwise from the template. Secret and read-only flags are copied.
// Overrides for names the template does not have are ignored. The template is not changed.
func (c *Client) CreateGroupFromTemplate(ctx context.Context, templateGroupID int, newGroupName string, overrides map[string]string) (int, error) {
	const op = "CreateGroupFromTemplate"
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(newGroupName) == "" {
		return 0, fmt.Errorf("%w: name of the new variable group must not be empty", ErrInvalidArgument)
	}

	template, err := c.fetchGroup(ctx, op, templateGroupID)
	if err != nil {
		return 0, err
	}

	templateVars := types.GetMapValue(template.Variables)
	vars := mergeTemplate(templateVars, overrides)

	ignored := treeset.NewWithStringComparator()
	for key := range overrides {
		if _, ok := templateVars[key]; !ok {
			ignored.Add(key)
		}
	}
	if !ignored.Empty() {
		zap.L().Debug("ignoring overrides without template variable",
			zap.Int("templateGroupID", templateGroupID),
			zap.Any("keys", ignored.Values()))
	}

	description := types.GetValue(template.Description, "")
	refs, err := c.groupProjectReferences(ctx, op, template, newGroupName, description)
	if err != nil {
		return 0, err
	}

	zap.L().Debug("creating variable group from template",
		zap.Int("templateGroupID", templateGroupID),
		zap.String("name", newGroupName),
		zap.Int("variables", len(vars)))
	created, err := c.clients.VariableGroups.AddVariableGroup(ctx, taskagent.AddVariableGroupArgs{
		VariableGroupParameters: &taskagent.VariableGroupParameters{
			Name:                           types.ToPtr(newGroupName),
			Description:                    types.ToPtr(description),
			Type:                           types.ToPtr(vstsGroupType),
			Variables:                      &vars,
			VariableGroupProjectReferences: refs,
		},
	})
	if err != nil {
		return 0, c.remoteFailure(op, err, zap.Int("templateGroupID", templateGroupID), zap.String("name", newGroupName))
	}
	if created == nil || created.Id == nil {
		return 0, c.remoteFailure(op, errors.New("service returned no variable group"), zap.String("name", newGroupName))
	}
	return *created.Id, nil
}

// mergeTemplate builds the variables of a cloned group. The result has exactly the keys
// of template.
func mergeTemplate(template map[string]interface{}, overrides map[string]string) map[string]interface{} {
	merged := make(map[string]interface{}, len(template))
	for key, raw := range template {
		v := decodeVariable(raw)
		if o, ok := overrides[key]; ok && o != "" {
			v.Value = types.ToPtr(o)
		}
		merged[key] = v.encode()
	}
	return merged
}
