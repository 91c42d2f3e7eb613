package azdo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/tmeckel/azdo-envmgr/internal/azdo/extensions"
)

// ListDefinitions follows the continuation token until all build definitions of the
// project have been fetched.
func ListDefinitions(ctx context.Context, client DefinitionClient, args build.GetDefinitionsArgs) ([]build.BuildDefinitionReference, error) {
	result := []build.BuildDefinitionReference{}
	for {
		res, err := client.GetDefinitions(ctx, args)
		if err != nil {
			return []build.BuildDefinitionReference{}, err
		}

		if res == nil {
			break
		}
		if res.Value != nil {
			result = append(result, res.Value...)
		}
		if strings.TrimSpace(res.ContinuationToken) == "" {
			break
		}

		token := res.ContinuationToken
		args.ContinuationToken = &token
	}
	return result, nil
}

// ListVariableGroups follows the continuation token until all variable groups of the
// project have been fetched.
func ListVariableGroups(ctx context.Context, client extensions.Client, args taskagent.GetVariableGroupsArgs) ([]taskagent.VariableGroup, error) {
	var continuationToken *string

	result := []taskagent.VariableGroup{}
	for {
		if continuationToken != nil {
			n, err := strconv.Atoi(*continuationToken)
			if err != nil {
				return []taskagent.VariableGroup{}, fmt.Errorf("failed to parse continuation token %q to list variable groups: %w", *continuationToken, err)
			}
			args.ContinuationToken = &n
		}
		res, err := client.GetVariableGroups(ctx, args)
		if err != nil {
			return []taskagent.VariableGroup{}, err
		}

		if res == nil {
			break
		}
		if res.Value != nil {
			result = append(result, res.Value...)
		}
		if res.ContinuationToken == nil || strings.TrimSpace(*res.ContinuationToken) == "" {
			break
		}

		continuationToken = res.ContinuationToken
	}
	return result, nil
}
