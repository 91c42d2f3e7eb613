package extensions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
)

const (
	variableGroupsPath      = "_apis/distributedtask/variablegroups"
	variableGroupsVersion   = "7.1"
	continuationTokenHeader = "X-Ms-Continuationtoken"
)

var errProjectRequired = errors.New("project is required to list variable groups")

// VariableGroupsResponse is one page of
// GET {organization}/{project}/_apis/distributedtask/variablegroups.
type VariableGroupsResponse struct {
	Count             *int                      `json:"count,omitempty"`
	ContinuationToken *string                   `json:"continuationToken,omitempty"`
	Value             []taskagent.VariableGroup `json:"value,omitempty"`
}

// GetVariableGroups fetches one page of variable groups. The SDK 7.1 wrapper loses the
// continuation token, so the body is decoded here. A token missing from the body is
// taken from the response header.
func (c *extensionClient) GetVariableGroups(ctx context.Context, args taskagent.GetVariableGroupsArgs) (*VariableGroupsResponse, error) {
	project := ""
	if args.Project != nil {
		project = strings.TrimSpace(*args.Project)
	}
	if project == "" {
		return nil, errProjectRequired
	}

	endpoint := strings.TrimRight(c.conn.BaseUrl, "/") + "/" + url.PathEscape(project) + "/" + variableGroupsPath +
		"?" + variableGroupsQuery(args).Encode()

	client := c.conn.GetClientByUrl(endpoint)
	req, err := client.CreateRequestMessage(ctx, http.MethodGet, endpoint, "", nil, "", "", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.SendRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, client.UnwrapError(resp)
	}

	page := &VariableGroupsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return nil, err
	}
	if page.ContinuationToken == nil {
		if token := strings.TrimSpace(resp.Header.Get(continuationTokenHeader)); token != "" {
			page.ContinuationToken = &token
		}
	}
	return page, nil
}

func variableGroupsQuery(args taskagent.GetVariableGroupsArgs) url.Values {
	q := url.Values{"api-version": {variableGroupsVersion}}
	set := func(key string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			q.Set(key, strings.TrimSpace(*v))
		}
	}
	set("groupName", args.GroupName)
	if args.ActionFilter != nil {
		s := string(*args.ActionFilter)
		set("actionFilter", &s)
	}
	if args.QueryOrder != nil {
		s := string(*args.QueryOrder)
		set("queryOrder", &s)
	}
	if args.Top != nil {
		q.Set("$top", strconv.Itoa(*args.Top))
	}
	if args.ContinuationToken != nil {
		q.Set("continuationToken", strconv.Itoa(*args.ContinuationToken))
	}
	return q
}
