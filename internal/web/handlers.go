package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/tmeckel/azdo-envmgr/internal/envmgr"
)

const overridePrefix = "override_"

var templateFuncs = template.FuncMap{
	"overrideField": func(name string) string { return overridePrefix + name },
}

type variableRow struct {
	envmgr.VariableEntry
	GroupID     int
	Highlighted bool
}

type indexPage struct {
	Project   string
	Pipelines []envmgr.PipelineDefinition
	Groups    []envmgr.VariableGroup
	Variables []variableRow
	Highlight []string
	Message   string
	Error     string
}

func (s *Server) index(c *gin.Context) {
	ctx := c.Request.Context()
	page := indexPage{
		Project:   s.cfg.Project(),
		Highlight: s.cfg.Highlight(),
		Message:   c.Query("msg"),
		Error:     c.Query("err"),
	}

	err := func() (err error) {
		if page.Pipelines, err = s.manager.ListPipelines(ctx); err != nil {
			return err
		}
		if page.Groups, err = s.manager.ListVariableGroups(ctx); err != nil {
			return err
		}
		page.Variables = s.variableRows(page.Groups)
		return nil
	}()
	if err != nil {
		_ = c.Error(err)
		page.Error = fmt.Sprintf("Error loading data: %s", err)
	}

	c.HTML(http.StatusOK, "index.html", page)
}

// variableRows flattens the groups already fetched for the page so the list and the
// groups shown next to it come from the same read.
func (s *Server) variableRows(groups []envmgr.VariableGroup) []variableRow {
	ids := make(map[string]int, len(groups))
	for _, g := range groups {
		ids[g.Name] = g.ID
	}
	return lo.Map(envmgr.Flatten(groups), func(e envmgr.VariableEntry, _ int) variableRow {
		return variableRow{
			VariableEntry: e,
			GroupID:       ids[e.Library],
			Highlighted:   slices.Contains(s.cfg.Highlight(), e.Name),
		}
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"project": s.cfg.Project(),
	})
}

func (s *Server) updateVariable(c *gin.Context) {
	groupID, err := strconv.Atoi(c.PostForm("groupId"))
	if err != nil || groupID <= 0 {
		s.redirect(c, "", fmt.Errorf("invalid library ID %q", c.PostForm("groupId")))
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))
	value := c.PostForm("value")

	if err := s.manager.UpdateVariable(c.Request.Context(), groupID, name, value); err != nil {
		s.redirect(c, "", err)
		return
	}
	s.redirect(c, fmt.Sprintf("Updated %s in library %d", name, groupID), nil)
}

func (s *Server) runPipeline(c *gin.Context) {
	pipelineID, err := strconv.Atoi(c.Param("id"))
	if err != nil || pipelineID <= 0 {
		s.redirect(c, "", fmt.Errorf("invalid pipeline ID %q", c.Param("id")))
		return
	}

	// runs from the page always use the pipeline's default branch
	run, err := s.manager.QueuePipelineRun(c.Request.Context(), pipelineID, envmgr.RunOptions{})
	if err != nil {
		s.redirect(c, "", err)
		return
	}
	s.redirect(c, fmt.Sprintf("Queued run %s (%d) of pipeline %d", run.Name, run.ID, pipelineID), nil)
}

func (s *Server) cloneLibrary(c *gin.Context) {
	templateID, err := strconv.Atoi(c.PostForm("templateId"))
	if err != nil || templateID <= 0 {
		s.redirect(c, "", fmt.Errorf("invalid template library ID %q", c.PostForm("templateId")))
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))

	if err := c.Request.ParseForm(); err != nil {
		s.redirect(c, "", err)
		return
	}
	overrides := map[string]string{}
	for key, values := range c.Request.PostForm {
		if field, ok := strings.CutPrefix(key, overridePrefix); ok && field != "" && len(values) > 0 {
			overrides[field] = values[0]
		}
	}

	newID, err := s.manager.CreateGroupFromTemplate(c.Request.Context(), templateID, name, overrides)
	if err != nil {
		s.redirect(c, "", err)
		return
	}
	s.redirect(c, fmt.Sprintf("Created library %s with ID %d", name, newID), nil)
}

// redirect answers a form post with 303 See Other back to the page, carrying either a
// message or the error text.
func (s *Server) redirect(c *gin.Context, msg string, err error) {
	q := url.Values{}
	if err != nil {
		_ = c.Error(err)
		q.Set("err", userMessage(err))
	} else if msg != "" {
		q.Set("msg", msg)
	}
	target := "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

func userMessage(err error) string {
	if envmgr.IsRemote(err) {
		return "Azure DevOps request failed: " + err.Error()
	}
	return err.Error()
}
