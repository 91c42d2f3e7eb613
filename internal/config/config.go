// Package config holds the process-wide configuration of azdo-envmgr: the Azure DevOps
// organization, the personal access token and the project every operation is scoped to.
// A Config is immutable once constructed and is passed by value.
package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/purell"
)

const (
	DefaultListen = ":8080"

	envOrganizationURL = "AZDO_ORG_URL"
	envToken           = "AZDO_TOKEN"
	envProject         = "AZDO_PROJECT"
	envListen          = "AZDO_ENVMGR_LISTEN"
)

// DefaultHighlight lists the environment variables the web page marks as the
// fields an operator normally edits when preparing a new environment.
var DefaultHighlight = []string{
	"addressFrontIMG",
	"addressMigrationsIMG",
	"addressPanelIMG",
	"addressPerconaIMG",
	"app1Port",
	"app2Port",
	"domena",
	"environment",
	"postgresPort",
}

type Config struct {
	organizationURL string
	token           string
	project         string
	listen          string
	highlight       []string
}

type Option func(*Config)

func WithListen(addr string) Option {
	return func(c *Config) {
		if strings.TrimSpace(addr) != "" {
			c.listen = strings.TrimSpace(addr)
		}
	}
}

func WithHighlight(fields []string) Option {
	return func(c *Config) {
		if len(fields) > 0 {
			c.highlight = slices.Clone(fields)
		}
	}
}

// New validates the three required values and returns an immutable Config.
// Missing values are reported together in a *MissingConfigError.
func New(organizationURL, token, project string, opts ...Option) (Config, error) {
	organizationURL = strings.TrimSpace(organizationURL)
	token = strings.TrimSpace(token)
	project = strings.TrimSpace(project)

	var missing []string
	if organizationURL == "" {
		missing = append(missing, envOrganizationURL)
	}
	if token == "" {
		missing = append(missing, envToken)
	}
	if project == "" {
		missing = append(missing, envProject)
	}
	if len(missing) > 0 {
		return Config{}, &MissingConfigError{Keys: missing}
	}

	normalized, err := NormalizeOrganizationURL(organizationURL)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		organizationURL: normalized,
		token:           token,
		project:         project,
		listen:          DefaultListen,
		highlight:       slices.Clone(DefaultHighlight),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// NormalizeOrganizationURL cleans up an organization URL and rejects anything that is
// not an absolute http(s) URL.
func NormalizeOrganizationURL(raw string) (string, error) {
	normalized, err := purell.NormalizeURLString(strings.TrimSpace(raw),
		purell.FlagsSafe|purell.FlagRemoveTrailingSlash|purell.FlagRemoveDotSegments|purell.FlagRemoveDuplicateSlashes)
	if err != nil {
		return "", fmt.Errorf("invalid organization URL %q: %w", raw, err)
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("invalid organization URL %q: %w", raw, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return "", fmt.Errorf("invalid organization URL %q: expected an absolute http(s) URL", raw)
	}
	return normalized, nil
}

func (c Config) OrganizationURL() string { return c.organizationURL }

func (c Config) Token() string { return c.token }

func (c Config) Project() string { return c.project }

func (c Config) Listen() string { return c.listen }

// Highlight returns a copy of the field names highlighted in the web page.
func (c Config) Highlight() []string { return slices.Clone(c.highlight) }

// IsZero reports whether c was never initialized through New.
func (c Config) IsZero() bool { return c.organizationURL == "" }

var rxOrgURL = regexp.MustCompile(`//(dev\.azure\.com/(?P<organization>[^/]+)|(?P<organization>[^.]+)\.visualstudio\.com)`)

// Organization derives the organization name from the URL. For Azure DevOps Server
// collections the last path segment (or the host) is used.
func (c Config) Organization() string {
	return OrganizationFromURL(c.organizationURL)
}

func OrganizationFromURL(organizationURL string) string {
	if match := rxOrgURL.FindStringSubmatch(organizationURL); len(match) > 0 {
		return strings.ToLower(match[2] + match[3])
	}
	u, err := url.Parse(organizationURL)
	if err != nil {
		return ""
	}
	if p := strings.Trim(u.Path, "/"); p != "" {
		segments := strings.Split(p, "/")
		return strings.ToLower(segments[len(segments)-1])
	}
	return strings.ToLower(u.Hostname())
}

// String never includes the token.
func (c Config) String() string {
	return fmt.Sprintf("organization=%s project=%s", c.organizationURL, c.project)
}
