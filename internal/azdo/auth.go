package azdo

import (
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

type Authenticator interface {
	GetAuthorizationHeader() (string, error)
}

type patAuthenticator struct {
	pat string
}

// NewPatAuthenticator authenticates with a personal access token sent as basic auth
// with an empty user name.
func NewPatAuthenticator(pat string) Authenticator {
	return &patAuthenticator{pat: pat}
}

func (a *patAuthenticator) GetAuthorizationHeader() (string, error) {
	if strings.TrimSpace(a.pat) == "" {
		return "", fmt.Errorf("personal access token is empty")
	}
	return azuredevops.CreateBasicAuthHeaderValue("", a.pat), nil
}
