package config

import (
	"fmt"
	"strings"
)

// MissingConfigError is returned when one of the required values could not be
// resolved from any source. The process refuses to start in that case.
type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s (set the environment variables or the azureDevOps section of %s)",
		strings.Join(e.Keys, ", "), configFileName)
}

type InvalidConfigFileError struct {
	Path string
	Err  error
}

func (e *InvalidConfigFileError) Error() string {
	return fmt.Sprintf("invalid config file %s: %s", e.Path, e.Err)
}

func (e *InvalidConfigFileError) Unwrap() error {
	return e.Err
}
