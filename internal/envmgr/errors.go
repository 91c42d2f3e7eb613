package envmgr

import (
	"errors"
	"fmt"
)

var (
	ErrVariableNotFound = errors.New("variable not found")
	ErrVariableExists   = errors.New("variable already exists")
	ErrGroupNotFound    = errors.New("variable group not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrClosed           = errors.New("client is closed")
)

// RemoteError reports a transport, HTTP or decoding failure of a call to Azure DevOps.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err originates from a failed call to Azure DevOps.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
