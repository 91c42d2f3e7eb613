package util

import "context"

// ContextAware is implemented by everything that carries the context remote calls run under.
type ContextAware interface {
	Context() context.Context
}
