package envmgr

// SecretMarker replaces the value of every secret variable returned by a read operation.
const SecretMarker = "***"

type PipelineDefinition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	Kind string `json:"kind"`
}

type Variable struct {
	Value      string `json:"value"`
	IsSecret   bool   `json:"isSecret"`
	IsReadOnly bool   `json:"isReadOnly"`
}

// VariableGroup is a variable library with secret values already masked.
type VariableGroup struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Variables   map[string]Variable `json:"variables"`
}

// VariableEntry is one variable of the flattened view across all groups.
type VariableEntry struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Library  string `json:"library"`
	IsSecret bool   `json:"isSecret"`
}

type Run struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	State  string `json:"state"`
	Result string `json:"result,omitempty"`
}

// RunOptions tune QueuePipelineRun. The zero value queues the default branch.
type RunOptions struct {
	// Branch selects the ref of the pipeline's own repository. A missing refs/ prefix
	// is completed to refs/heads/.
	Branch string
}
