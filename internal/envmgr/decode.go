package envmgr

import (
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/taskagent"
	"github.com/tmeckel/azdo-envmgr/internal/types"
)

// rawVariable is a variable as stored remotely. Value is nil for secrets, the service
// never returns their value.
type rawVariable struct {
	Value      *string
	IsSecret   bool
	IsReadOnly bool
}

// decodeVariable reads a value of VariableGroup.Variables. Decoded JSON yields
// map[string]interface{}; values built in code are taskagent.VariableValue.
func decodeVariable(raw interface{}) rawVariable {
	switch v := raw.(type) {
	case nil:
		return rawVariable{}
	case map[string]interface{}:
		out := rawVariable{}
		if val, ok := v["value"]; ok && val != nil {
			out.Value = types.ToPtr(valueString(val))
		}
		out.IsSecret, _ = v["isSecret"].(bool)
		out.IsReadOnly, _ = v["isReadOnly"].(bool)
		return out
	case taskagent.VariableValue:
		return rawVariable{
			Value:      v.Value,
			IsSecret:   types.GetValue(v.IsSecret, false),
			IsReadOnly: types.GetValue(v.IsReadOnly, false),
		}
	case *taskagent.VariableValue:
		if v == nil {
			return rawVariable{}
		}
		return decodeVariable(*v)
	default:
		return rawVariable{Value: types.ToPtr(valueString(v))}
	}
}

func valueString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func (r rawVariable) encode() map[string]interface{} {
	var value interface{}
	if r.Value != nil {
		value = *r.Value
	}
	return map[string]interface{}{
		"value":      value,
		"isSecret":   r.IsSecret,
		"isReadOnly": r.IsReadOnly,
	}
}

func (r rawVariable) masked() Variable {
	v := Variable{
		Value:      types.GetValue(r.Value, ""),
		IsSecret:   r.IsSecret,
		IsReadOnly: r.IsReadOnly,
	}
	if r.IsSecret {
		v.Value = SecretMarker
	}
	return v
}
