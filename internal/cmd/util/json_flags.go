package util

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tmeckel/azdo-envmgr/internal/iostreams"
	"github.com/tmeckel/azdo-envmgr/internal/jq"
)

type Exporter interface {
	Fields() []string
	Write(ios *iostreams.IOStreams, data any) error
}

const jsonSelectAllSentinel = "*"

// AddJSONFlags registers --json and --jq on cmd. When --json is given the exporter is
// stored in exportTarget before the command runs; otherwise exportTarget is set to nil.
func AddJSONFlags(cmd *cobra.Command, exportTarget *Exporter, fields []string) {
	f := cmd.Flags()
	f.StringSlice("json", nil, "Output JSON with the specified `fields`; '*' selects all. Prefix a field with '-' to exclude it.")
	f.StringP("jq", "q", "", "Filter JSON output using a jq `expression`")

	_ = cmd.RegisterFlagCompletionFunc("json", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var prefix string
		if idx := strings.LastIndexByte(toComplete, ','); idx >= 0 {
			prefix = toComplete[:idx+1]
			toComplete = toComplete[idx+1:]
		}
		toComplete = strings.ToLower(toComplete)
		results := lo.FilterMap(fields, func(f string, _ int) (string, bool) {
			return prefix + f, strings.HasPrefix(strings.ToLower(f), toComplete)
		})
		sort.Strings(results)
		return results, cobra.ShellCompDirectiveNoSpace
	})

	oldPreRun := cmd.PreRunE
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		if oldPreRun != nil {
			if err := oldPreRun(c, args); err != nil {
				return err
			}
		}
		export, err := checkJSONFlags(c)
		if err != nil {
			return err
		}
		if export == nil {
			*exportTarget = nil
			return nil
		}
		resolved, err := resolveJSONSelection(export.fields, fields)
		if err != nil {
			return err
		}
		export.fields = resolved
		*exportTarget = export
		return nil
	}

	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations["help:json-fields"] = strings.Join(fields, ",")
}

// resolveJSONSelection applies include and "-field" exclude selectors to the allowed
// fields. Without any include the selection starts from every allowed field.
func resolveJSONSelection(raw []string, allowed []string) ([]string, error) {
	var include, exclude []string
	for _, item := range raw {
		if item == "" || item == jsonSelectAllSentinel {
			continue
		}
		remove := strings.HasPrefix(item, "-")
		item = strings.TrimPrefix(item, "-")
		if item == "" {
			return nil, FlagErrorf(`invalid JSON field selector "-"`)
		}
		if !slices.Contains(allowed, item) {
			sorted := slices.Clone(allowed)
			sort.Strings(sorted)
			return nil, FlagErrorf("unknown JSON field: %q\navailable fields:\n  %s", item, strings.Join(sorted, "\n  "))
		}
		if remove {
			exclude = append(exclude, item)
		} else {
			include = append(include, item)
		}
	}

	result := allowed
	if len(include) > 0 {
		result = lo.Uniq(include)
	}
	result = lo.Without(result, exclude...)
	if len(result) == 0 {
		return nil, FlagErrorf("no JSON fields selected; all fields were excluded")
	}
	return result, nil
}

func checkJSONFlags(cmd *cobra.Command) (*jsonExporter, error) {
	f := cmd.Flags()
	jsonFlag := f.Lookup("json")
	jqFlag := f.Lookup("jq")

	if jsonFlag.Changed {
		jv := jsonFlag.Value.(pflag.SliceValue)
		return &jsonExporter{
			fields: jv.GetSlice(),
			filter: jqFlag.Value.String(),
		}, nil
	} else if jqFlag.Changed {
		return nil, FlagErrorf("cannot use `--jq` without specifying `--json`")
	}
	return nil, nil
}

type jsonExporter struct {
	fields []string // only print fields matching names from this array
	filter string   // jq expression
}

func (e *jsonExporter) Fields() []string {
	return e.fields
}

// Write serializes data as JSON. Objects, and objects inside a slice, are reduced to the
// selected fields using their JSON names before the jq filter runs.
func (e *jsonExporter) Write(ios *iostreams.IOStreams, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	generic = selectFields(generic, e.fields)

	if e.filter != "" {
		generic, err = jq.EvaluateData(e.filter, generic)
		if err != nil {
			return err
		}
	}

	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if ios.IsStdoutTTY() {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(generic); err != nil {
		return err
	}
	_, err = io.Copy(ios.Out, &buf)
	return err
}

func selectFields(v any, fields []string) any {
	if len(fields) == 0 {
		return v
	}
	switch t := v.(type) {
	case []any:
		return lo.Map(t, func(item any, _ int) any {
			return selectFields(item, fields)
		})
	case map[string]any:
		return lo.PickByKeys(t, fields)
	default:
		return v
	}
}
