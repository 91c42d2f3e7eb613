// Package jq applies --jq expressions to command output.
package jq

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/itchyny/gojq"
)

// EvaluateData runs expr against data, which must consist of generic JSON values.
// Array input always yields an array. Otherwise a single result is returned unwrapped
// and multiple results are collected into an array. An empty expr returns data.
func EvaluateData(expr string, data any) (any, error) {
	if expr == "" {
		return data, nil
	}
	code, err := CompileExpression(expr)
	if err != nil {
		return nil, err
	}

	results := []any{}
	iter := code.Run(data)
	for v, ok := iter.Next(); ok; v, ok = iter.Next() {
		if err, isErr := v.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, err
		}
		results = append(results, v)
	}

	if _, isArray := data.([]any); isArray || len(results) > 1 {
		return results, nil
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// CompileExpression parses expr and marks the position of a syntax error. $ENV gives the
// expression access to the process environment.
func CompileExpression(expr string) (*gojq.Code, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		var perr *gojq.ParseError
		if !errors.As(err, &perr) {
			return nil, fmt.Errorf("failed to parse jq expression %q: %w", expr, err)
		}
		src, line, col := position(expr, perr.Offset-len(perr.Token))
		return nil, fmt.Errorf("failed to parse jq expression (line %d, column %d)\n    %s\n    %*c  %w",
			line, col, src, col, '^', err)
	}
	code, err := gojq.Compile(query, gojq.WithEnvironLoader(os.Environ))
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// position converts a byte offset into the line holding it and 1-based line and column.
func position(expr string, offset int) (string, int, int) {
	lines := strings.SplitAfter(expr, "\n")
	for i, l := range lines {
		if offset < len(l) || i == len(lines)-1 {
			return strings.TrimSuffix(l, "\n"), i + 1, offset + 1
		}
		offset -= len(l)
	}
	return expr, 1, offset + 1
}
