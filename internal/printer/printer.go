// Package printer renders rows of fields as an aligned table, a key/value list or JSON.
package printer

import "fmt"

// Printer collects rows field by field. Render writes them out in one go.
type Printer interface {
	AddColumns(columns ...string)
	AddField(string, ...FieldOption)
	EndRow()
	Render() error
}

type UnsupportedPrinterError struct {
	kind string
}

func (e *UnsupportedPrinterError) Error() string {
	return fmt.Sprintf("unsupported printer type %s", e.kind)
}

func NewUnsupportedPrinterError(kind string) error {
	return &UnsupportedPrinterError{kind: kind}
}

type tableField struct {
	text string
	// fit shortens text to a column width; nil keeps the full value.
	fit   func(int, string) string
	style func(string) string
}

type FieldOption func(*tableField)

// WithoutTruncation keeps the whole value even when the table is narrower than the
// terminal. Identifiers use it so they can be copied from the output.
func WithoutTruncation() FieldOption {
	return func(f *tableField) { f.fit = nil }
}
