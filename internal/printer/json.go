package printer

import (
	"encoding/json"
	"fmt"
	"io"
)

type JSONPrinter interface {
	Printer
}

// NewJSONPrinter renders the rows as a JSON array of objects keyed by column name.
func NewJSONPrinter(w io.Writer) (JSONPrinter, error) {
	return &jsonPrinter{
		out:  json.NewEncoder(w),
		rows: []map[string]string{},
	}, nil
}

type jsonPrinter struct {
	out     *json.Encoder
	columns []string
	current map[string]string
	rows    []map[string]string
}

func (jp *jsonPrinter) AddColumns(columns ...string) {
	jp.columns = append(jp.columns, columns...)
}

func (jp *jsonPrinter) AddField(s string, _ ...FieldOption) {
	if jp.current == nil {
		jp.current = map[string]string{}
	}
	key := fmt.Sprintf("col%d", len(jp.current))
	if len(jp.current) < len(jp.columns) {
		key = jp.columns[len(jp.current)]
	}
	jp.current[key] = s
}

func (jp *jsonPrinter) EndRow() {
	if jp.current != nil {
		jp.rows = append(jp.rows, jp.current)
	}
	jp.current = nil
}

func (jp *jsonPrinter) Render() error {
	jp.EndRow()
	return jp.out.Encode(jp.rows)
}
