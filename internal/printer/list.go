package printer

import (
	"fmt"
	"io"
	"strings"
)

// ListPrinter writes every row as "Column: value" lines. Rows are separated by a blank line.
type ListPrinter interface {
	Printer
}

func NewListPrinter(w io.Writer) (ListPrinter, error) {
	return &listPrinter{out: w}, nil
}

type listPrinter struct {
	out     io.Writer
	columns []string
	row     []string
	rows    [][]string
}

var _ ListPrinter = (*listPrinter)(nil)

func (p *listPrinter) AddColumns(columns ...string) {
	p.columns = append(p.columns, columns...)
}

func (p *listPrinter) AddField(s string, _ ...FieldOption) {
	p.row = append(p.row, s)
}

func (p *listPrinter) EndRow() {
	if len(p.row) > 0 {
		p.rows = append(p.rows, p.row)
	}
	p.row = nil
}

func (p *listPrinter) Render() error {
	p.EndRow()
	var b strings.Builder
	for i, row := range p.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for col, value := range row {
			fmt.Fprintf(&b, "%s: %s\n", p.label(col), value)
		}
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

// label names unnamed trailing fields after their position.
func (p *listPrinter) label(col int) string {
	if col < len(p.columns) {
		return p.columns[col]
	}
	return fmt.Sprintf("col%d", col)
}
