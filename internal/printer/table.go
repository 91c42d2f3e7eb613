package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tmeckel/azdo-envmgr/internal/text"
)

const (
	tableColumnDelimiter = "  "
	minColumnWidth       = 5
)

type TablePrinter interface {
	Printer
}

// NewTablePrinter initializes a table printer with terminal mode and terminal width. When terminal mode is enabled, the
// output will be human-readable, column-formatted to fit available width, and rendered with color support.
// In non-terminal mode, the output is tab-separated and all truncation of values is disabled.
func NewTablePrinter(w io.Writer, isTTY bool, maxWidth int) (TablePrinter, error) {
	if isTTY && maxWidth <= 0 {
		return nil, fmt.Errorf("invalid table width %d", maxWidth)
	}
	return &tablePrinter{
		out:         w,
		isTTY:       isTTY,
		maxWidth:    maxWidth,
		headerStyle: lipgloss.NewRenderer(w).NewStyle().Bold(true),
	}, nil
}

type tablePrinter struct {
	out         io.Writer
	isTTY       bool
	maxWidth    int
	headerStyle lipgloss.Style
	columns     []string
	rows        [][]tableField
	current     []tableField
}

var _ TablePrinter = &tablePrinter{}

func (t *tablePrinter) AddColumns(columns ...string) {
	t.columns = append(t.columns, columns...)
}

func (t *tablePrinter) AddField(s string, opts ...FieldOption) {
	f := tableField{
		text: s,
		fit:  text.Truncate,
	}
	for _, opt := range opts {
		opt(&f)
	}
	t.current = append(t.current, f)
}

func (t *tablePrinter) EndRow() {
	if len(t.current) > 0 {
		t.rows = append(t.rows, t.current)
	}
	t.current = nil
}

func (t *tablePrinter) Render() error {
	t.EndRow()
	if len(t.rows) == 0 {
		return nil
	}
	if !t.isTTY {
		return t.renderPlain()
	}

	rows := t.rows
	if len(t.columns) > 0 {
		header := make([]tableField, len(t.columns))
		for i, c := range t.columns {
			header[i] = tableField{
				text:  strings.ToUpper(c),
				fit:   text.Truncate,
				style: func(s string) string { return t.headerStyle.Render(s) },
			}
		}
		rows = append([][]tableField{header}, rows...)
	}

	widths := t.columnWidths(rows)
	for _, row := range rows {
		var line strings.Builder
		for i, f := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				line.WriteString(tableColumnDelimiter)
			}
			s := f.text
			if f.fit != nil {
				s = f.fit(widths[i], s)
			}
			if i < len(row)-1 {
				s = text.PadRight(widths[i], s)
			}
			if f.style != nil {
				s = f.style(s)
			}
			line.WriteString(s)
		}
		if _, err := fmt.Fprintln(t.out, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (t *tablePrinter) renderPlain() error {
	for _, row := range t.rows {
		fields := make([]string, len(row))
		for i, f := range row {
			fields[i] = f.text
		}
		if _, err := fmt.Fprintln(t.out, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths keeps every column that fits an even share of the width at its natural
// width and splits what is left among the others.
func (t *tablePrinter) columnWidths(rows [][]tableField) []int {
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	natural := make([]int, numCols)
	for _, row := range rows {
		for i, f := range row {
			natural[i] = max(natural[i], text.DisplayWidth(f.text))
		}
	}

	available := t.maxWidth - len(tableColumnDelimiter)*(numCols-1)
	total := 0
	for _, w := range natural {
		total += w
	}
	if total <= available {
		return natural
	}

	widths := make([]int, numCols)
	settled := make([]bool, numCols)
	remaining, flexible := available, numCols
	for changed := true; changed && flexible > 0; {
		changed = false
		share := remaining / flexible
		for i, w := range natural {
			if !settled[i] && w <= share {
				widths[i] = w
				settled[i] = true
				remaining -= w
				flexible--
				changed = true
			}
		}
	}
	if flexible > 0 {
		share := max(remaining/flexible, minColumnWidth)
		for i := range widths {
			if !settled[i] {
				widths[i] = share
			}
		}
	}
	return widths
}
