package domain

import (
	"encoding/json"
	"fmt"

	"github.com/quez2777/hodos-360-website/pkg/charts"
)

// Request is the payload of one user-triggered operation: the action name
// plus the raw values of the wired input controls. It is created at
// click/load time, consumed once, and discarded.
type Request struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
}

// Output is one display-ready value of a Result. Exactly one of the value
// fields is set, matching Kind.
type Output struct {
	Kind   Kind           `json:"kind"`
	Text   string         `json:"text,omitempty"`
	JSON   map[string]any `json:"json,omitempty"`
	Table  *Table         `json:"table,omitempty"`
	Figure *charts.Figure `json:"figure,omitempty"`
}

// Result is the fixed-arity tuple returned by a handler. Its length and
// kinds must match the action's registered output fields.
type Result []Output

// Text wraps a string as a text output.
func Text(s string) Output { return Output{Kind: KindText, Text: s} }

// JSON wraps a mapping as a structured output. A nil mapping is the empty
// default used by the error policy.
func JSON(m map[string]any) Output {
	if m == nil {
		m = map[string]any{}
	}
	return Output{Kind: KindJSON, JSON: m}
}

// TableOf wraps tabular rows as an output.
func TableOf(t *Table) Output { return Output{Kind: KindTable, Table: t} }

// FigureOf wraps a chart descriptor as an output.
func FigureOf(f *charts.Figure) Output { return Output{Kind: KindFigure, Figure: f} }

// Zero returns the empty default output for a kind. The uniform error
// policy fills non-text outputs with these.
func Zero(k Kind) Output {
	switch k {
	case KindJSON:
		return JSON(nil)
	case KindTable:
		return TableOf(&Table{})
	case KindFigure:
		return Output{Kind: KindFigure}
	default:
		return Text("")
	}
}

// Matches reports whether the output carries the given kind.
func (o Output) Matches(k Kind) bool { return o.Kind == k }

// String renders a compact debug representation.
func (o Output) String() string {
	switch o.Kind {
	case KindText:
		return fmt.Sprintf("text(%d bytes)", len(o.Text))
	case KindJSON:
		b, _ := json.Marshal(o.JSON)
		return fmt.Sprintf("json(%s)", b)
	case KindTable:
		if o.Table == nil {
			return "table(nil)"
		}
		return fmt.Sprintf("table(%d rows)", len(o.Table.Rows))
	case KindFigure:
		if o.Figure == nil {
			return "figure(nil)"
		}
		return fmt.Sprintf("figure(%s)", o.Figure.Title)
	}
	return string(o.Kind)
}

// Table is row-oriented tabular data with ordered headers.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Append adds a row. Rows shorter or longer than the header set are a
// programming error surfaced at append time rather than render time.
func (t *Table) Append(cells ...string) error {
	if len(cells) != len(t.Headers) {
		return fmt.Errorf("row has %d cells, table has %d headers", len(cells), len(t.Headers))
	}
	t.Rows = append(t.Rows, cells)
	return nil
}

// MustAppend adds a row and panics on arity mismatch. Handlers build their
// tables from literals, so a mismatch is always a bug.
func (t *Table) MustAppend(cells ...string) {
	if err := t.Append(cells...); err != nil {
		panic(err)
	}
}
