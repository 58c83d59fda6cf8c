package polifin

import (
	"strings"
)

// Report is the result of a finished wizard run: an *IncomeStatement or a
// *BalanceSheet. Reports are not modified after they are built.
type Report interface {
	Kind() Kind
	// Rows lists every input and subtotal in display order.
	Rows() []Row
	// Summary lists only the headline figures.
	Summary() []Row
}

type RowKind int

const (
	RowHeader RowKind = iota
	RowLine
	RowSubtotal
	RowTotal
)

// Row is one line of a rendered report. Header rows carry no amount.
type Row struct {
	Label  string
	Amount Amount
	Kind   RowKind
	Depth  int
}

// Text returns the label indented by depth.
func (r Row) Text() string {
	return strings.Repeat("  ", r.Depth) + r.Label
}

// Value returns the formatted amount, or "" for header rows.
func (r Row) Value() string {
	if r.Kind == RowHeader {
		return ""
	}
	return r.Amount.Format()
}

func header(label string, depth int) Row {
	return Row{Label: label, Kind: RowHeader, Depth: depth}
}

func line(label string, a Amount, depth int) Row {
	return Row{Label: label, Amount: a, Kind: RowLine, Depth: depth}
}

func subtotal(label string, a Amount, depth int) Row {
	return Row{Label: label, Amount: a, Kind: RowSubtotal, Depth: depth}
}

func total(label string, a Amount) Row {
	return Row{Label: label, Amount: a, Kind: RowTotal}
}

// Line is a single captured account inside a Group.
type Line struct {
	ID     FieldID `json:"id"`
	Label  string  `json:"cuenta"`
	Amount Amount  `json:"monto"`
}

func (l *Line) UnmarshalJSON(data []byte) error {
	type plain Line
	return decodeStrict(data, "detalle", (*plain)(l))
}

// Group is a detail list of accounts with its subtotal. Zero lines are
// kept so the detail always shows every account of the group.
type Group struct {
	Label string `json:"etiqueta"`
	Lines []Line `json:"detalle"`
	Total Amount `json:"total"`
}

func newGroup(label string, s *Store, fields ...Field) Group {
	g := Group{Label: label}
	for _, f := range fields {
		g.add(Line{ID: f.ID, Label: f.Label, Amount: s.value(f)})
	}
	return g
}

func (g *Group) add(l Line) {
	g.Lines = append(g.Lines, l)
	g.Total = g.Total.Add(l.Amount)
}

// rows renders the group as a header, its lines and a subtotal.
func (g Group) rows(depth int) []Row {
	rows := []Row{header(g.Label, depth)}
	for _, l := range g.Lines {
		rows = append(rows, line(l.Label, l.Amount, depth+1))
	}
	return append(rows, subtotal("Total "+strings.ToLower(g.Label), g.Total, depth))
}

func (g *Group) UnmarshalJSON(data []byte) error {
	type plain Group
	return decodeStrict(data, "grupo", (*plain)(g))
}
