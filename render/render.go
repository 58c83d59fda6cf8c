// Package render turns finished reports into markdown for the terminal.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
)

// Header is the data printed above a report. An empty Currency prints
// plain grouped amounts.
type Header struct {
	Company   string
	Period    string
	Currency  string
	Generated time.Time
}

// Markdown renders every row of r.
func Markdown(h Header, r polifin.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Kind().Title())
	writeHeader(doc, h)
	doc.Table(rowTable(h, r.Rows()))

	return doc.String()
}

// Summary renders only the headline figures of r.
func Summary(h Header, r polifin.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s: resumen", r.Kind().Title()))
	writeHeader(doc, h)
	doc.Table(rowTable(h, r.Summary()))

	return doc.String()
}

// AccountForm renders a balance sheet with assets on the left and
// liabilities and equity on the right. Other reports fall back to Summary.
func AccountForm(h Header, r polifin.Report) string {
	b, ok := r.(*polifin.BalanceSheet)
	if !ok {
		return Summary(h, r)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s en forma de cuenta", b.Kind().Title()))
	writeHeader(doc, h)

	left := groupCells(h, b.Assets())
	right := groupCells(h, b.Liabilities())
	right = append(right,
		[2]string{md.Bold("Total pasivo"), md.Bold(amount(h, b.TotalLiabilities))},
		[2]string{md.Bold("Capital contable"), md.Bold(amount(h, b.Equity))},
	)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Activo", "", "Pasivo y capital", ""},
	}
	for i := 0; i < max(len(left), len(right)); i++ {
		var lc, rc [2]string
		if i < len(left) {
			lc = left[i]
		}
		if i < len(right) {
			rc = right[i]
		}
		table.Rows = append(table.Rows, []string{lc[0], lc[1], rc[0], rc[1]})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total activo"), md.Bold(amount(h, b.TotalAssets)),
		md.Bold("Total pasivo y capital"), md.Bold(amount(h, b.TotalLiabilities.Add(b.Equity))),
	})
	doc.Table(table)

	return doc.String()
}

// Terminal styles markdown for a terminal of the given width. The style
// follows the terminal background unless plain is set.
func Terminal(markdown string, width int, plain bool) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return tr.Render(markdown)
}

func writeHeader(doc *md.Markdown, h Header) {
	var lines []string
	if h.Company != "" {
		lines = append(lines, fmt.Sprintf("%s %s", md.Bold("Empresa:"), h.Company))
	}
	if h.Period != "" {
		lines = append(lines, fmt.Sprintf("%s %s", md.Bold("Periodo:"), h.Period))
	}
	if !h.Generated.IsZero() {
		lines = append(lines, fmt.Sprintf("%s %s", md.Bold("Generado:"), h.Generated.Format("02/01/2006 15:04")))
	}
	if len(lines) > 0 {
		doc.PlainText(strings.Join(lines, "  \n"))
	}
}

func rowTable(h Header, rows []polifin.Row) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Cuenta", "Monto"},
	}
	for _, row := range rows {
		label := indent(row.Depth) + row.Label
		value := ""
		if row.Kind != polifin.RowHeader {
			value = amount(h, row.Amount)
		}
		switch row.Kind {
		case polifin.RowHeader, polifin.RowSubtotal:
			label = indent(row.Depth) + md.Bold(row.Label)
			value = boldIf(value)
		case polifin.RowTotal:
			label = md.Bold(strings.ToUpper(row.Label))
			value = boldIf(value)
		}
		table.Rows = append(table.Rows, []string{label, value})
	}
	return table
}

func groupCells(h Header, groups []polifin.Group) [][2]string {
	var cells [][2]string
	for _, g := range groups {
		cells = append(cells, [2]string{md.Bold(g.Label), ""})
		for _, l := range g.Lines {
			cells = append(cells, [2]string{indent(1) + l.Label, amount(h, l.Amount)})
		}
		cells = append(cells, [2]string{indent(1) + md.Italic("Total"), md.Italic(amount(h, g.Total))})
	}
	return cells
}

func amount(h Header, a polifin.Amount) string {
	if h.Currency != "" {
		return a.Money(h.Currency)
	}
	return a.Format()
}

// indent uses non-breaking spaces, which markdown tables keep.
func indent(depth int) string {
	return strings.Repeat("\u00a0\u00a0\u00a0", depth)
}

func boldIf(s string) string {
	if s == "" {
		return s
	}
	return md.Bold(s)
}
