// Package pdf writes finished reports as printable Letter-size documents.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
)

// DefaultColor is the banner color used when Options.Color is empty.
const DefaultColor = "#7A003C"

type Options struct {
	Title     string
	Company   string
	Period    string
	Generated time.Time
	Color     string
}

const (
	labelWidth  = 145
	amountWidth = 45
	lineHeight  = 6
)

// ReportPDF renders each report on its own page and returns the document.
func ReportPDF(opts Options, reports ...polifin.Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, polifin.ErrNoReports
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	if opts.Generated.IsZero() {
		opts.Generated = time.Now()
	}
	r, g, b, err := parseColor(opts.Color)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "Letter", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetCreator("polifin", true)
	doc.SetAuthor(opts.Company, true)
	doc.SetTitle(opts.Title, true)
	doc.SetSubject(opts.Period, true)
	doc.SetCreationDate(opts.Generated)
	doc.SetMargins(13, 15, 13)
	doc.SetAutoPageBreak(true, 18)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-14)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(110, 110, 110)
		footer := fmt.Sprintf("Generado el %s", opts.Generated.Format("02/01/2006 15:04"))
		doc.CellFormat(labelWidth, 8, tr(footer), "", 0, "L", false, 0, "")
		doc.CellFormat(amountWidth, 8, fmt.Sprintf("%d/{nb}", doc.PageNo()), "", 0, "R", false, 0, "")
	})

	for _, rep := range reports {
		doc.AddPage()
		writeBanner(doc, tr, opts, rep.Kind(), r, g, b)
		writeRows(doc, tr, rep.Rows())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBanner(doc *fpdf.Fpdf, tr func(string) string, opts Options, kind polifin.Kind, r, g, b int) {
	title := kind.Title()
	if opts.Title != "" {
		title = opts.Title + ": " + title
	}

	doc.SetFillColor(r, g, b)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 15)
	doc.CellFormat(labelWidth+amountWidth, 12, tr(title), "", 1, "L", true, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "I", 10)
	for _, s := range []string{opts.Company, opts.Period} {
		if s != "" {
			doc.CellFormat(labelWidth+amountWidth, lineHeight, tr(s), "", 1, "L", false, 0, "")
		}
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetDrawColor(r, g, b)
	doc.CellFormat(labelWidth, lineHeight+1, "Cuenta", "B", 0, "L", false, 0, "")
	doc.CellFormat(amountWidth, lineHeight+1, "Monto", "B", 1, "R", false, 0, "")
	doc.SetDrawColor(0, 0, 0)
}

func writeRows(doc *fpdf.Fpdf, tr func(string) string, rows []polifin.Row) {
	for _, row := range rows {
		label := strings.Repeat("    ", row.Depth) + row.Label
		switch row.Kind {
		case polifin.RowHeader:
			doc.SetFont("Helvetica", "B", 10)
			doc.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")
			doc.CellFormat(amountWidth, lineHeight, "", "", 1, "R", false, 0, "")
		case polifin.RowLine:
			doc.SetFont("Helvetica", "", 10)
			doc.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")
			doc.CellFormat(amountWidth, lineHeight, row.Value(), "", 1, "R", false, 0, "")
		case polifin.RowSubtotal:
			doc.SetFont("Helvetica", "B", 10)
			doc.CellFormat(labelWidth, lineHeight, tr(label), "T", 0, "L", false, 0, "")
			doc.CellFormat(amountWidth, lineHeight, row.Value(), "T", 1, "R", false, 0, "")
		case polifin.RowTotal:
			doc.SetFont("Helvetica", "B", 11)
			doc.SetFillColor(235, 235, 235)
			doc.CellFormat(labelWidth, lineHeight+2, tr(strings.ToUpper(label)), "TB", 0, "L", true, 0, "")
			doc.CellFormat(amountWidth, lineHeight+2, row.Value(), "TB", 1, "R", true, 0, "")
			doc.Ln(2)
		}
	}
}

// parseColor reads a #RRGGBB color.
func parseColor(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q", s)
	}
	return int(uint8(v >> 16)), int(uint8(v >> 8)), int(uint8(v)), nil
}
