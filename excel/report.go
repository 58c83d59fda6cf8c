// Package excel writes finished reports as xlsx workbooks, one sheet per
// report.
package excel

import (
	"github.com/xuri/excelize/v2"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
)

// DefaultColor is the header fill used when Options.Color is empty.
const DefaultColor = "#7A003C"

type Options struct {
	Title   string
	Company string
	Period  string
	Color   string
}

// SheetName returns the sheet a report of kind is written to.
func SheetName(kind polifin.Kind) string {
	switch kind {
	case polifin.IncomeStatementKind:
		return "EstadoResultados"
	case polifin.BalanceSheetKind:
		return "BalanceGeneral"
	default:
		return kind.String()
	}
}

// ReportXLSX renders reports into a workbook and returns its bytes. The
// first report goes on the active sheet.
func ReportXLSX(opts Options, reports ...polifin.Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, polifin.ErrNoReports
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "polifin",
		Company:     opts.Company,
		DocSecurity: 2,
	})
	_ = xlsx.SetDocProps(&excelize.DocProperties{
		Title:       opts.Title,
		Subject:     opts.Period,
		Creator:     opts.Company,
		Description: "Estados financieros",
	})

	first := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	for i, r := range reports {
		sheet := SheetName(r.Kind())
		if i == 0 {
			if err := xlsx.SetSheetName(first, sheet); err != nil {
				return nil, err
			}
		} else if _, err := xlsx.NewSheet(sheet); err != nil {
			return nil, err
		}
		writeReport(xlsx, sheet, opts, r)
	}
	xlsx.SetActiveSheet(0)

	// Increase size of window
	for i := range xlsx.WorkBook.BookViews.WorkBookView {
		xlsx.WorkBook.BookViews.WorkBookView[i].XWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].YWindow = "1000"
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowWidth = 25000
		xlsx.WorkBook.BookViews.WorkBookView[i].WindowHeight = 25000 / 3 * 2
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeReport(xlsx *excelize.File, sheet string, opts Options, r polifin.Report) {
	_ = xlsx.SetColWidth(sheet, "A", "A", 62)
	_ = xlsx.SetColWidth(sheet, "B", "B", 18)

	title := r.Kind().Title()
	if opts.Title != "" {
		title = opts.Title + ": " + title
	}

	row := 1
	_ = xlsx.SetCellValue(sheet, cell('A', row), title)
	_ = xlsx.MergeCell(sheet, cell('A', row), cell('B', row))
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), banner(opts.Color)))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), style)
	_ = xlsx.SetRowHeight(sheet, row, 24)
	row++

	for _, s := range []string{opts.Company, opts.Period} {
		if s == "" {
			continue
		}
		_ = xlsx.SetCellValue(sheet, cell('A', row), s)
		style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontItalic()))
		_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), style)
		row++
	}
	row++

	_ = xlsx.SetCellValue(sheet, cell('A', row), "Cuenta")
	_ = xlsx.SetCellValue(sheet, cell('B', row), "Monto")
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), style)
	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: cell('A', row+1),
		ActivePane:  "bottomLeft",
	})
	row++

	for _, rr := range r.Rows() {
		writeRow(xlsx, sheet, row, rr)
		row++
	}
}

func writeRow(xlsx *excelize.File, sheet string, row int, rr polifin.Row) {
	_ = xlsx.SetCellValue(sheet, cell('A', row), rr.Label)
	if rr.Kind != polifin.RowHeader {
		_ = xlsx.SetCellValue(sheet, cell('B', row), rr.Amount.Float64())
	}

	var label, amount *excelize.Style
	switch rr.Kind {
	case polifin.RowHeader:
		label = mergeStyles(defaultStyle(), fontBold(), indent(rr.Depth))
		amount = defaultStyle()
	case polifin.RowLine:
		label = mergeStyles(defaultStyle(), indent(rr.Depth))
		amount = mergeStyles(defaultStyle(), moneyFormat())
	case polifin.RowSubtotal:
		label = mergeStyles(defaultStyle(), fontBold(), indent(rr.Depth), thinBorder("top"))
		amount = mergeStyles(defaultStyle(), fontBold(), moneyFormat(), thinBorder("top"))
	case polifin.RowTotal:
		label = mergeStyles(defaultStyle(), fontBold(), thickBorder("top", "bottom"))
		amount = mergeStyles(defaultStyle(), fontBold(), moneyFormat(), thickBorder("top", "bottom"))
	}

	style, _ := xlsx.NewStyle(label)
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), style)
	style, _ = xlsx.NewStyle(amount)
	_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), style)
}
