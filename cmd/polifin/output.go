package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	diffpatch "github.com/sourcegraph/go-diff-patch"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
	"github.com/manimanu0017-bot/Proyecto-finanzas/excel"
	"github.com/manimanu0017-bot/Proyecto-finanzas/internal/config"
	"github.com/manimanu0017-bot/Proyecto-finanzas/pdf"
	"github.com/manimanu0017-bot/Proyecto-finanzas/render"
)

// selectReports returns the reports of doc, or only the one of kind when
// kind is set.
func selectReports(doc *polifin.Document, kind string) []polifin.Report {
	if kind == "" {
		return doc.Reports()
	}
	r := doc.Lookup(mustKind(kind))
	if r == nil {
		fatal("Error selecting report", fmt.Errorf("snapshot has no %s", kind))
	}
	return []polifin.Report{r}
}

func runShow(cfg *config.Config) {
	doc := readSnapshot(*showFile)
	hdr := render.Header{
		Company:   firstNonEmpty(doc.Company, cfg.Company),
		Period:    doc.Period,
		Currency:  cfg.Currency,
		Generated: doc.GeneratedAt,
	}

	var parts []string
	for _, r := range selectReports(doc, *showKind) {
		switch {
		case *showAccountForm:
			parts = append(parts, render.AccountForm(hdr, r))
		case *showSummary:
			parts = append(parts, render.Summary(hdr, r))
		default:
			parts = append(parts, render.Markdown(hdr, r))
		}
	}
	out := strings.Join(parts, "\n")

	if !*showMarkdown {
		var err error
		out, err = render.Terminal(out, *showWidth, *showPlain)
		if err != nil {
			fatal("Error rendering snapshot", err)
		}
	}
	fmt.Print(out)
}

func runExport(cfg *config.Config) {
	doc := readSnapshot(*exportFile)
	reports := selectReports(doc, *exportKind)
	if len(reports) == 0 {
		fatal("Error exporting snapshot", polifin.ErrNoReports)
	}
	companyName := firstNonEmpty(doc.Company, cfg.Company)

	if *exportPDF == "" && *exportXLSX == "" && *exportCSV == "" {
		fatal("Error exporting snapshot", fmt.Errorf("nothing to do; give --pdf, --xlsx or --csv"))
	}

	if *exportPDF != "" {
		bs, err := pdf.ReportPDF(pdf.Options{
			Title:     cfg.Export.Title,
			Company:   companyName,
			Period:    doc.Period,
			Generated: doc.GeneratedAt,
			Color:     cfg.Export.Color,
		}, reports...)
		if err != nil {
			fatal("Error creating PDF file", err)
		}
		writeFile(*exportPDF, bs)
	}

	if *exportXLSX != "" {
		bs, err := excel.ReportXLSX(excel.Options{
			Title:   cfg.Export.Title,
			Company: companyName,
			Period:  doc.Period,
			Color:   cfg.Export.Color,
		}, reports...)
		if err != nil {
			fatal("Error creating Excel file", err)
		}
		writeFile(*exportXLSX, bs)
	}

	if *exportCSV != "" {
		var buf bytes.Buffer
		if err := polifin.WriteReportsCSV(&buf, *exportDetail, reports...); err != nil {
			fatal("Error creating CSV file", err)
		}
		writeFile(*exportCSV, buf.Bytes())
	}
}

func writeFile(path string, bs []byte) {
	if err := os.WriteFile(path, bs, 0o644); err != nil {
		fatal("Error writing file", err)
	}
	slog.Info("Wrote file", "file", path, "bytes", len(bs))
}

func runDiff() {
	old, err := snapshotText(*diffOld)
	if err != nil {
		fatal("Error reading snapshot", err)
	}
	cur, err := snapshotText(*diffNew)
	if err != nil {
		fatal("Error reading snapshot", err)
	}
	if old == cur {
		fmt.Println("Sin diferencias.")
		return
	}
	fmt.Print(diffpatch.GeneratePatch("reporte", old, cur))
}

// snapshotText renders every report of a snapshot as plain text.
func snapshotText(path string) (string, error) {
	doc := readSnapshot(path)
	var buf bytes.Buffer
	for _, r := range doc.Reports() {
		if err := polifin.Fprint(&buf, r); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func runFields(kind polifin.Kind) {
	fmt.Println(strings.ToUpper(kind.Title()))
	for i, sec := range kind.Sections() {
		fmt.Printf("\n%d. %s (%s)\n", i+1, sec.Title, sec.ID)
		for _, f := range sec.Fields {
			fmt.Printf("   %-66s %s\n", f.Label, f.ID)
		}
	}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
