package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
	"github.com/manimanu0017-bot/Proyecto-finanzas/internal/config"
	"github.com/manimanu0017-bot/Proyecto-finanzas/tui"
)

func runWizard(cfg *config.Config, kind polifin.Kind) {
	w := polifin.New(kind, polifin.WithBalanceOptions(cfg.BalanceOptions()))
	w, err := tui.Run(w, tui.WithColor(cfg.Export.Color))
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Captura abandonada; no se generó ningún reporte.")
		os.Exit(1)
	} else if err != nil {
		fatal("Error running wizard", err)
	}

	finish(cfg, w.Report(), cfg.Company, *period, *wizardSave, *wizardSummary)
}

func runCompute(cfg *config.Config) {
	input := io.Reader(os.Stdin)
	if *computeInput != "" {
		fd, err := os.Open(*computeInput)
		if err != nil {
			fatal("Error opening answers file", err)
		}
		defer fd.Close()
		input = fd
	}

	input, err := polifin.NewDecodingReader(input, cfg.Input.Encoding)
	if err != nil {
		fatal("Error reading answers file", err)
	}
	answers, err := polifin.ParseAnswers(input)
	if err != nil {
		fatal("Error parsing answers file", err)
	}
	slog.Debug("Parsed answers", "kind", answers.Kind, "values", len(answers.Values))

	w, err := answers.Wizard(polifin.WithBalanceOptions(cfg.BalanceOptions()))
	if err != nil {
		fatal("Error computing report", err)
	}

	companyName := cfg.Company
	if answers.Company != "" && *company == "" {
		companyName = answers.Company
	}
	periodLabel := *period
	if periodLabel == "" {
		periodLabel = answers.Period
	}
	finish(cfg, w.Report(), companyName, periodLabel, *computeSave, *computeSummary)
}

// finish prints the report and, when save is set, adds it to that snapshot.
func finish(cfg *config.Config, r polifin.Report, companyName, periodLabel, save string, summary bool) {
	rows := r.Rows()
	if summary {
		rows = r.Summary()
	}
	title := r.Kind().Title()
	if companyName != "" {
		title = companyName + ": " + title
	}
	if err := polifin.FprintRows(os.Stdout, title, rows); err != nil {
		fatal("Error printing report", err)
	}

	if save == "" {
		return
	}
	doc, err := loadOrCreate(save, companyName, periodLabel)
	if err != nil {
		fatal("Error reading snapshot", err)
	}
	doc.Put(r)
	doc.GeneratedAt = time.Now()

	var buf bytes.Buffer
	if err := polifin.Encode(&buf, doc); err != nil {
		fatal("Error encoding snapshot", err)
	}
	if err := os.WriteFile(save, buf.Bytes(), 0o644); err != nil {
		fatal("Error writing snapshot", err)
	}
	slog.Info("Saved snapshot", "file", save, "kind", r.Kind())
}

// loadOrCreate reads the snapshot at path so a second report can be added
// to it, or starts a new one when the file does not exist.
func loadOrCreate(path, companyName, periodLabel string) (*polifin.Document, error) {
	fd, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return polifin.NewDocument(companyName, periodLabel, time.Now()), nil
	} else if err != nil {
		return nil, err
	}
	defer fd.Close()

	doc, err := polifin.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if companyName != "" {
		doc.Company = companyName
	}
	if periodLabel != "" {
		doc.Period = periodLabel
	}
	return doc, nil
}

func readSnapshot(path string) *polifin.Document {
	fd, err := os.Open(path)
	if err != nil {
		fatal("Error opening snapshot", err)
	}
	defer fd.Close()

	doc, err := polifin.Decode(fd)
	if err != nil {
		fatal("Error reading snapshot", err)
	}
	return doc
}
