package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
	"github.com/manimanu0017-bot/Proyecto-finanzas/internal/config"
)

var (
	configFile  = kingpin.Flag("config", "Configuration file").Envar("POLIFIN_CONFIG").Default(config.DefaultPath).String()
	company     = kingpin.Flag("company", "Company name for report headers").Envar("POLIFIN_COMPANY").String()
	period      = kingpin.Flag("period", "Period label for report headers").Envar("POLIFIN_PERIOD").String()
	currency    = kingpin.Flag("currency", "ISO currency code for amounts").Envar("POLIFIN_CURRENCY").String()
	doubleCount = kingpin.Flag("double-count-suppliers", "Also count Proveedores as a deferred liability").Bool()
	verbose     = kingpin.Flag("verbose", "Debug logging").Short('v').Bool()

	cmdWizard     = kingpin.Command("wizard", "Capture a report interactively")
	wizardKind    = cmdWizard.Arg("kind", "estado_resultados or balance").Required().String()
	wizardSave    = cmdWizard.Flag("save", "Add the report to this snapshot file").String()
	wizardSummary = cmdWizard.Flag("summary", "Print only the headline figures").Bool()

	cmdCompute     = kingpin.Command("compute", "Compute a report from an answers file")
	computeInput   = cmdCompute.Flag("input", "Answers file (default stdin)").ExistingFile()
	computeEncode  = cmdCompute.Flag("encoding", "Input encoding: utf-8, cp850, windows-1252, latin1").String()
	computeSave    = cmdCompute.Flag("save", "Add the report to this snapshot file").String()
	computeSummary = cmdCompute.Flag("summary", "Print only the headline figures").Bool()

	cmdShow         = kingpin.Command("show", "Show a saved snapshot")
	showFile        = cmdShow.Arg("snapshot", "Snapshot file").Required().ExistingFile()
	showKind        = cmdShow.Flag("kind", "Show only this report").String()
	showSummary     = cmdShow.Flag("summary", "Print only the headline figures").Bool()
	showAccountForm = cmdShow.Flag("account-form", "Balance sheet in account form").Bool()
	showPlain       = cmdShow.Flag("plain", "No terminal styling").Bool()
	showMarkdown    = cmdShow.Flag("markdown", "Print the markdown source").Bool()
	showWidth       = cmdShow.Flag("width", "Word wrap width").Default("100").Int()

	cmdExport    = kingpin.Command("export", "Export a saved snapshot")
	exportFile   = cmdExport.Arg("snapshot", "Snapshot file").Required().ExistingFile()
	exportPDF    = cmdExport.Flag("pdf", "Write a PDF document").String()
	exportXLSX   = cmdExport.Flag("xlsx", "Write an Excel workbook").String()
	exportCSV    = cmdExport.Flag("csv", "Write a CSV file").String()
	exportKind   = cmdExport.Flag("kind", "Export only this report").String()
	exportDetail = cmdExport.Flag("detail", "CSV with every row instead of the summary").Default("true").Bool()

	cmdDiff = kingpin.Command("diff", "Compare two snapshots")
	diffOld = cmdDiff.Arg("old", "Old snapshot").Required().ExistingFile()
	diffNew = cmdDiff.Arg("new", "New snapshot").Required().ExistingFile()

	cmdFields  = kingpin.Command("fields", "List the sections and fields of a report kind")
	fieldsKind = cmdFields.Arg("kind", "estado_resultados or balance").Required().String()

	cmdInit = kingpin.Command("init", "Write the effective configuration to the config file")
)

func main() {
	cmd := kingpin.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configFile)
	if err != nil {
		fatal("Error loading configuration", err)
	}
	overlay(cfg)
	if err := cfg.Validate(); err != nil {
		fatal("Error in configuration", err)
	}
	slog.Debug("Configuration", "file", *configFile, "company", cfg.Company, "currency", cfg.Currency, "doubleCountSuppliers", cfg.DoubleCountSuppliers)

	switch cmd {
	case cmdWizard.FullCommand():
		runWizard(cfg, mustKind(*wizardKind))
	case cmdCompute.FullCommand():
		runCompute(cfg)
	case cmdShow.FullCommand():
		runShow(cfg)
	case cmdExport.FullCommand():
		runExport(cfg)
	case cmdDiff.FullCommand():
		runDiff()
	case cmdFields.FullCommand():
		runFields(mustKind(*fieldsKind))
	case cmdInit.FullCommand():
		if err := config.Save(*configFile, cfg); err != nil {
			fatal("Error writing configuration", err)
		}
		slog.Info("Wrote configuration", "file", *configFile)
	}
}

// overlay applies the flags given on the command line over the file.
func overlay(cfg *config.Config) {
	if *company != "" {
		cfg.Company = *company
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *doubleCount {
		cfg.DoubleCountSuppliers = true
	}
	if *computeEncode != "" {
		cfg.Input.Encoding = *computeEncode
	}
}

func mustKind(s string) polifin.Kind {
	kind, err := polifin.ParseKind(s)
	if err != nil {
		fatal("Error parsing report kind", err)
	}
	return kind
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
