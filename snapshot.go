package polifin

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// SchemaVersion is written into every snapshot.
const SchemaVersion = 1

// Document is the saved snapshot: reports keyed by kind plus header data.
// A document read back is shown as saved; it is never recomputed.
type Document struct {
	Version     int       `json:"version"`
	Company     string    `json:"empresa,omitempty"`
	Period      string    `json:"periodo,omitempty"`
	GeneratedAt time.Time `json:"generado"`

	IncomeStatement *IncomeStatement `json:"estado_resultados,omitempty"`
	BalanceSheet    *BalanceSheet    `json:"balance,omitempty"`
}

func NewDocument(company, period string, at time.Time) *Document {
	return &Document{
		Version:     SchemaVersion,
		Company:     company,
		Period:      period,
		GeneratedAt: at,
	}
}

// Put stores r under its kind, replacing a report of the same kind.
func (d *Document) Put(r Report) {
	switch r := r.(type) {
	case *IncomeStatement:
		d.IncomeStatement = r
	case *BalanceSheet:
		d.BalanceSheet = r
	}
}

// Report returns the report to display first: the income statement if
// there is one, else the balance sheet, else nil.
func (d *Document) Report() Report {
	if d.IncomeStatement != nil {
		return d.IncomeStatement
	}
	if d.BalanceSheet != nil {
		return d.BalanceSheet
	}
	return nil
}

// Lookup returns the report of kind, or nil.
func (d *Document) Lookup(kind Kind) Report {
	switch {
	case kind == IncomeStatementKind && d.IncomeStatement != nil:
		return d.IncomeStatement
	case kind == BalanceSheetKind && d.BalanceSheet != nil:
		return d.BalanceSheet
	}
	return nil
}

func (d *Document) Reports() []Report {
	var rs []Report
	if d.IncomeStatement != nil {
		rs = append(rs, d.IncomeStatement)
	}
	if d.BalanceSheet != nil {
		rs = append(rs, d.BalanceSheet)
	}
	return rs
}

// Encode writes d as indented JSON.
func Encode(w io.Writer, d *Document) error {
	if d.Version == 0 {
		d.Version = SchemaVersion
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}

// Decode reads a snapshot. A snapshot without a version is read as version
// 1. Every report field must be present.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if d.Version == 0 {
		d.Version = SchemaVersion
	}
	if d.Version < 1 || d.Version > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, d.Version)
	}
	return &d, nil
}

// decodeStrict unmarshals data into v after checking that every json key
// of v's struct type is present in data.
func decodeStrict[T any](data []byte, what string, v *T) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range jsonKeys(reflect.TypeOf(v).Elem()) {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrMissingField, what, key)
		}
	}
	return json.Unmarshal(data, v)
}

// jsonKeys lists the mandatory json keys of struct type t.
func jsonKeys(t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		name, opts, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" || strings.Contains(opts, "omitempty") {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}
