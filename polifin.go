// Package polifin captures financial line items section by section and rolls
// them up into an income statement or a balance sheet.
package polifin // import "github.com/manimanu0017-bot/Proyecto-finanzas"

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnknownKind        = errors.New("unknown report kind")
	ErrUnknownField       = errors.New("unknown field")
	ErrMissingField       = errors.New("missing field")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrNoReports          = errors.New("no report to export")
)

// Kind tells the two wizards apart.
type Kind int

const (
	IncomeStatementKind Kind = iota + 1
	BalanceSheetKind
)

// String returns the snapshot key of the kind.
func (k Kind) String() string {
	switch k {
	case IncomeStatementKind:
		return "estado_resultados"
	case BalanceSheetKind:
		return "balance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Title() string {
	switch k {
	case IncomeStatementKind:
		return "Estado de resultados"
	case BalanceSheetKind:
		return "Balance general"
	default:
		return k.String()
	}
}

// Sections returns the ordered capture sections of the kind.
func (k Kind) Sections() []Section {
	switch k {
	case IncomeStatementKind:
		return incomeSections
	case BalanceSheetKind:
		return balanceSections
	default:
		return nil
	}
}

// ParseKind accepts the snapshot key or one of the usual short names.
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(string(Canonical(s)), " ", "_") {
	case "estado_resultados", "estado_de_resultados", "estado", "er", "income", "income_statement":
		return IncomeStatementKind, nil
	case "balance", "balance_general", "bg", "balance_sheet":
		return BalanceSheetKind, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// FieldID is the canonical form of a field name. Two names with the same
// FieldID refer to the same field.
type FieldID string

// Canonical folds a field name: accents removed, lower case, inner
// whitespace collapsed to single spaces. Former labels map to the field
// that replaced them.
func Canonical(name string) FieldID {
	id := fold(name)
	if to, ok := aliases[id]; ok {
		return to
	}
	return id
}

func fold(name string) FieldID {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, name)
	if err != nil {
		s = name
	}
	s = cases.Lower(language.Spanish).String(s)
	return FieldID(strings.Join(strings.Fields(s), " "))
}

var aliases = map[FieldID]FieldID{
	fold("Gastos de Inversión y Desarrollo"): fold("Gastos de investigación y desarrollo"),
}

// Field is a named numeric input.
type Field struct {
	ID    FieldID
	Label string
}

func field(label string) Field {
	return Field{ID: Canonical(label), Label: label}
}

// Section is a group of fields captured together on one wizard page.
type Section struct {
	ID     string
	Title  string
	Fields []Field
}

// Field returns the section field matching name, compared canonically.
func (s Section) Field(name string) (Field, bool) {
	id := Canonical(name)
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
