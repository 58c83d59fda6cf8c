package polifin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Answers is a capture read from an answers file rather than typed into
// the wizard.
type Answers struct {
	Kind    Kind
	Company string
	Period  string
	Values  []Answer
}

// Answer is one #VALOR line.
type Answer struct {
	Name string
	Raw  string
	Line int
}

// ParseAnswers reads an answers file. Each line is a keyword and its
// words:
//
//	#TIPO estado_resultados
//	#EMPRESA "Comercial del Norte"
//	#PERIODO "Ejercicio 2025"
//	#VALOR "Ventas totales" "1,000.00"
func ParseAnswers(r io.Reader) (*Answers, error) {
	var a Answers
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		words, err := splitWords(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(words) < 1 {
			continue
		}
		if want := arity(words[0]); want > 0 && len(words) < want {
			return nil, fmt.Errorf("line %d: %s needs %d arguments", lineNo, words[0], want-1)
		}

		switch strings.ToUpper(words[0]) {
		case "#TIPO":
			kind, err := ParseKind(words[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			a.Kind = kind

		case "#EMPRESA":
			a.Company = words[1]

		case "#PERIODO":
			a.Period = words[1]

		case "#VALOR":
			a.Values = append(a.Values, Answer{Name: words[1], Raw: words[2], Line: lineNo})

		case "#PROGRAMA", "#GENERADO":
			// informational

		default:
			return nil, fmt.Errorf("line %d: unknown keyword %q", lineNo, words[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if a.Kind == 0 {
		return nil, fmt.Errorf("%w: missing #TIPO", ErrUnknownKind)
	}
	return &a, nil
}

func arity(keyword string) int {
	switch strings.ToUpper(keyword) {
	case "#TIPO", "#EMPRESA", "#PERIODO":
		return 2
	case "#VALOR":
		return 3
	}
	return 0
}

// Wizard replays the answers through a new wizard run, section by section,
// and returns the finished run. A name that is not a field of the kind is
// an error; when a field is given twice the last value wins.
func (a *Answers) Wizard(opts ...Option) (Wizard, error) {
	known := make(map[FieldID]bool)
	for _, sec := range a.Kind.Sections() {
		for _, f := range sec.Fields {
			known[f.ID] = true
		}
	}
	raw := make(map[FieldID]string)
	for _, v := range a.Values {
		id := Canonical(v.Name)
		if !known[id] {
			return Wizard{}, fmt.Errorf("line %d: %w %q for %s", v.Line, ErrUnknownField, v.Name, a.Kind)
		}
		raw[id] = v.Raw
	}

	w := New(a.Kind, opts...)
	for !w.IsReportReady() {
		sec, _ := w.Section()
		entries := make(map[string]string)
		for _, f := range sec.Fields {
			if v, ok := raw[f.ID]; ok {
				entries[f.Label] = v
			}
		}
		w = w.Advance(entries)
	}
	return w, nil
}

// NewDecodingReader converts r from the named legacy encoding to UTF-8.
// "" and "utf-8" return r unchanged.
func NewDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	var cm *charmap.Charmap
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "cp850", "ibm850":
		cm = charmap.CodePage850
	case "windows-1252", "cp1252":
		cm = charmap.Windows1252
	case "latin1", "iso-8859-1":
		cm = charmap.ISO8859_1
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
	return cm.NewDecoder().Reader(r), nil
}
