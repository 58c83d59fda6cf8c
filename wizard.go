package polifin

import "strings"

// Wizard is one capture run. It is a value: Advance and Retreat return the
// next wizard and leave the receiver untouched, so the caller holds the only
// mutable reference.
type Wizard struct {
	flow   *Flow
	state  State
	store  *Store
	opts   BalanceOptions
	report Report
}

type Option func(*Wizard)

// WithBalanceOptions sets how a balance sheet run rolls up its liabilities.
func WithBalanceOptions(opts BalanceOptions) Option {
	return func(w *Wizard) { w.opts = opts }
}

// New starts a run of kind on its first section with an empty store.
func New(kind Kind, opts ...Option) Wizard {
	flow := NewFlow(kind)
	w := Wizard{
		flow:  flow,
		state: flow.Initial(),
		store: NewStore(),
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Entry is a field of the current section with the text to pre-fill it
// with: the stored value, or "" when the field was never captured.
type Entry struct {
	Field Field
	Value string
}

func (w Wizard) Kind() Kind   { return w.flow.Kind() }
func (w Wizard) State() State { return w.state }

func (w Wizard) Flow() *Flow { return w.flow }

// Position returns the 0-based index of the current section and the number
// of sections. When the report is ready index equals total.
func (w Wizard) Position() (index, total int) {
	return w.flow.position(w.state), len(w.flow.order)
}

func (w Wizard) Section() (Section, bool) {
	return w.flow.Section(w.state)
}

func (w Wizard) CurrentSectionFields() []Entry {
	sec, ok := w.Section()
	if !ok {
		return nil
	}
	entries := make([]Entry, len(sec.Fields))
	for i, f := range sec.Fields {
		entries[i] = Entry{Field: f}
		if v, ok := w.store.values[f.ID]; ok {
			entries[i].Value = v.String()
		}
	}
	return entries
}

// Advance stores the current section's entries and moves to the next
// section. Leaving the last section builds the report. Advancing a
// finished run changes nothing.
func (w Wizard) Advance(entries map[string]string) Wizard {
	next, ok := w.flow.Next(w.state, EventAdvance)
	if !ok {
		return w
	}
	w.store = w.persist(entries)
	w.state = next
	if next == ReportReady {
		w.report = compute(w.Kind(), w.store, w.opts)
	}
	return w
}

// Retreat stores the current section's entries and moves back one section.
// On the first section only the entries are stored.
func (w Wizard) Retreat(entries map[string]string) Wizard {
	prev, ok := w.flow.Next(w.state, EventRetreat)
	if !ok {
		return w
	}
	w.store = w.persist(entries)
	w.state = prev
	return w
}

func (w Wizard) IsReportReady() bool { return w.state == ReportReady }

// Report returns the finished report, or nil before ReportReady.
func (w Wizard) Report() Report { return w.report }

// Values returns a copy of everything captured so far.
func (w Wizard) Values() map[FieldID]Amount { return w.store.Snapshot() }

// Dirty reports whether abandoning the run would discard captured values.
func (w Wizard) Dirty() bool { return w.store.Len() > 0 && !w.IsReportReady() }

// persist writes the current section's entries into a copy of the store.
// Keys are matched canonically; keys outside the section are ignored. A
// blank entry clears a stored value to 0 but does not create one.
func (w Wizard) persist(entries map[string]string) *Store {
	sec, ok := w.Section()
	if !ok {
		return w.store
	}
	byID := make(map[FieldID]string, len(entries))
	for k, v := range entries {
		byID[Canonical(k)] = v
	}
	store := w.store.clone()
	for _, f := range sec.Fields {
		raw := byID[f.ID]
		if strings.TrimSpace(raw) == "" && !store.has(f.ID) {
			continue
		}
		store.put(f.ID, Coerce(raw))
	}
	return store
}

func compute(kind Kind, s *Store, opts BalanceOptions) Report {
	switch kind {
	case IncomeStatementKind:
		return ComputeIncomeStatement(s)
	case BalanceSheetKind:
		return ComputeBalanceSheet(s, opts)
	}
	return nil
}
