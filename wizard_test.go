package polifin

import (
	"reflect"
	"testing"
)

func entriesOf(w Wizard) map[string]string {
	m := make(map[string]string)
	for _, e := range w.CurrentSectionFields() {
		m[e.Field.Label] = e.Value
	}
	return m
}

func TestWizardWalk(t *testing.T) {
	w := New(IncomeStatementKind)
	if idx, total := w.Position(); idx != 0 || total != 7 {
		t.Fatalf("unexpected start position %d/%d", idx, total)
	}

	for i := 0; i < 7; i++ {
		if w.IsReportReady() {
			t.Fatalf("ready after %d sections", i)
		}
		w = w.Advance(nil)
	}
	if !w.IsReportReady() {
		t.Fatal("expected report ready")
	}
	if idx, total := w.Position(); idx != total {
		t.Errorf("unexpected final position %d/%d", idx, total)
	}
	if w.Report() == nil || w.Report().Kind() != IncomeStatementKind {
		t.Fatalf("unexpected report %#v", w.Report())
	}
	if w.CurrentSectionFields() != nil {
		t.Error("no fields expected once the report is ready")
	}

	after := w.Advance(map[string]string{"Ventas totales": "5"})
	if !reflect.DeepEqual(after, w) {
		t.Error("advancing a finished run should change nothing")
	}
	after = w.Retreat(nil)
	if after.State() != ReportReady {
		t.Error("retreating a finished run should change nothing")
	}
}

func TestWizardIsValue(t *testing.T) {
	w := New(BalanceSheetKind)
	next := w.Advance(map[string]string{"Caja": "100"})

	if w.State() != "activo_circulante" || len(w.Values()) != 0 {
		t.Error("Advance modified the receiver")
	}
	if next.State() != "activo_no_circulante" {
		t.Errorf("unexpected state %q", next.State())
	}
	if v := next.Values()["caja"]; !v.Equal(Coerce("100")) {
		t.Errorf("unexpected value %v", v)
	}
}

func TestWizardRoundTrip(t *testing.T) {
	w := New(IncomeStatementKind)
	w = w.Advance(map[string]string{"Ventas totales": "1,000", "devoluciones sobre ventas": "50"})
	w = w.Advance(map[string]string{"Compras": "300"})

	before := w.Values()
	idx, _ := w.Position()

	w = w.Advance(entriesOf(w))
	w = w.Retreat(entriesOf(w))

	if after, _ := w.Position(); after != idx {
		t.Errorf("position %d after round trip, expected %d", after, idx)
	}
	if !reflect.DeepEqual(w.Values(), before) {
		t.Errorf("values changed by round trip\n%v\n%v", w.Values(), before)
	}
}

func TestWizardRetreatFirstSection(t *testing.T) {
	w := New(IncomeStatementKind)
	w = w.Retreat(map[string]string{"Ventas totales": "10"})

	if w.State() != "ventas" {
		t.Errorf("unexpected state %q", w.State())
	}
	if v := w.Values()["ventas totales"]; !v.Equal(Coerce("10")) {
		t.Errorf("entries should be stored on retreat, got %v", v)
	}
}

func TestWizardPrefill(t *testing.T) {
	w := New(IncomeStatementKind)
	w = w.Advance(map[string]string{"Ventas totales": "1,234.50", "Descuentos sobre ventas": "x"})
	w = w.Retreat(nil)

	expected := []Entry{
		{salesTotal, "1234.5"},
		{salesReturns, ""},
		{salesDiscounts, "0"},
	}
	if res := w.CurrentSectionFields(); !reflect.DeepEqual(res, expected) {
		t.Errorf("prefill mismatch\n%#v\n%#v", res, expected)
	}
}

func TestWizardBlankEntries(t *testing.T) {
	w := New(BalanceSheetKind)
	w = w.Advance(map[string]string{"Caja": "100", "Bancos": " ", "Unrelated": "5"})
	vals := w.Values()
	if _, ok := vals["bancos"]; ok {
		t.Error("blank entry should not create a value")
	}
	if _, ok := vals["unrelated"]; ok {
		t.Error("entry outside the section should be ignored")
	}

	w = w.Retreat(nil)
	w = w.Advance(map[string]string{"Caja": ""})
	if v, ok := w.Values()["caja"]; !ok || !v.IsZero() {
		t.Errorf("blank entry should clear a stored value to 0, got %v, %v", v, ok)
	}
}

func TestWizardDirty(t *testing.T) {
	w := New(BalanceSheetKind)
	if w.Dirty() {
		t.Error("fresh run is not dirty")
	}
	w = w.Advance(map[string]string{"Caja": "1"})
	if !w.Dirty() {
		t.Error("run with values is dirty")
	}
	for !w.IsReportReady() {
		w = w.Advance(nil)
	}
	if w.Dirty() {
		t.Error("finished run is not dirty")
	}
}

func TestWizardBalanceOptions(t *testing.T) {
	run := func(opts ...Option) *BalanceSheet {
		w := New(BalanceSheetKind, opts...)
		w = w.Advance(map[string]string{"Caja": "100"})
		w = w.Advance(nil)
		w = w.Advance(nil)
		w = w.Advance(map[string]string{"Proveedores": "50"})
		for !w.IsReportReady() {
			w = w.Advance(nil)
		}
		return w.Report().(*BalanceSheet)
	}

	if b := run(); !b.TotalLiabilities.Equal(Coerce("50")) {
		t.Errorf("unexpected liabilities %v", b.TotalLiabilities)
	}
	if b := run(WithBalanceOptions(BalanceOptions{DoubleCountSuppliers: true})); !b.TotalLiabilities.Equal(Coerce("100")) {
		t.Errorf("unexpected double counted liabilities %v", b.TotalLiabilities)
	}
}
