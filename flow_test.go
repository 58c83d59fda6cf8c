package polifin

import (
	"reflect"
	"testing"
)

func TestFlowStates(t *testing.T) {
	cases := []struct {
		kind   Kind
		states []State
	}{
		{
			IncomeStatementKind,
			[]State{"ventas", "compras", "gastos_venta", "gastos_administracion", "financieros", "otros", "impuestos", ReportReady},
		}, {
			BalanceSheetKind,
			[]State{"activo_circulante", "activo_no_circulante", "activo_diferido", "pasivo_corto_plazo", "pasivo_largo_plazo", "pasivo_diferido", ReportReady},
		},
	}

	for _, tc := range cases {
		f := NewFlow(tc.kind)
		if res := f.States(); !reflect.DeepEqual(res, tc.states) {
			t.Errorf("%s: states %v, expected %v", tc.kind, res, tc.states)
		}
		if f.Initial() != tc.states[0] {
			t.Errorf("%s: initial state %q", tc.kind, f.Initial())
		}
		if len(f.Transitions()) != 2*(len(tc.states)-1) {
			t.Errorf("%s: %d transitions", tc.kind, len(f.Transitions()))
		}
	}
}

func TestFlowNext(t *testing.T) {
	f := NewFlow(IncomeStatementKind)
	cases := []struct {
		from State
		ev   Event
		to   State
		ok   bool
	}{
		{"ventas", EventAdvance, "compras", true},
		{"ventas", EventRetreat, "ventas", true},
		{"compras", EventRetreat, "ventas", true},
		{"impuestos", EventAdvance, ReportReady, true},
		{ReportReady, EventAdvance, "", false},
		{ReportReady, EventRetreat, "", false},
		{"nowhere", EventAdvance, "", false},
	}

	for _, tc := range cases {
		to, ok := f.Next(tc.from, tc.ev)
		if to != tc.to || ok != tc.ok {
			t.Errorf("Next(%q, %v) -> %q, %v, expected %q, %v", tc.from, tc.ev, to, ok, tc.to, tc.ok)
		}
	}
}

func TestEmptyFlow(t *testing.T) {
	f := newFlow(IncomeStatementKind, nil)
	if f.Initial() != ReportReady {
		t.Errorf("empty flow should start ready, got %q", f.Initial())
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		ok   bool
	}{
		{"estado_resultados", IncomeStatementKind, true},
		{"Estado de resultados", IncomeStatementKind, true},
		{"ER", IncomeStatementKind, true},
		{"balance", BalanceSheetKind, true},
		{"Balance General", BalanceSheetKind, true},
		{"flujo", 0, false},
	}

	for _, tc := range cases {
		kind, err := ParseKind(tc.in)
		if tc.ok && err != nil {
			t.Error("unexpected failure:", tc.in)
		} else if !tc.ok && err == nil {
			t.Error("unexpected success:", tc.in)
		} else if kind != tc.kind {
			t.Errorf("ParseKind(%q) -> %v, expected %v", tc.in, kind, tc.kind)
		}
	}
}
