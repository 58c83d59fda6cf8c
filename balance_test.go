package polifin

import (
	"math/rand"
	"strconv"
	"testing"
)

func TestBalanceSheet(t *testing.T) {
	s := NewStore()
	s.Set("Caja", "100")
	s.Set("Bancos", "200")
	s.Set("Proveedores", "50")

	cases := []struct {
		name        string
		opts        BalanceOptions
		assets      string
		liabilities string
		equity      string
	}{
		{"corrected", BalanceOptions{}, "300", "50", "250"},
		{"double counted suppliers", BalanceOptions{DoubleCountSuppliers: true}, "300", "100", "200"},
	}

	for _, tc := range cases {
		b := ComputeBalanceSheet(s, tc.opts)
		if !b.TotalAssets.Equal(Coerce(tc.assets)) {
			t.Errorf("%s: assets %v, expected %s", tc.name, b.TotalAssets, tc.assets)
		}
		if !b.TotalLiabilities.Equal(Coerce(tc.liabilities)) {
			t.Errorf("%s: liabilities %v, expected %s", tc.name, b.TotalLiabilities, tc.liabilities)
		}
		if !b.Equity.Equal(Coerce(tc.equity)) {
			t.Errorf("%s: equity %v, expected %s", tc.name, b.Equity, tc.equity)
		}
	}
}

func TestBalanceSheetIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		s := NewStore()
		for _, sec := range balanceSections {
			for _, f := range sec.Fields {
				if rnd.Intn(3) == 0 {
					continue
				}
				cents := rnd.Int63n(2e9) - 1e9
				s.Set(f.Label, strconv.FormatFloat(float64(cents)/100, 'f', 2, 64))
			}
		}

		for _, opts := range []BalanceOptions{{}, {DoubleCountSuppliers: true}} {
			b := ComputeBalanceSheet(s, opts)
			if !b.Equity.Equal(b.TotalAssets.Sub(b.TotalLiabilities)) {
				t.Fatalf("identity broken: %v != %v - %v", b.Equity, b.TotalAssets, b.TotalLiabilities)
			}
			var assets Amount
			for _, g := range b.Assets() {
				assets = assets.Add(g.Total)
			}
			if !assets.Equal(b.TotalAssets) {
				t.Fatalf("assets %v do not add up to %v", assets, b.TotalAssets)
			}
		}
	}
}

func TestBalanceSheetRows(t *testing.T) {
	s := NewStore()
	s.Set("Caja", "100")
	b := ComputeBalanceSheet(s, BalanceOptions{})

	rows := b.Rows()
	if rows[0].Kind != RowHeader || rows[0].Label != "Activo" {
		t.Errorf("unexpected first row %#v", rows[0])
	}
	if rows[2].Label != "Caja" || rows[2].Value() != "100.00" || rows[2].Depth != 2 {
		t.Errorf("unexpected cash row %#v", rows[2])
	}
	last := rows[len(rows)-1]
	if last.Label != "Capital contable" || last.Kind != RowTotal || !last.Amount.Equal(Coerce("100")) {
		t.Errorf("unexpected last row %#v", last)
	}

	for _, g := range b.Liabilities() {
		for _, l := range g.Lines {
			if l.ID == suppliers.ID && g.Label != "Pasivo a corto plazo o circulante" {
				t.Errorf("suppliers listed under %q", g.Label)
			}
		}
	}
}
