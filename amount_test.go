package polifin

import (
	"encoding/json"
	"testing"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", "0"},
		{"   ", "0"},
		{"0", "0"},
		{"0.00", "0"},
		{"9.50", "9.5"},
		{"-9.5", "-9.5"},
		{"1,234.50", "1234.5"},
		{" 1,000,000 ", "1000000"},
		{"banana", "0"},
		{"1..2", "0"},
		{"$100", "0"},
		{"+12", "12"},
		{".5", "0.5"},
		{"1e3", "0"},
		{"1e999999999", "0"},
		{"1E-999999999", "0"},
		{"-", "0"},
		{".", "0"},
		{"12345678901234567890.12", "12345678901234567890.12"},
	}

	for _, c := range cases {
		if v := Coerce(c.in).String(); v != c.out {
			t.Errorf("Coerce(%q) -> %s, expected %s", c.in, v, c.out)
		}
	}
}

func TestAmountFormat(t *testing.T) {
	cases := []struct {
		in     string
		format string
		fixed  string
	}{
		{"0", "0.00", "0.00"},
		{"1234.5", "1,234.50", "1234.50"},
		{"-950", "-950.00", "-950.00"},
		{"0.005", "0.01", "0.01"},
		{"1000000.126", "1,000,000.13", "1000000.13"},
		{"12345678901234567890.12", "12,345,678,901,234,567,890.12", "12345678901234567890.12"},
		{"-123456789012345678901234.5", "-123,456,789,012,345,678,901,234.50", "-123456789012345678901234.50"},
	}

	for _, c := range cases {
		a := Coerce(c.in)
		if v := a.Format(); v != c.format {
			t.Errorf("Format(%s) -> %q, expected %q", c.in, v, c.format)
		}
		if v := a.Fixed(); v != c.fixed {
			t.Errorf("Fixed(%s) -> %q, expected %q", c.in, v, c.fixed)
		}
	}
}

func TestAmountMoney(t *testing.T) {
	cases := []struct {
		in   string
		code string
		out  string
	}{
		{"1234.5", "MXN", "$1,234.50"},
		{"-1234.5", "MXN", "-$1,234.50"},
		{"12345678901234567890.12", "MXN", "$12,345,678,901,234,567,890.12"},
		{"-12345678901234567890.12", "MXN", "-$12,345,678,901,234,567,890.12"},
	}

	for _, c := range cases {
		if v := Coerce(c.in).Money(c.code); v != c.out {
			t.Errorf("Money(%s, %s) -> %q, expected %q", c.in, c.code, v, c.out)
		}
	}
}

func FuzzCoerce(f *testing.F) {
	for _, seed := range []string{"", "0", "1,234.50", "-9.5", "1e999999999", "1e-999999999", "banana", "12345678901234567890.12"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		a := Coerce(in)
		if !Coerce(a.String()).Equal(a) {
			t.Errorf("Coerce(%q) = %s does not read back", in, a)
		}

		s := NewStore()
		s.Set("Ventas totales", in)
		s.Set("Devoluciones sobre ventas", "0.01")
		s.Set("Caja", in)
		s.Set("Proveedores", in)
		ComputeIncomeStatement(s).Rows()
		b := ComputeBalanceSheet(s, BalanceOptions{})
		for _, row := range b.Rows() {
			row.Amount.Format()
		}
	})
}

func TestAmountJSON(t *testing.T) {
	bs, err := json.Marshal(Coerce("1,234.567"))
	if err != nil {
		t.Fatal(err)
	}
	if string(bs) != "1234.567" {
		t.Errorf("unexpected encoding %s", bs)
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"12.30"`), &a); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(Coerce("12.3")) {
		t.Errorf("unexpected value %v", a)
	}

	if err := json.Unmarshal([]byte(`null`), &a); err == nil {
		t.Error("unexpected success for null")
	}
	if err := json.Unmarshal([]byte(`1e999999999`), &a); err == nil {
		t.Error("unexpected success for exponent")
	}
}
