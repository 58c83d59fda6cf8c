package polifin

// BalanceOptions selects between the corrected and the historical
// liabilities roll-up.
type BalanceOptions struct {
	// DoubleCountSuppliers also adds Proveedores to the deferred
	// liabilities, as the first version of the program did. Off by default:
	// suppliers belong to the short-term liabilities only.
	DoubleCountSuppliers bool
}

// BalanceSheet is the balance general. Equity is the residual of assets
// minus liabilities, so the accounting identity holds by construction.
type BalanceSheet struct {
	CurrentAssets  Group `json:"activo_circulante"`
	FixedAssets    Group `json:"activo_no_circulante"`
	DeferredAssets Group `json:"activo_diferido"`

	ShortTermLiabilities Group `json:"pasivo_corto_plazo"`
	LongTermLiabilities  Group `json:"pasivo_largo_plazo"`
	DeferredLiabilities  Group `json:"pasivo_diferido"`

	TotalAssets      Amount `json:"total_activo"`
	TotalLiabilities Amount `json:"total_pasivo"`
	Equity           Amount `json:"capital_contable"`
}

// ComputeBalanceSheet sums every asset and liability group of the captured
// values. Absent fields count as 0.
func ComputeBalanceSheet(s *Store, opts BalanceOptions) *BalanceSheet {
	groups := make([]Group, len(balanceSections))
	for i, sec := range balanceSections {
		groups[i] = newGroup(sec.Title, s, sec.Fields...)
	}
	if opts.DoubleCountSuppliers {
		deferred := &groups[5]
		deferred.add(Line{ID: suppliers.ID, Label: suppliers.Label, Amount: s.value(suppliers)})
	}

	b := &BalanceSheet{
		CurrentAssets:        groups[0],
		FixedAssets:          groups[1],
		DeferredAssets:       groups[2],
		ShortTermLiabilities: groups[3],
		LongTermLiabilities:  groups[4],
		DeferredLiabilities:  groups[5],
	}
	b.TotalAssets = sum(b.CurrentAssets.Total, b.FixedAssets.Total, b.DeferredAssets.Total)
	b.TotalLiabilities = sum(b.ShortTermLiabilities.Total, b.LongTermLiabilities.Total, b.DeferredLiabilities.Total)
	b.Equity = b.TotalAssets.Sub(b.TotalLiabilities)
	return b
}

func (b *BalanceSheet) Kind() Kind { return BalanceSheetKind }

func (b *BalanceSheet) Assets() []Group {
	return []Group{b.CurrentAssets, b.FixedAssets, b.DeferredAssets}
}

func (b *BalanceSheet) Liabilities() []Group {
	return []Group{b.ShortTermLiabilities, b.LongTermLiabilities, b.DeferredLiabilities}
}

func (b *BalanceSheet) Rows() []Row {
	rows := []Row{header("Activo", 0)}
	for _, g := range b.Assets() {
		rows = append(rows, g.rows(1)...)
	}
	rows = append(rows, total("Total activo", b.TotalAssets), header("Pasivo", 0))
	for _, g := range b.Liabilities() {
		rows = append(rows, g.rows(1)...)
	}
	return append(rows,
		total("Total pasivo", b.TotalLiabilities),
		header("Capital", 0),
		total("Capital contable", b.Equity),
	)
}

func (b *BalanceSheet) Summary() []Row {
	var rows []Row
	for _, g := range b.Assets() {
		rows = append(rows, line(g.Label, g.Total, 0))
	}
	rows = append(rows, subtotal("Total activo", b.TotalAssets, 0))
	for _, g := range b.Liabilities() {
		rows = append(rows, line(g.Label, g.Total, 0))
	}
	return append(rows,
		subtotal("Total pasivo", b.TotalLiabilities, 0),
		total("Capital contable", b.Equity),
	)
}

func (b *BalanceSheet) UnmarshalJSON(data []byte) error {
	type plain BalanceSheet
	return decodeStrict(data, "balance", (*plain)(b))
}
