package polifin

// IncomeStatement is the estado de resultados. Every subtotal is derived
// from the captured inputs listed next to it.
type IncomeStatement struct {
	SalesTotal     Amount `json:"ventas_totales"`
	SalesReturns   Amount `json:"devoluciones_sobre_ventas"`
	SalesDiscounts Amount `json:"descuentos_sobre_ventas"`
	NetSales       Amount `json:"ventas_netas"`

	OpeningInventory  Amount `json:"inventario_inicial"`
	Purchases         Amount `json:"compras"`
	PurchaseExpenses  Amount `json:"gastos_de_compra"`
	PurchasesTotal    Amount `json:"compras_totales"`
	PurchaseReturns   Amount `json:"devoluciones_sobre_compras"`
	PurchaseDiscounts Amount `json:"descuentos_sobre_compras"`
	NetPurchases      Amount `json:"compras_netas"`
	GoodsAvailable    Amount `json:"total_de_mercancias"`
	ClosingInventory  Amount `json:"inventario_final"`
	CostOfSales       Amount `json:"costo_de_lo_vendido"`
	GrossProfit       Amount `json:"utilidad_bruta"`

	SellingExpenses   Group  `json:"gastos_de_venta"`
	AdminExpenses     Group  `json:"gastos_de_administracion"`
	OperatingExpenses Amount `json:"gastos_de_operacion"`

	FinancialIncome   Group  `json:"productos_financieros"`
	FinancialExpenses Group  `json:"gastos_financieros"`
	OperatingIncome   Amount `json:"utilidad_de_operacion"`

	OtherExpenses Group  `json:"otros_gastos"`
	OtherIncome   Group  `json:"otros_productos"`
	OtherLosses   Amount `json:"perdida_entre_otros"`
	PretaxIncome  Amount `json:"utilidad_antes_isr_ptu"`

	IncomeTax     Amount `json:"isr"`
	ProfitSharing Amount `json:"ptu"`
	NetIncome     Amount `json:"utilidad_neta"`
}

// ComputeIncomeStatement rolls the captured values up into an income
// statement. Absent fields count as 0; no result is rejected.
func ComputeIncomeStatement(s *Store) *IncomeStatement {
	r := &IncomeStatement{
		SalesTotal:     s.value(salesTotal),
		SalesReturns:   s.value(salesReturns),
		SalesDiscounts: s.value(salesDiscounts),

		OpeningInventory:  s.value(openingInventory),
		Purchases:         s.value(purchases),
		PurchaseExpenses:  s.value(purchaseExpenses),
		PurchaseReturns:   s.value(purchaseReturns),
		PurchaseDiscounts: s.value(purchaseDiscounts),
		ClosingInventory:  s.value(closingInventory),

		SellingExpenses: newGroup("Gastos de venta", s, warehouseRent, advertising, salesStaffWages, salesCommissions, warehousePower),
		AdminExpenses:   newGroup("Gastos de administración", s, officeRent, officeStaffWages, officeStationery, officePower),

		FinancialIncome:   newGroup("Productos financieros", s, interestEarned, fxGain),
		FinancialExpenses: newGroup("Gastos financieros", s, interestPaid, fxLoss),

		OtherExpenses: newGroup("Otros gastos", s, furnitureSaleLoss, shareSaleLoss),
		OtherIncome:   newGroup("Otros productos", s, commissionsEarned, dividendsEarned),
		OtherLosses:   s.value(otherLosses),

		IncomeTax:     s.value(incomeTax),
		ProfitSharing: s.value(profitSharing),
	}

	r.NetSales = r.SalesTotal.Sub(r.SalesReturns).Sub(r.SalesDiscounts)
	r.PurchasesTotal = r.Purchases.Add(r.PurchaseExpenses)
	r.NetPurchases = r.PurchasesTotal.Sub(r.PurchaseReturns).Sub(r.PurchaseDiscounts)
	r.GoodsAvailable = r.OpeningInventory.Add(r.NetPurchases)
	r.CostOfSales = r.GoodsAvailable.Sub(r.ClosingInventory)
	r.GrossProfit = r.NetSales.Sub(r.CostOfSales)

	r.OperatingExpenses = r.SellingExpenses.Total.Add(r.AdminExpenses.Total)
	r.OperatingIncome = r.GrossProfit.
		Sub(r.OperatingExpenses).
		Add(r.FinancialIncome.Total).
		Sub(r.FinancialExpenses.Total)

	r.PretaxIncome = r.OperatingIncome.
		Sub(r.OtherExpenses.Total).
		Add(r.OtherIncome.Total).
		Sub(r.OtherLosses)
	r.NetIncome = r.PretaxIncome.Sub(r.IncomeTax).Sub(r.ProfitSharing)
	return r
}

func (r *IncomeStatement) Kind() Kind { return IncomeStatementKind }

func (r *IncomeStatement) Rows() []Row {
	rows := []Row{
		line("Ventas totales", r.SalesTotal, 0),
		line("Devoluciones sobre ventas", r.SalesReturns, 0),
		line("Descuentos sobre ventas", r.SalesDiscounts, 0),
		subtotal("Ventas netas", r.NetSales, 0),
		line("Inventario inicial", r.OpeningInventory, 0),
		line("Compras", r.Purchases, 0),
		line("Gastos de compra", r.PurchaseExpenses, 0),
		subtotal("Compras totales", r.PurchasesTotal, 0),
		line("Devoluciones sobre compras", r.PurchaseReturns, 0),
		line("Descuentos sobre compras", r.PurchaseDiscounts, 0),
		subtotal("Compras netas", r.NetPurchases, 0),
		subtotal("Suma o total de mercancías", r.GoodsAvailable, 0),
		line("Inventario final", r.ClosingInventory, 0),
		subtotal("Costo de lo vendido", r.CostOfSales, 0),
		total("Utilidad bruta", r.GrossProfit),
		header("Gastos de operación", 0),
	}
	rows = append(rows, r.SellingExpenses.rows(1)...)
	rows = append(rows, r.AdminExpenses.rows(1)...)
	rows = append(rows, subtotal("Total gastos de operación", r.OperatingExpenses, 0))
	rows = append(rows, r.FinancialIncome.rows(0)...)
	rows = append(rows, r.FinancialExpenses.rows(0)...)
	rows = append(rows, total("Utilidad de operación", r.OperatingIncome))
	rows = append(rows, r.OtherExpenses.rows(0)...)
	rows = append(rows, r.OtherIncome.rows(0)...)
	return append(rows,
		line("Pérdida entre otros gastos y productos", r.OtherLosses, 0),
		total("Utilidad antes de ISR y PTU", r.PretaxIncome),
		line("ISR", r.IncomeTax, 0),
		line("PTU", r.ProfitSharing, 0),
		total("Utilidad neta del ejercicio", r.NetIncome),
	)
}

func (r *IncomeStatement) Summary() []Row {
	return []Row{
		line("Ventas netas", r.NetSales, 0),
		line("Costo de lo vendido", r.CostOfSales, 0),
		subtotal("Utilidad bruta", r.GrossProfit, 0),
		line("Gastos de operación", r.OperatingExpenses, 0),
		subtotal("Utilidad de operación", r.OperatingIncome, 0),
		subtotal("Utilidad antes de ISR y PTU", r.PretaxIncome, 0),
		total("Utilidad neta", r.NetIncome),
	}
}

func (r *IncomeStatement) UnmarshalJSON(data []byte) error {
	type plain IncomeStatement
	return decodeStrict(data, "estado_resultados", (*plain)(r))
}
