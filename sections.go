package polifin

// Income statement fields.
var (
	salesTotal     = field("Ventas totales")
	salesReturns   = field("Devoluciones sobre ventas")
	salesDiscounts = field("Descuentos sobre ventas")

	openingInventory  = field("Inventario inicial")
	purchases         = field("Compras")
	purchaseExpenses  = field("Gastos de compra")
	purchaseReturns   = field("Devoluciones sobre compras")
	purchaseDiscounts = field("Descuentos sobre compras")
	closingInventory  = field("Inventario final")

	warehouseRent     = field("Renta de almacén")
	advertising       = field("Propaganda y publicidad")
	salesStaffWages   = field("Sueldos de agentes y dependientes")
	salesCommissions  = field("Comisiones de agentes y dependientes")
	warehousePower    = field("Consumo de luz del almacén")
	officeRent        = field("Renta de oficinas")
	officeStaffWages  = field("Sueldos del personal de oficinas")
	officeStationery  = field("Papelería y útiles")
	officePower       = field("Consumo de luz de oficinas")
	interestEarned    = field("Intereses cobrados")
	fxGain            = field("Ganancia en cambios")
	interestPaid      = field("Intereses pagados")
	fxLoss            = field("Pérdida en cambios")
	furnitureSaleLoss = field("Pérdida en venta de mobiliario")
	shareSaleLoss     = field("Pérdida en venta de acciones")
	commissionsEarned = field("Comisiones cobradas")
	dividendsEarned   = field("Dividendos cobrados")
	otherLosses       = field("Pérdida entre otros gastos y productos")
	incomeTax         = field("Impuesto sobre la renta ISR")
	profitSharing     = field("Participación de los trabajadores en las utilidades")
)

var incomeSections = []Section{
	{"ventas", "Ventas", []Field{salesTotal, salesReturns, salesDiscounts}},
	{"compras", "Compras totales o brutas", []Field{openingInventory, purchases, purchaseExpenses, purchaseReturns, purchaseDiscounts, closingInventory}},
	{"gastos_venta", "Gastos de venta", []Field{warehouseRent, advertising, salesStaffWages, salesCommissions, warehousePower}},
	{"gastos_administracion", "Gastos de administración", []Field{officeRent, officeStaffWages, officeStationery, officePower}},
	{"financieros", "Productos y gastos financieros", []Field{interestEarned, fxGain, interestPaid, fxLoss}},
	{"otros", "Otros gastos y otros productos", []Field{furnitureSaleLoss, shareSaleLoss, commissionsEarned, dividendsEarned, otherLosses}},
	{"impuestos", "Impuestos", []Field{incomeTax, profitSharing}},
}

// Balance sheet fields. Suppliers is referenced on its own because of the
// optional double count in the deferred liabilities.
var suppliers = field("Proveedores")

var balanceSections = []Section{
	{"activo_circulante", "Activo circulante", []Field{
		field("Caja"),
		field("Bancos"),
		field("Inversiones temporales"),
		field("Mercancías"),
		field("Inventario o almacén"),
		field("Clientes"),
		field("Documentos por cobrar"),
		field("Deudores diversos"),
		field("Anticipo a proveedores"),
	}},
	{"activo_no_circulante", "Activo fijo o no circulante", []Field{
		field("Terrenos"),
		field("Edificios"),
		field("Mobiliario y equipo"),
		field("Equipo de cómputo electrónico"),
		field("Equipo de entrega o reparto"),
		field("Depósitos en garantía"),
		field("Inversiones permanentes"),
	}},
	{"activo_diferido", "Activo diferido o cargos diferidos", []Field{
		field("Gastos de investigación y desarrollo"),
		field("Gastos en etapas preoperativas, de organización y administración"),
		field("Gastos de mercadotecnia"),
		field("Gastos de instalación"),
		field("Papelería y útiles"),
		field("Propaganda y publicidad"),
		field("Primas de seguros"),
		field("Rentas pagadas por anticipado"),
		field("Intereses pagados por anticipado"),
	}},
	{"pasivo_corto_plazo", "Pasivo a corto plazo o circulante", []Field{
		suppliers,
		field("Acreedores diversos"),
		field("Documentos por pagar"),
		field("Anticipo de clientes"),
		field("Gastos pendientes de pago, por pagar o acumulados"),
		field("Impuestos pendientes de pago, por pagar o acumulados"),
	}},
	{"pasivo_largo_plazo", "Pasivo a largo plazo o fijo", []Field{
		field("Hipotecas por pagar o acreedores hipotecarios"),
		field("Documentos por pagar a largo plazo"),
		field("Cuentas por pagar a largo plazo"),
	}},
	{"pasivo_diferido", "Pasivo diferido o créditos diferidos", []Field{
		field("Rentas cobradas por anticipado"),
		field("Intereses cobrados por anticipado"),
	}},
}
