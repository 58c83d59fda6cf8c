package polifin

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes rows as a two-column Cuenta,Monto table. Amounts are
// plain decimals rounded to cents; header rows have an empty amount.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Cuenta", "Monto"}); err != nil {
		return err
	}
	if err := writeRows(cw, rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportsCSV writes several reports under a single Cuenta,Monto
// header, the detailed rows when detail is set and the summary otherwise.
func WriteReportsCSV(w io.Writer, detail bool, reports ...Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Cuenta", "Monto"}); err != nil {
		return err
	}
	for _, r := range reports {
		rows := r.Summary()
		if detail {
			rows = r.Rows()
		}
		if err := writeRows(cw, rows); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeRows(cw *csv.Writer, rows []Row) error {
	for _, row := range rows {
		amount := ""
		if row.Kind != RowHeader {
			amount = row.Amount.Fixed()
		}
		if err := cw.Write([]string{row.Text(), amount}); err != nil {
			return err
		}
	}
	return nil
}
