package polifin

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the detailed report as aligned plain text.
func Fprint(w io.Writer, r Report) error {
	return FprintRows(w, strings.ToUpper(r.Kind().Title()), r.Rows())
}

// FprintRows writes a title followed by one aligned line per row.
func FprintRows(w io.Writer, title string, rows []Row) error {
	const formatStr = "  %-60s %16s\n"
	var b strings.Builder
	fmt.Fprintln(&b, title)
	for i, row := range rows {
		if row.Kind == RowHeader && i > 0 && row.Depth == 0 {
			fmt.Fprintln(&b)
		}
		label := row.Text()
		if row.Kind == RowTotal {
			label = strings.ToUpper(label)
		}
		fmt.Fprintf(&b, formatStr, label, row.Value())
		if row.Kind == RowTotal {
			fmt.Fprintln(&b)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
