// Package export flattens a vendor report into spreadsheet form for
// download, as CSV or XLSX.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"prorent/internal/domain"
)

// BOM is the UTF-8 byte order mark, written for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the vendor report to w as CSV, BOM included.
func WriteCSV(w io.Writer, rep *domain.VendorReport) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Total Revenue", formatAmount(rep.Stats.TotalRevenue)},
		{"Total Orders", strconv.Itoa(rep.Stats.TotalOrders)},
		{"Product Count", strconv.Itoa(rep.Stats.ProductCount)},
		{},
		{"Month", "Revenue"},
	}
	for _, m := range rep.Charts.RevenueByMonth {
		rows = append(rows, []string{m.Month, formatAmount(m.Revenue)})
	}
	rows = append(rows, nil, []string{"Status", "Count"})
	for _, s := range rep.Charts.OrdersByStatus {
		rows = append(rows, []string{s.Status, strconv.Itoa(s.Count)})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
