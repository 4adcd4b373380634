package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"prorent/internal/domain"
)

const sheetName = "Vendor Report"

// WriteXLSX writes the vendor report to w as an XLSX workbook with the same
// layout as the CSV export.
func WriteXLSX(w io.Writer, rep *domain.VendorReport) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx delete default sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total Revenue", rep.Stats.TotalRevenue},
		{"Total Orders", rep.Stats.TotalOrders},
		{"Product Count", rep.Stats.ProductCount},
		{},
		{"Month", "Revenue"},
	}
	for _, m := range rep.Charts.RevenueByMonth {
		rows = append(rows, []interface{}{m.Month, m.Revenue})
	}
	rows = append(rows, nil, []interface{}{"Status", "Count"})
	for _, s := range rep.Charts.OrdersByStatus {
		rows = append(rows, []interface{}{s.Status, s.Count})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsx set row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
