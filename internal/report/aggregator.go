// Package report holds the pure aggregation behind the admin dashboard and
// vendor reports. It performs no I/O: callers load a snapshot of orders,
// invoices, and counts (already scoped to the requesting actor) and pass it
// in together with a reference time. All currency sums run on decimals and
// are rounded to two fractional digits only when a chart value is produced.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"prorent/internal/domain"
)

// monthKey is the stable per-month bucket key, derived in UTC.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// monthLabel is the short human-readable form shown on the chart axis.
func monthLabel(t time.Time) string {
	return t.Format("Jan 06")
}

// SumPaid returns the exact decimal sum of AmountPaid over invoices with
// status PAID. Non-paid invoices in the input are ignored.
func SumPaid(invoices []domain.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == domain.InvoiceStatusPaid {
			sum = sum.Add(inv.AmountPaid)
		}
	}
	return sum
}

// SumPending returns the exact decimal sum of invoice amounts for invoices
// not yet marked PAID: cash expected rather than cash collected.
func SumPending(invoices []domain.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != domain.InvoiceStatusPaid {
			sum = sum.Add(inv.AmountPaid)
		}
	}
	return sum
}

// Round2 converts a decimal sum to its display form, rounded to 2 digits.
func Round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// ComputeTotals produces the vendor stats block from a pre-scoped snapshot.
// Empty input yields zeros.
func ComputeTotals(orders []domain.Order, paidInvoices []domain.Invoice, productCount int) domain.VendorStats {
	return domain.VendorStats{
		TotalRevenue: Round2(SumPaid(paidInvoices)),
		TotalOrders:  len(orders),
		ProductCount: productCount,
	}
}

// RevenueByMonth partitions paid invoices by the UTC calendar month of their
// issue timestamp and returns exactly windowMonths entries covering the
// months ending at now's month, oldest first. Months without revenue are
// zero-filled so the chart never shows gaps.
func RevenueByMonth(paidInvoices []domain.Invoice, now time.Time, windowMonths int) []domain.MonthRevenue {
	byMonth := make(map[string]decimal.Decimal, windowMonths)
	for _, inv := range paidInvoices {
		if inv.Status != domain.InvoiceStatusPaid {
			continue
		}
		key := monthKey(inv.IssuedAt)
		byMonth[key] = byMonth[key].Add(inv.AmountPaid)
	}

	nowUTC := now.UTC()
	current := time.Date(nowUTC.Year(), nowUTC.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := make([]domain.MonthRevenue, 0, windowMonths)
	for i := windowMonths - 1; i >= 0; i-- {
		m := current.AddDate(0, -i, 0)
		out = append(out, domain.MonthRevenue{
			Month:   monthLabel(m),
			Revenue: Round2(byMonth[monthKey(m)]),
		})
	}
	return out
}

// OrdersByStatus counts orders per distinct status. Statuses are sorted by
// name so output is deterministic, and internal underscores are replaced
// with spaces for display ("PICKED_UP" -> "PICKED UP").
func OrdersByStatus(orders []domain.Order) []domain.StatusCount {
	counts := make(map[domain.OrderStatus]int)
	for _, o := range orders {
		counts[o.Status]++
	}

	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)

	out := make([]domain.StatusCount, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, domain.StatusCount{
			Status: strings.ReplaceAll(s, "_", " "),
			Count:  counts[domain.OrderStatus(s)],
		})
	}
	return out
}
