package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"prorent/internal/domain"
	"prorent/internal/report"
)

func paidInvoice(amount string, issuedAt time.Time) domain.Invoice {
	return domain.Invoice{
		Status:     domain.InvoiceStatusPaid,
		AmountPaid: decimal.RequireFromString(amount),
		IssuedAt:   issuedAt,
	}
}

func TestSumPaid_ExactDecimalAddition(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		paidInvoice("100.10", now),
		paidInvoice("50.05", now),
		paidInvoice("0.03", now),
	}

	// Binary floats would drift here; decimals must not.
	assert.Equal(t, 150.18, report.Round2(report.SumPaid(invoices)))
}

func TestSumPaid_IgnoresNonPaidInvoices(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		paidInvoice("200.00", now),
		{Status: domain.InvoiceStatusPending, AmountPaid: decimal.RequireFromString("75.00"), IssuedAt: now},
		{Status: domain.InvoiceStatusCancelled, AmountPaid: decimal.RequireFromString("30.00"), IssuedAt: now},
	}

	assert.Equal(t, 200.00, report.Round2(report.SumPaid(invoices)))
}

func TestSumPending_CountsEverythingNotPaid(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		paidInvoice("200.00", now),
		{Status: domain.InvoiceStatusPending, AmountPaid: decimal.RequireFromString("75.50"), IssuedAt: now},
		{Status: domain.InvoiceStatusCancelled, AmountPaid: decimal.RequireFromString("30.25"), IssuedAt: now},
	}

	assert.Equal(t, 105.75, report.Round2(report.SumPending(invoices)))
}

func TestRevenueByMonth_WindowZeroFilledOldestFirst(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 30, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		paidInvoice("550.00", now),
		paidInvoice("120.00", time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC)),
	}

	months := report.RevenueByMonth(invoices, now, 6)

	assert.Len(t, months, 6)
	assert.Equal(t, []domain.MonthRevenue{
		{Month: "Mar 26", Revenue: 0},
		{Month: "Apr 26", Revenue: 0},
		{Month: "May 26", Revenue: 120},
		{Month: "Jun 26", Revenue: 0},
		{Month: "Jul 26", Revenue: 0},
		{Month: "Aug 26", Revenue: 550},
	}, months)
}

func TestRevenueByMonth_SingleInvoiceLandsInCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{paidInvoice("550.00", now)}

	months := report.RevenueByMonth(invoices, now, 6)

	assert.Len(t, months, 6)
	for _, m := range months[:5] {
		assert.Zero(t, m.Revenue, "month %s should be zero-filled", m.Month)
	}
	assert.Equal(t, "Aug 26", months[5].Month)
	assert.Equal(t, 550.0, months[5].Revenue)
}

func TestRevenueByMonth_BucketsByUTCMonth(t *testing.T) {
	// 2026-08-01 03:00 IST is 2026-07-31 21:30 UTC, so it belongs to July.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		paidInvoice("100.00", time.Date(2026, time.August, 1, 3, 0, 0, 0, ist)),
	}

	months := report.RevenueByMonth(invoices, now, 6)

	var july, august float64
	for _, m := range months {
		switch m.Month {
		case "Jul 26":
			july = m.Revenue
		case "Aug 26":
			august = m.Revenue
		}
	}
	assert.Equal(t, 100.0, july)
	assert.Zero(t, august)
}

func TestRevenueByMonth_InvoicesOutsideWindowDropped(t *testing.T) {
	now := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		paidInvoice("999.00", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)),
		paidInvoice("40.00", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	months := report.RevenueByMonth(invoices, now, 6)

	total := 0.0
	for _, m := range months {
		total += m.Revenue
	}
	assert.Equal(t, 40.0, total, "February is outside the six-month window ending in August")
}

func TestRevenueByMonth_EmptyInputStillReturnsFullWindow(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	months := report.RevenueByMonth(nil, now, 6)

	assert.Len(t, months, 6)
	assert.Equal(t, "Aug 25", months[0].Month)
	assert.Equal(t, "Jan 26", months[5].Month)
	for _, m := range months {
		assert.Zero(t, m.Revenue)
	}
}

func TestOrdersByStatus_CountsAndDisplayNames(t *testing.T) {
	orders := []domain.Order{
		{Status: domain.OrderStatusPending},
		{Status: domain.OrderStatusPending},
		{Status: domain.OrderStatusPickedUp},
		{Status: domain.OrderStatusReturned},
	}

	counts := report.OrdersByStatus(orders)

	assert.Equal(t, []domain.StatusCount{
		{Status: "PENDING", Count: 2},
		{Status: "PICKED UP", Count: 1},
		{Status: "RETURNED", Count: 1},
	}, counts)
}

func TestOrdersByStatus_EmptyInput(t *testing.T) {
	assert.Empty(t, report.OrdersByStatus(nil))
}

func TestComputeTotals_EmptySnapshotYieldsZeros(t *testing.T) {
	stats := report.ComputeTotals(nil, nil, 0)

	assert.Equal(t, domain.VendorStats{}, stats)
}

func TestComputeTotals_RoundsRevenueToTwoDigits(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{{ID: 1}, {ID: 2}}
	invoices := []domain.Invoice{
		paidInvoice("10.005", now),
		paidInvoice("10.004", now),
	}

	stats := report.ComputeTotals(orders, invoices, 3)

	assert.Equal(t, 20.01, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 3, stats.ProductCount)
}
