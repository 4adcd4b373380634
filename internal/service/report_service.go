package service

import (
	"context"
	"fmt"
	"time"

	"prorent/internal/config"
	"prorent/internal/domain"
	"prorent/internal/port"
	"prorent/internal/report"
)

// ReportService builds the admin dashboard and vendor report payloads. Each
// call reads a fresh snapshot from storage, aggregates it, and returns a
// complete result; there are no partial results and nothing is cached.
type ReportService interface {
	AdminReport(ctx context.Context) (*domain.AdminReport, error)
	VendorReport(ctx context.Context, vendorID int64) (*domain.VendorReport, error)
}

type reportService struct {
	reportRepo port.ReportRepository
	cfg        config.ReportConfig
	now        func() time.Time
}

// NewReportService creates a new ReportService. The clock is injected so the
// monthly revenue window is deterministic under test.
func NewReportService(reportRepo port.ReportRepository, cfg config.ReportConfig, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{reportRepo: reportRepo, cfg: cfg, now: now}
}

func (s *reportService) AdminReport(ctx context.Context) (*domain.AdminReport, error) {
	orders, err := s.reportRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.AdminReport orders: %w", err)
	}
	invoices, err := s.reportRepo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.AdminReport invoices: %w", err)
	}
	userCounts, err := s.reportRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.AdminReport users: %w", err)
	}
	productCount, err := s.reportRepo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.AdminReport products: %w", err)
	}
	recent, err := s.reportRepo.RecentOrders(ctx, s.cfg.RecentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("reportService.AdminReport recent orders: %w", err)
	}
	topVendors, err := s.reportRepo.TopVendors(ctx, s.cfg.TopVendorsLimit)
	if err != nil {
		return nil, fmt.Errorf("reportService.AdminReport top vendors: %w", err)
	}

	if recent == nil {
		recent = []domain.RecentOrder{}
	}
	if topVendors == nil {
		topVendors = []domain.TopVendor{}
	}

	return &domain.AdminReport{
		Stats: domain.AdminStats{
			TotalUsers:     userCounts.Total,
			TotalRevenue:   report.Round2(report.SumPaid(invoices)),
			TotalOrders:    len(orders),
			TotalProducts:  productCount,
			TotalCustomers: userCounts.Customers,
			TotalVendors:   userCounts.Vendors,
			TotalInvoices:  len(invoices),
			PendingRevenue: report.Round2(report.SumPending(invoices)),
		},
		Charts: domain.ReportCharts{
			RevenueByMonth: report.RevenueByMonth(invoices, s.now(), s.cfg.WindowMonths),
			OrdersByStatus: report.OrdersByStatus(orders),
		},
		RecentOrders: recent,
		TopVendors:   topVendors,
	}, nil
}

func (s *reportService) VendorReport(ctx context.Context, vendorID int64) (*domain.VendorReport, error) {
	if vendorID <= 0 {
		return nil, domain.ErrInvalidVendor
	}

	now := s.now()
	since := now.AddDate(0, -s.cfg.WindowMonths, 0)

	orders, err := s.reportRepo.ListVendorOrders(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("reportService.VendorReport orders: %w", err)
	}
	paidInvoices, err := s.reportRepo.ListVendorPaidInvoices(ctx, vendorID, since)
	if err != nil {
		return nil, fmt.Errorf("reportService.VendorReport invoices: %w", err)
	}
	productCount, err := s.reportRepo.CountVendorProducts(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("reportService.VendorReport products: %w", err)
	}

	return &domain.VendorReport{
		Stats: report.ComputeTotals(orders, paidInvoices, productCount),
		Charts: domain.ReportCharts{
			RevenueByMonth: report.RevenueByMonth(paidInvoices, now, s.cfg.WindowMonths),
			OrdersByStatus: report.OrdersByStatus(orders),
		},
	}, nil
}
