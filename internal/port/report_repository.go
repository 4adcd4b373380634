package port

import (
	"context"
	"time"

	"prorent/internal/domain"
)

// ReportRepository loads the read-only snapshots the reporting core
// aggregates over. Every method is a bounded, side-effect-free read; vendor
// scoping (order -> line item -> product -> owning vendor) is applied here
// so the aggregation itself never needs to know about ownership.
type ReportRepository interface {
	// Platform-wide snapshot (admin dashboard).
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	CountUsers(ctx context.Context) (*domain.UserCounts, error)
	CountProducts(ctx context.Context) (int, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error)
	TopVendors(ctx context.Context, limit int) ([]domain.TopVendor, error)

	// Vendor-scoped snapshot (vendor reports).
	ListVendorOrders(ctx context.Context, vendorID int64) ([]domain.Order, error)
	ListVendorPaidInvoices(ctx context.Context, vendorID int64, since time.Time) ([]domain.Invoice, error)
	CountVendorProducts(ctx context.Context, vendorID int64) (int, error)
}
