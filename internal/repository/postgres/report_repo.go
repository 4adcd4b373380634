package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"prorent/internal/domain"
	"prorent/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// vendorOrdersClause scopes orders to those containing at least one line item
// whose product is owned by the vendor.
const vendorOrdersClause = `EXISTS (
	SELECT 1 FROM order_items oi
	INNER JOIN products p ON p.id = oi.product_id
	WHERE oi.order_id = o.id AND p.vendor_id = $1
)`

func (r *reportRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders,
		`SELECT id, customer_id, status, total_amount, created_at FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ListOrders: %w", err)
	}
	return orders, nil
}

func (r *reportRepo) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT id, order_id, status, amount_paid, issued_at FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ListInvoices: %w", err)
	}
	return invoices, nil
}

func (r *reportRepo) CountUsers(ctx context.Context) (*domain.UserCounts, error) {
	var counts domain.UserCounts
	err := r.db.GetContext(ctx, &counts, `SELECT
		COUNT(*) AS total,
		COUNT(CASE WHEN role = 'CUSTOMER' THEN 1 END) AS customers,
		COUNT(CASE WHEN role = 'VENDOR' THEN 1 END) AS vendors
	FROM users`)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.CountUsers: %w", err)
	}
	return &counts, nil
}

func (r *reportRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("reportRepo.CountProducts: %w", err)
	}
	return count, nil
}

func (r *reportRepo) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	var orders []domain.RecentOrder
	err := r.db.SelectContext(ctx, &orders,
		`SELECT o.id, u.name AS user_name, u.email, o.total_amount, o.status, o.created_at
		 FROM orders o
		 INNER JOIN users u ON u.id = o.customer_id
		 ORDER BY o.created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.RecentOrders: %w", err)
	}
	return orders, nil
}

func (r *reportRepo) TopVendors(ctx context.Context, limit int) ([]domain.TopVendor, error) {
	var vendors []domain.TopVendor
	err := r.db.SelectContext(ctx, &vendors,
		`SELECT u.id, u.name, COALESCE(u.company_name, '') AS company_name,
			COUNT(p.id) AS products_count
		 FROM users u
		 LEFT JOIN products p ON p.vendor_id = u.id
		 WHERE u.role = 'VENDOR'
		 GROUP BY u.id, u.name, u.company_name
		 ORDER BY products_count DESC, u.id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.TopVendors: %w", err)
	}
	return vendors, nil
}

func (r *reportRepo) ListVendorOrders(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders,
		`SELECT o.id, o.customer_id, o.status, o.total_amount, o.created_at
		 FROM orders o WHERE `+vendorOrdersClause, vendorID)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ListVendorOrders: %w", err)
	}
	return orders, nil
}

func (r *reportRepo) ListVendorPaidInvoices(ctx context.Context, vendorID int64, since time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT i.id, i.order_id, i.status, i.amount_paid, i.issued_at
		 FROM invoices i
		 INNER JOIN orders o ON o.id = i.order_id
		 WHERE i.status = 'PAID' AND i.issued_at >= $2 AND `+vendorOrdersClause,
		vendorID, since)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ListVendorPaidInvoices: %w", err)
	}
	return invoices, nil
}

func (r *reportRepo) CountVendorProducts(ctx context.Context, vendorID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE vendor_id = $1`, vendorID)
	if err != nil {
		return 0, fmt.Errorf("reportRepo.CountVendorProducts: %w", err)
	}
	return count, nil
}
