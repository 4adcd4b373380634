package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"prorent/internal/domain"
	"prorent/internal/port"
)

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

// Create inserts the order and its line items in one transaction.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("orderRepo.Create begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO orders (customer_id, status, total_amount)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		order.CustomerID, order.Status, order.TotalAmount,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("orderRepo.Create order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRowxContext(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, start_date, end_date, price_per_day)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.StartDate, item.EndDate, item.PricePerDay,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("orderRepo.Create item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("orderRepo.Create commit: %w", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order,
		`SELECT id, customer_id, status, total_amount, created_at FROM orders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetByID: %w", err)
	}

	if err := r.db.SelectContext(ctx, &order.Items,
		`SELECT id, order_id, product_id, quantity, start_date, end_date, price_per_day
		 FROM order_items WHERE order_id = $1 ORDER BY id`, id); err != nil {
		return nil, fmt.Errorf("orderRepo.GetByID items: %w", err)
	}

	invoice, err := r.GetInvoiceByOrder(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrInvoiceNotFound) {
		return nil, err
	}
	order.Invoice = invoice

	return &order, nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders,
		`SELECT id, customer_id, status, total_amount, created_at
		 FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.ListByCustomer: %w", err)
	}
	return orders, nil
}

// ListByVendor returns orders containing at least one line item that
// references a product owned by the vendor.
func (r *orderRepo) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders,
		`SELECT DISTINCT o.id, o.customer_id, o.status, o.total_amount, o.created_at
		 FROM orders o
		 INNER JOIN order_items oi ON oi.order_id = o.id
		 INNER JOIN products p ON p.id = oi.product_id
		 WHERE p.vendor_id = $1
		 ORDER BY o.created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.ListByVendor: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("orderRepo.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO invoices (order_id, status, amount_paid, issued_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		invoice.OrderID, invoice.Status, invoice.AmountPaid, invoice.IssuedAt,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("orderRepo.CreateInvoice: %w", err)
	}
	return nil
}

func (r *orderRepo) GetInvoiceByOrder(ctx context.Context, orderID int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice,
		`SELECT id, order_id, status, amount_paid, issued_at FROM invoices WHERE order_id = $1`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetInvoiceByOrder: %w", err)
	}
	return &invoice, nil
}

func (r *orderRepo) UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1 WHERE id = $2`, status, invoiceID)
	if err != nil {
		return fmt.Errorf("orderRepo.UpdateInvoiceStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
