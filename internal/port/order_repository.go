package port

import (
	"context"

	"prorent/internal/domain"
)

// OrderRepository defines persistence operations for orders and invoices.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	GetInvoiceByOrder(ctx context.Context, orderID int64) (*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error
}
