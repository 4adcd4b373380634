package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"prorent/internal/domain"
	"prorent/internal/port"
)

// OrderItemInput is one requested rental line.
type OrderItemInput struct {
	ProductID int64     `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// PlaceOrderInput is the DTO for order placement.
type PlaceOrderInput struct {
	Items []OrderItemInput `json:"items" binding:"required"`
}

// OrderService manages order placement and the order/invoice lifecycle.
type OrderService interface {
	Place(ctx context.Context, customerID int64, input PlaceOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Order, error)
	Confirm(ctx context.Context, vendorID, orderID int64) (*domain.Order, error)
	Pay(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
}

type orderService struct {
	orderRepo   port.OrderRepository
	productRepo port.ProductRepository
	now         func() time.Time
}

// NewOrderService creates a new OrderService implementation.
func NewOrderService(orderRepo port.OrderRepository, productRepo port.ProductRepository, now func() time.Time) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, now: now}
}

// rentalDays counts billable days for a rental window; the first day is
// always billed, so a same-day rental costs one day.
func rentalDays(start, end time.Time) int64 {
	days := int64(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// Place creates a PENDING order. The total is computed server-side in
// decimal arithmetic: sum of quantity * dailyRate * rentalDays per line.
func (s *orderService) Place(ctx context.Context, customerID int64, input PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		if in.EndDate.Before(in.StartDate) {
			return nil, domain.ErrInvalidRentalDates
		}
		product, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Rentable || product.Status != domain.ProductStatusApproved {
			return nil, domain.ErrProductNotRentable
		}

		days := rentalDays(in.StartDate, in.EndDate)
		line := product.DailyRate.
			Mul(decimal.NewFromInt(int64(in.Quantity))).
			Mul(decimal.NewFromInt(days))
		total = total.Add(line)

		items = append(items, domain.OrderItem{
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			PricePerDay: product.DailyRate,
		})
	}

	order := &domain.Order{
		CustomerID:  customerID,
		Status:      domain.OrderStatusPending,
		TotalAmount: total,
		Items:       items,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID)
}

func (s *orderService) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	return s.orderRepo.ListByVendor(ctx, vendorID)
}

// vendorOwnsLine reports whether at least one line item of the order
// references a product owned by the vendor.
func (s *orderService) vendorOwnsLine(ctx context.Context, vendorID int64, order *domain.Order) (bool, error) {
	for _, item := range order.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return false, err
		}
		if product.VendorID == vendorID {
			return true, nil
		}
	}
	return false, nil
}

// Confirm moves a PENDING order to CONFIRMED and issues a PENDING invoice
// for the order total.
func (s *orderService) Confirm(ctx context.Context, vendorID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	owns, err := s.vendorOwnsLine(ctx, vendorID, order)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrInvalidOrderState
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusConfirmed); err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		OrderID:    orderID,
		Status:     domain.InvoiceStatusPending,
		AmountPaid: order.TotalAmount,
		IssuedAt:   s.now(),
	}
	if err := s.orderRepo.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	order.Status = domain.OrderStatusConfirmed
	order.Invoice = invoice
	return order, nil
}

// Pay marks the invoice of a confirmed order as PAID.
func (s *orderService) Pay(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	if order.Invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	if order.Invoice.Status != domain.InvoiceStatusPending {
		return nil, domain.ErrInvalidOrderState
	}

	if err := s.orderRepo.UpdateInvoiceStatus(ctx, order.Invoice.ID, domain.InvoiceStatusPaid); err != nil {
		return nil, err
	}
	order.Invoice.Status = domain.InvoiceStatusPaid
	return order, nil
}
