package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"prorent/internal/domain"
	"prorent/internal/service"
	"prorent/mocks"
)

func rentableProduct(id, vendorID int64, rate string) *domain.Product {
	return &domain.Product{
		ID:        id,
		VendorID:  vendorID,
		Rentable:  true,
		Status:    domain.ProductStatusApproved,
		DailyRate: decimal.RequireFromString(rate),
	}
}

func TestOrderService_Place_ComputesTotalServerSide(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewOrderService(orderRepo, productRepo, fixedNow)

	productRepo.On("GetByID", mock.Anything, int64(10)).Return(rentableProduct(10, 1, "15.50"), nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	order, err := svc.Place(context.Background(), 3, service.PlaceOrderInput{
		Items: []service.OrderItemInput{{
			ProductID: 10,
			Quantity:  4,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 2), // 3 billable days
		}},
	})

	assert.NoError(t, err)
	// 4 * 15.50 * 3 days
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("186.00")),
		"got total %s", order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Place_SameDayRentalBillsOneDay(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewOrderService(orderRepo, productRepo, fixedNow)

	productRepo.On("GetByID", mock.Anything, int64(10)).Return(rentableProduct(10, 1, "100.00"), nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)

	day := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	order, err := svc.Place(context.Background(), 3, service.PlaceOrderInput{
		Items: []service.OrderItemInput{{ProductID: 10, Quantity: 1, StartDate: day, EndDate: day}},
	})

	assert.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestOrderService_Place_EmptyOrderRejected(t *testing.T) {
	svc := service.NewOrderService(new(mocks.MockOrderRepo), new(mocks.MockProductRepo), fixedNow)

	_, err := svc.Place(context.Background(), 3, service.PlaceOrderInput{})

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestOrderService_Place_EndBeforeStartRejected(t *testing.T) {
	svc := service.NewOrderService(new(mocks.MockOrderRepo), new(mocks.MockProductRepo), fixedNow)

	start := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	_, err := svc.Place(context.Background(), 3, service.PlaceOrderInput{
		Items: []service.OrderItemInput{{
			ProductID: 10, Quantity: 1, StartDate: start, EndDate: start.AddDate(0, 0, -1),
		}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRentalDates)
}

func TestOrderService_Place_UnapprovedProductRejected(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewOrderService(orderRepo, productRepo, fixedNow)

	pending := rentableProduct(10, 1, "15.50")
	pending.Status = domain.ProductStatusPending
	productRepo.On("GetByID", mock.Anything, int64(10)).Return(pending, nil)

	day := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Place(context.Background(), 3, service.PlaceOrderInput{
		Items: []service.OrderItemInput{{ProductID: 10, Quantity: 1, StartDate: day, EndDate: day}},
	})

	assert.ErrorIs(t, err, domain.ErrProductNotRentable)
	orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_Confirm_IssuesPendingInvoice(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewOrderService(orderRepo, productRepo, fixedNow)

	order := &domain.Order{
		ID: 100, CustomerID: 3, Status: domain.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("186.00"),
		Items:       []domain.OrderItem{{OrderID: 100, ProductID: 10}},
	}
	orderRepo.On("GetByID", mock.Anything, int64(100)).Return(order, nil)
	productRepo.On("GetByID", mock.Anything, int64(10)).Return(rentableProduct(10, 7, "15.50"), nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(100), domain.OrderStatusConfirmed).Return(nil)
	orderRepo.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.OrderID == 100 &&
			inv.Status == domain.InvoiceStatusPending &&
			inv.AmountPaid.Equal(decimal.RequireFromString("186.00")) &&
			inv.IssuedAt.Equal(fixedNow())
	})).Return(nil)

	confirmed, err := svc.Confirm(context.Background(), 7, 100)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.Invoice)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Confirm_VendorWithoutLineItemForbidden(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewOrderService(orderRepo, productRepo, fixedNow)

	order := &domain.Order{
		ID: 100, Status: domain.OrderStatusPending,
		Items: []domain.OrderItem{{OrderID: 100, ProductID: 10}},
	}
	orderRepo.On("GetByID", mock.Anything, int64(100)).Return(order, nil)
	productRepo.On("GetByID", mock.Anything, int64(10)).Return(rentableProduct(10, 7, "15.50"), nil)

	_, err := svc.Confirm(context.Background(), 99, 100)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestOrderService_Confirm_NonPendingOrderRejected(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewOrderService(orderRepo, productRepo, fixedNow)

	order := &domain.Order{
		ID: 100, Status: domain.OrderStatusConfirmed,
		Items: []domain.OrderItem{{OrderID: 100, ProductID: 10}},
	}
	orderRepo.On("GetByID", mock.Anything, int64(100)).Return(order, nil)
	productRepo.On("GetByID", mock.Anything, int64(10)).Return(rentableProduct(10, 7, "15.50"), nil)

	_, err := svc.Confirm(context.Background(), 7, 100)

	assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
}

func TestOrderService_Pay_MarksInvoicePaid(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	svc := service.NewOrderService(orderRepo, new(mocks.MockProductRepo), fixedNow)

	order := &domain.Order{
		ID: 100, CustomerID: 3, Status: domain.OrderStatusConfirmed,
		Invoice: &domain.Invoice{ID: 1, OrderID: 100, Status: domain.InvoiceStatusPending},
	}
	orderRepo.On("GetByID", mock.Anything, int64(100)).Return(order, nil)
	orderRepo.On("UpdateInvoiceStatus", mock.Anything, int64(1), domain.InvoiceStatusPaid).Return(nil)

	paid, err := svc.Pay(context.Background(), 3, 100)

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, paid.Invoice.Status)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Pay_OtherCustomersOrderForbidden(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	svc := service.NewOrderService(orderRepo, new(mocks.MockProductRepo), fixedNow)

	order := &domain.Order{
		ID: 100, CustomerID: 3,
		Invoice: &domain.Invoice{ID: 1, Status: domain.InvoiceStatusPending},
	}
	orderRepo.On("GetByID", mock.Anything, int64(100)).Return(order, nil)

	_, err := svc.Pay(context.Background(), 4, 100)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderService_Pay_AlreadyPaidRejected(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	svc := service.NewOrderService(orderRepo, new(mocks.MockProductRepo), fixedNow)

	order := &domain.Order{
		ID: 100, CustomerID: 3,
		Invoice: &domain.Invoice{ID: 1, Status: domain.InvoiceStatusPaid},
	}
	orderRepo.On("GetByID", mock.Anything, int64(100)).Return(order, nil)

	_, err := svc.Pay(context.Background(), 3, 100)

	assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
	orderRepo.AssertNotCalled(t, "UpdateInvoiceStatus")
}
