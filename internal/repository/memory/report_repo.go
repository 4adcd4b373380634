// Package memory provides an in-memory ReportRepository. It backs unit tests
// that need real scoping semantics (order -> line item -> product -> vendor)
// without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"prorent/internal/domain"
	"prorent/internal/port"
)

// ReportStore holds a marketplace snapshot and serves report reads from it.
type ReportStore struct {
	mu       sync.RWMutex
	users    []domain.User
	products []domain.Product
	orders   []domain.Order
	invoices []domain.Invoice
}

var _ port.ReportRepository = (*ReportStore)(nil)

// NewReportStore creates an empty in-memory report repository.
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Seed replaces the stored snapshot.
func (s *ReportStore) Seed(users []domain.User, products []domain.Product, orders []domain.Order, invoices []domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.products = products
	s.orders = orders
	s.invoices = invoices
}

func (s *ReportStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...), nil
}

func (s *ReportStore) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invoice(nil), s.invoices...), nil
}

func (s *ReportStore) CountUsers(ctx context.Context) (*domain.UserCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := &domain.UserCounts{Total: len(s.users)}
	for _, u := range s.users {
		switch u.Role {
		case domain.RoleCustomer:
			counts.Customers++
		case domain.RoleVendor:
			counts.Vendors++
		}
	}
	return counts, nil
}

func (s *ReportStore) CountProducts(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), nil
}

func (s *ReportStore) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[int64]domain.User, len(s.users))
	for _, u := range s.users {
		byID[u.ID] = u
	}

	sorted := append([]domain.Order(nil), s.orders...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]domain.RecentOrder, 0, len(sorted))
	for _, o := range sorted {
		u := byID[o.CustomerID]
		amount, _ := o.TotalAmount.Round(2).Float64()
		out = append(out, domain.RecentOrder{
			ID:          o.ID,
			User:        u.Name,
			Email:       u.Email,
			TotalAmount: amount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out, nil
}

func (s *ReportStore) TopVendors(ctx context.Context, limit int) ([]domain.TopVendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	productCount := make(map[int64]int)
	for _, p := range s.products {
		productCount[p.VendorID]++
	}

	var vendors []domain.TopVendor
	for _, u := range s.users {
		if u.Role != domain.RoleVendor {
			continue
		}
		company := ""
		if u.CompanyName != nil {
			company = *u.CompanyName
		}
		vendors = append(vendors, domain.TopVendor{
			ID:            u.ID,
			Name:          u.Name,
			CompanyName:   company,
			ProductsCount: productCount[u.ID],
		})
	}
	sort.Slice(vendors, func(i, j int) bool {
		if vendors[i].ProductsCount != vendors[j].ProductsCount {
			return vendors[i].ProductsCount > vendors[j].ProductsCount
		}
		return vendors[i].ID < vendors[j].ID
	})
	if len(vendors) > limit {
		vendors = vendors[:limit]
	}
	return vendors, nil
}

// vendorOrderIDs resolves which orders contain at least one line item whose
// product is owned by the vendor.
func (s *ReportStore) vendorOrderIDs(vendorID int64) map[int64]bool {
	owned := make(map[int64]bool, len(s.products))
	for _, p := range s.products {
		if p.VendorID == vendorID {
			owned[p.ID] = true
		}
	}
	ids := make(map[int64]bool)
	for _, o := range s.orders {
		for _, item := range o.Items {
			if owned[item.ProductID] {
				ids[o.ID] = true
				break
			}
		}
	}
	return ids
}

func (s *ReportStore) ListVendorOrders(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.vendorOrderIDs(vendorID)
	var out []domain.Order
	for _, o := range s.orders {
		if ids[o.ID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *ReportStore) ListVendorPaidInvoices(ctx context.Context, vendorID int64, since time.Time) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.vendorOrderIDs(vendorID)
	var out []domain.Invoice
	for _, inv := range s.invoices {
		if inv.Status != domain.InvoiceStatusPaid || !ids[inv.OrderID] || inv.IssuedAt.Before(since) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (s *ReportStore) CountVendorProducts(ctx context.Context, vendorID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, p := range s.products {
		if p.VendorID == vendorID {
			count++
		}
	}
	return count, nil
}
