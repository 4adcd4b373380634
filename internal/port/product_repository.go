package port

import (
	"context"

	"prorent/internal/domain"
)

// ProductFilter narrows the public product listing.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	ListApproved(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Product, error)
	ListPending(ctx context.Context) ([]domain.Product, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProductStatus) error
	SetImageKey(ctx context.Context, id int64, imageKey string) error
}
