package service

import (
	"context"
	"fmt"
	"log"
	"path"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prorent/internal/config"
	"prorent/internal/domain"
	"prorent/internal/port"
)

// ProductInput is the DTO for vendor product create/update requests.
type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	Rentable    bool            `json:"rentable"`
	DailyRate   decimal.Decimal `json:"daily_rate" binding:"required"`
}

// ProductService manages the product catalog: public browsing, vendor CRUD
// on owned listings, and the admin approval queue.
type ProductService interface {
	Browse(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, vendorID int64, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, vendorID, productID int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, vendorID, productID int64) error
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Product, error)
	UploadImage(ctx context.Context, vendorID, productID int64, input port.UploadInput) (string, error)
	ImageURL(ctx context.Context, productID int64) (string, error)
	ListPending(ctx context.Context) ([]domain.Product, error)
	Decide(ctx context.Context, productID int64, approved bool) error
}

type productService struct {
	productRepo port.ProductRepository
	userRepo    port.UserRepository
	storage     port.ObjectStorage
	email       port.EmailSender
	s3cfg       *config.S3Config
}

// NewProductService creates a new ProductService implementation.
func NewProductService(
	productRepo port.ProductRepository,
	userRepo port.UserRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	s3cfg *config.S3Config,
) ProductService {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
		storage:     storage,
		email:       email,
		s3cfg:       s3cfg,
	}
}

func (s *productService) Browse(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error) {
	return s.productRepo.ListApproved(ctx, filter)
}

func (s *productService) Create(ctx context.Context, vendorID int64, input ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		VendorID:    vendorID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Stock:       input.Stock,
		Rentable:    input.Rentable,
		DailyRate:   input.DailyRate,
		Status:      domain.ProductStatusPending,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// getOwned loads a product and verifies vendor ownership.
func (s *productService) getOwned(ctx context.Context, vendorID, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.VendorID != vendorID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, vendorID, productID int64, input ProductInput) (*domain.Product, error) {
	product, err := s.getOwned(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.Stock = input.Stock
	product.Rentable = input.Rentable
	product.DailyRate = input.DailyRate

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, vendorID, productID int64) error {
	if _, err := s.getOwned(ctx, vendorID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

func (s *productService) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Product, error) {
	return s.productRepo.ListByVendor(ctx, vendorID)
}

func (s *productService) UploadImage(ctx context.Context, vendorID, productID int64, input port.UploadInput) (string, error) {
	if _, err := s.getOwned(ctx, vendorID, productID); err != nil {
		return "", err
	}

	ext := path.Ext(input.Key)
	key := fmt.Sprintf("products/%d/%s%s", productID, uuid.New().String(), ext)
	input.Bucket = s.s3cfg.Bucket
	input.Key = key

	if _, err := s.storage.Upload(ctx, input); err != nil {
		return "", domain.ErrUploadFailed
	}
	if err := s.productRepo.SetImageKey(ctx, productID, key); err != nil {
		return "", err
	}
	return key, nil
}

// ImageURL returns a short-lived presigned URL for the product's image.
func (s *productService) ImageURL(ctx context.Context, productID int64) (string, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if product.ImageKey == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, product.ImageKey, s.s3cfg.PresignExpiry)
}

func (s *productService) ListPending(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListPending(ctx)
}

// Decide approves or rejects a pending product and notifies the vendor.
func (s *productService) Decide(ctx context.Context, productID int64, approved bool) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	status := domain.ProductStatusRejected
	if approved {
		status = domain.ProductStatusApproved
	}
	if err := s.productRepo.UpdateStatus(ctx, productID, status); err != nil {
		return err
	}

	vendor, err := s.userRepo.GetByID(ctx, product.VendorID)
	if err != nil {
		log.Printf("product decision email skipped, vendor %d lookup failed: %v", product.VendorID, err)
		return nil
	}
	if err := s.email.SendProductDecisionEmail(ctx, vendor.Email, vendor.Name, product.Name, approved); err != nil {
		log.Printf("product decision email to %s failed: %v", vendor.Email, err)
	}
	return nil
}
