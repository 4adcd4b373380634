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

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products
		(vendor_id, name, description, category, stock, rentable, daily_rate, status, image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query,
		product.VendorID, product.Name, product.Description, product.Category,
		product.Stock, product.Rentable, product.DailyRate, product.Status, product.ImageKey,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, `SELECT * FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products SET
		name = $1, description = $2, category = $3, stock = $4,
		rentable = $5, daily_rate = $6, updated_at = NOW()
		WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Category, product.Stock,
		product.Rentable, product.DailyRate, product.ID,
	)
	if err != nil {
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) ListApproved(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error) {
	query := `SELECT * FROM products WHERE status = 'APPROVED'`
	args := []interface{}{}
	argN := 1

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argN)
		args = append(args, filter.Category)
		argN++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argN)
		args = append(args, "%"+filter.Search+"%")
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}
	query += " ORDER BY created_at DESC"

	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("productRepo.ListApproved: %w", err)
	}
	return products, nil
}

func (r *productRepo) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("productRepo.ListByVendor: %w", err)
	}
	return products, nil
}

func (r *productRepo) ListPending(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE status = 'PENDING' ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("productRepo.ListPending: %w", err)
	}
	return products, nil
}

func (r *productRepo) UpdateStatus(ctx context.Context, id int64, status domain.ProductStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("productRepo.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) SetImageKey(ctx context.Context, id int64, imageKey string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET image_key = $1, updated_at = NOW() WHERE id = $2`, imageKey, id)
	if err != nil {
		return fmt.Errorf("productRepo.SetImageKey: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
