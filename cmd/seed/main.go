// Command seed loads demo data: an admin, two vendors with approved
// products, a customer, and a handful of orders with paid and pending
// invoices spread over recent months so the dashboards have something
// to show.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"prorent/internal/config"
	"prorent/internal/domain"
	"prorent/internal/repository/postgres"
)

const demoPassword = "Demo@1234"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := postgres.NewUserRepo(db)
	productRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	strPtr := func(s string) *string { return &s }

	users := []*domain.User{
		{Email: "admin@prorent.example", Name: "Platform Admin", Role: domain.RoleAdmin},
		{
			Email: "vendor1@prorent.example", Name: "Asha Kapoor", Role: domain.RoleVendor,
			CompanyName: strPtr("Kapoor Event Rentals"), GSTIN: strPtr("07AAACK1234F1Z5"),
		},
		{
			Email: "vendor2@prorent.example", Name: "Ravi Menon", Role: domain.RoleVendor,
			CompanyName: strPtr("Menon Camera Hire"), GSTIN: strPtr("29AABCM5678G1Z3"),
		},
		{Email: "customer@prorent.example", Name: "Demo Customer", Role: domain.RoleCustomer},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	admin, vendor1, vendor2, customer := users[0], users[1], users[2], users[3]
	_ = admin

	products := []*domain.Product{
		{
			VendorID: vendor1.ID, Name: "Banquet Chair", Category: "furniture",
			Description: "Stackable padded banquet chair", Stock: 200, Rentable: true,
			DailyRate: decimal.RequireFromString("15.00"), Status: domain.ProductStatusApproved,
		},
		{
			VendorID: vendor1.ID, Name: "Round Table 6ft", Category: "furniture",
			Description: "Seats ten", Stock: 40, Rentable: true,
			DailyRate: decimal.RequireFromString("45.50"), Status: domain.ProductStatusApproved,
		},
		{
			VendorID: vendor2.ID, Name: "Mirrorless Camera Kit", Category: "electronics",
			Description: "Body, two lenses, tripod", Stock: 5, Rentable: true,
			DailyRate: decimal.RequireFromString("120.00"), Status: domain.ProductStatusApproved,
		},
		{
			VendorID: vendor2.ID, Name: "Studio Light Set", Category: "electronics",
			Description: "Awaiting review", Stock: 8, Rentable: true,
			DailyRate: decimal.RequireFromString("60.00"), Status: domain.ProductStatusPending,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}

	now := time.Now().UTC()
	type seedOrder struct {
		product   *domain.Product
		qty       int
		days      int
		monthsAgo int
		status    domain.OrderStatus
		invoice   domain.InvoiceStatus // empty = no invoice
	}
	seedOrders := []seedOrder{
		{products[0], 50, 2, 4, domain.OrderStatusReturned, domain.InvoiceStatusPaid},
		{products[1], 10, 3, 2, domain.OrderStatusReturned, domain.InvoiceStatusPaid},
		{products[2], 1, 5, 1, domain.OrderStatusPickedUp, domain.InvoiceStatusPaid},
		{products[2], 2, 2, 0, domain.OrderStatusConfirmed, domain.InvoiceStatusPending},
		{products[0], 20, 1, 0, domain.OrderStatusPending, ""},
	}

	for i, so := range seedOrders {
		start := now.AddDate(0, -so.monthsAgo, 0)
		end := start.AddDate(0, 0, so.days-1)
		total := so.product.DailyRate.
			Mul(decimal.NewFromInt(int64(so.qty))).
			Mul(decimal.NewFromInt(int64(so.days)))

		order := &domain.Order{
			CustomerID:  customer.ID,
			Status:      so.status,
			TotalAmount: total,
			Items: []domain.OrderItem{{
				ProductID:   so.product.ID,
				Quantity:    so.qty,
				StartDate:   start,
				EndDate:     end,
				PricePerDay: so.product.DailyRate,
			}},
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("seed order %d: %w", i+1, err)
		}

		if so.invoice != "" {
			inv := &domain.Invoice{
				OrderID:    order.ID,
				Status:     so.invoice,
				AmountPaid: total,
				IssuedAt:   start,
			}
			if err := orderRepo.CreateInvoice(ctx, inv); err != nil {
				return fmt.Errorf("seed invoice for order %d: %w", order.ID, err)
			}
		}
	}

	log.Printf("seeded %d users, %d products, %d orders (password for all demo accounts: %s)",
		len(users), len(products), len(seedOrders), demoPassword)
	return nil
}
