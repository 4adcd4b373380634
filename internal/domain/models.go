package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account: customer, vendor, or platform admin.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         UserRole  `db:"role" json:"role"`
	CompanyName  *string   `db:"company_name" json:"company_name,omitempty"`
	GSTIN        *string   `db:"gstin" json:"gstin,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Product represents a rentable item owned by a vendor.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	VendorID    int64           `db:"vendor_id" json:"vendor_id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Category    string          `db:"category" json:"category"`
	Stock       int             `db:"stock" json:"stock"`
	Rentable    bool            `db:"rentable" json:"rentable"`
	DailyRate   decimal.Decimal `db:"daily_rate" json:"daily_rate"`
	Status      ProductStatus   `db:"status" json:"status"`
	ImageKey    string          `db:"image_key" json:"image_key,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Order represents a customer rental order.
type Order struct {
	ID          int64           `db:"id" json:"id"`
	CustomerID  int64           `db:"customer_id" json:"customer_id"`
	Status      OrderStatus     `db:"status" json:"status"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	Items       []OrderItem     `db:"-" json:"items,omitempty"`
	Invoice     *Invoice        `db:"-" json:"invoice,omitempty"`
}

// OrderItem is a single product line within an order, with its rental window.
type OrderItem struct {
	ID          int64           `db:"id" json:"id"`
	OrderID     int64           `db:"order_id" json:"order_id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	Quantity    int             `db:"quantity" json:"quantity"`
	StartDate   time.Time       `db:"start_date" json:"start_date"`
	EndDate     time.Time       `db:"end_date" json:"end_date"`
	PricePerDay decimal.Decimal `db:"price_per_day" json:"price_per_day"`
	Product     *Product        `db:"-" json:"product,omitempty"`
}

// Invoice is issued when a vendor confirms an order. AmountPaid carries the
// invoiced amount; it counts as realized revenue only once Status is PAID.
type Invoice struct {
	ID         int64           `db:"id" json:"id"`
	OrderID    int64           `db:"order_id" json:"order_id"`
	Status     InvoiceStatus   `db:"status" json:"status"`
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	IssuedAt   time.Time       `db:"issued_at" json:"issued_at"`
}
