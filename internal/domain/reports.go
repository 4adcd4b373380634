package domain

import "time"

// Reporting window and list limits shared by the admin and vendor reports.
const (
	ReportWindowMonths = 6
	RecentOrdersLimit  = 5
	TopVendorsLimit    = 5
)

// JSON keys on the report DTOs are camelCase: these payloads are consumed
// directly by the dashboard charts.

// MonthRevenue is one point of the revenue-by-month chart.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// StatusCount is one slice of the orders-by-status chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ReportCharts groups the chart series shared by both reports.
type ReportCharts struct {
	RevenueByMonth []MonthRevenue `json:"revenueByMonth"`
	OrdersByStatus []StatusCount  `json:"ordersByStatus"`
}

// VendorStats holds the headline numbers of a vendor report.
type VendorStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	ProductCount int     `json:"productCount"`
}

// VendorReport is the full vendor reports payload.
type VendorReport struct {
	Stats  VendorStats  `json:"stats"`
	Charts ReportCharts `json:"charts"`
}

// AdminStats holds the platform-wide dashboard counters. TotalRevenue is
// all-time cash collected (PAID invoices); PendingRevenue is cash expected
// (every invoice not yet PAID).
type AdminStats struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalVendors   int     `json:"totalVendors"`
	TotalInvoices  int     `json:"totalInvoices"`
	PendingRevenue float64 `json:"pendingRevenue"`
}

// RecentOrder is a denormalized order row for the admin dashboard list.
type RecentOrder struct {
	ID          int64       `db:"id" json:"id"`
	User        string      `db:"user_name" json:"user"`
	Email       string      `db:"email" json:"email"`
	TotalAmount float64     `db:"total_amount" json:"totalAmount"`
	Status      OrderStatus `db:"status" json:"status"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

// TopVendor is a vendor ranked by published product count.
type TopVendor struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	CompanyName   string `db:"company_name" json:"companyName"`
	ProductsCount int    `db:"products_count" json:"productsCount"`
}

// AdminReport is the full admin stats payload.
type AdminReport struct {
	Stats        AdminStats    `json:"stats"`
	Charts       ReportCharts  `json:"charts"`
	RecentOrders []RecentOrder `json:"recentOrders"`
	TopVendors   []TopVendor   `json:"topVendors"`
}

// UserCounts holds role-segmented user totals for the admin dashboard.
type UserCounts struct {
	Total     int `db:"total"`
	Customers int `db:"customers"`
	Vendors   int `db:"vendors"`
}
