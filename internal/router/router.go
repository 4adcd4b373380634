package router

import (
	"github.com/gin-gonic/gin"

	"prorent/internal/domain"
	"prorent/internal/handler"
	"prorent/internal/middleware"
	"prorent/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	reportH *handler.ReportHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Public catalog
	api.GET("/products", productH.Browse)
	api.GET("/products/:id/image", productH.ImageURL)

	// Customer routes - any authenticated user
	orders := api.Group("/orders")
	orders.Use(middleware.AuthMiddleware(authSvc))
	orders.POST("", orderH.Place)
	orders.GET("", orderH.ListMine)
	orders.POST("/:id/pay", orderH.Pay)

	// Vendor routes
	vendor := api.Group("/vendor")
	vendor.Use(middleware.AuthMiddleware(authSvc))
	vendor.Use(middleware.RequireRole(domain.RoleVendor))
	vendor.GET("/products", productH.ListMine)
	vendor.POST("/products", productH.Create)
	vendor.PUT("/products/:id", productH.Update)
	vendor.DELETE("/products/:id", productH.Delete)
	vendor.POST("/products/:id/image", productH.UploadImage)
	vendor.GET("/orders", orderH.ListVendor)
	vendor.POST("/orders/:id/confirm", orderH.Confirm)
	vendor.GET("/reports", reportH.GetVendorReports)
	vendor.GET("/reports/export", reportH.ExportVendorReport)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/stats", reportH.GetAdminStats)
	admin.GET("/users", userH.List)
	admin.GET("/users/:id", userH.Get)
	admin.GET("/products/pending", productH.ListPending)
	admin.POST("/products/:id/approve", productH.Approve)
	admin.POST("/products/:id/reject", productH.Reject)

	return r
}
