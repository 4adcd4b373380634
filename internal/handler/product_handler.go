package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prorent/internal/port"
	"prorent/internal/service"
)

// ProductHandler handles the public catalog, vendor listings, and the admin
// approval queue.
type ProductHandler struct {
	productService service.ProductService
	maxImageBytes  int64
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService, maxImageSizeMB int64) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		maxImageBytes:  maxImageSizeMB * 1024 * 1024,
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}

// Browse handles GET /api/products
// @Summary List approved products, optionally filtered by category or search
// @Tags products
// @Produce json
// @Success 200 {object} APIResponse
// @Router /products [get]
func (h *ProductHandler) Browse(c *gin.Context) {
	filter := port.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products, err := h.productService.Browse(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, products)
}

// Create handles POST /api/vendor/products
func (h *ProductHandler) Create(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "name, category, and daily_rate are required")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), vendorID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, product)
}

// ListMine handles GET /api/vendor/products
func (h *ProductHandler) ListMine(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}

	products, err := h.productService.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, products)
}

// Update handles PUT /api/vendor/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "name, category, and daily_rate are required")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), vendorID, productID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Delete handles DELETE /api/vendor/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), vendorID, productID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": productID})
}

// UploadImage handles POST /api/vendor/products/:id/image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "multipart field 'image' is required")
		return
	}
	if fileHeader.Size > h.maxImageBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "image exceeds maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer file.Close()

	key, err := h.productService.UploadImage(c.Request.Context(), vendorID, productID, port.UploadInput{
		Key:         fileHeader.Filename,
		Body:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"image_key": key})
}

// ImageURL handles GET /api/products/:id/image
func (h *ProductHandler) ImageURL(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	url, err := h.productService.ImageURL(c.Request.Context(), productID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// ListPending handles GET /api/admin/products/pending
func (h *ProductHandler) ListPending(c *gin.Context) {
	products, err := h.productService.ListPending(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, products)
}

// Approve handles POST /api/admin/products/:id/approve
func (h *ProductHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject handles POST /api/admin/products/:id/reject
func (h *ProductHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *ProductHandler) decide(c *gin.Context, approved bool) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Decide(c.Request.Context(), productID, approved); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"id": productID, "approved": approved})
}
