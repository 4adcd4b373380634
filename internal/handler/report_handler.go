package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prorent/internal/export"
	"prorent/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the admin dashboard stats and the vendor report,
// including spreadsheet export.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetAdminStats handles GET /api/admin/stats
// @Summary Platform-wide dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse "Missing or non-admin token"
// @Router /admin/stats [get]
func (h *ReportHandler) GetAdminStats(c *gin.Context) {
	rep, err := h.reportService.AdminReport(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// GetVendorReports handles GET /api/vendor/reports
// @Summary Sales report for the authenticated vendor
// @Tags vendor
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse "Missing or non-vendor token"
// @Router /vendor/reports [get]
func (h *ReportHandler) GetVendorReports(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}

	rep, err := h.reportService.VendorReport(c.Request.Context(), vendorID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// ExportVendorReport handles GET /api/vendor/reports/export?format=csv|xlsx
// @Summary Download the vendor report as a spreadsheet
// @Tags vendor
// @Produce octet-stream
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} binary
// @Router /vendor/reports/export [get]
func (h *ReportHandler) ExportVendorReport(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	rep, err := h.reportService.VendorReport(c.Request.Context(), vendorID)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "xlsx":
		contentType = xlsxContentType
		err = export.WriteXLSX(&buf, rep)
	default:
		contentType = "text/csv; charset=utf-8"
		err = export.WriteCSV(&buf, rep)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("vendor-report-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
