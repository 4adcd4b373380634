package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"prorent/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) AdminReport(ctx context.Context) (*domain.AdminReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminReport), args.Error(1)
}

func (m *MockReportService) VendorReport(ctx context.Context, vendorID int64) (*domain.VendorReport, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorReport), args.Error(1)
}
