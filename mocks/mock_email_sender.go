package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	args := m.Called(ctx, toEmail, toName)
	return args.Error(0)
}

func (m *MockEmailSender) SendProductDecisionEmail(ctx context.Context, toEmail, toName, productName string, approved bool) error {
	args := m.Called(ctx, toEmail, toName, productName, approved)
	return args.Error(0)
}
