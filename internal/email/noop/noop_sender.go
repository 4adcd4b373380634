// Package noop provides an EmailSender that only logs. It is the default
// provider for local development, where no SES credentials exist.
package noop

import (
	"context"
	"log"

	"prorent/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	log.Printf("noop email: welcome to %s <%s>", toName, toEmail)
	return nil
}

func (s *noopSender) SendProductDecisionEmail(ctx context.Context, toEmail, toName, productName string, approved bool) error {
	log.Printf("noop email: product decision for %q (approved=%v) to %s <%s>", productName, approved, toName, toEmail)
	return nil
}
