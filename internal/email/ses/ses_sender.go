package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"prorent/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	subject := "Welcome to ProRent"
	textBody := fmt.Sprintf("Hi %s,\n\nYour ProRent account is ready. Browse the catalog and start renting equipment today.\n\nProRent Team", toName)
	htmlBody := buildSimpleHTML("Welcome to ProRent", toName,
		"Your ProRent account is ready. Browse the catalog and start renting equipment today.")
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendProductDecisionEmail(ctx context.Context, toEmail, toName, productName string, approved bool) error {
	decision := "rejected"
	detail := "Please review the listing requirements and resubmit."
	if approved {
		decision = "approved"
		detail = "It is now visible to customers in the catalog."
	}
	subject := fmt.Sprintf("Your listing %q was %s", productName, decision)
	textBody := fmt.Sprintf("Hi %s,\n\nYour product listing %q was %s. %s\n\nProRent Team", toName, productName, decision, detail)
	htmlBody := buildSimpleHTML(subject, toName,
		fmt.Sprintf("Your product listing %q was %s. %s", productName, decision, detail))
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func buildSimpleHTML(heading, name, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #25343F;">%s</h2>
  <p>Hi %s,</p>
  <p>%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">ProRent - Equipment Rental Marketplace</p>
</body>
</html>`, heading, name, body)
}
