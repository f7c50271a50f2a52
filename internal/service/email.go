package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	opsEmail  string
}

// NewEmailService returns a SendGrid-backed EmailService, or a no-op one
// when the API key is empty (local development).
func NewEmailService(apiKey, fromEmail, fromName, opsEmail string) EmailService {
	if apiKey == "" {
		return &noopEmailService{}
	}
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		opsEmail:  opsEmail,
	}
}

func (s *sendGridEmailService) SendOpsNotification(ctx context.Context, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Operations", s.opsEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

type noopEmailService struct{}

func (s *noopEmailService) SendOpsNotification(ctx context.Context, subject, body string) error {
	return nil
}
