package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"roomshare-backend/internal/logger"
)

type sendGridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendShareReminder(ctx context.Context, toEmail, toName, payerName, description string, amountPaise int64, targetUPIID string) error {
	subject := fmt.Sprintf("Reminder: %s for \"%s\"", formatPaise(amountPaise), description)
	plainText := fmt.Sprintf(
		"Hi %s,\n\n%s is waiting on your share of %s for \"%s\".\nPay to UPI ID %s, or settle it from the app.\n\nThanks!",
		toName, payerName, formatPaise(amountPaise), description, targetUPIID,
	)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong> is waiting on your share of <strong>%s</strong> for \"%s\".</p><p>Pay to UPI ID <code>%s</code>, or settle it from the app.</p><p>Thanks!</p>",
		toName, payerName, formatPaise(amountPaise), description, targetUPIID,
	)
	return s.send(toEmail, toName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendPendingDigest(ctx context.Context, toEmail, toName string, pendingCount int, totalPaise int64) error {
	subject := fmt.Sprintf("You have %d unsettled expense share(s)", pendingCount)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYou have %d unsettled share(s) totalling %s.\nOpen the app to settle up with your roommates.\n\nThanks!",
		toName, pendingCount, formatPaise(totalPaise),
	)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>You have <strong>%d</strong> unsettled share(s) totalling <strong>%s</strong>.</p><p>Open the app to settle up with your roommates.</p><p>Thanks!</p>",
		toName, pendingCount, formatPaise(totalPaise),
	)
	return s.send(toEmail, toName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) send(toEmail, toName, subject, plainText, htmlContent string) error {
	logger.ExternalServiceCall("SendGrid", "Send", "to", toEmail, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	response, err := s.client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("SendGrid", "Send", err, "to", toEmail)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("SendGrid", "Send", err, "to", toEmail)
		return err
	}

	logger.ExternalServiceResult("SendGrid", "Send", nil, "to", toEmail, "statusCode", response.StatusCode)
	return nil
}

// formatPaise renders an integer paise amount as rupees, e.g. 40033 -> "₹400.33".
func formatPaise(paise int64) string {
	return fmt.Sprintf("₹%d.%02d", paise/100, paise%100)
}
