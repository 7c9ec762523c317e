package service

import (
	"context"
	"fmt"

	"fixerhub-backend/internal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) NotificationService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

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

func (s *emailService) SendTopUpReceipt(ctx context.Context, email, name string, amountCents, newBalanceCents int64) error {
	subject := "Top-up received"
	plainText := fmt.Sprintf("Hello %s,\n\nWe received your top-up of Bs %s. Your new wallet balance is Bs %s.\n\nThe FixerHub Team",
		name, utils.FormatCents(amountCents), utils.FormatCents(newBalanceCents))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Top-up received</h2>
				<p>Hello %s,</p>
				<p>We received your top-up of <strong>Bs %s</strong>.</p>
				<p>Your new wallet balance is <strong>Bs %s</strong>.</p>
			</body>
		</html>
	`, name, utils.FormatCents(amountCents), utils.FormatCents(newBalanceCents))

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendWalletBlockedNotice(ctx context.Context, email, name string, balanceCents int64) error {
	subject := "Your wallet has been blocked"
	plainText := fmt.Sprintf("Hello %s,\n\nYour wallet balance dropped to Bs %s and the wallet is now blocked. Top up your balance to keep receiving jobs.\n\nThe FixerHub Team",
		name, utils.FormatCents(balanceCents))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Wallet blocked</h2>
				<p>Hello %s,</p>
				<p>Your wallet balance dropped to <strong>Bs %s</strong> and the wallet is now blocked.</p>
				<p>Top up your balance to keep receiving jobs.</p>
			</body>
		</html>
	`, name, utils.FormatCents(balanceCents))

	return s.send(email, name, subject, plainText, htmlContent)
}
