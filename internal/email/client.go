package email

import (
	"context"

	"github.com/resend/resend-go/v2"

	"github.com/nvamotors/dealership-api/internal/config"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
)

// Client wraps the transactional email provider. A client built from an
// incomplete configuration is disabled and refuses to send.
type Client struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
	toAddress   string
}

func NewClient(cfg config.EmailConfig) *Client {
	if !cfg.Enabled || cfg.APIKey == "" {
		return &Client{enabled: false}
	}

	return &Client{
		client:      resend.NewClient(cfg.APIKey),
		enabled:     true,
		fromAddress: cfg.FromAddress,
		toAddress:   cfg.ToAddress,
	}
}

// IsEnabled returns whether the client is configured to send.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// ToAddress returns the dealership inbox notifications are delivered to.
func (c *Client) ToAddress() string {
	return c.toAddress
}

// Send delivers an email to the dealership inbox.
func (c *Client) Send(ctx context.Context, subject, htmlContent string) (string, error) {
	if !c.enabled {
		return "", ierr.NewError("email client is disabled").
			WithHint("Email notifications are not configured").
			Mark(ierr.ErrSystem)
	}

	params := &resend.SendEmailRequest{
		From:    c.fromAddress,
		To:      []string{c.toAddress},
		Subject: subject,
		Html:    htmlContent,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to send email").
			Mark(ierr.ErrSystem)
	}

	return sent.Id, nil
}
