package sms

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/nvamotors/dealership-api/internal/config"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
)

// Client wraps the SMS provider. A client built from an incomplete
// configuration is disabled and refuses to send.
type Client struct {
	client     *twilio.RestClient
	enabled    bool
	fromNumber string
	toNumber   string
}

func NewClient(cfg config.SMSConfig) *Client {
	if !cfg.Enabled || cfg.AccountSID == "" || cfg.AuthToken == "" {
		return &Client{enabled: false}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Client{
		client:     client,
		enabled:    true,
		fromNumber: cfg.FromNumber,
		toNumber:   cfg.ToNumber,
	}
}

// IsEnabled returns whether the client is configured to send.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Send delivers a short text message to the dealership phone.
func (c *Client) Send(body string) (string, error) {
	if !c.enabled {
		return "", ierr.NewError("sms client is disabled").
			WithHint("SMS notifications are not configured").
			Mark(ierr.ErrSystem)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(c.toNumber)
	params.SetFrom(c.fromNumber)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to send SMS").
			Mark(ierr.ErrSystem)
	}

	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
