package notification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/domain/contact"
	"github.com/nvamotors/dealership-api/internal/domain/faq"
	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
	"github.com/nvamotors/dealership-api/internal/email"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/sms"
	"github.com/nvamotors/dealership-api/internal/types"
)

type NotificationSuite struct {
	suite.Suite
	logger *logger.Logger
	cfg    *config.Configuration
}

func TestNotification(t *testing.T) {
	suite.Run(t, new(NotificationSuite))
}

func (s *NotificationSuite) SetupSuite() {
	s.cfg = &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
	}

	var err error
	s.logger, err = logger.NewLogger(s.cfg)
	s.Require().NoError(err)
}

func (s *NotificationSuite) TestDispatchWithNoConfiguredChannels() {
	d := NewDispatcher(
		email.NewClient(config.EmailConfig{Enabled: false}),
		sms.NewClient(config.SMSConfig{Enabled: false}),
		s.cfg,
		s.logger,
	)

	delivered := d.Dispatch(context.Background(), Event{
		Kind:    EventContactSubmitted,
		Subject: "test",
	})
	s.False(delivered)
}

func (s *NotificationSuite) TestDispatchWithNilClients() {
	d := NewDispatcher(nil, nil, s.cfg, s.logger)

	delivered := d.Dispatch(context.Background(), Event{Kind: EventTestDriveScheduled})
	s.False(delivered)
}

func (s *NotificationSuite) TestDispatchAsyncNeverPanicsCaller() {
	d := NewDispatcher(nil, nil, s.cfg, s.logger)

	s.NotPanics(func() {
		d.DispatchAsync(Event{Kind: EventCustomSearchSubmitted})
	})
	// give the detached goroutine a moment to finish
	time.Sleep(10 * time.Millisecond)
}

func (s *NotificationSuite) TestNewTestDriveEvent() {
	event := NewTestDriveEvent(&testdrive.Request{
		BookingCode:     "TD-ABC123",
		CustomerName:    "Maria Garcia",
		CustomerEmail:   "maria@example.com",
		CustomerPhone:   "+1 555 0100",
		SelectedVehicle: "Toyota Camry 2022",
		PreferredDate:   "2026-09-15",
		PreferredTime:   "10:30",
	})

	s.Equal(EventTestDriveScheduled, event.Kind)
	s.Equal("New Test Drive Request - TD-ABC123", event.Subject)
	s.Contains(event.HTMLBody, "TD-ABC123")
	s.Contains(event.HTMLBody, "Maria Garcia")
	s.Contains(event.SMSBody, "TD-ABC123")
	s.Contains(event.SMSBody, "Toyota Camry 2022")
	// empty optional fields leave no row behind
	s.NotContains(event.HTMLBody, "Notes")
}

func (s *NotificationSuite) TestNewContactEventEscapesHTML() {
	event := NewContactEvent(&contact.Submission{
		Name:    "<script>alert(1)</script>",
		Email:   "eve@example.com",
		Subject: "hello",
		Message: "hi & bye",
	})

	s.Equal(EventContactSubmitted, event.Kind)
	s.NotContains(event.HTMLBody, "<script>")
	s.Contains(event.HTMLBody, "&lt;script&gt;")
	s.Contains(event.HTMLBody, "hi &amp; bye")
}

func (s *NotificationSuite) TestNewContactEventTruncatesSMSSubject() {
	long := strings.Repeat("x", 200)
	event := NewContactEvent(&contact.Submission{
		Name:    "John",
		Email:   "john@example.com",
		Subject: long,
		Message: "body",
	})

	s.Contains(event.SMSBody, "...")
	s.Less(len(event.SMSBody), len(long))
}

func (s *NotificationSuite) TestNewFAQQuestionEvent() {
	event := NewFAQQuestionEvent(&faq.Question{
		Name:     "Ana",
		Email:    "ana@example.com",
		Question: "Do you buy used cars?",
	})

	s.Equal(EventFAQQuestionSubmitted, event.Kind)
	s.Contains(event.Subject, "Ana")
	s.Contains(event.HTMLBody, "Do you buy used cars?")
	s.Contains(event.SMSBody, "Do you buy used cars?")
}

func (s *NotificationSuite) TestNewCustomSearchEvent() {
	event := NewCustomSearchEvent(&contact.CustomSearchRequest{
		Name:           "Ana Lopez",
		Email:          "ana@example.com",
		PreferredBrand: "Honda",
		BudgetRange:    "$15,000 - $20,000",
	})

	s.Equal(EventCustomSearchSubmitted, event.Kind)
	s.Contains(event.Subject, "Ana Lopez")
	s.Contains(event.HTMLBody, "Honda")
	s.Contains(event.SMSBody, "ana@example.com")
}
