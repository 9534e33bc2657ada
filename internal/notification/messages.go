package notification

import (
	"fmt"
	"html"
	"strings"

	"github.com/nvamotors/dealership-api/internal/domain/contact"
	"github.com/nvamotors/dealership-api/internal/domain/faq"
	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
)

// EventKind identifies which public submission triggered a notification.
type EventKind string

const (
	EventTestDriveScheduled    EventKind = "test_drive_scheduled"
	EventContactSubmitted      EventKind = "contact_submitted"
	EventFAQQuestionSubmitted  EventKind = "faq_question_submitted"
	EventCustomSearchSubmitted EventKind = "custom_search_submitted"
)

// Event is a fully rendered notification ready for fan-out. The email
// channel uses Subject and HTMLBody, the SMS channel uses SMSBody.
type Event struct {
	Kind     EventKind
	Subject  string
	HTMLBody string
	SMSBody  string
}

func htmlRow(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", html.EscapeString(label), html.EscapeString(value))
}

func renderHTML(title string, rows ...string) string {
	var b strings.Builder
	b.WriteString("<h2>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</h2>")
	for _, row := range rows {
		b.WriteString(row)
	}
	return b.String()
}

// NewTestDriveEvent renders the notification for a new booking.
func NewTestDriveEvent(req *testdrive.Request) Event {
	return Event{
		Kind:    EventTestDriveScheduled,
		Subject: fmt.Sprintf("New Test Drive Request - %s", req.BookingCode),
		HTMLBody: renderHTML("New Test Drive Request",
			htmlRow("Booking Code", req.BookingCode),
			htmlRow("Customer", req.CustomerName),
			htmlRow("Email", req.CustomerEmail),
			htmlRow("Phone", req.CustomerPhone),
			htmlRow("Vehicle", req.SelectedVehicle),
			htmlRow("Preferred Date", req.PreferredDate),
			htmlRow("Preferred Time", req.PreferredTime),
			htmlRow("Notes", req.AdditionalNotes),
		),
		SMSBody: fmt.Sprintf("NVAMOTORS: new test drive %s. %s wants %s on %s at %s. Call %s",
			req.BookingCode, req.CustomerName, req.SelectedVehicle,
			req.PreferredDate, req.PreferredTime, req.CustomerPhone),
	}
}

// NewContactEvent renders the notification for a contact form entry.
func NewContactEvent(s *contact.Submission) Event {
	return Event{
		Kind:    EventContactSubmitted,
		Subject: fmt.Sprintf("New Contact Message: %s", s.Subject),
		HTMLBody: renderHTML("New Contact Message",
			htmlRow("Name", s.Name),
			htmlRow("Email", s.Email),
			htmlRow("Phone", s.Phone),
			htmlRow("Subject", s.Subject),
			htmlRow("Message", s.Message),
		),
		SMSBody: fmt.Sprintf("NVAMOTORS: new contact message from %s (%s): %s",
			s.Name, s.Email, truncate(s.Subject, 80)),
	}
}

// NewFAQQuestionEvent renders the notification for a customer question.
func NewFAQQuestionEvent(q *faq.Question) Event {
	return Event{
		Kind:    EventFAQQuestionSubmitted,
		Subject: fmt.Sprintf("New Customer Question from %s", q.Name),
		HTMLBody: renderHTML("New Customer Question",
			htmlRow("Name", q.Name),
			htmlRow("Email", q.Email),
			htmlRow("Question", q.Question),
		),
		SMSBody: fmt.Sprintf("NVAMOTORS: new question from %s: %s",
			q.Name, truncate(q.Question, 100)),
	}
}

// NewCustomSearchEvent renders the notification for a vehicle search lead.
func NewCustomSearchEvent(req *contact.CustomSearchRequest) Event {
	return Event{
		Kind:    EventCustomSearchSubmitted,
		Subject: fmt.Sprintf("New Custom Vehicle Search from %s", req.Name),
		HTMLBody: renderHTML("New Custom Vehicle Search",
			htmlRow("Name", req.Name),
			htmlRow("Email", req.Email),
			htmlRow("Phone", req.Phone),
			htmlRow("Preferred Brand", req.PreferredBrand),
			htmlRow("Budget", req.BudgetRange),
			htmlRow("Vehicle Type", req.VehicleType),
			htmlRow("Year Range", req.YearRange),
			htmlRow("Requirements", req.SpecificRequirements),
			htmlRow("Suggestions", req.Suggestions),
		),
		SMSBody: fmt.Sprintf("NVAMOTORS: new vehicle search lead from %s (%s)",
			req.Name, req.Email),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
