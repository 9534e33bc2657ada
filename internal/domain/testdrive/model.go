package testdrive

import (
	"time"

	"github.com/nvamotors/dealership-api/internal/types"
)

// Request is a customer booking for a test drive. Customers schedule
// and look up their own requests; status transitions are admin only.
// Field names follow the booking form's camelCase payload.
type Request struct {
	ID string `bson:"id" json:"id"`

	// BookingCode is the short human readable reference handed back to
	// the customer, e.g. TD-XY12A8Q.
	BookingCode string `bson:"booking_code" json:"booking_code"`

	CustomerName    string `bson:"customerName" json:"customerName"`
	CustomerEmail   string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone   string `bson:"customerPhone" json:"customerPhone"`
	SelectedVehicle string `bson:"selectedVehicle" json:"selectedVehicle"`
	PreferredDate   string `bson:"preferredDate" json:"preferredDate"`
	PreferredTime   string `bson:"preferredTime" json:"preferredTime"`
	AdditionalNotes string `bson:"additionalNotes" json:"additionalNotes"`

	Status types.TestDriveStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
