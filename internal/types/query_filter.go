package types

import (
	"github.com/samber/lo"

	ierr "github.com/nvamotors/dealership-api/internal/errors"
)

const (
	FilterDefaultLimit = 20
	FilterMaxLimit     = 100
)

// QueryFilter represents a generic query filter with optional pagination
type QueryFilter struct {
	Limit  *int `json:"limit,omitempty" form:"limit"`
	Offset *int `json:"offset,omitempty" form:"offset"`
}

// DefaultQueryFilter defines default values for query filters
var DefaultQueryFilter = QueryFilter{
	Limit:  lo.ToPtr(FilterDefaultLimit),
	Offset: lo.ToPtr(0),
}

// GetLimit returns the limit value or default if not set
func (f QueryFilter) GetLimit() int {
	if f.Limit == nil {
		return *DefaultQueryFilter.Limit
	}
	return *f.Limit
}

// GetOffset returns the offset value or default if not set
func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return *DefaultQueryFilter.Offset
	}
	return *f.Offset
}

// Validate rejects out of range pagination before any query is built
func (f QueryFilter) Validate() error {
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FilterMaxLimit) {
		return ierr.NewError("limit out of range").
			WithHint("Limit must be between 1 and 100").
			WithReportableDetails(map[string]any{"limit": *f.Limit}).
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset out of range").
			WithHint("Offset must be zero or positive").
			WithReportableDetails(map[string]any{"offset": *f.Offset}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// VehicleFilter carries the vehicle listing query parameters.
// Make and Condition accept the sentinel value "all" which is
// equivalent to leaving them unset.
type VehicleFilter struct {
	QueryFilter

	Search    string   `json:"search,omitempty" form:"search"`
	Make      string   `json:"make,omitempty" form:"make"`
	Condition string   `json:"condition,omitempty" form:"condition"`
	MinPrice  *float64 `json:"min_price,omitempty" form:"min_price"`
	MaxPrice  *float64 `json:"max_price,omitempty" form:"max_price"`
}

func (f VehicleFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return ierr.NewError("min_price out of range").
			WithHint("Price bounds must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return ierr.NewError("max_price out of range").
			WithHint("Price bounds must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return ierr.NewError("min_price greater than max_price").
			WithHint("Minimum price must not exceed maximum price").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PromotionFilter narrows the promotion listing. ActiveOnly defaults to
// true: only promotions that are active and still valid are returned
// unless the caller explicitly asks for the unfiltered set.
type PromotionFilter struct {
	ActiveOnly *bool `json:"active_only,omitempty" form:"active_only"`
}

func (f PromotionFilter) GetActiveOnly() bool {
	if f.ActiveOnly == nil {
		return true
	}
	return *f.ActiveOnly
}

// TestimonialFilter narrows the testimonial listing. ApprovedOnly
// defaults to true so unmoderated submissions stay private.
type TestimonialFilter struct {
	ApprovedOnly *bool `json:"approved_only,omitempty" form:"approved_only"`
}

func (f TestimonialFilter) GetApprovedOnly() bool {
	if f.ApprovedOnly == nil {
		return true
	}
	return *f.ApprovedOnly
}
