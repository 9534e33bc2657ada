package types

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestQueryFilterDefaults(t *testing.T) {
	var f QueryFilter
	assert.Equal(t, FilterDefaultLimit, f.GetLimit())
	assert.Equal(t, 0, f.GetOffset())
	assert.NoError(t, f.Validate())

	f = QueryFilter{Limit: lo.ToPtr(50), Offset: lo.ToPtr(10)}
	assert.Equal(t, 50, f.GetLimit())
	assert.Equal(t, 10, f.GetOffset())
}

func TestQueryFilterValidate(t *testing.T) {
	testCases := []struct {
		name      string
		filter    QueryFilter
		expectErr bool
	}{
		{name: "empty", filter: QueryFilter{}},
		{name: "limit_min", filter: QueryFilter{Limit: lo.ToPtr(1)}},
		{name: "limit_max", filter: QueryFilter{Limit: lo.ToPtr(FilterMaxLimit)}},
		{name: "limit_zero", filter: QueryFilter{Limit: lo.ToPtr(0)}, expectErr: true},
		{name: "limit_too_large", filter: QueryFilter{Limit: lo.ToPtr(FilterMaxLimit + 1)}, expectErr: true},
		{name: "offset_negative", filter: QueryFilter{Offset: lo.ToPtr(-1)}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehicleFilterValidate(t *testing.T) {
	testCases := []struct {
		name      string
		filter    VehicleFilter
		expectErr bool
	}{
		{name: "empty", filter: VehicleFilter{}},
		{
			name:   "price_range",
			filter: VehicleFilter{MinPrice: lo.ToPtr(5000.0), MaxPrice: lo.ToPtr(20000.0)},
		},
		{
			name:   "equal_bounds",
			filter: VehicleFilter{MinPrice: lo.ToPtr(5000.0), MaxPrice: lo.ToPtr(5000.0)},
		},
		{
			name:      "negative_min",
			filter:    VehicleFilter{MinPrice: lo.ToPtr(-1.0)},
			expectErr: true,
		},
		{
			name:      "negative_max",
			filter:    VehicleFilter{MaxPrice: lo.ToPtr(-1.0)},
			expectErr: true,
		},
		{
			name:      "inverted_range",
			filter:    VehicleFilter{MinPrice: lo.ToPtr(20000.0), MaxPrice: lo.ToPtr(5000.0)},
			expectErr: true,
		},
		{
			name:      "pagination_propagates",
			filter:    VehicleFilter{QueryFilter: QueryFilter{Limit: lo.ToPtr(0)}},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromotionFilterDefaults(t *testing.T) {
	assert.True(t, PromotionFilter{}.GetActiveOnly())
	assert.True(t, PromotionFilter{ActiveOnly: lo.ToPtr(true)}.GetActiveOnly())
	assert.False(t, PromotionFilter{ActiveOnly: lo.ToPtr(false)}.GetActiveOnly())
}

func TestTestimonialFilterDefaults(t *testing.T) {
	assert.True(t, TestimonialFilter{}.GetApprovedOnly())
	assert.False(t, TestimonialFilter{ApprovedOnly: lo.ToPtr(false)}.GetApprovedOnly())
}
