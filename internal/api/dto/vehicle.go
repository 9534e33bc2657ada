package dto

import (
	"context"
	"time"

	"github.com/nvamotors/dealership-api/internal/domain/vehicle"
	"github.com/nvamotors/dealership-api/internal/types"
	"github.com/nvamotors/dealership-api/internal/validator"
)

type CreateVehicleRequest struct {
	Make         string   `json:"make" validate:"required,min=1,max=50"`
	Model        string   `json:"model" validate:"required,min=1,max=50"`
	Year         int      `json:"year" validate:"required,gte=1900,lte=2030"`
	Price        float64  `json:"price" validate:"gte=0"`
	Mileage      int      `json:"mileage" validate:"gte=0"`
	Transmission string   `json:"transmission" validate:"omitempty,max=50"`
	FuelType     string   `json:"fuel_type" validate:"omitempty,max=50"`
	Condition    string   `json:"condition" validate:"omitempty,max=50"`
	Image        string   `json:"image" validate:"omitempty,max=2048"`
	Gallery      []string `json:"gallery" validate:"omitempty,dive,max=2048"`
	Features     []string `json:"features" validate:"omitempty,dive,max=200"`
	Description  string   `json:"description" validate:"omitempty,max=5000"`
}

type UpdateVehicleRequest struct {
	Make         *string   `json:"make" validate:"omitempty,min=1,max=50"`
	Model        *string   `json:"model" validate:"omitempty,min=1,max=50"`
	Year         *int      `json:"year" validate:"omitempty,gte=1900,lte=2030"`
	Price        *float64  `json:"price" validate:"omitempty,gte=0"`
	Mileage      *int      `json:"mileage" validate:"omitempty,gte=0"`
	Transmission *string   `json:"transmission" validate:"omitempty,max=50"`
	FuelType     *string   `json:"fuel_type" validate:"omitempty,max=50"`
	Condition    *string   `json:"condition" validate:"omitempty,max=50"`
	Image        *string   `json:"image" validate:"omitempty,max=2048"`
	Gallery      *[]string `json:"gallery" validate:"omitempty,dive,max=2048"`
	Features     *[]string `json:"features" validate:"omitempty,dive,max=200"`
	Description  *string   `json:"description" validate:"omitempty,max=5000"`
}

type VehicleResponse struct {
	*vehicle.Vehicle
}

// ListVehiclesResponse carries one page of results plus enough for the
// client to keep paging.
type ListVehiclesResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Total    int64              `json:"total"`
	HasMore  bool               `json:"has_more"`
}

func (r *CreateVehicleRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateVehicleRequest) ToVehicle(ctx context.Context) *vehicle.Vehicle {
	now := time.Now().UTC()

	gallery := r.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	features := r.Features
	if features == nil {
		features = []string{}
	}

	return &vehicle.Vehicle{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VEHICLE),
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		Price:        r.Price,
		Mileage:      r.Mileage,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Condition:    r.Condition,
		Image:        r.Image,
		Gallery:      gallery,
		Features:     features,
		Description:  r.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *UpdateVehicleRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// Changes returns only the fields present in the request, keyed the way
// the store spells them.
func (r *UpdateVehicleRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Make != nil {
		changes["make"] = *r.Make
	}
	if r.Model != nil {
		changes["model"] = *r.Model
	}
	if r.Year != nil {
		changes["year"] = *r.Year
	}
	if r.Price != nil {
		changes["price"] = *r.Price
	}
	if r.Mileage != nil {
		changes["mileage"] = *r.Mileage
	}
	if r.Transmission != nil {
		changes["transmission"] = *r.Transmission
	}
	if r.FuelType != nil {
		changes["fuel_type"] = *r.FuelType
	}
	if r.Condition != nil {
		changes["condition"] = *r.Condition
	}
	if r.Image != nil {
		changes["image"] = *r.Image
	}
	if r.Gallery != nil {
		changes["gallery"] = *r.Gallery
	}
	if r.Features != nil {
		changes["features"] = *r.Features
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}
