package testutil

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/domain/testimonial"
	"github.com/nvamotors/dealership-api/internal/types"
)

// InMemoryTestimonialStore implements testimonial.Repository
type InMemoryTestimonialStore struct {
	*InMemoryStore[*testimonial.Testimonial]
}

func NewInMemoryTestimonialStore() *InMemoryTestimonialStore {
	return &InMemoryTestimonialStore{
		InMemoryStore: NewInMemoryStore[*testimonial.Testimonial](),
	}
}

func copyTestimonial(t *testimonial.Testimonial) *testimonial.Testimonial {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func testimonialFilterFn(ctx context.Context, t *testimonial.Testimonial, filter interface{}) bool {
	f, ok := filter.(*types.TestimonialFilter)
	if !ok || f == nil {
		return true
	}
	if f.GetApprovedOnly() {
		return t.IsApproved
	}
	return true
}

func testimonialSortFn(i, j *testimonial.Testimonial) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryTestimonialStore) Create(ctx context.Context, t *testimonial.Testimonial) error {
	return s.InMemoryStore.Create(ctx, t.ID, copyTestimonial(t))
}

func (s *InMemoryTestimonialStore) Get(ctx context.Context, id string) (*testimonial.Testimonial, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyTestimonial(t), nil
}

func (s *InMemoryTestimonialStore) List(ctx context.Context, filter *types.TestimonialFilter) ([]*testimonial.Testimonial, error) {
	items, err := s.InMemoryStore.List(ctx, filter, testimonialFilterFn, testimonialSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(t *testimonial.Testimonial, _ int) *testimonial.Testimonial {
		return copyTestimonial(t)
	}), nil
}

func (s *InMemoryTestimonialStore) Update(ctx context.Context, id string, changes map[string]any) (*testimonial.Testimonial, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := copyTestimonial(t)
	for key, value := range changes {
		switch key {
		case "name":
			updated.Name = value.(string)
		case "rating":
			updated.Rating = value.(int)
		case "comment":
			updated.Comment = value.(string)
		case "vehicle":
			updated.Vehicle = value.(string)
		case "is_approved":
			updated.IsApproved = value.(bool)
		}
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.InMemoryStore.Update(ctx, id, updated); err != nil {
		return nil, err
	}
	return copyTestimonial(updated), nil
}

func (s *InMemoryTestimonialStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
