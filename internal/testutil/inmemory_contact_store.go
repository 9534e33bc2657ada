package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/domain/contact"
)

// InMemoryContactStore implements contact.Repository
type InMemoryContactStore struct {
	*InMemoryStore[*contact.Submission]
}

func NewInMemoryContactStore() *InMemoryContactStore {
	return &InMemoryContactStore{
		InMemoryStore: NewInMemoryStore[*contact.Submission](),
	}
}

func copySubmission(s *contact.Submission) *contact.Submission {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func (s *InMemoryContactStore) Create(ctx context.Context, sub *contact.Submission) error {
	return s.InMemoryStore.Create(ctx, sub.ID, copySubmission(sub))
}

func (s *InMemoryContactStore) List(ctx context.Context) ([]*contact.Submission, error) {
	sortFn := func(i, j *contact.Submission) bool {
		return i.CreatedAt.After(j.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, nil, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(sub *contact.Submission, _ int) *contact.Submission {
		return copySubmission(sub)
	}), nil
}

// InMemoryCustomSearchStore implements contact.CustomSearchRepository
type InMemoryCustomSearchStore struct {
	*InMemoryStore[*contact.CustomSearchRequest]
}

func NewInMemoryCustomSearchStore() *InMemoryCustomSearchStore {
	return &InMemoryCustomSearchStore{
		InMemoryStore: NewInMemoryStore[*contact.CustomSearchRequest](),
	}
}

func copyCustomSearch(r *contact.CustomSearchRequest) *contact.CustomSearchRequest {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

func (s *InMemoryCustomSearchStore) Create(ctx context.Context, r *contact.CustomSearchRequest) error {
	return s.InMemoryStore.Create(ctx, r.ID, copyCustomSearch(r))
}

func (s *InMemoryCustomSearchStore) List(ctx context.Context) ([]*contact.CustomSearchRequest, error) {
	sortFn := func(i, j *contact.CustomSearchRequest) bool {
		return i.CreatedAt.After(j.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, nil, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(r *contact.CustomSearchRequest, _ int) *contact.CustomSearchRequest {
		return copyCustomSearch(r)
	}), nil
}
