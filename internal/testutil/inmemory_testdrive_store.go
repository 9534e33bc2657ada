package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/domain/testdrive"
	"github.com/nvamotors/dealership-api/internal/types"
)

// InMemoryTestDriveStore implements testdrive.Repository
type InMemoryTestDriveStore struct {
	*InMemoryStore[*testdrive.Request]
}

func NewInMemoryTestDriveStore() *InMemoryTestDriveStore {
	return &InMemoryTestDriveStore{
		InMemoryStore: NewInMemoryStore[*testdrive.Request](),
	}
}

func copyTestDrive(r *testdrive.Request) *testdrive.Request {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

func (s *InMemoryTestDriveStore) Create(ctx context.Context, r *testdrive.Request) error {
	return s.InMemoryStore.Create(ctx, r.ID, copyTestDrive(r))
}

func (s *InMemoryTestDriveStore) Get(ctx context.Context, id string) (*testdrive.Request, error) {
	r, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyTestDrive(r), nil
}

func (s *InMemoryTestDriveStore) List(ctx context.Context) ([]*testdrive.Request, error) {
	sortFn := func(i, j *testdrive.Request) bool {
		return i.CreatedAt.After(j.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, nil, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(r *testdrive.Request, _ int) *testdrive.Request {
		return copyTestDrive(r)
	}), nil
}

func (s *InMemoryTestDriveStore) Update(ctx context.Context, id string, changes map[string]any) (*testdrive.Request, error) {
	r, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := copyTestDrive(r)
	for key, value := range changes {
		switch key {
		case "status":
			updated.Status = value.(types.TestDriveStatus)
		case "preferredDate":
			updated.PreferredDate = value.(string)
		case "preferredTime":
			updated.PreferredTime = value.(string)
		case "additionalNotes":
			updated.AdditionalNotes = value.(string)
		}
	}

	if err := s.InMemoryStore.Update(ctx, id, updated); err != nil {
		return nil, err
	}
	return copyTestDrive(updated), nil
}
