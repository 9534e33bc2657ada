package testutil

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/domain/faq"
)

// InMemoryFAQStore implements faq.Repository
type InMemoryFAQStore struct {
	*InMemoryStore[*faq.FAQ]
}

func NewInMemoryFAQStore() *InMemoryFAQStore {
	return &InMemoryFAQStore{
		InMemoryStore: NewInMemoryStore[*faq.FAQ](),
	}
}

func copyFAQ(f *faq.FAQ) *faq.FAQ {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}

func (s *InMemoryFAQStore) Create(ctx context.Context, f *faq.FAQ) error {
	return s.InMemoryStore.Create(ctx, f.ID, copyFAQ(f))
}

func (s *InMemoryFAQStore) Get(ctx context.Context, id string) (*faq.FAQ, error) {
	f, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyFAQ(f), nil
}

func (s *InMemoryFAQStore) ListActive(ctx context.Context) ([]*faq.FAQ, error) {
	filterFn := func(ctx context.Context, f *faq.FAQ, _ interface{}) bool {
		return f.IsActive
	}
	sortFn := func(i, j *faq.FAQ) bool {
		return i.Order < j.Order
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(f *faq.FAQ, _ int) *faq.FAQ {
		return copyFAQ(f)
	}), nil
}

func (s *InMemoryFAQStore) Update(ctx context.Context, id string, changes map[string]any) (*faq.FAQ, error) {
	f, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := copyFAQ(f)
	for key, value := range changes {
		switch key {
		case "question":
			updated.Question = value.(string)
		case "answer":
			updated.Answer = value.(string)
		case "category":
			updated.Category = value.(string)
		case "order":
			updated.Order = value.(int)
		case "is_active":
			updated.IsActive = value.(bool)
		}
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.InMemoryStore.Update(ctx, id, updated); err != nil {
		return nil, err
	}
	return copyFAQ(updated), nil
}

// InMemoryFAQQuestionStore implements faq.QuestionRepository
type InMemoryFAQQuestionStore struct {
	*InMemoryStore[*faq.Question]
}

func NewInMemoryFAQQuestionStore() *InMemoryFAQQuestionStore {
	return &InMemoryFAQQuestionStore{
		InMemoryStore: NewInMemoryStore[*faq.Question](),
	}
}

func copyQuestion(q *faq.Question) *faq.Question {
	if q == nil {
		return nil
	}
	cp := *q
	return &cp
}

func (s *InMemoryFAQQuestionStore) Create(ctx context.Context, q *faq.Question) error {
	return s.InMemoryStore.Create(ctx, q.ID, copyQuestion(q))
}

func (s *InMemoryFAQQuestionStore) List(ctx context.Context) ([]*faq.Question, error) {
	sortFn := func(i, j *faq.Question) bool {
		return i.CreatedAt.After(j.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, nil, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(q *faq.Question, _ int) *faq.Question {
		return copyQuestion(q)
	}), nil
}
