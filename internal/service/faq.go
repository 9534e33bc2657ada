package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	"github.com/nvamotors/dealership-api/internal/domain/faq"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/notification"
)

type FAQService interface {
	CreateFAQ(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQResponse, error)
	ListFAQs(ctx context.Context) (*dto.ListFAQsResponse, error)
	UpdateFAQ(ctx context.Context, id string, req dto.UpdateFAQRequest) (*dto.FAQResponse, error)

	SubmitQuestion(ctx context.Context, req dto.SubmitFAQQuestionRequest) (*dto.FAQQuestionResponse, error)
	ListQuestions(ctx context.Context) (*dto.ListFAQQuestionsResponse, error)
}

type faqService struct {
	ServiceParams
}

func NewFAQService(params ServiceParams) FAQService {
	return &faqService{
		ServiceParams: params,
	}
}

func (s *faqService) CreateFAQ(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f := req.ToFAQ(ctx)
	if err := s.FAQRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	s.Logger.Infow("created faq", "faq_id", f.ID)
	return &dto.FAQResponse{FAQ: f}, nil
}

func (s *faqService) ListFAQs(ctx context.Context) (*dto.ListFAQsResponse, error) {
	faqs, err := s.FAQRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListFAQsResponse{
		FAQs: lo.Map(faqs, func(f *faq.FAQ, _ int) *dto.FAQResponse {
			return &dto.FAQResponse{FAQ: f}
		}),
	}, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, id string, req dto.UpdateFAQRequest) (*dto.FAQResponse, error) {
	if id == "" {
		return nil, ierr.NewError("faq ID is required").
			WithHint("FAQ ID is required").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return nil, ierr.NewError("nothing to update").
			WithHint("Provide at least one field to update").
			Mark(ierr.ErrInvalidOperation)
	}

	if _, err := s.FAQRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	f, err := s.FAQRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated faq", "faq_id", id)
	return &dto.FAQResponse{FAQ: f}, nil
}

func (s *faqService) SubmitQuestion(ctx context.Context, req dto.SubmitFAQQuestionRequest) (*dto.FAQQuestionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q := req.ToQuestion(ctx)
	if err := s.FAQQuestionRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	s.Logger.Infow("submitted faq question", "question_id", q.ID)
	s.Notifier.DispatchAsync(notification.NewFAQQuestionEvent(q))

	return &dto.FAQQuestionResponse{Question: q}, nil
}

func (s *faqService) ListQuestions(ctx context.Context) (*dto.ListFAQQuestionsResponse, error) {
	questions, err := s.FAQQuestionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListFAQQuestionsResponse{
		Questions: lo.Map(questions, func(q *faq.Question, _ int) *dto.FAQQuestionResponse {
			return &dto.FAQQuestionResponse{Question: q}
		}),
	}, nil
}
