package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	"github.com/nvamotors/dealership-api/internal/domain/contact"
	"github.com/nvamotors/dealership-api/internal/notification"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req dto.SubmitContactRequest) (*dto.ContactSubmissionResponse, error)
	ListContactSubmissions(ctx context.Context) (*dto.ListContactSubmissionsResponse, error)

	SubmitCustomSearch(ctx context.Context, req dto.SubmitCustomSearchRequest) (*dto.CustomSearchResponse, error)
	ListCustomSearches(ctx context.Context) (*dto.ListCustomSearchesResponse, error)
}

type contactService struct {
	ServiceParams
}

func NewContactService(params ServiceParams) ContactService {
	return &contactService{
		ServiceParams: params,
	}
}

func (s *contactService) SubmitContact(ctx context.Context, req dto.SubmitContactRequest) (*dto.ContactSubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := req.ToSubmission(ctx)
	if err := s.ContactRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("submitted contact form", "submission_id", sub.ID)
	s.Notifier.DispatchAsync(notification.NewContactEvent(sub))

	return &dto.ContactSubmissionResponse{Submission: sub}, nil
}

func (s *contactService) ListContactSubmissions(ctx context.Context) (*dto.ListContactSubmissionsResponse, error) {
	submissions, err := s.ContactRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListContactSubmissionsResponse{
		Submissions: lo.Map(submissions, func(sub *contact.Submission, _ int) *dto.ContactSubmissionResponse {
			return &dto.ContactSubmissionResponse{Submission: sub}
		}),
	}, nil
}

func (s *contactService) SubmitCustomSearch(ctx context.Context, req dto.SubmitCustomSearchRequest) (*dto.CustomSearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	csr := req.ToCustomSearchRequest(ctx)
	if err := s.CustomSearchRepo.Create(ctx, csr); err != nil {
		return nil, err
	}

	s.Logger.Infow("submitted custom search request", "request_id", csr.ID)
	s.Notifier.DispatchAsync(notification.NewCustomSearchEvent(csr))

	return &dto.CustomSearchResponse{CustomSearchRequest: csr}, nil
}

func (s *contactService) ListCustomSearches(ctx context.Context) (*dto.ListCustomSearchesResponse, error) {
	requests, err := s.CustomSearchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListCustomSearchesResponse{
		Requests: lo.Map(requests, func(r *contact.CustomSearchRequest, _ int) *dto.CustomSearchResponse {
			return &dto.CustomSearchResponse{CustomSearchRequest: r}
		}),
	}, nil
}
