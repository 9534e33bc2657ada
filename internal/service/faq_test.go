package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/nvamotors/dealership-api/internal/api/dto"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/notification"
	"github.com/nvamotors/dealership-api/internal/testutil"
	"github.com/nvamotors/dealership-api/internal/types"
)

type FAQServiceSuite struct {
	testutil.BaseServiceTestSuite
	service FAQService
}

func TestFAQService(t *testing.T) {
	suite.Run(t, new(FAQServiceSuite))
}

func (s *FAQServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewFAQService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *FAQServiceSuite) TestCreateFAQ() {
	resp, err := s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "Do you offer financing?",
		Answer:   "Yes, through several lenders.",
		Category: "financing",
		Order:    1,
	})
	s.NoError(err)
	s.Contains(resp.FAQ.ID, "faq_")
	s.True(resp.FAQ.IsActive, "new FAQs default to active")
}

func (s *FAQServiceSuite) TestCreateFAQValidation() {
	resp, err := s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "",
		Answer:   "An answer without a question.",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *FAQServiceSuite) TestListFAQsActiveOnlyAndOrdered() {
	_, err := s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "Third question?",
		Answer:   "Third answer.",
		Order:    3,
	})
	s.NoError(err)

	_, err = s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "First question?",
		Answer:   "First answer.",
		Order:    1,
	})
	s.NoError(err)

	_, err = s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "Hidden question?",
		Answer:   "Hidden answer.",
		Order:    2,
		IsActive: lo.ToPtr(false),
	})
	s.NoError(err)

	resp, err := s.service.ListFAQs(s.GetContext())
	s.NoError(err)
	s.Len(resp.FAQs, 2)
	s.Equal("First question?", resp.FAQs[0].Question)
	s.Equal("Third question?", resp.FAQs[1].Question)
}

func (s *FAQServiceSuite) TestUpdateFAQ() {
	created, err := s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "Do you offer financing?",
		Answer:   "Yes.",
		Order:    1,
	})
	s.NoError(err)

	resp, err := s.service.UpdateFAQ(s.GetContext(), created.FAQ.ID, dto.UpdateFAQRequest{
		Answer:   lo.ToPtr("Yes, and trade-ins too."),
		IsActive: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Equal("Yes, and trade-ins too.", resp.FAQ.Answer)
	s.False(resp.FAQ.IsActive)
	s.Equal("Do you offer financing?", resp.FAQ.Question)

	// deactivated FAQ drops out of the public list
	list, err := s.service.ListFAQs(s.GetContext())
	s.NoError(err)
	s.Len(list.FAQs, 0)
}

func (s *FAQServiceSuite) TestUpdateFAQEmptyChangeSet() {
	created, err := s.service.CreateFAQ(s.GetContext(), dto.CreateFAQRequest{
		Question: "Q?",
		Answer:   "A.",
	})
	s.NoError(err)

	_, err = s.service.UpdateFAQ(s.GetContext(), created.FAQ.ID, dto.UpdateFAQRequest{})
	s.True(ierr.IsInvalidOperation(err))
}

func (s *FAQServiceSuite) TestUpdateFAQNotFound() {
	_, err := s.service.UpdateFAQ(s.GetContext(), "faq_missing", dto.UpdateFAQRequest{
		Answer: lo.ToPtr("New answer."),
	})
	s.True(ierr.IsNotFound(err))
}

func (s *FAQServiceSuite) TestSubmitQuestion() {
	resp, err := s.service.SubmitQuestion(s.GetContext(), dto.SubmitFAQQuestionRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Question: "Do you deliver out of state?",
	})
	s.NoError(err)
	s.Contains(resp.Question.ID, "faqq_")
	s.Equal(types.FAQQuestionStatusPending, resp.Question.Status)
	s.Nil(resp.Question.Answer)

	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventFAQQuestionSubmitted, events[0].Kind)
}

func (s *FAQServiceSuite) TestSubmitQuestionInvalidEmail() {
	resp, err := s.service.SubmitQuestion(s.GetContext(), dto.SubmitFAQQuestionRequest{
		Name:     "Maria",
		Email:    "not-an-email",
		Question: "Do you deliver out of state?",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))

	// nothing persisted, nothing dispatched
	list, err := s.service.ListQuestions(s.GetContext())
	s.NoError(err)
	s.Len(list.Questions, 0)
	s.Len(s.GetNotifier().Events(), 0)
}

func (s *FAQServiceSuite) TestListQuestionsNewestFirst() {
	first, err := s.service.SubmitQuestion(s.GetContext(), dto.SubmitFAQQuestionRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Question: "First?",
	})
	s.NoError(err)

	second, err := s.service.SubmitQuestion(s.GetContext(), dto.SubmitFAQQuestionRequest{
		Name:     "James",
		Email:    "james@example.com",
		Question: "Second?",
	})
	s.NoError(err)

	list, err := s.service.ListQuestions(s.GetContext())
	s.NoError(err)
	s.Len(list.Questions, 2)
	if list.Questions[0].CreatedAt.Equal(list.Questions[1].CreatedAt) {
		// same-instant timestamps make order unobservable
		return
	}
	s.Equal(second.Question.ID, list.Questions[0].ID)
	s.Equal(first.Question.ID, list.Questions[1].ID)
}
