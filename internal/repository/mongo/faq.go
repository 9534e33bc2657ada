package mongo

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainFAQ "github.com/nvamotors/dealership-api/internal/domain/faq"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
)

const (
	faqCollection         = "faqs"
	faqQuestionCollection = "faq_questions"
)

type faqRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewFAQRepository(client mongostore.IClient, log *logger.Logger) domainFAQ.Repository {
	return &faqRepository{
		client: client,
		log:    log,
	}
}

func (r *faqRepository) collection() *mongo.Collection {
	return r.client.Collection(faqCollection)
}

func (r *faqRepository) Create(ctx context.Context, f *domainFAQ.FAQ) error {
	if _, err := r.collection().InsertOne(ctx, f); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create FAQ").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *faqRepository) Get(ctx context.Context, id string) (*domainFAQ.FAQ, error) {
	var f domainFAQ.FAQ
	err := r.collection().FindOne(ctx, bson.M{"id": id}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("FAQ not found").
				WithHintf("FAQ with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get FAQ").
			Mark(ierr.ErrDatabase)
	}
	return &f, nil
}

func (r *faqRepository) ListActive(ctx context.Context) ([]*domainFAQ.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.collection().Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list FAQs").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	faqs := make([]*domainFAQ.FAQ, 0)
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode FAQs").
			Mark(ierr.ErrDatabase)
	}
	return faqs, nil
}

func (r *faqRepository) Update(ctx context.Context, id string, changes map[string]any) (*domainFAQ.FAQ, error) {
	set := lo.Assign(map[string]any{}, changes)
	set["updated_at"] = time.Now().UTC()

	var f domainFAQ.FAQ
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("update did not apply").
				WithHint("Failed to update FAQ").
				Mark(ierr.ErrInvalidOperation)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to update FAQ").
			Mark(ierr.ErrDatabase)
	}
	return &f, nil
}

type faqQuestionRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewFAQQuestionRepository(client mongostore.IClient, log *logger.Logger) domainFAQ.QuestionRepository {
	return &faqQuestionRepository{
		client: client,
		log:    log,
	}
}

func (r *faqQuestionRepository) collection() *mongo.Collection {
	return r.client.Collection(faqQuestionCollection)
}

func (r *faqQuestionRepository) Create(ctx context.Context, q *domainFAQ.Question) error {
	if _, err := r.collection().InsertOne(ctx, q); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to submit question").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *faqQuestionRepository) List(ctx context.Context) ([]*domainFAQ.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list questions").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	questions := make([]*domainFAQ.Question, 0)
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode questions").
			Mark(ierr.ErrDatabase)
	}
	return questions, nil
}
