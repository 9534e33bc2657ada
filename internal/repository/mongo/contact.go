package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainContact "github.com/nvamotors/dealership-api/internal/domain/contact"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
)

const (
	contactCollection      = "contact_submissions"
	customSearchCollection = "custom_search_requests"
)

type contactRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewContactRepository(client mongostore.IClient, log *logger.Logger) domainContact.Repository {
	return &contactRepository{
		client: client,
		log:    log,
	}
}

func (r *contactRepository) collection() *mongo.Collection {
	return r.client.Collection(contactCollection)
}

func (r *contactRepository) Create(ctx context.Context, s *domainContact.Submission) error {
	if _, err := r.collection().InsertOne(ctx, s); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to submit contact form").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*domainContact.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contact submissions").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	submissions := make([]*domainContact.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode contact submissions").
			Mark(ierr.ErrDatabase)
	}
	return submissions, nil
}

type customSearchRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewCustomSearchRepository(client mongostore.IClient, log *logger.Logger) domainContact.CustomSearchRepository {
	return &customSearchRepository{
		client: client,
		log:    log,
	}
}

func (r *customSearchRepository) collection() *mongo.Collection {
	return r.client.Collection(customSearchCollection)
}

func (r *customSearchRepository) Create(ctx context.Context, req *domainContact.CustomSearchRequest) error {
	if _, err := r.collection().InsertOne(ctx, req); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to submit custom search request").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *customSearchRepository) List(ctx context.Context) ([]*domainContact.CustomSearchRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list custom search requests").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	requests := make([]*domainContact.CustomSearchRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode custom search requests").
			Mark(ierr.ErrDatabase)
	}
	return requests, nil
}
