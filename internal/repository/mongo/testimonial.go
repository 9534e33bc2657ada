package mongo

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainTestimonial "github.com/nvamotors/dealership-api/internal/domain/testimonial"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
	"github.com/nvamotors/dealership-api/internal/types"
)

const testimonialCollection = "testimonials"

type testimonialRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewTestimonialRepository(client mongostore.IClient, log *logger.Logger) domainTestimonial.Repository {
	return &testimonialRepository{
		client: client,
		log:    log,
	}
}

func (r *testimonialRepository) collection() *mongo.Collection {
	return r.client.Collection(testimonialCollection)
}

func (r *testimonialRepository) Create(ctx context.Context, t *domainTestimonial.Testimonial) error {
	if _, err := r.collection().InsertOne(ctx, t); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create testimonial").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *testimonialRepository) Get(ctx context.Context, id string) (*domainTestimonial.Testimonial, error) {
	var t domainTestimonial.Testimonial
	err := r.collection().FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("testimonial not found").
				WithHintf("Testimonial with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get testimonial").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context, filter *types.TestimonialFilter) ([]*domainTestimonial.Testimonial, error) {
	query := bson.M{}
	if filter == nil || filter.GetApprovedOnly() {
		query["is_approved"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list testimonials").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	testimonials := make([]*domainTestimonial.Testimonial, 0)
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode testimonials").
			Mark(ierr.ErrDatabase)
	}
	return testimonials, nil
}

func (r *testimonialRepository) Update(ctx context.Context, id string, changes map[string]any) (*domainTestimonial.Testimonial, error) {
	set := lo.Assign(map[string]any{}, changes)
	set["updated_at"] = time.Now().UTC()

	var t domainTestimonial.Testimonial
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("update did not apply").
				WithHint("Failed to update testimonial").
				Mark(ierr.ErrInvalidOperation)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to update testimonial").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete testimonial").
			Mark(ierr.ErrDatabase)
	}
	if res.DeletedCount == 0 {
		return ierr.NewError("testimonial not found").
			WithHintf("Testimonial with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
