package mongo

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainPromotion "github.com/nvamotors/dealership-api/internal/domain/promotion"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
	"github.com/nvamotors/dealership-api/internal/types"
)

const promotionCollection = "promotions"

type promotionRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewPromotionRepository(client mongostore.IClient, log *logger.Logger) domainPromotion.Repository {
	return &promotionRepository{
		client: client,
		log:    log,
	}
}

func (r *promotionRepository) collection() *mongo.Collection {
	return r.client.Collection(promotionCollection)
}

func (r *promotionRepository) Create(ctx context.Context, p *domainPromotion.Promotion) error {
	if _, err := r.collection().InsertOne(ctx, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create promotion").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *promotionRepository) Get(ctx context.Context, id string) (*domainPromotion.Promotion, error) {
	var p domainPromotion.Promotion
	err := r.collection().FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("promotion not found").
				WithHintf("Promotion with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get promotion").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *promotionRepository) List(ctx context.Context, filter *types.PromotionFilter) ([]*domainPromotion.Promotion, error) {
	query := bson.M{}
	if filter == nil || filter.GetActiveOnly() {
		// active means flagged active and not yet expired, compared on
		// date only against the server clock
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		query["is_active"] = true
		query["valid_until"] = bson.M{"$gte": today}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list promotions").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	promotions := make([]*domainPromotion.Promotion, 0)
	if err := cursor.All(ctx, &promotions); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode promotions").
			Mark(ierr.ErrDatabase)
	}
	return promotions, nil
}

func (r *promotionRepository) Update(ctx context.Context, id string, changes map[string]any) (*domainPromotion.Promotion, error) {
	set := lo.Assign(map[string]any{}, changes)
	set["updated_at"] = time.Now().UTC()

	var p domainPromotion.Promotion
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("update did not apply").
				WithHint("Failed to update promotion").
				Mark(ierr.ErrInvalidOperation)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to update promotion").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *promotionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete promotion").
			Mark(ierr.ErrDatabase)
	}
	if res.DeletedCount == 0 {
		return ierr.NewError("promotion not found").
			WithHintf("Promotion with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
