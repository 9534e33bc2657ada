package mongo

import (
	"context"
	"regexp"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainVehicle "github.com/nvamotors/dealership-api/internal/domain/vehicle"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
	"github.com/nvamotors/dealership-api/internal/types"
)

const vehicleCollection = "vehicles"

type vehicleRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewVehicleRepository(client mongostore.IClient, log *logger.Logger) domainVehicle.Repository {
	return &vehicleRepository{
		client: client,
		log:    log,
	}
}

func (r *vehicleRepository) collection() *mongo.Collection {
	return r.client.Collection(vehicleCollection)
}

// buildVehicleQuery translates the listing filter into a store query.
// All present clauses combine with logical AND; the free-text search is
// a single OR clause across make and model.
func buildVehicleQuery(filter *types.VehicleFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"make": pattern},
			bson.M{"model": pattern},
		}
	}

	if filter.Make != "" && filter.Make != "all" {
		query["make"] = filter.Make
	}

	if filter.Condition != "" && filter.Condition != "all" {
		query["condition"] = filter.Condition
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		priceQuery := bson.M{}
		if filter.MinPrice != nil {
			priceQuery["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			priceQuery["$lte"] = *filter.MaxPrice
		}
		query["price"] = priceQuery
	}

	return query
}

func (r *vehicleRepository) Create(ctx context.Context, v *domainVehicle.Vehicle) error {
	r.log.Debugw("creating vehicle", "vehicle_id", v.ID, "make", v.Make, "model", v.Model)

	if _, err := r.collection().InsertOne(ctx, v); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create vehicle").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *vehicleRepository) Get(ctx context.Context, id string) (*domainVehicle.Vehicle, error) {
	var v domainVehicle.Vehicle
	err := r.collection().FindOne(ctx, bson.M{"id": id}).Decode(&v)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("vehicle not found").
				WithHintf("Vehicle with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get vehicle").
			Mark(ierr.ErrDatabase)
	}
	return &v, nil
}

func (r *vehicleRepository) List(ctx context.Context, filter *types.VehicleFilter) ([]*domainVehicle.Vehicle, error) {
	query := buildVehicleQuery(filter)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.GetOffset())).
		SetLimit(int64(filter.GetLimit()))

	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list vehicles").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	vehicles := make([]*domainVehicle.Vehicle, 0)
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode vehicles").
			Mark(ierr.ErrDatabase)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Count(ctx context.Context, filter *types.VehicleFilter) (int, error) {
	total, err := r.collection().CountDocuments(ctx, buildVehicleQuery(filter))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count vehicles").
			Mark(ierr.ErrDatabase)
	}
	return int(total), nil
}

func (r *vehicleRepository) Update(ctx context.Context, id string, changes map[string]any) (*domainVehicle.Vehicle, error) {
	r.log.Debugw("updating vehicle", "vehicle_id", id, "fields", len(changes))

	set := lo.Assign(map[string]any{}, changes)
	set["updated_at"] = time.Now().UTC()

	var v domainVehicle.Vehicle
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// existence was checked upstream; the document vanished
			// between check and write
			return nil, ierr.NewError("update did not apply").
				WithHint("Failed to update vehicle").
				Mark(ierr.ErrInvalidOperation)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to update vehicle").
			Mark(ierr.ErrDatabase)
	}
	return &v, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete vehicle").
			Mark(ierr.ErrDatabase)
	}
	if res.DeletedCount == 0 {
		return ierr.NewError("vehicle not found").
			WithHintf("Vehicle with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
