package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainTestdrive "github.com/nvamotors/dealership-api/internal/domain/testdrive"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
	mongostore "github.com/nvamotors/dealership-api/internal/mongo"
)

const testDriveCollection = "test_drive_requests"

type testDriveRepository struct {
	client mongostore.IClient
	log    *logger.Logger
}

func NewTestDriveRepository(client mongostore.IClient, log *logger.Logger) domainTestdrive.Repository {
	return &testDriveRepository{
		client: client,
		log:    log,
	}
}

func (r *testDriveRepository) collection() *mongo.Collection {
	return r.client.Collection(testDriveCollection)
}

func (r *testDriveRepository) Create(ctx context.Context, req *domainTestdrive.Request) error {
	r.log.Debugw("creating test drive request", "request_id", req.ID, "vehicle", req.SelectedVehicle)

	if _, err := r.collection().InsertOne(ctx, req); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to schedule test drive").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *testDriveRepository) Get(ctx context.Context, id string) (*domainTestdrive.Request, error) {
	var req domainTestdrive.Request
	err := r.collection().FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("test drive request not found").
				WithHintf("Test drive request with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get test drive request").
			Mark(ierr.ErrDatabase)
	}
	return &req, nil
}

func (r *testDriveRepository) List(ctx context.Context) ([]*domainTestdrive.Request, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list test drive requests").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	requests := make([]*domainTestdrive.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode test drive requests").
			Mark(ierr.ErrDatabase)
	}
	return requests, nil
}

func (r *testDriveRepository) Update(ctx context.Context, id string, changes map[string]any) (*domainTestdrive.Request, error) {
	var req domainTestdrive.Request
	err := r.collection().FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": changes},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ierr.NewError("update did not apply").
				WithHint("Failed to update test drive request").
				Mark(ierr.ErrInvalidOperation)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to update test drive request").
			Mark(ierr.ErrDatabase)
	}
	return &req, nil
}
