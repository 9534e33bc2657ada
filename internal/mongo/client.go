package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nvamotors/dealership-api/internal/config"
	ierr "github.com/nvamotors/dealership-api/internal/errors"
	"github.com/nvamotors/dealership-api/internal/logger"
)

// IClient exposes the document store to the repositories. Each resource
// owns one logical collection; documents are keyed by the public "id"
// field, not the store's native _id.
type IClient interface {
	Collection(name string) *mongo.Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Client wraps the mongo database handle. A single instance is built at
// startup and closed on shutdown; it is never reconstructed per request.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewClient connects to the configured document store and verifies the
// connection with a ping before handing the client out.
func NewClient(cfg *config.Configuration, log *logger.Logger) (IClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to the document store").
			Mark(ierr.ErrDatabase)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Document store is unreachable").
			Mark(ierr.ErrDatabase)
	}

	log.Infow("connected to document store", "database", cfg.Mongo.Database)

	return &Client{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
		logger: log,
	}, nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return ierr.WithError(err).
			WithHint("Document store is unreachable").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	c.logger.Info("closing document store connection")
	return c.client.Disconnect(ctx)
}
