// Package mongodb stores users and hobbies as documents in MongoDB. The
// document _id is the only identity; its hex form is the public id.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"user-hobbies/internal/repository"
)

const (
	usersCollection   = "users"
	hobbiesCollection = "hobbies"
)

// Config describes how to reach the database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
	// Transactions enables multi-document transactions. The server must be
	// a replica set or sharded cluster.
	Transactions bool
}

// Open connects to MongoDB and verifies the connection with a ping.
func Open(ctx context.Context, cfg Config) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// OpenStore connects and returns the repositories backed by cfg.Database.
func OpenStore(ctx context.Context, cfg Config) (repository.Store, error) {
	client, err := Open(ctx, cfg)
	if err != nil {
		return repository.Store{}, err
	}

	db := client.Database(cfg.Database)
	tx := repository.NoTransaction
	if cfg.Transactions {
		tx = NewTransactor(client)
	}

	return repository.Store{
		Users:   NewUserRepository(db),
		Hobbies: NewHobbyRepository(db),
		Tx:      tx,
		Close:   client.Disconnect,
	}, nil
}

// Transactor runs units of work inside a MongoDB session transaction.
type Transactor struct {
	client *mongo.Client
}

func NewTransactor(client *mongo.Client) *Transactor {
	return &Transactor{client: client}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// objectID parses a public id. Ids that are not ObjectIDs cannot exist in
// the store, so they are reported as not found.
func objectID(entity, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %s: %w", entity, id, repository.ErrNotFound)
	}
	return oid, nil
}

func notFound(err error, entity, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, repository.ErrNotFound)
	}
	return err
}

var _ repository.Transactor = (*Transactor)(nil)
