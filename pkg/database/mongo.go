package database

import (
	"context"
	"fmt"
	"time"

	"movie-master/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Pinger is the slice of the store the health check needs
type Pinger interface {
	Ping(ctx context.Context) error
}

// MongoIface interface untuk abstraction database
type MongoIface interface {
	Pinger
	Collection(name string) *mongo.Collection
	Close(ctx context.Context) error
}

// DB wrapper struct
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection implements MongoIface
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// Ping implements MongoIface
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close implements MongoIface
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// InitDB opens the process-wide client and verifies it with a ping
func InitDB(config utils.DatabaseConfig) (MongoIface, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(timeout).
		// nested documents decode as bson.M so they serialize as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{client: client, db: client.Database(config.Name)}, nil
}
