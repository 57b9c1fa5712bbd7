package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient pairs a connected client with the database it serves
type MongoClient struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// ConnectMongo dials uri and pings it before returning
func ConnectMongo(ctx context.Context, uri, dbName string) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetMaxPoolSize(50))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoClient{Client: client, DB: client.Database(dbName)}, nil
}

// Collection returns a collection of the configured database
func (mc *MongoClient) Collection(name string) *mongo.Collection {
	return mc.DB.Collection(name)
}

// Close disconnects the client
func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
