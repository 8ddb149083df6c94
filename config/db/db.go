package db

import (
	"context"
	"fmt"
	"time"

	"ClinicBook/config/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
* Connect with a bounded timeout
* Ping so a wrong uri fails startup and not the first request
 */
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	logger.Log.Info("connected to mongodb", zap.String("database", database))
	return client, client.Database(database), nil
}

func OpenCollections(database *mongo.Database, name string) *mongo.Collection {
	return database.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, dest interface{}, opts ...*options.FindOneOptions) error {
	return coll.FindOne(ctx, filter, opts...).Decode(dest)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, dest interface{}, opts ...*options.FindOptions) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, dest)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func UpdateMany(ctx context.Context, coll *mongo.Collection, filter, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateMany(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}
