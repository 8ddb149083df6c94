package migrations

import (
	"context"

	"ClinicBook/config/logger"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CreateIndexes is idempotent, existing indexes with the same spec are kept.
func CreateIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		util.UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		util.DoctorCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "licenseHash", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		util.AppointmentCollection: {
			{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "doctor", Value: 1}, {Key: "date", Value: 1}}},
		},
	}

	for coll, specs := range indexes {
		names, err := database.Collection(coll).Indexes().CreateMany(ctx, specs)
		if err != nil {
			return err
		}
		logger.Log.Info("indexes ensured", zap.String("collection", coll), zap.Strings("indexes", names))
	}
	return nil
}
