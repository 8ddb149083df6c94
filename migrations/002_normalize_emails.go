package migrations

import (
	"context"

	"ClinicBook/config/logger"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// NormalizeEmails lowercases and trims stored emails so lookups by the
// normalized form find accounts created before normalization existed.
func NormalizeEmails(ctx context.Context, database *mongo.Database) error {
	filter := bson.M{"$expr": bson.M{"$ne": bson.A{"$email", bson.M{"$toLower": bson.M{"$trim": bson.M{"input": "$email"}}}}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{"email": bson.M{"$toLower": bson.M{"$trim": bson.M{"input": "$email"}}}}}},
	}

	for _, coll := range []string{util.UserCollection, util.DoctorCollection} {
		result, err := database.Collection(coll).UpdateMany(ctx, filter, update)
		if err != nil {
			return err
		}
		logger.Log.Info("migration applied", zap.String("collection", coll), zap.Int64("modified", result.ModifiedCount))
	}
	return nil
}
