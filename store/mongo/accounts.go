package mongo

import (
	"context"
	"errors"
	"time"

	"ClinicBook/config/db"
	"ClinicBook/models"
	"ClinicBook/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// accounts implements store.Accounts over any collection whose documents
// embed models.Account.
type accounts struct {
	coll *mongo.Collection
}

func (a *accounts) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var acc models.Account
	err := db.FindOne(ctx, a.coll, bson.M{"email": email}, &acc)
	if err != nil {
		return nil, translate(err)
	}
	return &acc, nil
}

func (a *accounts) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := db.UpdateOne(ctx, a.coll, bson.M{"_id": id}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

/*
* Only set the secret when none is stored, so two concurrent requests
* cannot overwrite each other's secret
* When nothing matched, read back the secret already in place
 */
func (a *accounts) ProvisionMFASecret(ctx context.Context, id primitive.ObjectID, secret string) (string, error) {
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"mfaSecret": bson.M{"$exists": false}},
			bson.M{"mfaSecret": ""},
		},
	}
	update := bson.M{"$set": bson.M{"mfaSecret": secret, "mfaEnabled": true}}
	res, err := db.UpdateOne(ctx, a.coll, filter, update)
	if err != nil {
		return "", err
	}
	if res.MatchedCount == 1 {
		return secret, nil
	}

	var acc models.Account
	if err := db.FindOne(ctx, a.coll, bson.M{"_id": id}, &acc); err != nil {
		return "", translate(err)
	}
	return acc.MFASecret, nil
}

func (a *accounts) SetResetOTP(ctx context.Context, id primitive.ObjectID, otp string, expires time.Time) error {
	update := bson.M{"$set": bson.M{"resetPasswordOTP": otp, "resetPasswordExpires": expires}}
	res, err := db.UpdateOne(ctx, a.coll, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (a *accounts) ConsumeResetOTP(ctx context.Context, email, otp string, now time.Time) error {
	filter := bson.M{
		"email":                email,
		"resetPasswordOTP":     otp,
		"resetPasswordExpires": bson.M{"$gt": now},
	}
	update := bson.M{"$unset": bson.M{"resetPasswordOTP": "", "resetPasswordExpires": ""}}
	err := a.coll.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetProjection(bson.M{"_id": 1})).Err()
	return translate(err)
}

func (a *accounts) PurgeExpiredResetOTPs(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{"resetPasswordExpires": bson.M{"$lte": now}}
	update := bson.M{"$unset": bson.M{"resetPasswordOTP": "", "resetPasswordExpires": ""}}
	res, err := db.UpdateMany(ctx, a.coll, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}
