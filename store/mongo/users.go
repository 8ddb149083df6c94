package mongo

import (
	"context"
	"strings"

	"ClinicBook/config/db"
	"ClinicBook/models"
	"ClinicBook/store"
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Users struct {
	accounts
}

var _ store.Users = (*Users)(nil)

func NewUsers(database *mongo.Database) *Users {
	return &Users{accounts{coll: db.OpenCollections(database, util.UserCollection)}}
}

func (u *Users) CreateUser(ctx context.Context, user *models.User) error {
	res, err := db.CreateOne(ctx, u.coll, user)
	if err != nil {
		return translate(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (u *Users) UserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var users []models.User
	opts := options.Find().SetProjection(bson.M{"firstName": 1, "lastName": 1})
	if err := db.FindAll(ctx, u.coll, bson.M{"_id": bson.M{"$in": ids}}, &users, opts); err != nil {
		return nil, err
	}
	for _, user := range users {
		names[user.ID] = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}
	return names, nil
}
