package services

import (
	"ClinicBook/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, util.BadRequest(util.INVALID_ID)
	}
	return id, nil
}
