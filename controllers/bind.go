package controllers

import (
	"ClinicBook/config/logger"
	"ClinicBook/services"
	"ClinicBook/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// bind writes a 400 and returns false when the body does not match dest.
func bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		logger.Log.Debug("request body rejected", zap.String("path", c.FullPath()), zap.Error(err))
		util.Fail(c, util.BadRequest(util.INVALID_REQUEST))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := services.ParseID(c.Param(name))
	if err != nil {
		util.Fail(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}
