package util

import "github.com/gin-gonic/gin"

func SuccessResponse(message string, data interface{}) gin.H {
	resp := gin.H{"message": message}
	if data != nil {
		resp["data"] = data
	}
	return resp
}

func FailedResponse(err error) gin.H {
	return gin.H{"message": MessageFor(err)}
}

// Fail writes the error with the status that matches its kind.
func Fail(c *gin.Context, err error) {
	c.JSON(StatusFor(err), FailedResponse(err))
}
