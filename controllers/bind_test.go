package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ClinicBook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBindRejectsBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var req models.LoginRequest
		if !bind(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	for _, body := range []string{`{`, `{"email":"a@b.com"}`} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"message":"Invalid request body"}`, w.Body.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"email":"a@b.com","password":"p"}`)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPathIDRejectsInvalidHex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x/:id", func(c *gin.Context) {
		if _, ok := pathID(c, "id"); ok {
			c.Status(http.StatusNoContent)
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x/zzz", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid id"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x/65f1a2b3c4d5e6f708091a2b", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
