package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ClinicBook/config/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(issuer *jwt.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(ContextID), "role": c.GetString(ContextRole)})
	})
	r.GET("/doctor-only", JWTAuth(issuer), RequireRoles("doctor", "admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/calendar/:doctorId", JWTAuth(issuer), RequireOwner("doctorId", "admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	issuer := jwt.NewIssuer("secret", time.Hour)
	r := newRouter(issuer)

	token, err := issuer.GenerateJWT("abc", "patient")
	require.NoError(t, err)

	w := do(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc","role":"patient"}`, w.Body.String())

	w = do(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")

	w = do(r, "/me", "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "/me", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired or invalid")
}

func TestRequireRoles(t *testing.T) {
	issuer := jwt.NewIssuer("secret", time.Hour)
	r := newRouter(issuer)

	patient, err := issuer.GenerateJWT("p", "patient")
	require.NoError(t, err)
	doctor, err := issuer.GenerateJWT("d", "doctor")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, do(r, "/doctor-only", "Bearer "+patient).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/doctor-only", "Bearer "+doctor).Code)
}

func TestRequireOwner(t *testing.T) {
	issuer := jwt.NewIssuer("secret", time.Hour)
	r := newRouter(issuer)

	own, err := issuer.GenerateJWT("d1", "doctor")
	require.NoError(t, err)
	admin, err := issuer.GenerateJWT("a1", "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, do(r, "/calendar/d1", "Bearer "+own).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/calendar/d2", "Bearer "+own).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/calendar/d2", "Bearer "+admin).Code)
}
