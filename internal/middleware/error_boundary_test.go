package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

func newBoundaryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorBoundary(RenderJSON))
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(appErrors.Validation(nil, "Name is required"))
	})
	r.GET("/database", func(c *gin.Context) {
		_ = c.Error(appErrors.Database(errors.New("UNIQUE constraint failed: users.email"), "failed to update user"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	text := r.Group("/debug")
	text.Use(ErrorBoundary(RenderText))
	text.GET("/missing", func(c *gin.Context) {
		_ = c.Error(appErrors.Clone(appErrors.ErrNotFound, "User not found"))
	})
	return r
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorBoundaryMapsValidation(t *testing.T) {
	w := serve(newBoundaryRouter(), "/validation")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Name is required"}`, w.Body.String())
}

func TestErrorBoundaryExposesDatabaseText(t *testing.T) {
	w := serve(newBoundaryRouter(), "/database")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "UNIQUE constraint failed: users.email")
}

func TestErrorBoundaryUnknownErrorIs500(t *testing.T) {
	w := serve(newBoundaryRouter(), "/plain")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "boom")
}

func TestErrorBoundaryRecoversPanics(t *testing.T) {
	w := serve(newBoundaryRouter(), "/panic")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestErrorBoundaryTextMode(t *testing.T) {
	w := serve(newBoundaryRouter(), "/debug/missing")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", w.Body.String())
}
