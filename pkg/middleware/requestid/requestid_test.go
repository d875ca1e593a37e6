package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, inbound string) (string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = Value(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(Header, inbound)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return seen, rec.Header().Get(Header)
}

func TestMiddlewareKeepsInboundID(t *testing.T) {
	seen, echoed := run(t, "req-123")
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", echoed)
}

func TestMiddlewareGeneratesID(t *testing.T) {
	seen, echoed := run(t, "")
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, echoed)
}

func TestMiddlewareReplacesOversizedID(t *testing.T) {
	seen, _ := run(t, strings.Repeat("a", maxLength+1))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}
