package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

// bindJSON decodes the request body into dst. An empty body leaves dst zeroed so the
// service reports which fields are missing; malformed JSON is a validation error.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(appErrors.Validation(err, "invalid payload"))
		return false
	}
	return true
}
