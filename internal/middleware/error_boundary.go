package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
	"github.com/noah-isme/course-admin-api/pkg/response"
)

// RenderMode selects how the boundary writes failures.
type RenderMode int

const (
	// RenderJSON writes {"success": false, "message": ...}.
	RenderJSON RenderMode = iota
	// RenderText writes the message as a plain text body.
	RenderText
)

// ErrorBoundary turns the last error attached with c.Error, or a panic, into a response.
// Handlers only push errors; status codes come from the typed error.
func ErrorBoundary(mode RenderMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := appErrors.Wrap(fmt.Errorf("panic: %v", rec), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
				_ = c.Error(err)
				c.Abort()
				if !c.Writer.Written() {
					render(c, mode, err)
				}
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		render(c, mode, c.Errors.Last().Err)
	}
}

func render(c *gin.Context, mode RenderMode, err error) {
	if mode == RenderText {
		appErr := appErrors.FromError(err)
		response.Text(c, appErr.Status, response.Message(appErr))
		return
	}
	response.Failure(c, err)
}
