package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

// Body is the common JSON contract: a success flag plus endpoint specific fields.
type Body map[string]interface{}

// Success sends {"success": true, ...fields}.
func Success(c *gin.Context, status int, fields Body) {
	body := Body{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	noStore(c)
	c.JSON(status, body)
}

// OK responds with HTTP 200 and a message.
func OK(c *gin.Context, message string) {
	Success(c, http.StatusOK, Body{"message": message})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, fields Body) {
	Success(c, http.StatusCreated, fields)
}

// Failure sends {"success": false, "message": ...} with the status carried by the error.
func Failure(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, Body{"success": false, "message": Message(appErr)})
}

// Text writes a plain text body.
func Text(c *gin.Context, status int, body string) {
	noStore(c)
	c.String(status, body)
}

// Message picks the client facing text for an error. Server side failures expose the
// wrapped driver message, client side failures only the human readable one.
func Message(err *appErrors.Error) string {
	if err == nil {
		return ""
	}
	if err.Status >= http.StatusInternalServerError {
		return err.Error()
	}
	return err.Message
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
