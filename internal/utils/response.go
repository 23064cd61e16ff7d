// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies carry a "message" field next to the payload; failures carry
// "error" and, when field-level validation failed, "details".

func SuccessResponse(c *gin.Context, message string, payload gin.H) {
	respond(c, http.StatusOK, message, payload)
}

func CreatedResponse(c *gin.Context, message string, payload gin.H) {
	respond(c, http.StatusCreated, message, payload)
}

func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message string, details interface{}) {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(statusCode, body)
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, message, nil)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	ErrorResponse(c, http.StatusForbidden, message, nil)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message, nil)
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, message, nil)
}

// InternalErrorResponse hides the underlying error behind a generic message;
// the raw error goes to the log, never to the client.
func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	ErrorResponse(c, http.StatusInternalServerError, message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	ErrorResponse(c, http.StatusBadRequest, "Invalid input", errors)
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetRolesFromContext(c *gin.Context) []string {
	if roles, exists := c.Get("roles"); exists {
		if roleList, ok := roles.([]string); ok {
			return roleList
		}
	}
	return nil
}
