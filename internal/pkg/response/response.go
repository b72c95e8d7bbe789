// Package response renders the API's JSON envelope. Every endpoint answers
// with {"success": true, "data": ...} or {"success": false, "error": {...}}
// so clients switch on a single shape.
package response

import "github.com/gin-gonic/gin"

// Success wraps payload data in the success envelope.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error renders a failure with a stable machine-readable code.
func Error(c *gin.Context, statusCode int, code, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

// ErrorWithDetails attaches a free-form details value, used for field-level
// validation output. A nil details value is omitted from the body.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}

	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   body,
	})
}
