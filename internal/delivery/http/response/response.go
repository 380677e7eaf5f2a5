package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Details carries per-field
// validation messages so the form layer can render them without extra
// mapping.
type Response struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	MessageID string              `json:"messageId,omitempty"`
	Error     string              `json:"error,omitempty"`
	Details   map[string][]string `json:"details,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, messageID string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		MessageID: messageID,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details map[string][]string) {
	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		Details:   details,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
