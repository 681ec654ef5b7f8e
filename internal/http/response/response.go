package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MessageBody is the body of a write that succeeded.
type MessageBody struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// internalMessage replaces the body text of 500s; the cause is logged where it happened.
const internalMessage = "internal error"

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	switch {
	case status == http.StatusInternalServerError:
		msg = internalMessage
	case err != nil:
		msg = domainagg.MessageOf(err)
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondFromError picks status and code from the error's aggregate code.
func RespondFromError(c *gin.Context, err error) {
	apiErr := apierr.FromError(err)
	if apiErr == nil {
		apiErr = apierr.New(http.StatusInternalServerError, "storage", nil)
	}
	cause := apiErr.Err
	if cause == nil {
		cause = apiErr
	}
	RespondError(c, apiErr.Status, apiErr.Code, cause)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondMessage(c *gin.Context, status int, message string, id int64) {
	c.JSON(status, MessageBody{Message: message, ID: id})
}
