package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cityfeedapp/cityfeed-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAppError honors the status and code carried by an apierr.Error,
// falling back to 500 for plain errors.
func RespondAppError(c *gin.Context, err error) {
	var appErr *apierr.Error
	if errors.As(err, &appErr) {
		RespondError(c, appErr.Status, appErr.Code, appErr)
		return
	}
	RespondError(c, http.StatusInternalServerError, "internal_error", err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
