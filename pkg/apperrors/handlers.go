package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler maps errors onto HTTP responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if !h.Debug && appErr.HTTPCode >= 500 {
		// Never leak stack-level detail to callers in production.
		appErr = &AppError{
			Code:     appErr.Code,
			Domain:   appErr.Domain,
			Message:  "Internal server error",
			HTTPCode: appErr.HTTPCode,
		}
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "code", appErr.Code, "domain", appErr.Domain, "error", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the shorthand used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
