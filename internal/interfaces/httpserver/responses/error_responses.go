package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"newschat-server/internal/utils/platformerrors"
)

// ErrorResponse is the uniform failure body. Message is a fixed
// human-readable phrase; Error carries the underlying failure's description
// for diagnostics and is not meant for end users.
type ErrorResponse struct {
	Message       string `json:"message"`
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"` // UUID from PlatformError
	RequestID     string `json:"request_id,omitempty"`
	ErrorInstance error  `json:"-"`
}

// HandleError handles domain errors and returns appropriate HTTP responses.
// The status code is determined from the error type; non-platform errors map
// to 500.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		platformerrors.LogError(log.Logger, domainErr)

		errResp := ErrorResponse{
			Message:       message,
			Error:         domainErr.Error(),
			Code:          domainErr.GetUUID(),
			RequestID:     domainErr.GetRequestID(),
			ErrorInstance: domainErr,
		}
		reqCtx.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType()), errResp)
		return
	}

	errResp := ErrorResponse{
		Message:       message,
		Error:         err.Error(),
		ErrorInstance: err,
	}
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, errResp)
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, err error) {
	ctx := reqCtx.Request.Context()
	platformErr := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, err, "")
	HandleError(reqCtx, platformErr, message)
}
