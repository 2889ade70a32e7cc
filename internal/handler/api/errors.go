package api

import (
	"net/http"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase"
	"marketplace-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("unauthenticated")

// abortWithError picks the status from the error's category. Unknown errors
// become a 500 without leaking their text.
func abortWithError(c *gin.Context, err error) {
	status, msg := classify(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func classify(err error) (int, string) {
	switch {
	case errs.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errs.Is(err, commands.ErrTokenValidation),
		errs.Is(err, usecase.ErrNotAccessToken),
		errs.Is(err, errUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, publicMessage(err)
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, publicMessage(err)
	case errs.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden, publicMessage(err)
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, publicMessage(err)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// publicMessage returns the domain error text without any wrapping prefixes.
func publicMessage(err error) string {
	return errs.Cause(err).Error()
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Authentication required", nil)
}
