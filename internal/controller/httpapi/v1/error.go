package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/repository/teamcenter"
	"github.com/plm-management-toolkit/gateway/internal/usecase/auth"
	"github.com/plm-management-toolkit/gateway/internal/usecase/items"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

// ErrorResponse maps domain error kinds to HTTP statuses. Classification is
// by error type, never by message text, so remote wording changes cannot
// shift a status code.
func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr   validator.ValidationErrors
		notValidErr    dto.NotValidError
		authErr        auth.AuthenticationError
		tokenErr       auth.InvalidTokenError
		unauthErr      teamcenter.UnauthenticatedError
		forbiddenErr   teamcenter.ForbiddenError
		nfErr          teamcenter.NotFoundError
		itemNfErr      items.NotFoundError
		remoteErr      teamcenter.RemoteInternalError
		unavailableErr teamcenter.RemoteUnavailableError
		timeoutErr     teamcenter.TimeoutError
		refusedErr     teamcenter.ConnectionRefusedError
		netErr         teamcenter.NetworkError
	)

	switch {
	case errors.As(err, &validatorErr):
		abortWith(c, http.StatusBadRequest, validatorErr.Error())
	case errors.As(err, &notValidErr):
		abortWith(c, http.StatusBadRequest, notValidErr.Console.FriendlyMessage())
	case errors.As(err, &authErr):
		abortWith(c, http.StatusUnauthorized, authErr.Console.FriendlyMessage())
	case errors.As(err, &tokenErr):
		abortWith(c, http.StatusUnauthorized, tokenErr.Console.FriendlyMessage())
	case errors.As(err, &unauthErr):
		abortWith(c, http.StatusUnauthorized, unauthErr.Console.FriendlyMessage())
	case errors.As(err, &forbiddenErr):
		abortWith(c, http.StatusForbidden, forbiddenErr.Console.FriendlyMessage())
	case errors.As(err, &itemNfErr):
		abortWith(c, http.StatusNotFound, itemNfErr.Console.FriendlyMessage())
	case errors.As(err, &nfErr):
		abortWith(c, http.StatusNotFound, nfErr.Console.FriendlyMessage())
	case errors.As(err, &remoteErr):
		abortWith(c, http.StatusBadGateway, remoteErr.Console.FriendlyMessage())
	case errors.As(err, &unavailableErr):
		abortWith(c, http.StatusServiceUnavailable, unavailableErr.Console.FriendlyMessage())
	case errors.As(err, &timeoutErr):
		abortWith(c, http.StatusGatewayTimeout, timeoutErr.Console.FriendlyMessage())
	case errors.As(err, &refusedErr):
		abortWith(c, http.StatusBadGateway, refusedErr.Console.FriendlyMessage())
	case errors.As(err, &netErr):
		abortWith(c, http.StatusBadGateway, netErr.Console.FriendlyMessage())
	default:
		abortWith(c, http.StatusInternalServerError, "general error")
	}
}

func abortWith(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response{Error: msg, Message: msg})
}
