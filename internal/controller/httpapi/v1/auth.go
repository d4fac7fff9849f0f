package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/usecase/auth"
	"github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// Context keys set by the JWT middleware for downstream handlers.
const (
	ContextUsername      = "username"
	ContextRemoteSession = "remoteSession"
)

var ErrValidationAuth = dto.NotValidError{Console: gatewayerrors.New("AuthAPI")}

// AuthRoute handles login and token lifecycle. Login is the only public
// route; logout and refresh run behind the JWT middleware.
type AuthRoute struct {
	a *auth.UseCase
	l logger.Interface
}

// NewAuthRoute -.
func NewAuthRoute(a *auth.UseCase, l logger.Interface) *AuthRoute {
	return &AuthRoute{a: a, l: l}
}

// Login exchanges PLM credentials for a local token.
func (r *AuthRoute) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationAuth.Wrap("Login", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	resp, err := r.a.Login(c.Request.Context(), req)
	if err != nil {
		r.l.Error(err, "http - v1 - Login")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout ends the remote session behind the caller's token. Always succeeds
// locally regardless of the remote outcome.
func (r *AuthRoute) Logout(c *gin.Context) {
	r.a.Logout(c.Request.Context(), c.GetString(ContextRemoteSession))

	c.Status(http.StatusNoContent)
}

// Refresh re-signs a still-valid token with a fresh expiry.
func (r *AuthRoute) Refresh(c *gin.Context) {
	token, err := r.a.RefreshToken(bearerToken(c))
	if err != nil {
		r.l.Error(err, "http - v1 - Refresh")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{Auth: *token})
}

// JWTAuthMiddleware validates the bearer token and exposes its claims to
// downstream handlers.
func (r *AuthRoute) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			ErrorResponse(c, auth.ErrInvalidToken)

			return
		}

		claims, err := r.a.ValidateToken(tokenString)
		if err != nil {
			ErrorResponse(c, err)

			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRemoteSession, claims.RemoteSession)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	return strings.TrimSpace(strings.Replace(header, "Bearer ", "", 1))
}
