// Package auth bridges the remote, opaque PLM session to a self-contained
// local credential. This is the trust boundary of the whole gateway: the
// remote session id lives only inside the signed token payload, never in a
// server-side table.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/repository/teamcenter"
	"github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// Claims is the local token payload. RemoteSession is the opaque session id
// issued by the PLM system on login.
type Claims struct {
	Username      string `json:"username"`
	RemoteSession string `json:"remoteSessionId"`
	jwt.RegisteredClaims
}

// Teamcenter builds a fresh remote client per call. Each login and logout
// gets its own client so session headers never leak between callers.
type Teamcenter interface {
	NewSession() teamcenter.Session
}

// UseCase -.
type UseCase struct {
	tc         Teamcenter
	log        logger.Interface
	jwtKey     []byte
	expiration time.Duration
}

// New -.
func New(tc Teamcenter, log logger.Interface, jwtKey []byte, expiration time.Duration) *UseCase {
	return &UseCase{
		tc:         tc,
		log:        log,
		jwtKey:     jwtKey,
		expiration: expiration,
	}
}

// Error kinds raised by the session bridge.
type (
	// AuthenticationError is the generic login failure returned to callers.
	// The specific remote cause is logged, never surfaced.
	AuthenticationError struct {
		Console gatewayerrors.GatewayError
	}

	// InvalidTokenError covers malformed, expired, and badly signed tokens
	// alike; the three causes are only distinguished in the logs.
	InvalidTokenError struct {
		Console gatewayerrors.GatewayError
	}
)

var (
	ErrAuthUseCase          = gatewayerrors.New("AuthUseCase")
	ErrAuthenticationFailed = AuthenticationError{Console: gatewayerrors.NewWithMessage("AuthUseCase", "Authentication failed. Check your credentials.")}
	ErrInvalidToken         = InvalidTokenError{Console: gatewayerrors.NewWithMessage("AuthUseCase", "Invalid or expired token.")}
	ErrMissingCredentials   = dto.NotValidError{Console: gatewayerrors.NewWithMessage("AuthUseCase", "Username and password are required.")}
)

func (e AuthenticationError) Error() string { return e.Console.Error() }

func (e AuthenticationError) Wrap(call, function string, err error) AuthenticationError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

func (e InvalidTokenError) Error() string { return e.Console.Error() }

func (e InvalidTokenError) Wrap(call, function string, err error) InvalidTokenError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

// Login authenticates against the remote system and mints a local token
// embedding the returned remote session id.
func (uc *UseCase) Login(ctx context.Context, creds dto.LoginRequest) (*dto.LoginResponse, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}

	client := uc.tc.NewSession()

	authResp, err := client.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		// Log the specific cause; the caller only ever sees the generic kind.
		uc.log.Warn("auth - login failed for %s: %v", creds.Username, err)

		return nil, ErrAuthenticationFailed.Wrap("Login", "client.Authenticate", err)
	}

	token, err := uc.mintToken(creds.Username, authResp.SessionID)
	if err != nil {
		uc.log.Error(err, "auth - Login - uc.mintToken")

		return nil, ErrAuthenticationFailed.Wrap("Login", "uc.mintToken", err)
	}

	user := dto.User{Username: creds.Username}
	if authResp.User != nil {
		user.UserID = authResp.User.UserID
		user.GroupID = authResp.User.GroupID
		user.Role = authResp.User.Role
	}

	uc.log.Info("auth - login succeeded for %s", creds.Username)

	return &dto.LoginResponse{User: user, Auth: *token}, nil
}

// Logout terminates the remote session, best effort. A local logout always
// succeeds from the caller's point of view; remote failures are logged and
// swallowed since the session may already have expired remotely.
func (uc *UseCase) Logout(ctx context.Context, remoteSession string) {
	client := uc.tc.NewSession()
	client.SetSessionToken(remoteSession)

	if err := client.Logout(ctx); err != nil {
		uc.log.Warn("auth - remote logout failed: %v", err)
	}
}

// ValidateToken verifies signature and expiry. Every verification failure
// collapses to InvalidTokenError for callers; the distinct cause is logged.
func (uc *UseCase) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return uc.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		uc.log.Warn("auth - token rejected: %v", err)

		return nil, ErrInvalidToken.Wrap("ValidateToken", "jwt.ParseWithClaims", err)
	}

	return claims, nil
}

// RefreshToken re-signs the payload of a still-valid token with a fresh
// issued/expiry pair. This is purely local: the embedded remote session is
// not re-checked, so a refreshed token can outlive the remote session's real
// validity. The gap only surfaces on the next remote call, which then fails
// as Unauthenticated.
func (uc *UseCase) RefreshToken(oldToken string) (*dto.AuthToken, error) {
	claims, err := uc.ValidateToken(oldToken)
	if err != nil {
		return nil, err
	}

	return uc.mintToken(claims.Username, claims.RemoteSession)
}

func (uc *UseCase) mintToken(username, remoteSession string) (*dto.AuthToken, error) {
	now := time.Now()

	claims := Claims{
		Username:      username,
		RemoteSession: remoteSession,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtKey)
	if err != nil {
		return nil, err
	}

	return &dto.AuthToken{
		Token:     signed,
		ExpiresIn: int(uc.expiration.Seconds()),
		TokenType: "Bearer",
	}, nil
}
