package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/plm-management-toolkit/gateway/internal/entity"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/mocks"
	"github.com/plm-management-toolkit/gateway/internal/usecase/auth"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

var errRemote = errors.New("remote failure")

func initAuthTest(t *testing.T, expiration time.Duration) (*auth.UseCase, *mocks.MockAuthFactory, *mocks.MockSession) {
	t.Helper()

	mockCtl := gomock.NewController(t)

	factory := mocks.NewMockAuthFactory(mockCtl)
	session := mocks.NewMockSession(mockCtl)

	uc := auth.New(factory, logger.New("error"), []byte("test-signing-key"), expiration)

	return uc, factory, session
}

func TestLogin(t *testing.T) {
	t.Parallel()

	uc, factory, session := initAuthTest(t, time.Hour)

	factory.EXPECT().NewSession().Return(session)
	session.EXPECT().
		Authenticate(gomock.Any(), "jdoe", "secret").
		Return(&entity.AuthResponse{
			SessionID: "S123",
			User:      &entity.SessionUser{UserID: "jdoe01", GroupID: "Engineering", Role: "Designer"},
		}, nil)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jdoe", resp.User.Username)
	assert.Equal(t, "jdoe01", resp.User.UserID)
	assert.Equal(t, "Bearer", resp.Auth.TokenType)
	assert.Equal(t, 3600, resp.Auth.ExpiresIn)

	// The minted token round-trips through validation with the remote
	// session embedded.
	claims, err := uc.ValidateToken(resp.Auth.Token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "S123", claims.RemoteSession)
}

func TestLogin_MissingCredentials(t *testing.T) {
	t.Parallel()

	uc, _, _ := initAuthTest(t, time.Hour)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{name: "empty username", req: dto.LoginRequest{Password: "secret"}},
		{name: "empty password", req: dto.LoginRequest{Username: "jdoe"}},
		{name: "both empty", req: dto.LoginRequest{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := uc.Login(context.Background(), tc.req)

			var notValid dto.NotValidError

			require.ErrorAs(t, err, &notValid)
		})
	}
}

func TestLogin_RemoteFailureStaysGeneric(t *testing.T) {
	t.Parallel()

	uc, factory, session := initAuthTest(t, time.Hour)

	factory.EXPECT().NewSession().Return(session)
	session.EXPECT().
		Authenticate(gomock.Any(), "jdoe", "wrong").
		Return(nil, errRemote)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "wrong"})

	var authErr auth.AuthenticationError

	require.ErrorAs(t, err, &authErr)
	// The caller-visible message never carries the remote cause.
	assert.NotContains(t, authErr.Console.FriendlyMessage(), "remote failure")
}

func TestValidateToken_Rejections(t *testing.T) {
	t.Parallel()

	uc, factory, session := initAuthTest(t, time.Hour)

	factory.EXPECT().NewSession().Return(session)
	session.EXPECT().
		Authenticate(gomock.Any(), "jdoe", "secret").
		Return(&entity.AuthResponse{SessionID: "S1"}, nil)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "secret"})
	require.NoError(t, err)

	// Expired token: minted by a usecase whose expiration is in the past.
	expired, expFactory, expSession := initAuthTest(t, -time.Minute)
	expFactory.EXPECT().NewSession().Return(expSession)
	expSession.EXPECT().
		Authenticate(gomock.Any(), "jdoe", "secret").
		Return(&entity.AuthResponse{SessionID: "S1"}, nil)

	expiredResp, err := expired.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "secret"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "tampered", token: resp.Auth.Token + "x"},
		{name: "expired", token: expiredResp.Auth.Token},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := uc.ValidateToken(tc.token)

			var tokenErr auth.InvalidTokenError

			require.ErrorAs(t, err, &tokenErr)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	uc, factory, session := initAuthTest(t, time.Hour)

	factory.EXPECT().NewSession().Return(session)
	session.EXPECT().
		Authenticate(gomock.Any(), "jdoe", "secret").
		Return(&entity.AuthResponse{SessionID: "S123"}, nil)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "secret"})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(resp.Auth.Token)
	require.NoError(t, err)

	// Same identity and remote session, fresh expiry.
	claims, err := uc.ValidateToken(refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "S123", claims.RemoteSession)

	original, err := uc.ValidateToken(resp.Auth.Token)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, claims.ExpiresAt.Unix(), original.ExpiresAt.Unix())
}

func TestRefreshToken_InvalidInput(t *testing.T) {
	t.Parallel()

	uc, _, _ := initAuthTest(t, time.Hour)

	_, err := uc.RefreshToken("garbage")

	var tokenErr auth.InvalidTokenError

	require.ErrorAs(t, err, &tokenErr)
}

func TestLogout_SwallowsRemoteError(t *testing.T) {
	t.Parallel()

	uc, factory, session := initAuthTest(t, time.Hour)

	factory.EXPECT().NewSession().Return(session)
	session.EXPECT().SetSessionToken("S123")
	session.EXPECT().Logout(gomock.Any()).Return(errRemote)

	// Must not panic or surface the remote failure.
	uc.Logout(context.Background(), "S123")
}
