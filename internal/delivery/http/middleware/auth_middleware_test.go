package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devfriend/internal/domain/service"
	mockService "devfriend/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: 7, Email: "alice@example.com"}, nil)

	rec := invokeAuthenticate(t, tokenSvc, "Bearer valid-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsBearerChallengeOn401(t *testing.T) {
	expiredSvc := func(t *testing.T) service.TokenService {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().
			ValidateToken("expired-token").
			Return(nil, errors.New("token is expired"))

		return tokenSvc
	}

	tests := []struct {
		name       string
		tokenSvc   func(t *testing.T) service.TokenService
		authHeader string
	}{
		{
			name:     "missing header",
			tokenSvc: func(t *testing.T) service.TokenService { return mockService.NewMockTokenService(t) },
		},
		{
			name:       "not a bearer token",
			tokenSvc:   func(t *testing.T) service.TokenService { return mockService.NewMockTokenService(t) },
			authHeader: "Basic dXNlcjpwYXNz",
		},
		{
			name:       "expired token",
			tokenSvc:   expiredSvc,
			authHeader: "Bearer expired-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := invokeAuthenticate(t, tt.tokenSvc(t), tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

func TestUserID_AbsentWithoutAuthenticate(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
