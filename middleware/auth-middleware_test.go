package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/models"
	"github.com/krishkalaria12/vitalplan-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokens map[string]uint

func (s stubTokens) Parse(tok string) (uint, error) {
	if id, ok := s[tok]; ok {
		return id, nil
	}
	return 0, errors.New("bad token")
}

type stubUsers map[uint]*models.User

func (s stubUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func newApp() *fiber.App {
	app := fiber.New()
	tokens := stubTokens{"good": 1, "inactive": 2, "ghost": 3}
	users := stubUsers{
		1: {Record: models.Record{ID: 1}, Email: "a@b.co", IsActive: true},
		2: {Record: models.Record{ID: 2}, Email: "c@d.co", IsActive: false},
	}
	app.Get("/me", AuthMiddleware(tokens, users), func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return err
		}
		return c.SendString(user.Email)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
		wantBody string
	}{
		{name: "bearer", header: "Bearer good", wantCode: http.StatusOK, wantBody: "a@b.co"},
		{name: "lowercase scheme", header: "bearer good", wantCode: http.StatusOK, wantBody: "a@b.co"},
		{name: "cookie fallback", cookie: "good", wantCode: http.StatusOK, wantBody: "a@b.co"},
		{name: "missing", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token good", wantCode: http.StatusUnauthorized},
		{name: "invalid", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "inactive user", header: "Bearer inactive", wantCode: http.StatusUnauthorized},
		{name: "deleted user", header: "Bearer ghost", wantCode: http.StatusUnauthorized},
	}

	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Bearer "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken(""))
}
