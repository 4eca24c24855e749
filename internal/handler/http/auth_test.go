package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dchernov/weightkeeper/internal/service"
	"github.com/dchernov/weightkeeper/internal/store"
	"github.com/dchernov/weightkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("registers and returns a bearer token", func(t *testing.T) {
		accounts := &mockAccountService{
			registerFn: func(ctx context.Context, request models.RegisterRequest) (models.Account, error) {
				return models.Account{AccountID: 1, Username: request.Username}, nil
			},
		}
		h := newTestHandler(t, accounts, nil, nil)

		body := jsonBody(t, models.RegisterRequest{Username: "alice", Password: "secret"})
		req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer stub-token", rr.Header().Get("Authorization"))
		assert.Contains(t, rr.Body.String(), `"username":"alice"`)
	})

	t.Run("duplicate username maps to 409", func(t *testing.T) {
		accounts := &mockAccountService{
			registerFn: func(ctx context.Context, request models.RegisterRequest) (models.Account, error) {
				return models.Account{}, store.ErrDuplicateUsername
			},
		}
		h := newTestHandler(t, accounts, nil, nil)

		body := jsonBody(t, models.RegisterRequest{Username: "alice", Password: "secret"})
		req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("malformed JSON maps to 400", func(t *testing.T) {
		h := newTestHandler(t, &mockAccountService{}, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	accounts := &mockAccountService{
		authenticateFn: func(ctx context.Context, username, password string) (models.Account, error) {
			if username == "alice" && password == "secret" {
				return models.Account{AccountID: 1, Username: "alice"}, nil
			}
			return models.Account{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, accounts, nil, nil)

	t.Run("valid credentials", func(t *testing.T) {
		body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "secret"})
		req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer stub-token", rr.Header().Get("Authorization"))
	})

	t.Run("wrong credentials map to 401", func(t *testing.T) {
		body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAvailability(t *testing.T) {
	accounts := &mockAccountService{
		usernameTakenFn: func(ctx context.Context, username string) (bool, error) {
			return username == "alice", nil
		},
		emailTakenFn: func(ctx context.Context, email string) (bool, error) {
			return email == "alice@example.com", nil
		},
	}
	h := newTestHandler(t, accounts, nil, nil)

	t.Run("taken username", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/account/availability?username=alice", nil)
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username_taken":true`)
	})

	t.Run("free email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/account/availability?email=bob@example.com", nil)
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email_taken":false`)
	})

	t.Run("no query parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/account/availability", nil)
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUsernameByEmail(t *testing.T) {
	accounts := &mockAccountService{
		findUsernameByEmailFn: func(ctx context.Context, email string) (string, bool, error) {
			if email == "alice@example.com" {
				return "alice", true, nil
			}
			return "", false, nil
		},
	}
	h := newTestHandler(t, accounts, nil, nil)

	t.Run("known email", func(t *testing.T) {
		body := jsonBody(t, models.RecoveryStartRequest{Email: "alice@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/account/forgot-username", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"alice"`)
	})

	t.Run("unknown email maps to 404", func(t *testing.T) {
		body := jsonBody(t, models.RecoveryStartRequest{Email: "nobody@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/account/forgot-username", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
