package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-manager-api/internal/config"
	"github.com/vfg2006/sales-manager-api/internal/usecases/authenticating"
)

func newGuardedHandler(t *testing.T) (http.Handler, authenticating.Authenticator) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.Auth{
			SecretKey: "segredo-de-teste",
			Email:     "admin@sales.local",
			Secret:    "clave123",
		},
	}
	authService := authenticating.NewService(cfg)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ContextKeyClaims).(jwt.MapClaims)
		require.True(t, ok, "claims devem estar no contexto da requisição")
		assert.Equal(t, "admin@sales.local", claims["email"])
		w.WriteHeader(http.StatusOK)
	})

	return BearerGuard(authService, cfg.Auth.Email)(next), authService
}

func TestBearerGuard_AllowsConfiguredIdentity(t *testing.T) {
	guarded, authService := newGuardedHandler(t)

	token, err := authService.IssueToken(jwt.MapClaims{"email": "admin@sales.local"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerGuard_RejectsOtherIdentity(t *testing.T) {
	guarded, authService := newGuardedHandler(t)

	token, err := authService.IssueToken(jwt.MapClaims{"email": "otro@sales.local"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"detail": "No autorizado"}`, rec.Body.String())
}

func TestBearerGuard_Unauthenticated(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "sem header"},
		{name: "esquema não bearer", header: "Basic abc123"},
		{name: "token forjado", header: "Bearer eyJhbGciOiJIUzI1NiJ9.e30.forjado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guarded, _ := newGuardedHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/sales", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			guarded.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"detail": "Not authorized"}`, rec.Body.String())
		})
	}
}
