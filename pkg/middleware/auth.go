package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-manager-api/internal/usecases/authenticating"
)

type contextKey string

// ContextKeyClaims guarda os claims do token validado no contexto da requisição
const ContextKeyClaims contextKey = "claims"

// BearerGuard protege uma rota exigindo um token bearer válido cujo claim de
// email seja a identidade configurada. É declarado rota a rota em routes.go,
// então a lista de endpoints protegidos fica auditável num único lugar.
func BearerGuard(authService authenticating.Authenticator, allowedEmail string) func(http.Handler) http.Handler {
	allowedEmail = normalizeEmail(allowedEmail)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeDetail(w, http.StatusUnauthorized, "Not authorized")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeDetail(w, http.StatusUnauthorized, "Not authorized")
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logrus.WithError(err).Warn("Token rejeitado")
				writeDetail(w, http.StatusUnauthorized, "Not authorized")
				return
			}

			email, _ := claims["email"].(string)
			if normalizeEmail(email) != allowedEmail {
				logrus.Warnf("Identidade não autorizada: %s", email)
				writeDetail(w, http.StatusForbidden, "No autorizado")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
