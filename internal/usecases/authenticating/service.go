package authenticating

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-manager-api/internal/config"
	"github.com/vfg2006/sales-manager-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(email, secret string) (string, error)
	IssueToken(claims jwt.MapClaims) (string, error)
	ValidateToken(tokenString string) (jwt.MapClaims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// LoginUser confere o par (email, segredo) com a identidade configurada e,
// em caso de sucesso, emite um token carregando apenas o claim de identidade.
// O segredo enviado nunca entra no payload do token.
func (s *Service) LoginUser(email, secret string) (string, error) {
	if email == "" || secret == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e segredo são obrigatórios")
	}

	email = handleEmail(email)

	if email != handleEmail(s.cfg.Auth.Email) {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais incorretas")
	}

	if !secretMatches(s.cfg.Auth.Secret, secret) {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais incorretas")
	}

	token, err := s.IssueToken(jwt.MapClaims{"email": email})
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

// IssueToken assina os claims com HS256 usando o segredo do processo.
// Nenhum claim de expiração é adicionado.
func (s *Service) IssueToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

// ValidateToken reconfere a assinatura e devolve os claims originais.
// Tokens malformados, forjados ou com algoritmo não-HMAC falham com
// ErrInvalidToken. Expiração não é verificada (nenhuma é emitida).
func (s *Service) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inesperados")
	}

	return claims, nil
}

// secretMatches aceita o segredo configurado tanto em texto plano quanto como
// hash bcrypt ($2a$/$2b$/$2y$).
func secretMatches(configured, given string) bool {
	if strings.HasPrefix(configured, "$2a$") ||
		strings.HasPrefix(configured, "$2b$") ||
		strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(given)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
