package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-manager-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// Login confere as credenciais enviadas com o par configurado e devolve o
// token assinado como corpo JSON. Credenciais erradas respondem 404 com a
// mensagem fixa de negação, sem distinguir qual campo falhou.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Secret)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				respondJSON(w, http.StatusNotFound, messageResponse{
					Message: "Credentials incorrect, access denied",
				})
				return
			}

			logrus.Error(errors.Wrap(err, "erro ao realizar login"))
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
			return
		}

		respondJSON(w, http.StatusOK, token)
	}
}
