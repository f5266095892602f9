package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-manager-api/internal/config"
)

// Home responde um HTML mínimo com o título e a versão da aplicação.
func Home(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<h2>%s v%s</h2>", cfg.App.Title, cfg.App.Version)
	}
}

// TestFavicon serve o favicon diretamente, útil para conferir que o mount
// de estáticos está acessível.
func TestFavicon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := os.ReadFile("static/favicon.ico")
		if err != nil {
			logrus.WithError(err).Warn("favicon indisponível")
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/x-icon")
		if _, err := w.Write(content); err != nil {
			logrus.WithError(err).Warn("erro ao enviar favicon")
		}
	}
}
