package handler

import (
	"net/http"

	"github.com/vfg2006/sales-manager-api/internal/api/handler/router"
	"github.com/vfg2006/sales-manager-api/internal/config"
	"github.com/vfg2006/sales-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-manager-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Root(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Home(cfg),
		},
		{
			Path:    "/test_favicon",
			Method:  http.MethodGet,
			Handler: TestFavicon(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Sales declara as rotas de vendas. Apenas a listagem completa carrega o
// guard; as demais rotas ficam abertas, replicando o comportamento observado
// do sistema de origem. Manter a lista explícita aqui é o que torna essa
// assimetria auditável.
func Sales(service selling.SaleService, guard func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/sales",
			Method:      http.MethodGet,
			Handler:     SaleList(service),
			Middlewares: []func(http.Handler) http.Handler{guard},
		},
		{
			Path:    "/sales/",
			Method:  http.MethodGet,
			Handler: GetSalesByStore(service),
		},
		{
			Path:    "/sales/:id",
			Method:  http.MethodGet,
			Handler: GetSaleByID(service),
		},
		{
			Path:    "/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(service),
		},
		{
			Path:    "/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}
