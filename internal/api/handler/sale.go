package handler

import (
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-manager-api/internal/domain"
	"github.com/vfg2006/sales-manager-api/internal/usecases/selling"
	"github.com/vfg2006/sales-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// messageResponse é o corpo das respostas de confirmação e de not-found.
type messageResponse struct {
	Message string       `json:"mensaje"`
	Sale    *domain.Sale `json:"sale,omitempty"`
}

// SaleList retorna todas as vendas. Única rota protegida pelo BearerGuard
// (ver routes.go).
func SaleList(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales()
		if err != nil {
			logrus.Error("Erro ao listar vendas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		respondJSON(w, http.StatusOK, sales)
	}
}

// GetSaleByID retorna uma venda pelo id do path. Id fora de [1,1000] é
// rejeitado antes do repositório.
func GetSaleByID(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDFromPath(w, r)
		if !ok {
			return
		}

		sale, err := service.GetSale(id)
		if err != nil {
			writeSaleError(w, err, "Erro ao buscar venda")
			return
		}

		if sale == nil {
			respondJSON(w, http.StatusNotFound, messageResponse{
				Message: fmt.Sprintf("Sale %d does not exist, cannot be shown", id),
			})
			return
		}

		respondJSON(w, http.StatusOK, sale)
	}
}

// GetSalesByStore filtra as vendas pelo parâmetro de query "store".
func GetSalesByStore(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := r.URL.Query().Get("store")

		sales, err := service.ListSalesByStore(store)
		if err != nil {
			writeSaleError(w, err, "Erro ao buscar vendas da loja")
			return
		}

		if len(sales) == 0 {
			respondJSON(w, http.StatusNotFound, messageResponse{
				Message: fmt.Sprintf("Store %s does not exist, cannot be shown", store),
			})
			return
		}

		respondJSON(w, http.StatusOK, sales)
	}
}

func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.CreateSale(&req)
		if err != nil {
			writeSaleError(w, err, "Erro ao registrar venda")
			return
		}

		respondJSON(w, http.StatusCreated, messageResponse{
			Message: "New sale recorded",
			Sale:    sale,
		})
	}
}

func UpdateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDFromPath(w, r)
		if !ok {
			return
		}

		var req domain.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.UpdateSale(id, &req)
		if err != nil {
			writeSaleError(w, err, "Erro ao atualizar venda")
			return
		}

		if sale == nil {
			respondJSON(w, http.StatusNotFound, messageResponse{
				Message: fmt.Sprintf("Sale %d does not exist, cannot be updated", id),
			})
			return
		}

		respondJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Sale %d has been updated", id),
			Sale:    sale,
		})
	}
}

func DeleteSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDFromPath(w, r)
		if !ok {
			return
		}

		deleted, err := service.DeleteSale(id)
		if err != nil {
			writeSaleError(w, err, "Erro ao remover venda")
			return
		}

		if !deleted {
			respondJSON(w, http.StatusNotFound, messageResponse{
				Message: fmt.Sprintf("Sale %d does not exist, cannot be deleted", id),
			})
			return
		}

		respondJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Sale %d has been deleted", id),
		})
	}
}

// saleIDFromPath extrai o id numérico do path. Um id não numérico é uma
// violação de tipo do parâmetro e responde 422.
func saleIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrConstraintViolation, "Id da venda inválido", nil)
		return 0, false
	}

	return id, true
}

// writeSaleError distingue violação de restrição de entrada (422) de falha
// do banco (500).
func writeSaleError(w http.ResponseWriter, err error, dbMessage string) {
	switch {
	case errors.Is(err, selling.ErrSaleIDOutOfRange),
		errors.Is(err, selling.ErrStoreLengthOutOfRange),
		errors.Is(err, selling.ErrStoreFilterOutOfRange):
		apiErrors.WriteError(w, apiErrors.ErrConstraintViolation, err.Error(), nil)
	default:
		logrus.Error(dbMessage+":", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, dbMessage, nil)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}
