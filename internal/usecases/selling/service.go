package selling

import (
	"unicode/utf8"

	"github.com/vfg2006/sales-manager-api/infrastructure/repository"
	"github.com/vfg2006/sales-manager-api/internal/domain"
)

const (
	storeMinLength = 4
	storeMaxLength = 10

	storeFilterMinLength = 4
	storeFilterMaxLength = 20

	saleIDMin = 1
	saleIDMax = 1000
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type SaleService interface {
	ListSales() ([]*domain.Sale, error)
	GetSale(id int) (*domain.Sale, error)
	ListSalesByStore(store string) ([]*domain.Sale, error)
	CreateSale(req *domain.SaleRequest) (*domain.Sale, error)
	UpdateSale(id int, req *domain.SaleRequest) (*domain.Sale, error)
	DeleteSale(id int) (bool, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) SaleService {
	return &Service{
		saleRepo: saleRepo,
	}
}

func (s *Service) ListSales() ([]*domain.Sale, error) {
	return s.saleRepo.ListAll()
}

func (s *Service) GetSale(id int) (*domain.Sale, error) {
	if err := validateSaleID(id); err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(id)
}

func (s *Service) ListSalesByStore(store string) ([]*domain.Sale, error) {
	if length := utf8.RuneCountInString(store); length < storeFilterMinLength || length > storeFilterMaxLength {
		return nil, ErrStoreFilterOutOfRange
	}

	return s.saleRepo.ListByStore(store)
}

func (s *Service) CreateSale(req *domain.SaleRequest) (*domain.Sale, error) {
	if err := validateStore(req.Store); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:     req.ID,
		Date:   req.Date,
		Store:  req.Store,
		Amount: req.Amount,
	}

	return s.saleRepo.Insert(sale)
}

// UpdateSale sobrescreve os três campos mutáveis de uma vez; não existe
// atualização parcial. Devolve nil quando o id não existe.
func (s *Service) UpdateSale(id int, req *domain.SaleRequest) (*domain.Sale, error) {
	if err := validateStore(req.Store); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		Date:   req.Date,
		Store:  req.Store,
		Amount: req.Amount,
	}

	return s.saleRepo.Update(id, sale)
}

func (s *Service) DeleteSale(id int) (bool, error) {
	if err := validateSaleID(id); err != nil {
		return false, err
	}

	return s.saleRepo.Delete(id)
}

func validateStore(store string) error {
	if length := utf8.RuneCountInString(store); length < storeMinLength || length > storeMaxLength {
		return ErrStoreLengthOutOfRange
	}
	return nil
}

func validateSaleID(id int) error {
	if id < saleIDMin || id > saleIDMax {
		return ErrSaleIDOutOfRange
	}
	return nil
}
