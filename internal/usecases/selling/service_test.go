package selling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateSale(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.SaleRequest
		setup   func(repo *mocks.MockSaleRepository)
		want    *domain.Sale
		wantErr error
	}{
		{
			name: "venda válida",
			req:  &domain.SaleRequest{Date: "01/01/23", Store: "Tienda01", Amount: 2500},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().
					Insert(&domain.Sale{Date: "01/01/23", Store: "Tienda01", Amount: 2500}).
					Return(&domain.Sale{ID: 1, Date: "01/01/23", Store: "Tienda01", Amount: 2500}, nil)
			},
			want: &domain.Sale{ID: 1, Date: "01/01/23", Store: "Tienda01", Amount: 2500},
		},
		{
			name: "id enviado pelo cliente é repassado",
			req:  &domain.SaleRequest{ID: 9, Date: "02/01/23", Store: "Tienda02", Amount: 10},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().
					Insert(&domain.Sale{ID: 9, Date: "02/01/23", Store: "Tienda02", Amount: 10}).
					Return(&domain.Sale{ID: 9, Date: "02/01/23", Store: "Tienda02", Amount: 10}, nil)
			},
			want: &domain.Sale{ID: 9, Date: "02/01/23", Store: "Tienda02", Amount: 10},
		},
		{
			// Nenhuma expectativa no repositório: a violação interrompe antes
			name:    "loja com 3 caracteres",
			req:     &domain.SaleRequest{Date: "01/01/23", Store: "abc", Amount: 1},
			wantErr: ErrStoreLengthOutOfRange,
		},
		{
			name:    "loja com 11 caracteres",
			req:     &domain.SaleRequest{Date: "01/01/23", Store: "abcdefghijk", Amount: 1},
			wantErr: ErrStoreLengthOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSaleRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo)

			sale, err := service.CreateSale(tt.req)

			if tt.wantErr != nil {
				assert.Nil(t, sale)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, sale)
		})
	}
}

func TestGetSale(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		setup   func(repo *mocks.MockSaleRepository)
		want    *domain.Sale
		wantErr error
	}{
		{
			name: "venda existente",
			id:   42,
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().
					GetByID(42).
					Return(&domain.Sale{ID: 42, Date: "01/01/23", Store: "Tienda01", Amount: 2500}, nil)
			},
			want: &domain.Sale{ID: 42, Date: "01/01/23", Store: "Tienda01", Amount: 2500},
		},
		{
			name: "venda inexistente devolve nil",
			id:   43,
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().GetByID(43).Return(nil, nil)
			},
		},
		{name: "id zero", id: 0, wantErr: ErrSaleIDOutOfRange},
		{name: "id acima do limite", id: 1001, wantErr: ErrSaleIDOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSaleRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo)

			sale, err := service.GetSale(tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, sale)
		})
	}
}

func TestListSalesByStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(repo)

	t.Run("filtro curto demais", func(t *testing.T) {
		sales, err := service.ListSalesByStore("abc")
		assert.Nil(t, sales)
		assert.ErrorIs(t, err, ErrStoreFilterOutOfRange)
	})

	t.Run("filtro longo demais", func(t *testing.T) {
		sales, err := service.ListSalesByStore("abcdefghijklmnopqrstu")
		assert.Nil(t, sales)
		assert.ErrorIs(t, err, ErrStoreFilterOutOfRange)
	})

	t.Run("filtro válido delega ao repositório", func(t *testing.T) {
		expected := []*domain.Sale{{ID: 1, Date: "01/01/23", Store: "Tienda01", Amount: 2500}}
		repo.EXPECT().ListByStore("Tienda01").Return(expected, nil)

		sales, err := service.ListSalesByStore("Tienda01")
		require.NoError(t, err)
		assert.Equal(t, expected, sales)
	})
}

func TestUpdateSale(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		req     *domain.SaleRequest
		setup   func(repo *mocks.MockSaleRepository)
		want    *domain.Sale
		wantErr error
	}{
		{
			name: "sobrescreve os três campos de uma vez",
			id:   5,
			req:  &domain.SaleRequest{Date: "10/03/23", Store: "Tienda02", Amount: 99.9},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().
					Update(5, &domain.Sale{Date: "10/03/23", Store: "Tienda02", Amount: 99.9}).
					Return(&domain.Sale{ID: 5, Date: "10/03/23", Store: "Tienda02", Amount: 99.9}, nil)
			},
			want: &domain.Sale{ID: 5, Date: "10/03/23", Store: "Tienda02", Amount: 99.9},
		},
		{
			name: "id inexistente devolve nil",
			id:   6,
			req:  &domain.SaleRequest{Date: "10/03/23", Store: "Tienda02", Amount: 1},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().Update(6, gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:    "loja inválida não alcança o repositório",
			id:      5,
			req:     &domain.SaleRequest{Date: "10/03/23", Store: "abc", Amount: 1},
			wantErr: ErrStoreLengthOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSaleRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo)

			sale, err := service.UpdateSale(tt.id, tt.req)

			if tt.wantErr != nil {
				assert.Nil(t, sale)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, sale)
		})
	}
}

func TestDeleteSale(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		setup   func(repo *mocks.MockSaleRepository)
		want    bool
		wantErr error
	}{
		{
			name: "remoção efetiva",
			id:   3,
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().Delete(3).Return(true, nil)
			},
			want: true,
		},
		{
			name: "id inexistente devolve false",
			id:   4,
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().Delete(4).Return(false, nil)
			},
		},
		{name: "id fora do intervalo", id: 1001, wantErr: ErrSaleIDOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSaleRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo)

			deleted, err := service.DeleteSale(tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
		})
	}
}

func TestListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(repo)

	expected := []*domain.Sale{
		{ID: 1, Date: "01/01/23", Store: "Tienda01", Amount: 2500},
		{ID: 2, Date: "22/01/23", Store: "Tienda02", Amount: 4500},
	}
	repo.EXPECT().ListAll().Return(expected, nil)

	sales, err := service.ListSales()
	require.NoError(t, err)
	assert.Equal(t, expected, sales)
}
