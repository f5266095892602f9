package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-manager-api/internal/domain"
)

const salesTable = "sales"

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

type SaleRepository interface {
	ListAll() ([]*domain.Sale, error)
	GetByID(id int) (*domain.Sale, error)
	ListByStore(store string) ([]*domain.Sale, error)
	Insert(sale *domain.Sale) (*domain.Sale, error)
	Update(id int, sale *domain.Sale) (*domain.Sale, error)
	Delete(id int) (bool, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListAll() ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "date", "store", "amount").
		From(salesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(salesSQL, salesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func (r *saleRepository) GetByID(id int) (*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "date", "store", "amount").
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var sale domain.Sale
	err = r.conn.QueryRow(saleSQL, saleArgs...).Scan(
		&sale.ID,
		&sale.Date,
		&sale.Store,
		&sale.Amount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return &sale, nil
}

func (r *saleRepository) ListByStore(store string) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "date", "store", "amount").
		From(salesTable).
		Where(squirrel.Eq{"store": store}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(salesSQL, salesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// Insert grava a venda e devolve a linha com o id definitivo. Um id positivo
// enviado pelo cliente é respeitado; caso contrário o banco atribui o serial.
func (r *saleRepository) Insert(sale *domain.Sale) (*domain.Sale, error) {
	queryBuilder := squirrel.
		Insert(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	if sale.ID > 0 {
		queryBuilder = queryBuilder.
			Columns("id", "date", "store", "amount").
			Values(sale.ID, sale.Date, sale.Store, sale.Amount)
	} else {
		queryBuilder = queryBuilder.
			Columns("date", "store", "amount").
			Values(sale.Date, sale.Store, sale.Amount)
	}

	saleSQL, saleArgs, err := queryBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(saleSQL, saleArgs...).Scan(&sale.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return sale, nil
}

// Update sobrescreve date, store e amount de uma vez. Devolve nil quando o id
// não existe; nesse caso nada é gravado.
func (r *saleRepository) Update(id int, sale *domain.Sale) (*domain.Sale, error) {
	queryBuilder := squirrel.
		Update(salesTable).
		Set("date", sale.Date).
		Set("store", sale.Store).
		Set("amount", sale.Amount).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return nil, nil
	}

	updated := &domain.Sale{
		ID:     id,
		Date:   sale.Date,
		Store:  sale.Store,
		Amount: sale.Amount,
	}

	return updated, nil
}

func (r *saleRepository) Delete(id int) (bool, error) {
	queryBuilder := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover venda: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func scanSales(rows *sql.Rows) ([]*domain.Sale, error) {
	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.Date,
			&sale.Store,
			&sale.Amount,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}

		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
