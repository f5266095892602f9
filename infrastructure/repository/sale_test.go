package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-manager-api/internal/domain"
)

// stubQueryer registra a última query executada e devolve o resultado
// configurado. Satisfaz postgres.Queryer, como *postgres.Connection.
type stubQueryer struct {
	execSQL  string
	execArgs []interface{}
	result   sql.Result
	err      error
}

var _ postgres.Queryer = (*stubQueryer)(nil)

func (s *stubQueryer) Exec(query string, args ...interface{}) (sql.Result, error) {
	s.execSQL = query
	s.execArgs = args
	return s.result, s.err
}

func (s *stubQueryer) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("não usado neste teste")
}

func (s *stubQueryer) QueryRow(query string, args ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func TestDelete(t *testing.T) {
	t.Run("linha removida devolve true", func(t *testing.T) {
		conn := &stubQueryer{result: fakeResult{rows: 1}}
		repo := NewSaleRepository(conn)

		deleted, err := repo.Delete(3)
		require.NoError(t, err)
		assert.True(t, deleted)

		assert.Equal(t, "DELETE FROM sales WHERE id = $1", conn.execSQL)
		assert.Equal(t, []interface{}{3}, conn.execArgs)
	})

	t.Run("id inexistente devolve false", func(t *testing.T) {
		conn := &stubQueryer{result: fakeResult{rows: 0}}
		repo := NewSaleRepository(conn)

		deleted, err := repo.Delete(4)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("falha do banco é propagada", func(t *testing.T) {
		conn := &stubQueryer{err: errors.New("conexão perdida")}
		repo := NewSaleRepository(conn)

		_, err := repo.Delete(3)
		assert.ErrorContains(t, err, "conexão perdida")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("linha atualizada ecoa os campos com o id", func(t *testing.T) {
		conn := &stubQueryer{result: fakeResult{rows: 1}}
		repo := NewSaleRepository(conn)

		sale, err := repo.Update(5, &domain.Sale{Date: "10/03/23", Store: "Tienda02", Amount: 99.9})
		require.NoError(t, err)

		assert.Equal(t, &domain.Sale{ID: 5, Date: "10/03/23", Store: "Tienda02", Amount: 99.9}, sale)
		assert.Equal(t, "UPDATE sales SET date = $1, store = $2, amount = $3 WHERE id = $4", conn.execSQL)
	})

	t.Run("id inexistente devolve nil sem erro", func(t *testing.T) {
		conn := &stubQueryer{result: fakeResult{rows: 0}}
		repo := NewSaleRepository(conn)

		sale, err := repo.Update(6, &domain.Sale{Date: "10/03/23", Store: "Tienda02", Amount: 1})
		require.NoError(t, err)
		assert.Nil(t, sale)
	})
}
