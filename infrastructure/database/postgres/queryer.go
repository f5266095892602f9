package postgres

import "database/sql"

// Queryer é a superfície de consulta que os repositórios usam. *Connection a
// satisfaz através do *sql.DB embutido.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

var _ Queryer = (*Connection)(nil)
