package domain

// Sale é a única entidade persistida: uma linha da tabela sales.
// O id é atribuído pelo repositório e imutável depois da criação.
type Sale struct {
	ID     int     `json:"id"`
	Date   string  `json:"date"`
	Store  string  `json:"store"`
	Amount float64 `json:"amount"`
}

// SaleRequest é o corpo aceito em create/update. O id é opcional no create;
// quando ausente o banco atribui o próximo valor serial.
type SaleRequest struct {
	ID     int     `json:"id,omitempty"`
	Date   string  `json:"date"`
	Store  string  `json:"store"`
	Amount float64 `json:"amount"`
}
