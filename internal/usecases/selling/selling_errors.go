package selling

import "errors"

// Erros de validação de entrada. Qualquer um deles interrompe a operação
// antes do repositório ser consultado.
var (
	ErrStoreLengthOutOfRange = errors.New("o nome da loja deve ter entre 4 e 10 caracteres")
	ErrStoreFilterOutOfRange = errors.New("o filtro de loja deve ter entre 4 e 20 caracteres")
	ErrSaleIDOutOfRange      = errors.New("o id da venda deve estar entre 1 e 1000")
)
