package reconciling

import "errors"

var (
	// ErrNoCurrentSnapshot indica que nenhum arquivo de extrato com data
	// classificável foi encontrado - falha dura para a execução inteira.
	ErrNoCurrentSnapshot = errors.New("nenhum extrato classificável encontrado para a semana atual")

	// ErrEmptyCurrentData indica que o extrato escolhido para a semana
	// atual não produziu nenhum registro válido.
	ErrEmptyCurrentData = errors.New("o extrato da semana atual não possui registros válidos")
)
