package domain

import "errors"

// Taxonomia de erros do núcleo de agregação.
var (
	// ErrConstraintViolation indica integridade referencial quebrada em um
	// registro (keyword/anúncio/query inexistente). Local ao registro,
	// nunca aborta o lote.
	ErrConstraintViolation = errors.New("violação de integridade referencial")

	// ErrDanglingReference indica que a resolução de hierarquia encontrou
	// um pai ausente. Pais nunca são removidos fisicamente, então isso é
	// um erro fatal de consistência, nunca descartado em silêncio.
	ErrDanglingReference = errors.New("referência de hierarquia pendente")

	// ErrDriftDetected indica divergência entre rollup armazenado e soma
	// real. Não fatal, advisory.
	ErrDriftDetected = errors.New("drift detectado entre rollup e fatos")

	// ErrBatchAborted indica falha sistêmica de armazenamento durante um
	// lote: os registros já gravados permanecem, o restante não é
	// processado e o cliente deve reenviar o lote inteiro.
	ErrBatchAborted = errors.New("lote de ingestão abortado")
)
