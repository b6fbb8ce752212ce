package repository

import (
	"fmt"

	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"

	"github.com/adstats/campaign-stats-engine/internal/domain"
)

// Códigos de erro do Postgres que mapeiam para a taxonomia do domínio.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// wrapConstraintError traduz violações de integridade do banco para
// domain.ErrConstraintViolation, preservando o erro original na cadeia.
// Outros erros são devolvidos com contexto.
func wrapConstraintError(err error, context string) error {
	if err == nil {
		return nil
	}

	if pqErr, ok := err.(*pq.Error); ok {
		switch string(pqErr.Code) {
		case pqForeignKeyViolation, pqUniqueViolation:
			return fmt.Errorf("%s: %w: %v", context, domain.ErrConstraintViolation, pqErr)
		}
	}

	return pkgerrors.Wrap(err, context)
}
