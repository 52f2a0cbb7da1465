package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

var _ usecase.GroupTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner sobre el pool (o sobre una tx, que abre un savepoint).
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunGroup ejecuta fn con repos de grupo y junta atados a una misma tx.
// Cualquier error de fn hace Rollback y se devuelve tal cual; los fallos de Begin o Commit
// por conexión se marcan como domain.ErrStoreUnavailable.
func (r *TxRunner) RunGroup(ctx context.Context, fn func(
	groups repository.GroupRepository,
	directive repository.DirectiveRepository,
) error) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(NewGroupRepository(tx), NewDirectiveRepository(tx))
	})
	if err != nil && !errors.Is(err, domain.ErrStoreUnavailable) && isUnavailable(err) {
		return wrapError("group transaction", err)
	}
	return err
}
