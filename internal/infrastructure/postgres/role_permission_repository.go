package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

var _ repository.RolePermissionRepository = (*RolePermissionRepo)(nil)

// TxBeginner lo implementan *pgxpool.Pool y pgx.Tx (en una tx abre un savepoint).
type TxBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RolePermissionRepo mapeo rol→permisos en la tabla role_permissions.
type RolePermissionRepo struct {
	db TxBeginner
}

// NewRolePermissionRepository construye el adaptador.
func NewRolePermissionRepository(db TxBeginner) *RolePermissionRepo {
	return &RolePermissionRepo{db: db}
}

// PermissionsForRole devuelve los permisos del rol ordenados. Un rol sin filas devuelve lista vacía.
func (r *RolePermissionRepo) PermissionsForRole(ctx context.Context, role entity.Role) ([]entity.Permission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT permission FROM role_permissions WHERE role = $1 ORDER BY permission`, string(role))
	if err != nil {
		return nil, wrapError("list role permissions", err)
	}
	defer rows.Close()
	perms := []entity.Permission{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, wrapError("scan role permission", err)
		}
		perms = append(perms, entity.Permission(p))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("list role permissions", err)
	}
	return perms, nil
}

// ReplacePermissions borra e inserta los permisos del rol en una sola transacción.
func (r *RolePermissionRepo) ReplacePermissions(ctx context.Context, role entity.Role, perms []entity.Permission) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role = $1`, string(role)); err != nil {
		return wrapError("delete role permissions", err)
	}
	if len(perms) > 0 {
		rows := make([][]any, 0, len(perms))
		for _, p := range perms {
			rows = append(rows, []any{string(role), string(p)})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"role_permissions"}, []string{"role", "permission"}, pgx.CopyFromRows(rows)); err != nil {
			return mapWriteError("insert role permissions", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapError("commit transaction", err)
	}
	return nil
}
