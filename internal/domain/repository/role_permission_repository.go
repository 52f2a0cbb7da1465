package repository

import (
	"context"

	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// RolePermissionRepository puerto del mapeo rol→permisos: única fuente de verdad de lo que puede hacer un rol.
type RolePermissionRepository interface {
	// PermissionsForRole devuelve los permisos del rol. Un resultado vacío es válido.
	PermissionsForRole(ctx context.Context, role entity.Role) ([]entity.Permission, error)
	// ReplacePermissions reemplaza atómicamente los permisos del rol.
	ReplacePermissions(ctx context.Context, role entity.Role, perms []entity.Permission) error
}
