package entity

// Permission capacidad opaca requerida por una operación protegida (ej. "district.create").
// El núcleo RBAC no interpreta jerarquías ni comodines.
type Permission string

// Catálogo de permisos de las pantallas administrativas.
const (
	PermDistrictCreate Permission = "district.create"
	PermDistrictRead   Permission = "district.read"
	PermDistrictUpdate Permission = "district.update"
	PermDistrictDelete Permission = "district.delete"

	PermGroupCreate Permission = "group.create"
	PermGroupRead   Permission = "group.read"
	PermGroupUpdate Permission = "group.update"
	PermGroupDelete Permission = "group.delete"

	PermDirectiveCreate Permission = "directive.create"
	PermDirectiveRead   Permission = "directive.read"
	PermDirectiveUpdate Permission = "directive.update"
	PermDirectiveDelete Permission = "directive.delete"

	PermUserCreate Permission = "user.create"
	PermUserRead   Permission = "user.read"
	PermUserUpdate Permission = "user.update"
	PermUserDelete Permission = "user.delete"

	PermRoleRead   Permission = "role.read"
	PermRoleUpdate Permission = "role.update"
)

var catalog = []Permission{
	PermDistrictCreate, PermDistrictRead, PermDistrictUpdate, PermDistrictDelete,
	PermGroupCreate, PermGroupRead, PermGroupUpdate, PermGroupDelete,
	PermDirectiveCreate, PermDirectiveRead, PermDirectiveUpdate, PermDirectiveDelete,
	PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete,
	PermRoleRead, PermRoleUpdate,
}

// Catalog devuelve una copia del catálogo de permisos conocidos.
func Catalog() []Permission {
	out := make([]Permission, len(catalog))
	copy(out, catalog)
	return out
}

// IsCataloged informa si el permiso existe en el catálogo.
func IsCataloged(p Permission) bool {
	for _, c := range catalog {
		if c == p {
			return true
		}
	}
	return false
}
