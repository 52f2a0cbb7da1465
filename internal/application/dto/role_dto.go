package dto

// RoleResponse rol con su alcance y permisos.
type RoleResponse struct {
	Role        string   `json:"role"`
	Scope       string   `json:"scope"`
	Permissions []string `json:"permissions"`
}

// ReplaceRolePermissionsRequest nuevo conjunto de permisos del rol.
type ReplaceRolePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"dive,required"`
}
