package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
)

// RoleHandler consulta y edición del mapeo rol→permisos.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles con sus permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReplacePermissions godoc
// @Summary      Reemplazar los permisos de un rol
// @Description  Solo acepta permisos del catálogo. Las sesiones abiertas conservan sus permisos hasta cerrar sesión.
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        role  path  string                             true  "Rol (PROMOTER, DIRECTIVE, ADMIN)"
// @Param        body  body  dto.ReplaceRolePermissionsRequest  true  "Permisos"
// @Success      200   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/roles/{role}/permissions [put]
func (h *RoleHandler) ReplacePermissions(c *fiber.Ctx) error {
	var in dto.ReplaceRolePermissionsRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Replace(c.UserContext(), c.Params("role"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
