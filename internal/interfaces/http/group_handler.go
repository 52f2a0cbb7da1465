package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
)

// GroupHandler maneja grupos y su junta directiva. El alcance lo aplica el caso de uso con la identidad de la sesión.
type GroupHandler struct {
	groups    *usecase.GroupUseCase
	directive *usecase.DirectiveUseCase
}

// NewGroupHandler construye el handler.
func NewGroupHandler(groups *usecase.GroupUseCase, directive *usecase.DirectiveUseCase) *GroupHandler {
	return &GroupHandler{groups: groups, directive: directive}
}

// Create godoc
// @Summary      Crear grupo (opcionalmente con su junta directiva)
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGroupRequest  true  "Datos del grupo"
// @Success      201   {object}  dto.GroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.groups.Create(c.UserContext(), GetSession(c).Identity(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo por ID
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.GroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [get]
func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.groups.GetByID(c.UserContext(), GetSession(c).Identity(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "grupo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar grupos
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        district_id  query  string  false  "Filtrar por distrito"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200          {object}  dto.GroupListResponse
// @Router       /api/groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.groups.List(c.UserContext(), GetSession(c).Identity(), c.Query("district_id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar grupo
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del grupo"
// @Param        body  body  dto.UpdateGroupRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.GroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [put]
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGroupRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.groups.Update(c.UserContext(), GetSession(c).Identity(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "grupo no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar grupo
// @Tags         groups
// @Security     Bearer
// @Param        id   path  string  true  "ID del grupo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.groups.Delete(c.UserContext(), GetSession(c).Identity(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListDirective godoc
// @Summary      Junta directiva del grupo
// @Tags         directive
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {array}   dto.DirectiveMemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/directive [get]
func (h *GroupHandler) ListDirective(c *fiber.Ctx) error {
	out, err := h.directive.ListByGroup(c.UserContext(), GetSession(c).Identity(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddDirective godoc
// @Summary      Agregar integrante a la junta directiva
// @Tags         directive
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID del grupo"
// @Param        body  body  dto.CreateDirectiveMemberRequest  true  "Integrante"
// @Success      201   {object}  dto.DirectiveMemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/directive [post]
func (h *GroupHandler) AddDirective(c *fiber.Ctx) error {
	var in dto.CreateDirectiveMemberRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.directive.Add(c.UserContext(), GetSession(c).Identity(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDirective godoc
// @Summary      Actualizar integrante de la junta directiva
// @Tags         directive
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID del integrante"
// @Param        body  body  dto.UpdateDirectiveMemberRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.DirectiveMemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/directive/{id} [put]
func (h *GroupHandler) UpdateDirective(c *fiber.Ctx) error {
	var in dto.UpdateDirectiveMemberRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.directive.Update(c.UserContext(), GetSession(c).Identity(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "integrante no encontrado")
	}
	return c.JSON(out)
}

// RemoveDirective godoc
// @Summary      Retirar integrante de la junta directiva
// @Tags         directive
// @Security     Bearer
// @Param        id   path  string  true  "ID del integrante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/directive/{id} [delete]
func (h *GroupHandler) RemoveDirective(c *fiber.Ctx) error {
	if err := h.directive.Remove(c.UserContext(), GetSession(c).Identity(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
