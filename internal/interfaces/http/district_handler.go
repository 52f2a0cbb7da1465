package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
)

// DistrictHandler maneja las peticiones HTTP para District.
type DistrictHandler struct {
	uc *usecase.DistrictUseCase
}

// NewDistrictHandler construye el handler.
func NewDistrictHandler(uc *usecase.DistrictUseCase) *DistrictHandler {
	return &DistrictHandler{uc: uc}
}

// Create godoc
// @Summary      Crear distrito
// @Tags         districts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistrictRequest  true  "Datos del distrito"
// @Success      201   {object}  dto.DistrictResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/districts [post]
func (h *DistrictHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistrictRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener distrito por ID
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del distrito"
// @Success      200  {object}  dto.DistrictResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/districts/{id} [get]
func (h *DistrictHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "distrito no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar distritos
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DistrictListResponse
// @Router       /api/districts [get]
func (h *DistrictHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar distrito
// @Tags         districts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del distrito"
// @Param        body  body  dto.UpdateDistrictRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.DistrictResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/districts/{id} [put]
func (h *DistrictHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDistrictRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "distrito no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar distrito
// @Tags         districts
// @Security     Bearer
// @Param        id   path  string  true  "ID del distrito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/districts/{id} [delete]
func (h *DistrictHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
