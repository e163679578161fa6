package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/application/usecase"
)

// DrawerHandler handles HTTP requests for drawers.
type DrawerHandler struct {
	uc *usecase.DrawerUseCase
}

// NewDrawerHandler builds the handler.
func NewDrawerHandler(uc *usecase.DrawerUseCase) *DrawerHandler {
	return &DrawerHandler{uc: uc}
}

// Create godoc
// @Summary      Create drawer in a freezer
// @Tags         drawers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDrawerRequest  true  "Drawer data"
// @Success      201   {object}  dto.DrawerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drawers [post]
func (h *DrawerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDrawerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid request body")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name is required")
	}
	if in.FreezerID == "" {
		return badRequest(c, "VALIDATION", "freezer_id is required")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List drawers, optionally of one freezer
// @Tags         drawers
// @Produce      json
// @Param        freezerId  query  string  false  "Restrict to one freezer"
// @Success      200  {object}  dto.DrawerListResponse
// @Router       /api/drawers [get]
func (h *DrawerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("freezerId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get drawer by ID
// @Tags         drawers
// @Produce      json
// @Param        id   path  string  true  "Drawer ID"
// @Success      200  {object}  dto.DrawerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drawers/{id} [get]
func (h *DrawerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "drawer not found")
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Rename drawer
// @Tags         drawers
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Drawer ID"
// @Param        body  body  dto.RenameDrawerRequest  true  "New name"
// @Success      200   {object}  dto.DrawerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drawers/{id} [put]
func (h *DrawerHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameDrawerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid request body")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name is required")
	}
	out, err := h.uc.Rename(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete drawer (cascades to storage entries)
// @Tags         drawers
// @Param        id  path  string  true  "Drawer ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drawers/{id} [delete]
func (h *DrawerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
