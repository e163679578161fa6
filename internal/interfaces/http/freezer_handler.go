package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/application/usecase"
)

// FreezerHandler handles HTTP requests for freezers.
type FreezerHandler struct {
	uc *usecase.FreezerUseCase
}

// NewFreezerHandler builds the handler.
func NewFreezerHandler(uc *usecase.FreezerUseCase) *FreezerHandler {
	return &FreezerHandler{uc: uc}
}

// Create godoc
// @Summary      Create freezer
// @Tags         freezers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFreezerRequest  true  "Freezer data"
// @Success      201   {object}  dto.FreezerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/freezers [post]
func (h *FreezerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFreezerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid request body")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name is required")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List freezers
// @Tags         freezers
// @Produce      json
// @Success      200  {object}  dto.FreezerListResponse
// @Router       /api/freezers [get]
func (h *FreezerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get freezer by ID
// @Tags         freezers
// @Produce      json
// @Param        id   path  string  true  "Freezer ID"
// @Success      200  {object}  dto.FreezerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/freezers/{id} [get]
func (h *FreezerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "freezer not found")
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Rename freezer
// @Tags         freezers
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Freezer ID"
// @Param        body  body  dto.RenameFreezerRequest  true  "New name"
// @Success      200   {object}  dto.FreezerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/freezers/{id} [put]
func (h *FreezerHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameFreezerRequest
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
// @Summary      Delete freezer (cascades to drawers and storage entries)
// @Tags         freezers
// @Param        id  path  string  true  "Freezer ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/freezers/{id} [delete]
func (h *FreezerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
