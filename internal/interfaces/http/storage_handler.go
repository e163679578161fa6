package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/application/storage"
)

// StorageHandler handles HTTP requests for storage entries.
type StorageHandler struct {
	uc *storage.UseCase
}

// NewStorageHandler builds the handler.
func NewStorageHandler(uc *storage.UseCase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// Create godoc
// @Summary      Stock an item into a drawer
// @Tags         storage
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStorageRequest  true  "Storage entry; date_in defaults to today"
// @Success      201   {object}  dto.StorageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storage [post]
func (h *StorageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStorageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid request body")
	}
	if in.ProductID == "" || in.DrawerID == "" {
		return badRequest(c, "VALIDATION", "product_id and drawer_id are required")
	}
	out, err := h.uc.StockIn(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List storage entries, oldest stock first
// @Tags         storage
// @Produce      json
// @Param        freezerId      query  string  false  "Restrict to one freezer"
// @Param        drawerId       query  string  false  "Restrict to one drawer"
// @Param        productId      query  string  false  "Restrict to one product"
// @Param        availableOnly  query  bool    false  "Exclude checked-out entries"  default(true)
// @Param        status         query  string  false  "Freshness filter: fresh, expiring_soon or expired"
// @Param        sort           query  string  false  "date_in (default) or expiry"
// @Success      200  {object}  dto.StorageListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/storage [get]
func (h *StorageHandler) List(c *fiber.Ctx) error {
	in, err := parseStorageFilter(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.List(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get storage entry by ID
// @Tags         storage
// @Produce      json
// @Param        id   path  string  true  "Storage entry ID"
// @Success      200  {object}  dto.StorageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storage/{id} [get]
func (h *StorageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "storage entry not found")
	}
	return c.JSON(out)
}

// CheckOut godoc
// @Summary      Check an entry out of storage (one-way, exactly once)
// @Tags         storage
// @Accept       json
// @Produce      json
// @Param        id    path  string               true   "Storage entry ID"
// @Param        body  body  dto.CheckOutRequest  false  "date_out defaults to today"
// @Success      200   {object}  dto.StorageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storage/{id}/checkout [patch]
func (h *StorageHandler) CheckOut(c *fiber.Ctx) error {
	var in dto.CheckOutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "invalid request body")
		}
	}
	out, err := h.uc.CheckOut(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Aggregate godoc
// @Summary      Per-product totals over the available stock
// @Tags         storage
// @Produce      json
// @Param        freezerId  query  string  false  "Restrict to one freezer"
// @Param        drawerId   query  string  false  "Restrict to one drawer"
// @Param        productId  query  string  false  "Restrict to one product"
// @Param        status     query  string  false  "Freshness filter"
// @Success      200  {object}  dto.AggregateListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/storage/aggregate [get]
func (h *StorageHandler) Aggregate(c *fiber.Ctx) error {
	in, err := parseStorageFilter(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.AggregateByProduct(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete storage entry (correction, not consumption)
// @Tags         storage
// @Param        id  path  string  true  "Storage entry ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storage/{id} [delete]
func (h *StorageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseStorageFilter(c *fiber.Ctx) (dto.StorageFilterRequest, error) {
	in := dto.StorageFilterRequest{
		FreezerID: c.Query("freezerId"),
		DrawerID:  c.Query("drawerId"),
		ProductID: c.Query("productId"),
		Status:    c.Query("status"),
		Sort:      c.Query("sort"),
	}
	if raw := c.Query("availableOnly"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return in, fmt.Errorf("availableOnly must be a boolean, got %q", raw)
		}
		in.AvailableOnly = &available
	}
	return in, nil
}
