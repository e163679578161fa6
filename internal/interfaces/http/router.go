package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frostkeep/freezer-api/internal/application/storage"
	"github.com/frostkeep/freezer-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AppName   string
	FreezerUC *usecase.FreezerUseCase
	DrawerUC  *usecase.DrawerUseCase
	ProductUC *usecase.ProductUseCase
	StorageUC *storage.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	rootHandler := NewRootHandler(deps.AppName)
	api.Get("/info", rootHandler.Info)
	api.Get("/authors", rootHandler.Authors)
	api.Get("/version", rootHandler.Version)

	freezers := api.Group("/freezers")
	freezerHandler := NewFreezerHandler(deps.FreezerUC)
	freezers.Post("/", freezerHandler.Create)
	freezers.Get("/", freezerHandler.List)
	freezers.Get("/:id", freezerHandler.GetByID)
	freezers.Put("/:id", freezerHandler.Rename)
	freezers.Delete("/:id", freezerHandler.Delete)

	drawers := api.Group("/drawers")
	drawerHandler := NewDrawerHandler(deps.DrawerUC)
	drawers.Post("/", drawerHandler.Create)
	drawers.Get("/", drawerHandler.List)
	drawers.Get("/:id", drawerHandler.GetByID)
	drawers.Put("/:id", drawerHandler.Rename)
	drawers.Delete("/:id", drawerHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Rename)
	products.Delete("/:id", productHandler.Delete)

	storageGroup := api.Group("/storage")
	storageHandler := NewStorageHandler(deps.StorageUC)
	storageGroup.Post("/", storageHandler.Create)
	storageGroup.Get("/", storageHandler.List)
	// Registered before /:id so "aggregate" is not captured as an entry ID.
	storageGroup.Get("/aggregate", storageHandler.Aggregate)
	storageGroup.Get("/:id", storageHandler.GetByID)
	storageGroup.Patch("/:id/checkout", storageHandler.CheckOut)
	storageGroup.Delete("/:id", storageHandler.Delete)
}
