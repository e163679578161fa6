package http

import "github.com/gofiber/fiber/v2"

// Build metadata, overridable at link time with -ldflags.
var (
	appVersion = "0.1.0"
	appAuthors = "frostkeep maintainers"
)

// RootHandler serves the API metadata endpoints.
type RootHandler struct {
	appName string
}

// NewRootHandler builds the handler.
func NewRootHandler(appName string) *RootHandler {
	return &RootHandler{appName: appName}
}

// Info godoc
// @Summary      API welcome string
// @Tags         root
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/info [get]
func (h *RootHandler) Info(c *fiber.Ctx) error {
	return c.SendString("Welcome to " + h.appName + " v" + appVersion)
}

// Authors godoc
// @Summary      API authors
// @Tags         root
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/authors [get]
func (h *RootHandler) Authors(c *fiber.Ctx) error {
	if appAuthors == "" {
		return c.SendString("No authors defined")
	}
	return c.SendString(appAuthors)
}

// Version godoc
// @Summary      API version
// @Tags         root
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/version [get]
func (h *RootHandler) Version(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": appVersion})
}
