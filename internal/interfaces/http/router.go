package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConfigurationUC *usecase.ConfigurationUseCase
	MenuPDF         render.MenuPDFGenerator
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sitios publicados (público, sin auth)
	sites := api.Group("/sites")
	siteHandler := NewSiteHandler(deps.ConfigurationUC)
	sites.Get("/:subdomain", siteHandler.Site)
	sites.Get("/:subdomain/menu", siteHandler.Menu)
	sites.Get("/:subdomain/sitemap.xml", siteHandler.Sitemap)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Configuraciones del configurador (protegido)
	configurations := protected.Group("/configurations")
	configurationHandler := NewConfigurationHandler(deps.ConfigurationUC, deps.MenuPDF)
	configurations.Post("/", configurationHandler.Save)
	configurations.Get("/", configurationHandler.List)
	configurations.Get("/:id", configurationHandler.GetByID)
	configurations.Post("/:id/publish", configurationHandler.Publish)
	configurations.Delete("/:id", configurationHandler.Archive)
	configurations.Get("/:id/menu.pdf", configurationHandler.MenuPDF)
}
