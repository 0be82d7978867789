package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/application/usecase"
	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
	"github.com/maitr/sitebuilder-api/internal/domain/liquid"
)

// SiteHandler sirve los sitios publicados (público, sin auth).
type SiteHandler struct {
	uc  *usecase.ConfigurationUseCase
	now func() time.Time
}

// NewSiteHandler construye el handler público de sitios.
func NewSiteHandler(uc *usecase.ConfigurationUseCase) *SiteHandler {
	return &SiteHandler{uc: uc, now: time.Now}
}

// Site godoc
// @Summary      Vista renderizada de un sitio publicado
// @Tags         sites
// @Produce      json
// @Param        subdomain  path  string  true  "Subdominio del sitio"
// @Success      200  {object}  render.Site
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{subdomain} [get]
func (h *SiteHandler) Site(c *fiber.Ctx) error {
	cfg, err := h.resolve(c)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(render.Render(cfg, render.ModePublished))
}

// Menu godoc
// @Summary      Carta contextual de un sitio publicado
// @Description  Evalúa la carta líquida para el contexto dado. Sin parámetros
// @Description  usa la hora y el día actuales del servidor.
// @Tags         sites
// @Produce      json
// @Param        subdomain  path   string  true   "Subdominio del sitio"
// @Param        hour       query  int     false  "Hora 0-23"
// @Param        day        query  int     false  "Día 0=domingo..6=sábado"
// @Param        guests     query  int     false  "Número de comensales"
// @Param        occasion   query  string  false  "Ocasión especial (ej. date-night)"
// @Success      200  {object}  liquid.Result
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{subdomain}/menu [get]
func (h *SiteHandler) Menu(c *fiber.Ctx) error {
	cfg, err := h.resolve(c)
	if err != nil {
		return errorToResponse(c, err)
	}

	ctx := liquid.NewContext(h.now())
	if hour := c.QueryInt("hour", -1); hour >= 0 && hour <= 23 {
		ctx.CurrentHour = hour
	}
	if day := c.QueryInt("day", -1); day >= 0 && day <= 6 {
		ctx.DayOfWeek = day
	}
	if guests := c.QueryInt("guests", -1); guests >= 0 {
		ctx.Guests = &guests
	}
	ctx.SpecialOccasion = c.Query("occasion")

	return c.JSON(render.RenderMenu(cfg, ctx))
}

// Sitemap godoc
// @Summary      sitemap.xml de un sitio publicado
// @Tags         sites
// @Produce      xml
// @Param        subdomain  path  string  true  "Subdominio del sitio"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{subdomain}/sitemap.xml [get]
func (h *SiteHandler) Sitemap(c *fiber.Ctx) error {
	cfg, err := h.resolve(c)
	if err != nil {
		return errorToResponse(c, err)
	}
	lastMod := h.now()
	if t, err := time.Parse(time.RFC3339, cfg.Publishing.PublishedAt); err == nil {
		lastMod = t
	}
	xml, err := render.Sitemap(cfg, lastMod)
	if err != nil {
		return errorToResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(xml)
}

// resolve busca la configuración publicada del subdominio de la ruta.
func (h *SiteHandler) resolve(c *fiber.Ctx) (*entity.Configuration, error) {
	subdomain := c.Params("subdomain")
	if subdomain == "" {
		return nil, fmt.Errorf("%w: subdominio requerido", domain.ErrInvalidInput)
	}
	return h.uc.PublishedSite(subdomain)
}
