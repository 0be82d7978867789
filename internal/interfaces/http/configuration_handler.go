package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maitr/sitebuilder-api/internal/application/dto"
	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/application/schema"
	"github.com/maitr/sitebuilder-api/internal/application/usecase"
	"github.com/maitr/sitebuilder-api/internal/domain"
)

// ConfigurationHandler maneja las peticiones HTTP para las configuraciones
// de sitio (protegido).
type ConfigurationHandler struct {
	uc     *usecase.ConfigurationUseCase
	pdfGen render.MenuPDFGenerator
}

// NewConfigurationHandler construye el handler.
func NewConfigurationHandler(uc *usecase.ConfigurationUseCase, pdfGen render.MenuPDFGenerator) *ConfigurationHandler {
	return &ConfigurationHandler{uc: uc, pdfGen: pdfGen}
}

// Save godoc
// @Summary      Guardar configuración del sitio (crea o actualiza)
// @Tags         configurations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Configuración completa"
// @Success      200   {object}  dto.SaveConfigurationResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/configurations [post]
func (h *ConfigurationHandler) Save(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	out, err := h.uc.Save(userID, c.Body())
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(dto.SaveConfigurationResponse{Configuration: out, Message: "configuración guardada"})
}

// List godoc
// @Summary      Listar configuraciones del usuario
// @Tags         configurations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ConfigurationListResponse
// @Router       /api/configurations [get]
func (h *ConfigurationHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.List(userID, page)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener configuración por ID
// @Tags         configurations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la configuración"
// @Success      200  {object}  entity.Configuration
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configurations/{id} [get]
func (h *ConfigurationHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(userID, id)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// Publish godoc
// @Summary      Publicar el sitio de una configuración
// @Tags         configurations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la configuración"
// @Success      200  {object}  dto.PublishResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/configurations/{id}/publish [post]
func (h *ConfigurationHandler) Publish(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Publish(userID, id)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar una configuración (el sitio deja de servirse)
// @Tags         configurations
// @Security     Bearer
// @Param        id   path  string  true  "ID de la configuración"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configurations/{id} [delete]
func (h *ConfigurationHandler) Archive(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Archive(userID, id); err != nil {
		return errorToResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MenuPDF godoc
// @Summary      Descargar la carta imprimible en PDF
// @Tags         configurations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la configuración"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configurations/{id}/menu.pdf [get]
func (h *ConfigurationHandler) MenuPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	cfg, err := h.uc.Get(userID, id)
	if err != nil {
		return errorToResponse(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateMenuPDF(c.Context(), cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="speisekarte.pdf"`)
	return c.Send(pdfBytes)
}

// errorToResponse traduce errores de dominio y de validación a HTTP.
func errorToResponse(c *fiber.Ctx, err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: "la configuración no cumple el esquema",
			Fields:  verr.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la configuración pertenece a otro usuario"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no encontrada"})
	case errors.Is(err, domain.ErrStaleSave):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STALE_SAVE", Message: "hay una versión más reciente guardada"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotPublishable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_PUBLISHABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
