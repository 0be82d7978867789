package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maitr/sitebuilder-api/internal/application/configurator"
	"github.com/maitr/sitebuilder-api/internal/application/dto"
	"github.com/maitr/sitebuilder-api/internal/application/schema"
	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
	"github.com/maitr/sitebuilder-api/internal/domain/repository"
)

// ConfigurationUseCase casos de uso sobre configuraciones de sitio: guardar
// (create-or-update con last-write-wins), consultar, publicar y archivar.
// El repositorio habla la forma plana; aquí se convierte vía el Normalizer
// y se valida vía el Validator antes de persistir.
type ConfigurationUseCase struct {
	repo       repository.ConfigurationRepository
	norm       *configurator.Normalizer
	validator  *schema.Validator
	baseDomain string
	log        zerolog.Logger
	now        func() time.Time
}

// NewConfigurationUseCase construye el caso de uso. baseDomain es el dominio
// bajo el que se publican los subdominios (p.ej. "sync.app").
func NewConfigurationUseCase(
	repo repository.ConfigurationRepository,
	norm *configurator.Normalizer,
	validator *schema.Validator,
	baseDomain string,
	log zerolog.Logger,
) *ConfigurationUseCase {
	return &ConfigurationUseCase{
		repo:       repo,
		norm:       norm,
		validator:  validator,
		baseDomain: baseDomain,
		log:        log,
		now:        time.Now,
	}
}

// Save valida y persiste un snapshot completo de configuración (anidado,
// JSON crudo). Create-or-update: sin ID se crea; con ID se actualiza si el
// dueño coincide y el snapshot no es más viejo que el persistido (LWW por
// updatedAt: guardados duplicados idénticos son seguros, un guardado
// obsoleto se rechaza con ErrStaleSave).
func (uc *ConfigurationUseCase) Save(userID string, raw []byte) (*entity.Configuration, error) {
	if err := uc.validator.ValidateStrictJSON(raw); err != nil {
		return nil, err
	}
	var cfg entity.Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: cuerpo JSON ilegible", domain.ErrInvalidInput)
	}
	cfg.UserID = userID
	if err := uc.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
		cfg.Publishing.CreatedAt = now.Format(time.RFC3339)
	} else {
		existing, err := uc.repo.GetByID(cfg.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			prev := uc.norm.Denormalize(existing)
			if prev.UserID != userID {
				return nil, domain.ErrForbidden
			}
			if newerThan(prev.Publishing.UpdatedAt, cfg.Publishing.UpdatedAt) {
				return nil, domain.ErrStaleSave
			}
			// Lo ya publicado no se des-publica por un guardado normal.
			cfg.Publishing.Status = prev.Publishing.Status
			cfg.Publishing.PublishedURL = prev.Publishing.PublishedURL
			cfg.Publishing.PublishedAt = prev.Publishing.PublishedAt
			cfg.Publishing.CreatedAt = prev.Publishing.CreatedAt
		} else {
			cfg.Publishing.CreatedAt = now.Format(time.RFC3339)
		}
	}
	if cfg.Publishing.Status == "" {
		cfg.Publishing.Status = entity.StatusDraft
	}
	cfg.Publishing.UpdatedAt = now.Format(time.RFC3339)

	if err := uc.repo.Upsert(uc.norm.Normalize(&cfg)); err != nil {
		return nil, err
	}
	uc.log.Info().Str("configuration_id", cfg.ID).Str("user_id", userID).Msg("configuración guardada")
	return &cfg, nil
}

// Get obtiene una configuración por ID, restringida a su dueño.
func (uc *ConfigurationUseCase) Get(userID, id string) (*entity.Configuration, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	cfg := uc.norm.Denormalize(record)
	if cfg.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return cfg, nil
}

// List lista las configuraciones del usuario con paginación.
func (uc *ConfigurationUseCase) List(userID string, page dto.PageRequest) (*dto.ConfigurationListResponse, error) {
	page.DefaultPage()
	records, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]entity.Configuration, 0, len(records))
	for _, r := range records {
		items = append(items, *uc.norm.Denormalize(r))
	}
	return &dto.ConfigurationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Publish pasa una configuración a published y fija su URL. Idempotente:
// publicar dos veces el mismo contenido produce la misma URL y no crea
// recursos duplicados; el sello publishedAt se conserva de la primera vez.
func (uc *ConfigurationUseCase) Publish(userID, id string) (*dto.PublishResponse, error) {
	cfg, err := uc.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if cfg.Business.Name == "" || !entity.IsValidBusinessType(cfg.Business.Type) {
		return nil, fmt.Errorf("%w: faltan nombre o tipo de negocio", domain.ErrNotPublishable)
	}
	if res := uc.validator.ValidateSafe(cfg); !res.Valid {
		return nil, fmt.Errorf("%w: la configuración no pasa el esquema", domain.ErrNotPublishable)
	}

	// Subdominio determinista: slug del nombre + prefijo del ID. El mismo
	// contenido publica siempre en la misma URL.
	subdomain := Slug(cfg.Business.Name) + "-" + shortID(cfg.ID)
	publishedURL := "https://" + subdomain + "." + uc.baseDomain
	if cfg.Business.Domain.HasDomain && cfg.Business.Domain.DomainName != "" {
		publishedURL = "https://" + cfg.Business.Domain.DomainName
	}

	publishedAt := uc.now().UTC()
	if cfg.Publishing.PublishedAt != "" {
		if first, err := time.Parse(time.RFC3339, cfg.Publishing.PublishedAt); err == nil {
			publishedAt = first
		}
	}
	if err := uc.repo.SetPublished(id, subdomain, publishedURL, publishedAt); err != nil {
		return nil, err
	}

	cfg.Publishing.Status = entity.StatusPublished
	cfg.Publishing.PublishedURL = publishedURL
	cfg.Publishing.PublishedAt = publishedAt.Format(time.RFC3339)
	uc.log.Info().Str("configuration_id", id).Str("url", publishedURL).Msg("sitio publicado")
	return &dto.PublishResponse{Configuration: cfg, PublishedURL: publishedURL}, nil
}

// Archive archiva una configuración (el core nunca borra de verdad).
func (uc *ConfigurationUseCase) Archive(userID, id string) error {
	if _, err := uc.Get(userID, id); err != nil {
		return err
	}
	return uc.repo.SetStatus(id, entity.StatusArchived)
}

// PublishedSite resuelve la configuración publicada de un subdominio.
// Solo sitios en estado published son visibles públicamente.
func (uc *ConfigurationUseCase) PublishedSite(subdomain string) (*entity.Configuration, error) {
	record, err := uc.repo.GetPublishedBySubdomain(subdomain)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	cfg := uc.norm.Denormalize(record)
	if cfg.Publishing.Status != entity.StatusPublished {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

// newerThan indica si el sello a (RFC 3339) es estrictamente posterior a b.
// Sellos ausentes o ilegibles nunca son "más nuevos": en la duda, el
// guardado entrante gana.
func newerThan(a, b string) bool {
	ta, err := time.Parse(time.RFC3339, a)
	if err != nil {
		return false
	}
	tb, err := time.Parse(time.RFC3339, b)
	if err != nil {
		return false
	}
	return ta.After(tb)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
