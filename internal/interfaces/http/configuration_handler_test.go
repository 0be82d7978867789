package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitr/sitebuilder-api/internal/application/configurator"
	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/application/schema"
	"github.com/maitr/sitebuilder-api/internal/application/usecase"
	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/defaults"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
	infrapdf "github.com/maitr/sitebuilder-api/internal/infrastructure/pdf"
	apphttp "github.com/maitr/sitebuilder-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memRepo repositorio en memoria para probar los handlers de punta a punta.
type memRepo struct {
	records    map[string]map[string]any
	subdomains map[string]string // subdomain -> id
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[string]map[string]any{}, subdomains: map[string]string{}}
}

func (r *memRepo) Upsert(record map[string]any) error {
	id, _ := record["id"].(string)
	r.records[id] = record
	return nil
}

func (r *memRepo) GetByID(id string) (map[string]any, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (r *memRepo) ListByUser(userID string, limit, offset int) ([]map[string]any, error) {
	var out []map[string]any
	for _, rec := range r.records {
		if uid, _ := rec["userId"].(string); uid == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRepo) GetPublishedBySubdomain(subdomain string) (map[string]any, error) {
	id, ok := r.subdomains[subdomain]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *memRepo) SetPublished(id, subdomain, publishedURL string, publishedAt time.Time) error {
	rec, ok := r.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec["status"] = entity.StatusPublished
	rec["publishedUrl"] = publishedURL
	rec["publishedAt"] = publishedAt.Format(time.RFC3339)
	r.subdomains[subdomain] = id
	return nil
}

func (r *memRepo) SetStatus(id, status string) error {
	rec, ok := r.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec["status"] = status
	return nil
}

// buildAPI construye la app Fiber completa (router real, repo en memoria).
func buildAPI(repo *memRepo) *fiber.App {
	uc := usecase.NewConfigurationUseCase(
		repo,
		configurator.NewNormalizer(zerolog.Nop()),
		schema.New(render.TemplateIDs()),
		"sync.app",
		zerolog.Nop(),
	)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ConfigurationUC: uc,
		MenuPDF:         infrapdf.NewMarotoMenuGenerator(),
		JWTSecret:       testJWTSecret,
	})
	return app
}

func configBody(t *testing.T, mutate func(cfg *entity.Configuration)) []byte {
	t.Helper()
	cfg := defaults.NewConfiguration("", entity.BusinessTypeCafe)
	cfg.Business.Name = "Café Sonnenschein"
	if mutate != nil {
		mutate(cfg)
	}
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	return raw
}

func apiRequest(t *testing.T, app *fiber.App, method, path string, body []byte, withAuth bool) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		req.Header.Set("Authorization", testToken(t))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de configuraciones
// ──────────────────────────────────────────────────────────────────────────────

// Guardar una configuración válida responde 200 con la entidad persistida.
func TestConfigurations_GuardarValida(t *testing.T) {
	repo := newMemRepo()
	app := buildAPI(repo)

	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", configBody(t, nil), true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	decodeJSON(t, resp, &body)
	assert.NotEmpty(t, body.Configuration.ID)
	assert.Equal(t, "Café Sonnenschein", body.Configuration.Business.Name)
	assert.Equal(t, testUserID, body.Configuration.UserID)
	require.Len(t, repo.records, 1)
}

// Un color inválido responde 400 con el detalle por campo.
func TestConfigurations_ColorInvalido_400(t *testing.T) {
	app := buildAPI(newMemRepo())

	body := configBody(t, func(cfg *entity.Configuration) {
		cfg.Design.PrimaryColor = "azul"
	})
	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", body, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	assert.Contains(t, buf.String(), "VALIDATION")
	assert.Contains(t, buf.String(), "design.primaryColor")
}

// Sin token responde 401.
func TestConfigurations_SinToken_401(t *testing.T) {
	app := buildAPI(newMemRepo())
	resp := apiRequest(t, app, http.MethodGet, "/api/configurations/", nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Publicar y luego consultar el sitio por subdominio.
func TestConfigurations_PublishYServirSitio(t *testing.T) {
	repo := newMemRepo()
	app := buildAPI(repo)

	var saved struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", configBody(t, nil), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &saved)

	resp = apiRequest(t, app, http.MethodPost, "/api/configurations/"+saved.Configuration.ID+"/publish", nil, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var published struct {
		PublishedURL string `json:"publishedUrl"`
	}
	decodeJSON(t, resp, &published)
	require.NotEmpty(t, published.PublishedURL)
	assert.True(t, strings.HasSuffix(published.PublishedURL, ".sync.app"),
		"la URL publicada debe colgar del dominio base: %s", published.PublishedURL)
	assert.Contains(t, published.PublishedURL, "cafe-sonnenschein-")

	// El sitio publicado se sirve por subdominio (público, sin token)
	subdomain := strings.TrimSuffix(strings.TrimPrefix(published.PublishedURL, "https://"), ".sync.app")
	resp = apiRequest(t, app, http.MethodGet, "/api/sites/"+subdomain, nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var site render.Site
	decodeJSON(t, resp, &site)
	assert.Equal(t, "Café Sonnenschein", site.Name)
	assert.Equal(t, render.ModePublished, site.Mode)
}

// Un borrador no se sirve como sitio.
func TestSites_BorradorNoVisible_404(t *testing.T) {
	app := buildAPI(newMemRepo())
	resp := apiRequest(t, app, http.MethodGet, "/api/sites/cafe-borrador-abc", nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// La carta contextual acepta hora y comensales por query.
func TestSites_MenuContextual(t *testing.T) {
	repo := newMemRepo()
	app := buildAPI(repo)

	var saved struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", configBody(t, nil), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &saved)

	resp = apiRequest(t, app, http.MethodPost, "/api/configurations/"+saved.Configuration.ID+"/publish", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var published struct {
		PublishedURL string `json:"publishedUrl"`
	}
	decodeJSON(t, resp, &published)
	subdomain := strings.TrimSuffix(strings.TrimPrefix(published.PublishedURL, "https://"), ".sync.app")

	resp = apiRequest(t, app, http.MethodGet, "/api/sites/"+subdomain+"/menu?hour=9&guests=2", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Items []entity.MenuItem `json:"items"`
	}
	decodeJSON(t, resp, &result)
	assert.NotEmpty(t, result.Items, "la carta por defecto del café debe tener ítems visibles")
}

// El sitemap del sitio publicado es XML con las páginas seleccionadas.
func TestSites_Sitemap(t *testing.T) {
	repo := newMemRepo()
	app := buildAPI(repo)

	var saved struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", configBody(t, nil), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &saved)

	resp = apiRequest(t, app, http.MethodPost, "/api/configurations/"+saved.Configuration.ID+"/publish", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var published struct {
		PublishedURL string `json:"publishedUrl"`
	}
	decodeJSON(t, resp, &published)
	subdomain := strings.TrimSuffix(strings.TrimPrefix(published.PublishedURL, "https://"), ".sync.app")

	resp = apiRequest(t, app, http.MethodGet, "/api/sites/"+subdomain+"/sitemap.xml", nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "xml")

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	assert.Contains(t, buf.String(), "<urlset")
	assert.Contains(t, buf.String(), published.PublishedURL)
}

// La carta en PDF responde application/pdf con contenido.
func TestConfigurations_MenuPDF(t *testing.T) {
	repo := newMemRepo()
	app := buildAPI(repo)

	var saved struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", configBody(t, nil), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &saved)

	resp = apiRequest(t, app, http.MethodGet, "/api/configurations/"+saved.Configuration.ID+"/menu.pdf", nil, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// Archivar responde 204 y el sitio deja de servirse.
func TestConfigurations_Archive(t *testing.T) {
	repo := newMemRepo()
	app := buildAPI(repo)

	var saved struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	resp := apiRequest(t, app, http.MethodPost, "/api/configurations/", configBody(t, nil), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &saved)

	resp = apiRequest(t, app, http.MethodPost, "/api/configurations/"+saved.Configuration.ID+"/publish", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var published struct {
		PublishedURL string `json:"publishedUrl"`
	}
	decodeJSON(t, resp, &published)
	subdomain := strings.TrimSuffix(strings.TrimPrefix(published.PublishedURL, "https://"), ".sync.app")

	resp = apiRequest(t, app, http.MethodDelete, "/api/configurations/"+saved.Configuration.ID, nil, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = apiRequest(t, app, http.MethodGet, "/api/sites/"+subdomain, nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Configuración inexistente responde 404.
func TestConfigurations_NoExiste_404(t *testing.T) {
	app := buildAPI(newMemRepo())
	resp := apiRequest(t, app, http.MethodGet, "/api/configurations/no-such-id", nil, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
