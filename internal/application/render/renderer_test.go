package render_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/defaults"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

func siteConfig() *entity.Configuration {
	cfg := defaults.NewConfiguration("user-1", entity.BusinessTypeCafe)
	cfg.Business.Name = "Café Sonnenschein"
	cfg.Business.Slogan = "Der beste Kaffee der Stadt"
	return cfg
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato dual
// ──────────────────────────────────────────────────────────────────────────────

// Ambos modos derivan cada valor visible de los mismos campos: solo Mode y
// Editable pueden diferir entre vista previa y sitio publicado.
func TestRender_PreviewYPublicadoIdenticos(t *testing.T) {
	cfg := siteConfig()

	preview := render.Render(cfg, render.ModePreview)
	published := render.Render(cfg, render.ModePublished)

	assert.True(t, preview.Editable)
	assert.False(t, published.Editable)

	preview.Mode = published.Mode
	preview.Editable = published.Editable
	assert.Equal(t, published, preview,
		"fuera de Mode/Editable, ambos modos deben producir exactamente la misma salida")
}

// Re-renderizar no acumula estado: misma configuración, misma salida.
func TestRender_Idempotente(t *testing.T) {
	cfg := siteConfig()
	first := render.Render(cfg, render.ModePublished)
	second := render.Render(cfg, render.ModePublished)
	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estilos y plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStyles_ConfiguracionSobreShell(t *testing.T) {
	cfg := siteConfig()
	cfg.Design.Template = "modern"
	cfg.Design.PrimaryColor = "#2563EB"

	styles := render.ComputeStyles(cfg)
	assert.Equal(t, "modern", styles.Template.ID)
	assert.Equal(t, "#2563EB", styles.Primary, "el color del usuario gana sobre el shell")
}

// Plantilla desconocida cae al shell por defecto, nunca renderiza en blanco.
func TestComputeStyles_PlantillaDesconocidaCaeADefault(t *testing.T) {
	cfg := siteConfig()
	cfg.Design.Template = "brutalist"

	styles := render.ComputeStyles(cfg)
	assert.Equal(t, render.DefaultTemplateID, styles.Template.ID)
	assert.NotEmpty(t, styles.Background)
}

func TestTemplates_CatalogoCerrado(t *testing.T) {
	ids := render.TemplateIDs()
	assert.Equal(t, []string{"minimalist", "modern", "stylish", "cozy"}, ids)
	for _, id := range ids {
		shell := render.TemplateByID(id)
		assert.Equal(t, id, shell.ID)
		assert.NotEmpty(t, shell.Mockup.Accent, "cada shell lleva su paleta de mockup")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de imágenes
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveImage_ReglaCompartida(t *testing.T) {
	assert.Equal(t, "https://cdn.example/logo.png", render.ResolveImage("https://cdn.example/logo.png"))
	assert.Equal(t, "https://cdn.example/a.png", render.ResolveImage(&entity.ImageRef{URL: "https://cdn.example/a.png"}))

	// Archivo subido aún no persistido: referencia mostrable localmente.
	local := render.ResolveImage(&entity.ImageRef{Data: []byte{0x89, 0x50}, MIME: "image/png"})
	assert.Contains(t, local, "data:image/png;base64,")

	assert.Equal(t, render.PlaceholderImage, render.ResolveImage(nil))
	assert.Equal(t, render.PlaceholderImage, render.ResolveImage(""))
	assert.Equal(t, render.PlaceholderImage, render.ResolveImage(&entity.ImageRef{}))
	assert.Equal(t, render.PlaceholderImage, render.ResolveImage(42))
}

// ──────────────────────────────────────────────────────────────────────────────
// Páginas
// ──────────────────────────────────────────────────────────────────────────────

// home está siempre presente y en primer lugar, aunque no esté en la lista.
func TestRender_HomeSiemprePresente(t *testing.T) {
	cfg := siteConfig()
	cfg.Pages.SelectedPages = []string{"menu", "contact"}

	site := render.Render(cfg, render.ModePublished)
	require.NotEmpty(t, site.Pages)
	assert.Equal(t, "home", site.Pages[0].ID)
	assert.Len(t, site.Pages, 3)
}

func TestRender_PaginasPersonalizadasSinDuplicados(t *testing.T) {
	cfg := siteConfig()
	cfg.Pages.SelectedPages = []string{"home", "menu", "menu"}
	cfg.Pages.CustomPages = []string{"events", "menu"}

	site := render.Render(cfg, render.ModePublished)
	ids := make([]string, 0, len(site.Pages))
	for _, p := range site.Pages {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"home", "menu", "events"}, ids)
	assert.True(t, site.Pages[2].Custom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carta, galería y estados vacíos
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_SeccionesDeCartaPorCategoria(t *testing.T) {
	cfg := siteConfig()

	site := render.Render(cfg, render.ModePublished)
	require.NotEmpty(t, site.MenuSections)
	assert.False(t, site.MenuEmpty)
	// El orden de secciones sigue la lista de categorías configurada.
	assert.Equal(t, "Heißgetränke", site.MenuSections[0].Category)
	assert.Equal(t, "3.90", site.MenuSections[0].Items[0].Price)
}

func TestRender_ItemsNoDisponiblesSeOcultan(t *testing.T) {
	cfg := siteConfig()
	cfg.Content.MenuItems = []entity.MenuItem{
		{ID: "1", Name: "Espresso", Category: "Heißgetränke", Available: true, Price: decimal.NewFromFloat(2.5)},
		{ID: "2", Name: "Ausverkauft", Category: "Heißgetränke", Available: false, Price: decimal.NewFromFloat(5)},
	}

	site := render.Render(cfg, render.ModePublished)
	require.Len(t, site.MenuSections, 1)
	require.Len(t, site.MenuSections[0].Items, 1)
	assert.Equal(t, "Espresso", site.MenuSections[0].Items[0].Name)
}

// Campos opcionales ausentes: estado vacío explícito, nunca crash ni blanco.
func TestRender_EstadosVacios(t *testing.T) {
	cfg := siteConfig()
	cfg.Content.MenuItems = []entity.MenuItem{}
	cfg.Content.Gallery = []entity.GalleryImage{}

	site := render.Render(cfg, render.ModePublished)
	assert.True(t, site.MenuEmpty)
	assert.Empty(t, site.MenuSections)
	assert.True(t, site.Gallery.Empty)
	assert.Equal(t, render.PlaceholderImage, site.Logo, "logo ausente cae al placeholder")
}

// El horario se pinta en orden de semana, no en orden de iteración del mapa.
func TestRender_HorarioEnOrdenSemanal(t *testing.T) {
	cfg := siteConfig()
	site := render.Render(cfg, render.ModePublished)

	require.Len(t, site.OpeningHours, 7)
	assert.Equal(t, "monday", site.OpeningHours[0].Day)
	assert.Equal(t, "sunday", site.OpeningHours[6].Day)
}

// El bloque de reservas solo aparece con el flag activo.
func TestRender_BloqueDeReservasSegunFlag(t *testing.T) {
	cfg := siteConfig() // cafetería: reservas off
	site := render.Render(cfg, render.ModePublished)
	assert.Nil(t, site.Reservation)

	cfg.Features.ReservationsEnabled = true
	cfg.Features.MaxGuests = 12
	site = render.Render(cfg, render.ModePublished)
	require.NotNil(t, site.Reservation)
	assert.Equal(t, 12, site.Reservation.MaxGuests)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sitemap
// ──────────────────────────────────────────────────────────────────────────────

func TestSitemap_UnaEntradaPorPagina(t *testing.T) {
	cfg := siteConfig()
	cfg.Pages.SelectedPages = []string{"home", "menu"}
	cfg.Publishing.PublishedURL = "https://cafe-sonnenschein.sync.app"

	xml, err := render.Sitemap(cfg, time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	s := string(xml)
	assert.Contains(t, s, "<loc>https://cafe-sonnenschein.sync.app</loc>")
	assert.Contains(t, s, "<loc>https://cafe-sonnenschein.sync.app/menu</loc>")
	assert.Contains(t, s, "<lastmod>2025-06-04</lastmod>")
	assert.Contains(t, s, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}

func TestSitemap_SinURLPublicada(t *testing.T) {
	cfg := siteConfig()
	_, err := render.Sitemap(cfg, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotPublishable)
}
