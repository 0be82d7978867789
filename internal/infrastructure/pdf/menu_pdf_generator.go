// Package pdf implementa la carta imprimible (Speisekarte) de un negocio
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + eslogan  │  Ubicación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA (ej. Heißgetränke)                                │
//	│    Ítem + descripción ............................ precio    │
//	│  CATEGORÍA siguiente …                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: horarios + contacto + QR del sitio publicado        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// Asegura que MarotoMenuGenerator implementa render.MenuPDFGenerator.
var _ render.MenuPDFGenerator = (*MarotoMenuGenerator)(nil)

var (
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight = &props.Color{Red: 150, Green: 150, Blue: 150}
)

// MarotoMenuGenerator implementa render.MenuPDFGenerator usando Maroto v2.
type MarotoMenuGenerator struct{}

// NewMarotoMenuGenerator construye el generador.
func NewMarotoMenuGenerator() *MarotoMenuGenerator { return &MarotoMenuGenerator{} }

// GenerateMenuPDF genera la carta en PDF y devuelve sus bytes.
func (g *MarotoMenuGenerator) GenerateMenuPDF(_ context.Context, cfg *entity.Configuration) ([]byte, error) {
	accent := parseHex(cfg.Design.PrimaryColor)

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Speisekarte "+cfg.Business.Name, true).
		WithAuthor(cfg.Business.Name, true).
		Build()

	m := maroto.New(builder)

	m.AddRows(headerRow(cfg, accent))
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.5}))

	for _, section := range menuSections(cfg) {
		m.AddRows(categoryRow(section.name, accent))
		for _, item := range section.items {
			m.AddRows(itemRow(item))
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(cfg, accent) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + eslogan (izq) y tipo de negocio + ubicación (der).
func headerRow(cfg *entity.Configuration, accent *props.Color) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(cfg.Business.Name, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: accent, Top: 1,
			}),
			text.New(nonEmpty(cfg.Business.Slogan, "Speisekarte"), props.Text{
				Size: 9, Top: 11, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(businessTypeLabel(cfg.Business.Type), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: accent, Top: 2,
			}),
			text.New(cfg.Business.Location, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// categoryRow: título de una categoría de la carta.
func categoryRow(name string, accent *props.Color) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: accent, Top: 3,
		}),
	))
}

// itemRow: nombre + descripción (izq) y precio (der).
func itemRow(item entity.MenuItem) core.Row {
	height := 7.0
	if item.Description != "" {
		height = 11
	}
	name := item.Name
	if item.IsHighlight {
		name = "★ " + name
	}
	cols := []core.Component{
		text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
	}
	if item.Description != "" {
		cols = append(cols, text.New(item.Description, props.Text{
			Size: 7.5, Top: 6, Color: colorLight,
		}))
	}
	return row.New(height).Add(
		col.New(9).Add(cols...),
		col.New(3).Add(text.New(formatPrice(item), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// footerRows: horarios + contacto + QR del sitio publicado.
func footerRows(cfg *entity.Configuration, accent *props.Color) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ÖFFNUNGSZEITEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
			}),
		)),
	}

	for _, chunk := range splitEvery(hoursLine(cfg.Content.OpeningHours), 110) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 7, Color: colorGray, Top: 0.5}),
		)))
	}

	contact := contactLine(cfg)
	if contact != "" {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New(contact, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	if cfg.Publishing.PublishedURL != "" {
		rows = append(rows, row.New(32).Add(
			col.New(3).Add(code.NewQr(cfg.Publishing.PublishedURL, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Scannen Sie den QR-Code für die\naktuelle Karte und Reservierungen.", props.Text{
					Size: 8, Top: 6, Left: 3, Color: colorGray,
				}),
				text.New(cfg.Publishing.PublishedURL, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 18, Left: 3, Color: accent,
				}),
			),
		))
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Alle Preise in Euro inkl. MwSt.", props.Text{
			Size: 6.5, Color: colorLight, Top: 2,
		}),
	)))

	return rows
}

// ── agrupación de la carta ────────────────────────────────────────────────────

type menuSection struct {
	name  string
	items []entity.MenuItem
}

// menuSections agrupa los ítems disponibles por categoría, en el orden
// configurado; categorías no listadas van al final en orden alfabético.
func menuSections(cfg *entity.Configuration) []menuSection {
	grouped := make(map[string][]entity.MenuItem)
	for _, item := range cfg.Content.MenuItems {
		if !item.Available {
			continue
		}
		cat := nonEmpty(item.Category, "Weitere")
		grouped[cat] = append(grouped[cat], item)
	}

	var order []string
	seen := make(map[string]bool)
	for _, cat := range cfg.Content.Categories {
		if len(grouped[cat]) > 0 && !seen[cat] {
			order = append(order, cat)
			seen[cat] = true
		}
	}
	var rest []string
	for cat := range grouped {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	sections := make([]menuSection, 0, len(order))
	for _, cat := range order {
		sections = append(sections, menuSection{name: cat, items: grouped[cat]})
	}
	return sections
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatPrice formatea en estilo alemán: "3,90 €".
func formatPrice(item entity.MenuItem) string {
	return strings.Replace(item.Price.StringFixed(2), ".", ",", 1) + " €"
}

func hoursLine(hours entity.OpeningHours) string {
	labels := map[string]string{
		"monday": "Mo", "tuesday": "Di", "wednesday": "Mi", "thursday": "Do",
		"friday": "Fr", "saturday": "Sa", "sunday": "So",
	}
	parts := make([]string, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		h, ok := hours[day]
		if !ok {
			continue
		}
		if h.Closed {
			parts = append(parts, labels[day]+" geschlossen")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s–%s", labels[day], h.Open, h.Close))
	}
	return strings.Join(parts, "   ")
}

func contactLine(cfg *entity.Configuration) string {
	var parts []string
	if cfg.Contact.Phone != "" {
		parts = append(parts, "Tel: "+cfg.Contact.Phone)
	}
	if cfg.Contact.Email != "" {
		parts = append(parts, cfg.Contact.Email)
	}
	if cfg.Contact.Address != "" {
		parts = append(parts, cfg.Contact.Address)
	}
	return strings.Join(parts, "   |   ")
}

func businessTypeLabel(bt string) string {
	switch bt {
	case entity.BusinessTypeCafe:
		return "CAFÉ"
	case entity.BusinessTypeBar:
		return "BAR"
	default:
		return "RESTAURANT"
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseHex convierte "#RRGGBB" a color de Maroto; inválido cae al azul por defecto.
func parseHex(hex string) *props.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return &props.Color{Red: 37, Green: 99, Blue: 235}
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return &props.Color{Red: 37, Green: 99, Blue: 235}
	}
	return &props.Color{Red: r, Green: g, Blue: b}
}

// splitEvery divide s en trozos de max n caracteres, sin partir runas
// (el texto alemán trae umlauts multibyte).
func splitEvery(s string, n int) []string {
	var parts []string
	runes := []rune(s)
	for len(runes) > n {
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
