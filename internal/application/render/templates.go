// Package render es la capa de presentación dual: el mismo agregado de
// configuración alimenta la vista previa del editor y el sitio publicado,
// a través de una única función de cómputo de estilos.
package render

// TemplateShell una plantilla visual del catálogo cerrado y versionado.
// Palette son los colores base del shell; Mockup solo se usa en el selector
// de plantillas del asistente, nunca en el sitio renderizado.
type TemplateShell struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Layout     string `json:"layout"`
	Navigation string `json:"navigation"`
	Typography string `json:"typography"`

	Background string `json:"background"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Secondary  string `json:"secondary"`

	Mockup MockupPalette `json:"mockup"`
}

// MockupPalette colores de la miniatura del selector de plantillas.
type MockupPalette struct {
	Header string `json:"header"`
	Body   string `json:"body"`
	Accent string `json:"accent"`
}

// DefaultTemplateID plantilla de respaldo cuando el ID configurado no
// existe en el catálogo: nunca se renderiza en blanco.
const DefaultTemplateID = "minimalist"

var templateCatalog = []TemplateShell{
	{
		ID:         "minimalist",
		Name:       "Minimalistisch",
		Layout:     "single-column",
		Navigation: "top-bar",
		Typography: "sans-serif",
		Background: "#FFFFFF",
		Accent:     "#111827",
		Text:       "#1F2937",
		Secondary:  "#6B7280",
		Mockup:     MockupPalette{Header: "#F9FAFB", Body: "#FFFFFF", Accent: "#111827"},
	},
	{
		ID:         "modern",
		Name:       "Modern",
		Layout:     "split-hero",
		Navigation: "sticky-top",
		Typography: "sans-serif",
		Background: "#0F172A",
		Accent:     "#38BDF8",
		Text:       "#F1F5F9",
		Secondary:  "#94A3B8",
		Mockup:     MockupPalette{Header: "#0F172A", Body: "#1E293B", Accent: "#38BDF8"},
	},
	{
		ID:         "stylish",
		Name:       "Stilvoll",
		Layout:     "magazine",
		Navigation: "centered",
		Typography: "serif",
		Background: "#FAF7F2",
		Accent:     "#B45309",
		Text:       "#292524",
		Secondary:  "#A8A29E",
		Mockup:     MockupPalette{Header: "#FAF7F2", Body: "#FFFFFF", Accent: "#B45309"},
	},
	{
		ID:         "cozy",
		Name:       "Gemütlich",
		Layout:     "card-grid",
		Navigation: "hamburger",
		Typography: "rounded",
		Background: "#FFF7ED",
		Accent:     "#C2410C",
		Text:       "#431407",
		Secondary:  "#FDBA74",
		Mockup:     MockupPalette{Header: "#FFEDD5", Body: "#FFF7ED", Accent: "#C2410C"},
	},
}

// Templates devuelve el catálogo completo, en orden estable.
func Templates() []TemplateShell {
	return append([]TemplateShell(nil), templateCatalog...)
}

// TemplateIDs devuelve los IDs registrados (alimenta el enum del Validator).
func TemplateIDs() []string {
	ids := make([]string, 0, len(templateCatalog))
	for _, t := range templateCatalog {
		ids = append(ids, t.ID)
	}
	return ids
}

// TemplateByID resuelve un shell; un ID desconocido cae a la plantilla por
// defecto en lugar de renderizar en blanco.
func TemplateByID(id string) TemplateShell {
	for _, t := range templateCatalog {
		if t.ID == id {
			return t
		}
	}
	return TemplateByID(DefaultTemplateID)
}
