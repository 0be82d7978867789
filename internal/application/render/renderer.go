package render

import (
	"encoding/base64"
	"sort"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
	"github.com/maitr/sitebuilder-api/internal/domain/liquid"
)

// Mode modos de renderizado. Ambos derivan cada valor visible de los mismos
// campos de la configuración vía el mismo cómputo de estilos: lo que se
// configura es exactamente lo que se publica.
type Mode string

const (
	ModePreview   Mode = "preview"
	ModePublished Mode = "published"
)

// PlaceholderImage recurso de respaldo para referencias de imagen no
// resolubles.
const PlaceholderImage = "/placeholder.svg"

// Styles es el resultado del cómputo de estilos: todos los valores visuales
// ya resueltos (configuración del usuario sobre el shell de la plantilla).
// El cómputo es puro e idempotente: misma configuración, mismos estilos.
type Styles struct {
	Template   TemplateShell `json:"template"`
	Primary    string        `json:"primary"`
	Secondary  string        `json:"secondary"`
	Background string        `json:"background"`
	Font       string        `json:"font"`
	Price      string        `json:"price"`
	FontFamily string        `json:"fontFamily"`
	FontSize   string        `json:"fontSize"`

	HeaderFont       string `json:"headerFont"`
	HeaderFontSize   string `json:"headerFontSize"`
	HeaderBackground string `json:"headerBackground"`

	BackgroundType  string `json:"backgroundType"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// MenuItemView un ítem de carta listo para pintar.
type MenuItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Emoji       string `json:"emoji,omitempty"`
	Category    string `json:"category,omitempty"`
	IsHighlight bool   `json:"isHighlight,omitempty"`
}

// MenuSection ítems agrupados por categoría, en el orden de la lista de
// categorías configurada.
type MenuSection struct {
	Category string         `json:"category"`
	Items    []MenuItemView `json:"items"`
}

// DayHoursView horario de un día, con el nombre del día ya resuelto.
type DayHoursView struct {
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// GalleryView galería con su estado vacío explícito.
type GalleryView struct {
	Images []GalleryImageView `json:"images"`
	Empty  bool               `json:"empty"`
}

type GalleryImageView struct {
	ID    string `json:"id"`
	Src   string `json:"src"`
	Title string `json:"title,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// PageView una página navegable del sitio.
type PageView struct {
	ID     string `json:"id"`
	Custom bool   `json:"custom,omitempty"`
}

// ReservationView el bloque de reservas, solo presente si el flag está activo.
type ReservationView struct {
	MaxGuests   int      `json:"maxGuests"`
	TimeSlots   []string `json:"timeSlots"`
	ButtonColor string   `json:"buttonColor"`
	ButtonText  string   `json:"buttonTextColor"`
	ButtonShape string   `json:"buttonShape"`
}

// Site es el modelo de vista completo que consumen ambos modos. Campos
// opcionales ausentes producen estados vacíos explícitos, nunca regiones en
// blanco ni pánico.
type Site struct {
	Mode     Mode   `json:"mode"`
	Editable bool   `json:"editable"`
	Name     string `json:"name"`
	Slogan   string `json:"slogan,omitempty"`
	About    string `json:"about,omitempty"`
	Location string `json:"location,omitempty"`
	Logo     string `json:"logo"`

	Styles Styles     `json:"styles"`
	Pages  []PageView `json:"pages"`

	MenuSections []MenuSection  `json:"menuSections"`
	MenuEmpty    bool           `json:"menuEmpty"`
	Gallery      GalleryView    `json:"gallery"`
	OpeningHours []DayHoursView `json:"openingHours"`

	Reservation *ReservationView `json:"reservation,omitempty"`

	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	Address     string            `json:"address,omitempty"`
	SocialMedia map[string]string `json:"socialMedia,omitempty"`

	OfferBanner *entity.OfferBanner `json:"offerBanner,omitempty"`

	PublishedURL string `json:"publishedUrl,omitempty"`
	PreviewURL   string `json:"previewUrl,omitempty"`
}

// Render produce el modelo de vista del sitio para el modo pedido. Entre
// modos solo difieren Mode y Editable: todo valor visible sale del mismo
// cómputo sobre la misma configuración.
func Render(cfg *entity.Configuration, mode Mode) *Site {
	site := &Site{
		Mode:     mode,
		Editable: mode == ModePreview,
		Name:     cfg.Business.Name,
		Slogan:   cfg.Business.Slogan,
		About:    cfg.Business.UniqueDescription,
		Location: cfg.Business.Location,
		Logo:     ResolveImage(cfg.Business.Logo),

		Styles: ComputeStyles(cfg),
		Pages:  visiblePages(cfg),

		MenuSections: menuSections(cfg),
		Gallery:      galleryView(cfg),
		OpeningHours: hoursView(cfg),

		Phone:       cfg.Contact.Phone,
		Email:       cfg.Contact.Email,
		Address:     cfg.Contact.Address,
		SocialMedia: cfg.Contact.SocialMedia,

		PublishedURL: cfg.Publishing.PublishedURL,
		PreviewURL:   cfg.Publishing.PreviewURL,
	}
	site.MenuEmpty = len(site.MenuSections) == 0

	if cfg.Features.ReservationsEnabled {
		slots := cfg.Features.TimeSlots
		if slots == nil {
			slots = []string{}
		}
		site.Reservation = &ReservationView{
			MaxGuests:   cfg.Features.MaxGuests,
			TimeSlots:   slots,
			ButtonColor: cfg.Features.ReservationButtonColor,
			ButtonText:  cfg.Features.ReservationButtonTextColor,
			ButtonShape: cfg.Features.ReservationButtonShape,
		}
	}
	if cfg.Payments.OfferBanner.Enabled {
		banner := cfg.Payments.OfferBanner
		site.OfferBanner = &banner
	}
	return site
}

// RenderMenu aplica el motor de carta líquida y devuelve la vista de carta
// contextual: los ítems visibles ya ordenados más la sugerencia horaria.
func RenderMenu(cfg *entity.Configuration, ctx liquid.Context) liquid.Result {
	return liquid.Evaluate(cfg.Content.MenuItems, ctx)
}

// ComputeStyles resuelve los estilos finales: los valores configurados por
// el usuario tienen prioridad; el shell de la plantilla aporta descriptores
// de layout y respaldo de paleta. ID de plantilla desconocido cae al shell
// por defecto.
func ComputeStyles(cfg *entity.Configuration) Styles {
	shell := TemplateByID(cfg.Design.Template)
	return Styles{
		Template:         shell,
		Primary:          firstNonEmpty(cfg.Design.PrimaryColor, shell.Accent),
		Secondary:        firstNonEmpty(cfg.Design.SecondaryColor, shell.Secondary),
		Background:       firstNonEmpty(cfg.Design.BackgroundColor, shell.Background),
		Font:             firstNonEmpty(cfg.Design.FontColor, shell.Text),
		Price:            firstNonEmpty(cfg.Design.PriceColor, shell.Accent),
		FontFamily:       firstNonEmpty(cfg.Design.FontFamily, shell.Typography),
		FontSize:         cfg.Design.FontSize,
		HeaderFont:       firstNonEmpty(cfg.Design.HeaderFontColor, shell.Text),
		HeaderFontSize:   firstNonEmpty(cfg.Design.HeaderFontSize, cfg.Design.FontSize),
		HeaderBackground: firstNonEmpty(cfg.Design.HeaderBackgroundColor, shell.Background),
		BackgroundType:   cfg.Design.BackgroundType,
		BackgroundImage:  cfg.Design.BackgroundImage,
	}
}

// ResolveImage es la única regla de resolución de imágenes, idéntica en
// ambos modos: un string se usa tal cual; una referencia con URL usa esa
// URL; un archivo subido aún no persistido (bytes + MIME) se convierte en
// un data URI mostrable localmente; cualquier otra cosa cae al placeholder.
func ResolveImage(ref any) string {
	switch v := ref.(type) {
	case string:
		if v != "" {
			return v
		}
	case entity.ImageRef:
		return resolveImageRef(&v)
	case *entity.ImageRef:
		if v != nil {
			return resolveImageRef(v)
		}
	}
	return PlaceholderImage
}

func resolveImageRef(ref *entity.ImageRef) string {
	if ref.URL != "" {
		return ref.URL
	}
	if len(ref.Data) > 0 {
		mime := ref.MIME
		if mime == "" {
			mime = "application/octet-stream"
		}
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(ref.Data)
	}
	return PlaceholderImage
}

// visiblePages devuelve las páginas navegables: home siempre primero, luego
// las seleccionadas y las personalizadas, sin duplicados.
func visiblePages(cfg *entity.Configuration) []PageView {
	pages := []PageView{{ID: "home"}}
	seen := map[string]bool{"home": true}
	for _, id := range cfg.Pages.SelectedPages {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		pages = append(pages, PageView{ID: id})
	}
	for _, id := range cfg.Pages.CustomPages {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		pages = append(pages, PageView{ID: id, Custom: true})
	}
	return pages
}

// menuSections agrupa los ítems disponibles por categoría. El orden de las
// secciones sigue la lista de categorías configurada; categorías fuera de
// la lista van al final en orden alfabético.
func menuSections(cfg *entity.Configuration) []MenuSection {
	byCategory := map[string][]MenuItemView{}
	for _, it := range cfg.Content.MenuItems {
		if !it.Available {
			continue
		}
		image := it.ImageURL
		if image == "" && it.Image != nil {
			image = ResolveImage(it.Image)
		}
		if image == "" {
			image = PlaceholderImage
		}
		byCategory[it.Category] = append(byCategory[it.Category], MenuItemView{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price.StringFixed(2),
			Image:       image,
			Emoji:       it.Emoji,
			Category:    it.Category,
			IsHighlight: it.IsHighlight,
		})
	}
	if len(byCategory) == 0 {
		return nil
	}

	sections := make([]MenuSection, 0, len(byCategory))
	taken := map[string]bool{}
	for _, cat := range cfg.Content.Categories {
		if items, ok := byCategory[cat]; ok && !taken[cat] {
			taken[cat] = true
			sections = append(sections, MenuSection{Category: cat, Items: items})
		}
	}
	rest := make([]string, 0)
	for cat := range byCategory {
		if !taken[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	for _, cat := range rest {
		sections = append(sections, MenuSection{Category: cat, Items: byCategory[cat]})
	}
	return sections
}

func galleryView(cfg *entity.Configuration) GalleryView {
	images := make([]GalleryImageView, 0, len(cfg.Content.Gallery))
	for _, img := range cfg.Content.Gallery {
		images = append(images, GalleryImageView{
			ID:    img.ID,
			Src:   ResolveImage(img.URL),
			Title: img.Title,
			Alt:   img.Alt,
		})
	}
	return GalleryView{Images: images, Empty: len(images) == 0}
}

// hoursView pinta el horario en orden de semana, no en orden de mapa.
func hoursView(cfg *entity.Configuration) []DayHoursView {
	out := make([]DayHoursView, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		h, ok := cfg.Content.OpeningHours[day]
		if !ok {
			continue
		}
		out = append(out, DayHoursView{Day: day, Open: h.Open, Close: h.Close, Closed: h.Closed})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
