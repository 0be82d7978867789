package entity

// Tipos de negocio soportados (deben coincidir con el CHECK de la tabla configurations).
const (
	BusinessTypeCafe       = "cafe"
	BusinessTypeRestaurant = "restaurant"
	BusinessTypeBar        = "bar"
)

// IsValidBusinessType verifica la pertenencia al enum de tipos de negocio.
func IsValidBusinessType(t string) bool {
	switch t {
	case BusinessTypeCafe, BusinessTypeRestaurant, BusinessTypeBar:
		return true
	}
	return false
}

// Estados de publicación de una configuración.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// IsValidStatus verifica la pertenencia al enum de estados.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Weekdays son las claves exactas del mapa de horarios, en orden de semana.
// El mapa de openingHours debe contener exactamente estas siete claves.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ImageRef referencia a una imagen: URL remota ya persistida o archivo subido
// aún no persistido (Data + MIME). La resolución a un src renderizable es
// responsabilidad única de render.ResolveImage.
type ImageRef struct {
	URL  string `json:"url,omitempty"`
	Alt  string `json:"alt,omitempty"`
	Data []byte `json:"data,omitempty"`
	MIME string `json:"mime,omitempty"`
}

// DomainClaim información de dominio propio del negocio.
type DomainClaim struct {
	HasDomain      bool   `json:"hasDomain"`
	DomainName     string `json:"domainName,omitempty"`
	SelectedDomain string `json:"selectedDomain,omitempty"`
}

// BusinessInfo datos del negocio. Name y Type son obligatorios antes de que
// la configuración avance más allá del paso de bienvenida.
type BusinessInfo struct {
	Name              string      `json:"name"`
	Type              string      `json:"type"`
	Location          string      `json:"location,omitempty"`
	Slogan            string      `json:"slogan,omitempty"`
	UniqueDescription string      `json:"uniqueDescription,omitempty"`
	Logo              *ImageRef   `json:"logo,omitempty"`
	Domain            DomainClaim `json:"domain"`
}

// DesignConfig plantilla y estilo. Los colores son hex "#RRGGBB"; Template
// debe referenciar una plantilla registrada (ver render.Templates).
type DesignConfig struct {
	Template              string `json:"template"`
	PrimaryColor          string `json:"primaryColor"`
	SecondaryColor        string `json:"secondaryColor"`
	BackgroundColor       string `json:"backgroundColor"`
	FontColor             string `json:"fontColor"`
	PriceColor            string `json:"priceColor"`
	FontFamily            string `json:"fontFamily"`
	FontSize              string `json:"fontSize"`
	HeaderFontColor       string `json:"headerFontColor"`
	HeaderFontSize        string `json:"headerFontSize"`
	HeaderBackgroundColor string `json:"headerBackgroundColor"`
	BackgroundImage       string `json:"backgroundImage,omitempty"`
	BackgroundType        string `json:"backgroundType"` // "color" | "image"
}

// DayHours horario de un día. Open/Close en formato "HH:MM" 24h.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OpeningHours mapa de horarios keyed por día en minúsculas (ver Weekdays).
type OpeningHours map[string]DayHours

// GalleryImage imagen de la galería del sitio.
type GalleryImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// ContentData contenido del sitio: carta, galería, horarios y categorías.
type ContentData struct {
	MenuItems                   []MenuItem   `json:"menuItems"`
	Gallery                     []GalleryImage `json:"gallery"`
	OpeningHours                OpeningHours `json:"openingHours"`
	Categories                  []string     `json:"categories"`
	HomepageDishImageVisibility string       `json:"homepageDishImageVisibility,omitempty"`
}

// LoyaltyConfig sub-configuración del programa de fidelización.
// Se conserva aunque LoyaltyEnabled sea false (sin pérdida al des-activar).
type LoyaltyConfig struct {
	StampsForReward int    `json:"stampsForReward"`
	RewardType      string `json:"rewardType"` // "discount" | "free_item"
	ExpiryDate      string `json:"expiryDate,omitempty"`
}

// Coupon cupón de descuento configurable por el negocio.
type Coupon struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Discount int    `json:"discount"` // porcentaje
	Expires  string `json:"expires,omitempty"`
}

// FeatureFlags flags de funcionalidad más su sub-configuración.
// Invariante: la sub-configuración de un flag solo es significativa cuando
// el flag está activo, pero debe sobrevivir round-trips con el flag en false.
type FeatureFlags struct {
	ReservationsEnabled        bool          `json:"reservationsEnabled"`
	MaxGuests                  int           `json:"maxGuests"`
	NotificationMethod         string        `json:"notificationMethod"` // "email" | "sms" | "whatsapp"
	ReservationButtonColor     string        `json:"reservationButtonColor"`
	ReservationButtonTextColor string        `json:"reservationButtonTextColor"`
	ReservationButtonShape     string        `json:"reservationButtonShape"` // "rounded" | "pill" | "square"
	TimeSlots                  []string      `json:"timeSlots"`
	OnlineOrderingEnabled      bool          `json:"onlineOrderingEnabled"`
	OnlineStoreEnabled         bool          `json:"onlineStoreEnabled"`
	TeamAreaEnabled            bool          `json:"teamAreaEnabled"`
	LoyaltyEnabled             bool          `json:"loyaltyEnabled"`
	Loyalty                    LoyaltyConfig `json:"loyalty"`
	CouponsEnabled             bool          `json:"couponsEnabled"`
	Coupons                    []Coupon      `json:"coupons"`
}

// ContactMethod método de contacto tipado.
type ContactMethod struct {
	Type  string `json:"type"` // "phone" | "email"
	Value string `json:"value"`
}

// ContactInfo contacto y redes sociales (plataforma -> handle/URL).
type ContactInfo struct {
	ContactMethods []ContactMethod   `json:"contactMethods"`
	SocialMedia    map[string]string `json:"socialMedia"`
	Phone          string            `json:"phone,omitempty"`
	Email          string            `json:"email,omitempty"`
	Address        string            `json:"address,omitempty"`
}

// PageManagement páginas seleccionadas. "home" siempre está presente y no
// puede quitarse; la visibilidad del resto la decide el renderer.
type PageManagement struct {
	SelectedPages []string `json:"selectedPages"`
	CustomPages   []string `json:"customPages"`
}

// Offer oferta/promoción publicable en el sitio.
type Offer struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Discount    float64 `json:"discount,omitempty"` // porcentaje
}

// OfferBanner banner de ofertas en la portada.
type OfferBanner struct {
	Enabled         bool   `json:"enabled"`
	Text            string `json:"text,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// PaymentAndOffers métodos de pago y promociones.
type PaymentAndOffers struct {
	PaymentOptions []string    `json:"paymentOptions"`
	Offers         []Offer     `json:"offers"`
	OfferBanner    OfferBanner `json:"offerBanner"`
}

// PublishingInfo estado de publicación y URLs. Timestamps en RFC 3339.
type PublishingInfo struct {
	Status       string `json:"status"` // ver constantes Status*
	PublishedURL string `json:"publishedUrl,omitempty"`
	PreviewURL   string `json:"previewUrl,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// Configuration es el agregado raíz del configurador: sub-registros por
// dominio, cada uno direccionable y defaulteable de forma independiente.
// Toda mutación pasa por los namespaces de acciones del Store; ningún
// consumidor asigna campos directamente.
type Configuration struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId"`

	Business   BusinessInfo     `json:"business"`
	Design     DesignConfig     `json:"design"`
	Content    ContentData      `json:"content"`
	Features   FeatureFlags     `json:"features"`
	Contact    ContactInfo      `json:"contact"`
	Publishing PublishingInfo   `json:"publishing"`
	Pages      PageManagement   `json:"pages"`
	Payments   PaymentAndOffers `json:"payments"`
}

// HasPage indica si una página debe renderizarse. "home" siempre.
func (c *Configuration) HasPage(pageID string) bool {
	if pageID == "home" {
		return true
	}
	for _, p := range c.Pages.SelectedPages {
		if p == pageID {
			return true
		}
	}
	for _, p := range c.Pages.CustomPages {
		if p == pageID {
			return true
		}
	}
	return false
}
