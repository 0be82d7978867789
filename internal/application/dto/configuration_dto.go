package dto

import (
	"encoding/json"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// FlatConfiguration es la forma plana heredada con la que se persiste una
// configuración (una columna por campo anidado; colecciones como JSON).
// Es el contrato del repositorio y la entrada/salida del Normalizer: cada
// campo anidado de entity.Configuration mapea exactamente a una clave plana.
type FlatConfiguration struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId,omitempty"`

	// Business
	BusinessName      string           `json:"businessName,omitempty"`
	BusinessType      string           `json:"businessType,omitempty"`
	Location          string           `json:"location,omitempty"`
	Slogan            string           `json:"slogan,omitempty"`
	UniqueDescription string           `json:"uniqueDescription,omitempty"`
	Logo              *entity.ImageRef `json:"logo,omitempty"`
	HasDomain         bool             `json:"hasDomain,omitempty"`
	DomainName        string           `json:"domainName,omitempty"`
	SelectedDomain    string           `json:"selectedDomain,omitempty"`

	// Design
	Template              string `json:"template,omitempty"`
	PrimaryColor          string `json:"primaryColor,omitempty"`
	SecondaryColor        string `json:"secondaryColor,omitempty"`
	BackgroundColor       string `json:"backgroundColor,omitempty"`
	FontColor             string `json:"fontColor,omitempty"`
	PriceColor            string `json:"priceColor,omitempty"`
	FontFamily            string `json:"fontFamily,omitempty"`
	FontSize              string `json:"fontSize,omitempty"`
	HeaderFontColor       string `json:"headerFontColor,omitempty"`
	HeaderFontSize        string `json:"headerFontSize,omitempty"`
	HeaderBackgroundColor string `json:"headerBackgroundColor,omitempty"`
	BackgroundImage       string `json:"backgroundImage,omitempty"`
	BackgroundType        string `json:"backgroundType,omitempty"`

	// Content (JSON en la base)
	MenuItems                   []entity.MenuItem     `json:"menuItems,omitempty"`
	Gallery                     []entity.GalleryImage `json:"gallery,omitempty"`
	OpeningHours                entity.OpeningHours   `json:"openingHours,omitempty"`
	Categories                  []string              `json:"categories,omitempty"`
	HomepageDishImageVisibility string                `json:"homepageDishImageVisibility,omitempty"`

	// Features (los nombres planos heredados difieren de los anidados:
	// onlineOrdering ↔ onlineOrderingEnabled, etc.)
	ReservationsEnabled        bool                 `json:"reservationsEnabled,omitempty"`
	MaxGuests                  int                  `json:"maxGuests,omitempty"`
	NotificationMethod         string               `json:"notificationMethod,omitempty"`
	ReservationButtonColor     string               `json:"reservationButtonColor,omitempty"`
	ReservationButtonTextColor string               `json:"reservationButtonTextColor,omitempty"`
	ReservationButtonShape     string               `json:"reservationButtonShape,omitempty"`
	TimeSlots                  []string             `json:"timeSlots,omitempty"`
	OnlineOrdering             bool                 `json:"onlineOrdering,omitempty"`
	OnlineStore                bool                 `json:"onlineStore,omitempty"`
	TeamArea                   bool                 `json:"teamArea,omitempty"`
	LoyaltyEnabled             bool                 `json:"loyaltyEnabled,omitempty"`
	LoyaltyConfig              entity.LoyaltyConfig `json:"loyaltyConfig,omitempty"`
	CouponsEnabled             bool                 `json:"couponsEnabled,omitempty"`
	Coupons                    []entity.Coupon      `json:"coupons,omitempty"`

	// Contact (JSON en la base)
	ContactMethods []entity.ContactMethod `json:"contactMethods,omitempty"`
	SocialMedia    map[string]string      `json:"socialMedia,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	Email          string                 `json:"email,omitempty"`
	Address        string                 `json:"address,omitempty"`

	// Pages
	SelectedPages []string `json:"selectedPages,omitempty"`
	CustomPages   []string `json:"customPages,omitempty"`

	// Payments
	PaymentOptions []string           `json:"paymentOptions,omitempty"`
	Offers         []entity.Offer     `json:"offers,omitempty"`
	OfferBanner    entity.OfferBanner `json:"offerBanner,omitempty"`

	// Publishing
	Status       string `json:"status,omitempty"`
	PublishedURL string `json:"publishedUrl,omitempty"`
	PreviewURL   string `json:"previewUrl,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// FlatFromMap construye una FlatConfiguration de mejor esfuerzo desde un
// mapa sin tipar (filas legadas, imports de depuración). Campos con tipo
// equivocado se degradan a su valor cero; las colecciones aceptan tanto el
// valor ya parseado como un string JSON (doble codificación heredada).
// Nunca devuelve error: el rechazo es tarea del Validator, no de aquí.
func FlatFromMap(m map[string]any) FlatConfiguration {
	var f FlatConfiguration
	if m == nil {
		return f
	}
	// El camino feliz: re-serializar y decodificar contra el struct tipado.
	// json.Unmarshal ignora tipos incompatibles campo a campo solo si
	// decodificamos clave por clave, así que primero saneamos el mapa.
	clean := make(map[string]any, len(m))
	for k, v := range m {
		clean[k] = coerceFlatValue(k, v)
	}
	raw, err := json.Marshal(clean)
	if err != nil {
		return f
	}
	// Decodificación tolerante: descarta las claves que sigan sin encajar.
	_ = json.Unmarshal(raw, &f)
	return f
}

// collectionKeys claves planas cuyo valor es una colección JSON y puede
// llegar doblemente serializado desde el almacenamiento heredado.
var collectionKeys = map[string]bool{
	"menuItems":      true,
	"gallery":        true,
	"openingHours":   true,
	"categories":     true,
	"timeSlots":      true,
	"coupons":        true,
	"loyaltyConfig":  true,
	"contactMethods": true,
	"socialMedia":    true,
	"selectedPages":  true,
	"customPages":    true,
	"paymentOptions": true,
	"offers":         true,
	"offerBanner":    true,
	"logo":           true,
}

func coerceFlatValue(key string, v any) any {
	if s, ok := v.(string); ok && collectionKeys[key] {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return parsed
		}
		return nil
	}
	return v
}

// SaveConfigurationResponse respuesta del guardado.
type SaveConfigurationResponse struct {
	Configuration *entity.Configuration `json:"configuration"`
	Message       string                `json:"message,omitempty"`
}

// PublishResponse respuesta de la publicación.
type PublishResponse struct {
	Configuration *entity.Configuration `json:"configuration"`
	PublishedURL  string                `json:"publishedUrl"`
}

// ConfigurationListResponse listado de configuraciones de un usuario.
type ConfigurationListResponse struct {
	Items []entity.Configuration `json:"items"`
	Page  PageResponse           `json:"page"`
}
