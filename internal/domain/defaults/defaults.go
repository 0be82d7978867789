// Package defaults centraliza los valores por defecto por tipo de negocio
// (café, restaurante, bar): carta inicial, horarios, flags y páginas.
// El Normalizer y el Store los aplican únicamente sobre campos vacíos o que
// siguen iguales al default anterior; nunca sobre contenido editado.
package defaults

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// TypeDefaults agrupa los defaults de un tipo de negocio.
type TypeDefaults struct {
	MenuItems    []entity.MenuItem
	OpeningHours entity.OpeningHours
	Features     FeaturePreset
	Categories   []string
	Pages        []string
}

// FeaturePreset flags iniciales por tipo. Solo cubre los flags que dependen
// del tipo; el resto de FeatureFlags conserva los defaults globales.
type FeaturePreset struct {
	ReservationsEnabled   bool
	OnlineOrderingEnabled bool
	OnlineStoreEnabled    bool
	TeamAreaEnabled       bool
}

// Colores y valores globales, independientes del tipo de negocio.
const (
	GlobalPrimaryColor          = "#2563EB"
	GlobalSecondaryColor        = "#7C3AED"
	GlobalBackgroundColor       = "#FFFFFF"
	GlobalFontColor             = "#000000"
	GlobalPriceColor            = "#059669"
	GlobalFontFamily            = "sans-serif"
	GlobalFontSize              = "medium"
	GlobalTemplate              = "minimalist"
	GlobalNotificationMethod    = "email"
	GlobalMaxGuests             = 100
	GlobalReservationBtnColor   = "#2563EB"
	GlobalReservationBtnText    = "#FFFFFF"
	GlobalReservationBtnShape   = "rounded"
	GlobalBackgroundType        = "color"
	GlobalDishImageVisibility   = "visible"
	GlobalLoyaltyStamps         = 10
	GlobalLoyaltyRewardType     = "discount"
)

type seedItem struct {
	name, description, price, category string
}

// Cartas iniciales por tipo (6 ítems cada una, contenido en alemán como el
// resto del catálogo del producto).
var seedMenus = map[string][]seedItem{
	entity.BusinessTypeCafe: {
		{"Cappuccino", "Cremiger Espresso mit aufgeschäumter Milch", "3.90", "Heißgetränke"},
		{"Latte Macchiato", "Geschichteter Kaffee mit viel Milch", "4.20", "Heißgetränke"},
		{"Croissant", "Frisch gebacken, buttrig und knusprig", "2.90", "Gebäck"},
		{"Avocado Toast", "Mit Ei, Tomate und frischen Kräutern", "9.50", "Frühstück"},
		{"Käsekuchen", "Hausgemacht nach Omas Rezept", "4.90", "Kuchen"},
		{"Frische Limonade", "Mit Zitrone, Minze und Ingwer", "4.50", "Kaltgetränke"},
	},
	entity.BusinessTypeRestaurant: {
		{"Wiener Schnitzel", "Zartes Kalbsschnitzel mit Kartoffelsalat", "18.90", "Hauptgerichte"},
		{"Pasta Carbonara", "Mit Speck, Ei und Parmesan", "14.50", "Pasta"},
		{"Rindersteak", "200g mit Kräuterbutter und Pommes", "24.90", "Hauptgerichte"},
		{"Caesar Salad", "Mit gegrilltem Hähnchen und Croutons", "12.90", "Salate"},
		{"Bruschetta", "Geröstetes Brot mit Tomaten und Basilikum", "7.50", "Vorspeisen"},
		{"Tiramisu", "Klassisch italienisch mit Mascarpone", "6.90", "Desserts"},
	},
	entity.BusinessTypeBar: {
		{"Mojito", "Rum, Limette, Minze, Soda", "9.50", "Cocktails"},
		{"Aperol Spritz", "Aperol, Prosecco, Soda", "8.50", "Cocktails"},
		{"Old Fashioned", "Bourbon, Zucker, Angostura", "11.00", "Cocktails"},
		{"Craft Beer", "Wechselnde Auswahl lokaler Brauereien", "5.50", "Bier"},
		{"Nachos Grande", "Mit Käse, Jalapeños, Guacamole und Sour Cream", "12.90", "Snacks"},
		{"Burger Deluxe", "Angus Beef mit Bacon und Cheddar", "15.90", "Snacks"},
	},
}

var openingHours = map[string]entity.OpeningHours{
	entity.BusinessTypeCafe: {
		"monday":    {Open: "07:30", Close: "18:00"},
		"tuesday":   {Open: "07:30", Close: "18:00"},
		"wednesday": {Open: "07:30", Close: "18:00"},
		"thursday":  {Open: "07:30", Close: "18:00"},
		"friday":    {Open: "07:30", Close: "18:00"},
		"saturday":  {Open: "09:00", Close: "17:00"},
		"sunday":    {Open: "09:00", Close: "17:00"},
	},
	entity.BusinessTypeRestaurant: {
		"monday":    {Open: "11:30", Close: "22:00"},
		"tuesday":   {Open: "11:30", Close: "22:00"},
		"wednesday": {Open: "11:30", Close: "22:00"},
		"thursday":  {Open: "11:30", Close: "22:00"},
		"friday":    {Open: "11:30", Close: "23:00"},
		"saturday":  {Open: "17:00", Close: "23:00"},
		"sunday":    {Open: "12:00", Close: "21:00", Closed: true}, // Ruhetag
	},
	entity.BusinessTypeBar: {
		"monday":    {Open: "18:00", Close: "02:00", Closed: true}, // Ruhetag
		"tuesday":   {Open: "18:00", Close: "02:00"},
		"wednesday": {Open: "18:00", Close: "02:00"},
		"thursday":  {Open: "18:00", Close: "02:00"},
		"friday":    {Open: "18:00", Close: "04:00"},
		"saturday":  {Open: "18:00", Close: "04:00"},
		"sunday":    {Open: "18:00", Close: "00:00"},
	},
}

var featurePresets = map[string]FeaturePreset{
	// Los cafés rara vez reservan mesa; el café to-go se pide online.
	entity.BusinessTypeCafe:       {ReservationsEnabled: false, OnlineOrderingEnabled: true},
	entity.BusinessTypeRestaurant: {ReservationsEnabled: true},
	entity.BusinessTypeBar:        {ReservationsEnabled: true},
}

var categories = map[string][]string{
	entity.BusinessTypeCafe:       {"Heißgetränke", "Kaltgetränke", "Frühstück", "Gebäck", "Kuchen", "Snacks"},
	entity.BusinessTypeRestaurant: {"Vorspeisen", "Salate", "Suppen", "Hauptgerichte", "Pasta", "Desserts", "Getränke"},
	entity.BusinessTypeBar:        {"Cocktails", "Longdrinks", "Bier", "Wein", "Alkoholfrei", "Snacks"},
}

var pages = map[string][]string{
	entity.BusinessTypeCafe:       {"menu", "contact", "gallery"},
	entity.BusinessTypeRestaurant: {"menu", "contact", "gallery", "reservations"},
	entity.BusinessTypeBar:        {"menu", "contact", "gallery", "reservations"},
}

// ForType devuelve los defaults del tipo indicado. Tipo desconocido o vacío
// cae a los defaults de restaurante. La carta se materializa con IDs únicos
// nuevos en cada llamada.
func ForType(businessType string) TypeDefaults {
	t := businessType
	if _, ok := seedMenus[t]; !ok {
		t = entity.BusinessTypeRestaurant
	}
	return TypeDefaults{
		MenuItems:    MenuItems(t),
		OpeningHours: OpeningHoursFor(t),
		Features:     featurePresets[t],
		Categories:   append([]string(nil), categories[t]...),
		Pages:        append([]string(nil), pages[t]...),
	}
}

// FeaturesFor devuelve el preset de flags del tipo, con fallback a restaurante.
func FeaturesFor(businessType string) FeaturePreset {
	if p, ok := featurePresets[businessType]; ok {
		return p
	}
	return featurePresets[entity.BusinessTypeRestaurant]
}

// PagesFor devuelve las páginas iniciales del tipo (sin incluir home).
func PagesFor(businessType string) []string {
	p, ok := pages[businessType]
	if !ok {
		p = pages[entity.BusinessTypeRestaurant]
	}
	return append([]string(nil), p...)
}

// MenuItems materializa la carta por defecto del tipo con IDs frescos.
func MenuItems(businessType string) []entity.MenuItem {
	seeds, ok := seedMenus[businessType]
	if !ok {
		seeds = seedMenus[entity.BusinessTypeRestaurant]
	}
	items := make([]entity.MenuItem, 0, len(seeds))
	for _, s := range seeds {
		price, _ := decimal.NewFromString(s.price)
		items = append(items, entity.MenuItem{
			ID:          "default-" + uuid.New().String(),
			Name:        s.name,
			Description: s.description,
			Price:       price,
			Category:    s.category,
			Available:   true,
		})
	}
	return items
}

// OpeningHoursFor devuelve una copia del horario por defecto del tipo.
func OpeningHoursFor(businessType string) entity.OpeningHours {
	src, ok := openingHours[businessType]
	if !ok {
		src = openingHours[entity.BusinessTypeRestaurant]
	}
	out := make(entity.OpeningHours, len(src))
	for day, h := range src {
		out[day] = h
	}
	return out
}

// IsDefaultMenu compara una carta contra la carta por defecto de un tipo
// ignorando los IDs (que se generan frescos en cada materialización).
// Se usa para decidir si un cambio de tipo puede reemplazar la carta.
func IsDefaultMenu(items []entity.MenuItem, businessType string) bool {
	seeds, ok := seedMenus[businessType]
	if !ok {
		seeds = seedMenus[entity.BusinessTypeRestaurant]
	}
	if len(items) != len(seeds) {
		return false
	}
	for i, s := range seeds {
		price, _ := decimal.NewFromString(s.price)
		it := items[i]
		if it.Name != s.name || it.Category != s.category || !it.Price.Equal(price) {
			return false
		}
	}
	return true
}

// IsDefaultHours compara horarios contra el default del tipo.
func IsDefaultHours(hours entity.OpeningHours, businessType string) bool {
	def := OpeningHoursFor(businessType)
	if len(hours) != len(def) {
		return false
	}
	for day, h := range def {
		if hours[day] != h {
			return false
		}
	}
	return true
}

// IsDefaultCategories compara categorías contra el default del tipo.
func IsDefaultCategories(cats []string, businessType string) bool {
	def, ok := categories[businessType]
	if !ok {
		def = categories[entity.BusinessTypeRestaurant]
	}
	if len(cats) != len(def) {
		return false
	}
	for i, c := range def {
		if cats[i] != c {
			return false
		}
	}
	return true
}

// NewConfiguration construye una configuración vacía con defaults globales.
// Si businessType es conocido aplica además sus defaults de tipo.
func NewConfiguration(userID, businessType string) *entity.Configuration {
	cfg := &entity.Configuration{
		UserID: userID,
		Business: entity.BusinessInfo{
			Type: businessType,
		},
		Design: entity.DesignConfig{
			Template:              GlobalTemplate,
			PrimaryColor:          GlobalPrimaryColor,
			SecondaryColor:        GlobalSecondaryColor,
			BackgroundColor:       GlobalBackgroundColor,
			FontColor:             GlobalFontColor,
			PriceColor:            GlobalPriceColor,
			FontFamily:            GlobalFontFamily,
			FontSize:              GlobalFontSize,
			HeaderFontColor:       GlobalFontColor,
			HeaderFontSize:        GlobalFontSize,
			HeaderBackgroundColor: GlobalBackgroundColor,
			BackgroundType:        GlobalBackgroundType,
		},
		Content: entity.ContentData{
			MenuItems:                   []entity.MenuItem{},
			Gallery:                     []entity.GalleryImage{},
			OpeningHours:                entity.OpeningHours{},
			Categories:                  []string{},
			HomepageDishImageVisibility: GlobalDishImageVisibility,
		},
		Features: entity.FeatureFlags{
			MaxGuests:                  GlobalMaxGuests,
			NotificationMethod:         GlobalNotificationMethod,
			ReservationButtonColor:     GlobalReservationBtnColor,
			ReservationButtonTextColor: GlobalReservationBtnText,
			ReservationButtonShape:     GlobalReservationBtnShape,
			TimeSlots:                  []string{},
			Loyalty: entity.LoyaltyConfig{
				StampsForReward: GlobalLoyaltyStamps,
				RewardType:      GlobalLoyaltyRewardType,
			},
			Coupons: []entity.Coupon{},
		},
		Contact: entity.ContactInfo{
			ContactMethods: []entity.ContactMethod{},
			SocialMedia:    map[string]string{},
		},
		Publishing: entity.PublishingInfo{
			Status: entity.StatusDraft,
		},
		Pages: entity.PageManagement{
			SelectedPages: []string{"home"},
			CustomPages:   []string{},
		},
		Payments: entity.PaymentAndOffers{
			PaymentOptions: []string{},
			Offers:         []entity.Offer{},
		},
	}
	if businessType != "" {
		td := ForType(businessType)
		cfg.Content.MenuItems = td.MenuItems
		cfg.Content.OpeningHours = td.OpeningHours
		cfg.Content.Categories = td.Categories
		cfg.Features.ReservationsEnabled = td.Features.ReservationsEnabled
		cfg.Features.OnlineOrderingEnabled = td.Features.OnlineOrderingEnabled
		cfg.Features.OnlineStoreEnabled = td.Features.OnlineStoreEnabled
		cfg.Features.TeamAreaEnabled = td.Features.TeamAreaEnabled
		cfg.Pages.SelectedPages = append([]string{"home"}, td.Pages...)
	}
	return cfg
}
