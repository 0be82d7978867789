// Package schema es la única autoridad sobre qué forma tiene una
// configuración persistible. Todo lo que pasa esta puerta se asume válido
// en el resto de componentes; ningún otro componente rechaza configuraciones.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

var (
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	timeRe     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// FieldError describe un campo que incumple su regla declarada.
type FieldError struct {
	Field   string `json:"field"`   // ruta del campo, ej. "design.primaryColor"
	Rule    string `json:"rule"`    // regla incumplida, ej. "hex_color"
	Message string `json:"message"`
}

// ValidationError agrupa todos los campos inválidos de una configuración,
// no solo el primero. Siempre recuperable: se muestra en el formulario.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "configuración inválida"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "configuración inválida: " + strings.Join(parts, "; ")
}

// Result resultado discriminado de ValidateSafe: éxito o lista de errores.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Validator valida configuraciones contra el esquema estricto. Las
// plantillas registradas se inyectan para no acoplar este paquete al
// catálogo del renderer.
type Validator struct {
	templates map[string]bool
}

// New construye el validador con el conjunto cerrado de IDs de plantilla.
func New(templateIDs []string) *Validator {
	t := make(map[string]bool, len(templateIDs))
	for _, id := range templateIDs {
		t[id] = true
	}
	return &Validator{templates: t}
}

// Validate valida la configuración y devuelve un *ValidationError con todos
// los campos fallidos, o nil si es válida.
func (v *Validator) Validate(cfg *entity.Configuration) error {
	errs := v.collect(cfg)
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ValidateSafe valida sin devolver error: el llamador decide si puede
// recuperarse inspeccionando el resultado.
func (v *Validator) ValidateSafe(cfg *entity.Configuration) Result {
	errs := v.collect(cfg)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func (v *Validator) collect(cfg *entity.Configuration) []FieldError {
	var errs []FieldError
	add := func(field, rule, msg string) {
		errs = append(errs, FieldError{Field: field, Rule: rule, Message: msg})
	}

	if cfg == nil {
		add("", "required", "configuración ausente")
		return errs
	}

	// Business
	if strings.TrimSpace(cfg.Business.Name) == "" {
		add("business.name", "required", "el nombre del negocio es obligatorio")
	}
	if !entity.IsValidBusinessType(cfg.Business.Type) {
		add("business.type", "enum", fmt.Sprintf("tipo de negocio desconocido: %q", cfg.Business.Type))
	}

	// Design
	if !v.templates[cfg.Design.Template] {
		add("design.template", "enum", fmt.Sprintf("plantilla no registrada: %q", cfg.Design.Template))
	}
	colorFields := []struct {
		field, value string
		optional     bool
	}{
		{"design.primaryColor", cfg.Design.PrimaryColor, false},
		{"design.secondaryColor", cfg.Design.SecondaryColor, false},
		{"design.backgroundColor", cfg.Design.BackgroundColor, false},
		{"design.fontColor", cfg.Design.FontColor, false},
		{"design.priceColor", cfg.Design.PriceColor, true},
		{"design.headerFontColor", cfg.Design.HeaderFontColor, true},
		{"design.headerBackgroundColor", cfg.Design.HeaderBackgroundColor, true},
		{"features.reservationButtonColor", cfg.Features.ReservationButtonColor, true},
		{"features.reservationButtonTextColor", cfg.Features.ReservationButtonTextColor, true},
		{"payments.offerBanner.backgroundColor", cfg.Payments.OfferBanner.BackgroundColor, true},
	}
	for _, c := range colorFields {
		if c.optional && c.value == "" {
			continue
		}
		if !hexColorRe.MatchString(c.value) {
			add(c.field, "hex_color", fmt.Sprintf("color hex inválido: %q", c.value))
		}
	}

	// Opening hours: exactamente los siete días, horas HH:MM 24h.
	hours := cfg.Content.OpeningHours
	if len(hours) != len(entity.Weekdays) {
		add("content.openingHours", "weekday_map",
			fmt.Sprintf("se esperaban %d días, hay %d", len(entity.Weekdays), len(hours)))
	}
	for _, day := range entity.Weekdays {
		h, ok := hours[day]
		if !ok {
			add("content.openingHours."+day, "weekday_map", "falta el día")
			continue
		}
		if !timeRe.MatchString(h.Open) {
			add("content.openingHours."+day+".open", "time_format", fmt.Sprintf("hora inválida: %q", h.Open))
		}
		if !timeRe.MatchString(h.Close) {
			add("content.openingHours."+day+".close", "time_format", fmt.Sprintf("hora inválida: %q", h.Close))
		}
	}
	for day := range hours {
		known := false
		for _, d := range entity.Weekdays {
			if d == day {
				known = true
				break
			}
		}
		if !known {
			add("content.openingHours."+day, "weekday_map", "día desconocido")
		}
	}

	// Colecciones: nunca nil (slice vacío en su lugar), para que la forma
	// persistida no alterne entre null y [].
	collections := []struct {
		field string
		isNil bool
	}{
		{"content.menuItems", cfg.Content.MenuItems == nil},
		{"content.gallery", cfg.Content.Gallery == nil},
		{"content.categories", cfg.Content.Categories == nil},
		{"features.timeSlots", cfg.Features.TimeSlots == nil},
		{"features.coupons", cfg.Features.Coupons == nil},
		{"contact.contactMethods", cfg.Contact.ContactMethods == nil},
		{"contact.socialMedia", cfg.Contact.SocialMedia == nil},
		{"pages.selectedPages", cfg.Pages.SelectedPages == nil},
		{"pages.customPages", cfg.Pages.CustomPages == nil},
		{"payments.paymentOptions", cfg.Payments.PaymentOptions == nil},
		{"payments.offers", cfg.Payments.Offers == nil},
	}
	for _, c := range collections {
		if c.isNil {
			add(c.field, "not_nil", "la colección debe ser vacía, nunca nula")
		}
	}

	// Menu items: ID estable y único dentro de la colección.
	seen := make(map[string]bool, len(cfg.Content.MenuItems))
	for i, it := range cfg.Content.MenuItems {
		if it.ID == "" {
			add(fmt.Sprintf("content.menuItems[%d].id", i), "required", "id obligatorio")
			continue
		}
		if seen[it.ID] {
			add(fmt.Sprintf("content.menuItems[%d].id", i), "unique", fmt.Sprintf("id duplicado: %q", it.ID))
		}
		seen[it.ID] = true
	}

	// Features
	if cfg.Features.MaxGuests < 0 {
		add("features.maxGuests", "min", "no puede ser negativo")
	}

	// Pages: home siempre presente.
	if !cfg.HasPage("home") {
		add("pages.selectedPages", "home_required", "home debe estar siempre presente")
	}

	// Publishing
	if cfg.Publishing.Status != "" && !entity.IsValidStatus(cfg.Publishing.Status) {
		add("publishing.status", "enum", fmt.Sprintf("estado desconocido: %q", cfg.Publishing.Status))
	}

	return errs
}

// ValidateStrictJSON comprueba que el payload JSON no contenga claves fuera
// de la forma declarada, en ningún nivel (modo estricto: evita deriva de
// esquema silenciosa entre cliente y datos guardados). Se invoca sobre el
// cuerpo crudo antes de decodificar al agregado.
func (v *Validator) ValidateStrictJSON(raw []byte) error {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "", Rule: "json", Message: "JSON inválido"}}}
	}
	var errs []FieldError
	checkObject("", payload, strictShape, &errs)
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// shape describe las claves permitidas de un objeto y la forma de sus hijos.
// Un hijo nil significa "valor hoja o colección sin sub-esquema".
type shape map[string]shape

var dayShape = shape{"open": nil, "close": nil, "closed": nil}

var menuItemShape = shape{
	"id": nil, "name": nil, "description": nil, "price": nil, "imageUrl": nil,
	"image": {"url": nil, "alt": nil, "data": nil, "mime": nil},
	"emoji": nil, "available": nil, "category": nil, "isHighlight": nil,
	"displayRules": {
		"startHour": nil, "endHour": nil, "daysOfWeek": nil,
		"minGuests": nil, "maxGuests": nil, "specialOccasion": nil,
	},
	"priority": nil, "lastOrderedMinutesAgo": nil, "recentOrderCount": nil,
}

var strictShape = shape{
	"id":     nil,
	"userId": nil,
	"business": {
		"name": nil, "type": nil, "location": nil, "slogan": nil,
		"uniqueDescription": nil,
		"logo":              {"url": nil, "alt": nil, "data": nil, "mime": nil},
		"domain":            {"hasDomain": nil, "domainName": nil, "selectedDomain": nil},
	},
	"design": {
		"template": nil, "primaryColor": nil, "secondaryColor": nil,
		"backgroundColor": nil, "fontColor": nil, "priceColor": nil,
		"fontFamily": nil, "fontSize": nil, "headerFontColor": nil,
		"headerFontSize": nil, "headerBackgroundColor": nil,
		"backgroundImage": nil, "backgroundType": nil,
	},
	"content": {
		"menuItems":    menuItemShape,       // elementos validados uno a uno
		"gallery":      {"id": nil, "url": nil, "title": nil, "alt": nil},
		"openingHours": nil, // claves = días; se valida aparte en collect
		"categories":   nil,
		"homepageDishImageVisibility": nil,
	},
	"features": {
		"reservationsEnabled": nil, "maxGuests": nil, "notificationMethod": nil,
		"reservationButtonColor": nil, "reservationButtonTextColor": nil,
		"reservationButtonShape": nil, "timeSlots": nil,
		"onlineOrderingEnabled": nil, "onlineStoreEnabled": nil,
		"teamAreaEnabled": nil, "loyaltyEnabled": nil,
		"loyalty":        {"stampsForReward": nil, "rewardType": nil, "expiryDate": nil},
		"couponsEnabled": nil,
		"coupons":        {"id": nil, "code": nil, "discount": nil, "expires": nil},
	},
	"contact": {
		"contactMethods": {"type": nil, "value": nil},
		"socialMedia":    nil, // claves = plataformas arbitrarias
		"phone":          nil, "email": nil, "address": nil,
	},
	"publishing": {
		"status": nil, "publishedUrl": nil, "previewUrl": nil,
		"publishedAt": nil, "createdAt": nil, "updatedAt": nil,
	},
	"pages": {"selectedPages": nil, "customPages": nil},
	"payments": {
		"paymentOptions": nil,
		"offers":         {"id": nil, "title": nil, "description": nil, "discount": nil},
		"offerBanner":    {"enabled": nil, "text": nil, "backgroundColor": nil},
	},
}

// checkObject recorre el payload contra la forma declarada acumulando las
// claves desconocidas. Las formas hijas se aplican tanto a objetos como a
// los elementos de arrays de objetos.
func checkObject(path string, value any, s shape, errs *[]FieldError) {
	switch val := value.(type) {
	case map[string]any:
		for k, child := range val {
			childPath := k
			if path != "" {
				childPath = path + "." + k
			}
			childShape, known := s[k]
			if !known {
				*errs = append(*errs, FieldError{
					Field:   childPath,
					Rule:    "unknown_key",
					Message: "clave no declarada en el esquema",
				})
				continue
			}
			if childShape != nil {
				checkObject(childPath, child, childShape, errs)
			}
		}
	case []any:
		for i, elem := range val {
			checkObject(fmt.Sprintf("%s[%d]", path, i), elem, s, errs)
		}
	}
}
