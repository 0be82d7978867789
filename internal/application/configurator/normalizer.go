package configurator

import (
	"github.com/rs/zerolog"

	"github.com/maitr/sitebuilder-api/internal/application/dto"
	"github.com/maitr/sitebuilder-api/internal/domain/defaults"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// Normalizer convierte entre la forma plana heredada (una clave por campo
// anidado, la que persiste el repositorio) y el agregado Configuration.
// Denormalize nunca falla: entradas con forma rara degradan a defaults y se
// registran solo a efectos de diagnóstico; rechazar es tarea del Validator.
type Normalizer struct {
	log zerolog.Logger
}

func NewNormalizer(log zerolog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// flatKeys es el conjunto de claves planas reconocidas. Claves fuera del
// conjunto se ignoran (y se registran como ambigüedad de normalización).
var flatKeys = map[string]bool{
	"id": true, "userId": true,
	"businessName": true, "businessType": true, "location": true,
	"slogan": true, "uniqueDescription": true, "logo": true,
	"hasDomain": true, "domainName": true, "selectedDomain": true,
	"template": true, "primaryColor": true, "secondaryColor": true,
	"backgroundColor": true, "fontColor": true, "priceColor": true,
	"fontFamily": true, "fontSize": true, "headerFontColor": true,
	"headerFontSize": true, "headerBackgroundColor": true,
	"backgroundImage": true, "backgroundType": true,
	"menuItems": true, "gallery": true, "openingHours": true,
	"categories": true, "homepageDishImageVisibility": true,
	"reservationsEnabled": true, "maxGuests": true, "notificationMethod": true,
	"reservationButtonColor": true, "reservationButtonTextColor": true,
	"reservationButtonShape": true, "timeSlots": true,
	"onlineOrdering": true, "onlineStore": true, "teamArea": true,
	"loyaltyEnabled": true, "loyaltyConfig": true,
	"couponsEnabled": true, "coupons": true,
	"contactMethods": true, "socialMedia": true,
	"phone": true, "email": true, "address": true,
	"selectedPages": true, "customPages": true,
	"paymentOptions": true, "offers": true, "offerBanner": true,
	"status": true, "publishedUrl": true, "previewUrl": true,
	"publishedAt": true, "createdAt": true, "updatedAt": true,
}

// Denormalize construye el agregado anidado desde un registro plano. Para
// cada campo: usa la clave plana si está presente; si no, el default del
// tipo de negocio (tipo desconocido o ausente cae a restaurante); si no,
// el default global.
func (n *Normalizer) Denormalize(record map[string]any) *entity.Configuration {
	if record == nil {
		record = map[string]any{}
	}
	for k := range record {
		if !flatKeys[k] {
			n.log.Debug().Str("key", k).Msg("clave plana no reconocida, ignorada")
		}
	}

	f := dto.FlatFromMap(record)
	has := func(key string) bool {
		_, ok := record[key]
		return ok
	}
	td := defaults.ForType(f.BusinessType)

	cfg := &entity.Configuration{
		ID:     f.ID,
		UserID: f.UserID,
		Business: entity.BusinessInfo{
			Name:              f.BusinessName,
			Type:              f.BusinessType,
			Location:          f.Location,
			Slogan:            f.Slogan,
			UniqueDescription: f.UniqueDescription,
			Logo:              f.Logo,
			Domain: entity.DomainClaim{
				HasDomain:      f.HasDomain,
				DomainName:     f.DomainName,
				SelectedDomain: f.SelectedDomain,
			},
		},
		Design: entity.DesignConfig{
			Template:              orDefault(f.Template, defaults.GlobalTemplate),
			PrimaryColor:          orDefault(f.PrimaryColor, defaults.GlobalPrimaryColor),
			SecondaryColor:        orDefault(f.SecondaryColor, defaults.GlobalSecondaryColor),
			BackgroundColor:       orDefault(f.BackgroundColor, defaults.GlobalBackgroundColor),
			FontColor:             orDefault(f.FontColor, defaults.GlobalFontColor),
			PriceColor:            orDefault(f.PriceColor, defaults.GlobalPriceColor),
			FontFamily:            orDefault(f.FontFamily, defaults.GlobalFontFamily),
			FontSize:              orDefault(f.FontSize, defaults.GlobalFontSize),
			HeaderFontColor:       orDefault(f.HeaderFontColor, defaults.GlobalFontColor),
			HeaderFontSize:        orDefault(f.HeaderFontSize, defaults.GlobalFontSize),
			HeaderBackgroundColor: orDefault(f.HeaderBackgroundColor, defaults.GlobalBackgroundColor),
			BackgroundImage:       f.BackgroundImage,
			BackgroundType:        orDefault(f.BackgroundType, defaults.GlobalBackgroundType),
		},
		Content: entity.ContentData{
			MenuItems:                   f.MenuItems,
			Gallery:                     f.Gallery,
			OpeningHours:                mergeHours(td.OpeningHours, f.OpeningHours),
			Categories:                  f.Categories,
			HomepageDishImageVisibility: orDefault(f.HomepageDishImageVisibility, defaults.GlobalDishImageVisibility),
		},
		Features: entity.FeatureFlags{
			ReservationsEnabled:        f.ReservationsEnabled,
			MaxGuests:                  f.MaxGuests,
			NotificationMethod:         orDefault(f.NotificationMethod, defaults.GlobalNotificationMethod),
			ReservationButtonColor:     orDefault(f.ReservationButtonColor, defaults.GlobalReservationBtnColor),
			ReservationButtonTextColor: orDefault(f.ReservationButtonTextColor, defaults.GlobalReservationBtnText),
			ReservationButtonShape:     orDefault(f.ReservationButtonShape, defaults.GlobalReservationBtnShape),
			TimeSlots:                  f.TimeSlots,
			OnlineOrderingEnabled:      f.OnlineOrdering,
			OnlineStoreEnabled:         f.OnlineStore,
			TeamAreaEnabled:            f.TeamArea,
			LoyaltyEnabled:             f.LoyaltyEnabled,
			Loyalty:                    f.LoyaltyConfig,
			CouponsEnabled:             f.CouponsEnabled,
			Coupons:                    f.Coupons,
		},
		Contact: entity.ContactInfo{
			ContactMethods: f.ContactMethods,
			SocialMedia:    f.SocialMedia,
			Phone:          f.Phone,
			Email:          f.Email,
			Address:        f.Address,
		},
		Publishing: entity.PublishingInfo{
			Status:       orDefault(f.Status, entity.StatusDraft),
			PublishedURL: f.PublishedURL,
			PreviewURL:   f.PreviewURL,
			PublishedAt:  f.PublishedAt,
			CreatedAt:    f.CreatedAt,
			UpdatedAt:    f.UpdatedAt,
		},
		Pages: entity.PageManagement{
			SelectedPages: f.SelectedPages,
			CustomPages:   f.CustomPages,
		},
		Payments: entity.PaymentAndOffers{
			PaymentOptions: f.PaymentOptions,
			Offers:         f.Offers,
			OfferBanner:    f.OfferBanner,
		},
	}

	// Defaults por tipo: solo sobre campos ausentes, nunca sobre contenido
	// presente (aunque esté vacío de forma explícita).
	if cfg.Content.MenuItems == nil {
		cfg.Content.MenuItems = td.MenuItems
	}
	if cfg.Content.Categories == nil {
		cfg.Content.Categories = td.Categories
	}
	if cfg.Content.Gallery == nil {
		cfg.Content.Gallery = []entity.GalleryImage{}
	}
	if !has("reservationsEnabled") {
		cfg.Features.ReservationsEnabled = td.Features.ReservationsEnabled
	}
	if !has("onlineOrdering") {
		cfg.Features.OnlineOrderingEnabled = td.Features.OnlineOrderingEnabled
	}
	if !has("onlineStore") {
		cfg.Features.OnlineStoreEnabled = td.Features.OnlineStoreEnabled
	}
	if !has("teamArea") {
		cfg.Features.TeamAreaEnabled = td.Features.TeamAreaEnabled
	}
	// Un cupo cero nunca es significativo: clave ausente o ilegible, mismo default.
	if !has("maxGuests") || cfg.Features.MaxGuests == 0 {
		cfg.Features.MaxGuests = defaults.GlobalMaxGuests
	}
	if !has("loyaltyConfig") {
		cfg.Features.Loyalty = entity.LoyaltyConfig{
			StampsForReward: defaults.GlobalLoyaltyStamps,
			RewardType:      defaults.GlobalLoyaltyRewardType,
		}
	}
	if cfg.Features.TimeSlots == nil {
		cfg.Features.TimeSlots = []string{}
	}
	if cfg.Features.Coupons == nil {
		cfg.Features.Coupons = []entity.Coupon{}
	}
	if cfg.Contact.ContactMethods == nil {
		cfg.Contact.ContactMethods = []entity.ContactMethod{}
	}
	if cfg.Contact.SocialMedia == nil {
		cfg.Contact.SocialMedia = map[string]string{}
	}
	if cfg.Pages.SelectedPages == nil {
		cfg.Pages.SelectedPages = append([]string{"home"}, td.Pages...)
	}
	if cfg.Pages.CustomPages == nil {
		cfg.Pages.CustomPages = []string{}
	}
	if cfg.Payments.PaymentOptions == nil {
		cfg.Payments.PaymentOptions = []string{}
	}
	if cfg.Payments.Offers == nil {
		cfg.Payments.Offers = []entity.Offer{}
	}
	return cfg
}

// Normalize es la inversa exacta: cada campo anidado a su única clave plana.
// Emite SIEMPRE todas las claves reconocidas (incluidos bools en false y
// strings vacíos) para que Denormalize(Normalize(cfg)) no re-aplique
// defaults sobre campos que el usuario dejó vacíos a propósito. Las
// colecciones van tal cual, nunca serializadas dos veces.
func (n *Normalizer) Normalize(cfg *entity.Configuration) map[string]any {
	return map[string]any{
		"id":     cfg.ID,
		"userId": cfg.UserID,

		"businessName":      cfg.Business.Name,
		"businessType":      cfg.Business.Type,
		"location":          cfg.Business.Location,
		"slogan":            cfg.Business.Slogan,
		"uniqueDescription": cfg.Business.UniqueDescription,
		"logo":              cfg.Business.Logo,
		"hasDomain":         cfg.Business.Domain.HasDomain,
		"domainName":        cfg.Business.Domain.DomainName,
		"selectedDomain":    cfg.Business.Domain.SelectedDomain,

		"template":              cfg.Design.Template,
		"primaryColor":          cfg.Design.PrimaryColor,
		"secondaryColor":        cfg.Design.SecondaryColor,
		"backgroundColor":       cfg.Design.BackgroundColor,
		"fontColor":             cfg.Design.FontColor,
		"priceColor":            cfg.Design.PriceColor,
		"fontFamily":            cfg.Design.FontFamily,
		"fontSize":              cfg.Design.FontSize,
		"headerFontColor":       cfg.Design.HeaderFontColor,
		"headerFontSize":        cfg.Design.HeaderFontSize,
		"headerBackgroundColor": cfg.Design.HeaderBackgroundColor,
		"backgroundImage":       cfg.Design.BackgroundImage,
		"backgroundType":        cfg.Design.BackgroundType,

		"menuItems":                   cfg.Content.MenuItems,
		"gallery":                     cfg.Content.Gallery,
		"openingHours":                cfg.Content.OpeningHours,
		"categories":                  cfg.Content.Categories,
		"homepageDishImageVisibility": cfg.Content.HomepageDishImageVisibility,

		"reservationsEnabled":        cfg.Features.ReservationsEnabled,
		"maxGuests":                  cfg.Features.MaxGuests,
		"notificationMethod":         cfg.Features.NotificationMethod,
		"reservationButtonColor":     cfg.Features.ReservationButtonColor,
		"reservationButtonTextColor": cfg.Features.ReservationButtonTextColor,
		"reservationButtonShape":     cfg.Features.ReservationButtonShape,
		"timeSlots":                  cfg.Features.TimeSlots,
		"onlineOrdering":             cfg.Features.OnlineOrderingEnabled,
		"onlineStore":                cfg.Features.OnlineStoreEnabled,
		"teamArea":                   cfg.Features.TeamAreaEnabled,
		"loyaltyEnabled":             cfg.Features.LoyaltyEnabled,
		"loyaltyConfig":              cfg.Features.Loyalty,
		"couponsEnabled":             cfg.Features.CouponsEnabled,
		"coupons":                    cfg.Features.Coupons,

		"contactMethods": cfg.Contact.ContactMethods,
		"socialMedia":    cfg.Contact.SocialMedia,
		"phone":          cfg.Contact.Phone,
		"email":          cfg.Contact.Email,
		"address":        cfg.Contact.Address,

		"selectedPages": cfg.Pages.SelectedPages,
		"customPages":   cfg.Pages.CustomPages,

		"paymentOptions": cfg.Payments.PaymentOptions,
		"offers":         cfg.Payments.Offers,
		"offerBanner":    cfg.Payments.OfferBanner,

		"status":       cfg.Publishing.Status,
		"publishedUrl": cfg.Publishing.PublishedURL,
		"previewUrl":   cfg.Publishing.PreviewURL,
		"publishedAt":  cfg.Publishing.PublishedAt,
		"createdAt":    cfg.Publishing.CreatedAt,
		"updatedAt":    cfg.Publishing.UpdatedAt,
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// mergeHours parte del horario por defecto del tipo y superpone los días
// presentes en la entrada. El resultado tiene siempre exactamente los siete
// días; claves que no sean un día válido se descartan.
func mergeHours(def, in entity.OpeningHours) entity.OpeningHours {
	out := make(entity.OpeningHours, len(entity.Weekdays))
	for day, h := range def {
		out[day] = h
	}
	for _, day := range entity.Weekdays {
		if h, ok := in[day]; ok {
			out[day] = h
		}
	}
	return out
}
