package configurator

import (
	"encoding/json"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maitr/sitebuilder-api/internal/domain/defaults"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// Claves bajo las que el configurador espeja su estado en el Storage.
const (
	stateKey = "configurator:state"
	stepsKey = "configurator:steps"
)

// DefaultDebounce ventana de coalescing del espejo a Storage.
const DefaultDebounce = 400 * time.Millisecond

var (
	storeHexRe  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	storeTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Subscriber recibe un snapshot inmutable tras cada mutación, de forma
// síncrona: cuando la acción retorna, todos los suscriptores ya observaron
// el nuevo estado.
type Subscriber func(cfg *entity.Configuration)

// Store es la única fuente de verdad mutable de la configuración en curso.
// Toda mutación pasa por los namespaces de acciones por dominio (Business,
// Design, Content, Features, Contact, Pages, Payments, Publishing); ningún
// consumidor asigna campos del agregado directamente. Cada acción valida su
// entrada estrecha, aplica un merge superficial solo sobre su sub-registro
// y notifica síncronamente. El snapshot se espeja a Storage con debounce;
// si Storage no está disponible el Store sigue operando solo en memoria.
type Store struct {
	mu      sync.Mutex
	cfg     *entity.Configuration
	step    int // paso actual del asistente; transitorio, no se espeja
	subs    map[int]Subscriber
	nextSub int

	storage  Storage
	norm     *Normalizer
	debounce time.Duration
	timer    *time.Timer
	log      zerolog.Logger
	now      func() time.Time
}

// NewStore construye un Store vacío (sin tipo de negocio elegido todavía).
// storage puede ser nil: el Store opera entonces solo en memoria.
func NewStore(storage Storage, norm *Normalizer, debounce time.Duration, log zerolog.Logger) *Store {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Store{
		cfg:      defaults.NewConfiguration("", ""),
		subs:     make(map[int]Subscriber),
		storage:  storage,
		norm:     norm,
		debounce: debounce,
		log:      log,
		now:      time.Now,
	}
}

// Hydrate restaura el estado espejado en Storage, si existe. Un snapshot
// corrupto se descarta y se limpia la clave: el Store arranca fresco en
// lugar de iterar sobre los mismos datos malos.
func (s *Store) Hydrate() {
	if s.storage == nil {
		return
	}
	raw, ok, err := s.storage.Get(stateKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("storage no disponible, configurador solo en memoria")
		return
	}
	if !ok {
		return
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.log.Warn().Err(err).Msg("estado local corrupto, se descarta")
		_ = s.storage.Delete(stateKey)
		return
	}
	s.mu.Lock()
	s.cfg = s.norm.Denormalize(record)
	s.mu.Unlock()
}

// Current devuelve un snapshot profundo del estado actual.
func (s *Store) Current() *entity.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneConfiguration(s.cfg)
}

// Replace sustituye el estado completo (respuesta autoritativa del servidor
// tras guardar/publicar, o restauración desde el diario de pasos).
func (s *Store) Replace(cfg *entity.Configuration) {
	s.mutate(func(c *entity.Configuration) {
		*c = *cloneConfiguration(cfg)
	})
}

// Step devuelve el paso actual del asistente.
func (s *Store) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SetStep fija el paso actual. Pasos negativos se ajustan a cero.
func (s *Store) SetStep(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	s.step = n
}

// Subscribe registra un observador; devuelve la función de baja.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Flush escribe el snapshot pendiente a Storage de inmediato (disciplina
// flush-on-unmount: el último valor de una ráfaga nunca se pierde).
func (s *Store) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.mirror()
}

// Close detiene el debounce y hace el flush final.
func (s *Store) Close() {
	s.Flush()
}

// mutate aplica fn bajo lock, sella publishing.updatedAt, agenda el espejo
// y notifica a los suscriptores de forma síncrona antes de retornar. El
// sello es el que arbitra el guardado last-write-wins en el servidor.
func (s *Store) mutate(fn func(*entity.Configuration)) {
	s.mu.Lock()
	fn(s.cfg)
	s.cfg.Publishing.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	snapshot := cloneConfiguration(s.cfg)
	subs := make([]Subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.scheduleMirrorLocked()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

func (s *Store) scheduleMirrorLocked() {
	if s.storage == nil {
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, s.mirror)
		return
	}
	s.timer.Reset(s.debounce)
}

func (s *Store) mirror() {
	if s.storage == nil {
		return
	}
	s.mu.Lock()
	record := s.norm.Normalize(s.cfg)
	s.mu.Unlock()
	raw, err := json.Marshal(record)
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot no serializable")
		return
	}
	if err := s.storage.Set(stateKey, string(raw)); err != nil {
		// Degradación a solo-memoria: el estado en curso no se descarta.
		s.log.Warn().Err(err).Msg("espejo local falló, se continúa en memoria")
	}
}

func cloneConfiguration(cfg *entity.Configuration) *entity.Configuration {
	raw, err := json.Marshal(cfg)
	if err != nil {
		c := *cfg
		return &c
	}
	var out entity.Configuration
	if err := json.Unmarshal(raw, &out); err != nil {
		c := *cfg
		return &c
	}
	return &out
}

// ──────────────────────────────────────────────────────────────────────────────
// Namespaces de acciones
// ──────────────────────────────────────────────────────────────────────────────

func (s *Store) Business() BusinessActions     { return BusinessActions{s} }
func (s *Store) Design() DesignActions         { return DesignActions{s} }
func (s *Store) Content() ContentActions       { return ContentActions{s} }
func (s *Store) Features() FeatureActions      { return FeatureActions{s} }
func (s *Store) Contact() ContactActions       { return ContactActions{s} }
func (s *Store) Pages() PageActions            { return PageActions{s} }
func (s *Store) Payments() PaymentActions      { return PaymentActions{s} }
func (s *Store) Publishing() PublishingActions { return PublishingActions{s} }

// BusinessActions mutaciones del sub-registro business.
type BusinessActions struct{ s *Store }

func (a BusinessActions) SetName(name string) {
	a.s.mutate(func(c *entity.Configuration) { c.Business.Name = name })
}

// SetType cambia el tipo de negocio. Solo reemplaza por los defaults del
// nuevo tipo el contenido que sigue idéntico a los defaults del tipo
// anterior (o está vacío): lo que el usuario ya editó nunca se pisa.
func (a BusinessActions) SetType(businessType string) {
	if !entity.IsValidBusinessType(businessType) {
		a.s.log.Debug().Str("type", businessType).Msg("tipo de negocio desconocido, acción ignorada")
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		prev := c.Business.Type
		if prev == businessType {
			return
		}
		c.Business.Type = businessType
		td := defaults.ForType(businessType)

		// Primera elección de tipo: no hay preset previo que comparar,
		// se adoptan los defaults del tipo sobre lo que siga vacío.
		if prev == "" {
			if len(c.Content.MenuItems) == 0 {
				c.Content.MenuItems = td.MenuItems
			}
			if len(c.Content.OpeningHours) == 0 {
				c.Content.OpeningHours = td.OpeningHours
			}
			if len(c.Content.Categories) == 0 {
				c.Content.Categories = td.Categories
			}
			c.Features.ReservationsEnabled = td.Features.ReservationsEnabled
			c.Features.OnlineOrderingEnabled = td.Features.OnlineOrderingEnabled
			c.Features.OnlineStoreEnabled = td.Features.OnlineStoreEnabled
			c.Features.TeamAreaEnabled = td.Features.TeamAreaEnabled
			if samePages(c.Pages.SelectedPages, []string{"home"}) || len(c.Pages.SelectedPages) == 0 {
				c.Pages.SelectedPages = append([]string{"home"}, td.Pages...)
			}
			return
		}

		if len(c.Content.MenuItems) == 0 || defaults.IsDefaultMenu(c.Content.MenuItems, prev) {
			c.Content.MenuItems = td.MenuItems
		}
		if len(c.Content.OpeningHours) == 0 || defaults.IsDefaultHours(c.Content.OpeningHours, prev) {
			c.Content.OpeningHours = td.OpeningHours
		}
		if len(c.Content.Categories) == 0 || defaults.IsDefaultCategories(c.Content.Categories, prev) {
			c.Content.Categories = td.Categories
		}

		// Flags: se actualizan uno a uno solo si aún valen el preset previo.
		prevP := defaults.FeaturesFor(prev)
		if c.Features.ReservationsEnabled == prevP.ReservationsEnabled {
			c.Features.ReservationsEnabled = td.Features.ReservationsEnabled
		}
		if c.Features.OnlineOrderingEnabled == prevP.OnlineOrderingEnabled {
			c.Features.OnlineOrderingEnabled = td.Features.OnlineOrderingEnabled
		}
		if c.Features.OnlineStoreEnabled == prevP.OnlineStoreEnabled {
			c.Features.OnlineStoreEnabled = td.Features.OnlineStoreEnabled
		}
		if c.Features.TeamAreaEnabled == prevP.TeamAreaEnabled {
			c.Features.TeamAreaEnabled = td.Features.TeamAreaEnabled
		}

		if samePages(c.Pages.SelectedPages, append([]string{"home"}, defaults.PagesFor(prev)...)) {
			c.Pages.SelectedPages = append([]string{"home"}, td.Pages...)
		}
	})
}

func (a BusinessActions) SetLocation(location string) {
	a.s.mutate(func(c *entity.Configuration) { c.Business.Location = location })
}

func (a BusinessActions) SetSlogan(slogan string) {
	a.s.mutate(func(c *entity.Configuration) { c.Business.Slogan = slogan })
}

func (a BusinessActions) SetUniqueDescription(desc string) {
	a.s.mutate(func(c *entity.Configuration) { c.Business.UniqueDescription = desc })
}

func (a BusinessActions) SetLogo(logo *entity.ImageRef) {
	a.s.mutate(func(c *entity.Configuration) { c.Business.Logo = logo })
}

func (a BusinessActions) SetDomain(claim entity.DomainClaim) {
	a.s.mutate(func(c *entity.Configuration) { c.Business.Domain = claim })
}

// DesignActions mutaciones del sub-registro design. Los setters de color
// validan el formato hex antes de aplicar; un color inválido se ignora
// (formulario interactivo: nunca se lanza).
type DesignActions struct{ s *Store }

func (a DesignActions) SetTemplate(id string) {
	if id == "" {
		return
	}
	a.s.mutate(func(c *entity.Configuration) { c.Design.Template = id })
}

func (a DesignActions) setColor(target func(*entity.DesignConfig) *string, hex string) {
	if !storeHexRe.MatchString(hex) {
		a.s.log.Debug().Str("color", hex).Msg("color hex inválido, acción ignorada")
		return
	}
	a.s.mutate(func(c *entity.Configuration) { *target(&c.Design) = hex })
}

func (a DesignActions) SetPrimaryColor(hex string) {
	a.setColor(func(d *entity.DesignConfig) *string { return &d.PrimaryColor }, hex)
}

func (a DesignActions) SetSecondaryColor(hex string) {
	a.setColor(func(d *entity.DesignConfig) *string { return &d.SecondaryColor }, hex)
}

func (a DesignActions) SetBackgroundColor(hex string) {
	a.setColor(func(d *entity.DesignConfig) *string { return &d.BackgroundColor }, hex)
}

func (a DesignActions) SetFontColor(hex string) {
	a.setColor(func(d *entity.DesignConfig) *string { return &d.FontColor }, hex)
}

func (a DesignActions) SetPriceColor(hex string) {
	a.setColor(func(d *entity.DesignConfig) *string { return &d.PriceColor }, hex)
}

func (a DesignActions) SetFont(family, size string) {
	a.s.mutate(func(c *entity.Configuration) {
		if family != "" {
			c.Design.FontFamily = family
		}
		if size != "" {
			c.Design.FontSize = size
		}
	})
}

func (a DesignActions) SetHeaderStyle(fontColor, fontSize, backgroundColor string) {
	a.s.mutate(func(c *entity.Configuration) {
		if storeHexRe.MatchString(fontColor) {
			c.Design.HeaderFontColor = fontColor
		}
		if fontSize != "" {
			c.Design.HeaderFontSize = fontSize
		}
		if storeHexRe.MatchString(backgroundColor) {
			c.Design.HeaderBackgroundColor = backgroundColor
		}
	})
}

func (a DesignActions) SetBackground(backgroundType, image string) {
	if backgroundType != "color" && backgroundType != "image" {
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		c.Design.BackgroundType = backgroundType
		c.Design.BackgroundImage = image
	})
}

// ContentActions mutaciones del sub-registro content.
type ContentActions struct{ s *Store }

func (a ContentActions) SetMenuItems(items []entity.MenuItem) {
	a.s.mutate(func(c *entity.Configuration) {
		if items == nil {
			items = []entity.MenuItem{}
		}
		c.Content.MenuItems = items
	})
}

// AddMenuItem añade un ítem; si llega sin ID se le asigna uno estable.
func (a ContentActions) AddMenuItem(item entity.MenuItem) {
	a.s.mutate(func(c *entity.Configuration) {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		c.Content.MenuItems = append(c.Content.MenuItems, item)
	})
}

func (a ContentActions) UpdateMenuItem(item entity.MenuItem) {
	a.s.mutate(func(c *entity.Configuration) {
		for i := range c.Content.MenuItems {
			if c.Content.MenuItems[i].ID == item.ID {
				c.Content.MenuItems[i] = item
				return
			}
		}
	})
}

func (a ContentActions) RemoveMenuItem(id string) {
	a.s.mutate(func(c *entity.Configuration) {
		items := c.Content.MenuItems[:0]
		for _, it := range c.Content.MenuItems {
			if it.ID != id {
				items = append(items, it)
			}
		}
		c.Content.MenuItems = items
	})
}

func (a ContentActions) SetGallery(images []entity.GalleryImage) {
	a.s.mutate(func(c *entity.Configuration) {
		if images == nil {
			images = []entity.GalleryImage{}
		}
		c.Content.Gallery = images
	})
}

// SetOpeningDay fija el horario de un día. Día desconocido u horas con
// formato inválido se ignoran.
func (a ContentActions) SetOpeningDay(day string, hours entity.DayHours) {
	valid := false
	for _, d := range entity.Weekdays {
		if d == day {
			valid = true
			break
		}
	}
	if !valid || !storeTimeRe.MatchString(hours.Open) || !storeTimeRe.MatchString(hours.Close) {
		a.s.log.Debug().Str("day", day).Msg("horario inválido, acción ignorada")
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		if c.Content.OpeningHours == nil {
			c.Content.OpeningHours = entity.OpeningHours{}
		}
		c.Content.OpeningHours[day] = hours
	})
}

func (a ContentActions) SetCategories(cats []string) {
	a.s.mutate(func(c *entity.Configuration) {
		if cats == nil {
			cats = []string{}
		}
		c.Content.Categories = cats
	})
}

func (a ContentActions) SetDishImageVisibility(v string) {
	a.s.mutate(func(c *entity.Configuration) { c.Content.HomepageDishImageVisibility = v })
}

// FeatureActions mutaciones del sub-registro features. Entradas numéricas
// fuera de rango se ajustan al valor válido más cercano, no se rechazan.
type FeatureActions struct{ s *Store }

func (a FeatureActions) SetReservationsEnabled(on bool) {
	a.s.mutate(func(c *entity.Configuration) { c.Features.ReservationsEnabled = on })
}

// SetMaxGuests ajusta valores menores que 1 a 1.
func (a FeatureActions) SetMaxGuests(n int) {
	if n < 1 {
		n = 1
	}
	a.s.mutate(func(c *entity.Configuration) { c.Features.MaxGuests = n })
}

func (a FeatureActions) SetNotificationMethod(method string) {
	switch method {
	case "email", "sms", "whatsapp":
	default:
		return
	}
	a.s.mutate(func(c *entity.Configuration) { c.Features.NotificationMethod = method })
}

func (a FeatureActions) SetReservationButton(color, textColor, shape string) {
	a.s.mutate(func(c *entity.Configuration) {
		if storeHexRe.MatchString(color) {
			c.Features.ReservationButtonColor = color
		}
		if storeHexRe.MatchString(textColor) {
			c.Features.ReservationButtonTextColor = textColor
		}
		switch shape {
		case "rounded", "pill", "square":
			c.Features.ReservationButtonShape = shape
		}
	})
}

func (a FeatureActions) SetTimeSlots(slots []string) {
	a.s.mutate(func(c *entity.Configuration) {
		valid := make([]string, 0, len(slots))
		for _, slot := range slots {
			if storeTimeRe.MatchString(slot) {
				valid = append(valid, slot)
			}
		}
		c.Features.TimeSlots = valid
	})
}

func (a FeatureActions) SetOnlineOrdering(on bool) {
	a.s.mutate(func(c *entity.Configuration) { c.Features.OnlineOrderingEnabled = on })
}

func (a FeatureActions) SetOnlineStore(on bool) {
	a.s.mutate(func(c *entity.Configuration) { c.Features.OnlineStoreEnabled = on })
}

func (a FeatureActions) SetTeamArea(on bool) {
	a.s.mutate(func(c *entity.Configuration) { c.Features.TeamAreaEnabled = on })
}

// SetLoyaltyEnabled solo alterna el flag: la sub-configuración se conserva
// aunque el flag quede en false (sin pérdida al des-activar).
func (a FeatureActions) SetLoyaltyEnabled(on bool) {
	a.s.mutate(func(c *entity.Configuration) { c.Features.LoyaltyEnabled = on })
}

func (a FeatureActions) SetLoyaltyConfig(cfg entity.LoyaltyConfig) {
	if cfg.StampsForReward < 1 {
		cfg.StampsForReward = 1
	}
	a.s.mutate(func(c *entity.Configuration) { c.Features.Loyalty = cfg })
}

func (a FeatureActions) SetCouponsEnabled(on bool) {
	a.s.mutate(func(c *entity.Configuration) { c.Features.CouponsEnabled = on })
}

func (a FeatureActions) AddCoupon(coupon entity.Coupon) {
	a.s.mutate(func(c *entity.Configuration) {
		if coupon.ID == "" {
			coupon.ID = uuid.New().String()
		}
		if coupon.Discount < 0 {
			coupon.Discount = 0
		}
		if coupon.Discount > 100 {
			coupon.Discount = 100
		}
		c.Features.Coupons = append(c.Features.Coupons, coupon)
	})
}

func (a FeatureActions) RemoveCoupon(id string) {
	a.s.mutate(func(c *entity.Configuration) {
		coupons := c.Features.Coupons[:0]
		for _, cp := range c.Features.Coupons {
			if cp.ID != id {
				coupons = append(coupons, cp)
			}
		}
		c.Features.Coupons = coupons
	})
}

// ContactActions mutaciones del sub-registro contact.
type ContactActions struct{ s *Store }

func (a ContactActions) SetPhone(phone string) {
	a.s.mutate(func(c *entity.Configuration) { c.Contact.Phone = phone })
}

func (a ContactActions) SetEmail(email string) {
	a.s.mutate(func(c *entity.Configuration) { c.Contact.Email = email })
}

func (a ContactActions) SetAddress(address string) {
	a.s.mutate(func(c *entity.Configuration) { c.Contact.Address = address })
}

func (a ContactActions) SetContactMethods(methods []entity.ContactMethod) {
	a.s.mutate(func(c *entity.Configuration) {
		if methods == nil {
			methods = []entity.ContactMethod{}
		}
		c.Contact.ContactMethods = methods
	})
}

func (a ContactActions) SetSocialMedia(platform, handle string) {
	if platform == "" {
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		if c.Contact.SocialMedia == nil {
			c.Contact.SocialMedia = map[string]string{}
		}
		if handle == "" {
			delete(c.Contact.SocialMedia, platform)
			return
		}
		c.Contact.SocialMedia[platform] = handle
	})
}

// PageActions mutaciones del sub-registro pages. "home" es inmutable.
type PageActions struct{ s *Store }

func (a PageActions) SelectPage(id string) {
	if id == "" {
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		for _, p := range c.Pages.SelectedPages {
			if p == id {
				return
			}
		}
		c.Pages.SelectedPages = append(c.Pages.SelectedPages, id)
	})
}

// DeselectPage quita una página de la selección; quitar "home" se ignora.
func (a PageActions) DeselectPage(id string) {
	if id == "home" {
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		pages := c.Pages.SelectedPages[:0]
		for _, p := range c.Pages.SelectedPages {
			if p != id {
				pages = append(pages, p)
			}
		}
		c.Pages.SelectedPages = pages
	})
}

func (a PageActions) AddCustomPage(id string) {
	if id == "" {
		return
	}
	a.s.mutate(func(c *entity.Configuration) {
		for _, p := range c.Pages.CustomPages {
			if p == id {
				return
			}
		}
		c.Pages.CustomPages = append(c.Pages.CustomPages, id)
	})
}

func (a PageActions) RemoveCustomPage(id string) {
	a.s.mutate(func(c *entity.Configuration) {
		pages := c.Pages.CustomPages[:0]
		for _, p := range c.Pages.CustomPages {
			if p != id {
				pages = append(pages, p)
			}
		}
		c.Pages.CustomPages = pages
	})
}

// PaymentActions mutaciones del sub-registro payments.
type PaymentActions struct{ s *Store }

func (a PaymentActions) SetPaymentOptions(options []string) {
	a.s.mutate(func(c *entity.Configuration) {
		if options == nil {
			options = []string{}
		}
		c.Payments.PaymentOptions = options
	})
}

func (a PaymentActions) AddOffer(offer entity.Offer) {
	a.s.mutate(func(c *entity.Configuration) {
		if offer.ID == "" {
			offer.ID = uuid.New().String()
		}
		c.Payments.Offers = append(c.Payments.Offers, offer)
	})
}

func (a PaymentActions) RemoveOffer(id string) {
	a.s.mutate(func(c *entity.Configuration) {
		offers := c.Payments.Offers[:0]
		for _, o := range c.Payments.Offers {
			if o.ID != id {
				offers = append(offers, o)
			}
		}
		c.Payments.Offers = offers
	})
}

func (a PaymentActions) SetOfferBanner(banner entity.OfferBanner) {
	if banner.BackgroundColor != "" && !storeHexRe.MatchString(banner.BackgroundColor) {
		banner.BackgroundColor = ""
	}
	a.s.mutate(func(c *entity.Configuration) { c.Payments.OfferBanner = banner })
}

// PublishingActions refleja en el estado local el resultado autoritativo
// del backend; las transiciones reales de publicación viven en el usecase.
type PublishingActions struct{ s *Store }

func (a PublishingActions) MarkPublished(publishedURL, publishedAt string) {
	a.s.mutate(func(c *entity.Configuration) {
		c.Publishing.Status = entity.StatusPublished
		c.Publishing.PublishedURL = publishedURL
		c.Publishing.PublishedAt = publishedAt
	})
}

func (a PublishingActions) SetPreviewURL(url string) {
	a.s.mutate(func(c *entity.Configuration) { c.Publishing.PreviewURL = url })
}

func samePages(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
