package entity

import "github.com/shopspring/decimal"

// DisplayRules reglas de visibilidad contextual de un ítem de carta.
// Un puntero nil en cualquier campo significa "sin restricción".
// StartHour/EndHour en horas [0,23]; EndHour < StartHour indica ventana que
// cruza la medianoche (ej. 22:00–06:00). DaysOfWeek usa 0=domingo..6=sábado.
type DisplayRules struct {
	StartHour       *int   `json:"startHour,omitempty"`
	EndHour         *int   `json:"endHour,omitempty"`
	DaysOfWeek      []int  `json:"daysOfWeek,omitempty"`
	MinGuests       *int   `json:"minGuests,omitempty"`
	MaxGuests       *int   `json:"maxGuests,omitempty"`
	SpecialOccasion string `json:"specialOccasion,omitempty"`
}

// MenuItem ítem de la carta. Los campos de Liquid Menu (DisplayRules,
// Priority, señales de recencia) son un superset opcional: un ítem sin ellos
// se comporta como siempre visible con prioridad por defecto.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Image       *ImageRef       `json:"image,omitempty"`
	Emoji       string          `json:"emoji,omitempty"`
	Available   bool            `json:"available"`
	Category    string          `json:"category,omitempty"`
	IsHighlight bool            `json:"isHighlight,omitempty"`

	// Extensión Liquid Menu
	DisplayRules          *DisplayRules `json:"displayRules,omitempty"`
	Priority              *int          `json:"priority,omitempty"`
	LastOrderedMinutesAgo *int          `json:"lastOrderedMinutesAgo,omitempty"`
	RecentOrderCount      int           `json:"recentOrderCount,omitempty"`
}
