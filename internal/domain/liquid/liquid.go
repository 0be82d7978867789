// Package liquid implementa el motor "Liquid Menu": filtrado y orden
// contextual de la carta según hora, día, número de comensales y señales de
// recencia. Es un pipeline puro: sin estado, sin I/O y determinista para un
// contexto dado. El reloj nunca se lee dentro del pipeline; el contexto
// (incluido Now) siempre se inyecta.
package liquid

import (
	"time"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// Context contexto de evaluación. Guests nil desactiva el filtro por
// comensales (el ítem siempre pasa esa etapa).
type Context struct {
	Now             time.Time
	CurrentHour     int // 0-23
	DayOfWeek       int // 0=domingo..6=sábado
	Guests          *int
	SpecialOccasion string
}

// NewContext deriva un contexto a partir de un instante concreto.
func NewContext(now time.Time) Context {
	return Context{
		Now:         now,
		CurrentHour: now.Hour(),
		DayOfWeek:   int(now.Weekday()),
	}
}

// AppliedRules indica, por etapa de filtrado, si algún ítem fue excluido por
// esa etapa. Permite al editor explicar por qué un ítem no se muestra.
type AppliedRules struct {
	TimeFiltering            bool `json:"timeFiltering"`
	DayFiltering             bool `json:"dayFiltering"`
	GuestFiltering           bool `json:"guestFiltering"`
	SpecialOccasionFiltering bool `json:"specialOccasionFiltering"`
}

// Result salida del pipeline. SuggestedCategory y ContextualMessage se
// derivan solo de la hora, con independencia de qué ítems quedaron: son una
// pista de UX, no una garantía de resultados.
type Result struct {
	Items             []entity.MenuItem `json:"items"`
	AppliedRules      AppliedRules      `json:"appliedRules"`
	SuggestedCategory string            `json:"suggestedCategory,omitempty"`
	ContextualMessage string            `json:"contextualMessage,omitempty"`
}

// DefaultPriority puntuación base de un ítem sin prioridad explícita.
const DefaultPriority = 50

// categoryOrder desempate por categoría (mayor = antes en la lista).
var categoryOrder = map[string]float64{
	"breakfast":      5,
	"coffee":         5,
	"brunch":         4.5,
	"lunch":          4,
	"lunch-specials": 4,
	"appetizers":     3.5,
	"mains":          3,
	"salads":         3,
	"sides":          2.5,
	"desserts":       2,
	"drinks":         2,
	"cocktails":      1.5,
	"wine":           1.5,
	"beer":           1.5,
	"non-alcoholic":  1,
	"snacks":         0.5,
	"other":          0,
}
