package liquid

import (
	"sort"
	"strings"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// Evaluate ejecuta el pipeline completo sobre la carta: filtro por ventana
// horaria, por día de semana y por comensales; puntuación; orden estable; y
// resumen contextual. Entrada vacía devuelve resultado vacío con todos los
// flags de AppliedRules en false.
func Evaluate(items []entity.MenuItem, ctx Context) Result {
	res := Result{Items: []entity.MenuItem{}}

	type scored struct {
		item  entity.MenuItem
		score int
		index int
	}
	kept := make([]scored, 0, len(items))

	for i, item := range items {
		byTime := visibleByTime(item, ctx.CurrentHour)
		byDay := visibleByDay(item, ctx.DayOfWeek)
		byGuests := visibleByGuests(item, ctx.Guests)

		if !byTime {
			res.AppliedRules.TimeFiltering = true
		}
		if !byDay {
			res.AppliedRules.DayFiltering = true
		}
		if !byGuests {
			res.AppliedRules.GuestFiltering = true
		}
		if byTime && byDay && byGuests {
			kept = append(kept, scored{item: item, score: priorityScore(item, ctx), index: i})
		}
	}

	// Orden estable: puntuación desc, tabla de categorías desc, orden original.
	sort.SliceStable(kept, func(a, b int) bool {
		if kept[a].score != kept[b].score {
			return kept[a].score > kept[b].score
		}
		ca := categoryOrder[strings.ToLower(kept[a].item.Category)]
		cb := categoryOrder[strings.ToLower(kept[b].item.Category)]
		if ca != cb {
			return ca > cb
		}
		return kept[a].index < kept[b].index
	})

	for _, s := range kept {
		res.Items = append(res.Items, s.item)
	}

	res.SuggestedCategory, res.ContextualMessage = contextSummary(ctx.CurrentHour)
	return res
}

// visibleByTime aplica la ventana horaria [StartHour, EndHour). Cuando
// StartHour > EndHour la ventana cruza la medianoche (ej. 22:00–06:00).
func visibleByTime(item entity.MenuItem, hour int) bool {
	r := item.DisplayRules
	if r == nil || r.StartHour == nil || r.EndHour == nil {
		return true
	}
	start, end := *r.StartHour, *r.EndHour
	if start < end {
		return hour >= start && hour < end
	}
	// Ventana nocturna: visible desde start hasta medianoche y de 0 hasta end.
	return hour >= start || hour < end
}

// visibleByDay aplica DaysOfWeek (0=domingo..6=sábado); sin regla = siempre.
func visibleByDay(item entity.MenuItem, day int) bool {
	r := item.DisplayRules
	if r == nil || len(r.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range r.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// visibleByGuests aplica el rango inclusivo [MinGuests, MaxGuests]. Sin
// número de comensales en el contexto, la regla se omite por completo.
func visibleByGuests(item entity.MenuItem, guests *int) bool {
	r := item.DisplayRules
	if guests == nil || r == nil {
		return true
	}
	if r.MinGuests != nil && *guests < *r.MinGuests {
		return false
	}
	if r.MaxGuests != nil && *guests > *r.MaxGuests {
		return false
	}
	return true
}

// priorityScore calcula la puntuación: base explícita (o 50), +20 si la
// categoría coincide con la franja horaria (breakfast 06–11, lunch 11–15,
// dinner 17–23), +15 para cocktail/snack en horario nocturno (22–06) y +10
// si el ítem se pidió en los últimos 30 minutos (prueba social).
func priorityScore(item entity.MenuItem, ctx Context) int {
	score := DefaultPriority
	if item.Priority != nil {
		score = *item.Priority
	}

	hour := ctx.CurrentHour
	if item.Category != "" {
		cat := strings.ToLower(item.Category)
		switch {
		case hour >= 6 && hour < 11 && strings.Contains(cat, "breakfast"):
			score += 20
		case hour >= 11 && hour < 15 && strings.Contains(cat, "lunch"):
			score += 20
		case hour >= 17 && hour < 23 && strings.Contains(cat, "dinner"):
			score += 20
		case hour >= 22 || hour < 6:
			if strings.Contains(cat, "cocktail") || strings.Contains(cat, "snack") {
				score += 15
			}
		}
	}

	if item.LastOrderedMinutesAgo != nil && *item.LastOrderedMinutesAgo < 30 {
		score += 10
	}
	return score
}

// contextSummary deriva la categoría sugerida y el mensaje contextual
// exclusivamente de la hora actual.
func contextSummary(hour int) (category, message string) {
	switch {
	case hour >= 6 && hour < 11:
		return "Breakfast", "Breakfast available until 11:00"
	case hour >= 11 && hour < 15:
		return "Lunch Specials", "Lunch specials available until 15:00"
	case hour >= 15 && hour < 17:
		return "Afternoon Menu", "Afternoon menu available"
	case hour >= 17 && hour < 23:
		return "Dinner", "Full dinner menu available"
	default:
		return "Late Night", "Late night menu available"
	}
}
