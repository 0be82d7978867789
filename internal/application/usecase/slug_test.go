package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maitr/sitebuilder-api/internal/application/usecase"
)

func TestSlug(t *testing.T) {
	for _, tc := range []struct {
		name string
		want string
	}{
		{"Café Müller", "cafe-mueller"},                // umlauts a la alemana, acentos plegados
		{"Zur Goldenen Gans!", "zur-goldenen-gans"},    // puntuación a guión
		{"Weißbier & Brezn", "weissbier-brezn"},        // ß -> ss, símbolos colapsados
		{"  CAFÉ  SONNENSCHEIN  ", "cafe-sonnenschein"},
		{"Das allerbeste Wirtshaus am Tegernsee", "das-allerbeste-wirtshaus-am-te"}, // recorte a 30
		{"日本食堂", "site"},     // sin ASCII utilizable: respaldo fijo
		{"", "site"},
		{"123 Bar", "123-bar"},
	} {
		assert.Equal(t, tc.want, usecase.Slug(tc.name), "nombre: %q", tc.name)
	}
}

// El slug es determinista: base de la idempotencia de publicación.
func TestSlug_Determinista(t *testing.T) {
	a := usecase.Slug("Café Müller")
	b := usecase.Slug("Café Müller")
	assert.Equal(t, a, b)
}
