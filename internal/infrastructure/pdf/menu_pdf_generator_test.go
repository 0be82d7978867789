package pdf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// splitEvery no debe partir runas: los textos alemanes traen umlauts
// multibyte y cada trozo debe seguir siendo UTF-8 válido.
func TestSplitEvery_NoParteRunas(t *testing.T) {
	s := strings.Repeat("ü", 10) // 10 runas, 20 bytes

	parts := splitEvery(s, 4)
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.True(t, utf8.ValidString(p), "trozo inválido: %q", p)
	}
	assert.Equal(t, s, strings.Join(parts, ""))

	assert.Empty(t, splitEvery("", 4))
	assert.Equal(t, []string{"Brezn"}, splitEvery("Brezn", 80))
}

// Los precios se formatean en estilo alemán con coma decimal.
func TestFormatPrice(t *testing.T) {
	item := entity.MenuItem{Price: decimal.NewFromFloat(3.9)}
	assert.Equal(t, "3,90 €", formatPrice(item))

	item.Price = decimal.NewFromInt(12)
	assert.Equal(t, "12,00 €", formatPrice(item))
}
