package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen longitud máxima de la parte derivada del nombre del negocio.
const maxSlugLen = 30

// umlauts transcripción alemana antes del plegado genérico de diacríticos,
// para que "Müller" produzca "mueller" y no "muller".
var umlauts = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
	"Ä", "ae", "Ö", "oe", "Ü", "ue",
)

// asciiFold descompone y elimina marcas diacríticas ("é" -> "e").
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug deriva el subdominio de publicación a partir del nombre del negocio:
// minúsculas, diacríticos plegados a ASCII, todo lo no alfanumérico a guión,
// recortado a 30 caracteres. Es determinista: el mismo nombre produce
// siempre el mismo slug (base de la idempotencia de publicación).
func Slug(name string) string {
	s := umlauts.Replace(name)
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true // sin guión inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > maxSlugLen {
		out = strings.Trim(out[:maxSlugLen], "-")
	}
	if out == "" {
		out = "site"
	}
	return out
}
