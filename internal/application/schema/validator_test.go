package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitr/sitebuilder-api/internal/application/schema"
	"github.com/maitr/sitebuilder-api/internal/domain/defaults"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var templateIDs = []string{"minimalist", "modern", "stylish", "cozy"}

func newValidator() *schema.Validator {
	return schema.New(templateIDs)
}

func validConfig() *entity.Configuration {
	cfg := defaults.NewConfiguration("user-1", entity.BusinessTypeCafe)
	cfg.Business.Name = "Café Sonnenschein"
	return cfg
}

func fieldRules(err error) map[string]string {
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	rules := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		rules[f.Field] = f.Rule
	}
	return rules
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ConfiguracionDeDefaultsEsValida(t *testing.T) {
	// Los defaults por tipo deben pasar el esquema sin tocar nada más que el nombre.
	for _, bt := range []string{entity.BusinessTypeCafe, entity.BusinessTypeRestaurant, entity.BusinessTypeBar} {
		cfg := defaults.NewConfiguration("user-1", bt)
		cfg.Business.Name = "Testbetrieb"
		assert.NoError(t, newValidator().Validate(cfg), "tipo %s", bt)
	}
}

// El validador debe reportar TODOS los campos fallidos, no solo el primero.
func TestValidate_AcumulaTodosLosErrores(t *testing.T) {
	cfg := validConfig()
	cfg.Business.Name = "  "
	cfg.Business.Type = "foodtruck"
	cfg.Design.PrimaryColor = "blue"

	err := newValidator().Validate(cfg)
	require.Error(t, err)

	rules := fieldRules(err)
	assert.Equal(t, "required", rules["business.name"])
	assert.Equal(t, "enum", rules["business.type"])
	assert.Equal(t, "hex_color", rules["design.primaryColor"])
}

func TestValidate_ColoresHexEstrictos(t *testing.T) {
	for _, tc := range []struct {
		color string
		valid bool
	}{
		{"#2563EB", true},
		{"#abcdef", true},
		{"#FFF", false},      // forma corta no admitida
		{"2563EB", false},    // falta el #
		{"#2563EG", false},   // dígito fuera de rango
		{"#2563EB ", false},  // espacio final
		{"", false},
	} {
		cfg := validConfig()
		cfg.Design.PrimaryColor = tc.color
		err := newValidator().Validate(cfg)
		if tc.valid {
			assert.NoError(t, err, "color %q debería ser válido", tc.color)
		} else {
			assert.Error(t, err, "color %q debería rechazarse", tc.color)
		}
	}
}

func TestValidate_ColoresOpcionalesVaciosPermitidos(t *testing.T) {
	cfg := validConfig()
	cfg.Design.PriceColor = ""
	cfg.Design.HeaderFontColor = ""
	cfg.Features.ReservationButtonColor = ""
	assert.NoError(t, newValidator().Validate(cfg))
}

func TestValidate_PlantillaDesconocida(t *testing.T) {
	cfg := validConfig()
	cfg.Design.Template = "brutalist"
	rules := fieldRules(newValidator().Validate(cfg))
	assert.Equal(t, "enum", rules["design.template"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Horarios
// ──────────────────────────────────────────────────────────────────────────────

// El mapa de horarios debe tener exactamente las siete claves de día en minúsculas.
func TestValidate_HorariosExactamenteSieteDias(t *testing.T) {
	cfg := validConfig()
	delete(cfg.Content.OpeningHours, "sunday")
	rules := fieldRules(newValidator().Validate(cfg))
	assert.Contains(t, rules, "content.openingHours")
	assert.Equal(t, "weekday_map", rules["content.openingHours.sunday"])

	cfg = validConfig()
	cfg.Content.OpeningHours["Sunday"] = entity.DayHours{Open: "09:00", Close: "17:00"}
	rules = fieldRules(newValidator().Validate(cfg))
	assert.Equal(t, "weekday_map", rules["content.openingHours.Sunday"],
		"las claves con mayúsculas no son días válidos")
}

func TestValidate_HorasFormatoHHMM(t *testing.T) {
	for _, tc := range []struct {
		hora  string
		valid bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"09:30", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"0930", false},
	} {
		cfg := validConfig()
		h := cfg.Content.OpeningHours["monday"]
		h.Open = tc.hora
		cfg.Content.OpeningHours["monday"] = h
		err := newValidator().Validate(cfg)
		if tc.valid {
			assert.NoError(t, err, "hora %q debería ser válida", tc.hora)
		} else {
			rules := fieldRules(err)
			assert.Equal(t, "time_format", rules["content.openingHours.monday.open"],
				"hora %q debería rechazarse", tc.hora)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Colecciones e ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ColeccionesNuncaNulas(t *testing.T) {
	cfg := validConfig()
	cfg.Content.MenuItems = nil
	cfg.Payments.Offers = nil
	rules := fieldRules(newValidator().Validate(cfg))
	assert.Equal(t, "not_nil", rules["content.menuItems"])
	assert.Equal(t, "not_nil", rules["payments.offers"])
}

func TestValidate_IdsDeMenuUnicos(t *testing.T) {
	cfg := validConfig()
	cfg.Content.MenuItems = append(cfg.Content.MenuItems, cfg.Content.MenuItems[0])
	err := newValidator().Validate(cfg)
	require.Error(t, err)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "unique", verr.Fields[0].Rule)
}

func TestValidate_HomeSiemprePresente(t *testing.T) {
	cfg := validConfig()
	cfg.Pages.SelectedPages = []string{"menu", "contact"}
	// HasPage trata home como implícito, así que la lista sin home sigue siendo válida.
	assert.NoError(t, newValidator().Validate(cfg))
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateSafe
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateSafe_NoDevuelveError(t *testing.T) {
	cfg := validConfig()
	cfg.Business.Name = ""

	res := newValidator().ValidateSafe(cfg)
	assert.False(t, res.Valid)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, "business.name", res.Errors[0].Field)

	cfg.Business.Name = "Café Sonnenschein"
	res = newValidator().ValidateSafe(cfg)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo estricto sobre JSON crudo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateStrictJSON_RechazaClavesDesconocidas(t *testing.T) {
	raw := []byte(`{
		"business": {"name": "Test", "type": "cafe", "tagline": "no existe"},
		"design": {"template": "minimalist"}
	}`)
	err := newValidator().ValidateStrictJSON(raw)
	require.Error(t, err)
	rules := fieldRules(err)
	assert.Equal(t, "unknown_key", rules["business.tagline"])
}

func TestValidateStrictJSON_ClavesAnidadasEnArrays(t *testing.T) {
	raw := []byte(`{
		"content": {"menuItems": [{"id": "1", "name": "Espresso", "calories": 5}]}
	}`)
	err := newValidator().ValidateStrictJSON(raw)
	require.Error(t, err)
	rules := fieldRules(err)
	assert.Equal(t, "unknown_key", rules["content.menuItems[0].calories"])
}

func TestValidateStrictJSON_AceptaPayloadConocido(t *testing.T) {
	raw := []byte(`{
		"business": {"name": "Test", "type": "cafe", "domain": {"hasDomain": false}},
		"content": {
			"menuItems": [{"id": "1", "name": "Espresso", "price": "2.50", "displayRules": {"startHour": 6, "endHour": 11}}],
			"openingHours": {"monday": {"open": "08:00", "close": "18:00", "closed": false}}
		},
		"contact": {"socialMedia": {"instagram": "@test"}}
	}`)
	assert.NoError(t, newValidator().ValidateStrictJSON(raw))
}

func TestValidateStrictJSON_JSONInvalido(t *testing.T) {
	err := newValidator().ValidateStrictJSON([]byte(`{not json`))
	require.Error(t, err)
	rules := fieldRules(err)
	assert.Equal(t, "json", rules[""])
}
