package configurator_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitr/sitebuilder-api/internal/application/configurator"
	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/defaults"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

func snapshotWithName(name string) *entity.Configuration {
	cfg := defaults.NewConfiguration("user-1", entity.BusinessTypeCafe)
	cfg.Business.Name = name
	return cfg
}

// ──────────────────────────────────────────────────────────────────────────────
// Acotación del diario
// ──────────────────────────────────────────────────────────────────────────────

// Tras 60 guardados el diario tiene exactamente 50 registros: los 50 más
// recientes, en orden cronológico.
func TestStepLog_AcotadoACincuenta(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	for i := 1; i <= 60; i++ {
		l.SaveStep(i, fmt.Sprintf("step-%d", i), "field_edit", nil, snapshotWithName("Test"))
	}

	require.Equal(t, 50, l.Len())
	steps := l.Steps()
	assert.Equal(t, 11, steps[0].StepNumber, "los más antiguos se descartan primero")
	assert.Equal(t, 60, steps[49].StepNumber)
	for i := 1; i < len(steps); i++ {
		assert.False(t, steps[i].Timestamp.Before(steps[i-1].Timestamp),
			"los registros deben quedar en orden cronológico")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Restauración
// ──────────────────────────────────────────────────────────────────────────────

// La restauración repone el snapshot completo del índice, no un replay.
func TestStepLog_RestoreToStep(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	l.SaveStep(1, "welcome", "type_selected", nil, snapshotWithName("Erster Stand"))
	l.SaveStep(2, "design", "color_changed", nil, snapshotWithName("Zweiter Stand"))

	cfg, err := l.RestoreToStep(0)
	require.NoError(t, err)
	assert.Equal(t, "Erster Stand", cfg.Business.Name)

	// El snapshot devuelto es una copia.
	cfg.Business.Name = "mutado"
	again, err := l.RestoreToStep(0)
	require.NoError(t, err)
	assert.Equal(t, "Erster Stand", again.Business.Name)
}

func TestStepLog_RestoreFueraDeRango(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	l.SaveStep(1, "welcome", "type_selected", nil, snapshotWithName("Test"))

	_, err := l.RestoreToStep(5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = l.RestoreToStep(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestStepLog_ResumenVacioEsPlaceholder(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	assert.Equal(t, "nothing was loaded: Your Business © 2025 Your Business", l.Summary())
}

func TestStepLog_ResumenDelUltimoRegistro(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	l.SaveStep(3, "content", "menu_edited", nil, snapshotWithName("Kaffeehaus Brandt"))

	s := l.Summary()
	assert.Contains(t, s, "Kaffeehaus Brandt")
	assert.Contains(t, s, "menu_edited")
	assert.Contains(t, s, "3")
}

// ──────────────────────────────────────────────────────────────────────────────
// Export / Import
// ──────────────────────────────────────────────────────────────────────────────

func TestStepLog_ExportImportRoundTrip(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	l.SaveStep(1, "welcome", "type_selected", map[string]any{"type": "cafe"}, snapshotWithName("Export Test"))

	blob, err := l.Export(snapshotWithName("Aktueller Stand"))
	require.NoError(t, err)

	other := configurator.NewStepLog(nil, zerolog.Nop())
	current, err := other.Import(blob)
	require.NoError(t, err)
	require.Equal(t, 1, other.Len())
	assert.Equal(t, "Export Test", other.Steps()[0].Snapshot.Business.Name)
	require.NotNil(t, current)
	assert.Equal(t, "Aktueller Stand", current.Business.Name)
}

// Un blob sin la forma esperada se rechaza sin tocar el diario existente.
func TestStepLog_ImportRechazaFormaInvalida(t *testing.T) {
	l := configurator.NewStepLog(nil, zerolog.Nop())
	l.SaveStep(1, "welcome", "type_selected", nil, snapshotWithName("Intakt"))

	for _, blob := range []string{
		`{"foo": 1}`,
		`{"steps": "kein array"}`,
		`[1,2,3]`,
		`no json`,
	} {
		_, err := l.Import([]byte(blob))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "blob: %s", blob)
		assert.Equal(t, 1, l.Len(), "un import rechazado no debe mutar el diario")
		assert.Equal(t, "Intakt", l.Steps()[0].Snapshot.Business.Name)
	}
}

// El import también recorta a los 50 más recientes.
func TestStepLog_ImportRecorta(t *testing.T) {
	steps := make([]configurator.StepRecord, 0, 70)
	for i := 1; i <= 70; i++ {
		steps = append(steps, configurator.StepRecord{StepNumber: i, StepID: "s", Action: "a"})
	}
	blob, err := json.Marshal(map[string]any{"steps": steps})
	require.NoError(t, err)

	l := configurator.NewStepLog(nil, zerolog.Nop())
	_, err = l.Import(blob)
	require.NoError(t, err)
	assert.Equal(t, 50, l.Len())
	assert.Equal(t, 21, l.Steps()[0].StepNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia e hidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestStepLog_HidratacionDesdeEspejo(t *testing.T) {
	storage := newFakeStorage()
	first := configurator.NewStepLog(storage, zerolog.Nop())
	first.SaveStep(1, "welcome", "type_selected", nil, snapshotWithName("Persistiert"))

	second := configurator.NewStepLog(storage, zerolog.Nop())
	second.Hydrate()
	require.Equal(t, 1, second.Len())
	assert.Equal(t, "Persistiert", second.Steps()[0].Snapshot.Business.Name)
}

func TestStepLog_HidratacionCorruptaReinicia(t *testing.T) {
	storage := newFakeStorage()
	require.NoError(t, storage.Set("configurator:steps", "[{corrupto"))

	l := configurator.NewStepLog(storage, zerolog.Nop())
	l.Hydrate()

	assert.Equal(t, 0, l.Len())
	_, ok := storage.value("configurator:steps")
	assert.False(t, ok, "la entrada corrupta debe limpiarse")
}

// El diario es un observador: conectado a un Store registra cada transición
// con el snapshot vigente.
func TestStepLog_ComoObservadorDelStore(t *testing.T) {
	s := newStore(nil)
	l := configurator.NewStepLog(nil, zerolog.Nop())
	s.Subscribe(func(cfg *entity.Configuration) {
		l.SaveStep(s.Step(), "wizard", "state_changed", nil, cfg)
	})

	s.Business().SetType(entity.BusinessTypeCafe)
	s.Business().SetName("Beobachtet")

	require.Equal(t, 2, l.Len())
	assert.Equal(t, "Beobachtet", l.Steps()[1].Snapshot.Business.Name)
}
