package configurator

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

// maxStepRecords acota el diario a los registros más recientes (disciplina
// de ring buffer, no historial ilimitado).
const maxStepRecords = 50

// emptySummary texto fijo cuando el diario está vacío.
const emptySummary = "nothing was loaded: Your Business © 2025 Your Business"

// StepRecord un registro del diario: paso, acción y snapshot completo del
// estado. La restauración repone el snapshot entero, no reproduce deltas.
type StepRecord struct {
	StepNumber int                   `json:"stepNumber"`
	StepID     string                `json:"stepId"`
	Timestamp  time.Time             `json:"timestamp"`
	Action     string                `json:"action"`
	Data       map[string]any        `json:"data,omitempty"`
	Snapshot   *entity.Configuration `json:"formDataSnapshot"`
}

// stepExport forma serializada del diario completo para export/import.
type stepExport struct {
	Steps        []StepRecord          `json:"steps"`
	CurrentState *entity.Configuration `json:"currentState,omitempty"`
	ExportedAt   time.Time             `json:"exportedAt"`
}

// StepLog es el diario local acotado de transiciones del asistente. Es un
// observador del Store, no una fuente de verdad: el backend sigue siendo
// autoritativo y perder el diario es recuperable (peor UX, no pérdida de
// datos). Se espeja a Storage en cada escritura, con la misma degradación
// a solo-memoria que el Store.
type StepLog struct {
	mu      sync.Mutex
	steps   []StepRecord
	storage Storage
	log     zerolog.Logger
	now     func() time.Time
}

func NewStepLog(storage Storage, log zerolog.Logger) *StepLog {
	return &StepLog{storage: storage, log: log, now: time.Now}
}

// Hydrate carga el diario espejado. Un diario corrupto se descarta y se
// limpia la clave, arrancando con un diario fresco.
func (l *StepLog) Hydrate() {
	if l.storage == nil {
		return
	}
	raw, ok, err := l.storage.Get(stepsKey)
	if err != nil || !ok {
		return
	}
	var steps []StepRecord
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		l.log.Warn().Err(err).Msg("diario de pasos corrupto, se descarta")
		_ = l.storage.Delete(stepsKey)
		return
	}
	l.mu.Lock()
	l.steps = trimSteps(steps)
	l.mu.Unlock()
}

// SaveStep añade un registro y recorta el diario a los 50 más recientes
// (los más antiguos se descartan primero).
func (l *StepLog) SaveStep(stepNumber int, stepID, action string, data map[string]any, snapshot *entity.Configuration) {
	l.mu.Lock()
	l.steps = trimSteps(append(l.steps, StepRecord{
		StepNumber: stepNumber,
		StepID:     stepID,
		Timestamp:  l.now(),
		Action:     action,
		Data:       data,
		Snapshot:   cloneConfiguration(snapshot),
	}))
	steps := append([]StepRecord(nil), l.steps...)
	l.mu.Unlock()
	l.persist(steps)
}

// Len devuelve el número de registros en el diario.
func (l *StepLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.steps)
}

// Steps devuelve una copia de los registros en orden cronológico.
func (l *StepLog) Steps() []StepRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]StepRecord(nil), l.steps...)
}

// RestoreToStep devuelve el snapshot completo guardado en ese índice. El
// llamador lo repone en el Store (restauración total, no replay).
func (l *StepLog) RestoreToStep(index int) (*entity.Configuration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.steps) {
		return nil, fmt.Errorf("%w: índice de paso %d fuera de rango", domain.ErrInvalidInput, index)
	}
	return cloneConfiguration(l.steps[index].Snapshot), nil
}

// Summary devuelve una línea legible derivada del último registro, para el
// aviso de "continuar donde lo dejaste". Diario vacío: placeholder fijo.
func (l *StepLog) Summary() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.steps) == 0 {
		return emptySummary
	}
	last := l.steps[len(l.steps)-1]
	name := "Your Business"
	if last.Snapshot != nil && last.Snapshot.Business.Name != "" {
		name = last.Snapshot.Business.Name
	}
	return fmt.Sprintf("%s: %s (step %d)", name, last.Action, last.StepNumber)
}

// Export serializa el diario completo más el estado actual a un único blob.
func (l *StepLog) Export(current *entity.Configuration) ([]byte, error) {
	l.mu.Lock()
	steps := append([]StepRecord(nil), l.steps...)
	l.mu.Unlock()
	return json.Marshal(stepExport{
		Steps:        steps,
		CurrentState: current,
		ExportedAt:   l.now(),
	})
}

// Import valida que el blob tenga la forma esperada (un array bajo la clave
// steps) antes de aceptarlo; si no, se rechaza sin tocar el diario actual.
// Devuelve el estado incluido en el export, si lo había.
func (l *StepLog) Import(raw []byte) (*entity.Configuration, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, fmt.Errorf("%w: el export no es un objeto JSON", domain.ErrInvalidInput)
	}
	stepsRaw, ok := shape["steps"]
	if !ok {
		return nil, fmt.Errorf("%w: el export no contiene la clave steps", domain.ErrInvalidInput)
	}
	var steps []StepRecord
	if err := json.Unmarshal(stepsRaw, &steps); err != nil {
		return nil, fmt.Errorf("%w: steps no es un array de registros", domain.ErrInvalidInput)
	}

	var imported stepExport
	_ = json.Unmarshal(raw, &imported)

	l.mu.Lock()
	l.steps = trimSteps(steps)
	snapshot := append([]StepRecord(nil), l.steps...)
	l.mu.Unlock()
	l.persist(snapshot)
	return imported.CurrentState, nil
}

// Clear vacía el diario y su espejo.
func (l *StepLog) Clear() {
	l.mu.Lock()
	l.steps = nil
	l.mu.Unlock()
	if l.storage != nil {
		_ = l.storage.Delete(stepsKey)
	}
}

func (l *StepLog) persist(steps []StepRecord) {
	if l.storage == nil {
		return
	}
	raw, err := json.Marshal(steps)
	if err != nil {
		l.log.Error().Err(err).Msg("diario de pasos no serializable")
		return
	}
	if err := l.storage.Set(stepsKey, string(raw)); err != nil {
		l.log.Warn().Err(err).Msg("espejo del diario falló, se continúa en memoria")
	}
}

func trimSteps(steps []StepRecord) []StepRecord {
	if len(steps) <= maxStepRecords {
		return steps
	}
	return append([]StepRecord(nil), steps[len(steps)-maxStepRecords:]...)
}
