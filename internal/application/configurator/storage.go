// Package configurator implementa el estado del asistente de configuración:
// el Store mutable por namespaces de dominio, el Normalizer entre la forma
// plana persistida y el agregado anidado, y el diario de pasos acotado.
package configurator

// Storage es el almacén clave-valor duradero donde el Store espeja su
// snapshot y el StepLog guarda su diario. Puede no estar disponible: los
// consumidores degradan a operación solo-en-memoria sin fallar.
type Storage interface {
	// Get devuelve el valor y si la clave existe.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
