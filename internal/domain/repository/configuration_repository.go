package repository

import "time"

// ConfigurationRepository define el puerto de persistencia para las
// configuraciones de sitio (DIP). El repositorio habla la forma plana
// heredada (una clave por campo anidado, colecciones como JSON): la
// conversión al agregado anidado es tarea del Normalizer, no de aquí.
// Métodos de lectura devuelven (nil, nil) cuando el registro no existe.
type ConfigurationRepository interface {
	// Upsert crea o actualiza el registro plano completo.
	Upsert(record map[string]any) error
	GetByID(id string) (map[string]any, error)
	ListByUser(userID string, limit, offset int) ([]map[string]any, error)
	// GetPublishedBySubdomain resuelve un sitio publicado por su subdominio.
	GetPublishedBySubdomain(subdomain string) (map[string]any, error)
	// SetPublished fija subdominio, URL y sello de publicación de forma
	// atómica y pasa el estado a published.
	SetPublished(id, subdomain, publishedURL string, publishedAt time.Time) error
	// SetStatus cambia solo el estado (archivado; el core nunca borra).
	SetStatus(id, status string) error
}
