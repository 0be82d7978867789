package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/repository"
)

// Asegura que ConfigurationRepo implementa repository.ConfigurationRepository.
var _ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)

// ConfigurationRepo implementación del puerto ConfigurationRepository sobre PostgreSQL.
//
// El registro plano completo se guarda en la columna JSONB `data`; los campos
// consultables (dueño, subdominio, estado de publicación) viven además en
// columnas propias, que son la fuente de verdad y se superponen al JSONB al leer.
type ConfigurationRepo struct {
	pool *pgxpool.Pool
}

// NewConfigurationRepository construye el adaptador de persistencia para configuraciones.
func NewConfigurationRepository(pool *pgxpool.Pool) *ConfigurationRepo {
	return &ConfigurationRepo{pool: pool}
}

// Upsert inserta o reemplaza una configuración por ID.
func (r *ConfigurationRepo) Upsert(record map[string]any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	query := `
		INSERT INTO configurations (id, user_id, business_name, business_type, status, published_url, published_at, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			business_name = EXCLUDED.business_name,
			business_type = EXCLUDED.business_type,
			status = EXCLUDED.status,
			published_url = EXCLUDED.published_url,
			published_at = EXCLUDED.published_at,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(context.Background(), query,
		recordStr(record, "id"), recordStr(record, "userId"),
		recordStr(record, "businessName"), recordStr(record, "businessType"),
		recordStr(record, "status"), recordStr(record, "publishedUrl"),
		recordStr(record, "publishedAt"), data,
		recordStr(record, "createdAt"), recordStr(record, "updatedAt"),
	)
	if err != nil {
		return fmt.Errorf("upsert configuration: %w", err)
	}
	return nil
}

// GetByID obtiene el registro plano de una configuración por ID.
func (r *ConfigurationRepo) GetByID(id string) (map[string]any, error) {
	query := `
		SELECT data, user_id, status, published_url, published_at, updated_at
		FROM configurations WHERE id = $1`
	record, err := r.scanRecord(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuration: %w", err)
	}
	return record, nil
}

// ListByUser devuelve las configuraciones de un usuario, más recientes primero.
func (r *ConfigurationRepo) ListByUser(userID string, limit, offset int) ([]map[string]any, error) {
	query := `
		SELECT data, user_id, status, published_url, published_at, updated_at
		FROM configurations WHERE user_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}
	defer rows.Close()

	var list []map[string]any
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan configuration: %w", err)
		}
		list = append(list, record)
	}
	return list, rows.Err()
}

// GetPublishedBySubdomain obtiene la configuración publicada en un subdominio.
func (r *ConfigurationRepo) GetPublishedBySubdomain(subdomain string) (map[string]any, error) {
	query := `
		SELECT data, user_id, status, published_url, published_at, updated_at
		FROM configurations WHERE subdomain = $1`
	record, err := r.scanRecord(r.pool.QueryRow(context.Background(), query, subdomain))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuration by subdomain: %w", err)
	}
	return record, nil
}

// SetPublished marca una configuración como publicada con su subdominio y URL.
func (r *ConfigurationRepo) SetPublished(id, subdomain, publishedURL string, publishedAt time.Time) error {
	query := `
		UPDATE configurations
		SET status = 'published', subdomain = $2, published_url = $3, published_at = $4
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		id, subdomain, publishedURL, publishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("subdominio %q ya está en uso: %w", subdomain, domain.ErrConflict)
		}
		return fmt.Errorf("publish configuration: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus cambia el estado de publicación (draft, published, archived).
func (r *ConfigurationRepo) SetStatus(id, status string) error {
	query := `UPDATE configurations SET status = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("set configuration status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanRecord lee una fila y superpone las columnas de publicación sobre el JSONB.
func (r *ConfigurationRepo) scanRecord(row pgx.Row) (map[string]any, error) {
	var (
		data                         []byte
		userID, status, publishedURL string
		publishedAt, updated         string
	)
	if err := row.Scan(&data, &userID, &status, &publishedURL, &publishedAt, &updated); err != nil {
		return nil, err
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	// Las columnas mandan: SetPublished/SetStatus escriben solo columnas.
	record["userId"] = userID
	record["status"] = status
	record["publishedUrl"] = publishedURL
	record["publishedAt"] = publishedAt
	record["updatedAt"] = updated
	return record, nil
}

func recordStr(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
