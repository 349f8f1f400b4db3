package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ExternalResourceRepository — внешние ссылки EXTERNAL ресурсов.
type ExternalResourceRepository interface {
	// Upsert создаёт или обновляет ссылку ресурса.
	Upsert(ctx context.Context, e *model.ExternalResource) error
	// Get возвращает ссылку ресурса.
	Get(ctx context.Context, resourceID string) (*model.ExternalResource, error)
	// Delete удаляет ссылку ресурса.
	Delete(ctx context.Context, resourceID string) error
	// List возвращает ссылки с пагинацией.
	List(ctx context.Context, limit, offset int) ([]*model.ExternalResource, error)
	// Count возвращает количество ссылок.
	Count(ctx context.Context) (int, error)
}

// externalResourceRepo — реализация ExternalResourceRepository.
type externalResourceRepo struct {
	db DBTX
}

// NewExternalResourceRepository создаёт репозиторий внешних ссылок.
func NewExternalResourceRepository(db DBTX) ExternalResourceRepository {
	return &externalResourceRepo{db: db}
}

const externalColumns = `resource_id, url, created_at, updated_at`

func (r *externalResourceRepo) Upsert(ctx context.Context, e *model.ExternalResource) error {
	query := `
		INSERT INTO external_resources (resource_id, url)
		VALUES ($1, $2)
		ON CONFLICT (resource_id) DO UPDATE SET
			url = EXCLUDED.url,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query, e.ResourceID, e.URL).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "внешняя ссылка ресурса")
	}
	return nil
}

func (r *externalResourceRepo) Get(ctx context.Context, resourceID string) (*model.ExternalResource, error) {
	query := fmt.Sprintf(`SELECT %s FROM external_resources WHERE resource_id = $1`, externalColumns)

	e := &model.ExternalResource{}
	err := r.db.QueryRow(ctx, query, resourceID).Scan(&e.ResourceID, &e.URL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения внешней ссылки: %w", err)
	}
	return e, nil
}

func (r *externalResourceRepo) Delete(ctx context.Context, resourceID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM external_resources WHERE resource_id = $1`, resourceID)
	if err != nil {
		return fmt.Errorf("ошибка удаления внешней ссылки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *externalResourceRepo) List(ctx context.Context, limit, offset int) ([]*model.ExternalResource, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM external_resources
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2`, externalColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения внешних ссылок: %w", err)
	}
	defer rows.Close()

	result := []*model.ExternalResource{}
	for rows.Next() {
		e := &model.ExternalResource{}
		if err := rows.Scan(&e.ResourceID, &e.URL, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования внешней ссылки: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *externalResourceRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM external_resources`).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта внешних ссылок: %w", err)
	}
	return count, nil
}
