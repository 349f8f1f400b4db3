package repository

import (
	"context"
	"fmt"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ResourceViewRepository — счётчики просмотров (parent, resource).
type ResourceViewRepository interface {
	// Record увеличивает счётчик пары или создаёт его со значением 1.
	// ErrReferenceNotFound — нет родителя или ресурса.
	Record(ctx context.Context, parentID, resourceID string) (*model.ResourceView, error)
	// ListByParent возвращает историю просмотров (последние первыми).
	ListByParent(ctx context.Context, parentID string, limit, offset int) ([]*model.ResourceView, error)
	// Stats возвращает агрегированную статистику ресурса.
	Stats(ctx context.Context, resourceID string) (*model.ResourceViewStats, error)
}

// resourceViewRepo — реализация ResourceViewRepository.
type resourceViewRepo struct {
	db DBTX
}

// NewResourceViewRepository создаёт репозиторий просмотров.
func NewResourceViewRepository(db DBTX) ResourceViewRepository {
	return &resourceViewRepo{db: db}
}

// Record — атомарный upsert: параллельные просмотры не теряют инкременты.
func (r *resourceViewRepo) Record(ctx context.Context, parentID, resourceID string) (*model.ResourceView, error) {
	query := `
		INSERT INTO resource_views (parent_id, resource_id)
		VALUES ($1, $2)
		ON CONFLICT (parent_id, resource_id) DO UPDATE SET
			view_count = resource_views.view_count + 1,
			last_viewed_at = NOW()
		RETURNING parent_id, resource_id, view_count, first_viewed_at, last_viewed_at`

	v := &model.ResourceView{}
	err := r.db.QueryRow(ctx, query, parentID, resourceID).Scan(
		&v.ParentID, &v.ResourceID, &v.ViewCount, &v.FirstViewedAt, &v.LastViewedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "просмотр ресурса")
	}
	return v, nil
}

func (r *resourceViewRepo) ListByParent(ctx context.Context, parentID string, limit, offset int) ([]*model.ResourceView, error) {
	query := `
		SELECT parent_id, resource_id, view_count, first_viewed_at, last_viewed_at
		FROM resource_views
		WHERE parent_id = $1
		ORDER BY last_viewed_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, parentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения истории просмотров: %w", err)
	}
	defer rows.Close()

	result := []*model.ResourceView{}
	for rows.Next() {
		v := &model.ResourceView{}
		if err := rows.Scan(
			&v.ParentID, &v.ResourceID, &v.ViewCount, &v.FirstViewedAt, &v.LastViewedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования просмотра: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *resourceViewRepo) Stats(ctx context.Context, resourceID string) (*model.ResourceViewStats, error) {
	query := `
		SELECT COALESCE(SUM(view_count), 0)::bigint, COUNT(*), MAX(last_viewed_at)
		FROM resource_views
		WHERE resource_id = $1`

	s := &model.ResourceViewStats{ResourceID: resourceID}
	if err := r.db.QueryRow(ctx, query, resourceID).Scan(
		&s.TotalViews, &s.UniqueViewers, &s.LastViewedAt,
	); err != nil {
		return nil, fmt.Errorf("ошибка получения статистики просмотров: %w", err)
	}
	return s, nil
}
