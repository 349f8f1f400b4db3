package repository

import (
	"context"
	"fmt"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ResourceLabelRepository — связи ресурс ↔ метка (таблица resource_labels).
type ResourceLabelRepository interface {
	// Attach создаёт связь. ErrConflict — пара уже есть,
	// ErrReferenceNotFound — нет ресурса или метки.
	Attach(ctx context.Context, resourceID, labelID string) (*model.ResourceLabel, error)
	// Detach удаляет связь.
	Detach(ctx context.Context, resourceID, labelID string) error
	// List возвращает связи; resourceID != "" — только одного ресурса.
	List(ctx context.Context, resourceID string) ([]*model.ResourceLabel, error)
	// Replace заменяет набор меток ресурса (delete-all + insert).
	// Атомарность обеспечивает вызывающий через транзакцию.
	Replace(ctx context.Context, resourceID string, labelIDs []string) error
}

// resourceLabelRepo — реализация ResourceLabelRepository.
type resourceLabelRepo struct {
	db DBTX
}

// NewResourceLabelRepository создаёт репозиторий связей ресурсов и меток.
func NewResourceLabelRepository(db DBTX) ResourceLabelRepository {
	return &resourceLabelRepo{db: db}
}

func (r *resourceLabelRepo) Attach(ctx context.Context, resourceID, labelID string) (*model.ResourceLabel, error) {
	rl := &model.ResourceLabel{ResourceID: resourceID, LabelID: labelID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO resource_labels (resource_id, label_id)
		VALUES ($1, $2)
		RETURNING created_at`, resourceID, labelID).Scan(&rl.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "метка уже прикреплена к ресурсу")
	}
	return rl, nil
}

func (r *resourceLabelRepo) Detach(ctx context.Context, resourceID, labelID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM resource_labels WHERE resource_id = $1 AND label_id = $2`, resourceID, labelID)
	if err != nil {
		return fmt.Errorf("ошибка удаления связи ресурса и метки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *resourceLabelRepo) List(ctx context.Context, resourceID string) ([]*model.ResourceLabel, error) {
	query := `SELECT resource_id, label_id, created_at FROM resource_labels`
	var args []any
	if resourceID != "" {
		query += ` WHERE resource_id = $1`
		args = append(args, resourceID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения связей ресурсов и меток: %w", err)
	}
	defer rows.Close()

	result := []*model.ResourceLabel{}
	for rows.Next() {
		rl := &model.ResourceLabel{}
		if err := rows.Scan(&rl.ResourceID, &rl.LabelID, &rl.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования связи: %w", err)
		}
		result = append(result, rl)
	}
	return result, rows.Err()
}

func (r *resourceLabelRepo) Replace(ctx context.Context, resourceID string, labelIDs []string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM resource_labels WHERE resource_id = $1`, resourceID); err != nil {
		return fmt.Errorf("ошибка очистки меток ресурса: %w", err)
	}
	if len(labelIDs) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO resource_labels (resource_id, label_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`, resourceID, labelIDs)
	if err != nil {
		return mapWriteError(err, "метки ресурса")
	}
	return nil
}
