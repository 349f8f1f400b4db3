package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// LabelRepository — интерфейс CRUD для таблицы category_labels.
type LabelRepository interface {
	// Create создаёт метку. ErrConflict — дубликат (category, name).
	Create(ctx context.Context, l *model.CategoryLabel) error
	// GetByID возвращает метку по UUID.
	GetByID(ctx context.Context, id string) (*model.CategoryLabel, error)
	// GetByIDs возвращает найденные метки из набора (отсутствующие пропускаются).
	GetByIDs(ctx context.Context, ids []string) ([]*model.CategoryLabel, error)
	// List возвращает метки, опционально только одной категории.
	List(ctx context.Context, category *model.Category) ([]*model.CategoryLabel, error)
	// Rename меняет имя метки.
	Rename(ctx context.Context, id, name string) (*model.CategoryLabel, error)
	// Delete удаляет метку (каскадно: связи с ресурсами).
	Delete(ctx context.Context, id string) error
}

// labelRepo — реализация LabelRepository.
type labelRepo struct {
	db DBTX
}

// NewLabelRepository создаёт репозиторий меток.
func NewLabelRepository(db DBTX) LabelRepository {
	return &labelRepo{db: db}
}

const (
	labelColumns         = `id, name, category, created_at`
	labelColumnsPrefixed = `l.id, l.name, l.category, l.created_at`
)

func scanLabel(row pgx.Row) (*model.CategoryLabel, error) {
	l := &model.CategoryLabel{}
	var category string
	if err := row.Scan(&l.ID, &l.Name, &category, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Category = model.Category(category)
	return l, nil
}

func (r *labelRepo) Create(ctx context.Context, l *model.CategoryLabel) error {
	query := `
		INSERT INTO category_labels (name, category)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, l.Name, string(l.Category)).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return mapWriteError(err, "метка с таким именем уже есть в категории")
	}
	return nil
}

func (r *labelRepo) GetByID(ctx context.Context, id string) (*model.CategoryLabel, error) {
	query := fmt.Sprintf(`SELECT %s FROM category_labels WHERE id = $1`, labelColumns)

	l, err := scanLabel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения метки: %w", err)
	}
	return l, nil
}

func (r *labelRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.CategoryLabel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM category_labels WHERE id = ANY($1::uuid[])`, labelColumns)
	return r.query(ctx, query, ids)
}

func (r *labelRepo) List(ctx context.Context, category *model.Category) ([]*model.CategoryLabel, error) {
	if category != nil {
		query := fmt.Sprintf(`SELECT %s FROM category_labels WHERE category = $1 ORDER BY name`, labelColumns)
		return r.query(ctx, query, string(*category))
	}
	query := fmt.Sprintf(`SELECT %s FROM category_labels ORDER BY category, name`, labelColumns)
	return r.query(ctx, query)
}

func (r *labelRepo) query(ctx context.Context, query string, args ...any) ([]*model.CategoryLabel, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения меток: %w", err)
	}
	defer rows.Close()

	result := []*model.CategoryLabel{}
	for rows.Next() {
		l, err := scanLabel(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования метки: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *labelRepo) Rename(ctx context.Context, id, name string) (*model.CategoryLabel, error) {
	query := fmt.Sprintf(`
		UPDATE category_labels SET name = $2
		WHERE id = $1
		RETURNING %s`, labelColumns)

	l, err := scanLabel(r.db.QueryRow(ctx, query, id, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapWriteError(err, "метка с таким именем уже есть в категории")
	}
	return l, nil
}

func (r *labelRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM category_labels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления метки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
