package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// CollectionRepository — коллекции родителей и их элементы.
type CollectionRepository interface {
	// Create создаёт коллекцию. ErrConflict — имя уже занято у этого родителя.
	Create(ctx context.Context, c *model.Collection) error
	// GetByID возвращает коллекцию с количеством элементов.
	GetByID(ctx context.Context, id string) (*model.Collection, error)
	// GetDefault возвращает коллекцию закладок родителя.
	GetDefault(ctx context.Context, parentID string) (*model.Collection, error)
	// ListByParent возвращает коллекции родителя (закладки первыми).
	ListByParent(ctx context.Context, parentID string) ([]*model.Collection, error)
	// Rename меняет имя коллекции.
	Rename(ctx context.Context, id, name string) error
	// Delete удаляет коллекцию вместе с элементами.
	Delete(ctx context.Context, id string) error
	// AddItem добавляет ресурс. ErrConflict — уже добавлен,
	// ErrReferenceNotFound — ресурса нет.
	AddItem(ctx context.Context, collectionID, resourceID string) (*model.CollectionItem, error)
	// RemoveItem удаляет ресурс из коллекции.
	RemoveItem(ctx context.Context, collectionID, resourceID string) error
}

// collectionRepo — реализация CollectionRepository.
type collectionRepo struct {
	db DBTX
}

// NewCollectionRepository создаёт репозиторий коллекций.
func NewCollectionRepository(db DBTX) CollectionRepository {
	return &collectionRepo{db: db}
}

const collectionSelect = `
	SELECT c.id, c.parent_id, c.name, c.is_default, c.created_at, c.updated_at,
		(SELECT COUNT(*) FROM collection_items ci WHERE ci.collection_id = c.id)
	FROM collections c`

func scanCollection(row pgx.Row) (*model.Collection, error) {
	c := &model.Collection{}
	if err := row.Scan(
		&c.ID, &c.ParentID, &c.Name, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt, &c.ItemCount,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *collectionRepo) Create(ctx context.Context, c *model.Collection) error {
	query := `
		INSERT INTO collections (parent_id, name, is_default)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, c.ParentID, c.Name, c.IsDefault).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "коллекция с таким именем уже существует")
	}
	return nil
}

func (r *collectionRepo) getOne(ctx context.Context, where string, arg any) (*model.Collection, error) {
	c, err := scanCollection(r.db.QueryRow(ctx, collectionSelect+" "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения коллекции: %w", err)
	}
	return c, nil
}

func (r *collectionRepo) GetByID(ctx context.Context, id string) (*model.Collection, error) {
	return r.getOne(ctx, "WHERE c.id = $1", id)
}

func (r *collectionRepo) GetDefault(ctx context.Context, parentID string) (*model.Collection, error) {
	return r.getOne(ctx, "WHERE c.parent_id = $1 AND c.is_default", parentID)
}

func (r *collectionRepo) ListByParent(ctx context.Context, parentID string) ([]*model.Collection, error) {
	rows, err := r.db.Query(ctx,
		collectionSelect+" WHERE c.parent_id = $1 ORDER BY c.is_default DESC, c.created_at", parentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения коллекций: %w", err)
	}
	defer rows.Close()

	result := []*model.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования коллекции: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *collectionRepo) Rename(ctx context.Context, id, name string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE collections SET name = $2, updated_at = NOW() WHERE id = $1`, id, name)
	if err != nil {
		return mapWriteError(err, "коллекция с таким именем уже существует")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *collectionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления коллекции: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *collectionRepo) AddItem(ctx context.Context, collectionID, resourceID string) (*model.CollectionItem, error) {
	item := &model.CollectionItem{CollectionID: collectionID, ResourceID: resourceID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO collection_items (collection_id, resource_id)
		VALUES ($1, $2)
		RETURNING id, added_at`, collectionID, resourceID).Scan(&item.ID, &item.AddedAt)
	if err != nil {
		return nil, mapWriteError(err, "ресурс уже есть в коллекции")
	}
	return item, nil
}

func (r *collectionRepo) RemoveItem(ctx context.Context, collectionID, resourceID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM collection_items WHERE collection_id = $1 AND resource_id = $2`,
		collectionID, resourceID)
	if err != nil {
		return fmt.Errorf("ошибка удаления элемента коллекции: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
