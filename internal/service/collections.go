// collections.go — сервис коллекций родителя и закладок.
// Закладки — коллекция по умолчанию (is_default), создаётся при первом обращении.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

const maxCollectionNameLength = 100

// CollectionService — сервис коллекций.
type CollectionService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewCollectionService создаёт сервис коллекций.
func NewCollectionService(store *repository.Store, logger *slog.Logger) *CollectionService {
	return &CollectionService{
		store:  store,
		logger: logger.With(slog.String("component", "collection_service")),
	}
}

// defaultCollection возвращает коллекцию закладок родителя, создавая её при необходимости.
func defaultCollection(ctx context.Context, s *repository.Store, parentID string) (*model.Collection, error) {
	c, err := s.Collections.GetDefault(ctx, parentID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("получение закладок: %w", err)
	}

	c = &model.Collection{ParentID: parentID, Name: model.BookmarksCollectionName, IsDefault: true}
	err = s.Collections.Create(ctx, c)
	if errors.Is(err, repository.ErrConflict) {
		// параллельный запрос успел создать закладки
		return s.Collections.GetDefault(ctx, parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("создание закладок: %w", err)
	}
	return c, nil
}

// owned возвращает коллекцию, если она принадлежит вызывающему.
func (s *CollectionService) owned(ctx context.Context, c Caller, id string) (*model.Collection, error) {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	coll, err := s.store.Collections.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "коллекция")
	}
	if coll.ParentID != parent.ID {
		return nil, fmt.Errorf("%w: коллекция принадлежит другому пользователю", ErrForbidden)
	}
	return coll, nil
}

func normalizeCollectionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationf("name обязателен")
	}
	if len(name) > maxCollectionNameLength {
		return "", validationf("name длиннее %d символов", maxCollectionNameLength)
	}
	return name, nil
}

// List возвращает коллекции вызывающего с количеством элементов.
func (s *CollectionService) List(ctx context.Context, c Caller) ([]*model.Collection, error) {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Collections.ListByParent(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("список коллекций: %w", err)
	}
	return items, nil
}

// Create создаёт коллекцию. ErrConflict — имя уже занято.
func (s *CollectionService) Create(ctx context.Context, c Caller, name string) (*model.Collection, error) {
	name, err := normalizeCollectionName(name)
	if err != nil {
		return nil, err
	}
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(name, model.BookmarksCollectionName) {
		// имя зарезервировано за закладками
		if _, err := defaultCollection(ctx, s.store, parent.ID); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: коллекция %q", ErrConflict, name)
	}

	coll := &model.Collection{ParentID: parent.ID, Name: name}
	if err := s.store.Collections.Create(ctx, coll); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("коллекция %q", name))
	}
	coll.Resources = []*model.Resource{}
	return coll, nil
}

// Get возвращает коллекцию вызывающего вместе с ресурсами.
func (s *CollectionService) Get(ctx context.Context, c Caller, id string) (*model.Collection, error) {
	coll, err := s.owned(ctx, c, id)
	if err != nil {
		return nil, err
	}
	coll.Resources, err = s.store.Resources.ListByCollection(ctx, coll.ID)
	if err != nil {
		return nil, fmt.Errorf("ресурсы коллекции: %w", err)
	}
	return coll, nil
}

// Rename переименовывает коллекцию. Закладки переименовать нельзя.
func (s *CollectionService) Rename(ctx context.Context, c Caller, id, name string) (*model.Collection, error) {
	name, err := normalizeCollectionName(name)
	if err != nil {
		return nil, err
	}
	coll, err := s.owned(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if coll.IsDefault {
		return nil, validationf("коллекцию закладок нельзя переименовать")
	}
	if strings.EqualFold(name, model.BookmarksCollectionName) {
		return nil, fmt.Errorf("%w: коллекция %q", ErrConflict, name)
	}
	if err := s.store.Collections.Rename(ctx, id, name); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("коллекция %q", name))
	}
	updated, err := s.store.Collections.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "коллекция")
	}
	return updated, nil
}

// Delete удаляет коллекцию. Закладки удалить нельзя.
func (s *CollectionService) Delete(ctx context.Context, c Caller, id string) error {
	coll, err := s.owned(ctx, c, id)
	if err != nil {
		return err
	}
	if coll.IsDefault {
		return validationf("коллекцию закладок нельзя удалить")
	}
	if err := s.store.Collections.Delete(ctx, id); err != nil {
		return mapRepoError(err, "коллекция")
	}
	return nil
}

// AddItem добавляет ресурс в коллекцию. ErrConflict — уже добавлен.
func (s *CollectionService) AddItem(ctx context.Context, c Caller, id, resourceID string) (*model.CollectionItem, error) {
	coll, err := s.owned(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return s.addItem(ctx, coll.ID, resourceID)
}

func (s *CollectionService) addItem(ctx context.Context, collectionID, resourceID string) (*model.CollectionItem, error) {
	item, err := s.store.Collections.AddItem(ctx, collectionID, resourceID)
	switch {
	case errors.Is(err, repository.ErrConflict):
		return nil, fmt.Errorf("%w: ресурс уже в коллекции", ErrConflict)
	case errors.Is(err, repository.ErrReferenceNotFound):
		return nil, fmt.Errorf("%w: ресурс %s", ErrNotFound, resourceID)
	case err != nil:
		return nil, fmt.Errorf("добавление в коллекцию: %w", err)
	}
	return item, nil
}

// RemoveItem удаляет ресурс из коллекции.
func (s *CollectionService) RemoveItem(ctx context.Context, c Caller, id, resourceID string) error {
	coll, err := s.owned(ctx, c, id)
	if err != nil {
		return err
	}
	if err := s.store.Collections.RemoveItem(ctx, coll.ID, resourceID); err != nil {
		return mapRepoError(err, "элемент коллекции")
	}
	return nil
}

// --- Закладки ---

// Bookmarks возвращает ресурсы из закладок вызывающего.
func (s *CollectionService) Bookmarks(ctx context.Context, c Caller) ([]*model.Resource, error) {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	bookmarks, err := defaultCollection(ctx, s.store, parent.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Resources.ListByCollection(ctx, bookmarks.ID)
	if err != nil {
		return nil, fmt.Errorf("ресурсы закладок: %w", err)
	}
	return items, nil
}

// AddBookmark добавляет ресурс в закладки.
func (s *CollectionService) AddBookmark(ctx context.Context, c Caller, resourceID string) (*model.CollectionItem, error) {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	bookmarks, err := defaultCollection(ctx, s.store, parent.ID)
	if err != nil {
		return nil, err
	}
	return s.addItem(ctx, bookmarks.ID, resourceID)
}

// RemoveBookmark удаляет ресурс из закладок.
func (s *CollectionService) RemoveBookmark(ctx context.Context, c Caller, resourceID string) error {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return err
	}
	bookmarks, err := s.store.Collections.GetDefault(ctx, parent.ID)
	if err != nil {
		return mapRepoError(err, "закладка")
	}
	if err := s.store.Collections.RemoveItem(ctx, bookmarks.ID, resourceID); err != nil {
		return mapRepoError(err, "закладка")
	}
	return nil
}
