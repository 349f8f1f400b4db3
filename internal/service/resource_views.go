// resource_views.go — учёт просмотров ресурсов родителями.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

// ViewService — сервис просмотров.
type ViewService struct {
	store  *repository.Store
	cache  *ResourceCache
	logger *slog.Logger
}

// NewViewService создаёт сервис просмотров.
func NewViewService(store *repository.Store, cache *ResourceCache, logger *slog.Logger) *ViewService {
	return &ViewService{
		store:  store,
		cache:  cache,
		logger: logger.With(slog.String("component", "view_service")),
	}
}

// Record увеличивает счётчик просмотров (вызывающий, ресурс).
// Повторный просмотр не создаёт новую запись.
func (s *ViewService) Record(ctx context.Context, c Caller, resourceID string) (*model.ResourceView, error) {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	v, err := s.store.ResourceViews.Record(ctx, parent.ID, resourceID)
	if err != nil {
		return nil, mapRepoError(err, "ресурс "+resourceID)
	}
	s.cache.Delete(resourceID)
	return v, nil
}

// History возвращает историю просмотров вызывающего.
func (s *ViewService) History(ctx context.Context, c Caller, limit, offset int) ([]*model.ResourceView, error) {
	parent, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ResourceViews.ListByParent(ctx, parent.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("история просмотров: %w", err)
	}
	return items, nil
}

// Stats возвращает статистику просмотров ресурса (только ADMIN).
func (s *ViewService) Stats(ctx context.Context, c Caller, resourceID string) (*model.ResourceViewStats, error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	if _, err := s.store.Resources.GetByID(ctx, resourceID); err != nil {
		return nil, mapRepoError(err, "ресурс")
	}
	stats, err := s.store.ResourceViews.Stats(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("статистика просмотров: %w", err)
	}
	return stats, nil
}
