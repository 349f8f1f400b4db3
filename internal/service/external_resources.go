// external_resources.go — сервис внешних ссылок EXTERNAL ресурсов.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

// ExternalResourceService — сервис внешних ссылок.
type ExternalResourceService struct {
	store  *repository.Store
	tx     Transactor
	cache  *ResourceCache
	logger *slog.Logger
}

// NewExternalResourceService создаёт сервис внешних ссылок.
func NewExternalResourceService(store *repository.Store, tx Transactor, cache *ResourceCache, logger *slog.Logger) *ExternalResourceService {
	return &ExternalResourceService{
		store:  store,
		tx:     tx,
		cache:  cache,
		logger: logger.With(slog.String("component", "external_resource_service")),
	}
}

// List возвращает ссылки (только ADMIN).
func (s *ExternalResourceService) List(ctx context.Context, c Caller, limit, offset int) (*Page[*model.ExternalResource], error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	items, err := s.store.ExternalResources.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("список внешних ссылок: %w", err)
	}
	total, err := s.store.ExternalResources.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("подсчёт внешних ссылок: %w", err)
	}
	return newPage(items, total, limit, offset), nil
}

// Get возвращает ссылку ресурса.
func (s *ExternalResourceService) Get(ctx context.Context, resourceID string) (*model.ExternalResource, error) {
	e, err := s.store.ExternalResources.Get(ctx, resourceID)
	if err != nil {
		return nil, mapRepoError(err, "внешняя ссылка")
	}
	return e, nil
}

// Upsert создаёт или обновляет ссылку EXTERNAL ресурса.
func (s *ExternalResourceService) Upsert(ctx context.Context, c Caller, resourceID, rawURL string) (*model.ExternalResource, error) {
	u, err := normalizeExternalURL(rawURL)
	if err != nil {
		return nil, err
	}

	e := &model.ExternalResource{ResourceID: resourceID, URL: u}
	err = audit(ctx, s.tx, c, model.ActionExternalUpsert, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		res, err := st.Resources.GetByID(ctx, resourceID)
		if err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		if res.HostingType != model.HostingExternal {
			return "", validationf("внешняя ссылка допустима только для EXTERNAL ресурса")
		}
		if err := st.ExternalResources.Upsert(ctx, e); err != nil {
			return "", mapRepoError(err, "внешняя ссылка")
		}
		return fmt.Sprintf("resource %s url %s", resourceID, u), nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(resourceID)
	return e, nil
}

// Delete удаляет ссылку ресурса.
func (s *ExternalResourceService) Delete(ctx context.Context, c Caller, resourceID string) error {
	err := audit(ctx, s.tx, c, model.ActionExternalDelete, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		if err := st.ExternalResources.Delete(ctx, resourceID); err != nil {
			return "", mapRepoError(err, "внешняя ссылка")
		}
		return "resource " + resourceID, nil
	})
	if err != nil {
		return err
	}

	s.cache.Delete(resourceID)
	return nil
}
