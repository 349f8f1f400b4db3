// labels.go — сервис меток категорий и их связей с ресурсами.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

const maxLabelNameLength = 100

// LabelService — сервис меток.
type LabelService struct {
	store  *repository.Store
	tx     Transactor
	cache  *ResourceCache
	logger *slog.Logger
}

// NewLabelService создаёт сервис меток.
func NewLabelService(store *repository.Store, tx Transactor, cache *ResourceCache, logger *slog.Logger) *LabelService {
	return &LabelService{
		store:  store,
		tx:     tx,
		cache:  cache,
		logger: logger.With(slog.String("component", "label_service")),
	}
}

// List возвращает метки, опционально одной категории.
func (s *LabelService) List(ctx context.Context, category *model.Category) ([]*model.CategoryLabel, error) {
	if category != nil && !category.Valid() {
		return nil, validationf("недопустимая категория %q", *category)
	}
	items, err := s.store.Labels.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("список меток: %w", err)
	}
	return items, nil
}

func normalizeLabelName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationf("name обязателен")
	}
	if len(name) > maxLabelNameLength {
		return "", validationf("name длиннее %d символов", maxLabelNameLength)
	}
	return name, nil
}

// Create создаёт метку. ErrConflict — такая метка в категории уже есть.
func (s *LabelService) Create(ctx context.Context, c Caller, name string, category model.Category) (*model.CategoryLabel, error) {
	name, err := normalizeLabelName(name)
	if err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, validationf("недопустимая категория %q", category)
	}

	label := &model.CategoryLabel{Name: name, Category: category}
	err = audit(ctx, s.tx, c, model.ActionLabelCreate, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		if err := st.Labels.Create(ctx, label); err != nil {
			return "", mapRepoError(err, fmt.Sprintf("метка %q в категории %s", name, category))
		}
		return fmt.Sprintf("label %s %q (%s)", label.ID, label.Name, label.Category), nil
	})
	if err != nil {
		return nil, err
	}
	return label, nil
}

// Rename переименовывает метку.
func (s *LabelService) Rename(ctx context.Context, c Caller, id, name string) (*model.CategoryLabel, error) {
	name, err := normalizeLabelName(name)
	if err != nil {
		return nil, err
	}

	var label *model.CategoryLabel
	err = audit(ctx, s.tx, c, model.ActionLabelUpdate, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		var err error
		label, err = st.Labels.Rename(ctx, id, name)
		if err != nil {
			return "", mapRepoError(err, "метка")
		}
		return fmt.Sprintf("label %s -> %q", id, name), nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Purge()
	return label, nil
}

// Delete удаляет метку вместе со связями.
func (s *LabelService) Delete(ctx context.Context, c Caller, id string) error {
	err := audit(ctx, s.tx, c, model.ActionLabelDelete, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		label, err := st.Labels.GetByID(ctx, id)
		if err != nil {
			return "", mapRepoError(err, "метка")
		}
		if err := st.Labels.Delete(ctx, id); err != nil {
			return "", mapRepoError(err, "метка")
		}
		return fmt.Sprintf("label %s %q", label.ID, label.Name), nil
	})
	if err != nil {
		return err
	}

	s.cache.Purge()
	return nil
}

// --- Связи ресурс–метка ---

// ListResourceLabels возвращает связи; resourceID == "" — все.
func (s *LabelService) ListResourceLabels(ctx context.Context, resourceID string) ([]*model.ResourceLabel, error) {
	items, err := s.store.ResourceLabels.List(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("список связей меток: %w", err)
	}
	return items, nil
}

// Attach прикрепляет метку к ресурсу той же категории.
func (s *LabelService) Attach(ctx context.Context, c Caller, resourceID, labelID string) (*model.ResourceLabel, error) {
	var link *model.ResourceLabel
	err := audit(ctx, s.tx, c, model.ActionLabelAttach, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		res, err := st.Resources.GetByID(ctx, resourceID)
		if err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		label, err := st.Labels.GetByID(ctx, labelID)
		if err != nil {
			return "", mapRepoError(err, "метка")
		}
		if label.Category != res.Category {
			return "", validationf("метка %q относится к категории %s, а ресурс — к %s", label.Name, label.Category, res.Category)
		}
		link, err = st.ResourceLabels.Attach(ctx, resourceID, labelID)
		if err != nil {
			return "", mapRepoError(err, "связь ресурса и метки")
		}
		return fmt.Sprintf("resource %s + label %s", resourceID, labelID), nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(resourceID)
	return link, nil
}

// Detach открепляет метку от ресурса.
func (s *LabelService) Detach(ctx context.Context, c Caller, resourceID, labelID string) error {
	err := audit(ctx, s.tx, c, model.ActionLabelDetach, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		if err := st.ResourceLabels.Detach(ctx, resourceID, labelID); err != nil {
			return "", mapRepoError(err, "связь ресурса и метки")
		}
		return fmt.Sprintf("resource %s - label %s", resourceID, labelID), nil
	})
	if err != nil {
		return err
	}

	s.cache.Delete(resourceID)
	return nil
}
