// admins.go — сервис администраторов: локальные записи admin_users,
// создание по учётной записи IdP, удаление.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/domain/rbac"
	"github.com/bigkaa/parentlib/internal/repository"
)

// AdminService — сервис администраторов.
type AdminService struct {
	store     *repository.Store
	tx        Transactor
	directory UserDirectory
	logger    *slog.Logger
}

// NewAdminService создаёт сервис администраторов.
func NewAdminService(store *repository.Store, tx Transactor, directory UserDirectory, logger *slog.Logger) *AdminService {
	return &AdminService{
		store:     store,
		tx:        tx,
		directory: directory,
		logger:    logger.With(slog.String("component", "admin_service")),
	}
}

// GetLocalRole возвращает ADMIN, если пользователь есть в admin_users, иначе nil.
// Используется JWT middleware для вычисления эффективной роли.
func (s *AdminService) GetLocalRole(ctx context.Context, idpUserID string) (*string, error) {
	_, err := s.store.Admins.GetByIdpUserID(ctx, idpUserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("получение локальной роли: %w", err)
	}
	role := rbac.RoleAdmin
	return &role, nil
}

// Sync создаёт или обновляет запись администратора вызывающего.
func (s *AdminService) Sync(ctx context.Context, c Caller) (*model.AdminUser, error) {
	if !c.IsAdmin() {
		return nil, fmt.Errorf("%w: требуется роль %s", ErrForbidden, rbac.RoleAdmin)
	}
	a := &model.AdminUser{IdpUserID: c.IdpUserID, Email: c.Email, Name: c.DisplayName()}
	if err := s.store.Admins.Upsert(ctx, a); err != nil {
		return nil, fmt.Errorf("синхронизация администратора: %w", err)
	}
	return a, nil
}

// Me возвращает запись администратора вызывающего (создаётся при первом обращении).
func (s *AdminService) Me(ctx context.Context, c Caller) (*model.AdminUser, error) {
	return ensureAdmin(ctx, s.store, c)
}

// List возвращает администраторов.
func (s *AdminService) List(ctx context.Context, c Caller, limit, offset int) (*Page[*model.AdminUser], error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	items, err := s.store.Admins.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("список администраторов: %w", err)
	}
	total, err := s.store.Admins.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("подсчёт администраторов: %w", err)
	}
	return newPage(items, total, limit, offset), nil
}

// Create назначает администратором пользователя IdP.
// ErrNotFound — пользователя нет в IdP, ErrIDPUnavailable — IdP недоступен,
// ErrConflict — пользователь уже администратор.
func (s *AdminService) Create(ctx context.Context, c Caller, idpUserID string) (*model.AdminUser, error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	idpUserID = strings.TrimSpace(idpUserID)
	if idpUserID == "" {
		return nil, validationf("idp_user_id обязателен")
	}
	if s.directory == nil {
		return nil, ErrIDPUnavailable
	}

	user, err := s.directory.GetUser(ctx, idpUserID)
	if err != nil {
		if isIdpNotFound(err) {
			return nil, fmt.Errorf("%w: пользователь %s в IdP", ErrNotFound, idpUserID)
		}
		s.logger.Error("Ошибка получения пользователя из IdP",
			slog.String("idp_user_id", idpUserID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", ErrIDPUnavailable, err)
	}

	created := &model.AdminUser{IdpUserID: user.ID, Email: user.Email, Name: user.DisplayName()}
	err = audit(ctx, s.tx, c, model.ActionAdminCreate, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		if err := st.Admins.Create(ctx, created); err != nil {
			return "", mapRepoError(err, "администратор "+user.ID)
		}
		return fmt.Sprintf("admin %s (%s)", created.ID, created.Email), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Администратор создан",
		slog.String("admin_id", created.ID),
		slog.String("idp_user_id", created.IdpUserID),
	)
	return created, nil
}

// Delete удаляет администратора. Удалить самого себя нельзя,
// администратора с записями в журнале тоже (ErrConflict).
func (s *AdminService) Delete(ctx context.Context, c Caller, id string) error {
	return audit(ctx, s.tx, c, model.ActionAdminDelete, func(st *repository.Store, actor *model.AdminUser) (string, error) {
		if actor.ID == id {
			return "", validationf("нельзя удалить собственную учётную запись администратора")
		}
		target, err := st.Admins.GetByID(ctx, id)
		if err != nil {
			return "", mapRepoError(err, "администратор")
		}
		if err := st.Admins.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return "", fmt.Errorf("%w: у администратора %s есть записи в журнале", ErrConflict, target.Email)
			}
			return "", mapRepoError(err, "администратор")
		}
		return fmt.Sprintf("admin %s (%s)", target.ID, target.Email), nil
	})
}
