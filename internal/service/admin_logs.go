// admin_logs.go — журнал действий администраторов.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

const (
	maxActionLength  = 100
	maxDetailsLength = 4000
)

// AdminLogService — чтение журнала и ручные записи.
type AdminLogService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewAdminLogService создаёт сервис журнала.
func NewAdminLogService(store *repository.Store, logger *slog.Logger) *AdminLogService {
	return &AdminLogService{
		store:  store,
		logger: logger.With(slog.String("component", "admin_log_service")),
	}
}

// List возвращает записи журнала (новые первыми).
func (s *AdminLogService) List(ctx context.Context, c Caller, f repository.AdminLogFilter, limit, offset int) (*Page[*model.AdminLog], error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	items, err := s.store.AdminLogs.List(ctx, f, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("список журнала: %w", err)
	}
	total, err := s.store.AdminLogs.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("подсчёт журнала: %w", err)
	}
	return newPage(items, total, limit, offset), nil
}

// Create добавляет произвольную запись от имени вызывающего.
func (s *AdminLogService) Create(ctx context.Context, c Caller, action, details string) (*model.AdminLog, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, validationf("action обязателен")
	}
	if len(action) > maxActionLength {
		return nil, validationf("action длиннее %d символов", maxActionLength)
	}
	if len(details) > maxDetailsLength {
		return nil, validationf("details длиннее %d символов", maxDetailsLength)
	}

	admin, err := ensureAdmin(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	entry := &model.AdminLog{AdminID: admin.ID, Action: action, Details: details}
	if err := s.store.AdminLogs.Create(ctx, entry); err != nil {
		return nil, mapRepoError(err, "запись журнала")
	}
	return entry, nil
}
