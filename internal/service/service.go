// Пакет service — бизнес-логика каталога ресурсов для родителей.
// service.go — общие типы: вызывающий, транзакции, пагинация, журнал действий.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/domain/rbac"
	"github.com/bigkaa/parentlib/internal/repository"
)

// Caller — аутентифицированный пользователь, от имени которого выполняется операция.
// Заполняется обработчиками из claims JWT.
type Caller struct {
	IdpUserID string
	Email     string
	FirstName string
	LastName  string
	// Role — эффективная роль (PARENT или ADMIN)
	Role string
}

// IsAdmin сообщает, есть ли у вызывающего роль ADMIN.
func (c Caller) IsAdmin() bool {
	return c.Role == rbac.RoleAdmin
}

// Identity возвращает данные вызывающего для зеркалирования в БД.
func (c Caller) Identity() model.IdentityRecord {
	return model.IdentityRecord{
		IdpUserID: c.IdpUserID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

// DisplayName возвращает «Имя Фамилия» или email.
func (c Caller) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Email
	}
	return name
}

// Transactor выполняет fn с репозиториями, привязанными к одной транзакции.
// Реализуется repository.TxRunner и memstore.DB.
type Transactor interface {
	InTx(ctx context.Context, fn func(s *repository.Store) error) error
}

// --- Пагинация ---

// Параметры пагинации по умолчанию.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Pagination нормализует limit/offset: limit по умолчанию 50, ограничен 1..200.
// Отрицательный offset — ошибка валидации.
func Pagination(limit, offset *int) (int, int, error) {
	l, o := DefaultLimit, 0
	if limit != nil {
		l = *limit
	}
	if l < 1 {
		l = 1
	}
	if l > MaxLimit {
		l = MaxLimit
	}
	if offset != nil {
		if *offset < 0 {
			return 0, 0, validationf("offset не может быть отрицательным")
		}
		o = *offset
	}
	return l, o, nil
}

// Page — страница результатов.
type Page[T any] struct {
	Items   []T
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

func newPage[T any](items []T, total, limit, offset int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(items) < total,
	}
}

// --- Ленивое создание учётных записей ---

// ensureParent возвращает запись родителя вызывающего, создавая её при первом обращении.
func ensureParent(ctx context.Context, s *repository.Store, c Caller) (*model.Parent, error) {
	if c.IdpUserID == "" {
		return nil, fmt.Errorf("%w: пустой идентификатор пользователя", ErrUnauthorized)
	}
	p, err := s.Parents.GetByIdpUserID(ctx, c.IdpUserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("получение родителя: %w", err)
	}
	p, err = s.Parents.UpsertIdentity(ctx, c.Identity())
	if err != nil {
		return nil, fmt.Errorf("создание родителя: %w", err)
	}
	return p, nil
}

// ensureAdmin возвращает запись администратора вызывающего, создавая её
// при первом обращении. Требует роль ADMIN.
func ensureAdmin(ctx context.Context, s *repository.Store, c Caller) (*model.AdminUser, error) {
	if !c.IsAdmin() {
		return nil, fmt.Errorf("%w: требуется роль %s", ErrForbidden, rbac.RoleAdmin)
	}
	a, err := s.Admins.GetByIdpUserID(ctx, c.IdpUserID)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("получение администратора: %w", err)
	}
	a = &model.AdminUser{IdpUserID: c.IdpUserID, Email: c.Email, Name: c.DisplayName()}
	if err := s.Admins.Upsert(ctx, a); err != nil {
		return nil, fmt.Errorf("создание администратора: %w", err)
	}
	return a, nil
}

// audit выполняет fn в транзакции от имени администратора и пишет запись журнала.
// fn возвращает детали записи.
func audit(ctx context.Context, tx Transactor, c Caller, action string, fn func(s *repository.Store, admin *model.AdminUser) (string, error)) error {
	return tx.InTx(ctx, func(s *repository.Store) error {
		admin, err := ensureAdmin(ctx, s, c)
		if err != nil {
			return err
		}
		details, err := fn(s, admin)
		if err != nil {
			return err
		}
		entry := &model.AdminLog{AdminID: admin.ID, Action: action, Details: details}
		if err := s.AdminLogs.Create(ctx, entry); err != nil {
			return fmt.Errorf("запись журнала: %w", err)
		}
		return nil
	})
}
