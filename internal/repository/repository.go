// Пакет repository — слой доступа к данным PostgreSQL.
// Все запросы — чистый SQL через pgx, без ORM.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// Ошибки слоя репозиториев.
var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("запись не найдена")
	// ErrConflict — конфликт уникальности (дублирующаяся запись).
	ErrConflict = errors.New("конфликт: запись уже существует")
	// ErrReferenceNotFound — ссылка на несуществующую запись (нарушение FK).
	ErrReferenceNotFound = errors.New("связанная запись не найдена")
)

// DBTX — интерфейс для выполнения SQL-запросов.
// Реализуется как *pgxpool.Pool, так и pgx.Tx, что позволяет
// использовать репозитории как внутри, так и вне транзакций.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store — набор репозиториев поверх одного DBTX (пул или транзакция).
type Store struct {
	Parents           ParentRepository
	Admins            AdminUserRepository
	Resources         ResourceRepository
	Labels            LabelRepository
	ResourceLabels    ResourceLabelRepository
	Collections       CollectionRepository
	ExternalResources ExternalResourceRepository
	AdminLogs         AdminLogRepository
	ResourceViews     ResourceViewRepository
}

// NewStore создаёт набор репозиториев поверх db.
func NewStore(db DBTX) *Store {
	return &Store{
		Parents:           NewParentRepository(db),
		Admins:            NewAdminUserRepository(db),
		Resources:         NewResourceRepository(db),
		Labels:            NewLabelRepository(db),
		ResourceLabels:    NewResourceLabelRepository(db),
		Collections:       NewCollectionRepository(db),
		ExternalResources: NewExternalResourceRepository(db),
		AdminLogs:         NewAdminLogRepository(db),
		ResourceViews:     NewResourceViewRepository(db),
	}
}

// TxRunner позволяет выполнять операции в транзакции.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner создаёт TxRunner для управления транзакциями.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInTx выполняет fn внутри транзакции.
// При ошибке fn транзакция откатывается.
// При успехе коммитится.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // откат после коммита — no-op

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// InTx выполняет fn с набором репозиториев, привязанных к одной транзакции.
func (r *TxRunner) InTx(ctx context.Context, fn func(s *Store) error) error {
	return r.RunInTx(ctx, func(tx pgx.Tx) error {
		return fn(NewStore(tx))
	})
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// isForeignKeyViolation проверяет, является ли ошибка нарушением внешнего ключа.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}
	return false
}

// mapWriteError переводит ошибки PostgreSQL при записи в ошибки слоя.
func mapWriteError(err error, what string) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", ErrConflict, what)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ErrReferenceNotFound, what)
	default:
		return fmt.Errorf("ошибка записи (%s): %w", what, err)
	}
}

// --- Преобразование перечислений для TEXT[] ---

func toStrings[T ~string](items []T) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = string(v)
	}
	return out
}

func fromStrings[T ~string](items []string) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = T(v)
	}
	return out
}

// categoriesFromDB и ageGroupsFromDB — сахар для сканирования массивов.
func categoriesFromDB(items []string) []model.Category { return fromStrings[model.Category](items) }

func ageGroupsFromDB(items []string) []model.AgeGroup { return fromStrings[model.AgeGroup](items) }
