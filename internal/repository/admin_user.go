package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// AdminUserRepository — интерфейс CRUD для таблицы admin_users.
type AdminUserRepository interface {
	// Create создаёт администратора. ErrConflict, если IdP ID уже занят.
	Create(ctx context.Context, a *model.AdminUser) error
	// Upsert создаёт администратора или обновляет email/имя существующего.
	Upsert(ctx context.Context, a *model.AdminUser) error
	// GetByID возвращает администратора по UUID.
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	// GetByIdpUserID возвращает администратора по идентификатору IdP.
	GetByIdpUserID(ctx context.Context, idpUserID string) (*model.AdminUser, error)
	// Delete удаляет администратора. ErrConflict — у него есть записи в журнале.
	Delete(ctx context.Context, id string) error
	// List возвращает администраторов с пагинацией.
	List(ctx context.Context, limit, offset int) ([]*model.AdminUser, error)
	// Count возвращает количество администраторов.
	Count(ctx context.Context) (int, error)
}

// adminUserRepo — реализация AdminUserRepository.
type adminUserRepo struct {
	db DBTX
}

// NewAdminUserRepository создаёт репозиторий администраторов.
func NewAdminUserRepository(db DBTX) AdminUserRepository {
	return &adminUserRepo{db: db}
}

const adminColumns = `id, idp_user_id, email, name, role, created_at`

func (r *adminUserRepo) Create(ctx context.Context, a *model.AdminUser) error {
	query := `
		INSERT INTO admin_users (idp_user_id, email, name)
		VALUES ($1, $2, $3)
		RETURNING id, role, created_at`

	err := r.db.QueryRow(ctx, query, a.IdpUserID, a.Email, a.Name).
		Scan(&a.ID, &a.Role, &a.CreatedAt)
	if err != nil {
		return mapWriteError(err, "администратор с таким IdP ID уже существует")
	}
	return nil
}

func (r *adminUserRepo) Upsert(ctx context.Context, a *model.AdminUser) error {
	query := `
		INSERT INTO admin_users (idp_user_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (idp_user_id) DO UPDATE SET
			email = COALESCE(NULLIF(EXCLUDED.email, ''), admin_users.email),
			name = COALESCE(NULLIF(EXCLUDED.name, ''), admin_users.name)
		RETURNING id, email, name, role, created_at`

	err := r.db.QueryRow(ctx, query, a.IdpUserID, a.Email, a.Name).
		Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка upsert администратора: %w", err)
	}
	return nil
}

func (r *adminUserRepo) getBy(ctx context.Context, column, value string) (*model.AdminUser, error) {
	query := fmt.Sprintf(`SELECT %s FROM admin_users WHERE %s = $1`, adminColumns, column)

	a := &model.AdminUser{}
	err := r.db.QueryRow(ctx, query, value).Scan(
		&a.ID, &a.IdpUserID, &a.Email, &a.Name, &a.Role, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения администратора: %w", err)
	}
	return a, nil
}

func (r *adminUserRepo) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	return r.getBy(ctx, "id", id)
}

func (r *adminUserRepo) GetByIdpUserID(ctx context.Context, idpUserID string) (*model.AdminUser, error) {
	return r.getBy(ctx, "idp_user_id", idpUserID)
}

func (r *adminUserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: у администратора есть записи в журнале", ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("ошибка удаления администратора: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *adminUserRepo) List(ctx context.Context, limit, offset int) ([]*model.AdminUser, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM admin_users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, adminColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка администраторов: %w", err)
	}
	defer rows.Close()

	var result []*model.AdminUser
	for rows.Next() {
		a := &model.AdminUser{}
		if err := rows.Scan(
			&a.ID, &a.IdpUserID, &a.Email, &a.Name, &a.Role, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования администратора: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *adminUserRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта администраторов: %w", err)
	}
	return count, nil
}
