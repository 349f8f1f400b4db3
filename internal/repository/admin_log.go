package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// AdminLogFilter — фильтры журнала действий.
type AdminLogFilter struct {
	AdminID *string
	Action  *string
}

// AdminLogRepository — журнал действий администраторов (только добавление).
type AdminLogRepository interface {
	// Create добавляет запись. ErrReferenceNotFound — администратора нет.
	Create(ctx context.Context, l *model.AdminLog) error
	// List возвращает записи (новые первыми).
	List(ctx context.Context, filter AdminLogFilter, limit, offset int) ([]*model.AdminLog, error)
	// Count возвращает количество записей по фильтру.
	Count(ctx context.Context, filter AdminLogFilter) (int, error)
}

// adminLogRepo — реализация AdminLogRepository.
type adminLogRepo struct {
	db DBTX
}

// NewAdminLogRepository создаёт репозиторий журнала действий.
func NewAdminLogRepository(db DBTX) AdminLogRepository {
	return &adminLogRepo{db: db}
}

func (r *adminLogRepo) Create(ctx context.Context, l *model.AdminLog) error {
	query := `
		INSERT INTO admin_logs (admin_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, l.AdminID, l.Action, l.Details).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return mapWriteError(err, "запись журнала")
	}
	return nil
}

// buildAdminLogWhere строит WHERE-условие журнала.
func buildAdminLogWhere(filter AdminLogFilter, startArg int) (string, []any) {
	var conditions []string
	var args []any
	argNum := startArg

	if filter.AdminID != nil {
		conditions = append(conditions, fmt.Sprintf("admin_id = $%d", argNum))
		args = append(args, *filter.AdminID)
		argNum++
	}
	if filter.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", argNum))
		args = append(args, *filter.Action)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return where, args
}

func (r *adminLogRepo) List(ctx context.Context, filter AdminLogFilter, limit, offset int) ([]*model.AdminLog, error) {
	where, args := buildAdminLogWhere(filter, 1)
	argNum := len(args) + 1

	query := fmt.Sprintf(`
		SELECT id, admin_id, action, details, created_at
		FROM admin_logs
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, argNum, argNum+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения журнала: %w", err)
	}
	defer rows.Close()

	result := []*model.AdminLog{}
	for rows.Next() {
		l := &model.AdminLog{}
		if err := rows.Scan(&l.ID, &l.AdminID, &l.Action, &l.Details, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи журнала: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *adminLogRepo) Count(ctx context.Context, filter AdminLogFilter) (int, error) {
	where, args := buildAdminLogWhere(filter, 1)

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_logs `+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта записей журнала: %w", err)
	}
	return count, nil
}
