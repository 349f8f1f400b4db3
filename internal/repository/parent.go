package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ParentRepository — интерфейс CRUD для таблицы parents.
type ParentRepository interface {
	// UpsertIdentity создаёт родителя по записи IdP или обновляет email/имя.
	UpsertIdentity(ctx context.Context, rec model.IdentityRecord) (*model.Parent, error)
	// GetByID возвращает родителя по UUID.
	GetByID(ctx context.Context, id string) (*model.Parent, error)
	// GetByIdpUserID возвращает родителя по идентификатору IdP.
	GetByIdpUserID(ctx context.Context, idpUserID string) (*model.Parent, error)
	// Update сохраняет профиль родителя (все изменяемые поля).
	Update(ctx context.Context, p *model.Parent) error
	// Delete удаляет родителя (каскадно: коллекции и просмотры).
	Delete(ctx context.Context, id string) error
	// List возвращает родителей; q — поиск по email и имени.
	List(ctx context.Context, q string, limit, offset int) ([]*model.Parent, error)
	// Count возвращает количество родителей по тому же фильтру.
	Count(ctx context.Context, q string) (int, error)
}

// parentRepo — реализация ParentRepository.
type parentRepo struct {
	db DBTX
}

// NewParentRepository создаёт репозиторий родителей.
func NewParentRepository(db DBTX) ParentRepository {
	return &parentRepo{db: db}
}

const parentColumns = `id, idp_user_id, email, first_name, last_name, relationship_type,
	household_type, topics_of_interest, kids_age_groups, newsletter, onboarded,
	created_at, updated_at`

// scanParent сканирует строку parents в модель.
func scanParent(row pgx.Row) (*model.Parent, error) {
	p := &model.Parent{}
	var relationship, household *string
	var topics, ages []string
	if err := row.Scan(
		&p.ID, &p.IdpUserID, &p.Email, &p.FirstName, &p.LastName, &relationship,
		&household, &topics, &ages, &p.Newsletter, &p.Onboarded,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if relationship != nil {
		rt := model.RelationshipType(*relationship)
		p.RelationshipType = &rt
	}
	if household != nil {
		ht := model.HouseholdType(*household)
		p.HouseholdType = &ht
	}
	p.TopicsOfInterest = categoriesFromDB(topics)
	p.KidsAgeGroups = ageGroupsFromDB(ages)
	return p, nil
}

func (r *parentRepo) UpsertIdentity(ctx context.Context, rec model.IdentityRecord) (*model.Parent, error) {
	// Пустые значения из IdP не затирают уже сохранённые данные
	query := fmt.Sprintf(`
		INSERT INTO parents (idp_user_id, email, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (idp_user_id) DO UPDATE SET
			email = COALESCE(NULLIF(EXCLUDED.email, ''), parents.email),
			first_name = COALESCE(NULLIF(EXCLUDED.first_name, ''), parents.first_name),
			last_name = COALESCE(NULLIF(EXCLUDED.last_name, ''), parents.last_name),
			updated_at = NOW()
		RETURNING %s`, parentColumns)

	p, err := scanParent(r.db.QueryRow(ctx, query,
		rec.IdpUserID, rec.Email, rec.FirstName, rec.LastName,
	))
	if err != nil {
		return nil, fmt.Errorf("ошибка upsert родителя: %w", err)
	}
	return p, nil
}

func (r *parentRepo) GetByID(ctx context.Context, id string) (*model.Parent, error) {
	query := fmt.Sprintf(`SELECT %s FROM parents WHERE id = $1`, parentColumns)

	p, err := scanParent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения родителя: %w", err)
	}
	return p, nil
}

func (r *parentRepo) GetByIdpUserID(ctx context.Context, idpUserID string) (*model.Parent, error) {
	query := fmt.Sprintf(`SELECT %s FROM parents WHERE idp_user_id = $1`, parentColumns)

	p, err := scanParent(r.db.QueryRow(ctx, query, idpUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения родителя по IdP ID: %w", err)
	}
	return p, nil
}

func (r *parentRepo) Update(ctx context.Context, p *model.Parent) error {
	query := `
		UPDATE parents
		SET first_name = $2, last_name = $3, relationship_type = $4, household_type = $5,
			topics_of_interest = $6, kids_age_groups = $7, newsletter = $8, onboarded = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		p.ID, p.FirstName, p.LastName, p.RelationshipType, p.HouseholdType,
		toStrings(p.TopicsOfInterest), toStrings(p.KidsAgeGroups), p.Newsletter, p.Onboarded,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка обновления родителя: %w", err)
	}
	return nil
}

func (r *parentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления родителя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// buildParentWhere строит условие поиска по email / имени.
// Полное имя ("Anna Smith") сравнивается целиком.
func buildParentWhere(q string, startArg int) (string, []any) {
	if q == "" {
		return "", nil
	}
	where := fmt.Sprintf(
		"WHERE email ILIKE $%[1]d OR first_name ILIKE $%[1]d OR last_name ILIKE $%[1]d"+
			" OR (first_name || ' ' || last_name) ILIKE $%[1]d", startArg)
	return where, []any{"%" + escapeLike(q) + "%"}
}

func (r *parentRepo) List(ctx context.Context, q string, limit, offset int) ([]*model.Parent, error) {
	where, args := buildParentWhere(q, 1)
	argNum := len(args) + 1

	query := fmt.Sprintf(`
		SELECT %s
		FROM parents
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, parentColumns, where, argNum, argNum+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка родителей: %w", err)
	}
	defer rows.Close()

	var result []*model.Parent
	for rows.Next() {
		p, err := scanParent(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования родителя: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *parentRepo) Count(ctx context.Context, q string) (int, error) {
	where, args := buildParentWhere(q, 1)

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parents `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта родителей: %w", err)
	}
	return count, nil
}
