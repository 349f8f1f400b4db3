package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// resourceColumns — столбцы ресурса вместе с внешней ссылкой и счётчиком просмотров.
// Используется с resourceFrom.
const resourceColumns = `r.id, r.title, r.description, r.resource_type, r.hosting_type,
	r.category, r.age_groups, r.language, r.time_to_read, r.image_key, r.file_key,
	r.created_by, r.created_at, r.updated_at, er.url, COALESCE(v.views, 0)`

const resourceFrom = `resources r
	LEFT JOIN external_resources er ON er.resource_id = r.id
	LEFT JOIN (
		SELECT resource_id, SUM(view_count)::bigint AS views
		FROM resource_views
		GROUP BY resource_id
	) v ON v.resource_id = r.id`

// ResourceFilter — параметры поиска ресурсов.
// Фасеты объединяются через AND, значения внутри фасета — через OR.
// Пустой срез / nil — фильтр не применяется.
type ResourceFilter struct {
	// Query — подстрока в заголовке или описании (без учёта регистра)
	Query *string
	// Categories — категория входит в набор
	Categories []model.Category
	// AgeGroups — пересечение возрастных групп; ALL_AGES подходит всегда
	AgeGroups []model.AgeGroup
	// LabelIDs — ресурс имеет хотя бы одну из меток
	LabelIDs []string
	// ResourceTypes — формат входит в набор
	ResourceTypes []model.ResourceType
	// HostingType — точное совпадение
	HostingType *model.HostingType
	// Language — совпадение без учёта регистра
	Language *string
	// MinTimeToRead, MaxTimeToRead — включительный диапазон в минутах
	MinTimeToRead *int
	MaxTimeToRead *int
	// CreatedAfter, CreatedBefore — диапазон created_at
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	// CollectionIDs — ресурс входит в каждую из коллекций
	CollectionIDs []string
	// SortBy — created_at, title, time_to_read, views
	SortBy string
	// SortOrder — asc, desc
	SortOrder string
	Limit     int
	Offset    int
}

// ResourceRepository — интерфейс доступа к таблице resources.
type ResourceRepository interface {
	// Create создаёт ресурс (без меток и внешней ссылки).
	Create(ctx context.Context, res *model.Resource) error
	// GetByID возвращает ресурс с метками, внешней ссылкой и просмотрами.
	GetByID(ctx context.Context, id string) (*model.Resource, error)
	// Update сохраняет изменяемые поля ресурса.
	Update(ctx context.Context, res *model.Resource) error
	// SetObjectKey сохраняет ключ объекта (image / file) в хранилище.
	SetObjectKey(ctx context.Context, id, kind, key string) error
	// Delete удаляет ресурс (каскадно: метки, ссылки, элементы коллекций).
	Delete(ctx context.Context, id string) error
	// Search выполняет поиск с фильтрами, сортировкой и пагинацией.
	// Возвращает: список ресурсов, общее количество, ошибка.
	Search(ctx context.Context, f ResourceFilter) ([]*model.Resource, int, error)
	// Popular возвращает самые просматриваемые ресурсы.
	Popular(ctx context.Context, limit int) ([]*model.Resource, error)
	// ListByCollection возвращает ресурсы коллекции (последние добавленные первыми).
	ListByCollection(ctx context.Context, collectionID string) ([]*model.Resource, error)
}

// resourceRepo — реализация ResourceRepository.
type resourceRepo struct {
	db DBTX
}

// NewResourceRepository создаёт репозиторий ресурсов.
func NewResourceRepository(db DBTX) ResourceRepository {
	return &resourceRepo{db: db}
}

// scanResource сканирует строку resourceColumns.
func scanResource(row pgx.Row) (*model.Resource, error) {
	res := &model.Resource{}
	var resourceType, hostingType, category string
	var ages []string
	if err := row.Scan(
		&res.ID, &res.Title, &res.Description, &resourceType, &hostingType,
		&category, &ages, &res.Language, &res.TimeToRead, &res.ImageKey, &res.FileKey,
		&res.CreatedBy, &res.CreatedAt, &res.UpdatedAt, &res.ExternalURL, &res.ViewCount,
	); err != nil {
		return nil, err
	}
	res.ResourceType = model.ResourceType(resourceType)
	res.HostingType = model.HostingType(hostingType)
	res.Category = model.Category(category)
	res.AgeGroups = ageGroupsFromDB(ages)
	res.Labels = []model.CategoryLabel{}
	return res, nil
}

func (r *resourceRepo) Create(ctx context.Context, res *model.Resource) error {
	query := `
		INSERT INTO resources (title, description, resource_type, hosting_type, category,
			age_groups, language, time_to_read, image_key, file_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		res.Title, res.Description, string(res.ResourceType), string(res.HostingType),
		string(res.Category), toStrings(res.AgeGroups), res.Language, res.TimeToRead,
		res.ImageKey, res.FileKey, res.CreatedBy,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "ресурс")
	}
	return nil
}

func (r *resourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE r.id = $1`, resourceColumns, resourceFrom)

	res, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения ресурса: %w", err)
	}
	if err := r.attachLabels(ctx, []*model.Resource{res}); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepo) Update(ctx context.Context, res *model.Resource) error {
	query := `
		UPDATE resources
		SET title = $2, description = $3, resource_type = $4, hosting_type = $5,
			category = $6, age_groups = $7, language = $8, time_to_read = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		res.ID, res.Title, res.Description, string(res.ResourceType), string(res.HostingType),
		string(res.Category), toStrings(res.AgeGroups), res.Language, res.TimeToRead,
	).Scan(&res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка обновления ресурса: %w", err)
	}
	return nil
}

func (r *resourceRepo) SetObjectKey(ctx context.Context, id, kind, key string) error {
	column := "image_key"
	if kind == model.ObjectKindFile {
		column = "file_key"
	}

	query := fmt.Sprintf(`UPDATE resources SET %s = $2, updated_at = NOW() WHERE id = $1`, column)
	tag, err := r.db.Exec(ctx, query, id, key)
	if err != nil {
		return fmt.Errorf("ошибка сохранения ключа объекта: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *resourceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления ресурса: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Search выполняет поиск ресурсов с динамическими фильтрами, сортировкой и пагинацией.
func (r *resourceRepo) Search(ctx context.Context, f ResourceFilter) ([]*model.Resource, int, error) {
	where, args := buildResourceWhere(f, 1)
	argNum := len(args) + 1

	orderBy := buildResourceOrderBy(f.SortBy, f.SortOrder)

	dataQuery := fmt.Sprintf(
		`SELECT %s FROM %s %s %s LIMIT $%d OFFSET $%d`,
		resourceColumns, resourceFrom, where, orderBy, argNum, argNum+1,
	)
	dataArgs := append(append([]any{}, args...), f.Limit, f.Offset)

	result, err := r.queryResources(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка поиска ресурсов: %w", err)
	}

	// Общее количество — с теми же фильтрами, без LIMIT/OFFSET
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM resources r %s`, where)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта ресурсов: %w", err)
	}

	return result, total, nil
}

func (r *resourceRepo) Popular(ctx context.Context, limit int) ([]*model.Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE v.views > 0
		ORDER BY v.views DESC, r.created_at DESC
		LIMIT $1`, resourceColumns, resourceFrom)

	result, err := r.queryResources(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения популярных ресурсов: %w", err)
	}
	return result, nil
}

func (r *resourceRepo) ListByCollection(ctx context.Context, collectionID string) ([]*model.Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		JOIN collection_items ci ON ci.resource_id = r.id
		WHERE ci.collection_id = $1
		ORDER BY ci.added_at DESC`, resourceColumns, resourceFrom)

	result, err := r.queryResources(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ресурсов коллекции: %w", err)
	}
	return result, nil
}

// queryResources выполняет SELECT resourceColumns и подгружает метки.
func (r *resourceRepo) queryResources(ctx context.Context, query string, args ...any) ([]*model.Resource, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*model.Resource{}
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования ресурса: %w", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации результатов: %w", err)
	}
	rows.Close()

	if err := r.attachLabels(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachLabels загружает метки для набора ресурсов одним запросом.
func (r *resourceRepo) attachLabels(ctx context.Context, resources []*model.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	byID := make(map[string]*model.Resource, len(resources))
	ids := make([]string, 0, len(resources))
	for _, res := range resources {
		byID[res.ID] = res
		ids = append(ids, res.ID)
	}

	query := fmt.Sprintf(`
		SELECT rl.resource_id, %s
		FROM resource_labels rl
		JOIN category_labels l ON l.id = rl.label_id
		WHERE rl.resource_id = ANY($1::uuid[])
		ORDER BY l.name`, labelColumnsPrefixed)

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("ошибка получения меток ресурсов: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resourceID, category string
		var l model.CategoryLabel
		if err := rows.Scan(&resourceID, &l.ID, &l.Name, &category, &l.CreatedAt); err != nil {
			return fmt.Errorf("ошибка сканирования метки: %w", err)
		}
		l.Category = model.Category(category)
		if res, ok := byID[resourceID]; ok {
			res.Labels = append(res.Labels, l)
		}
	}
	return rows.Err()
}

// escapeLike экранирует спецсимволы шаблона LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildResourceWhere строит WHERE-условие и аргументы для поиска ресурсов.
// startArg — номер первого $-параметра. Столбцы адресуются через алиас r.
//
//nolint:cyclop,funlen // сложность обусловлена количеством фильтров
func buildResourceWhere(f ResourceFilter, startArg int) (whereClause string, args []any) {
	var conditions []string
	argNum := startArg

	// Текстовый поиск по заголовку и описанию
	if f.Query != nil && strings.TrimSpace(*f.Query) != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(r.title ILIKE $%[1]d OR r.description ILIKE $%[1]d)", argNum))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*f.Query))+"%")
		argNum++
	}

	if len(f.Categories) > 0 {
		conditions = append(conditions, fmt.Sprintf("r.category = ANY($%d)", argNum))
		args = append(args, toStrings(f.Categories))
		argNum++
	}

	// Ресурсы ALL_AGES подходят под любой возрастной фильтр
	if len(f.AgeGroups) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"(r.age_groups && $%d::text[] OR 'ALL_AGES' = ANY(r.age_groups))", argNum))
		args = append(args, toStrings(f.AgeGroups))
		argNum++
	}

	if len(f.LabelIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM resource_labels rl WHERE rl.resource_id = r.id AND rl.label_id = ANY($%d::uuid[]))",
			argNum))
		args = append(args, f.LabelIDs)
		argNum++
	}

	if len(f.ResourceTypes) > 0 {
		conditions = append(conditions, fmt.Sprintf("r.resource_type = ANY($%d)", argNum))
		args = append(args, toStrings(f.ResourceTypes))
		argNum++
	}

	if f.HostingType != nil {
		conditions = append(conditions, fmt.Sprintf("r.hosting_type = $%d", argNum))
		args = append(args, string(*f.HostingType))
		argNum++
	}

	if f.Language != nil && *f.Language != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(r.language) = LOWER($%d)", argNum))
		args = append(args, *f.Language)
		argNum++
	}

	if f.MinTimeToRead != nil {
		conditions = append(conditions, fmt.Sprintf("r.time_to_read >= $%d", argNum))
		args = append(args, *f.MinTimeToRead)
		argNum++
	}

	if f.MaxTimeToRead != nil {
		conditions = append(conditions, fmt.Sprintf("r.time_to_read <= $%d", argNum))
		args = append(args, *f.MaxTimeToRead)
		argNum++
	}

	if f.CreatedAfter != nil {
		conditions = append(conditions, fmt.Sprintf("r.created_at >= $%d", argNum))
		args = append(args, *f.CreatedAfter)
		argNum++
	}

	if f.CreatedBefore != nil {
		conditions = append(conditions, fmt.Sprintf("r.created_at <= $%d", argNum))
		args = append(args, *f.CreatedBefore)
		argNum++
	}

	for _, collectionID := range f.CollectionIDs {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM collection_items ci WHERE ci.resource_id = r.id AND ci.collection_id = $%d)",
			argNum))
		args = append(args, collectionID)
		argNum++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return where, args
}

// Поле сортировки по умолчанию.
const defaultResourceSort = "created_at"

// buildResourceOrderBy строит ORDER BY с безопасным whitelist полей.
func buildResourceOrderBy(sortBy, sortOrder string) string {
	column := "r.created_at"
	switch strings.ToLower(sortBy) {
	case "title":
		column = "LOWER(r.title)"
	case "time_to_read":
		column = "r.time_to_read"
	case "views":
		column = "COALESCE(v.views, 0)"
	case defaultResourceSort:
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	// r.id — стабильный порядок при равных значениях
	return fmt.Sprintf("ORDER BY %s %s, r.id %s", column, direction, direction)
}
