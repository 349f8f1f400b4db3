// resources.go — сервис каталога ресурсов.
// Координирует repository, LRU-кэш, объектное хранилище и Prometheus-метрики.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/objectstore"
	"github.com/bigkaa/parentlib/internal/repository"
)

// Prometheus-метрики поиска.
var (
	searchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pl_resource_search_total",
		Help: "Общее количество поисковых запросов по каталогу.",
	})
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pl_resource_search_duration_seconds",
		Help:    "Длительность поисковых запросов по каталогу.",
		Buckets: prometheus.DefBuckets,
	})
)

// Ограничения полей ресурса.
const (
	maxTitleLength    = 255
	maxLanguageLength = 16
	defaultLanguage   = "en"
	defaultPopular    = 10
	maxPopular        = 50
)

// Presigner выдаёт pre-signed URL. Реализуется *objectstore.Client.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (*objectstore.PresignedURL, error)
	PresignGet(ctx context.Context, key string) (*objectstore.PresignedURL, error)
}

// ResourceInput — данные для создания ресурса.
type ResourceInput struct {
	Title        string
	Description  string
	ResourceType model.ResourceType
	HostingType  model.HostingType
	Category     model.Category
	AgeGroups    []model.AgeGroup
	Language     *string
	TimeToRead   *int
	LabelIDs     []string
	ExternalURL  *string
}

// ResourceQuery — параметры поиска ресурсов для вызывающего.
type ResourceQuery struct {
	Filter repository.ResourceFilter
	// CollectionID — только ресурсы коллекции вызывающего
	CollectionID *string
	// Bookmarked — только ресурсы из закладок вызывающего
	Bookmarked bool
}

// ResourceService — сервис каталога.
type ResourceService struct {
	store     *repository.Store
	tx        Transactor
	cache     *ResourceCache
	presigner Presigner
	logger    *slog.Logger
}

// NewResourceService создаёт сервис каталога.
// presigner может быть nil: операции с файлами вернут ErrStorageUnavailable.
func NewResourceService(
	store *repository.Store,
	tx Transactor,
	cache *ResourceCache,
	presigner Presigner,
	logger *slog.Logger,
) *ResourceService {
	return &ResourceService{
		store:     store,
		tx:        tx,
		cache:     cache,
		presigner: presigner,
		logger:    logger.With(slog.String("component", "resource_service")),
	}
}

// --- Поиск ---

// Search выполняет поиск ресурсов с фильтрами.
// collection_id проверяется на принадлежность вызывающему.
func (s *ResourceService) Search(ctx context.Context, c Caller, q ResourceQuery) (*Page[*model.Resource], error) {
	if err := ValidateFilter(q.Filter); err != nil {
		return nil, err
	}

	f := q.Filter
	if q.CollectionID != nil || q.Bookmarked {
		parent, err := ensureParent(ctx, s.store, c)
		if err != nil {
			return nil, err
		}
		if q.CollectionID != nil {
			coll, err := s.store.Collections.GetByID(ctx, *q.CollectionID)
			if err != nil {
				return nil, mapRepoError(err, "коллекция")
			}
			if coll.ParentID != parent.ID {
				return nil, fmt.Errorf("%w: коллекция принадлежит другому пользователю", ErrForbidden)
			}
			f.CollectionIDs = append(f.CollectionIDs, coll.ID)
		}
		if q.Bookmarked {
			bookmarks, err := defaultCollection(ctx, s.store, parent.ID)
			if err != nil {
				return nil, err
			}
			f.CollectionIDs = append(f.CollectionIDs, bookmarks.ID)
		}
	}

	start := time.Now()
	searchTotal.Inc()

	items, total, err := s.store.Resources.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("поиск ресурсов: %w", err)
	}

	duration := time.Since(start)
	searchDuration.Observe(duration.Seconds())

	s.logger.Debug("Поиск выполнен",
		slog.Int("total", total),
		slog.Int("returned", len(items)),
		slog.Duration("duration", duration),
	)

	return newPage(items, total, f.Limit, f.Offset), nil
}

// Допустимые поля сортировки.
var sortFields = map[string]bool{"": true, "created_at": true, "title": true, "time_to_read": true, "views": true}

// ValidateFilter проверяет значения фасетов и диапазонов.
func ValidateFilter(f repository.ResourceFilter) error {
	for _, v := range f.Categories {
		if !v.Valid() {
			return validationf("недопустимая категория %q", v)
		}
	}
	for _, v := range f.AgeGroups {
		if !v.Valid() {
			return validationf("недопустимая возрастная группа %q", v)
		}
	}
	for _, v := range f.ResourceTypes {
		if !v.Valid() {
			return validationf("недопустимый resource_type %q", v)
		}
	}
	if f.HostingType != nil && !f.HostingType.Valid() {
		return validationf("недопустимый hosting_type %q", *f.HostingType)
	}
	if f.MinTimeToRead != nil && *f.MinTimeToRead < 0 {
		return validationf("min_time_to_read не может быть отрицательным")
	}
	if f.MinTimeToRead != nil && f.MaxTimeToRead != nil && *f.MinTimeToRead > *f.MaxTimeToRead {
		return validationf("min_time_to_read больше max_time_to_read")
	}
	if f.CreatedAfter != nil && f.CreatedBefore != nil && f.CreatedAfter.After(*f.CreatedBefore) {
		return validationf("created_after позже created_before")
	}
	if !sortFields[strings.ToLower(f.SortBy)] {
		return validationf("недопустимое поле сортировки %q", f.SortBy)
	}
	switch strings.ToLower(f.SortOrder) {
	case "", "asc", "desc":
	default:
		return validationf("недопустимый порядок сортировки %q", f.SortOrder)
	}
	return nil
}

// Popular возвращает самые просматриваемые ресурсы.
func (s *ResourceService) Popular(ctx context.Context, limit *int) ([]*model.Resource, error) {
	l := defaultPopular
	if limit != nil {
		l = max(1, min(*limit, maxPopular))
	}
	items, err := s.store.Resources.Popular(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("популярные ресурсы: %w", err)
	}
	return items, nil
}

// --- Чтение ---

// Get возвращает ресурс по ID. Сначала проверяет кэш.
func (s *ResourceService) Get(ctx context.Context, id string) (*model.Resource, error) {
	if res, ok := s.cache.Get(id); ok {
		return res, nil
	}

	res, err := s.store.Resources.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "ресурс")
	}
	s.cache.Set(id, res)
	return res, nil
}

// --- Изменение (ADMIN) ---

// Create создаёт ресурс вместе с метками и внешней ссылкой в одной транзакции.
func (s *ResourceService) Create(ctx context.Context, c Caller, in ResourceInput) (*model.Resource, error) {
	res := &model.Resource{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		ResourceType: in.ResourceType,
		HostingType:  in.HostingType,
		Category:     in.Category,
		AgeGroups:    dedupe(in.AgeGroups),
		Language:     defaultLanguage,
	}
	if in.Language != nil {
		res.Language = strings.TrimSpace(*in.Language)
	}
	if in.TimeToRead != nil {
		res.TimeToRead = *in.TimeToRead
	}
	if err := validateResource(res); err != nil {
		return nil, err
	}
	externalURL, err := checkExternalURL(res.HostingType, in.ExternalURL, nil)
	if err != nil {
		return nil, err
	}
	labelIDs := dedupe(in.LabelIDs)

	err = audit(ctx, s.tx, c, model.ActionResourceCreate, func(st *repository.Store, admin *model.AdminUser) (string, error) {
		if err := checkLabels(ctx, st, res.Category, labelIDs); err != nil {
			return "", err
		}
		res.CreatedBy = &admin.ID
		if err := st.Resources.Create(ctx, res); err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		if len(labelIDs) > 0 {
			if err := st.ResourceLabels.Replace(ctx, res.ID, labelIDs); err != nil {
				return "", mapRepoError(err, "метки ресурса")
			}
		}
		if externalURL != "" {
			ext := &model.ExternalResource{ResourceID: res.ID, URL: externalURL}
			if err := st.ExternalResources.Upsert(ctx, ext); err != nil {
				return "", mapRepoError(err, "внешняя ссылка")
			}
		}
		return fmt.Sprintf("resource %s %q", res.ID, res.Title), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Ресурс создан", slog.String("resource_id", res.ID), slog.String("title", res.Title))
	return s.reload(ctx, res.ID)
}

// Update частично обновляет ресурс. Если передан LabelIDs — набор меток
// заменяется в той же транзакции, что и строка ресурса.
func (s *ResourceService) Update(ctx context.Context, c Caller, id string, upd model.ResourceUpdate) (*model.Resource, error) {
	err := audit(ctx, s.tx, c, model.ActionResourceUpdate, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		res, err := st.Resources.GetByID(ctx, id)
		if err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		categoryChanged := upd.Category != nil && *upd.Category != res.Category

		applyResourceUpdate(res, upd)
		if err := validateResource(res); err != nil {
			return "", err
		}

		externalURL, err := checkExternalURL(res.HostingType, upd.ExternalURL, res.ExternalURL)
		if err != nil {
			return "", err
		}

		if upd.LabelIDs != nil {
			labelIDs := dedupe(*upd.LabelIDs)
			if err := checkLabels(ctx, st, res.Category, labelIDs); err != nil {
				return "", err
			}
			if err := st.ResourceLabels.Replace(ctx, res.ID, labelIDs); err != nil {
				return "", mapRepoError(err, "метки ресурса")
			}
		} else if categoryChanged && len(res.Labels) > 0 {
			return "", validationf("при смене категории нужно передать label_ids новой категории")
		}

		if err := st.Resources.Update(ctx, res); err != nil {
			return "", mapRepoError(err, "ресурс")
		}

		switch {
		case res.HostingType == model.HostingExternal && externalURL != "":
			ext := &model.ExternalResource{ResourceID: res.ID, URL: externalURL}
			if err := st.ExternalResources.Upsert(ctx, ext); err != nil {
				return "", mapRepoError(err, "внешняя ссылка")
			}
		case res.HostingType == model.HostingInternal && res.ExternalURL != nil:
			if err := st.ExternalResources.Delete(ctx, res.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
				return "", mapRepoError(err, "внешняя ссылка")
			}
		}
		return fmt.Sprintf("resource %s %q", res.ID, res.Title), nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(id)
	return s.reload(ctx, id)
}

// Delete удаляет ресурс.
func (s *ResourceService) Delete(ctx context.Context, c Caller, id string) error {
	err := audit(ctx, s.tx, c, model.ActionResourceDelete, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		res, err := st.Resources.GetByID(ctx, id)
		if err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		if err := st.Resources.Delete(ctx, id); err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		return fmt.Sprintf("resource %s %q", res.ID, res.Title), nil
	})
	if err != nil {
		return err
	}

	s.cache.Delete(id)
	s.logger.Info("Ресурс удалён", slog.String("resource_id", id))
	return nil
}

// reload читает ресурс из БД и обновляет кэш.
func (s *ResourceService) reload(ctx context.Context, id string) (*model.Resource, error) {
	res, err := s.store.Resources.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "ресурс")
	}
	s.cache.Set(id, res)
	return res, nil
}

// --- Объектное хранилище ---

// UploadURL выдаёт pre-signed PUT URL и сохраняет ключ объекта в ресурсе.
// kind: image — обложка, file — содержимое (только INTERNAL).
func (s *ResourceService) UploadURL(ctx context.Context, c Caller, id, kind, filename, contentType string) (*objectstore.PresignedURL, error) {
	if kind != model.ObjectKindImage && kind != model.ObjectKindFile {
		return nil, validationf("kind должен быть image или file")
	}
	if strings.TrimSpace(filename) == "" {
		return nil, validationf("filename обязателен")
	}
	if kind == model.ObjectKindImage && contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, validationf("content_type обложки должен быть image/*")
	}
	if s.presigner == nil {
		return nil, ErrStorageUnavailable
	}

	var signed *objectstore.PresignedURL
	err := audit(ctx, s.tx, c, model.ActionResourceUpload, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		res, err := st.Resources.GetByID(ctx, id)
		if err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		if kind == model.ObjectKindFile && res.HostingType != model.HostingInternal {
			return "", validationf("файл содержимого допустим только для INTERNAL ресурсов")
		}

		key := objectstore.ObjectKey(res.ID, kind, filename)
		signed, err = s.presigner.PresignPut(ctx, key, contentType)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if err := st.Resources.SetObjectKey(ctx, res.ID, kind, key); err != nil {
			return "", mapRepoError(err, "ресурс")
		}
		return fmt.Sprintf("resource %s %s %s", res.ID, kind, key), nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(id)
	return signed, nil
}

// DownloadURL выдаёт pre-signed GET URL объекта ресурса.
func (s *ResourceService) DownloadURL(ctx context.Context, id, kind string) (*objectstore.PresignedURL, error) {
	if kind != model.ObjectKindImage && kind != model.ObjectKindFile {
		return nil, validationf("kind должен быть image или file")
	}
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := res.ImageKey
	if kind == model.ObjectKindFile {
		key = res.FileKey
	}
	if key == nil || *key == "" {
		return nil, fmt.Errorf("%w: у ресурса нет объекта %s", ErrNotFound, kind)
	}
	if s.presigner == nil {
		return nil, ErrStorageUnavailable
	}

	signed, err := s.presigner.PresignGet(ctx, *key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return signed, nil
}

// --- Валидация ---

func validateResource(res *model.Resource) error {
	switch {
	case res.Title == "":
		return validationf("title обязателен")
	case len(res.Title) > maxTitleLength:
		return validationf("title длиннее %d символов", maxTitleLength)
	case !res.ResourceType.Valid():
		return validationf("недопустимый resource_type %q", res.ResourceType)
	case !res.HostingType.Valid():
		return validationf("недопустимый hosting_type %q", res.HostingType)
	case !res.Category.Valid():
		return validationf("недопустимая категория %q", res.Category)
	case len(res.AgeGroups) == 0:
		return validationf("age_groups не может быть пустым")
	case res.Language == "" || len(res.Language) > maxLanguageLength:
		return validationf("недопустимый language %q", res.Language)
	case res.TimeToRead < 0:
		return validationf("time_to_read не может быть отрицательным")
	}
	for _, a := range res.AgeGroups {
		if !a.Valid() {
			return validationf("недопустимая возрастная группа %q", a)
		}
	}
	return nil
}

func applyResourceUpdate(res *model.Resource, upd model.ResourceUpdate) {
	if upd.Title != nil {
		res.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		res.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.ResourceType != nil {
		res.ResourceType = *upd.ResourceType
	}
	if upd.HostingType != nil {
		res.HostingType = *upd.HostingType
	}
	if upd.Category != nil {
		res.Category = *upd.Category
	}
	if upd.AgeGroups != nil {
		res.AgeGroups = dedupe(*upd.AgeGroups)
	}
	if upd.Language != nil {
		res.Language = strings.TrimSpace(*upd.Language)
	}
	if upd.TimeToRead != nil {
		res.TimeToRead = *upd.TimeToRead
	}
}

// checkExternalURL проверяет согласованность hosting_type и внешней ссылки.
// Возвращает нормализованный URL для записи ("" — записывать нечего).
func checkExternalURL(hosting model.HostingType, submitted, current *string) (string, error) {
	if hosting == model.HostingInternal {
		if submitted != nil && *submitted != "" {
			return "", validationf("external_url недопустим для INTERNAL ресурса")
		}
		return "", nil
	}
	if submitted == nil {
		if current == nil {
			return "", validationf("external_url обязателен для EXTERNAL ресурса")
		}
		return "", nil
	}
	return normalizeExternalURL(*submitted)
}

// normalizeExternalURL проверяет, что ссылка — абсолютный http(s) URL.
func normalizeExternalURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", validationf("external_url должен быть абсолютным http(s) URL")
	}
	return u.String(), nil
}

// checkLabels проверяет, что все метки существуют и относятся к категории ресурса.
func checkLabels(ctx context.Context, st *repository.Store, category model.Category, labelIDs []string) error {
	if len(labelIDs) == 0 {
		return nil
	}
	labels, err := st.Labels.GetByIDs(ctx, labelIDs)
	if err != nil {
		return fmt.Errorf("получение меток: %w", err)
	}
	found := make(map[string]*model.CategoryLabel, len(labels))
	for _, l := range labels {
		found[l.ID] = l
	}
	for _, id := range labelIDs {
		l, ok := found[id]
		if !ok {
			return validationf("метка %s не найдена", id)
		}
		if l.Category != category {
			return validationf("метка %q относится к категории %s, а ресурс — к %s", l.Name, l.Category, category)
		}
	}
	return nil
}

// dedupe удаляет повторы, сохраняя порядок.
func dedupe[T comparable](items []T) []T {
	seen := make(map[T]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
