// Пакет memstore — хранилище в памяти с интерфейсами repository.
// Повторяет ограничения схемы PostgreSQL (уникальность, внешние ключи,
// каскадное удаление) и используется в unit-тестах сервисов и обработчиков.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

// DB — состояние хранилища. Все репозитории разделяют один мьютекс.
type DB struct {
	mu sync.Mutex

	parents     map[string]*model.Parent
	admins      map[string]*model.AdminUser
	resources   map[string]*model.Resource
	labels      map[string]*model.CategoryLabel
	resLabels   []*model.ResourceLabel
	collections map[string]*model.Collection
	items       []*model.CollectionItem
	externals   map[string]*model.ExternalResource
	logs        []*model.AdminLog
	views       []*model.ResourceView

	// clock — источник времени; монотонно растёт, чтобы сортировка была стабильной
	clock time.Time
}

// New создаёт пустое хранилище.
func New() *DB {
	return &DB{
		parents:     map[string]*model.Parent{},
		admins:      map[string]*model.AdminUser{},
		resources:   map[string]*model.Resource{},
		labels:      map[string]*model.CategoryLabel{},
		collections: map[string]*model.Collection{},
		externals:   map[string]*model.ExternalResource{},
		clock:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Store возвращает набор репозиториев поверх хранилища.
func (db *DB) Store() *repository.Store {
	return &repository.Store{
		Parents:           &parentRepo{db},
		Admins:            &adminRepo{db},
		Resources:         &resourceRepo{db},
		Labels:            &labelRepo{db},
		ResourceLabels:    &resourceLabelRepo{db},
		Collections:       &collectionRepo{db},
		ExternalResources: &externalRepo{db},
		AdminLogs:         &adminLogRepo{db},
		ResourceViews:     &viewRepo{db},
	}
}

// InTx выполняет fn над тем же хранилищем. Откат не поддерживается.
func (db *DB) InTx(_ context.Context, fn func(s *repository.Store) error) error {
	return fn(db.Store())
}

// now возвращает следующее значение часов. Вызывается под мьютексом.
func (db *DB) now() time.Time {
	db.clock = db.clock.Add(time.Millisecond)
	return db.clock
}

func newID() string { return uuid.NewString() }

// --- parents ---

type parentRepo struct{ db *DB }

func cloneParent(p *model.Parent) *model.Parent {
	c := *p
	c.TopicsOfInterest = append([]model.Category(nil), p.TopicsOfInterest...)
	c.KidsAgeGroups = append([]model.AgeGroup(nil), p.KidsAgeGroups...)
	return &c
}

func (r *parentRepo) UpsertIdentity(_ context.Context, rec model.IdentityRecord) (*model.Parent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.parents {
		if p.IdpUserID == rec.IdpUserID {
			if rec.Email != "" {
				p.Email = rec.Email
			}
			if rec.FirstName != "" {
				p.FirstName = rec.FirstName
			}
			if rec.LastName != "" {
				p.LastName = rec.LastName
			}
			p.UpdatedAt = r.db.now()
			return cloneParent(p), nil
		}
	}
	now := r.db.now()
	p := &model.Parent{
		ID: newID(), IdpUserID: rec.IdpUserID, Email: rec.Email,
		FirstName: rec.FirstName, LastName: rec.LastName,
		TopicsOfInterest: []model.Category{}, KidsAgeGroups: []model.AgeGroup{},
		CreatedAt: now, UpdatedAt: now,
	}
	r.db.parents[p.ID] = p
	return cloneParent(p), nil
}

func (r *parentRepo) GetByID(_ context.Context, id string) (*model.Parent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p, ok := r.db.parents[id]; ok {
		return cloneParent(p), nil
	}
	return nil, repository.ErrNotFound
}

func (r *parentRepo) GetByIdpUserID(_ context.Context, idpUserID string) (*model.Parent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.parents {
		if p.IdpUserID == idpUserID {
			return cloneParent(p), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *parentRepo) Update(_ context.Context, p *model.Parent) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.parents[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = r.db.now()
	r.db.parents[p.ID] = cloneParent(p)
	return nil
}

func (r *parentRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.parents[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.parents, id)
	for cid, c := range r.db.collections {
		if c.ParentID == id {
			r.db.deleteCollectionLocked(cid)
		}
	}
	r.db.views = filter(r.db.views, func(v *model.ResourceView) bool { return v.ParentID != id })
	return nil
}

func (r *parentRepo) matching(q string) []*model.Parent {
	q = strings.ToLower(q)
	var out []*model.Parent
	for _, p := range r.db.parents {
		if q == "" || strings.Contains(strings.ToLower(p.Email), q) ||
			strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.FirstName+" "+p.LastName), q) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *parentRepo) List(_ context.Context, q string, limit, offset int) ([]*model.Parent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*model.Parent
	for _, p := range page(r.matching(q), limit, offset) {
		out = append(out, cloneParent(p))
	}
	return out, nil
}

func (r *parentRepo) Count(_ context.Context, q string) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.matching(q)), nil
}

// --- admin_users ---

type adminRepo struct{ db *DB }

func (r *adminRepo) findByIdp(idpUserID string) *model.AdminUser {
	for _, a := range r.db.admins {
		if a.IdpUserID == idpUserID {
			return a
		}
	}
	return nil
}

func (r *adminRepo) Create(_ context.Context, a *model.AdminUser) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.findByIdp(a.IdpUserID) != nil {
		return repository.ErrConflict
	}
	a.ID, a.Role, a.CreatedAt = newID(), "ADMIN", r.db.now()
	c := *a
	r.db.admins[a.ID] = &c
	return nil
}

func (r *adminRepo) Upsert(_ context.Context, a *model.AdminUser) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if existing := r.findByIdp(a.IdpUserID); existing != nil {
		if a.Email != "" {
			existing.Email = a.Email
		}
		if a.Name != "" {
			existing.Name = a.Name
		}
		*a = *existing
		return nil
	}
	a.ID, a.Role, a.CreatedAt = newID(), "ADMIN", r.db.now()
	c := *a
	r.db.admins[a.ID] = &c
	return nil
}

func (r *adminRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if a, ok := r.db.admins[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (r *adminRepo) GetByIdpUserID(_ context.Context, idpUserID string) (*model.AdminUser, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if a := r.findByIdp(idpUserID); a != nil {
		c := *a
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (r *adminRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.admins[id]; !ok {
		return repository.ErrNotFound
	}
	for _, l := range r.db.logs {
		if l.AdminID == id {
			return repository.ErrConflict
		}
	}
	delete(r.db.admins, id)
	for _, res := range r.db.resources {
		if res.CreatedBy != nil && *res.CreatedBy == id {
			res.CreatedBy = nil
		}
	}
	return nil
}

func (r *adminRepo) List(_ context.Context, limit, offset int) ([]*model.AdminUser, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]*model.AdminUser, 0, len(r.db.admins))
	for _, a := range r.db.admins {
		c := *a
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (r *adminRepo) Count(_ context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.admins), nil
}

// --- admin_logs ---

type adminLogRepo struct{ db *DB }

func (r *adminLogRepo) Create(_ context.Context, l *model.AdminLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.admins[l.AdminID]; !ok {
		return repository.ErrReferenceNotFound
	}
	l.ID, l.CreatedAt = newID(), r.db.now()
	c := *l
	r.db.logs = append(r.db.logs, &c)
	return nil
}

func (r *adminLogRepo) matching(f repository.AdminLogFilter) []*model.AdminLog {
	var out []*model.AdminLog
	for i := len(r.db.logs) - 1; i >= 0; i-- {
		l := r.db.logs[i]
		if f.AdminID != nil && l.AdminID != *f.AdminID {
			continue
		}
		if f.Action != nil && l.Action != *f.Action {
			continue
		}
		c := *l
		out = append(out, &c)
	}
	return out
}

func (r *adminLogRepo) List(_ context.Context, f repository.AdminLogFilter, limit, offset int) ([]*model.AdminLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return page(r.matching(f), limit, offset), nil
}

func (r *adminLogRepo) Count(_ context.Context, f repository.AdminLogFilter) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.matching(f)), nil
}

// --- общие помощники ---

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
