package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

// --- resources ---

type resourceRepo struct{ db *DB }

// hydrate возвращает копию ресурса с метками, ссылкой и просмотрами.
// Вызывается под мьютексом.
func (db *DB) hydrate(res *model.Resource) *model.Resource {
	c := *res
	c.AgeGroups = append([]model.AgeGroup(nil), res.AgeGroups...)
	c.Labels = []model.CategoryLabel{}
	for _, rl := range db.resLabels {
		if rl.ResourceID == res.ID {
			if l, ok := db.labels[rl.LabelID]; ok {
				c.Labels = append(c.Labels, *l)
			}
		}
	}
	sort.Slice(c.Labels, func(i, j int) bool { return c.Labels[i].Name < c.Labels[j].Name })
	c.ExternalURL = nil
	if e, ok := db.externals[res.ID]; ok {
		u := e.URL
		c.ExternalURL = &u
	}
	c.ViewCount = 0
	for _, v := range db.views {
		if v.ResourceID == res.ID {
			c.ViewCount += int64(v.ViewCount)
		}
	}
	return &c
}

func (r *resourceRepo) Create(_ context.Context, res *model.Resource) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if res.CreatedBy != nil {
		if _, ok := r.db.admins[*res.CreatedBy]; !ok {
			return repository.ErrReferenceNotFound
		}
	}
	now := r.db.now()
	res.ID, res.CreatedAt, res.UpdatedAt = newID(), now, now
	if res.Language == "" {
		res.Language = "en"
	}
	c := *res
	c.AgeGroups = append([]model.AgeGroup(nil), res.AgeGroups...)
	c.Labels, c.ExternalURL, c.ViewCount = nil, nil, 0
	r.db.resources[res.ID] = &c
	return nil
}

func (r *resourceRepo) GetByID(_ context.Context, id string) (*model.Resource, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if res, ok := r.db.resources[id]; ok {
		return r.db.hydrate(res), nil
	}
	return nil, repository.ErrNotFound
}

func (r *resourceRepo) Update(_ context.Context, res *model.Resource) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stored, ok := r.db.resources[res.ID]
	if !ok {
		return repository.ErrNotFound
	}
	res.UpdatedAt = r.db.now()
	stored.Title, stored.Description = res.Title, res.Description
	stored.ResourceType, stored.HostingType, stored.Category = res.ResourceType, res.HostingType, res.Category
	stored.AgeGroups = append([]model.AgeGroup(nil), res.AgeGroups...)
	stored.Language, stored.TimeToRead, stored.UpdatedAt = res.Language, res.TimeToRead, res.UpdatedAt
	return nil
}

func (r *resourceRepo) SetObjectKey(_ context.Context, id, kind, key string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	res, ok := r.db.resources[id]
	if !ok {
		return repository.ErrNotFound
	}
	k := key
	if kind == model.ObjectKindFile {
		res.FileKey = &k
	} else {
		res.ImageKey = &k
	}
	res.UpdatedAt = r.db.now()
	return nil
}

func (r *resourceRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.resources[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.resources, id)
	delete(r.db.externals, id)
	r.db.resLabels = filter(r.db.resLabels, func(rl *model.ResourceLabel) bool { return rl.ResourceID != id })
	r.db.items = filter(r.db.items, func(it *model.CollectionItem) bool { return it.ResourceID != id })
	r.db.views = filter(r.db.views, func(v *model.ResourceView) bool { return v.ResourceID != id })
	return nil
}

// matches повторяет семантику buildResourceWhere.
//
//nolint:cyclop // один фасет — одна ветка
func (db *DB) matches(res *model.Resource, f repository.ResourceFilter) bool {
	if f.Query != nil && strings.TrimSpace(*f.Query) != "" {
		q := strings.ToLower(strings.TrimSpace(*f.Query))
		if !strings.Contains(strings.ToLower(res.Title), q) &&
			!strings.Contains(strings.ToLower(res.Description), q) {
			return false
		}
	}
	if len(f.Categories) > 0 && !containsAny([]model.Category{res.Category}, f.Categories) {
		return false
	}
	if len(f.AgeGroups) > 0 &&
		!containsAny(res.AgeGroups, f.AgeGroups) &&
		!containsAny(res.AgeGroups, []model.AgeGroup{model.AgeGroupAllAges}) {
		return false
	}
	if len(f.LabelIDs) > 0 {
		var ids []string
		for _, rl := range db.resLabels {
			if rl.ResourceID == res.ID {
				ids = append(ids, rl.LabelID)
			}
		}
		if !containsAny(ids, f.LabelIDs) {
			return false
		}
	}
	if len(f.ResourceTypes) > 0 && !containsAny([]model.ResourceType{res.ResourceType}, f.ResourceTypes) {
		return false
	}
	if f.HostingType != nil && res.HostingType != *f.HostingType {
		return false
	}
	if f.Language != nil && *f.Language != "" && !strings.EqualFold(res.Language, *f.Language) {
		return false
	}
	if f.MinTimeToRead != nil && res.TimeToRead < *f.MinTimeToRead {
		return false
	}
	if f.MaxTimeToRead != nil && res.TimeToRead > *f.MaxTimeToRead {
		return false
	}
	if f.CreatedAfter != nil && res.CreatedAt.Before(*f.CreatedAfter) {
		return false
	}
	if f.CreatedBefore != nil && res.CreatedAt.After(*f.CreatedBefore) {
		return false
	}
	for _, cid := range f.CollectionIDs {
		found := false
		for _, it := range db.items {
			if it.CollectionID == cid && it.ResourceID == res.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *resourceRepo) Search(_ context.Context, f repository.ResourceFilter) ([]*model.Resource, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found []*model.Resource
	for _, res := range r.db.resources {
		if r.db.matches(res, f) {
			found = append(found, r.db.hydrate(res))
		}
	}

	desc := !strings.EqualFold(f.SortOrder, "asc")
	sort.Slice(found, func(i, j int) bool {
		a, b := found[i], found[j]
		var less, equal bool
		switch strings.ToLower(f.SortBy) {
		case "title":
			at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
			less, equal = at < bt, at == bt
		case "time_to_read":
			less, equal = a.TimeToRead < b.TimeToRead, a.TimeToRead == b.TimeToRead
		case "views":
			less, equal = a.ViewCount < b.ViewCount, a.ViewCount == b.ViewCount
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			less = a.ID < b.ID
		}
		if desc {
			return !less
		}
		return less
	})

	return page(found, f.Limit, f.Offset), len(found), nil
}

func (r *resourceRepo) Popular(_ context.Context, limit int) ([]*model.Resource, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var found []*model.Resource
	for _, res := range r.db.resources {
		h := r.db.hydrate(res)
		if h.ViewCount > 0 {
			found = append(found, h)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].ViewCount != found[j].ViewCount {
			return found[i].ViewCount > found[j].ViewCount
		}
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})
	return page(found, limit, 0), nil
}

func (r *resourceRepo) ListByCollection(_ context.Context, collectionID string) ([]*model.Resource, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.Resource{}
	for i := len(r.db.items) - 1; i >= 0; i-- {
		it := r.db.items[i]
		if it.CollectionID != collectionID {
			continue
		}
		if res, ok := r.db.resources[it.ResourceID]; ok {
			out = append(out, r.db.hydrate(res))
		}
	}
	return out, nil
}

// --- category_labels ---

type labelRepo struct{ db *DB }

func (r *labelRepo) duplicate(id, name string, category model.Category) bool {
	for _, l := range r.db.labels {
		if l.ID != id && l.Name == name && l.Category == category {
			return true
		}
	}
	return false
}

func (r *labelRepo) Create(_ context.Context, l *model.CategoryLabel) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.duplicate("", l.Name, l.Category) {
		return repository.ErrConflict
	}
	l.ID, l.CreatedAt = newID(), r.db.now()
	c := *l
	r.db.labels[l.ID] = &c
	return nil
}

func (r *labelRepo) GetByID(_ context.Context, id string) (*model.CategoryLabel, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if l, ok := r.db.labels[id]; ok {
		c := *l
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (r *labelRepo) GetByIDs(_ context.Context, ids []string) ([]*model.CategoryLabel, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*model.CategoryLabel
	for _, id := range ids {
		if l, ok := r.db.labels[id]; ok {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *labelRepo) List(_ context.Context, category *model.Category) ([]*model.CategoryLabel, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.CategoryLabel{}
	for _, l := range r.db.labels {
		if category == nil || l.Category == *category {
			c := *l
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *labelRepo) Rename(_ context.Context, id, name string) (*model.CategoryLabel, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.labels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if r.duplicate(id, name, l.Category) {
		return nil, repository.ErrConflict
	}
	l.Name = name
	c := *l
	return &c, nil
}

func (r *labelRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.labels[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.labels, id)
	r.db.resLabels = filter(r.db.resLabels, func(rl *model.ResourceLabel) bool { return rl.LabelID != id })
	return nil
}

// --- resource_labels ---

type resourceLabelRepo struct{ db *DB }

func (r *resourceLabelRepo) attachLocked(resourceID, labelID string) (*model.ResourceLabel, error) {
	if _, ok := r.db.resources[resourceID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	if _, ok := r.db.labels[labelID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	for _, rl := range r.db.resLabels {
		if rl.ResourceID == resourceID && rl.LabelID == labelID {
			return nil, repository.ErrConflict
		}
	}
	rl := &model.ResourceLabel{ResourceID: resourceID, LabelID: labelID, CreatedAt: r.db.now()}
	r.db.resLabels = append(r.db.resLabels, rl)
	c := *rl
	return &c, nil
}

func (r *resourceLabelRepo) Attach(_ context.Context, resourceID, labelID string) (*model.ResourceLabel, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.attachLocked(resourceID, labelID)
}

func (r *resourceLabelRepo) Detach(_ context.Context, resourceID, labelID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	before := len(r.db.resLabels)
	r.db.resLabels = filter(r.db.resLabels, func(rl *model.ResourceLabel) bool {
		return rl.ResourceID != resourceID || rl.LabelID != labelID
	})
	if len(r.db.resLabels) == before {
		return repository.ErrNotFound
	}
	return nil
}

func (r *resourceLabelRepo) List(_ context.Context, resourceID string) ([]*model.ResourceLabel, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.ResourceLabel{}
	for _, rl := range r.db.resLabels {
		if resourceID == "" || rl.ResourceID == resourceID {
			c := *rl
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *resourceLabelRepo) Replace(_ context.Context, resourceID string, labelIDs []string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, id := range labelIDs {
		if _, ok := r.db.labels[id]; !ok {
			return repository.ErrReferenceNotFound
		}
	}
	r.db.resLabels = filter(r.db.resLabels, func(rl *model.ResourceLabel) bool { return rl.ResourceID != resourceID })
	for _, id := range labelIDs {
		if _, err := r.attachLocked(resourceID, id); err != nil && err != repository.ErrConflict {
			return err
		}
	}
	return nil
}

// --- collections ---

type collectionRepo struct{ db *DB }

// withCount возвращает копию коллекции с числом элементов. Под мьютексом.
func (db *DB) withCount(c *model.Collection) *model.Collection {
	out := *c
	out.ItemCount = 0
	for _, it := range db.items {
		if it.CollectionID == c.ID {
			out.ItemCount++
		}
	}
	return &out
}

func (db *DB) deleteCollectionLocked(id string) {
	delete(db.collections, id)
	db.items = filter(db.items, func(it *model.CollectionItem) bool { return it.CollectionID != id })
}

func (r *collectionRepo) nameTaken(id, parentID, name string) bool {
	for _, c := range r.db.collections {
		if c.ID != id && c.ParentID == parentID && c.Name == name {
			return true
		}
	}
	return false
}

func (r *collectionRepo) Create(_ context.Context, c *model.Collection) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.parents[c.ParentID]; !ok {
		return repository.ErrReferenceNotFound
	}
	if r.nameTaken("", c.ParentID, c.Name) {
		return repository.ErrConflict
	}
	if c.IsDefault {
		for _, other := range r.db.collections {
			if other.ParentID == c.ParentID && other.IsDefault {
				return repository.ErrConflict
			}
		}
	}
	now := r.db.now()
	c.ID, c.CreatedAt, c.UpdatedAt = newID(), now, now
	stored := *c
	stored.Resources = nil
	r.db.collections[c.ID] = &stored
	return nil
}

func (r *collectionRepo) GetByID(_ context.Context, id string) (*model.Collection, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c, ok := r.db.collections[id]; ok {
		return r.db.withCount(c), nil
	}
	return nil, repository.ErrNotFound
}

func (r *collectionRepo) GetDefault(_ context.Context, parentID string) (*model.Collection, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.collections {
		if c.ParentID == parentID && c.IsDefault {
			return r.db.withCount(c), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *collectionRepo) ListByParent(_ context.Context, parentID string) ([]*model.Collection, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.Collection{}
	for _, c := range r.db.collections {
		if c.ParentID == parentID {
			out = append(out, r.db.withCount(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *collectionRepo) Rename(_ context.Context, id, name string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.collections[id]
	if !ok {
		return repository.ErrNotFound
	}
	if r.nameTaken(id, c.ParentID, name) {
		return repository.ErrConflict
	}
	c.Name, c.UpdatedAt = name, r.db.now()
	return nil
}

func (r *collectionRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.collections[id]; !ok {
		return repository.ErrNotFound
	}
	r.db.deleteCollectionLocked(id)
	return nil
}

func (r *collectionRepo) AddItem(_ context.Context, collectionID, resourceID string) (*model.CollectionItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.collections[collectionID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	if _, ok := r.db.resources[resourceID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	for _, it := range r.db.items {
		if it.CollectionID == collectionID && it.ResourceID == resourceID {
			return nil, repository.ErrConflict
		}
	}
	it := &model.CollectionItem{
		ID: newID(), CollectionID: collectionID, ResourceID: resourceID, AddedAt: r.db.now(),
	}
	r.db.items = append(r.db.items, it)
	c := *it
	return &c, nil
}

func (r *collectionRepo) RemoveItem(_ context.Context, collectionID, resourceID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	before := len(r.db.items)
	r.db.items = filter(r.db.items, func(it *model.CollectionItem) bool {
		return it.CollectionID != collectionID || it.ResourceID != resourceID
	})
	if len(r.db.items) == before {
		return repository.ErrNotFound
	}
	return nil
}

// --- external_resources ---

type externalRepo struct{ db *DB }

func (r *externalRepo) Upsert(_ context.Context, e *model.ExternalResource) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.resources[e.ResourceID]; !ok {
		return repository.ErrReferenceNotFound
	}
	now := r.db.now()
	if existing, ok := r.db.externals[e.ResourceID]; ok {
		existing.URL, existing.UpdatedAt = e.URL, now
		*e = *existing
		return nil
	}
	e.CreatedAt, e.UpdatedAt = now, now
	c := *e
	r.db.externals[e.ResourceID] = &c
	return nil
}

func (r *externalRepo) Get(_ context.Context, resourceID string) (*model.ExternalResource, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if e, ok := r.db.externals[resourceID]; ok {
		c := *e
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (r *externalRepo) Delete(_ context.Context, resourceID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.externals[resourceID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.externals, resourceID)
	return nil
}

func (r *externalRepo) List(_ context.Context, limit, offset int) ([]*model.ExternalResource, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.ExternalResource{}
	for _, e := range r.db.externals {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return page(out, limit, offset), nil
}

func (r *externalRepo) Count(_ context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.externals), nil
}

// --- resource_views ---

type viewRepo struct{ db *DB }

func (r *viewRepo) Record(_ context.Context, parentID, resourceID string) (*model.ResourceView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.parents[parentID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	if _, ok := r.db.resources[resourceID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	now := r.db.now()
	for _, v := range r.db.views {
		if v.ParentID == parentID && v.ResourceID == resourceID {
			v.ViewCount++
			v.LastViewedAt = now
			c := *v
			return &c, nil
		}
	}
	v := &model.ResourceView{
		ParentID: parentID, ResourceID: resourceID, ViewCount: 1,
		FirstViewedAt: now, LastViewedAt: now,
	}
	r.db.views = append(r.db.views, v)
	c := *v
	return &c, nil
}

func (r *viewRepo) ListByParent(_ context.Context, parentID string, limit, offset int) ([]*model.ResourceView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.ResourceView{}
	for _, v := range r.db.views {
		if v.ParentID == parentID {
			c := *v
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastViewedAt.After(out[j].LastViewedAt) })
	return page(out, limit, offset), nil
}

func (r *viewRepo) Stats(_ context.Context, resourceID string) (*model.ResourceViewStats, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s := &model.ResourceViewStats{ResourceID: resourceID}
	for _, v := range r.db.views {
		if v.ResourceID != resourceID {
			continue
		}
		s.TotalViews += int64(v.ViewCount)
		s.UniqueViewers++
		if s.LastViewedAt == nil || v.LastViewedAt.After(*s.LastViewedAt) {
			t := v.LastViewedAt
			s.LastViewedAt = &t
		}
	}
	return s, nil
}

func containsAny[T comparable](have, want []T) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
