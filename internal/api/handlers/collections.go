// collections.go — обработчики /api/collections endpoints.
// Коллекции принадлежат текущему родителю; коллекция закладок создаётся автоматически.
package handlers

import (
	"net/http"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ListCollections — GET /api/collections.
func (h *APIHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	colls, err := h.collections.List(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения коллекций")
		return
	}

	items := make([]generated.Collection, len(colls))
	for i, coll := range colls {
		items[i] = mapCollection(coll)
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateCollection — POST /api/collections.
func (h *APIHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.CollectionCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	coll, err := h.collections.Create(r.Context(), c, req.Name)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка создания коллекции")
		return
	}

	writeJSON(w, http.StatusCreated, mapCollection(coll))
}

// GetCollection — GET /api/collections/{id}. Ответ содержит ресурсы коллекции.
func (h *APIHandler) GetCollection(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	coll, err := h.collections.Get(r.Context(), c, id.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения коллекции")
		return
	}

	writeJSON(w, http.StatusOK, mapCollection(coll))
}

// UpdateCollection — PATCH /api/collections/{id}.
func (h *APIHandler) UpdateCollection(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.CollectionUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	coll, err := h.collections.Rename(r.Context(), c, id.String(), req.Name)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка переименования коллекции")
		return
	}

	writeJSON(w, http.StatusOK, mapCollection(coll))
}

// DeleteCollection — DELETE /api/collections/{id}.
func (h *APIHandler) DeleteCollection(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.collections.Delete(r.Context(), c, id.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления коллекции")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddCollectionItem — POST /api/collections/{id}/items.
func (h *APIHandler) AddCollectionItem(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ResourceRef
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.collections.AddItem(r.Context(), c, id.String(), req.ResourceId.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка добавления в коллекцию")
		return
	}

	writeJSON(w, http.StatusCreated, mapCollectionItem(item))
}

// RemoveCollectionItem — DELETE /api/collections/{id}/items/{resource_id}.
func (h *APIHandler) RemoveCollectionItem(w http.ResponseWriter, r *http.Request, id generated.IdPath, resourceId generated.ResourceIdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.collections.RemoveItem(r.Context(), c, id.String(), resourceId.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления из коллекции")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Маппинг domain → API ---

func mapCollection(coll *model.Collection) generated.Collection {
	resp := generated.Collection{
		Id:        coll.ID,
		ParentId:  coll.ParentID,
		Name:      coll.Name,
		IsDefault: coll.IsDefault,
		ItemCount: coll.ItemCount,
		CreatedAt: coll.CreatedAt,
		UpdatedAt: coll.UpdatedAt,
	}
	if coll.Resources != nil {
		resources := mapResources(coll.Resources)
		resp.Resources = &resources
	}
	return resp
}

func mapCollectionItem(item *model.CollectionItem) generated.CollectionItem {
	return generated.CollectionItem{
		Id:           item.ID,
		CollectionId: item.CollectionID,
		ResourceId:   item.ResourceID,
		AddedAt:      item.AddedAt,
	}
}
