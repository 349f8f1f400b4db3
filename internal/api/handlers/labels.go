// labels.go — обработчики /api/labels и /api/resource-labels endpoints.
package handlers

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ListLabels — GET /api/labels.
func (h *APIHandler) ListLabels(w http.ResponseWriter, r *http.Request, params generated.ListLabelsParams) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	var category *model.Category
	if params.Category != nil {
		v := model.Category(*params.Category)
		category = &v
	}

	labels, err := h.labels.List(r.Context(), category)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения меток")
		return
	}

	items := make([]generated.Label, len(labels))
	for i, l := range labels {
		items[i] = mapLabel(l)
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateLabel — POST /api/labels. Доступ: ADMIN.
func (h *APIHandler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.LabelCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.labels.Create(r.Context(), c, req.Name, model.Category(req.Category))
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка создания метки")
		return
	}

	writeJSON(w, http.StatusCreated, mapLabel(l))
}

// UpdateLabel — PATCH /api/labels/{id}. Доступ: ADMIN.
func (h *APIHandler) UpdateLabel(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.LabelUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.labels.Rename(r.Context(), c, id.String(), req.Name)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка переименования метки")
		return
	}

	writeJSON(w, http.StatusOK, mapLabel(l))
}

// DeleteLabel — DELETE /api/labels/{id}. Доступ: ADMIN.
// Метка снимается со всех ресурсов.
func (h *APIHandler) DeleteLabel(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.labels.Delete(r.Context(), c, id.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления метки")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListResourceLabels — GET /api/resource-labels.
func (h *APIHandler) ListResourceLabels(w http.ResponseWriter, r *http.Request, params generated.ListResourceLabelsParams) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	resourceID := ""
	if params.ResourceId != nil {
		resourceID = params.ResourceId.String()
	}

	links, err := h.labels.ListResourceLabels(r.Context(), resourceID)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения меток ресурсов")
		return
	}

	items := make([]generated.ResourceLabel, len(links))
	for i, rl := range links {
		items[i] = mapResourceLabel(rl)
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateResourceLabel — POST /api/resource-labels. Доступ: ADMIN.
// Категория метки должна совпадать с категорией ресурса.
func (h *APIHandler) CreateResourceLabel(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ResourceLabelCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	rl, err := h.labels.Attach(r.Context(), c, req.ResourceId.String(), req.LabelId.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка привязки метки")
		return
	}

	writeJSON(w, http.StatusCreated, mapResourceLabel(rl))
}

// DeleteResourceLabel — DELETE /api/resource-labels/{resource_id}/{label_id}. Доступ: ADMIN.
func (h *APIHandler) DeleteResourceLabel(w http.ResponseWriter, r *http.Request, resourceId generated.ResourceIdPath, labelId openapi_types.UUID) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.labels.Detach(r.Context(), c, resourceId.String(), labelId.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка отвязки метки")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Маппинг domain → API ---

func mapLabel(l *model.CategoryLabel) generated.Label {
	return generated.Label{
		Id:        l.ID,
		Name:      l.Name,
		Category:  generated.Category(l.Category),
		CreatedAt: l.CreatedAt,
	}
}

func mapResourceLabel(rl *model.ResourceLabel) generated.ResourceLabel {
	return generated.ResourceLabel{
		ResourceId: rl.ResourceID,
		LabelId:    rl.LabelID,
		CreatedAt:  rl.CreatedAt,
	}
}
