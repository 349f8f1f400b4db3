// external_resources.go — обработчики /api/external-resources endpoints.
package handlers

import (
	"net/http"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
)

// ListExternalResources — GET /api/external-resources. Доступ: ADMIN.
func (h *APIHandler) ListExternalResources(w http.ResponseWriter, r *http.Request, params generated.ListExternalResourcesParams) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, params.Limit, params.Offset)
	if !ok {
		return
	}

	page, err := h.externalResources.List(r.Context(), c, limit, offset)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения внешних ссылок")
		return
	}

	items := make([]generated.ExternalResource, len(page.Items))
	for i, e := range page.Items {
		items[i] = mapExternalResource(e)
	}

	writeJSON(w, http.StatusOK, generated.ExternalResourceListResponse{
		Items:   items,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore,
	})
}

// GetExternalResource — GET /api/external-resources/{resource_id}.
func (h *APIHandler) GetExternalResource(w http.ResponseWriter, r *http.Request, resourceId generated.ResourceIdPath) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	e, err := h.externalResources.Get(r.Context(), resourceId.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения внешней ссылки")
		return
	}

	writeJSON(w, http.StatusOK, mapExternalResource(e))
}

// PutExternalResource — PUT /api/external-resources/{resource_id}. Доступ: ADMIN.
// Ресурс должен иметь hosting_type EXTERNAL.
func (h *APIHandler) PutExternalResource(w http.ResponseWriter, r *http.Request, resourceId generated.ResourceIdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ExternalResourceUpsert
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.externalResources.Upsert(r.Context(), c, resourceId.String(), req.Url)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка сохранения внешней ссылки")
		return
	}

	writeJSON(w, http.StatusOK, mapExternalResource(e))
}

// DeleteExternalResource — DELETE /api/external-resources/{resource_id}. Доступ: ADMIN.
func (h *APIHandler) DeleteExternalResource(w http.ResponseWriter, r *http.Request, resourceId generated.ResourceIdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.externalResources.Delete(r.Context(), c, resourceId.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления внешней ссылки")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Маппинг domain → API ---

func mapExternalResource(e *model.ExternalResource) generated.ExternalResource {
	return generated.ExternalResource{
		ResourceId: e.ResourceID,
		Url:        e.URL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
