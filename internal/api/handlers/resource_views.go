// resource_views.go — обработчики /api/resource-views endpoints.
package handlers

import (
	"net/http"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
)

// RecordResourceView — POST /api/resource-views.
// Повторный просмотр увеличивает счётчик пары (родитель, ресурс).
func (h *APIHandler) RecordResourceView(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ResourceRef
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.views.Record(r.Context(), c, req.ResourceId.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка записи просмотра")
		return
	}

	writeJSON(w, http.StatusOK, mapResourceView(v))
}

// ListMyResourceViews — GET /api/resource-views/me.
func (h *APIHandler) ListMyResourceViews(w http.ResponseWriter, r *http.Request, params generated.ListMyResourceViewsParams) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, params.Limit, params.Offset)
	if !ok {
		return
	}

	views, err := h.views.History(r.Context(), c, limit, offset)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения истории просмотров")
		return
	}

	items := make([]generated.ResourceView, len(views))
	for i, v := range views {
		items[i] = mapResourceView(v)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetResourceViewStats — GET /api/resource-views/stats/{resource_id}. Доступ: ADMIN.
func (h *APIHandler) GetResourceViewStats(w http.ResponseWriter, r *http.Request, resourceId generated.ResourceIdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	s, err := h.views.Stats(r.Context(), c, resourceId.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения статистики просмотров")
		return
	}

	writeJSON(w, http.StatusOK, generated.ResourceViewStats{
		ResourceId:    s.ResourceID,
		TotalViews:    s.TotalViews,
		UniqueViewers: s.UniqueViewers,
		LastViewedAt:  s.LastViewedAt,
	})
}

// --- Маппинг domain → API ---

func mapResourceView(v *model.ResourceView) generated.ResourceView {
	return generated.ResourceView{
		ParentId:      v.ParentID,
		ResourceId:    v.ResourceID,
		ViewCount:     v.ViewCount,
		FirstViewedAt: v.FirstViewedAt,
		LastViewedAt:  v.LastViewedAt,
	}
}
