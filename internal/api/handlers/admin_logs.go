// admin_logs.go — обработчики /api/admin-logs endpoints (журнал действий администраторов).
package handlers

import (
	"net/http"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

// ListAdminLogs — GET /api/admin-logs. Доступ: ADMIN.
func (h *APIHandler) ListAdminLogs(w http.ResponseWriter, r *http.Request, params generated.ListAdminLogsParams) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, params.Limit, params.Offset)
	if !ok {
		return
	}

	f := repository.AdminLogFilter{Action: params.Action}
	if params.AdminId != nil {
		id := params.AdminId.String()
		f.AdminID = &id
	}

	page, err := h.adminLogs.List(r.Context(), c, f, limit, offset)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения журнала")
		return
	}

	items := make([]generated.AdminLog, len(page.Items))
	for i, l := range page.Items {
		items[i] = mapAdminLog(l)
	}

	writeJSON(w, http.StatusOK, generated.AdminLogListResponse{
		Items:   items,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore,
	})
}

// CreateAdminLog — POST /api/admin-logs. Доступ: ADMIN.
func (h *APIHandler) CreateAdminLog(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.AdminLogCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	details := ""
	if req.Details != nil {
		details = *req.Details
	}

	l, err := h.adminLogs.Create(r.Context(), c, req.Action, details)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка записи в журнал")
		return
	}

	writeJSON(w, http.StatusCreated, mapAdminLog(l))
}

// --- Маппинг domain → API ---

func mapAdminLog(l *model.AdminLog) generated.AdminLog {
	return generated.AdminLog{
		Id:        l.ID,
		AdminId:   l.AdminID,
		Action:    l.Action,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}
