// admins.go — обработчики /api/admins endpoints.
package handlers

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
)

// SyncAdmin — POST /api/admins/sync.
// Зеркалирует вызывающего с ролью ADMIN в таблицу admin_users.
func (h *APIHandler) SyncAdmin(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	a, err := h.admins.Sync(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка синхронизации администратора")
		return
	}

	writeJSON(w, http.StatusOK, mapAdminUser(a))
}

// GetAdminMe — GET /api/admins/me.
func (h *APIHandler) GetAdminMe(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	a, err := h.admins.Me(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения администратора")
		return
	}

	writeJSON(w, http.StatusOK, mapAdminUser(a))
}

// ListAdmins — GET /api/admins.
func (h *APIHandler) ListAdmins(w http.ResponseWriter, r *http.Request, params generated.ListAdminsParams) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, params.Limit, params.Offset)
	if !ok {
		return
	}

	page, err := h.admins.List(r.Context(), c, limit, offset)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения списка администраторов")
		return
	}

	items := make([]generated.AdminUser, len(page.Items))
	for i, a := range page.Items {
		items[i] = mapAdminUser(a)
	}

	writeJSON(w, http.StatusOK, generated.AdminUserListResponse{
		Items:   items,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore,
	})
}

// CreateAdmin — POST /api/admins.
// Назначает пользователя IdP локальным администратором.
func (h *APIHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.AdminCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.admins.Create(r.Context(), c, req.IdpUserId)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка создания администратора")
		return
	}

	writeJSON(w, http.StatusCreated, mapAdminUser(a))
}

// DeleteAdmin — DELETE /api/admins/{id}.
func (h *APIHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.admins.Delete(r.Context(), c, id.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления администратора")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Маппинг domain → API ---

func mapAdminUser(a *model.AdminUser) generated.AdminUser {
	resp := generated.AdminUser{
		Id:        a.ID,
		IdpUserId: a.IdpUserID,
		Name:      a.Name,
		Role:      generated.AdminUserRole(a.Role),
		CreatedAt: a.CreatedAt,
	}
	if a.Email != "" {
		email := openapi_types.Email(a.Email)
		resp.Email = &email
	}
	return resp
}
