// users.go — обработчики /api/users endpoints.
// Профиль родителя, закладки, webhook Identity Provider и администрирование родителей.
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	apierrors "github.com/bigkaa/parentlib/internal/api/errors"
	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
)

// maxWebhookBody — максимальный размер тела события webhook.
const maxWebhookBody = 1 << 20

// SyncUser — POST /api/users/sync.
// Создаёт или обновляет запись родителя по данным токена и IdP.
func (h *APIHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	p, err := h.parents.Sync(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка синхронизации пользователя")
		return
	}

	writeJSON(w, http.StatusOK, mapParent(p))
}

// GetMe — GET /api/users/me.
func (h *APIHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	p, err := h.parents.Me(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения профиля")
		return
	}

	writeJSON(w, http.StatusOK, mapParent(p))
}

// UpdateMe — PATCH /api/users/me.
// Частичное обновление профиля и онбординга.
func (h *APIHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ParentUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := model.ParentUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Newsletter: req.Newsletter,
		Onboarded:  req.Onboarded,
	}
	if req.RelationshipType != nil {
		v := model.RelationshipType(*req.RelationshipType)
		upd.RelationshipType = &v
	}
	if req.HouseholdType != nil {
		v := model.HouseholdType(*req.HouseholdType)
		upd.HouseholdType = &v
	}
	if req.TopicsOfInterest != nil {
		v := toModelCategories(*req.TopicsOfInterest)
		upd.TopicsOfInterest = &v
	}
	if req.KidsAgeGroups != nil {
		v := toModelAgeGroups(*req.KidsAgeGroups)
		upd.KidsAgeGroups = &v
	}

	p, err := h.parents.UpdateMe(r.Context(), c, upd)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка обновления профиля")
		return
	}

	writeJSON(w, http.StatusOK, mapParent(p))
}

// ListBookmarks — GET /api/users/me/bookmarks.
func (h *APIHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	items, err := h.collections.Bookmarks(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения закладок")
		return
	}

	writeJSON(w, http.StatusOK, mapResources(items))
}

// AddBookmark — POST /api/users/me/bookmarks.
func (h *APIHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ResourceRef
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.collections.AddBookmark(r.Context(), c, req.ResourceId.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка добавления закладки")
		return
	}

	writeJSON(w, http.StatusCreated, mapCollectionItem(item))
}

// RemoveBookmark — DELETE /api/users/me/bookmarks/{resource_id}.
func (h *APIHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request, resourceId generated.ResourceIdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.collections.RemoveBookmark(r.Context(), c, resourceId.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления закладки")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUserWebhook — POST /api/users/webhook.
// Событие IdP подписано HMAC-SHA256 (заголовок X-Webhook-Signature).
func (h *APIHandler) HandleUserWebhook(w http.ResponseWriter, r *http.Request, params generated.HandleUserWebhookParams) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apierrors.ValidationError(w, "Тело события слишком большое")
			return
		}
		apierrors.ValidationError(w, "Ошибка чтения тела события: "+err.Error())
		return
	}

	signature := ""
	if params.XWebhookSignature != nil {
		signature = *params.XWebhookSignature
	}

	res, err := h.parents.HandleWebhook(r.Context(), body, signature)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка обработки события webhook")
		return
	}

	h.logger.Info("Событие webhook обработано",
		slog.String("event", res.Event),
		slog.Bool("applied", res.Applied),
	)
	writeJSON(w, http.StatusOK, generated.WebhookAck{Applied: res.Applied, Event: res.Event})
}

// ListParents — GET /api/users.
// Доступ: ADMIN.
func (h *APIHandler) ListParents(w http.ResponseWriter, r *http.Request, params generated.ListParentsParams) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, params.Limit, params.Offset)
	if !ok {
		return
	}

	q := ""
	if params.Q != nil {
		q = *params.Q
	}

	page, err := h.parents.List(r.Context(), c, q, limit, offset)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения списка родителей")
		return
	}

	items := make([]generated.Parent, len(page.Items))
	for i, p := range page.Items {
		items[i] = mapParent(p)
	}

	writeJSON(w, http.StatusOK, generated.ParentListResponse{
		Items:   items,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore,
	})
}

// GetParent — GET /api/users/{id}.
// Доступ: ADMIN.
func (h *APIHandler) GetParent(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	p, err := h.parents.Get(r.Context(), c, id.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения родителя")
		return
	}

	writeJSON(w, http.StatusOK, mapParent(p))
}

// DeleteParent — DELETE /api/users/{id}.
// Удаляет родителя вместе с коллекциями и историей просмотров. Доступ: ADMIN.
func (h *APIHandler) DeleteParent(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.parents.Delete(r.Context(), c, id.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления родителя")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Маппинг domain → API ---

func mapParent(p *model.Parent) generated.Parent {
	resp := generated.Parent{
		Id:               p.ID,
		IdpUserId:        p.IdpUserID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		TopicsOfInterest: make([]generated.Category, len(p.TopicsOfInterest)),
		KidsAgeGroups:    make([]generated.AgeGroup, len(p.KidsAgeGroups)),
		Newsletter:       p.Newsletter,
		Onboarded:        p.Onboarded,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Email != "" {
		email := openapi_types.Email(p.Email)
		resp.Email = &email
	}
	if p.RelationshipType != nil {
		v := generated.RelationshipType(*p.RelationshipType)
		resp.RelationshipType = &v
	}
	if p.HouseholdType != nil {
		v := generated.HouseholdType(*p.HouseholdType)
		resp.HouseholdType = &v
	}
	for i, c := range p.TopicsOfInterest {
		resp.TopicsOfInterest[i] = generated.Category(c)
	}
	for i, a := range p.KidsAgeGroups {
		resp.KidsAgeGroups[i] = generated.AgeGroup(a)
	}
	return resp
}

func toModelCategories(in []generated.Category) []model.Category {
	out := make([]model.Category, len(in))
	for i, c := range in {
		out[i] = model.Category(c)
	}
	return out
}

func toModelAgeGroups(in []generated.AgeGroup) []model.AgeGroup {
	out := make([]model.AgeGroup, len(in))
	for i, a := range in {
		out[i] = model.AgeGroup(a)
	}
	return out
}
