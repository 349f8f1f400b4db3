// resources.go — обработчики /api/resources endpoints.
// Фасетный поиск, популярные ресурсы, CRUD и pre-signed URL объектов.
package handlers

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/objectstore"
	"github.com/bigkaa/parentlib/internal/repository"
	"github.com/bigkaa/parentlib/internal/service"
)

// ListResources — GET /api/resources.
// Фасеты объединяются по AND, значения одного фасета — по OR.
func (h *APIHandler) ListResources(w http.ResponseWriter, r *http.Request, params generated.ListResourcesParams) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}
	limit, offset, ok := pagination(w, params.Limit, params.Offset)
	if !ok {
		return
	}

	q := buildResourceQuery(params)
	q.Filter.Limit, q.Filter.Offset = limit, offset

	page, err := h.resources.Search(r.Context(), c, q)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка поиска ресурсов")
		return
	}

	writeJSON(w, http.StatusOK, generated.ResourceListResponse{
		Items:   mapResources(page.Items),
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore,
	})
}

// buildResourceQuery переводит query-параметры в фильтр сервиса.
func buildResourceQuery(params generated.ListResourcesParams) service.ResourceQuery {
	f := repository.ResourceFilter{
		Query:         params.Q,
		Language:      params.Language,
		MinTimeToRead: params.MinTimeToRead,
		MaxTimeToRead: params.MaxTimeToRead,
		CreatedAfter:  params.CreatedAfter,
		CreatedBefore: params.CreatedBefore,
	}
	if params.Category != nil {
		f.Categories = toModelCategories(*params.Category)
	}
	if params.AgeGroup != nil {
		f.AgeGroups = toModelAgeGroups(*params.AgeGroup)
	}
	if params.LabelId != nil {
		f.LabelIDs = uuidStrings(*params.LabelId)
	}
	if params.ResourceType != nil {
		for _, t := range *params.ResourceType {
			f.ResourceTypes = append(f.ResourceTypes, model.ResourceType(t))
		}
	}
	if params.HostingType != nil {
		v := model.HostingType(*params.HostingType)
		f.HostingType = &v
	}
	if params.Sort != nil {
		f.SortBy = string(*params.Sort)
	}
	if params.Order != nil {
		f.SortOrder = string(*params.Order)
	}

	q := service.ResourceQuery{Filter: f}
	if params.CollectionId != nil {
		id := params.CollectionId.String()
		q.CollectionID = &id
	}
	if params.Bookmarked != nil {
		q.Bookmarked = *params.Bookmarked
	}
	return q
}

// GetPopularResources — GET /api/resources/popular.
func (h *APIHandler) GetPopularResources(w http.ResponseWriter, r *http.Request, params generated.GetPopularResourcesParams) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	items, err := h.resources.Popular(r.Context(), params.Limit)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения популярных ресурсов")
		return
	}

	writeJSON(w, http.StatusOK, mapResources(items))
}

// GetResource — GET /api/resources/{id}.
func (h *APIHandler) GetResource(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	res, err := h.resources.Get(r.Context(), id.String())
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка получения ресурса")
		return
	}

	writeJSON(w, http.StatusOK, mapResource(res))
}

// CreateResource — POST /api/resources.
// Доступ: ADMIN. Для EXTERNAL обязателен external_url.
func (h *APIHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ResourceCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	in := service.ResourceInput{
		Title:        req.Title,
		ResourceType: model.ResourceType(req.ResourceType),
		HostingType:  model.HostingType(req.HostingType),
		Category:     model.Category(req.Category),
		AgeGroups:    toModelAgeGroups(req.AgeGroups),
		Language:     req.Language,
		TimeToRead:   req.TimeToRead,
		ExternalURL:  req.ExternalUrl,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.LabelIds != nil {
		in.LabelIDs = uuidStrings(*req.LabelIds)
	}

	res, err := h.resources.Create(r.Context(), c, in)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка создания ресурса")
		return
	}

	writeJSON(w, http.StatusCreated, mapResource(res))
}

// UpdateResource — PATCH /api/resources/{id}.
// Доступ: ADMIN. label_ids заменяет набор меток целиком.
func (h *APIHandler) UpdateResource(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.ResourceUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := model.ResourceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		TimeToRead:  req.TimeToRead,
		ExternalURL: req.ExternalUrl,
	}
	if req.ResourceType != nil {
		v := model.ResourceType(*req.ResourceType)
		upd.ResourceType = &v
	}
	if req.HostingType != nil {
		v := model.HostingType(*req.HostingType)
		upd.HostingType = &v
	}
	if req.Category != nil {
		v := model.Category(*req.Category)
		upd.Category = &v
	}
	if req.AgeGroups != nil {
		v := toModelAgeGroups(*req.AgeGroups)
		upd.AgeGroups = &v
	}
	if req.LabelIds != nil {
		v := uuidStrings(*req.LabelIds)
		upd.LabelIDs = &v
	}

	res, err := h.resources.Update(r.Context(), c, id.String(), upd)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка обновления ресурса")
		return
	}

	writeJSON(w, http.StatusOK, mapResource(res))
}

// DeleteResource — DELETE /api/resources/{id}.
// Доступ: ADMIN. Удаляет метки, внешнюю ссылку, элементы коллекций и просмотры.
func (h *APIHandler) DeleteResource(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.resources.Delete(r.Context(), c, id.String()); err != nil {
		h.writeServiceError(w, r, err, "Ошибка удаления ресурса")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateUploadURL — POST /api/resources/{id}/upload-url.
// Доступ: ADMIN. Возвращает pre-signed PUT URL объекта.
func (h *APIHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request, id generated.IdPath) {
	c, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req generated.UploadURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	signed, err := h.resources.UploadURL(r.Context(), c, id.String(), string(req.Kind), req.Filename, req.ContentType)
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка выдачи URL загрузки")
		return
	}

	writeJSON(w, http.StatusOK, mapPresignedURL(signed))
}

// GetDownloadURL — GET /api/resources/{id}/download-url.
func (h *APIHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request, id generated.IdPath, params generated.GetDownloadURLParams) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}

	signed, err := h.resources.DownloadURL(r.Context(), id.String(), string(params.Kind))
	if err != nil {
		h.writeServiceError(w, r, err, "Ошибка выдачи URL скачивания")
		return
	}

	writeJSON(w, http.StatusOK, mapPresignedURL(signed))
}

// --- Маппинг domain → API ---

func mapResource(res *model.Resource) generated.Resource {
	resp := generated.Resource{
		Id:           res.ID,
		Title:        res.Title,
		Description:  res.Description,
		ResourceType: generated.ResourceType(res.ResourceType),
		HostingType:  generated.HostingType(res.HostingType),
		Category:     generated.Category(res.Category),
		AgeGroups:    make([]generated.AgeGroup, len(res.AgeGroups)),
		Language:     res.Language,
		TimeToRead:   res.TimeToRead,
		ImageKey:     res.ImageKey,
		FileKey:      res.FileKey,
		CreatedBy:    res.CreatedBy,
		ExternalUrl:  res.ExternalURL,
		Labels:       make([]generated.Label, len(res.Labels)),
		ViewCount:    res.ViewCount,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
	for i, a := range res.AgeGroups {
		resp.AgeGroups[i] = generated.AgeGroup(a)
	}
	for i := range res.Labels {
		resp.Labels[i] = mapLabel(&res.Labels[i])
	}
	return resp
}

func mapResources(items []*model.Resource) []generated.Resource {
	out := make([]generated.Resource, len(items))
	for i, res := range items {
		out[i] = mapResource(res)
	}
	return out
}

func mapPresignedURL(p *objectstore.PresignedURL) generated.PresignedURL {
	resp := generated.PresignedURL{
		Url:       p.URL,
		Method:    p.Method,
		Key:       p.Key,
		ExpiresAt: p.ExpiresAt,
	}
	if len(p.Headers) > 0 {
		headers := p.Headers
		resp.Headers = &headers
	}
	return resp
}

func uuidStrings(ids []openapi_types.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
