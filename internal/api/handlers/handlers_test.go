package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/api/middleware"
	"github.com/bigkaa/parentlib/internal/domain/rbac"
	"github.com/bigkaa/parentlib/internal/idp"
	"github.com/bigkaa/parentlib/internal/objectstore"
	"github.com/bigkaa/parentlib/internal/repository/memstore"
	"github.com/bigkaa/parentlib/internal/service"
)

const testWebhookSecret = "webhook-secret"

var (
	parentClaims = &middleware.AuthClaims{
		Subject: "idp-parent-1", Email: "anna@example.com",
		GivenName: "Anna", FamilyName: "Ivanova", EffectiveRole: rbac.RoleParent,
	}
	otherParentClaims = &middleware.AuthClaims{
		Subject: "idp-parent-2", Email: "oleg@example.com", EffectiveRole: rbac.RoleParent,
	}
	adminClaims = &middleware.AuthClaims{
		Subject: "idp-admin-1", Email: "admin@example.com",
		GivenName: "Maria", FamilyName: "Admin", EffectiveRole: rbac.RoleAdmin,
	}
)

// fakePresigner — фиктивный Presigner.
type fakePresigner struct{}

func (fakePresigner) PresignPut(_ context.Context, key, contentType string) (*objectstore.PresignedURL, error) {
	return &objectstore.PresignedURL{
		URL: "https://s3.test/" + key, Method: http.MethodPut, Key: key,
		ExpiresAt: time.Now().Add(time.Minute),
		Headers:   map[string]string{"Content-Type": contentType},
	}, nil
}

func (fakePresigner) PresignGet(_ context.Context, key string) (*objectstore.PresignedURL, error) {
	return &objectstore.PresignedURL{
		URL: "https://s3.test/" + key, Method: http.MethodGet, Key: key,
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil
}

// fakeChecker — фиктивная проверка готовности.
type fakeChecker struct{ status, message string }

func (c fakeChecker) CheckReady() (string, string) { return c.status, c.message }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter собирает обработчик поверх хранилища в памяти.
func newTestRouter(t *testing.T, webhookSecret string) http.Handler {
	t.Helper()

	db := memstore.New()
	store := db.Store()
	cache := service.NewResourceCache(100, time.Minute)
	logger := testLogger()

	h := NewAPIHandler(
		NewHealthHandler(fakeChecker{"ok", "ok"}, fakeChecker{"ok", "ok"}),
		Services{
			Parents:           service.NewParentService(store, db, cache, nil, nil, webhookSecret, logger),
			Admins:            service.NewAdminService(store, db, nil, logger),
			Resources:         service.NewResourceService(store, db, cache, fakePresigner{}, logger),
			Labels:            service.NewLabelService(store, db, cache, logger),
			Collections:       service.NewCollectionService(store, logger),
			ExternalResources: service.NewExternalResourceService(store, db, cache, logger),
			Views:             service.NewViewService(store, cache, logger),
			AdminLogs:         service.NewAdminLogService(store, logger),
		},
		logger,
	)
	return generated.Handler(h)
}

// do выполняет запрос от имени claims (nil — без аутентификации).
func do(t *testing.T, router http.Handler, method, path string, body any, claims *middleware.AuthClaims) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("маршалинг тела: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("декодирование ответа: %v; тело: %s", err, rec.Body.String())
	}
	return v
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, ожидался %d; тело: %s", rec.Code, want, rec.Body.String())
	}
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assertStatus(t, rec, status)
	resp := decodeBody[generated.ErrorResponse](t, rec)
	if resp.Error.Code != code {
		t.Errorf("error.code = %q, ожидался %q", resp.Error.Code, code)
	}
}

func sampleResource(title string) map[string]any {
	return map[string]any{
		"title":         title,
		"description":   "Подборка советов",
		"resource_type": "ARTICLE",
		"hosting_type":  "INTERNAL",
		"category":      "CHILD_DEVELOPMENT",
		"age_groups":    []string{"TODDLER"},
		"time_to_read":  7,
	}
}

func createResource(t *testing.T, router http.Handler, title string) generated.Resource {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/resources", sampleResource(title), adminClaims)
	assertStatus(t, rec, http.StatusCreated)
	return decodeBody[generated.Resource](t, rec)
}

// --- Ресурсы ---

func TestCreateResource_EchoesFields(t *testing.T) {
	router := newTestRouter(t, "")

	res := createResource(t, router, "Как приучить к горшку")

	if res.Id == "" {
		t.Error("id пустой")
	}
	if res.Title != "Как приучить к горшку" || res.Category != generated.CHILDDEVELOPMENT {
		t.Errorf("ресурс = %+v", res)
	}
	if res.HostingType != generated.INTERNAL || res.ResourceType != generated.ARTICLE {
		t.Errorf("типы = %s/%s", res.HostingType, res.ResourceType)
	}
	if len(res.AgeGroups) != 1 || res.AgeGroups[0] != generated.AgeGroupTODDLER {
		t.Errorf("age_groups = %v", res.AgeGroups)
	}
	if res.Language != "en" {
		t.Errorf("language = %q, ожидался en", res.Language)
	}
	if res.TimeToRead != 7 {
		t.Errorf("time_to_read = %d, ожидалось 7", res.TimeToRead)
	}

	rec := do(t, router, http.MethodGet, "/api/resources/"+res.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	got := decodeBody[generated.Resource](t, rec)
	if got.Id != res.Id || got.Title != res.Title {
		t.Errorf("GET = %+v, хотели %+v", got, res)
	}
}

func TestCreateResource_Errors(t *testing.T) {
	router := newTestRouter(t, "")

	external := sampleResource("Внешняя статья")
	external["hosting_type"] = "EXTERNAL"

	noAges := sampleResource("Без возраста")
	noAges["age_groups"] = []string{}

	tests := []struct {
		name   string
		body   any
		claims *middleware.AuthClaims
		status int
		code   string
	}{
		{"без аутентификации", sampleResource("x"), nil, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"роль PARENT", sampleResource("x"), parentClaims, http.StatusForbidden, "FORBIDDEN"},
		{"некорректный JSON", "{title", adminClaims, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"EXTERNAL без external_url", external, adminClaims, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"пустые age_groups", noAges, adminClaims, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/resources", tt.body, tt.claims)
			assertErrorCode(t, rec, tt.status, tt.code)
		})
	}
}

func TestGetResource_NotFound(t *testing.T) {
	router := newTestRouter(t, "")

	rec := do(t, router, http.MethodGet, "/api/resources/7d0b6c84-3a56-4c1e-9b1f-2f4d5c6e7a8b", nil, parentClaims)
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestListResources_Facets(t *testing.T) {
	router := newTestRouter(t, "")

	createResource(t, router, "Сон малыша")
	other := sampleResource("Прикорм")
	other["category"] = "NUTRITION"
	other["age_groups"] = []string{"INFANT"}
	rec := do(t, router, http.MethodPost, "/api/resources", other, adminClaims)
	assertStatus(t, rec, http.StatusCreated)

	tests := []struct {
		name  string
		query string
		total int
	}{
		{"без фильтров", "", 2},
		{"категория", "?category=NUTRITION", 1},
		{"несколько категорий", "?category=NUTRITION&category=CHILD_DEVELOPMENT", 2},
		{"текстовый поиск", "?q=%D1%81%D0%BE%D0%BD", 1},
		{"фасеты по AND", "?category=NUTRITION&age_group=TODDLER", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/api/resources"+tt.query, nil, parentClaims)
			assertStatus(t, rec, http.StatusOK)
			page := decodeBody[generated.ResourceListResponse](t, rec)
			if page.Total != tt.total || len(page.Items) != tt.total {
				t.Errorf("total = %d, items = %d, ожидалось %d", page.Total, len(page.Items), tt.total)
			}
		})
	}
}

func TestListResources_Pagination(t *testing.T) {
	router := newTestRouter(t, "")
	createResource(t, router, "Первый")
	createResource(t, router, "Второй")

	rec := do(t, router, http.MethodGet, "/api/resources?limit=1", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	page := decodeBody[generated.ResourceListResponse](t, rec)
	if page.Limit != 1 || len(page.Items) != 1 || !page.HasMore || page.Total != 2 {
		t.Errorf("страница = %+v", page)
	}

	rec = do(t, router, http.MethodGet, "/api/resources?offset=-1", nil, parentClaims)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = do(t, router, http.MethodGet, "/api/resources?min_time_to_read=10&max_time_to_read=5", nil, parentClaims)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestUploadAndDownloadURL(t *testing.T) {
	router := newTestRouter(t, "")
	res := createResource(t, router, "Колыбельные")

	rec := do(t, router, http.MethodGet, "/api/resources/"+res.Id+"/download-url?kind=file", nil, parentClaims)
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")

	rec = do(t, router, http.MethodPost, "/api/resources/"+res.Id+"/upload-url", map[string]any{
		"kind": "file", "filename": "songs.pdf", "content_type": "application/pdf",
	}, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	put := decodeBody[generated.PresignedURL](t, rec)
	if put.Method != http.MethodPut || put.Key == "" {
		t.Errorf("upload = %+v", put)
	}

	rec = do(t, router, http.MethodGet, "/api/resources/"+res.Id+"/download-url?kind=file", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	get := decodeBody[generated.PresignedURL](t, rec)
	if get.Key != put.Key {
		t.Errorf("key = %q, ожидался %q", get.Key, put.Key)
	}
}

// --- Коллекции и закладки ---

func TestCollections_ConflictsAndOwnership(t *testing.T) {
	router := newTestRouter(t, "")
	res := createResource(t, router, "Истерики в два года")

	rec := do(t, router, http.MethodPost, "/api/collections", map[string]string{"name": "Сон"}, parentClaims)
	assertStatus(t, rec, http.StatusCreated)
	coll := decodeBody[generated.Collection](t, rec)

	rec = do(t, router, http.MethodPost, "/api/collections", map[string]string{"name": "Сон"}, parentClaims)
	assertErrorCode(t, rec, http.StatusConflict, "CONFLICT")

	itemPath := "/api/collections/" + coll.Id + "/items"
	rec = do(t, router, http.MethodPost, itemPath, map[string]string{"resource_id": res.Id}, parentClaims)
	assertStatus(t, rec, http.StatusCreated)

	rec = do(t, router, http.MethodPost, itemPath, map[string]string{"resource_id": res.Id}, parentClaims)
	assertErrorCode(t, rec, http.StatusConflict, "CONFLICT")

	rec = do(t, router, http.MethodDelete, "/api/collections/"+coll.Id, nil, otherParentClaims)
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	rec = do(t, router, http.MethodGet, "/api/collections/"+coll.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	detail := decodeBody[generated.Collection](t, rec)
	if detail.Resources == nil || len(*detail.Resources) != 1 || detail.ItemCount != 1 {
		t.Errorf("коллекция = %+v", detail)
	}

	rec = do(t, router, http.MethodDelete, itemPath+"/"+res.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusNoContent)

	rec = do(t, router, http.MethodDelete, "/api/collections/"+coll.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusNoContent)
}

func TestBookmarks(t *testing.T) {
	router := newTestRouter(t, "")
	res := createResource(t, router, "Безопасность дома")

	rec := do(t, router, http.MethodPost, "/api/users/me/bookmarks", map[string]string{"resource_id": res.Id}, parentClaims)
	assertStatus(t, rec, http.StatusCreated)

	rec = do(t, router, http.MethodGet, "/api/users/me/bookmarks", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	items := decodeBody[[]generated.Resource](t, rec)
	if len(items) != 1 || items[0].Id != res.Id {
		t.Errorf("закладки = %+v", items)
	}

	rec = do(t, router, http.MethodGet, "/api/resources?bookmarked=true", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.ResourceListResponse](t, rec); page.Total != 1 {
		t.Errorf("bookmarked total = %d, ожидался 1", page.Total)
	}

	rec = do(t, router, http.MethodGet, "/api/collections", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	colls := decodeBody[[]generated.Collection](t, rec)
	if len(colls) != 1 || !colls[0].IsDefault {
		t.Errorf("коллекции = %+v, ожидалась одна коллекция закладок", colls)
	}
	rec = do(t, router, http.MethodDelete, "/api/collections/"+colls[0].Id, nil, parentClaims)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = do(t, router, http.MethodDelete, "/api/users/me/bookmarks/"+res.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusNoContent)
}

// --- Просмотры ---

func TestResourceViews_IncrementOnRepeat(t *testing.T) {
	router := newTestRouter(t, "")
	res := createResource(t, router, "Режим дня")

	// карточка попадает в кэш до первого просмотра
	rec := do(t, router, http.MethodGet, "/api/resources/"+res.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)

	for want := 1; want <= 2; want++ {
		rec := do(t, router, http.MethodPost, "/api/resource-views", map[string]string{"resource_id": res.Id}, parentClaims)
		assertStatus(t, rec, http.StatusOK)
		v := decodeBody[generated.ResourceView](t, rec)
		if v.ViewCount != want {
			t.Errorf("view_count = %d, ожидался %d", v.ViewCount, want)
		}
	}

	rec = do(t, router, http.MethodGet, "/api/resources/"+res.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	if got := decodeBody[generated.Resource](t, rec); got.ViewCount != 2 {
		t.Errorf("view_count карточки = %d, ожидался 2", got.ViewCount)
	}

	rec = do(t, router, http.MethodGet, "/api/resource-views/me", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	if history := decodeBody[[]generated.ResourceView](t, rec); len(history) != 1 {
		t.Errorf("история = %d записей, ожидалась 1", len(history))
	}

	rec = do(t, router, http.MethodGet, "/api/resource-views/stats/"+res.Id, nil, parentClaims)
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	rec = do(t, router, http.MethodGet, "/api/resource-views/stats/"+res.Id, nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	stats := decodeBody[generated.ResourceViewStats](t, rec)
	if stats.TotalViews != 2 || stats.UniqueViewers != 1 {
		t.Errorf("статистика = %+v", stats)
	}
}

// --- Метки ---

func TestLabels_AttachCategoryMismatch(t *testing.T) {
	router := newTestRouter(t, "")
	res := createResource(t, router, "Первые шаги")

	rec := do(t, router, http.MethodPost, "/api/labels", map[string]string{"name": "Моторика", "category": "CHILD_DEVELOPMENT"}, adminClaims)
	assertStatus(t, rec, http.StatusCreated)
	motor := decodeBody[generated.Label](t, rec)

	rec = do(t, router, http.MethodPost, "/api/labels", map[string]string{"name": "Моторика", "category": "CHILD_DEVELOPMENT"}, adminClaims)
	assertErrorCode(t, rec, http.StatusConflict, "CONFLICT")

	rec = do(t, router, http.MethodPost, "/api/labels", map[string]string{"name": "Овощи", "category": "NUTRITION"}, adminClaims)
	assertStatus(t, rec, http.StatusCreated)
	veggies := decodeBody[generated.Label](t, rec)

	rec = do(t, router, http.MethodPost, "/api/resource-labels", map[string]string{"resource_id": res.Id, "label_id": veggies.Id}, adminClaims)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = do(t, router, http.MethodPost, "/api/resource-labels", map[string]string{"resource_id": res.Id, "label_id": motor.Id}, adminClaims)
	assertStatus(t, rec, http.StatusCreated)

	rec = do(t, router, http.MethodGet, "/api/resource-labels?resource_id="+res.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	if links := decodeBody[[]generated.ResourceLabel](t, rec); len(links) != 1 || links[0].LabelId != motor.Id {
		t.Errorf("метки ресурса = %+v", links)
	}

	rec = do(t, router, http.MethodGet, "/api/labels?category=NUTRITION", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	if labels := decodeBody[[]generated.Label](t, rec); len(labels) != 1 || labels[0].Id != veggies.Id {
		t.Errorf("метки = %+v", labels)
	}

	rec = do(t, router, http.MethodDelete, "/api/resource-labels/"+res.Id+"/"+motor.Id, nil, adminClaims)
	assertStatus(t, rec, http.StatusNoContent)
}

// --- Пользователи ---

func TestUpdateMe(t *testing.T) {
	router := newTestRouter(t, "")

	rec := do(t, router, http.MethodPost, "/api/users/sync", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	synced := decodeBody[generated.Parent](t, rec)
	if synced.IdpUserId != parentClaims.Subject || synced.FirstName != "Anna" {
		t.Errorf("sync = %+v", synced)
	}

	rec = do(t, router, http.MethodPatch, "/api/users/me", map[string]any{
		"relationship_type":  "MOTHER",
		"topics_of_interest": []string{"NUTRITION", "SAFETY"},
		"kids_age_groups":    []string{"INFANT"},
		"onboarded":          true,
	}, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	p := decodeBody[generated.Parent](t, rec)
	if !p.Onboarded || p.RelationshipType == nil || *p.RelationshipType != generated.RelationshipTypeMOTHER {
		t.Errorf("профиль = %+v", p)
	}
	if len(p.TopicsOfInterest) != 2 || len(p.KidsAgeGroups) != 1 {
		t.Errorf("интересы = %v, возрасты = %v", p.TopicsOfInterest, p.KidsAgeGroups)
	}

	rec = do(t, router, http.MethodPatch, "/api/users/me", map[string]any{"household_type": "SPACESHIP"}, parentClaims)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestParentsAdministration(t *testing.T) {
	router := newTestRouter(t, "")

	rec := do(t, router, http.MethodGet, "/api/users/me", nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	me := decodeBody[generated.Parent](t, rec)

	rec = do(t, router, http.MethodGet, "/api/users", nil, parentClaims)
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	rec = do(t, router, http.MethodGet, "/api/users?q=anna", nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.ParentListResponse](t, rec); page.Total != 1 {
		t.Errorf("total = %d, ожидался 1", page.Total)
	}

	rec = do(t, router, http.MethodDelete, "/api/users/"+me.Id, nil, adminClaims)
	assertStatus(t, rec, http.StatusNoContent)

	rec = do(t, router, http.MethodGet, "/api/users/"+me.Id, nil, adminClaims)
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")

	rec = do(t, router, http.MethodGet, "/api/admin-logs?action=parent.delete", nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.AdminLogListResponse](t, rec); page.Total != 1 {
		t.Errorf("записей журнала = %d, ожидалась 1", page.Total)
	}
}

func TestHandleUserWebhook(t *testing.T) {
	body := `{"type":"user.created","user":{"id":"idp-new","email":"new@example.com","firstName":"Nina"}}`

	tests := []struct {
		name      string
		secret    string
		signature string
		status    int
	}{
		{"корректная подпись", testWebhookSecret, idp.Sign(testWebhookSecret, []byte(body)), http.StatusOK},
		{"неверная подпись", testWebhookSecret, idp.Sign("other", []byte(body)), http.StatusUnauthorized},
		{"без подписи", testWebhookSecret, "", http.StatusUnauthorized},
		{"секрет не настроен", "", idp.Sign(testWebhookSecret, []byte(body)), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.secret)

			req := httptest.NewRequest(http.MethodPost, "/api/users/webhook", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.signature != "" {
				req.Header.Set("X-Webhook-Signature", tt.signature)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assertStatus(t, rec, tt.status)
			if tt.status == http.StatusOK {
				ack := decodeBody[generated.WebhookAck](t, rec)
				if !ack.Applied || ack.Event != "user.created" {
					t.Errorf("ack = %+v", ack)
				}
			}
		})
	}
}

// --- Администраторы, внешние ссылки, журнал ---

func TestAdmins(t *testing.T) {
	router := newTestRouter(t, "")

	rec := do(t, router, http.MethodPost, "/api/admins/sync", nil, parentClaims)
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	rec = do(t, router, http.MethodPost, "/api/admins/sync", nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	a := decodeBody[generated.AdminUser](t, rec)
	if a.IdpUserId != adminClaims.Subject || a.Role != generated.AdminUserRoleADMIN {
		t.Errorf("администратор = %+v", a)
	}

	rec = do(t, router, http.MethodGet, "/api/admins", nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.AdminUserListResponse](t, rec); page.Total != 1 {
		t.Errorf("total = %d, ожидался 1", page.Total)
	}
}

func TestDeleteAdmin_WithAuditTrail(t *testing.T) {
	router := newTestRouter(t, "")
	secondAdmin := &middleware.AuthClaims{
		Subject: "idp-admin-2", Email: "second@example.com", EffectiveRole: rbac.RoleAdmin,
	}

	rec := do(t, router, http.MethodPost, "/api/admins/sync", nil, secondAdmin)
	assertStatus(t, rec, http.StatusOK)
	second := decodeBody[generated.AdminUser](t, rec)

	rec = do(t, router, http.MethodPost, "/api/admin-logs", map[string]string{"action": "manual.note"}, secondAdmin)
	assertStatus(t, rec, http.StatusCreated)

	rec = do(t, router, http.MethodDelete, "/api/admins/"+second.Id, nil, adminClaims)
	assertErrorCode(t, rec, http.StatusConflict, "CONFLICT")

	rec = do(t, router, http.MethodGet, "/api/admin-logs?admin_id="+second.Id, nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.AdminLogListResponse](t, rec); page.Total != 1 {
		t.Errorf("записей в журнале = %d, ожидалась 1", page.Total)
	}
}

func TestExternalResources(t *testing.T) {
	router := newTestRouter(t, "")
	internal := createResource(t, router, "Внутренний")

	ext := sampleResource("Внешний")
	ext["hosting_type"] = "EXTERNAL"
	ext["external_url"] = "https://example.org/article"
	rec := do(t, router, http.MethodPost, "/api/resources", ext, adminClaims)
	assertStatus(t, rec, http.StatusCreated)
	external := decodeBody[generated.Resource](t, rec)

	rec = do(t, router, http.MethodPut, "/api/external-resources/"+internal.Id, map[string]string{"url": "https://example.org"}, adminClaims)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = do(t, router, http.MethodPut, "/api/external-resources/"+external.Id, map[string]string{"url": "https://example.org/v2"}, adminClaims)
	assertStatus(t, rec, http.StatusOK)

	rec = do(t, router, http.MethodGet, "/api/external-resources/"+external.Id, nil, parentClaims)
	assertStatus(t, rec, http.StatusOK)
	if e := decodeBody[generated.ExternalResource](t, rec); e.Url != "https://example.org/v2" {
		t.Errorf("url = %q", e.Url)
	}

	rec = do(t, router, http.MethodGet, "/api/external-resources", nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.ExternalResourceListResponse](t, rec); page.Total != 1 {
		t.Errorf("total = %d, ожидался 1", page.Total)
	}
}

func TestAdminLogs(t *testing.T) {
	router := newTestRouter(t, "")

	rec := do(t, router, http.MethodPost, "/api/admin-logs", map[string]string{"action": "manual.note", "details": "проверка"}, adminClaims)
	assertStatus(t, rec, http.StatusCreated)
	l := decodeBody[generated.AdminLog](t, rec)
	if l.Action != "manual.note" || l.Details != "проверка" {
		t.Errorf("запись = %+v", l)
	}

	rec = do(t, router, http.MethodPost, "/api/admin-logs", map[string]string{"action": "manual.note"}, parentClaims)
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	rec = do(t, router, http.MethodGet, "/api/admin-logs?admin_id="+l.AdminId, nil, adminClaims)
	assertStatus(t, rec, http.StatusOK)
	if page := decodeBody[generated.AdminLogListResponse](t, rec); page.Total != 1 {
		t.Errorf("total = %d, ожидался 1", page.Total)
	}
}

// --- Служебные ---

func TestHealthAndTest(t *testing.T) {
	router := newTestRouter(t, "")

	rec := do(t, router, http.MethodGet, "/health/live", nil, nil)
	assertStatus(t, rec, http.StatusOK)

	rec = do(t, router, http.MethodGet, "/health/ready", nil, nil)
	assertStatus(t, rec, http.StatusOK)
	var ready map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&ready); err != nil {
		t.Fatalf("декодирование: %v", err)
	}
	if ready["status"] != "ok" || ready["service"] != "parentlib" {
		t.Errorf("ready = %v", ready)
	}

	rec = do(t, router, http.MethodGet, "/api/test", nil, nil)
	assertStatus(t, rec, http.StatusOK)

	rec = do(t, router, http.MethodGet, "/api/openapi.yaml", nil, nil)
	assertStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "openapi:") {
		t.Error("ответ не содержит OpenAPI-документ")
	}
}

func TestHealthReady_Fail(t *testing.T) {
	h := NewHealthHandler(fakeChecker{"fail", "нет соединения"}, nil)

	rec := httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assertStatus(t, rec, http.StatusServiceUnavailable)
}

func TestHealthReady_AdminAPIDegrades(t *testing.T) {
	h := NewHealthHandler(fakeChecker{"ok", "ok"}, fakeChecker{"ok", "ok"}).
		WithIdPAdminChecker(fakeChecker{"fail", "realm недоступен"})

	rec := httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assertStatus(t, rec, http.StatusOK)
	var resp healthReadyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("декодирование: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("status = %q, ожидался degraded", resp.Status)
	}
	if resp.Checks.IdPAdmin == nil || resp.Checks.IdPAdmin.Status != "fail" {
		t.Errorf("idp_admin_api = %+v", resp.Checks.IdPAdmin)
	}
}

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"ok", "ok"}, "ok"},
		{[]string{"ok", "degraded"}, "degraded"},
		{[]string{"degraded", "fail"}, "fail"},
	}
	for _, tt := range tests {
		if got := overallStatus(tt.in...); got != tt.want {
			t.Errorf("overallStatus(%v) = %q, хотели %q", tt.in, got, tt.want)
		}
	}
}
