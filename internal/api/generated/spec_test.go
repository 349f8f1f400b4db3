package generated

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	if err != nil {
		t.Fatalf("GetSwagger: %v", err)
	}

	paths := []string{
		"/api/resources",
		"/api/resources/{id}",
		"/api/collections/{id}/items/{resource_id}",
		"/api/resource-labels/{resource_id}/{label_id}",
		"/api/users/webhook",
	}
	for _, p := range paths {
		if doc.Paths.Find(p) == nil {
			t.Errorf("путь %s отсутствует в контракте", p)
		}
	}
}

// recorder — ServerInterface, фиксирующий только вызванные операции.
type recorder struct {
	ServerInterface
	called string
	id     IdPath
	params ListResourcesParams
}

func (r *recorder) GetResource(w http.ResponseWriter, _ *http.Request, id IdPath) {
	r.called, r.id = "GetResource", id
	w.WriteHeader(http.StatusOK)
}

func (r *recorder) GetPopularResources(w http.ResponseWriter, _ *http.Request, _ GetPopularResourcesParams) {
	r.called = "GetPopularResources"
	w.WriteHeader(http.StatusOK)
}

func (r *recorder) ListResources(w http.ResponseWriter, _ *http.Request, params ListResourcesParams) {
	r.called, r.params = "ListResources", params
	w.WriteHeader(http.StatusOK)
}

func TestHandlerBinding(t *testing.T) {
	rec := &recorder{}
	h := Handler(rec)

	t.Run("path uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resources/0b9f4c1e-1c1b-4f5e-9d6a-2f0e6c7a8b9c", nil))
		if w.Code != http.StatusOK || rec.called != "GetResource" {
			t.Fatalf("статус %d, вызвано %q", w.Code, rec.called)
		}
		if rec.id.String() != "0b9f4c1e-1c1b-4f5e-9d6a-2f0e6c7a8b9c" {
			t.Errorf("id = %s", rec.id)
		}
	})

	t.Run("статический путь важнее параметра", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resources/popular", nil))
		if rec.called != "GetPopularResources" {
			t.Errorf("вызвано %q, хотели GetPopularResources", rec.called)
		}
	})

	t.Run("некорректный uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resources/not-a-uuid", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("статус = %d, хотели 400", w.Code)
		}
	})

	t.Run("повторяемые фасеты", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := "/api/resources?category=SAFETY&category=NUTRITION&age_group=TEEN&bookmarked=true&limit=5"
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("статус = %d", w.Code)
		}
		p := rec.params
		if p.Category == nil || len(*p.Category) != 2 || (*p.Category)[1] != NUTRITION {
			t.Errorf("category = %v", p.Category)
		}
		if p.AgeGroup == nil || (*p.AgeGroup)[0] != AgeGroupTEEN {
			t.Errorf("age_group = %v", p.AgeGroup)
		}
		if p.Bookmarked == nil || !*p.Bookmarked {
			t.Error("bookmarked не разобран")
		}
		if p.Limit == nil || *p.Limit != 5 {
			t.Errorf("limit = %v", p.Limit)
		}
	})
}
