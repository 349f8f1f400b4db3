// handler.go — основной обработчик API, реализующий generated.ServerInterface.
// Объединяет все доменные обработчики и делегирует запросы в сервисный слой.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/bigkaa/parentlib/internal/api/errors"
	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/api/middleware"
	"github.com/bigkaa/parentlib/internal/config"
	"github.com/bigkaa/parentlib/internal/service"
)

// Services — набор сервисов, которые обслуживает API.
type Services struct {
	Parents           *service.ParentService
	Admins            *service.AdminService
	Resources         *service.ResourceService
	Labels            *service.LabelService
	Collections       *service.CollectionService
	ExternalResources *service.ExternalResourceService
	Views             *service.ViewService
	AdminLogs         *service.AdminLogService
}

// APIHandler — основной обработчик API каталога.
// Реализует generated.ServerInterface, делегируя запросы в сервисный слой.
type APIHandler struct {
	health            *HealthHandler
	parents           *service.ParentService
	admins            *service.AdminService
	resources         *service.ResourceService
	labels            *service.LabelService
	collections       *service.CollectionService
	externalResources *service.ExternalResourceService
	views             *service.ViewService
	adminLogs         *service.AdminLogService
	logger            *slog.Logger
}

// Проверка реализации интерфейса на этапе компиляции.
var _ generated.ServerInterface = (*APIHandler)(nil)

// NewAPIHandler создаёт основной обработчик API.
func NewAPIHandler(health *HealthHandler, svc Services, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		health:            health,
		parents:           svc.Parents,
		admins:            svc.Admins,
		resources:         svc.Resources,
		labels:            svc.Labels,
		collections:       svc.Collections,
		externalResources: svc.ExternalResources,
		views:             svc.Views,
		adminLogs:         svc.AdminLogs,
		logger:            logger.With(slog.String("component", "api_handler")),
	}
}

// HealthLive — liveness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики (делегируется в HealthHandler).
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// GetTest — GET /api/test. Проверка доступности API без аутентификации.
func (h *APIHandler) GetTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, generated.TestResponse{
		Message: "parentlib API работает",
		Version: config.Version,
	})
}

// GetOpenAPISpec — GET /api/openapi.yaml. Отдаёт встроенный контракт API.
func (h *APIHandler) GetOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(generated.RawSpec())
}

// --- Вспомогательные функции ---

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. При ошибке пишет 400 и возвращает false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apierrors.ValidationError(w, "Некорректный JSON: "+err.Error())
		return false
	}
	return true
}

// callerFrom собирает service.Caller из claims запроса.
// Без claims пишет 401 и возвращает false.
func callerFrom(w http.ResponseWriter, r *http.Request) (service.Caller, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil || claims.Subject == "" {
		apierrors.Unauthorized(w, "Требуется аутентификация")
		return service.Caller{}, false
	}
	return service.Caller{
		IdpUserID: claims.Subject,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		Role:      claims.EffectiveRole,
	}, true
}

// writeServiceError переводит ошибку сервисного слоя в HTTP-ответ.
// Неизвестные ошибки логируются и возвращаются как 500.
func (h *APIHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		apierrors.ValidationError(w, err.Error())
	case errors.Is(err, service.ErrNotFound):
		apierrors.NotFound(w, err.Error())
	case errors.Is(err, service.ErrConflict):
		apierrors.Conflict(w, err.Error())
	case errors.Is(err, service.ErrForbidden):
		apierrors.Forbidden(w, "Недостаточно прав: "+err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		apierrors.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrWebhookDisabled):
		apierrors.NotFound(w, "Webhook не настроен")
	case errors.Is(err, service.ErrIDPUnavailable):
		h.logger.Warn(msg, slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		apierrors.IDPUnavailable(w, "Identity Provider недоступен")
	case errors.Is(err, service.ErrStorageUnavailable):
		h.logger.Warn(msg, slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		apierrors.StorageUnavailable(w, "Объектное хранилище недоступно")
	default:
		h.logger.Error(msg, slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		apierrors.InternalError(w, msg)
	}
}

// pagination нормализует limit/offset. При ошибке пишет 400 и возвращает false.
func pagination(w http.ResponseWriter, limit, offset *int) (int, int, bool) {
	l, o, err := service.Pagination(limit, offset)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return 0, 0, false
	}
	return l, o, true
}
