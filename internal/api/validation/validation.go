// Пакет validation — проверка входящих запросов по контракту OpenAPI
// (kin-openapi). Ошибки отдаются в едином формате VALIDATION_ERROR.
package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"

	apierrors "github.com/bigkaa/parentlib/internal/api/errors"
)

// Validator — middleware проверки запросов.
type Validator struct {
	router  routers.Router
	options *openapi3filter.Options
	logger  *slog.Logger
}

// New создаёт Validator для документа doc.
// Серверы из документа не учитываются: маршруты сопоставляются только по пути.
func New(doc *openapi3.T, logger *slog.Logger) (*Validator, error) {
	doc.Servers = nil

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("ошибка построения маршрутов OpenAPI: %w", err)
	}

	return &Validator{
		router: router,
		options: &openapi3filter.Options{
			// Токен проверяет JWT middleware
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		logger: logger.With(slog.String("component", "openapi_validation")),
	}, nil
}

// Middleware возвращает HTTP middleware.
// Запросы к путям вне контракта пропускаются без проверки (404/405 вернёт роутер).
func (v *Validator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := v.router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    v.options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				v.logger.Debug("Запрос не прошёл проверку контракта",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				apierrors.ValidationError(w, describe(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// describe формирует сообщение об ошибке без внутренних деталей схемы.
func describe(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "Запрос не соответствует контракту API"
	}

	reason := reqErr.Reason
	if reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}

	switch {
	case reqErr.Parameter != nil:
		return fmt.Sprintf("Некорректный параметр %s: %s", reqErr.Parameter.Name, reason)
	case reqErr.RequestBody != nil:
		return "Некорректное тело запроса: " + reason
	default:
		return "Запрос не соответствует контракту API: " + reason
	}
}
