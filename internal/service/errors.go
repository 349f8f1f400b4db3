// errors.go — ошибки бизнес-логики сервисного слоя.
package service

import (
	"errors"
	"fmt"

	"github.com/bigkaa/parentlib/internal/repository"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("не найдено")
	// ErrConflict — конфликт (дублирующаяся запись).
	ErrConflict = errors.New("конфликт")
	// ErrForbidden — действие запрещено для вызывающего.
	ErrForbidden = errors.New("доступ запрещён")
	// ErrUnauthorized — запрос не аутентифицирован (подпись webhook).
	ErrUnauthorized = errors.New("не аутентифицирован")
	// ErrValidation — ошибка валидации входных данных.
	ErrValidation = errors.New("ошибка валидации")
	// ErrIDPUnavailable — Identity Provider недоступен.
	ErrIDPUnavailable = errors.New("Identity Provider недоступен")
	// ErrStorageUnavailable — объектное хранилище недоступно.
	ErrStorageUnavailable = errors.New("объектное хранилище недоступно")
	// ErrWebhookDisabled — секрет webhook не настроен.
	ErrWebhookDisabled = errors.New("webhook отключён")
)

// validationf возвращает ErrValidation с пояснением.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// mapRepoError переводит ошибки репозитория в ошибки сервиса.
// what — человекочитаемое имя объекта для сообщения.
func mapRepoError(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrReferenceNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %s", ErrConflict, what)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
