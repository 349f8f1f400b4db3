// Пакет idp — клиент Admin REST API Identity Provider (Keycloak-совместимый)
// и проверка подписи webhook.
// models.go — модели данных IdP.
package idp

import (
	"strings"
	"time"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// TokenResponse — ответ на запрос токена через Client Credentials flow.
type TokenResponse struct {
	AccessToken string `json:"access_token"` //nolint:gosec // G117: структура токена OAuth2
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// User — пользователь в IdP.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Enabled       bool   `json:"enabled"`
	CreatedAt     int64  `json:"createdTimestamp"`
	EmailVerified bool   `json:"emailVerified"`
}

// CreatedAtTime возвращает CreatedAt как time.Time.
// IdP хранит timestamp в миллисекундах.
func (u *User) CreatedAtTime() time.Time {
	return time.UnixMilli(u.CreatedAt)
}

// DisplayName возвращает «Имя Фамилия», либо username, если имя не задано.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Identity преобразует пользователя IdP в запись для локальных таблиц.
func (u *User) Identity() model.IdentityRecord {
	return model.IdentityRecord{
		IdpUserID: u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Group — группа в IdP.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// RealmRepresentation — краткая информация о realm.
type RealmRepresentation struct {
	Realm   string `json:"realm"`
	Enabled bool   `json:"enabled"`
}

// WebhookEvent — событие webhook IdP о пользователе.
type WebhookEvent struct {
	// Type — user.created, user.updated, user.deleted, ...
	Type string `json:"type"`
	// User — данные пользователя на момент события
	User User `json:"user"`
}

// Типы событий webhook.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)
