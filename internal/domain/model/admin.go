package model

import "time"

// AdminUser — сотрудник с доступом к консоли администрирования.
// Хранится в таблице admin_users.
type AdminUser struct {
	// ID — UUID записи
	ID string
	// IdpUserID — идентификатор пользователя в Identity Provider (sub)
	IdpUserID string
	// Email — адрес электронной почты
	Email string
	// Name — отображаемое имя
	Name string
	// Role — всегда ADMIN; PARENT для этой таблицы не используется
	Role string
	// CreatedAt — время создания записи
	CreatedAt time.Time
}

// AdminLog — запись журнала действий администратора (append-only).
type AdminLog struct {
	ID        string
	AdminID   string
	Action    string
	Details   string
	CreatedAt time.Time
}

// Действия, которые пишутся в журнал автоматически.
const (
	ActionParentDelete   = "parent.delete"
	ActionAdminCreate    = "admin.create"
	ActionAdminDelete    = "admin.delete"
	ActionResourceCreate = "resource.create"
	ActionResourceUpdate = "resource.update"
	ActionResourceDelete = "resource.delete"
	ActionResourceUpload = "resource.upload"
	ActionLabelCreate    = "label.create"
	ActionLabelUpdate    = "label.update"
	ActionLabelDelete    = "label.delete"
	ActionLabelAttach    = "resource_label.create"
	ActionLabelDetach    = "resource_label.delete"
	ActionExternalUpsert = "external_resource.upsert"
	ActionExternalDelete = "external_resource.delete"
)
