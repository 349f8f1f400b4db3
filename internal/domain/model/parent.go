package model

import "time"

// Parent — учётная запись родителя (конечного пользователя).
// Хранится в таблице parents, ключ IdP — IdpUserID.
type Parent struct {
	// ID — UUID записи
	ID string
	// IdpUserID — идентификатор пользователя в Identity Provider (sub)
	IdpUserID string
	// Email — адрес электронной почты
	Email string
	// FirstName — имя
	FirstName string
	// LastName — фамилия
	LastName string
	// RelationshipType — кем приходится ребёнку (опционально)
	RelationshipType *RelationshipType
	// HouseholdType — состав семьи (опционально)
	HouseholdType *HouseholdType
	// TopicsOfInterest — интересующие категории
	TopicsOfInterest []Category
	// KidsAgeGroups — возрастные группы детей
	KidsAgeGroups []AgeGroup
	// Newsletter — подписка на рассылку
	Newsletter bool
	// Onboarded — пройден ли онбординг
	Onboarded bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParentUpdate — частичное обновление профиля. nil — поле не меняется.
type ParentUpdate struct {
	FirstName        *string
	LastName         *string
	RelationshipType *RelationshipType
	HouseholdType    *HouseholdType
	TopicsOfInterest *[]Category
	KidsAgeGroups    *[]AgeGroup
	Newsletter       *bool
	Onboarded        *bool
}

// IdentityRecord — данные пользователя из Identity Provider,
// которые зеркалируются в локальные таблицы parents / admin_users.
type IdentityRecord struct {
	IdpUserID string
	Email     string
	FirstName string
	LastName  string
}
