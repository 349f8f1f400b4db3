package model

import "time"

// Resource — запись каталога (статья, видео, PDF и т.д.).
// Хранится в таблице resources. Внешний URL — в external_resources (1:1).
type Resource struct {
	// ID — UUID ресурса
	ID string
	// Title — заголовок
	Title string
	// Description — описание
	Description string
	// ResourceType — формат (ARTICLE, VIDEO, PDF, ...)
	ResourceType ResourceType
	// HostingType — INTERNAL или EXTERNAL
	HostingType HostingType
	// Category — категория
	Category Category
	// AgeGroups — возрастные группы (не пустой набор)
	AgeGroups []AgeGroup
	// Language — язык содержимого (ISO 639-1)
	Language string
	// TimeToRead — ориентировочное время изучения в минутах
	TimeToRead int
	// ImageKey — ключ обложки в объектном хранилище
	ImageKey *string
	// FileKey — ключ содержимого в объектном хранилище (INTERNAL)
	FileKey *string
	// CreatedBy — UUID администратора, создавшего ресурс
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// --- Вычисляемые поля (заполняются join-запросами) ---

	// Labels — прикреплённые метки
	Labels []CategoryLabel
	// ExternalURL — URL для EXTERNAL ресурсов
	ExternalURL *string
	// ViewCount — суммарное количество просмотров
	ViewCount int64
}

// ResourceUpdate — частичное обновление ресурса. nil — поле не меняется.
// LabelIDs != nil означает полную замену набора меток.
type ResourceUpdate struct {
	Title        *string
	Description  *string
	ResourceType *ResourceType
	HostingType  *HostingType
	Category     *Category
	AgeGroups    *[]AgeGroup
	Language     *string
	TimeToRead   *int
	LabelIDs     *[]string
	ExternalURL  *string
}

// ExternalResource — внешняя ссылка EXTERNAL ресурса.
type ExternalResource struct {
	ResourceID string
	URL        string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResourceView — счётчик просмотров ресурса конкретным родителем.
type ResourceView struct {
	ParentID      string
	ResourceID    string
	ViewCount     int
	FirstViewedAt time.Time
	LastViewedAt  time.Time
}

// ResourceViewStats — агрегированная статистика просмотров ресурса.
type ResourceViewStats struct {
	ResourceID    string
	TotalViews    int64
	UniqueViewers int64
	LastViewedAt  *time.Time
}

// Виды объектов ресурса в хранилище.
const (
	ObjectKindImage = "image"
	ObjectKindFile  = "file"
)
