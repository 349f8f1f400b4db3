package model

import "time"

// BookmarksCollectionName — имя коллекции закладок, создаваемой по требованию.
const BookmarksCollectionName = "Bookmarks"

// CategoryLabel — метка, ограниченная одной категорией.
type CategoryLabel struct {
	ID        string
	Name      string
	Category  Category
	CreatedAt time.Time
}

// ResourceLabel — связь ресурса и метки (уникальна по паре).
type ResourceLabel struct {
	ResourceID string
	LabelID    string
	CreatedAt  time.Time
}

// Collection — именованный список сохранённых ресурсов родителя.
type Collection struct {
	ID       string
	ParentID string
	Name     string
	// IsDefault — коллекция закладок; не переименовывается и не удаляется
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// ItemCount — количество элементов (вычисляемое)
	ItemCount int
	// Resources — ресурсы коллекции (только в детальном ответе)
	Resources []*Resource
}

// CollectionItem — элемент коллекции.
type CollectionItem struct {
	ID           string
	CollectionID string
	ResourceID   string
	AddedAt      time.Time
}
