package model

import "time"

// Category — справочник категорий, заполняется при старте сервера.
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// DefaultCategories сидируются, если таблица пуста.
var DefaultCategories = []string{"Clothes", "Electronics", "Furniture", "Shoes", "Others"}

// Product — серверная модель товара.
type Product struct {
	ID          string   `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string   `gorm:"uniqueIndex;not null" json:"title"`
	Price       float64  `gorm:"not null" json:"price"`
	Description string   `json:"description"`
	CategoryID  int64    `gorm:"not null;index" json:"-"`
	Category    Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Images      []string `gorm:"type:text;serializer:json" json:"images"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"creationAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
