package model

import "time"

// User — учётная запись покупателя/администратора каталога.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
