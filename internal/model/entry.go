package model

import (
	"time"

	"gorm.io/datatypes"
)

// Entry — серверная модель ключ-значение: одна коллекция целиком под одним ключом.
type Entry struct {
	Key   string         `gorm:"primaryKey;size:128"`
	Value datatypes.JSON `gorm:"not null"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName фиксирует имя таблицы.
func (Entry) TableName() string { return "kv_entries" }
