package models

import "time"

// Catalog entity status values, shared by categories, products and
// delivery areas.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Status       string    `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
