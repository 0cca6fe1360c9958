package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    *string   `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	Status      string    `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
	Pricing     []Pricing `gorm:"foreignKey:ProductID" json:"pricing,omitempty"`
}
