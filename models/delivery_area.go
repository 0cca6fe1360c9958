package models

import "time"

// DeliveryArea is a named zone with a flat delivery charge and the
// minimum subtotal required to qualify for delivery there.
type DeliveryArea struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	DeliveryCharge float64   `gorm:"type:decimal(10,2);not null" json:"delivery_charge"`
	MinimumOrder   float64   `gorm:"type:decimal(10,2);not null" json:"minimum_order"`
	Status         string    `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
