package models

import "time"

// The four fixed product sizes. Every pricing row belongs to exactly one
// of them.
const (
	SizeSingle = "single"
	SizeJumbo  = "jumbo"
	SizeFamily = "family"
	SizeParty  = "party"
)

// SizeTypes is the canonical ordering used wherever pricing rows are
// listed.
var SizeTypes = []string{SizeSingle, SizeJumbo, SizeFamily, SizeParty}

func ValidSizeType(size string) bool {
	for _, s := range SizeTypes {
		if s == size {
			return true
		}
	}
	return false
}

// Pricing holds the takeaway/delivery price pair for one product size.
// A product may price any subset of the four sizes; rows are replaced
// wholesale whenever a product's pricing is edited.
type Pricing struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"not null;uniqueIndex:uniq_product_size" json:"product_id"`
	SizeType      string    `gorm:"type:varchar(10);not null;uniqueIndex:uniq_product_size" json:"size_type"`
	TakeawayPrice float64   `gorm:"type:decimal(10,2);not null" json:"takeaway_price"`
	DeliveryPrice float64   `gorm:"type:decimal(10,2);not null" json:"delivery_price"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
