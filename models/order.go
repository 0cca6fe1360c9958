package models

import "time"

const (
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses lists every status an admin may set. There is no
// transition graph: any value may follow any other.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is the frozen snapshot of one cart line. It keeps the
// resolved product name and the computed totals so the order stays intact
// when the catalog is later edited or the product deleted.
type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	SizeType  string  `json:"size_type"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Order is immutable after creation except for OrderStatus.
// TotalAmount always equals Subtotal + DeliveryCharge, both computed
// server-side from catalog prices at creation time.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerEmail   string      `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	OrderType       string      `gorm:"type:varchar(10);not null" json:"order_type"`
	DeliveryAreaID  *uint       `gorm:"index" json:"delivery_area_id,omitempty"`
	DeliveryAddress string      `gorm:"type:text" json:"delivery_address,omitempty"`
	Items           []OrderItem `gorm:"serializer:json;type:longtext;not null" json:"items"`
	Subtotal        float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryCharge  float64     `gorm:"type:decimal(10,2);not null;default:0" json:"delivery_charge"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderStatus     string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"order_status"`
	OrderDate       time.Time   `gorm:"not null;index" json:"order_date"`
	Notes           string      `gorm:"type:text" json:"notes,omitempty"`
}
