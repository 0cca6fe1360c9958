package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pizza-delivery-shop/config"
	"pizza-delivery-shop/models"
)

func TestConfirmationBodyDelivery(t *testing.T) {
	areaID := uint(3)
	order := &models.Order{
		ID:              42,
		CustomerName:    "Bob",
		CustomerPhone:   "555-0102",
		CustomerEmail:   "bob@example.com",
		OrderType:       models.OrderTypeDelivery,
		DeliveryAreaID:  &areaID,
		DeliveryAddress: "12 Main St",
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Margherita", SizeType: models.SizeSingle, Quantity: 2, UnitPrice: 14.99, LineTotal: 29.98},
			{ProductID: 2, Name: "Garlic Bread", SizeType: models.SizeSingle, Quantity: 1, UnitPrice: 5.99, LineTotal: 5.99},
		},
		Subtotal:       35.97,
		DeliveryCharge: 3.50,
		TotalAmount:    39.47,
		OrderStatus:    models.OrderStatusPending,
		OrderDate:      time.Now(),
		Notes:          "Ring twice",
	}

	shop := config.ShopConfig{
		ShopName:       "Pizza Delivery Shop",
		ShopPhone:      "555-0100",
		CurrencySymbol: "$",
	}

	body := ConfirmationBody(order, "Downtown", shop)

	assert.Contains(t, body, "Dear Bob,")
	assert.Contains(t, body, "Order ID: #42")
	assert.Contains(t, body, "Order Type: Delivery")
	assert.Contains(t, body, "Delivery Area: Downtown")
	assert.Contains(t, body, "Delivery Address: 12 Main St")
	assert.Contains(t, body, "- Margherita (single) x2 = $29.98")
	assert.Contains(t, body, "- Garlic Bread (single) x1 = $5.99")
	assert.Contains(t, body, "Subtotal: $35.97")
	assert.Contains(t, body, "Delivery Charge: $3.50")
	assert.Contains(t, body, "Total: $39.47")
	assert.Contains(t, body, "Special Instructions: Ring twice")
	assert.Contains(t, body, "Thank you for choosing Pizza Delivery Shop!")
	assert.Contains(t, body, "Contact us: 555-0100")
}

func TestConfirmationBodyTakeaway(t *testing.T) {
	order := &models.Order{
		ID:            7,
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		OrderType:     models.OrderTypeTakeaway,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Margherita", SizeType: models.SizeJumbo, Quantity: 1, UnitPrice: 18.99, LineTotal: 18.99},
		},
		Subtotal:    18.99,
		TotalAmount: 18.99,
		OrderStatus: models.OrderStatusPending,
		OrderDate:   time.Now(),
	}

	body := ConfirmationBody(order, "", config.ShopConfig{ShopName: "Pizza Delivery Shop", CurrencySymbol: "$"})

	assert.Contains(t, body, "Order Type: Takeaway")
	assert.NotContains(t, body, "Delivery Area:")
	assert.NotContains(t, body, "Delivery Address:")
	assert.NotContains(t, body, "Delivery Charge:")
	assert.NotContains(t, body, "Special Instructions:")
	assert.Contains(t, body, "Total: $18.99")
}
