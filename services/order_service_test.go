package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pizza-delivery-shop/models"
	"pizza-delivery-shop/utils"
)

type recordingMailer struct {
	sent []uint
	err  error
}

func (m *recordingMailer) SendOrderConfirmation(order *models.Order, areaName string) error {
	m.sent = append(m.sent, order.ID)
	return m.err
}

type orderFixture struct {
	db         *gorm.DB
	svc        *OrderService
	mailer     *recordingMailer
	margherita models.Product
	unpriced   models.Product
	downtown   models.DeliveryArea
	closed     models.DeliveryArea
}

// setupOrderFixture builds an in-memory catalog: Margherita priced in
// single (12.99/14.99) and jumbo (18.99/20.99), an unpriced product, the
// Downtown area (charge 3.50, minimum 15.00) and a closed area.
func setupOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Pricing{},
		&models.DeliveryArea{},
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	category := models.Category{Name: "Pizza", DisplayOrder: 1, Status: models.StatusActive}
	db.Create(&category)

	f := &orderFixture{db: db, mailer: &recordingMailer{}}

	f.margherita = models.Product{Name: "Margherita", CategoryID: category.ID, Status: models.StatusActive}
	db.Create(&f.margherita)
	db.Create(&models.Pricing{ProductID: f.margherita.ID, SizeType: models.SizeSingle, TakeawayPrice: 12.99, DeliveryPrice: 14.99})
	db.Create(&models.Pricing{ProductID: f.margherita.ID, SizeType: models.SizeJumbo, TakeawayPrice: 18.99, DeliveryPrice: 20.99})

	f.unpriced = models.Product{Name: "Daily Special", CategoryID: category.ID, Status: models.StatusActive}
	db.Create(&f.unpriced)

	f.downtown = models.DeliveryArea{Name: "Downtown", DeliveryCharge: 3.50, MinimumOrder: 15.00, Status: models.StatusActive}
	db.Create(&f.downtown)
	f.closed = models.DeliveryArea{Name: "Old Harbour", DeliveryCharge: 4.00, MinimumOrder: 10.00, Status: models.StatusInactive}
	db.Create(&f.closed)

	f.svc = NewOrderService(db, NewGormCatalog(db), f.mailer)
	return f
}

func (f *orderFixture) orderCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count orders: %v", err)
	}
	return count
}

func TestPlaceTakeawayOrder(t *testing.T) {
	f := setupOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		OrderType:     models.OrderTypeTakeaway,
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 12.99},
		},
	})
	assert.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, 25.98, order.Subtotal)
	assert.Equal(t, 0.0, order.DeliveryCharge)
	assert.Equal(t, 25.98, order.TotalAmount)
	assert.Nil(t, order.DeliveryAreaID)
	assert.Empty(t, order.DeliveryAddress)

	assert.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, f.margherita.ID, item.ProductID)
	assert.Equal(t, "Margherita", item.Name)
	assert.Equal(t, models.SizeSingle, item.SizeType)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 12.99, item.UnitPrice)
	assert.Equal(t, 25.98, item.LineTotal)

	// Re-read from the database: the snapshot must round-trip intact.
	stored, err := f.svc.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.Items, stored.Items)
	assert.Equal(t, order.Subtotal, stored.Subtotal)
	assert.Equal(t, order.TotalAmount, stored.TotalAmount)
}

func TestPlaceDeliveryOrderBelowMinimum(t *testing.T) {
	f := setupOrderFixture(t)

	_, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:    "Bob",
		CustomerPhone:   "555-0102",
		OrderType:       models.OrderTypeDelivery,
		DeliveryAreaID:  f.downtown.ID,
		DeliveryAddress: "12 Main St",
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 1, Price: 14.99},
		},
	})

	var belowMin *BelowMinimumError
	assert.ErrorAs(t, err, &belowMin)
	assert.Equal(t, 15.00, belowMin.Minimum)
	assert.EqualValues(t, 0, f.orderCount(t))
}

func TestPlaceDeliveryOrder(t *testing.T) {
	f := setupOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:    "Bob",
		CustomerPhone:   "555-0102",
		OrderType:       models.OrderTypeDelivery,
		DeliveryAreaID:  f.downtown.ID,
		DeliveryAddress: "12 Main St",
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 14.99},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 29.98, order.Subtotal)
	assert.Equal(t, 3.50, order.DeliveryCharge)
	assert.Equal(t, 33.48, order.TotalAmount)
	if assert.NotNil(t, order.DeliveryAreaID) {
		assert.Equal(t, f.downtown.ID, *order.DeliveryAreaID)
	}
	assert.Equal(t, "12 Main St", order.DeliveryAddress)
}

func TestPlaceOrderMissingRequiredFields(t *testing.T) {
	f := setupOrderFixture(t)

	items := []OrderItemRequest{
		{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 1, Price: 12.99},
	}

	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"no name", PlaceOrderRequest{CustomerPhone: "555-0100", OrderType: models.OrderTypeTakeaway, Items: items}},
		{"blank name", PlaceOrderRequest{CustomerName: "   ", CustomerPhone: "555-0100", OrderType: models.OrderTypeTakeaway, Items: items}},
		{"no phone", PlaceOrderRequest{CustomerName: "Alice", OrderType: models.OrderTypeTakeaway, Items: items}},
		{"no items", PlaceOrderRequest{CustomerName: "Alice", CustomerPhone: "555-0100", OrderType: models.OrderTypeTakeaway}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(&tt.req)
			assert.ErrorIs(t, err, ErrMissingRequiredField)
		})
	}
	assert.EqualValues(t, 0, f.orderCount(t))
}

func TestPlaceOrderMissingDeliveryInfo(t *testing.T) {
	f := setupOrderFixture(t)

	items := []OrderItemRequest{
		{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 14.99},
	}

	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"no area", PlaceOrderRequest{CustomerName: "Bob", CustomerPhone: "555-0102", OrderType: models.OrderTypeDelivery, DeliveryAddress: "12 Main St", Items: items}},
		{"no address", PlaceOrderRequest{CustomerName: "Bob", CustomerPhone: "555-0102", OrderType: models.OrderTypeDelivery, DeliveryAreaID: 1, Items: items}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(&tt.req)
			assert.ErrorIs(t, err, ErrMissingDeliveryInfo)
		})
	}
}

func TestPlaceOrderPriceMismatchRejectsWholeCart(t *testing.T) {
	f := setupOrderFixture(t)

	// First line is correct; the second is off by a cent. The whole
	// order must be rejected with nothing persisted.
	_, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		OrderType:     models.OrderTypeTakeaway,
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 1, Price: 12.99},
			{ProductID: f.margherita.ID, SizeType: models.SizeJumbo, Quantity: 1, Price: 18.98},
		},
	})
	assert.ErrorIs(t, err, ErrPriceMismatch)
	assert.EqualValues(t, 0, f.orderCount(t))
}

func TestPlaceOrderUsesDeliveryPriceColumn(t *testing.T) {
	f := setupOrderFixture(t)

	// Takeaway price on a delivery order is a mismatch, not a discount.
	_, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:    "Bob",
		CustomerPhone:   "555-0102",
		OrderType:       models.OrderTypeDelivery,
		DeliveryAreaID:  f.downtown.ID,
		DeliveryAddress: "12 Main St",
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 12.99},
		},
	})
	assert.ErrorIs(t, err, ErrPriceMismatch)
}

func TestPlaceOrderPriceNotFound(t *testing.T) {
	f := setupOrderFixture(t)

	tests := []struct {
		name      string
		productID uint
	}{
		{"product without pricing", f.unpriced.ID},
		{"unknown product", 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(&PlaceOrderRequest{
				CustomerName:  "Alice",
				CustomerPhone: "555-0101",
				OrderType:     models.OrderTypeTakeaway,
				Items: []OrderItemRequest{
					{ProductID: tt.productID, SizeType: models.SizeSingle, Quantity: 1, Price: 9.99},
				},
			})
			var notFound *PriceNotFoundError
			assert.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.productID, notFound.ProductID)
		})
	}
	assert.EqualValues(t, 0, f.orderCount(t))
}

func TestPlaceOrderRejectsMissingOrInactiveArea(t *testing.T) {
	f := setupOrderFixture(t)

	items := []OrderItemRequest{
		{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 14.99},
	}

	tests := []struct {
		name   string
		areaID uint
	}{
		{"unknown area", 9999},
		{"inactive area", f.closed.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(&PlaceOrderRequest{
				CustomerName:    "Bob",
				CustomerPhone:   "555-0102",
				OrderType:       models.OrderTypeDelivery,
				DeliveryAreaID:  tt.areaID,
				DeliveryAddress: "12 Main St",
				Items:           items,
			})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
	assert.EqualValues(t, 0, f.orderCount(t))
}

func TestOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	f := setupOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		OrderType:     models.OrderTypeTakeaway,
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 12.99},
		},
	})
	assert.NoError(t, err)

	// Wipe the product and its pricing out of the catalog.
	assert.NoError(t, f.db.Where("product_id = ?", f.margherita.ID).Delete(&models.Pricing{}).Error)
	assert.NoError(t, f.db.Delete(&models.Product{}, f.margherita.ID).Error)

	stored, err := f.svc.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.Items, stored.Items)
	assert.Equal(t, 25.98, stored.Subtotal)
	assert.Equal(t, 25.98, stored.TotalAmount)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := setupOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		OrderType:     models.OrderTypeTakeaway,
		Items: []OrderItemRequest{
			{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 1, Price: 12.99},
		},
	})
	assert.NoError(t, err)

	// No transition graph: cancelled and back to pending both succeed.
	updated, err := f.svc.UpdateOrderStatus(order.ID, models.OrderStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.OrderStatus)

	updated, err = f.svc.UpdateOrderStatus(order.ID, models.OrderStatusPending)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.OrderStatus)

	stored, err := f.svc.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.OrderStatus)

	_, err = f.svc.UpdateOrderStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.UpdateOrderStatus(9999, models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceOrderConfirmationEmail(t *testing.T) {
	f := setupOrderFixture(t)

	items := []OrderItemRequest{
		{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 1, Price: 12.99},
	}

	// No email on the order: nothing sent.
	_, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		OrderType:     models.OrderTypeTakeaway,
		Items:         items,
	})
	assert.NoError(t, err)
	assert.Empty(t, f.mailer.sent)

	// Email present: confirmation goes out.
	order, err := f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		CustomerEmail: "alice@example.com",
		OrderType:     models.OrderTypeTakeaway,
		Items:         items,
	})
	assert.NoError(t, err)
	assert.Equal(t, []uint{order.ID}, f.mailer.sent)

	// A failing mailer must never fail the order placement.
	f.mailer.err = errors.New("smtp down")
	order, err = f.svc.PlaceOrder(&PlaceOrderRequest{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		CustomerEmail: "alice@example.com",
		OrderType:     models.OrderTypeTakeaway,
		Items:         items,
	})
	assert.NoError(t, err)
	assert.NotZero(t, order.ID)
}

func TestValidateCartReprices(t *testing.T) {
	f := setupOrderFixture(t)

	items, total := f.svc.ValidateCart(models.OrderTypeDelivery, []OrderItemRequest{
		// Stale client price: kept, repriced, original preserved.
		{ProductID: f.margherita.ID, SizeType: models.SizeSingle, Quantity: 2, Price: 12.99},
		// No pricing row: dropped.
		{ProductID: f.unpriced.ID, SizeType: models.SizeSingle, Quantity: 1, Price: 9.99},
	})

	assert.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.Equal(t, 14.99, items[0].Price)
	assert.Equal(t, 12.99, items[0].OriginalPrice)
	assert.Equal(t, 29.98, total)
}
