package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"pizza-delivery-shop/models"
	"pizza-delivery-shop/utils"
)

// OrderItemRequest is one storefront cart line. Price is the amount the
// client rendered for the line; it is checked against the catalog, never
// trusted.
type OrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	SizeType  string  `json:"size_type" binding:"required,oneof=single jumbo family party"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

type PlaceOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email" binding:"omitempty,email"`
	OrderType       string             `json:"order_type" binding:"required,oneof=takeaway delivery"`
	DeliveryAreaID  uint               `json:"delivery_area_id"`
	DeliveryAddress string             `json:"delivery_address"`
	Notes           string             `json:"notes"`
	Items           []OrderItemRequest `json:"items" binding:"dive"`
}

// OrderMailer sends the post-checkout confirmation. A send failure must
// never fail the order placement; the service logs it and moves on.
type OrderMailer interface {
	SendOrderConfirmation(order *models.Order, areaName string) error
}

type OrderService struct {
	DB      *gorm.DB
	Catalog CatalogRepository
	Mailer  OrderMailer
}

func NewOrderService(db *gorm.DB, catalog CatalogRepository, mailer OrderMailer) *OrderService {
	return &OrderService{DB: db, Catalog: catalog, Mailer: mailer}
}

// PlaceOrder reprices the cart from the catalog, enforces the delivery
// rules and persists the order. Every check runs before the write; no
// partial order is ever stored. The returned order carries its assigned
// ID and the frozen line snapshot.
func (s *OrderService) PlaceOrder(req *PlaceOrderRequest) (*models.Order, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	customerPhone := strings.TrimSpace(req.CustomerPhone)

	if customerName == "" || customerPhone == "" || len(req.Items) == 0 {
		return nil, ErrMissingRequiredField
	}

	isDelivery := req.OrderType == models.OrderTypeDelivery
	if isDelivery && (req.DeliveryAreaID == 0 || strings.TrimSpace(req.DeliveryAddress) == "") {
		return nil, ErrMissingDeliveryInfo
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var subtotal float64

	for _, line := range req.Items {
		if line.Quantity < 1 || !models.ValidSizeType(line.SizeType) {
			return nil, ErrMissingRequiredField
		}

		product, err := s.Catalog.GetProduct(line.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, &PriceNotFoundError{ProductID: line.ProductID, SizeType: line.SizeType}
			}
			return nil, err
		}

		pricing, err := s.Catalog.GetActivePricing(line.ProductID, line.SizeType)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, &PriceNotFoundError{ProductID: line.ProductID, SizeType: line.SizeType}
			}
			return nil, err
		}

		price := pricing.TakeawayPrice
		if isDelivery {
			price = pricing.DeliveryPrice
		}

		// Exact match against what the client rendered. Any drift means
		// the catalog changed under the cart, and the whole order is
		// rejected rather than partially accepted.
		if price != line.Price {
			return nil, ErrPriceMismatch
		}

		lineTotal := utils.Round2(price * float64(line.Quantity))
		subtotal = utils.Round2(subtotal + lineTotal)

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			SizeType:  line.SizeType,
			Quantity:  line.Quantity,
			UnitPrice: price,
			LineTotal: lineTotal,
		})
	}

	var (
		deliveryCharge float64
		areaID         *uint
		areaName       string
		address        string
	)
	if isDelivery {
		area, err := s.Catalog.GetDeliveryArea(req.DeliveryAreaID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("delivery area: %w", ErrNotFound)
			}
			return nil, err
		}
		// Inactive areas are hidden from the storefront; an order naming
		// one is stale and gets the same answer as a missing area.
		if area.Status != models.StatusActive {
			return nil, fmt.Errorf("delivery area: %w", ErrNotFound)
		}
		if subtotal < area.MinimumOrder {
			return nil, &BelowMinimumError{Minimum: area.MinimumOrder}
		}
		deliveryCharge = area.DeliveryCharge
		id := area.ID
		areaID = &id
		areaName = area.Name
		address = strings.TrimSpace(req.DeliveryAddress)
	}

	order := models.Order{
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		OrderType:       req.OrderType,
		DeliveryAreaID:  areaID,
		DeliveryAddress: address,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryCharge:  deliveryCharge,
		TotalAmount:     utils.Round2(subtotal + deliveryCharge),
		OrderStatus:     models.OrderStatusPending,
		OrderDate:       time.Now(),
		Notes:           strings.TrimSpace(req.Notes),
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if order.CustomerEmail != "" && s.Mailer != nil {
		if err := s.Mailer.SendOrderConfirmation(&order, areaName); err != nil {
			utils.ErrorLogger.Printf("order %d: confirmation email failed: %v", order.ID, err)
		}
	}

	return &order, nil
}

func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(status string) ([]models.Order, error) {
	q := s.DB.Order("order_date DESC")
	if status != "" {
		if !models.ValidOrderStatus(status) {
			return nil, ErrInvalidStatus
		}
		q = q.Where("order_status = ?", status)
	}
	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus sets the order status to any of the six values. The
// admin screen is the authority here: any status may follow any other.
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&order).Update("order_status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.OrderStatus = status
	return &order, nil
}

// ValidatedItem pairs a cart line with its current catalog price.
type ValidatedItem struct {
	ProductID     uint    `json:"product_id"`
	Name          string  `json:"name"`
	SizeType      string  `json:"size_type"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
}

// ValidateCart reprices a cart against the catalog without rejecting it.
// Lines that no longer resolve to a pricing row are dropped so the
// storefront can rebuild the cart from what is still orderable.
func (s *OrderService) ValidateCart(orderType string, lines []OrderItemRequest) ([]ValidatedItem, float64) {
	validated := make([]ValidatedItem, 0, len(lines))
	var total float64

	for _, line := range lines {
		product, err := s.Catalog.GetProduct(line.ProductID)
		if err != nil {
			continue
		}
		pricing, err := s.Catalog.GetActivePricing(line.ProductID, line.SizeType)
		if err != nil {
			continue
		}

		price := pricing.TakeawayPrice
		if orderType == models.OrderTypeDelivery {
			price = pricing.DeliveryPrice
		}

		validated = append(validated, ValidatedItem{
			ProductID:     product.ID,
			Name:          product.Name,
			SizeType:      line.SizeType,
			Quantity:      line.Quantity,
			Price:         price,
			OriginalPrice: line.Price,
		})
		total = utils.Round2(total + price*float64(line.Quantity))
	}

	return validated, total
}
