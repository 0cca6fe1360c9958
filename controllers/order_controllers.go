package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pizza-delivery-shop/services"
	"pizza-delivery-shop/utils"
	"pizza-delivery-shop/ws"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(db *gorm.DB, mailer services.OrderMailer) *OrderController {
	return &OrderController{
		Svc: services.NewOrderService(db, services.NewGormCatalog(db), mailer),
	}
}

// PlaceOrder -> storefront checkout. The cart is repriced server-side;
// the client totals are never trusted.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Svc.PlaceOrder(&req)
	if err != nil {
		utils.RespondError(c, orderErrorStatus(err), err)
		return
	}

	ws.BroadcastOrderCreated(order)

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully!", gin.H{
		"order_id": order.ID,
		"order_details": gin.H{
			"order_id":        order.ID,
			"customer_name":   order.CustomerName,
			"order_type":      order.OrderType,
			"subtotal":        order.Subtotal,
			"delivery_charge": order.DeliveryCharge,
			"total_amount":    order.TotalAmount,
			"items":           order.Items,
		},
	})
}

// GetOrderByID -> customer receipt view
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.Svc.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// ValidateCart -> reprice a cart without placing an order; stale lines
// are dropped rather than rejected
func (oc *OrderController) ValidateCart(c *gin.Context) {
	var body struct {
		OrderType string                      `json:"order_type" binding:"required,oneof=takeaway delivery"`
		Items     []services.OrderItemRequest `json:"items" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items, total := oc.Svc.ValidateCart(body.OrderType, body.Items)
	utils.RespondJSON(c, http.StatusOK, "Cart validated", gin.H{
		"items": items,
		"total": total,
	})
}

// GetAllOrders -> admin list, newest first, optional ?status= filter
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Svc.ListOrders(c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus -> admin sets any of the six statuses
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Svc.UpdateOrderStatus(uint(id), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	ws.BroadcastOrderStatusChanged(order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// orderErrorStatus maps checkout errors to HTTP codes. Every validation
// failure is a 4xx with a message the storefront shows verbatim.
func orderErrorStatus(err error) int {
	var priceNotFound *services.PriceNotFoundError
	var belowMinimum *services.BelowMinimumError

	switch {
	case errors.Is(err, services.ErrMissingRequiredField),
		errors.Is(err, services.ErrMissingDeliveryInfo),
		errors.As(err, &belowMinimum):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrPriceMismatch):
		return http.StatusConflict
	case errors.As(err, &priceNotFound), errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
