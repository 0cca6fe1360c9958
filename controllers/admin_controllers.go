package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pizza-delivery-shop/models"
	"pizza-delivery-shop/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> today's order count, pending count and total
// revenue excluding cancelled orders
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayOrders int64
	if err := ac.DB.Model(&models.Order{}).
		Where("order_date >= ?", startOfDay).
		Count(&todayOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var pendingOrders int64
	if err := ac.DB.Model(&models.Order{}).
		Where("order_status = ?", models.OrderStatusPending).
		Count(&pendingOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totalRevenue float64
	if err := ac.DB.Model(&models.Order{}).
		Where("order_status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"today_orders":   todayOrders,
		"pending_orders": pendingOrders,
		"total_revenue":  utils.Round2(totalRevenue),
	})
}
