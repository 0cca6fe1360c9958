package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pizza-delivery-shop/models"
	"pizza-delivery-shop/services"
	"pizza-delivery-shop/utils"
)

type AreaController struct {
	DB      *gorm.DB
	Catalog *services.GormCatalog
	Cache   *services.CatalogCache
}

func NewAreaController(db *gorm.DB, cache *services.CatalogCache) *AreaController {
	return &AreaController{DB: db, Catalog: services.NewGormCatalog(db), Cache: cache}
}

// GetActiveAreas -> storefront list of deliverable zones
func (ac *AreaController) GetActiveAreas(c *gin.Context) {
	var areas []models.DeliveryArea
	if ac.Cache.Get(c.Request.Context(), services.CacheKeyAreas, &areas) {
		utils.RespondJSON(c, http.StatusOK, "List of delivery areas", areas)
		return
	}

	areas, err := ac.Catalog.ListActiveAreas()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.Cache.Set(c.Request.Context(), services.CacheKeyAreas, areas)
	utils.RespondJSON(c, http.StatusOK, "List of delivery areas", areas)
}

// GetAreaInfo -> charge and minimum for one area. Missing and inactive
// areas get the same 404, matching the checkout policy.
func (ac *AreaController) GetAreaInfo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("area_id"))

	area, err := ac.Catalog.GetDeliveryArea(uint(id))
	if err != nil || area.Status != models.StatusActive {
		utils.RespondError(c, http.StatusNotFound, errors.New("delivery area not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery area info", area)
}

// GetAllAreas -> admin list, includes inactive
func (ac *AreaController) GetAllAreas(c *gin.Context) {
	var areas []models.DeliveryArea
	if err := ac.DB.Order("name").Find(&areas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All delivery areas", areas)
}

func (ac *AreaController) CreateArea(c *gin.Context) {
	var body struct {
		Name           string  `json:"name" binding:"required"`
		DeliveryCharge float64 `json:"delivery_charge" binding:"min=0"`
		MinimumOrder   float64 `json:"minimum_order" binding:"min=0"`
		Status         string  `json:"status" binding:"omitempty,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Status == "" {
		body.Status = models.StatusActive
	}

	area := models.DeliveryArea{
		Name:           body.Name,
		DeliveryCharge: utils.Round2(body.DeliveryCharge),
		MinimumOrder:   utils.Round2(body.MinimumOrder),
		Status:         body.Status,
	}
	if err := ac.DB.Create(&area).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.Cache.Invalidate(c.Request.Context(), services.CacheKeyAreas)
	utils.RespondJSON(c, http.StatusCreated, "Delivery area created", area)
}

func (ac *AreaController) UpdateArea(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("area_id"))

	var body struct {
		Name           string   `json:"name"`
		DeliveryCharge *float64 `json:"delivery_charge" binding:"omitempty,min=0"`
		MinimumOrder   *float64 `json:"minimum_order" binding:"omitempty,min=0"`
		Status         string   `json:"status" binding:"omitempty,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var area models.DeliveryArea
	if err := ac.DB.First(&area, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		area.Name = body.Name
	}
	if body.DeliveryCharge != nil {
		area.DeliveryCharge = utils.Round2(*body.DeliveryCharge)
	}
	if body.MinimumOrder != nil {
		area.MinimumOrder = utils.Round2(*body.MinimumOrder)
	}
	if body.Status != "" {
		area.Status = body.Status
	}

	if err := ac.DB.Save(&area).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.Cache.Invalidate(c.Request.Context(), services.CacheKeyAreas)
	utils.RespondJSON(c, http.StatusOK, "Delivery area updated", area)
}

// DeleteArea -> blocked while any order references the area
func (ac *AreaController) DeleteArea(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("area_id"))

	var orderCount int64
	if err := ac.DB.Model(&models.Order{}).Where("delivery_area_id = ?", id).Count(&orderCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if orderCount > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("cannot delete a delivery area that has orders"))
		return
	}

	result := ac.DB.Delete(&models.DeliveryArea{}, id)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("delivery area not found"))
		return
	}

	ac.Cache.Invalidate(c.Request.Context(), services.CacheKeyAreas)
	utils.RespondJSON(c, http.StatusOK, "Delivery area deleted", gin.H{"area_id": id})
}
