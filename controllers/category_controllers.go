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

type CategoryController struct {
	DB      *gorm.DB
	Catalog *services.GormCatalog
	Cache   *services.CatalogCache
}

func NewCategoryController(db *gorm.DB, cache *services.CatalogCache) *CategoryController {
	return &CategoryController{DB: db, Catalog: services.NewGormCatalog(db), Cache: cache}
}

// GetActiveCategories -> storefront list, active only, display order
func (cc *CategoryController) GetActiveCategories(c *gin.Context) {
	var categories []models.Category
	if cc.Cache.Get(c.Request.Context(), services.CacheKeyCategories, &categories) {
		utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
		return
	}

	categories, err := cc.Catalog.ListActiveCategories()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Cache.Set(c.Request.Context(), services.CacheKeyCategories, categories)
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// GetAllCategories -> admin list, includes inactive
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("display_order").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", categories)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		Name         string `json:"name" binding:"required"`
		DisplayOrder int    `json:"display_order"`
		Status       string `json:"status" binding:"omitempty,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Status == "" {
		body.Status = models.StatusActive
	}

	category := models.Category{
		Name:         body.Name,
		DisplayOrder: body.DisplayOrder,
		Status:       body.Status,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Cache.Invalidate(c.Request.Context(), services.CacheKeyCategories)
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var body struct {
		Name         string `json:"name"`
		DisplayOrder *int   `json:"display_order"`
		Status       string `json:"status" binding:"omitempty,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		category.Name = body.Name
	}
	if body.DisplayOrder != nil {
		category.DisplayOrder = *body.DisplayOrder
	}
	if body.Status != "" {
		category.Status = body.Status
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Cache.InvalidatePattern(c.Request.Context(), "catalog:*")
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory -> blocked while any product references the category
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var productCount int64
	if err := cc.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if productCount > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("cannot delete a category that still has products"))
		return
	}

	result := cc.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	cc.Cache.Invalidate(c.Request.Context(), services.CacheKeyCategories)
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}
