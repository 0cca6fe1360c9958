package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pizza-delivery-shop/models"
	"pizza-delivery-shop/services"
	"pizza-delivery-shop/utils"
)

type ProductController struct {
	DB      *gorm.DB
	Catalog *services.GormCatalog
	Cache   *services.CatalogCache
}

func NewProductController(db *gorm.DB, cache *services.CatalogCache) *ProductController {
	return &ProductController{DB: db, Catalog: services.NewGormCatalog(db), Cache: cache}
}

// PricingReq is one size/price pair in an admin product submission.
type PricingReq struct {
	SizeType      string  `json:"size_type" binding:"required,oneof=single jumbo family party"`
	TakeawayPrice float64 `json:"takeaway_price" binding:"min=0"`
	DeliveryPrice float64 `json:"delivery_price" binding:"min=0"`
}

// GetActiveProducts -> storefront list with pricing, optional
// ?category_id= filter
func (pc *ProductController) GetActiveProducts(c *gin.Context) {
	var categoryID *uint
	cacheKey := services.CacheKeyProducts
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
			return
		}
		v := uint(id)
		categoryID = &v
		cacheKey = services.CacheKeyProductsByCategory(v)
	}

	var products []models.Product
	if pc.Cache.Get(c.Request.Context(), cacheKey, &products) {
		utils.RespondJSON(c, http.StatusOK, "List of products", products)
		return
	}

	products, err := pc.Catalog.ListActiveProducts(categoryID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.Cache.Set(c.Request.Context(), cacheKey, products)
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductPricing -> pricing rows in canonical size order
func (pc *ProductController) GetProductPricing(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	cacheKey := services.CacheKeyPricing(uint(id))
	var pricing []models.Pricing
	if pc.Cache.Get(c.Request.Context(), cacheKey, &pricing) {
		utils.RespondJSON(c, http.StatusOK, "Product pricing", pricing)
		return
	}

	if _, err := pc.Catalog.GetProduct(uint(id)); err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	pricing, err := pc.Catalog.ListPricing(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.Cache.Set(c.Request.Context(), cacheKey, pricing)
	utils.RespondJSON(c, http.StatusOK, "Product pricing", pricing)
}

// GetAllProducts -> admin list, includes inactive, pricing preloaded
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	err := pc.DB.Preload("Pricing").Preload("Category").Find(&products).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All products", products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	err := pc.DB.Preload("Pricing").Preload("Category").First(&product, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var body struct {
		Name        string       `json:"name" binding:"required"`
		CategoryID  uint         `json:"category_id" binding:"required"`
		Description string       `json:"description"`
		ImageURL    *string      `json:"image_url"`
		Status      string       `json:"status" binding:"omitempty,oneof=active inactive"`
		Pricing     []PricingReq `json:"pricing" binding:"dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validatePricingSet(body.Pricing); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := pc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	if body.Status == "" {
		body.Status = models.StatusActive
	}

	product := models.Product{
		Name:        body.Name,
		CategoryID:  body.CategoryID,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		Status:      body.Status,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return insertPricing(tx, product.ID, body.Pricing)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.invalidateProductCaches(c, product)
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct -> partial update; when pricing is present the old rows
// are deleted and the submitted set reinserted in one transaction
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var body struct {
		Name        string        `json:"name"`
		CategoryID  *uint         `json:"category_id"`
		Description *string       `json:"description"`
		ImageURL    *string       `json:"image_url"`
		Status      string        `json:"status" binding:"omitempty,oneof=active inactive"`
		Pricing     *[]PricingReq `json:"pricing" binding:"omitempty,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		product.Name = body.Name
	}
	if body.CategoryID != nil {
		var category models.Category
		if err := pc.DB.First(&category, *body.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		product.CategoryID = *body.CategoryID
	}
	if body.Description != nil {
		product.Description = *body.Description
	}
	if body.ImageURL != nil {
		product.ImageURL = body.ImageURL
	}
	if body.Status != "" {
		product.Status = body.Status
	}

	if body.Pricing != nil {
		if err := validatePricingSet(*body.Pricing); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if body.Pricing == nil {
			return nil
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Pricing{}).Error; err != nil {
			return err
		}
		return insertPricing(tx, product.ID, *body.Pricing)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.invalidateProductCaches(c, product)
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct -> cascades to the product's pricing rows
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Pricing{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.invalidateProductCaches(c, product)
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}

func (pc *ProductController) invalidateProductCaches(c *gin.Context, product models.Product) {
	ctx := c.Request.Context()
	pc.Cache.InvalidatePattern(ctx, "catalog:products*")
	pc.Cache.Invalidate(ctx, services.CacheKeyPricing(product.ID))
}

func validatePricingSet(pricing []PricingReq) error {
	seen := make(map[string]bool, len(pricing))
	for _, p := range pricing {
		if seen[p.SizeType] {
			return fmt.Errorf("duplicate pricing for size %s", p.SizeType)
		}
		seen[p.SizeType] = true
	}
	return nil
}

func insertPricing(tx *gorm.DB, productID uint, pricing []PricingReq) error {
	for _, p := range pricing {
		row := models.Pricing{
			ProductID:     productID,
			SizeType:      p.SizeType,
			TakeawayPrice: utils.Round2(p.TakeawayPrice),
			DeliveryPrice: utils.Round2(p.DeliveryPrice),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
