package services

import (
	"errors"

	"gorm.io/gorm"

	"pizza-delivery-shop/models"
)

// CatalogRepository is the read side of the catalog used at checkout.
// The admin CRUD endpoints write the same tables; checkout only ever
// reads them.
type CatalogRepository interface {
	GetProduct(productID uint) (*models.Product, error)
	GetActivePricing(productID uint, sizeType string) (*models.Pricing, error)
	GetDeliveryArea(areaID uint) (*models.DeliveryArea, error)
}

// sizeOrderExpr sorts pricing rows into the canonical single, jumbo,
// family, party order.
const sizeOrderExpr = "CASE size_type WHEN 'single' THEN 1 WHEN 'jumbo' THEN 2 WHEN 'family' THEN 3 WHEN 'party' THEN 4 END"

type GormCatalog struct {
	DB *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{DB: db}
}

func (gc *GormCatalog) GetProduct(productID uint) (*models.Product, error) {
	var product models.Product
	if err := gc.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (gc *GormCatalog) GetActivePricing(productID uint, sizeType string) (*models.Pricing, error) {
	var pricing models.Pricing
	err := gc.DB.Where("product_id = ? AND size_type = ?", productID, sizeType).First(&pricing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pricing, nil
}

func (gc *GormCatalog) GetDeliveryArea(areaID uint) (*models.DeliveryArea, error) {
	var area models.DeliveryArea
	if err := gc.DB.First(&area, areaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &area, nil
}

// ListActiveCategories returns the storefront categories in display
// order.
func (gc *GormCatalog) ListActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := gc.DB.Where("status = ?", models.StatusActive).
		Order("display_order").
		Find(&categories).Error
	return categories, err
}

// ListActiveProducts returns active products with their pricing rows
// preloaded in canonical size order. With no category filter, products
// come back grouped by category display order.
func (gc *GormCatalog) ListActiveProducts(categoryID *uint) ([]models.Product, error) {
	q := gc.DB.
		Preload("Pricing", func(db *gorm.DB) *gorm.DB {
			return db.Order(sizeOrderExpr)
		}).
		Where("products.status = ?", models.StatusActive)

	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID).Order("name")
	} else {
		q = q.Select("products.*").
			Joins("JOIN categories ON categories.id = products.category_id").
			Order("categories.display_order, products.name")
	}

	var products []models.Product
	err := q.Find(&products).Error
	return products, err
}

func (gc *GormCatalog) ListPricing(productID uint) ([]models.Pricing, error) {
	var pricing []models.Pricing
	err := gc.DB.Where("product_id = ?", productID).
		Order(sizeOrderExpr).
		Find(&pricing).Error
	return pricing, err
}

func (gc *GormCatalog) ListActiveAreas() ([]models.DeliveryArea, error) {
	var areas []models.DeliveryArea
	err := gc.DB.Where("status = ?", models.StatusActive).
		Order("name").
		Find(&areas).Error
	return areas, err
}
