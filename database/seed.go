package database

import (
	"gorm.io/gorm"

	"pizza-delivery-shop/models"
	"pizza-delivery-shop/utils"
)

type seedProduct struct {
	name        string
	category    string
	description string
}

type sizePrices struct {
	takeaway float64
	delivery float64
}

// Seed fills an empty database with a starter catalog so a fresh install
// has something to sell. It is a no-op once any category exists.
func Seed(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.Category{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Pizza", DisplayOrder: 1, Status: models.StatusActive},
		{Name: "Finger Food", DisplayOrder: 2, Status: models.StatusActive},
		{Name: "Beverages", DisplayOrder: 3, Status: models.StatusActive},
		{Name: "Desserts", DisplayOrder: 4, Status: models.StatusActive},
	}

	categoryIDs := make(map[string]uint, len(categories))

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
			categoryIDs[categories[i].Name] = categories[i].ID
		}

		products := []seedProduct{
			{"Margherita Pizza", "Pizza", "Classic tomato base with fresh mozzarella cheese and basil"},
			{"Pepperoni Pizza", "Pizza", "Tomato base with mozzarella cheese and spicy pepperoni"},
			{"Hawaiian Pizza", "Pizza", "Tomato base with mozzarella, ham, and pineapple"},
			{"Meat Lovers Pizza", "Pizza", "Loaded with pepperoni, sausage, ham, and bacon"},
			{"Vegetarian Pizza", "Pizza", "Fresh vegetables with mozzarella on tomato base"},
			{"Chicken Wings", "Finger Food", "Crispy chicken wings with your choice of sauce"},
			{"Garlic Bread", "Finger Food", "Fresh bread with garlic butter and herbs"},
			{"Mozzarella Sticks", "Finger Food", "Golden fried mozzarella with marinara sauce"},
			{"Coca Cola", "Beverages", "Classic Coca Cola - 330ml can"},
			{"Orange Juice", "Beverages", "Fresh orange juice - 250ml"},
			{"Chocolate Cake", "Desserts", "Rich chocolate cake slice"},
			{"Ice Cream", "Desserts", "Vanilla ice cream scoop"},
		}

		// Pizza and finger food come in all four sizes; drinks and
		// desserts only ever have a single size.
		fullSizePrices := map[string]map[string]sizePrices{
			"Pizza": {
				models.SizeSingle: {12.99, 14.99},
				models.SizeJumbo:  {18.99, 20.99},
				models.SizeFamily: {24.99, 26.99},
				models.SizeParty:  {32.99, 34.99},
			},
			"Finger Food": {
				models.SizeSingle: {8.99, 10.99},
				models.SizeJumbo:  {12.99, 14.99},
				models.SizeFamily: {16.99, 18.99},
				models.SizeParty:  {22.99, 24.99},
			},
		}
		singleSizePrices := map[string]sizePrices{
			"Beverages": {2.99, 3.99},
			"Desserts":  {5.99, 6.99},
		}

		for _, sp := range products {
			product := models.Product{
				Name:        sp.name,
				CategoryID:  categoryIDs[sp.category],
				Description: sp.description,
				Status:      models.StatusActive,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}

			if sizes, ok := fullSizePrices[sp.category]; ok {
				for _, size := range models.SizeTypes {
					prices := sizes[size]
					row := models.Pricing{
						ProductID:     product.ID,
						SizeType:      size,
						TakeawayPrice: prices.takeaway,
						DeliveryPrice: prices.delivery,
					}
					if err := tx.Create(&row).Error; err != nil {
						return err
					}
				}
			} else {
				prices := singleSizePrices[sp.category]
				row := models.Pricing{
					ProductID:     product.ID,
					SizeType:      models.SizeSingle,
					TakeawayPrice: prices.takeaway,
					DeliveryPrice: prices.delivery,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		areas := []models.DeliveryArea{
			{Name: "Downtown", DeliveryCharge: 3.50, MinimumOrder: 15.00, Status: models.StatusActive},
			{Name: "Suburbs North", DeliveryCharge: 5.00, MinimumOrder: 20.00, Status: models.StatusActive},
			{Name: "Suburbs South", DeliveryCharge: 5.00, MinimumOrder: 20.00, Status: models.StatusActive},
			{Name: "East Side", DeliveryCharge: 4.50, MinimumOrder: 18.00, Status: models.StatusActive},
			{Name: "West Side", DeliveryCharge: 4.50, MinimumOrder: 18.00, Status: models.StatusActive},
			{Name: "Industrial Area", DeliveryCharge: 7.50, MinimumOrder: 25.00, Status: models.StatusActive},
		}
		for i := range areas {
			if err := tx.Create(&areas[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Println("Sample catalog seeded.")
	return nil
}
