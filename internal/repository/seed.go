package repository

import (
	"furniture-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog inserts the demo furniture catalog. Existing rows are left
// untouched so re-running on boot is safe.
func SeedCatalog(db *gorm.DB) error {
	categories := []model.Category{
		{ID: "cat-sofas", Title: "Sofas", Slug: "sofas"},
		{ID: "cat-tables", Title: "Tables", Slug: "tables"},
		{ID: "cat-chairs", Title: "Chairs", Slug: "chairs"},
		{ID: "cat-storage", Title: "Storage", Slug: "storage"},
		{ID: "cat-beds", Title: "Beds", Slug: "beds"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return err
	}

	products := []model.Product{
		{
			ID: "prod-aldon-sofa", Name: "Aldon Three-Seater Sofa", Slug: "aldon-three-seater-sofa",
			Description: "Deep-seated three-seater with feather-wrapped cushions.",
			PricePence:  89900, Stock: 8, CategoryID: "cat-sofas",
			Material: "fabric", Color: "grey", Dimensions: "220 x 95 x 85 cm",
			Featured: true, AssemblyRequired: false,
		},
		{
			ID: "prod-hove-armchair", Name: "Hove Armchair", Slug: "hove-armchair",
			Description: "Compact leather armchair on solid oak legs.",
			PricePence:  44900, Stock: 12, CategoryID: "cat-chairs",
			Material: "leather", Color: "walnut", Dimensions: "78 x 82 x 80 cm",
			Featured: true, AssemblyRequired: false,
		},
		{
			ID: "prod-ness-dining-table", Name: "Ness Dining Table", Slug: "ness-dining-table",
			Description: "Six-seat oak dining table with a natural oiled finish.",
			PricePence:  64900, Stock: 5, CategoryID: "cat-tables",
			Material: "wood", Color: "oak", Dimensions: "180 x 90 x 75 cm",
			Featured: true, AssemblyRequired: true,
		},
		{
			ID: "prod-kelby-coffee-table", Name: "Kelby Coffee Table", Slug: "kelby-coffee-table",
			Description: "Glass-topped coffee table with a powder-coated steel frame.",
			PricePence:  19900, Stock: 20, CategoryID: "cat-tables",
			Material: "glass", Color: "black", Dimensions: "110 x 60 x 40 cm",
			Featured: false, AssemblyRequired: true,
		},
		{
			ID: "prod-fen-bookcase", Name: "Fen Bookcase", Slug: "fen-bookcase",
			Description: "Five-shelf bookcase in white-lacquered engineered wood.",
			PricePence:  15900, Stock: 14, CategoryID: "cat-storage",
			Material: "wood", Color: "white", Dimensions: "80 x 30 x 190 cm",
			Featured: false, AssemblyRequired: true,
		},
		{
			ID: "prod-rye-bedframe", Name: "Rye Bed Frame", Slug: "rye-bed-frame",
			Description: "King-size bed frame in natural ash with a slatted base.",
			PricePence:  52900, Stock: 3, CategoryID: "cat-beds",
			Material: "wood", Color: "natural", Dimensions: "165 x 210 x 110 cm",
			Featured: false, AssemblyRequired: true,
		},
		{
			ID: "prod-stour-stool", Name: "Stour Bar Stool", Slug: "stour-bar-stool",
			Description: "Stackable metal bar stool with a footrest.",
			PricePence:  7900, Stock: 0, CategoryID: "cat-chairs",
			Material: "metal", Color: "black", Dimensions: "40 x 40 x 75 cm",
			Featured: false, AssemblyRequired: false,
		},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
		return err
	}

	images := []model.ProductImage{
		{ProductID: "prod-aldon-sofa", URL: "https://images.example.com/aldon-sofa-1.jpg", Position: 0},
		{ProductID: "prod-aldon-sofa", URL: "https://images.example.com/aldon-sofa-2.jpg", Position: 1},
		{ProductID: "prod-hove-armchair", URL: "https://images.example.com/hove-armchair-1.jpg", Position: 0},
		{ProductID: "prod-ness-dining-table", URL: "https://images.example.com/ness-dining-table-1.jpg", Position: 0},
		{ProductID: "prod-kelby-coffee-table", URL: "https://images.example.com/kelby-coffee-table-1.jpg", Position: 0},
		{ProductID: "prod-fen-bookcase", URL: "https://images.example.com/fen-bookcase-1.jpg", Position: 0},
		{ProductID: "prod-rye-bedframe", URL: "https://images.example.com/rye-bedframe-1.jpg", Position: 0},
		{ProductID: "prod-stour-stool", URL: "https://images.example.com/stour-stool-1.jpg", Position: 0},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&images).Error
}
