package model

// Products at or below this level show low-stock indicators.
const LowStockThreshold = 5

type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

func IsOutOfStock(stock int64) bool {
	return stock <= 0
}

func IsLowStock(stock int64) bool {
	return stock > 0 && stock <= LowStockThreshold
}

func StockStatusOf(stock int64) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOut
	case stock <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
