package models

// AnalyticsOverview represents the main analytics dashboard overview
type AnalyticsOverview struct {
	TotalOrders       int     `json:"total_orders"`        // All recorded orders
	TotalRevenue      float64 `json:"total_revenue"`       // Sum of order totals
	ItemsSold         int     `json:"items_sold"`          // Total quantity across all orders
	AverageOrderValue float64 `json:"average_order_value"` // Revenue / orders (0 when no orders)
}

type MonthlyRevenueData struct {
	Month       string  `json:"month"`        // Month abbreviation (Jan, Feb, etc.)
	MonthNumber int     `json:"month_number"` // Month number (1-12)
	Revenue     float64 `json:"revenue"`      // Total revenue for the month
}

type MonthlySalesData struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"month_number"`
	Orders      int    `json:"orders"` // Orders placed in the month
}

type DailyGrowthData struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Orders int    `json:"orders"`
}

type TopRatedProduct struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Rating    float64 `json:"rating"`
	Price     float64 `json:"price"`
}

type MostSoldProduct struct {
	ProductID  int64   `json:"product_id"`
	Title      string  `json:"title"`
	SalesCount int     `json:"sales_count"` // Total quantity sold
	Revenue    float64 `json:"revenue"`     // Total revenue from this product
}
