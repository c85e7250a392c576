package services

import (
	"sort"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

// Analytics aggregations over the recorded order log and the catalog
// snapshot. Pure functions — the controllers pass in the data they hold so
// everything here is directly testable.

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ComputeOverview summarizes all recorded orders
func ComputeOverview(orders []models.Order) models.AnalyticsOverview {
	overview := models.AnalyticsOverview{TotalOrders: len(orders)}

	for _, order := range orders {
		overview.TotalRevenue += order.TotalAmount
		overview.ItemsSold += order.ItemCount()
	}

	if overview.TotalOrders > 0 {
		overview.AverageOrderValue = overview.TotalRevenue / float64(overview.TotalOrders)
	}

	return overview
}

// ComputeMonthlyRevenue builds a 12-month revenue series ending at now.
// Months with no orders are present with zero revenue.
func ComputeMonthlyRevenue(orders []models.Order, now time.Time) []models.MonthlyRevenueData {
	revenueByMonth := make(map[int]float64)
	cutoff := monthStart(now).AddDate(0, -11, 0)

	for _, order := range orders {
		if order.CreatedAt.Before(cutoff) {
			continue
		}
		revenueByMonth[int(order.CreatedAt.Month())] += order.TotalAmount
	}

	// Build complete 12-month data with current and previous 11 months
	completeData := make([]models.MonthlyRevenueData, 0, 12)
	for i := 0; i < 12; i++ {
		month := cutoff.AddDate(0, i, 0)
		monthNum := int(month.Month())
		completeData = append(completeData, models.MonthlyRevenueData{
			Month:       monthNames[monthNum-1],
			MonthNumber: monthNum,
			Revenue:     revenueByMonth[monthNum],
		})
	}

	return completeData
}

// ComputeMonthlySales builds a 12-month order-count series ending at now,
// with missing months zero-filled.
func ComputeMonthlySales(orders []models.Order, now time.Time) []models.MonthlySalesData {
	countByMonth := make(map[int]int)
	cutoff := monthStart(now).AddDate(0, -11, 0)

	for _, order := range orders {
		if order.CreatedAt.Before(cutoff) {
			continue
		}
		countByMonth[int(order.CreatedAt.Month())]++
	}

	completeData := make([]models.MonthlySalesData, 0, 12)
	for i := 0; i < 12; i++ {
		month := cutoff.AddDate(0, i, 0)
		monthNum := int(month.Month())
		completeData = append(completeData, models.MonthlySalesData{
			Month:       monthNames[monthNum-1],
			MonthNumber: monthNum,
			Orders:      countByMonth[monthNum],
		})
	}

	return completeData
}

// ComputeDailyGrowth builds an order-count series for the last `days` days
// ending at now, oldest first, zero-filled.
func ComputeDailyGrowth(orders []models.Order, now time.Time, days int) []models.DailyGrowthData {
	countByDay := make(map[string]int)
	start := now.AddDate(0, 0, -(days - 1))
	cutoff := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	for _, order := range orders {
		if order.CreatedAt.Before(cutoff) {
			continue
		}
		countByDay[order.CreatedAt.Format("2006-01-02")]++
	}

	series := make([]models.DailyGrowthData, 0, days)
	for i := 0; i < days; i++ {
		day := cutoff.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, models.DailyGrowthData{Date: day, Orders: countByDay[day]})
	}

	return series
}

// ComputeTopRated ranks the catalog snapshot by rating, best first. Ties
// keep the snapshot order.
func ComputeTopRated(products []models.Product, limit int) []models.TopRatedProduct {
	ranked := make([]models.Product, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	top := make([]models.TopRatedProduct, 0, len(ranked))
	for _, p := range ranked {
		top = append(top, models.TopRatedProduct{
			ProductID: p.ID,
			Title:     p.Title,
			Rating:    p.Rating,
			Price:     p.Price,
		})
	}
	return top
}

// ComputeMostSold aggregates sold quantities per product across all orders,
// highest first.
func ComputeMostSold(orders []models.Order, limit int) []models.MostSoldProduct {
	byProduct := make(map[int64]*models.MostSoldProduct)

	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &models.MostSoldProduct{ProductID: item.ProductID, Title: item.Title}
				byProduct[item.ProductID] = entry
			}
			entry.SalesCount += item.Quantity
			entry.Revenue += item.Price * float64(item.Quantity)
		}
	}

	ranked := make([]models.MostSoldProduct, 0, len(byProduct))
	for _, entry := range byProduct {
		ranked = append(ranked, *entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SalesCount != ranked[j].SalesCount {
			return ranked[i].SalesCount > ranked[j].SalesCount
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
