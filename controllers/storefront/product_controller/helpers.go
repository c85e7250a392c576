package product_controller

import (
	"strconv"
	"strings"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// parsePagination reads and clamps the page/limit query params
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseCriteria builds the filter criteria from query params. Absent params
// stay unset so the pipeline skips those predicates.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		Category:    strings.TrimSpace(c.Query("category")),
		Subcategory: strings.TrimSpace(c.Query("subcategory")),
		Query:       c.Query("q"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MaxPrice = &v
		}
	}
	if raw := c.Query("discount"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			criteria.MinDiscount = &v
		}
	}
	if raw := c.Query("rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinRating = &v
		}
	}
	criteria.FreeShipping = c.Query("freeShipping") == "true"
	criteria.Returnable = c.Query("returnable") == "true"

	return criteria
}

// paginate slices one page out of the filtered set
func paginate(products []models.Product, page, limit int) ([]models.Product, *models.Pagination) {
	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
	return products[start:end], meta
}
