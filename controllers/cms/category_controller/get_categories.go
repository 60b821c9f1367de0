package category_controller

import (
	"net/http"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCategories godoc
// @Summary List categories
// @Description Categories in display order with live product counts. Filters: search, isActive
// @Tags Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Substring of name, slug or description"
// @Param isActive query bool false "Visibility filter"
// @Success 200 {object} models.ApiResponse
// @Router /api/categories [get]
func GetCategories(c *gin.Context) {
	page := utils.ParsePage(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	all, err := loadAll(ctx)
	if err != nil {
		logger.L().Error("[categories.list] failed to load", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	active, filterActive := utils.QueryBool(c, "isActive")

	filtered := make([]models.CategoryWithProducts, 0, len(all))
	for _, cat := range all {
		if filterActive && cat.IsActive != active {
			continue
		}
		if search != "" && !matches(cat.Category, search) {
			continue
		}
		filtered = append(filtered, cat)
	}

	total := len(filtered)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories fetched successfully", filtered[start:end], page.Meta(int64(total))))
}

func matches(cat models.Category, needle string) bool {
	for _, field := range []string{cat.Name, cat.Slug, cat.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
