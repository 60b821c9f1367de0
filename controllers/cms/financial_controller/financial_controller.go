package financial_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/analytics"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultMonths   = 12
	maxMonths       = 36
	defaultProducts = 10
	maxProducts     = 100
)

func loadDataset(c *gin.Context, tag string) (analytics.Dataset, bool) {
	w, ok := utils.ParseWindow(c)
	if !ok {
		return analytics.Dataset{}, false
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	ds, err := services.LoadDataset(ctx, w)
	if err != nil {
		logger.L().Error(tag+" dataset load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load financial data"))
		return analytics.Dataset{}, false
	}
	return ds, true
}

// GetSummary godoc
// @Summary Financial summary
// @Description Gross sales, COGS, gross profit and margin, net revenue, refunds and cancellations
// @Tags Financial
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.FinancialSummary}
// @Router /api/financial/summary [get]
func GetSummary(c *gin.Context) {
	ds, ok := loadDataset(c, "[financial.summary]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Financial summary fetched successfully", analytics.Summary(ds.Orders, ds.Products)))
}

// GetMonthly godoc
// @Summary Monthly profit and loss
// @Tags Financial
// @Produce json
// @Param months query int false "Months ending at the current one (1-36)" default(12)
// @Success 200 {object} models.ApiResponse
// @Router /api/financial/monthly [get]
func GetMonthly(c *gin.Context) {
	months, ok := utils.QueryRange(c, "months", defaultMonths, 1, maxMonths)
	if !ok {
		return
	}
	ds, ok := loadDataset(c, "[financial.monthly]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly P&L fetched successfully",
		analytics.MonthlyPnL(ds.Orders, ds.Products, time.Now().UTC(), months)))
}

// GetCategories godoc
// @Summary Profitability by category
// @Tags Financial
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/financial/categories [get]
func GetCategories(c *gin.Context) {
	ds, ok := loadDataset(c, "[financial.categories]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category profitability fetched successfully",
		analytics.CategoryProfitability(ds.Orders, ds.Products)))
}

// GetProducts godoc
// @Summary Most profitable products
// @Tags Financial
// @Produce json
// @Param limit query int false "Number of products (1-100)" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/financial/products [get]
func GetProducts(c *gin.Context) {
	limit, ok := utils.QueryRange(c, "limit", defaultProducts, 1, maxProducts)
	if !ok {
		return
	}
	ds, ok := loadDataset(c, "[financial.products]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product profitability fetched successfully",
		analytics.ProductProfitability(ds.Orders, ds.Products, limit)))
}

// GetInventory godoc
// @Summary Inventory valuation
// @Description Stock, cost value and retail value per product, with totals
// @Tags Financial
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.InventoryValuation}
// @Router /api/financial/inventory [get]
func GetInventory(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var products []models.Product
	if err := config.DB.WithContext(ctx).Find(&products).Error; err != nil {
		logger.L().Error("[financial.inventory] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load financial data"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory valuation fetched successfully", analytics.Inventory(products)))
}

// ExportFinancial godoc
// @Summary Download a financial report as CSV
// @Tags Financial
// @Produce text/csv
// @Param report query string true "summary, monthly, categories, products or inventory"
// @Success 200 {file} file
// @Failure 400 {object} models.ApiResponse
// @Router /api/financial/export [get]
func ExportFinancial(c *gin.Context) {
	now := time.Now().UTC()

	var build func(analytics.Dataset) analytics.Table
	switch c.Query("report") {
	case "summary":
		build = func(ds analytics.Dataset) analytics.Table {
			return analytics.SummaryTable(analytics.Summary(ds.Orders, ds.Products))
		}
	case "monthly":
		months, ok := utils.QueryRange(c, "months", defaultMonths, 1, maxMonths)
		if !ok {
			return
		}
		build = func(ds analytics.Dataset) analytics.Table {
			return analytics.MonthlyPnLTable(analytics.MonthlyPnL(ds.Orders, ds.Products, now, months))
		}
	case "categories":
		build = func(ds analytics.Dataset) analytics.Table {
			return analytics.CategoryProfitTable(analytics.CategoryProfitability(ds.Orders, ds.Products))
		}
	case "products":
		limit, ok := utils.QueryRange(c, "limit", defaultProducts, 1, maxProducts)
		if !ok {
			return
		}
		build = func(ds analytics.Dataset) analytics.Table {
			return analytics.ProductProfitTable(analytics.ProductProfitability(ds.Orders, ds.Products, limit))
		}
	case "inventory":
		build = func(ds analytics.Dataset) analytics.Table {
			return analytics.InventoryTable(analytics.Inventory(ds.Products))
		}
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "report must be one of summary, monthly, categories, products, inventory"))
		return
	}

	ds, ok := loadDataset(c, "[financial.export]")
	if !ok {
		return
	}
	utils.WriteCSV(c, build(ds))
}

// DownloadReport godoc
// @Summary Download the financial report as PDF
// @Description Summary and monthly P&L
// @Tags Financial
// @Produce application/pdf
// @Param months query int false "Months of P&L (1-36)" default(12)
// @Success 200 {file} file
// @Router /api/financial/report.pdf [get]
func DownloadReport(c *gin.Context) {
	months, ok := utils.QueryRange(c, "months", defaultMonths, 1, maxMonths)
	if !ok {
		return
	}
	ds, ok := loadDataset(c, "[financial.report]")
	if !ok {
		return
	}

	now := time.Now().UTC()
	pdf, err := services.GenerateFinancialReportPDF(
		analytics.Summary(ds.Orders, ds.Products),
		analytics.MonthlyPnL(ds.Orders, ds.Products, now, months),
		now,
	)
	if err != nil {
		logger.L().Error("[financial.report] render failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="financial-report-%s.pdf"`, now.Format("20060102")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
