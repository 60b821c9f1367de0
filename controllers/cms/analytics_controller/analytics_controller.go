package analytics_controller

import (
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/analytics"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
)

// GetOverview godoc
// @Summary Analytics overview
// @Description Revenue, orders, AOV, customers, channel and status breakdowns, and the 12-month revenue series
// @Tags Analytics
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Router /api/analytics/overview [get]
func GetOverview(c *gin.Context) {
	ds, ok := loadDataset(c, "[analytics.overview]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overview fetched successfully", analytics.Overview(ds, time.Now().UTC())))
}

// GetTopProducts godoc
// @Summary Best-selling products by revenue
// @Tags Analytics
// @Produce json
// @Param limit query int false "Number of products (1-100)" default(10)
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse
// @Router /api/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	limit, ok := utils.QueryRange(c, "limit", defaultTopProducts, 1, maxTopProducts)
	if !ok {
		return
	}
	ds, ok := loadDataset(c, "[analytics.top-products]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products fetched successfully", analytics.TopProducts(ds.Orders, limit)))
}

// GetSeasonal godoc
// @Summary Revenue by season
// @Description Spring (Mar-May), Summer (Jun-Aug), Fall (Sep-Nov), Winter (Dec-Feb)
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/analytics/seasonal [get]
func GetSeasonal(c *gin.Context) {
	ds, ok := loadDataset(c, "[analytics.seasonal]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seasonal analysis fetched successfully", analytics.Seasonal(ds.Orders)))
}

// GetCohorts godoc
// @Summary Monthly retention cohorts
// @Description Customers grouped by first purchase month; retention[k] is the share active k months later
// @Tags Analytics
// @Produce json
// @Param months query int false "Offsets to report (1-12)" default(6)
// @Success 200 {object} models.ApiResponse
// @Router /api/analytics/cohorts [get]
func GetCohorts(c *gin.Context) {
	months, ok := utils.QueryRange(c, "months", analytics.DefaultCohortMonths, 1, analytics.MaxCohortMonths)
	if !ok {
		return
	}
	ds, ok := loadDataset(c, "[analytics.cohorts]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cohort analysis fetched successfully", analytics.Cohorts(ds.Orders, months)))
}

// GetCLV godoc
// @Summary Customer lifetime value by segment
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/analytics/clv [get]
func GetCLV(c *gin.Context) {
	ds, ok := loadDataset(c, "[analytics.clv]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer lifetime value fetched successfully", analytics.CLVBySegment(ds.Orders, ds.Users)))
}

// GetForecast godoc
// @Summary Revenue forecast
// @Description Simple exponential smoothing over monthly revenue, projected flat at the last level
// @Tags Analytics
// @Produce json
// @Param alpha query number false "Smoothing factor in (0, 1]" default(0.5)
// @Param history query int false "Months of history (2-36)" default(12)
// @Param horizon query int false "Months to forecast (1-12)" default(3)
// @Success 200 {object} models.ApiResponse{data=models.RevenueForecast}
// @Router /api/analytics/forecast [get]
func GetForecast(c *gin.Context) {
	opts, ok := forecastOptions(c)
	if !ok {
		return
	}
	ds, ok := loadDataset(c, "[analytics.forecast]")
	if !ok {
		return
	}
	forecast, err := analytics.ForecastRevenue(ds.Orders, time.Now().UTC(), opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Revenue forecast fetched successfully", forecast))
}

// ExportAnalytics godoc
// @Summary Download an analytics report as CSV
// @Description One data row per element of the matching JSON report
// @Tags Analytics
// @Produce text/csv
// @Param report query string true "overview, top-products, seasonal, cohorts, clv or forecast"
// @Success 200 {file} file
// @Failure 400 {object} models.ApiResponse
// @Router /api/analytics/export [get]
func ExportAnalytics(c *gin.Context) {
	report := c.Query("report")
	now := time.Now().UTC()

	var build func(analytics.Dataset) (analytics.Table, error)
	switch report {
	case "overview":
		build = func(ds analytics.Dataset) (analytics.Table, error) {
			return analytics.OverviewTable(analytics.Overview(ds, now)), nil
		}
	case "top-products":
		limit, ok := utils.QueryRange(c, "limit", defaultTopProducts, 1, maxTopProducts)
		if !ok {
			return
		}
		build = func(ds analytics.Dataset) (analytics.Table, error) {
			return analytics.TopProductsTable(analytics.TopProducts(ds.Orders, limit)), nil
		}
	case "seasonal":
		build = func(ds analytics.Dataset) (analytics.Table, error) {
			return analytics.SeasonalTable(analytics.Seasonal(ds.Orders)), nil
		}
	case "cohorts":
		months, ok := utils.QueryRange(c, "months", analytics.DefaultCohortMonths, 1, analytics.MaxCohortMonths)
		if !ok {
			return
		}
		build = func(ds analytics.Dataset) (analytics.Table, error) {
			return analytics.CohortTable(analytics.Cohorts(ds.Orders, months), months), nil
		}
	case "clv":
		build = func(ds analytics.Dataset) (analytics.Table, error) {
			return analytics.CLVTable(analytics.CLVBySegment(ds.Orders, ds.Users)), nil
		}
	case "forecast":
		opts, ok := forecastOptions(c)
		if !ok {
			return
		}
		build = func(ds analytics.Dataset) (analytics.Table, error) {
			f, err := analytics.ForecastRevenue(ds.Orders, now, opts)
			return analytics.ForecastTable(f), err
		}
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "report must be one of overview, top-products, seasonal, cohorts, clv, forecast"))
		return
	}

	ds, ok := loadDataset(c, "[analytics.export]")
	if !ok {
		return
	}
	table, err := build(ds)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	utils.WriteCSV(c, table)
}
