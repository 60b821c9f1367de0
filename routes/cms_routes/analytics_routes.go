package cms_routes

import (
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/analytics_controller"
	"github.com/BadarHossain1/maplenest-admin-api/controllers/cms/financial_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/analytics")
	{
		a.GET("/overview", analytics_controller.GetOverview)
		a.GET("/top-products", analytics_controller.GetTopProducts)
		a.GET("/seasonal", analytics_controller.GetSeasonal)
		a.GET("/cohorts", analytics_controller.GetCohorts)
		a.GET("/clv", analytics_controller.GetCLV)
		a.GET("/forecast", analytics_controller.GetForecast)
		a.GET("/export", analytics_controller.ExportAnalytics)
	}
}

func SetupFinancialRoutes(rg *gin.RouterGroup) {
	f := rg.Group("/financial")
	{
		f.GET("/summary", financial_controller.GetSummary)
		f.GET("/monthly", financial_controller.GetMonthly)
		f.GET("/categories", financial_controller.GetCategories)
		f.GET("/products", financial_controller.GetProducts)
		f.GET("/inventory", financial_controller.GetInventory)
		f.GET("/export", financial_controller.ExportFinancial)
		f.GET("/report.pdf", financial_controller.DownloadReport)
	}
}
