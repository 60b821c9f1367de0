package analytics_controller

import (
	"net/http"
	"strconv"

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
	defaultTopProducts = 10
	maxTopProducts     = 100
)

// loadDataset parses the window and runs the joint load. Any failed load
// aborts the report.
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
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return analytics.Dataset{}, false
	}
	return ds, true
}

// forecastOptions applies defaults only to absent parameters; an explicit
// zero or malformed value is a 400.
func forecastOptions(c *gin.Context) (analytics.ForecastOptions, bool) {
	opts := analytics.DefaultForecastOptions()
	if raw, present := c.GetQuery("alpha"); present {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "alpha must be a number"))
			return opts, false
		}
		opts.Alpha = alpha
	}
	var ok bool
	if opts.History, ok = utils.QueryRange(c, "history", analytics.DefaultHistory, analytics.MinHistory, analytics.MaxHistory); !ok {
		return opts, false
	}
	if opts.Horizon, ok = utils.QueryRange(c, "horizon", analytics.DefaultHorizon, 1, analytics.MaxHorizon); !ok {
		return opts, false
	}

	if err := opts.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return opts, false
	}
	return opts, true
}
