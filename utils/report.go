package utils

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/analytics"
	"github.com/BadarHossain1/maplenest-admin-api/logger"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseWindow reads the optional from/to query dates, answering 400 when
// either is malformed or the range is inverted.
func ParseWindow(c *gin.Context) (analytics.Window, bool) {
	from, err := ParseDate("from", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return analytics.Window{}, false
	}
	to, err := ParseDate("to", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return analytics.Window{}, false
	}
	w := analytics.Window{From: from, To: to}
	if err := w.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return analytics.Window{}, false
	}
	return w, true
}

// QueryRange returns def when the parameter is absent and answers 400 when it
// falls outside [lo, hi].
func QueryRange(c *gin.Context, key string, def, lo, hi int) (int, bool) {
	if c.Query(key) == "" {
		return def, true
	}
	v := QueryInt(c, key, lo-1)
	if v < lo || v > hi {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, fmt.Sprintf("%s must be between %d and %d", key, lo, hi)))
		return 0, false
	}
	return v, true
}

// WriteCSV sends the table as a CSV attachment named after the report and
// today's date.
func WriteCSV(c *gin.Context, t analytics.Table) {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		logger.L().Error("[reports.export] csv encode failed", zap.String("report", t.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export report"))
		return
	}
	filename := fmt.Sprintf("%s-%s.csv", t.Name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
