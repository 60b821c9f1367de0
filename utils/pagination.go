package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	// keeps (page-1)*limit well inside int32
	MaxPage = math.MaxInt32 / MaxLimit
)

type Page struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePage reads page and limit. Out-of-range values fall back to the
// defaults rather than failing the request.
func ParsePage(c *gin.Context) Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if page > MaxPage {
		page = MaxPage
	}
	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func (p Page) Meta(total int64) *models.Pagination {
	return &models.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}

// QueryBool parses an optional boolean filter. ok is false when the
// parameter is absent or not a boolean.
func QueryBool(c *gin.Context, key string) (value bool, ok bool) {
	raw := c.Query(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// QueryInt returns def when the parameter is absent or malformed.
func QueryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern builds a lowercase substring pattern for
// LOWER(col) LIKE ? ESCAPE '\'. Wildcards in the search text match literally.
func LikePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}
