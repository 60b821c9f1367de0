package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Summer Dresses":      "summer-dresses",
		"  Men's  Shoes!! ":   "men-s-shoes",
		"--Already--Dashed--": "already-dashed",
		"Kids & Baby 2026":    "kids-baby-2026",
		"!!!":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("summer-dresses"))
	assert.True(t, IsSlug("a1"))
	assert.False(t, IsSlug("Summer"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug("-lead"))
	assert.False(t, IsSlug(""))
}

func TestIsHexRGB(t *testing.T) {
	assert.True(t, IsHexRGB("#228B22"))
	assert.True(t, IsHexRGB("#fafafa"))
	for _, bad := range []string{"#FFF", "#FFFF", "#11223344", "228B22", "#GGGGGG", ""} {
		assert.False(t, IsHexRGB(bad), bad)
	}
}

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePage(t *testing.T) {
	p := ParsePage(newContext("/x"))
	assert.Equal(t, Page{Page: 1, Limit: 10, Offset: 0}, p)

	p = ParsePage(newContext("/x?page=3&limit=20"))
	assert.Equal(t, Page{Page: 3, Limit: 20, Offset: 40}, p)

	p = ParsePage(newContext("/x?page=-1&limit=500"))
	assert.Equal(t, Page{Page: 1, Limit: 10, Offset: 0}, p)

	p = ParsePage(newContext("/x?page=9223372036854775807&limit=100"))
	assert.Equal(t, MaxPage, p.Page)
	assert.Positive(t, p.Offset)

	meta := Page{Page: 2, Limit: 10}.Meta(41)
	assert.Equal(t, 5, meta.TotalPages)
	assert.Equal(t, 41, meta.Total)
}

func TestQueryBool(t *testing.T) {
	v, ok := QueryBool(newContext("/x?isActive=false"), "isActive")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = QueryBool(newContext("/x?isActive=maybe"), "isActive")
	assert.False(t, ok)
}

type priceBody struct {
	Current float64 `json:"current" binding:"required,min=0"`
}

type sample struct {
	Name  string    `json:"name" binding:"required"`
	Slug  string    `json:"slug" binding:"omitempty,slug"`
	Price priceBody `json:"price"`
}

func TestFromBindErrorUsesJSONNames(t *testing.T) {
	SetupValidator()
	err := binding.Validator.ValidateStruct(&sample{Slug: "Bad Slug", Price: priceBody{Current: -1}})
	require.Error(t, err)

	fields := FromBindError(err)
	assert.Equal(t, "This field is required", fields["name"])
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "price.current")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("from", "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 3, int(d.Month()))

	d, err = ParseDate("from", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("from", "03/01/2026")
	assert.EqualError(t, err, "from must be a date in YYYY-MM-DD format")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%parka%", LikePattern("  Parka "))
	assert.Equal(t, `%50\%%`, LikePattern("50%"))
	assert.Equal(t, `%snow\_boot%`, LikePattern("snow_boot"))
	assert.Equal(t, `%a\\b%`, LikePattern(`a\b`))
}
