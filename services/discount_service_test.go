package services

import (
	"testing"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDiscountCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{" spring-20 ", "SPRING-20", true},
		{"welcome10", "WELCOME10", true},
		{"ab", "AB", false},
		{"TEN OFF", "TEN OFF", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := NormalizeDiscountCode(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestValidateDiscountRules(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	ok := &models.Discount{Type: models.DiscountTypePercentage, Value: 20, ValidFrom: from, ValidUntil: from.AddDate(0, 1, 0)}
	assert.Nil(t, ValidateDiscountRules(ok))

	tooMuch := &models.Discount{Type: models.DiscountTypePercentage, Value: 120, ValidFrom: from, ValidUntil: from.AddDate(0, 1, 0)}
	assert.Contains(t, ValidateDiscountRules(tooMuch), "value")

	fixed := &models.Discount{Type: models.DiscountTypeFixed, Value: 150, ValidFrom: from, ValidUntil: from.AddDate(0, 1, 0)}
	assert.Nil(t, ValidateDiscountRules(fixed))

	inverted := &models.Discount{Type: models.DiscountTypeFixed, Value: 5, ValidFrom: from, ValidUntil: from}
	assert.Contains(t, ValidateDiscountRules(inverted), "validUntil")
}

func TestQuoteDiscount(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	base := models.Discount{
		Code:       "SPRING-20",
		Type:       models.DiscountTypePercentage,
		Value:      20,
		IsActive:   true,
		ValidFrom:  now.AddDate(0, -1, 0),
		ValidUntil: now.AddDate(0, 1, 0),
	}

	t.Run("percentage", func(t *testing.T) {
		d := base
		q := QuoteDiscount(&d, 49.99, now)
		assert.True(t, q.Valid)
		assert.Equal(t, 10.0, q.DiscountAmount)
		assert.Equal(t, 39.99, q.FinalAmount)
	})

	t.Run("percentage capped", func(t *testing.T) {
		d := base
		d.MaxDiscountAmount = 15
		q := QuoteDiscount(&d, 200, now)
		assert.Equal(t, 15.0, q.DiscountAmount)
		assert.Equal(t, 185.0, q.FinalAmount)
	})

	t.Run("fixed never exceeds order", func(t *testing.T) {
		d := base
		d.Type = models.DiscountTypeFixed
		d.Value = 50
		q := QuoteDiscount(&d, 30, now)
		assert.True(t, q.Valid)
		assert.Equal(t, 30.0, q.DiscountAmount)
		assert.Equal(t, 0.0, q.FinalAmount)
	})

	rejections := []struct {
		name   string
		mutate func(d *models.Discount)
		amount float64
		reason string
	}{
		{"inactive", func(d *models.Discount) { d.IsActive = false }, 100, ReasonInactive},
		{"not yet valid", func(d *models.Discount) { d.ValidFrom = now.Add(time.Hour) }, 100, ReasonNotYetValid},
		{"expired", func(d *models.Discount) { d.ValidUntil = now.Add(-time.Hour) }, 100, ReasonExpired},
		{"used up", func(d *models.Discount) { d.UsageLimit, d.UsedCount = 3, 3 }, 100, ReasonUsageExceeded},
		{"below minimum", func(d *models.Discount) { d.MinOrderAmount = 75 }, 74.99, ReasonBelowMinimum},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			d := base
			tc.mutate(&d)
			q := QuoteDiscount(&d, tc.amount, now)
			assert.False(t, q.Valid)
			assert.Equal(t, tc.reason, q.Reason)
			assert.Equal(t, tc.amount, q.FinalAmount)
			assert.Zero(t, q.DiscountAmount)
		})
	}
}
