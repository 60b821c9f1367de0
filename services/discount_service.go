package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

var discountCodeFormat = regexp.MustCompile(`^[A-Z0-9-]{3,32}$`)

// Reasons a discount does not apply
const (
	ReasonInactive      = "Discount is inactive"
	ReasonNotYetValid   = "Discount is not yet valid"
	ReasonExpired       = "Discount has expired"
	ReasonUsageExceeded = "Discount usage limit reached"
	ReasonBelowMinimum  = "Order amount is below the minimum for this discount"
)

var ErrUsageLimitReached = errors.New(ReasonUsageExceeded)

// NormalizeDiscountCode upper-cases and trims a code and reports whether the
// result is well formed.
func NormalizeDiscountCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code, discountCodeFormat.MatchString(code)
}

// ValidateDiscountRules checks the cross-field rules binding tags can't express.
func ValidateDiscountRules(d *models.Discount) map[string]string {
	fields := map[string]string{}
	if d.Type == models.DiscountTypePercentage && d.Value > 100 {
		fields["value"] = "Percentage discount cannot exceed 100"
	}
	if d.Value <= 0 {
		fields["value"] = "Must be greater than 0"
	}
	if !d.ValidUntil.After(d.ValidFrom) {
		fields["validUntil"] = "Must be after validFrom"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// QuoteDiscount prices a discount against an order amount at the given time.
func QuoteDiscount(d *models.Discount, orderAmount float64, now time.Time) models.DiscountQuote {
	q := models.DiscountQuote{Code: d.Code, OrderAmount: orderAmount, FinalAmount: orderAmount}

	switch {
	case !d.IsActive:
		q.Reason = ReasonInactive
	case now.Before(d.ValidFrom):
		q.Reason = ReasonNotYetValid
	case now.After(d.ValidUntil):
		q.Reason = ReasonExpired
	case d.UsageLimit > 0 && d.UsedCount >= d.UsageLimit:
		q.Reason = ReasonUsageExceeded
	case orderAmount < d.MinOrderAmount:
		q.Reason = ReasonBelowMinimum
	}
	if q.Reason != "" {
		return q
	}

	amount := decimal.NewFromFloat(orderAmount)
	var off decimal.Decimal
	if d.Type == models.DiscountTypePercentage {
		off = amount.Mul(decimal.NewFromFloat(d.Value)).Div(decimal.NewFromInt(100))
		if d.MaxDiscountAmount > 0 {
			off = decimal.Min(off, decimal.NewFromFloat(d.MaxDiscountAmount))
		}
	} else {
		off = decimal.Min(decimal.NewFromFloat(d.Value), amount)
	}
	off = off.Round(2)

	q.Valid = true
	q.DiscountAmount = off.InexactFloat64()
	q.FinalAmount = amount.Sub(off).Round(2).InexactFloat64()
	return q
}
