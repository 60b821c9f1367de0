// Package analytics derives the dashboard's chart-ready series from orders,
// customers and products. Every function is pure: the caller loads the
// documents and passes a reference time.
package analytics

import (
	"errors"
	"strings"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

// Dataset is the joint result of the order, user and product loads.
type Dataset struct {
	Orders   []models.Order
	Users    []models.User
	Products []models.Product
}

// Window bounds orderDate. Zero values leave that side open; To is inclusive
// of the whole day.
type Window struct {
	From time.Time
	To   time.Time
}

var ErrInvalidWindow = errors.New("from must not be after to")

func (w Window) Validate() error {
	if !w.From.IsZero() && !w.To.IsZero() && w.From.After(w.To) {
		return ErrInvalidWindow
	}
	return nil
}

func (w Window) contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// Filter returns the orders whose orderDate falls inside the window.
func (w Window) Filter(orders []models.Order) []models.Order {
	if w.From.IsZero() && w.To.IsZero() {
		return orders
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if w.contains(o.OrderDate) {
			out = append(out, o)
		}
	}
	return out
}

func countable(orders []models.Order) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Countable() {
			out = append(out, o)
		}
	}
	return out
}

// ── money and ratio helpers ─────────────────────────────────

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func lineTotal(it models.OrderItem) decimal.Decimal {
	return dec(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// percent returns part/whole*100 rounded to two places, 0 when whole is zero.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return cents(part.Div(whole).Mul(decimal.NewFromInt(100)))
}

func ratio(part decimal.Decimal, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return cents(part.Div(decimal.NewFromInt(int64(whole))))
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ── month arithmetic ────────────────────────────────────────

// monthIndex numbers months consecutively so offsets are plain subtraction.
func monthIndex(t time.Time) int {
	t = t.UTC()
	return t.Year()*12 + int(t.Month()) - 1
}

func monthStart(idx int) time.Time {
	return time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, time.UTC)
}

func monthKey(idx int) string {
	return monthStart(idx).Format("2006-01")
}

func monthLabel(idx int) string {
	return monthStart(idx).Format("Jan 2006")
}

func productIndex(products []models.Product) map[string]models.Product {
	idx := make(map[string]models.Product, len(products))
	for _, p := range products {
		idx[p.ID.String()] = p
	}
	return idx
}
