package analytics

import (
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

type season struct {
	name   string
	months []time.Month
}

// Northern-hemisphere meteorological seasons, in report order.
var seasons = []season{
	{"Spring", []time.Month{time.March, time.April, time.May}},
	{"Summer", []time.Month{time.June, time.July, time.August}},
	{"Fall", []time.Month{time.September, time.October, time.November}},
	{"Winter", []time.Month{time.December, time.January, time.February}},
}

// SeasonOf returns the index into the season table for a month.
func SeasonOf(m time.Month) int {
	switch m {
	case time.March, time.April, time.May:
		return 0
	case time.June, time.July, time.August:
		return 1
	case time.September, time.October, time.November:
		return 2
	default:
		return 3
	}
}

// Seasonal buckets countable orders by the season of their orderDate. All four
// seasons are always present.
func Seasonal(orders []models.Order) []models.SeasonalBucket {
	type agg struct {
		orders   int
		units    int
		revenue  decimal.Decimal
		products map[string]decimal.Decimal
		names    map[string]string
	}
	aggs := make([]agg, len(seasons))
	for i := range aggs {
		aggs[i] = agg{
			revenue:  decimal.Zero,
			products: make(map[string]decimal.Decimal),
			names:    make(map[string]string),
		}
	}

	total := decimal.Zero
	for _, o := range countable(orders) {
		a := &aggs[SeasonOf(o.OrderDate.UTC().Month())]
		a.orders++
		a.units += o.Units()
		t := dec(o.OrderSummary.Total)
		a.revenue = a.revenue.Add(t)
		total = total.Add(t)
		for _, it := range o.Items {
			prev, ok := a.products[it.ProductID]
			if !ok {
				prev = decimal.Zero
			}
			a.products[it.ProductID] = prev.Add(lineTotal(it))
			a.names[it.ProductID] = it.ProductName
		}
	}

	out := make([]models.SeasonalBucket, len(seasons))
	for i, s := range seasons {
		a := aggs[i]
		months := make([]string, len(s.months))
		for j, m := range s.months {
			months[j] = m.String()[:3]
		}

		top, topID := decimal.Zero, ""
		for id, rev := range a.products {
			if topID == "" || rev.GreaterThan(top) || (rev.Equal(top) && id < topID) {
				top, topID = rev, id
			}
		}

		out[i] = models.SeasonalBucket{
			Season:            s.name,
			Months:            months,
			Orders:            a.orders,
			Units:             a.units,
			Revenue:           cents(a.revenue),
			AverageOrderValue: ratio(a.revenue, a.orders),
			RevenueShare:      percent(a.revenue, total),
			TopProduct:        a.names[topID],
		}
	}
	return out
}
