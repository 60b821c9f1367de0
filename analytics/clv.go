package analytics

import (
	"sort"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

const (
	SegmentUnassigned = "unassigned"
	SegmentGuest      = "guest"
)

// CLVBySegment computes customer lifetime value per segment. Registered
// customers without a known segment fall under "unassigned"; buyers whose
// email is not registered fall under "guest". The four named segments are
// always reported, the two fallbacks only when they have buyers.
func CLVBySegment(orders []models.Order, users []models.User) []models.SegmentCLV {
	known := make(map[string]bool, len(models.Segments))
	for _, s := range models.Segments {
		known[s] = true
	}

	segmentOf := make(map[string]string, len(users))
	for _, u := range users {
		seg := u.Segment
		if !known[seg] {
			seg = SegmentUnassigned
		}
		segmentOf[emailKey(u.Email)] = seg
	}

	type agg struct {
		customers map[string]struct{}
		orders    int
		revenue   decimal.Decimal
	}
	aggs := make(map[string]*agg)
	get := func(seg string) *agg {
		a, ok := aggs[seg]
		if !ok {
			a = &agg{customers: make(map[string]struct{}), revenue: decimal.Zero}
			aggs[seg] = a
		}
		return a
	}
	for _, s := range models.Segments {
		get(s)
	}

	total := decimal.Zero
	for _, o := range countable(orders) {
		key := emailKey(o.UserEmail)
		seg, ok := segmentOf[key]
		if !ok {
			seg = SegmentGuest
		}
		a := get(seg)
		a.customers[key] = struct{}{}
		a.orders++
		t := dec(o.OrderSummary.Total)
		a.revenue = a.revenue.Add(t)
		total = total.Add(t)
	}

	order := append([]string{}, models.Segments...)
	var extra []string
	for seg, a := range aggs {
		if !known[seg] && len(a.customers) > 0 {
			extra = append(extra, seg)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	out := make([]models.SegmentCLV, 0, len(order))
	for _, seg := range order {
		a := aggs[seg]
		customers := len(a.customers)
		aov := ratio(a.revenue, a.orders)
		freq := 0.0
		if customers > 0 {
			freq = cents(decimal.NewFromInt(int64(a.orders)).Div(decimal.NewFromInt(int64(customers))))
		}
		out = append(out, models.SegmentCLV{
			Segment:           seg,
			Customers:         customers,
			Orders:            a.orders,
			Revenue:           cents(a.revenue),
			AverageOrderValue: aov,
			PurchaseFrequency: freq,
			// AOV x frequency, taken before either factor is rounded.
			CLV:          ratio(a.revenue, customers),
			RevenueShare: percent(a.revenue, total),
		})
	}
	return out
}
