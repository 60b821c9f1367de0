package analytics

import (
	"sort"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

const defaultChannel = "online"

// Overview computes the headline numbers of the analytics page. Revenue is the
// order total of countable orders; ByStatus counts every order.
func Overview(ds Dataset, now time.Time) models.AnalyticsOverview {
	byStatus := make(map[string]int, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		byStatus[s] = 0
	}
	for _, o := range ds.Orders {
		byStatus[o.Status]++
	}

	orders := countable(ds.Orders)
	revenue := decimal.Zero
	units := 0
	buyers := make(map[string]struct{})
	type channelAgg struct {
		orders  int
		revenue decimal.Decimal
	}
	channels := make(map[string]*channelAgg)

	for _, o := range orders {
		total := dec(o.OrderSummary.Total)
		revenue = revenue.Add(total)
		units += o.Units()
		buyers[emailKey(o.UserEmail)] = struct{}{}

		ch := o.Channel
		if ch == "" {
			ch = defaultChannel
		}
		agg, ok := channels[ch]
		if !ok {
			agg = &channelAgg{revenue: decimal.Zero}
			channels[ch] = agg
		}
		agg.orders++
		agg.revenue = agg.revenue.Add(total)
	}

	byChannel := make([]models.ChannelShare, 0, len(channels))
	for name, agg := range channels {
		byChannel = append(byChannel, models.ChannelShare{
			Channel:      name,
			Orders:       agg.orders,
			Revenue:      cents(agg.revenue),
			RevenueShare: percent(agg.revenue, revenue),
		})
	}
	sort.Slice(byChannel, func(i, j int) bool {
		if byChannel[i].Revenue != byChannel[j].Revenue {
			return byChannel[i].Revenue > byChannel[j].Revenue
		}
		return byChannel[i].Channel < byChannel[j].Channel
	})

	return models.AnalyticsOverview{
		TotalRevenue:      cents(revenue),
		TotalOrders:       len(orders),
		AverageOrderValue: ratio(revenue, len(orders)),
		TotalCustomers:    len(buyers),
		TotalProducts:     len(ds.Products),
		UnitsSold:         units,
		ByChannel:         byChannel,
		ByStatus:          byStatus,
		MonthlyRevenue:    MonthlyRevenue(ds.Orders, now, 12),
	}
}

// MonthlyRevenue returns order totals for the `months` calendar months ending
// with the month of now, oldest first. Months without orders are zero.
func MonthlyRevenue(orders []models.Order, now time.Time, months int) []models.MonthlyRevenueData {
	if months < 1 {
		return []models.MonthlyRevenueData{}
	}
	last := monthIndex(now)
	first := last - months + 1

	revenue := make([]decimal.Decimal, months)
	counts := make([]int, months)
	for i := range revenue {
		revenue[i] = decimal.Zero
	}
	for _, o := range orders {
		if !o.Countable() {
			continue
		}
		idx := monthIndex(o.OrderDate)
		if idx < first || idx > last {
			continue
		}
		revenue[idx-first] = revenue[idx-first].Add(dec(o.OrderSummary.Total))
		counts[idx-first]++
	}

	out := make([]models.MonthlyRevenueData, months)
	for i := 0; i < months; i++ {
		out[i] = models.MonthlyRevenueData{
			Month:   monthKey(first + i),
			Label:   monthLabel(first + i),
			Orders:  counts[i],
			Revenue: cents(revenue[i]),
		}
	}
	return out
}

// TopProducts ranks products by line revenue across countable orders.
func TopProducts(orders []models.Order, limit int) []models.TopProduct {
	type agg struct {
		name    string
		orders  int
		units   int
		revenue decimal.Decimal
	}
	byProduct := make(map[string]*agg)
	total := decimal.Zero

	for _, o := range countable(orders) {
		seen := make(map[string]bool, len(o.Items))
		for _, it := range o.Items {
			a, ok := byProduct[it.ProductID]
			if !ok {
				a = &agg{name: it.ProductName, revenue: decimal.Zero}
				byProduct[it.ProductID] = a
			}
			line := lineTotal(it)
			a.units += it.Quantity
			a.revenue = a.revenue.Add(line)
			total = total.Add(line)
			if !seen[it.ProductID] {
				a.orders++
				seen[it.ProductID] = true
			}
		}
	}

	out := make([]models.TopProduct, 0, len(byProduct))
	for id, a := range byProduct {
		out = append(out, models.TopProduct{
			ProductID:    id,
			ProductName:  a.name,
			Orders:       a.orders,
			Units:        a.units,
			Revenue:      cents(a.revenue),
			RevenueShare: percent(a.revenue, total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
