package analytics

import (
	"sort"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

const Uncategorized = "Uncategorized"

// orderCOGS is qty x unit cost over the order's items. Products that no longer
// exist cost nothing.
func orderCOGS(o models.Order, products map[string]models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}
		total = total.Add(dec(p.Price.Cost).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Summary is the profit and loss headline over the given orders.
func Summary(orders []models.Order, products []models.Product) models.FinancialSummary {
	idx := productIndex(products)
	gross, shipping, tax := decimal.Zero, decimal.Zero, decimal.Zero
	collected, cogs, refunded := decimal.Zero, decimal.Zero, decimal.Zero
	var n, refundedN, cancelledN int

	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusRefunded:
			refundedN++
			refunded = refunded.Add(dec(o.OrderSummary.Total))
			continue
		case models.OrderStatusCancelled:
			cancelledN++
			continue
		}
		n++
		gross = gross.Add(dec(o.OrderSummary.Subtotal))
		shipping = shipping.Add(dec(o.OrderSummary.Shipping))
		tax = tax.Add(dec(o.OrderSummary.Tax))
		collected = collected.Add(dec(o.OrderSummary.Total))
		cogs = cogs.Add(orderCOGS(o, idx))
	}

	profit := gross.Sub(cogs)
	return models.FinancialSummary{
		Orders:            n,
		GrossSales:        cents(gross),
		Shipping:          cents(shipping),
		Tax:               cents(tax),
		TotalCollected:    cents(collected),
		COGS:              cents(cogs),
		GrossProfit:       cents(profit),
		GrossMargin:       percent(profit, gross),
		NetRevenue:        cents(collected.Sub(tax)),
		AverageOrderValue: ratio(collected, n),
		RefundedAmount:    cents(refunded),
		RefundedOrders:    refundedN,
		CancelledOrders:   cancelledN,
	}
}

// MonthlyPnL reports revenue (subtotals), cost and profit for the last months
// months ending at the month of now, oldest first and zero-filled.
func MonthlyPnL(orders []models.Order, products []models.Product, now time.Time, months int) []models.MonthlyPnL {
	if months < 1 {
		months = 12
	}
	idx := productIndex(products)
	last := monthIndex(now)
	first := last - months + 1

	revenue := make([]decimal.Decimal, months)
	cost := make([]decimal.Decimal, months)
	counts := make([]int, months)
	for i := range revenue {
		revenue[i], cost[i] = decimal.Zero, decimal.Zero
	}

	for _, o := range countable(orders) {
		m := monthIndex(o.OrderDate)
		if m < first || m > last {
			continue
		}
		i := m - first
		counts[i]++
		revenue[i] = revenue[i].Add(dec(o.OrderSummary.Subtotal))
		cost[i] = cost[i].Add(orderCOGS(o, idx))
	}

	out := make([]models.MonthlyPnL, months)
	for i := 0; i < months; i++ {
		profit := revenue[i].Sub(cost[i])
		out[i] = models.MonthlyPnL{
			Month:       monthKey(first + i),
			Label:       monthLabel(first + i),
			Orders:      counts[i],
			Revenue:     cents(revenue[i]),
			COGS:        cents(cost[i]),
			GrossProfit: cents(profit),
			Margin:      percent(profit, revenue[i]),
		}
	}
	return out
}

type profitAgg struct {
	name     string
	category string
	units    int
	revenue  decimal.Decimal
	cogs     decimal.Decimal
}

func (a *profitAgg) add(it models.OrderItem, unitCost float64) {
	a.units += it.Quantity
	a.revenue = a.revenue.Add(lineTotal(it))
	a.cogs = a.cogs.Add(dec(unitCost).Mul(decimal.NewFromInt(int64(it.Quantity))))
}

func (a *profitAgg) profit() decimal.Decimal {
	return a.revenue.Sub(a.cogs)
}

func categoryOf(p models.Product, ok bool) string {
	if !ok || p.CategoryName == "" {
		return Uncategorized
	}
	return p.CategoryName
}

// CategoryProfitability groups line revenue and cost by category name, most
// profitable first.
func CategoryProfitability(orders []models.Order, products []models.Product) []models.CategoryProfit {
	idx := productIndex(products)
	aggs := make(map[string]*profitAgg)
	for _, o := range countable(orders) {
		for _, it := range o.Items {
			p, ok := idx[it.ProductID]
			name := categoryOf(p, ok)
			a, seen := aggs[name]
			if !seen {
				a = &profitAgg{name: name, revenue: decimal.Zero, cogs: decimal.Zero}
				aggs[name] = a
			}
			a.add(it, p.Price.Cost)
		}
	}

	list := sortedAggs(aggs)
	out := make([]models.CategoryProfit, len(list))
	for i, a := range list {
		out[i] = models.CategoryProfit{
			Category: a.name,
			Units:    a.units,
			Revenue:  cents(a.revenue),
			COGS:     cents(a.cogs),
			Profit:   cents(a.profit()),
			Margin:   percent(a.profit(), a.revenue),
		}
	}
	return out
}

// ProductProfitability ranks products by gross profit. limit <= 0 returns all.
func ProductProfitability(orders []models.Order, products []models.Product, limit int) []models.ProductProfit {
	idx := productIndex(products)
	aggs := make(map[string]*profitAgg)
	for _, o := range countable(orders) {
		for _, it := range o.Items {
			a, seen := aggs[it.ProductID]
			p, ok := idx[it.ProductID]
			if !seen {
				name := it.ProductName
				if ok {
					name = p.Name
				}
				a = &profitAgg{name: name, category: categoryOf(p, ok), revenue: decimal.Zero, cogs: decimal.Zero}
				aggs[it.ProductID] = a
			}
			a.add(it, p.Price.Cost)
		}
	}

	ids := make([]string, 0, len(aggs))
	for id := range aggs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := aggs[ids[i]].profit(), aggs[ids[j]].profit()
		if !pi.Equal(pj) {
			return pi.GreaterThan(pj)
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]models.ProductProfit, len(ids))
	for i, id := range ids {
		a := aggs[id]
		out[i] = models.ProductProfit{
			ProductID:   id,
			ProductName: a.name,
			Category:    a.category,
			Units:       a.units,
			Revenue:     cents(a.revenue),
			COGS:        cents(a.cogs),
			Profit:      cents(a.profit()),
			Margin:      percent(a.profit(), a.revenue),
		}
	}
	return out
}

func sortedAggs(aggs map[string]*profitAgg) []*profitAgg {
	list := make([]*profitAgg, 0, len(aggs))
	for _, a := range aggs {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		pi, pj := list[i].profit(), list[j].profit()
		if !pi.Equal(pj) {
			return pi.GreaterThan(pj)
		}
		return list[i].name < list[j].name
	})
	return list
}

// Inventory values current stock at cost and at the current price, ordered by
// cost value descending.
func Inventory(products []models.Product) models.InventoryValuation {
	lines := make([]models.InventoryLine, 0, len(products))
	units := 0
	totalCost, totalRetail := decimal.Zero, decimal.Zero

	for _, p := range products {
		stock := decimal.NewFromInt(int64(p.TotalStock))
		costValue := dec(p.Price.Cost).Mul(stock)
		retailValue := dec(p.Price.Current).Mul(stock)
		units += p.TotalStock
		totalCost = totalCost.Add(costValue)
		totalRetail = totalRetail.Add(retailValue)
		lines = append(lines, models.InventoryLine{
			ProductID:   p.ID.String(),
			ProductName: p.Name,
			Stock:       p.TotalStock,
			UnitCost:    p.Price.Cost,
			UnitPrice:   p.Price.Current,
			CostValue:   cents(costValue),
			RetailValue: cents(retailValue),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].CostValue != lines[j].CostValue {
			return lines[i].CostValue > lines[j].CostValue
		}
		return lines[i].ProductName < lines[j].ProductName
	})

	return models.InventoryValuation{
		Items:       lines,
		TotalUnits:  units,
		TotalCost:   cents(totalCost),
		TotalRetail: cents(totalRetail),
	}
}
