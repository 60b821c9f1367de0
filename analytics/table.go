package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/BadarHossain1/maplenest-admin-api/models"
)

// Table is a report flattened for CSV export. Each row corresponds to one
// element of the report's JSON array.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WriteCSV writes the header followed by every row.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func money(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// The overview export is its monthly revenue series.
func OverviewTable(o models.AnalyticsOverview) Table {
	t := Table{Name: "overview", Header: []string{"month", "label", "orders", "revenue"}}
	for _, m := range o.MonthlyRevenue {
		t.Rows = append(t.Rows, []string{m.Month, m.Label, itoa(m.Orders), money(m.Revenue)})
	}
	return t
}

func TopProductsTable(list []models.TopProduct) Table {
	t := Table{Name: "top-products", Header: []string{"product_id", "product_name", "orders", "units", "revenue", "revenue_share"}}
	for _, p := range list {
		t.Rows = append(t.Rows, []string{p.ProductID, p.ProductName, itoa(p.Orders), itoa(p.Units), money(p.Revenue), money(p.RevenueShare)})
	}
	return t
}

func SeasonalTable(list []models.SeasonalBucket) Table {
	t := Table{Name: "seasonal", Header: []string{"season", "orders", "units", "revenue", "average_order_value", "revenue_share", "top_product"}}
	for _, s := range list {
		t.Rows = append(t.Rows, []string{s.Season, itoa(s.Orders), itoa(s.Units), money(s.Revenue), money(s.AverageOrderValue), money(s.RevenueShare), s.TopProduct})
	}
	return t
}

// CohortTable has one retention column per month offset; offsets a cohort has
// not reached yet are left blank.
func CohortTable(rows []models.CohortRow, months int) Table {
	header := []string{"cohort", "size"}
	for k := 0; k < months; k++ {
		header = append(header, fmt.Sprintf("month_%d", k))
	}
	t := Table{Name: "cohorts", Header: header}
	for _, r := range rows {
		rec := []string{r.Cohort, itoa(r.Size)}
		for k := 0; k < months; k++ {
			if k < len(r.Retention) {
				rec = append(rec, money(r.Retention[k]))
			} else {
				rec = append(rec, "")
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

func CLVTable(list []models.SegmentCLV) Table {
	t := Table{Name: "clv", Header: []string{"segment", "customers", "orders", "revenue", "average_order_value", "purchase_frequency", "clv", "revenue_share"}}
	for _, s := range list {
		t.Rows = append(t.Rows, []string{s.Segment, itoa(s.Customers), itoa(s.Orders), money(s.Revenue), money(s.AverageOrderValue), money(s.PurchaseFrequency), money(s.CLV), money(s.RevenueShare)})
	}
	return t
}

// ForecastTable lists the history then the forecast, tagged by kind.
func ForecastTable(f models.RevenueForecast) Table {
	t := Table{Name: "forecast", Header: []string{"month", "kind", "revenue", "smoothed"}}
	for _, p := range f.History {
		smoothed := ""
		if p.Smoothed != nil {
			smoothed = money(*p.Smoothed)
		}
		t.Rows = append(t.Rows, []string{p.Month, "actual", money(p.Revenue), smoothed})
	}
	for _, p := range f.Forecast {
		t.Rows = append(t.Rows, []string{p.Month, "forecast", money(p.Revenue), ""})
	}
	return t
}

// SummaryTable is a metric/value listing of the financial summary.
func SummaryTable(s models.FinancialSummary) Table {
	return Table{
		Name:   "summary",
		Header: []string{"metric", "value"},
		Rows: [][]string{
			{"orders", itoa(s.Orders)},
			{"gross_sales", money(s.GrossSales)},
			{"shipping", money(s.Shipping)},
			{"tax", money(s.Tax)},
			{"total_collected", money(s.TotalCollected)},
			{"cogs", money(s.COGS)},
			{"gross_profit", money(s.GrossProfit)},
			{"gross_margin", money(s.GrossMargin)},
			{"net_revenue", money(s.NetRevenue)},
			{"average_order_value", money(s.AverageOrderValue)},
			{"refunded_amount", money(s.RefundedAmount)},
			{"refunded_orders", itoa(s.RefundedOrders)},
			{"cancelled_orders", itoa(s.CancelledOrders)},
		},
	}
}

func MonthlyPnLTable(list []models.MonthlyPnL) Table {
	t := Table{Name: "monthly", Header: []string{"month", "label", "orders", "revenue", "cogs", "gross_profit", "margin"}}
	for _, m := range list {
		t.Rows = append(t.Rows, []string{m.Month, m.Label, itoa(m.Orders), money(m.Revenue), money(m.COGS), money(m.GrossProfit), money(m.Margin)})
	}
	return t
}

func CategoryProfitTable(list []models.CategoryProfit) Table {
	t := Table{Name: "categories", Header: []string{"category", "units", "revenue", "cogs", "profit", "margin"}}
	for _, c := range list {
		t.Rows = append(t.Rows, []string{c.Category, itoa(c.Units), money(c.Revenue), money(c.COGS), money(c.Profit), money(c.Margin)})
	}
	return t
}

func ProductProfitTable(list []models.ProductProfit) Table {
	t := Table{Name: "products", Header: []string{"product_id", "product_name", "category", "units", "revenue", "cogs", "profit", "margin"}}
	for _, p := range list {
		t.Rows = append(t.Rows, []string{p.ProductID, p.ProductName, p.Category, itoa(p.Units), money(p.Revenue), money(p.COGS), money(p.Profit), money(p.Margin)})
	}
	return t
}

func InventoryTable(v models.InventoryValuation) Table {
	t := Table{Name: "inventory", Header: []string{"product_id", "product_name", "stock", "unit_cost", "unit_price", "cost_value", "retail_value"}}
	for _, l := range v.Items {
		t.Rows = append(t.Rows, []string{l.ProductID, l.ProductName, itoa(l.Stock), money(l.UnitCost), money(l.UnitPrice), money(l.CostValue), money(l.RetailValue)})
	}
	return t
}
