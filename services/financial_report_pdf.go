package services

import (
	"fmt"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/props"
)

// GenerateFinancialReportPDF renders the summary followed by the monthly P&L.
func GenerateFinancialReportPDF(summary models.FinancialSummary, monthly []models.MonthlyPnL, generatedAt time.Time) ([]byte, error) {
	m := newDocument()
	heading(m, "FINANCIAL REPORT", "Generated "+generatedAt.UTC().Format("Jan 02, 2006 15:04 UTC"))

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("SUMMARY", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
	})
	amountRow(m, "Orders", fmt.Sprintf("%d", summary.Orders), false)
	amountRow(m, "Gross sales", usd(summary.GrossSales), false)
	amountRow(m, "Shipping", usd(summary.Shipping), false)
	amountRow(m, "Tax", usd(summary.Tax), false)
	amountRow(m, "Collected", usd(summary.TotalCollected), false)
	amountRow(m, "COGS", usd(summary.COGS), false)
	amountRow(m, "Refunded", usd(summary.RefundedAmount), false)
	amountRow(m, "Margin", fmt.Sprintf("%.2f%%", summary.GrossMargin), false)
	amountRow(m, "Gross profit", usd(summary.GrossProfit), true)
	spacer(m, 10)

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("MONTHLY PROFIT AND LOSS", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
	})
	rows := make([][]string, 0, len(monthly))
	for _, p := range monthly {
		rows = append(rows, []string{
			p.Label,
			fmt.Sprintf("%d", p.Orders),
			usd(p.Revenue),
			usd(p.COGS),
			usd(p.GrossProfit),
			fmt.Sprintf("%.2f%%", p.Margin),
		})
	}
	grid := []uint{2, 1, 2, 2, 3, 2}
	m.TableList([]string{"Month", "Orders", "Revenue", "COGS", "Gross profit", "Margin"}, rows, props.TableList{
		HeaderProp:           props.TableListContent{Size: 8, Style: consts.Bold, GridSizes: grid},
		ContentProp:          props.TableListContent{Size: 8, GridSizes: grid},
		Align:                consts.Left,
		AlternatedBackground: &stripe,
		HeaderContentSpace:   1,
	})

	footer(m, "Amounts exclude cancelled and refunded orders.")
	return render(m)
}
