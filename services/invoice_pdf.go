package services

import (
	"fmt"
	"strings"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/props"
)

// GenerateOrderInvoicePDF renders an order as a one-page invoice.
func GenerateOrderInvoicePDF(order *models.Order) ([]byte, error) {
	m := newDocument()
	heading(m, "INVOICE", "")

	ship := order.ShippingAddress
	billTo := ship.FullName
	if billTo == "" {
		billTo = order.UserEmail
	}

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(billTo, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("Invoice #"+order.OrderID, props.Text{Size: 10, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.UserEmail, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text("Date: "+order.OrderDate.Format("Jan 02, 2006"), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})
	if addr := addressLine(ship); addr != "" {
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(addr, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(6, func() {
				m.Text("Status: "+order.Status, props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
		})
	}
	spacer(m, 8)

	rows := make([][]string, 0, len(order.Items))
	for _, it := range order.Items {
		desc := it.ProductName
		if variant := strings.Trim(it.SelectedSize+" / "+it.ColorName, " /"); variant != "" {
			desc += " (" + variant + ")"
		}
		rows = append(rows, []string{desc, fmt.Sprintf("%d", it.Quantity), usd(it.Price), usd(it.Price * float64(it.Quantity))})
	}
	m.TableList([]string{"Description", "Qty", "Price", "Total"}, rows, props.TableList{
		HeaderProp:           props.TableListContent{Size: 8, Style: consts.Bold, GridSizes: []uint{6, 2, 2, 2}},
		ContentProp:          props.TableListContent{Size: 9, GridSizes: []uint{6, 2, 2, 2}},
		Align:                consts.Left,
		AlternatedBackground: &stripe,
		HeaderContentSpace:   1,
	})
	spacer(m, 8)

	summary := order.OrderSummary
	amountRow(m, "Subtotal", usd(summary.Subtotal), false)
	amountRow(m, "Shipping", usd(summary.Shipping), false)
	amountRow(m, "Tax", usd(summary.Tax), false)
	amountRow(m, "Total", usd(summary.Total), true)

	footer(m, "Thank you for shopping with MapleNest!")
	return render(m)
}

func addressLine(a models.ShippingAddress) string {
	var parts []string
	for _, p := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
