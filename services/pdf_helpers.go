package services

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

const storeName = "MAPLENEST"

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
	stripe     = color.Color{Red: 244, Green: 243, Blue: 239}
)

func newDocument() pdf.Maroto {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)
	return m
}

func usd(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func heading(m pdf.Maroto, title, subtitle string) {
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(storeName, props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})
	if subtitle != "" {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(subtitle, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}
	spacer(m, 8)
}

func spacer(m pdf.Maroto, height float64) {
	m.Row(height, func() {})
}

// amountRow is a right-aligned label/value pair in the last third of the page.
func amountRow(m pdf.Maroto, label, value string, strong bool) {
	size, height := 9.0, 5.0
	style := consts.Normal
	labelColor := mediumGray
	if strong {
		size, height = 12, 8
		style = consts.Bold
		labelColor = darkGray
	}
	m.Row(height, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text(label, props.Text{Size: size, Style: style, Color: labelColor, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(value, props.Text{Size: size, Style: style, Color: darkGray, Align: consts.Right})
		})
	})
}

func footer(m pdf.Maroto, line string) {
	spacer(m, 12)
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(line, props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
	})
}

func render(m pdf.Maroto) ([]byte, error) {
	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
