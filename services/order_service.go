package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

var (
	ErrTerminalStatus      = errors.New("order is in a terminal status")
	ErrDeliveredTransition = errors.New("a delivered order can only be refunded")
	ErrCancelNoteRequired  = errors.New("a note is required when cancelling an order")
)

// CheckOrderTransition enforces the order lifecycle: cancelled and refunded are
// final, delivered orders may only be refunded, and cancelling needs a note.
// Setting the current status again is a no-op and always allowed.
func CheckOrderTransition(from, to string, note *string) error {
	if from == to {
		return nil
	}
	switch from {
	case models.OrderStatusCancelled, models.OrderStatusRefunded:
		return ErrTerminalStatus
	case models.OrderStatusDelivered:
		if to != models.OrderStatusRefunded {
			return ErrDeliveredTransition
		}
	}
	if to == models.OrderStatusCancelled && (note == nil || strings.TrimSpace(*note) == "") {
		return ErrCancelNoteRequired
	}
	return nil
}

// RecomputeSummary sets subtotal from the items and total from subtotal,
// shipping and tax.
func RecomputeSummary(items []models.OrderItem, s models.OrderSummary) models.OrderSummary {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	total := subtotal.Add(decimal.NewFromFloat(s.Shipping)).Add(decimal.NewFromFloat(s.Tax)).Round(2)

	s.Subtotal = subtotal.InexactFloat64()
	s.Total = total.InexactFloat64()
	return s
}

const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(n int) (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(idAlphabet)))
	for i := 0; i < n; i++ {
		k, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(idAlphabet[k.Int64()])
	}
	return b.String(), nil
}

// NewOrderNumber returns ORD-YYYYMMDD-XXXXXX for the given date.
func NewOrderNumber(at time.Time) (string, error) {
	code, err := randomCode(6)
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return "ORD-" + at.UTC().Format("20060102") + "-" + code, nil
}

// NewTicketNumber returns TKT-XXXXXXXX.
func NewTicketNumber() (string, error) {
	code, err := randomCode(8)
	if err != nil {
		return "", fmt.Errorf("generate ticket number: %w", err)
	}
	return "TKT-" + code, nil
}
