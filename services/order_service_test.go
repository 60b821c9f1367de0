package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOrderTransition(t *testing.T) {
	note := "Customer changed their mind"
	blank := "   "

	tests := []struct {
		from, to string
		note     *string
		want     error
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, nil, nil},
		{models.OrderStatusShipped, models.OrderStatusDelivered, nil, nil},
		{models.OrderStatusDelivered, models.OrderStatusRefunded, nil, nil},
		{models.OrderStatusDelivered, models.OrderStatusDelivered, nil, nil},
		{models.OrderStatusDelivered, models.OrderStatusPending, nil, ErrDeliveredTransition},
		{models.OrderStatusCancelled, models.OrderStatusPending, nil, ErrTerminalStatus},
		{models.OrderStatusRefunded, models.OrderStatusShipped, nil, ErrTerminalStatus},
		{models.OrderStatusPending, models.OrderStatusCancelled, nil, ErrCancelNoteRequired},
		{models.OrderStatusPending, models.OrderStatusCancelled, &blank, ErrCancelNoteRequired},
		{models.OrderStatusPending, models.OrderStatusCancelled, &note, nil},
	}
	for _, tc := range tests {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			assert.ErrorIs(t, CheckOrderTransition(tc.from, tc.to, tc.note), tc.want)
		})
	}
}

func TestRecomputeSummary(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "p-1", ProductName: "Toque", Price: 24.99, Quantity: 2},
		{ProductID: "p-2", ProductName: "Mitts", Price: 15, Quantity: 1},
	}
	s := RecomputeSummary(items, models.OrderSummary{Subtotal: 1, Shipping: 10, Tax: 7.5, Total: 1})
	assert.Equal(t, 64.98, s.Subtotal)
	assert.Equal(t, 82.48, s.Total)

	empty := RecomputeSummary(nil, models.OrderSummary{Shipping: 5})
	assert.Zero(t, empty.Subtotal)
	assert.Equal(t, 5.0, empty.Total)
}

func TestGeneratedNumbers(t *testing.T) {
	at := time.Date(2026, 2, 9, 23, 30, 0, 0, time.UTC)
	order, err := NewOrderNumber(at)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-20260209-[A-Z2-9]{6}$`), order)

	ticket, err := NewTicketNumber()
	require.NoError(t, err)
	assert.Regexp(t, `^TKT-[A-Z2-9]{8}$`, ticket)
	assert.NotContains(t, ticket[4:], "O")
	assert.NotContains(t, ticket[4:], "I")
}

func TestReplyStatus(t *testing.T) {
	next, err := ReplyStatus(models.InquiryStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusInProgress, next)

	next, err = ReplyStatus(models.InquiryStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusResolved, next)

	_, err = ReplyStatus(models.InquiryStatusClosed)
	assert.ErrorIs(t, err, ErrInquiryClosed)
}
