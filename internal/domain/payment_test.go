package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPaymentStatus_Valid tests membership of the closed status set
func TestPaymentStatus_Valid(t *testing.T) {
	for _, status := range PaymentStatuses {
		assert.True(t, status.Valid(), "declared status %q should be valid", status)
	}

	assert.False(t, PaymentStatus("shipped").Valid())
	assert.False(t, PaymentStatus("").Valid())
	assert.False(t, PaymentStatus("SUCCEEDED").Valid(), "status matching is case sensitive")
}

// TestPaymentStatus_RefundBearing tests which statuses carry a refund entry
func TestPaymentStatus_RefundBearing(t *testing.T) {
	tests := []struct {
		name     string
		status   PaymentStatus
		expected bool
	}{
		{name: "refunded_bears_refund", status: StatusRefunded, expected: true},
		{name: "partially_refunded_bears_refund", status: StatusPartiallyRefunded, expected: true},
		{name: "succeeded_bears_no_refund", status: StatusSucceeded, expected: false},
		{name: "failed_bears_no_refund", status: StatusFailed, expected: false},
		{name: "disputed_bears_no_refund", status: StatusDisputed, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.RefundBearing())
		})
	}
}

// TestPaymentStatus_Processable tests which statuses pass through a pending stage
func TestPaymentStatus_Processable(t *testing.T) {
	tests := []struct {
		name     string
		status   PaymentStatus
		expected bool
	}{
		{name: "pending_is_processable", status: StatusPending, expected: true},
		{name: "succeeded_is_processable", status: StatusSucceeded, expected: true},
		{name: "refunded_is_processable", status: StatusRefunded, expected: true},
		{name: "partially_refunded_is_processable", status: StatusPartiallyRefunded, expected: true},
		{name: "disputed_is_processable", status: StatusDisputed, expected: true},
		{name: "voided_is_processable", status: StatusVoided, expected: true},
		{name: "failed_is_not_processable", status: StatusFailed, expected: false},
		{name: "cancelled_is_not_processable", status: StatusCancelled, expected: false},
		{name: "created_is_not_processable", status: StatusCreated, expected: false},
		{name: "authorized_is_not_processable", status: StatusAuthorized, expected: false},
		{name: "payment_method_added_is_not_processable", status: StatusPaymentMethodAdded, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Processable())
		})
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, method := range PaymentMethods {
		assert.True(t, method.Valid(), "declared method %q should be valid", method)
	}
	assert.False(t, PaymentMethod("check").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPaymentMethod_Label(t *testing.T) {
	assert.Equal(t, "credit card", MethodCreditCard.Label())
	assert.Equal(t, "PayPal", MethodPayPal.Label())
	// Unknown methods fall back to the raw value rather than failing.
	assert.Equal(t, "wire", PaymentMethod("wire").Label())
}

func TestParsePaymentStatus(t *testing.T) {
	status, err := ParsePaymentStatus("partially_refunded")
	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyRefunded, status)

	_, err = ParsePaymentStatus("complete")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, MethodBankTransfer, method)

	_, err = ParsePaymentMethod("iou")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestPaymentRecord_ItemTotal(t *testing.T) {
	rec := &PaymentRecord{
		Items: []LineItem{
			{Name: "a", Quantity: 2, Price: decimal.NewFromFloat(10.50), Amount: decimal.NewFromFloat(21.00)},
			{Name: "b", Quantity: 1, Price: decimal.NewFromFloat(0.99), Amount: decimal.NewFromFloat(0.99)},
		},
	}
	assert.True(t, rec.ItemTotal().Equal(decimal.NewFromFloat(21.99)),
		"ItemTotal() = %s, want 21.99", rec.ItemTotal())

	empty := &PaymentRecord{}
	assert.True(t, empty.ItemTotal().IsZero())
}

func TestPaymentRecord_Refunds(t *testing.T) {
	rec := &PaymentRecord{
		Amount: decimal.NewFromInt(200),
		Refunds: []Refund{
			{ID: "REF-1", Amount: decimal.NewFromInt(100), Date: time.Now(), Reason: "duplicate"},
		},
	}
	assert.True(t, rec.HasRefund())
	assert.True(t, rec.RefundedAmount().Equal(decimal.NewFromInt(100)))

	bare := &PaymentRecord{Refunds: []Refund{}}
	assert.False(t, bare.HasRefund())
	assert.True(t, bare.RefundedAmount().IsZero())
}
