package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a payment. The same set is
// used both for a payment's terminal status and for individual timeline events.
type PaymentStatus string

const (
	StatusCreated            PaymentStatus = "created"
	StatusPending            PaymentStatus = "pending"
	StatusSucceeded          PaymentStatus = "succeeded"
	StatusFailed             PaymentStatus = "failed"
	StatusRefunded           PaymentStatus = "refunded"
	StatusPartiallyRefunded  PaymentStatus = "partially_refunded"
	StatusDisputed           PaymentStatus = "disputed"
	StatusVoided             PaymentStatus = "voided"
	StatusAuthorized         PaymentStatus = "authorized"
	StatusCancelled          PaymentStatus = "cancelled"
	StatusPaymentMethodAdded PaymentStatus = "payment_method_added"
)

// PaymentStatuses lists every valid status in declaration order.
var PaymentStatuses = []PaymentStatus{
	StatusCreated,
	StatusPending,
	StatusSucceeded,
	StatusFailed,
	StatusRefunded,
	StatusPartiallyRefunded,
	StatusDisputed,
	StatusVoided,
	StatusAuthorized,
	StatusCancelled,
	StatusPaymentMethodAdded,
}

// Valid returns true if s is a member of the closed status set.
func (s PaymentStatus) Valid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RefundBearing returns true for statuses that carry exactly one refund entry.
func (s PaymentStatus) RefundBearing() bool {
	return s == StatusRefunded || s == StatusPartiallyRefunded
}

// Processable returns true for statuses reached through normal processing,
// i.e. payments that plausibly passed through a pending stage before
// settling. Immediate-failure states (failed, cancelled) and the bare
// intermediate markers are excluded.
func (s PaymentStatus) Processable() bool {
	switch s {
	case StatusPending, StatusSucceeded, StatusRefunded, StatusPartiallyRefunded, StatusDisputed, StatusVoided:
		return true
	}
	return false
}

// PaymentMethod represents how a payment was funded.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodStripe       PaymentMethod = "stripe"
	MethodRazorpay     PaymentMethod = "razorpay"
	MethodCash         PaymentMethod = "cash"
	MethodCrypto       PaymentMethod = "crypto"
	MethodOther        PaymentMethod = "other"
)

// PaymentMethods lists every valid method in declaration order.
var PaymentMethods = []PaymentMethod{
	MethodCreditCard,
	MethodPayPal,
	MethodBankTransfer,
	MethodStripe,
	MethodRazorpay,
	MethodCash,
	MethodCrypto,
	MethodOther,
}

// Valid returns true if m is a member of the closed method set.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

var methodLabels = map[PaymentMethod]string{
	MethodCreditCard:   "credit card",
	MethodPayPal:       "PayPal",
	MethodBankTransfer: "bank transfer",
	MethodStripe:       "Stripe",
	MethodRazorpay:     "Razorpay",
	MethodCash:         "cash",
	MethodCrypto:       "crypto",
	MethodOther:        "other",
}

// Label returns a human-readable name for the method, for use in
// timeline descriptions.
func (m PaymentMethod) Label() string {
	if label, ok := methodLabels[m]; ok {
		return label
	}
	return string(m)
}

// FailureReason is the machine-readable cause attached to a failed payment's
// terminal timeline event.
type FailureReason string

const (
	FailureCardDeclined      FailureReason = "card_declined"
	FailureInsufficientFunds FailureReason = "insufficient_funds"
	FailureNetworkError      FailureReason = "network_error"
	FailureFraudDetected     FailureReason = "fraud_detected"
)

// FailureReasons lists every failure reason in declaration order.
var FailureReasons = []FailureReason{
	FailureCardDeclined,
	FailureInsufficientFunds,
	FailureNetworkError,
	FailureFraudDetected,
}

// Customer is one of the fixed customer profiles payments are attributed to.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LineItem is a single purchased product line on a payment.
type LineItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"` // Quantity * Price
}

// Metadata carries the synthetic client context recorded with a payment.
type Metadata struct {
	IPAddress string `json:"ip"`
	Device    string `json:"device"` // desktop or mobile
	UserAgent string `json:"userAgent"`
	Country   string `json:"country"`
}

// Refund records a full or partial return of funds against a payment.
type Refund struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Reason      string          `json:"reason"`
	ProcessedBy string          `json:"processedBy"`
}

// PaymentRecord is a fully-populated synthetic payment transaction. Records
// are immutable once generated; consumers render them but never write back.
type PaymentRecord struct {
	ID        string          `json:"id"`
	Customer  Customer        `json:"customer"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	NetAmount decimal.Decimal `json:"netAmount"`
	Currency  string          `json:"currency"`
	Status    PaymentStatus   `json:"status"`
	Method    PaymentMethod   `json:"method"`
	InvoiceID string          `json:"invoiceId"`
	Items     []LineItem      `json:"items"`
	Metadata  Metadata        `json:"metadata"`
	GatewayID string          `json:"gatewayId,omitempty"`
	Refunds   []Refund        `json:"refunds"`
	Timeline  []TimelineEvent `json:"timeline"`
}

// ItemTotal returns the exact sum of line item amounts.
func (p *PaymentRecord) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// HasRefund returns true if the payment carries at least one refund entry.
func (p *PaymentRecord) HasRefund() bool {
	return len(p.Refunds) > 0
}

// RefundedAmount returns the total amount returned across refund entries.
func (p *PaymentRecord) RefundedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Refunds {
		total = total.Add(r.Amount)
	}
	return total
}
