package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimelineEvent is one dated lifecycle milestone in a payment's audit trail.
// The optional fields are populated only where the status calls for them:
// money movements carry Amount/Currency, failures and refunds carry Reason,
// remediation guidance goes in Notes.
type TimelineEvent struct {
	ID          string           `json:"id"`
	Status      PaymentStatus    `json:"status"`
	Description string           `json:"description"`
	Timestamp   time.Time        `json:"timestamp"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}
