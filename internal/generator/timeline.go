package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/commercekit/payfix/internal/domain"
	"github.com/commercekit/payfix/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// terminalDelay is the earliest a payment may reach its terminal status
// after creation.
const terminalDelay = 10 * time.Minute

// timelineStage is one optional node on the lifecycle path between the
// created event and the terminal event:
//
//	created -> [payment_method_added] -> [pending -> [authorized]] -> terminal
//
// Each stage fires independently with its probability, landing a random
// offset within maxDelay of its anchor. Unchained stages anchor on the
// payment date; chained stages anchor on the previous stage and are skipped
// when it did not fire. Beyond each stage's guard the walk samples the path
// independently of which terminal follows, so a voided payment may still
// show an authorized step: plausibility, not a strict state machine.
type timelineStage struct {
	status      domain.PaymentStatus
	probability float64
	maxDelay    time.Duration
	chained     bool
	guard       func(domain.PaymentRecord) bool
	describe    func(domain.PaymentRecord) string
}

var lifecycleStages = []timelineStage{
	{
		status:      domain.StatusPaymentMethodAdded,
		probability: 0.7,
		maxDelay:    time.Minute,
		describe: func(rec domain.PaymentRecord) string {
			return fmt.Sprintf("Customer added a %s payment method", rec.Method.Label())
		},
	},
	{
		status:      domain.StatusPending,
		probability: 0.8,
		maxDelay:    5 * time.Minute,
		guard:       func(rec domain.PaymentRecord) bool { return rec.Status.Processable() },
		describe: func(rec domain.PaymentRecord) string {
			return "Payment submitted and pending confirmation"
		},
	},
	{
		status:      domain.StatusAuthorized,
		probability: 0.6,
		maxDelay:    2 * time.Minute,
		chained:     true,
		guard:       func(rec domain.PaymentRecord) bool { return rec.Method == domain.MethodCreditCard },
		describe: func(rec domain.PaymentRecord) string {
			return "Card authorized by the issuing bank"
		},
	},
}

// SynthesizeTimeline produces the chronologically ordered lifecycle events
// for rec: a created event at the payment date, a sampled walk over
// lifecycleStages, and exactly one terminal event matching rec.Status. The
// result is never empty and no event predates the payment date.
func SynthesizeTimeline(rng *rand.Rand, now time.Time, rec domain.PaymentRecord) []domain.TimelineEvent {
	events := []domain.TimelineEvent{{
		ID:          newUUID(rng),
		Status:      domain.StatusCreated,
		Description: fmt.Sprintf("Payment of %s %s created", rec.Amount.StringFixed(2), rec.Currency),
		Timestamp:   rec.Date,
	}}

	anchor := rec.Date
	previousFired := true
	for _, stage := range lifecycleStages {
		if !stage.chained {
			anchor = rec.Date
			previousFired = true
		}
		if !previousFired || (stage.guard != nil && !stage.guard(rec)) {
			previousFired = false
			continue
		}
		if rng.Float64() >= stage.probability {
			previousFired = false
			continue
		}
		at := anchor.Add(randDuration(rng, stage.maxDelay))
		events = append(events, domain.TimelineEvent{
			ID:          newUUID(rng),
			Status:      stage.status,
			Description: stage.describe(rec),
			Timestamp:   at,
		})
		anchor = at
		previousFired = true
	}

	events = append(events, terminalEvent(rng, now, rec))

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events
}

// terminalEvent builds the final event for rec, timed between ten minutes
// after creation and the generation instant. The switch covers the full
// status set; anything unexpected falls back to a generic event so that
// batch generation is total.
func terminalEvent(rng *rand.Rand, now time.Time, rec domain.PaymentRecord) domain.TimelineEvent {
	earliest := rec.Date.Add(terminalDelay)
	latest := timeutil.Latest(now, earliest)

	event := domain.TimelineEvent{
		ID:        newUUID(rng),
		Status:    rec.Status,
		Timestamp: earliest.Add(randDuration(rng, latest.Sub(earliest))),
	}

	switch rec.Status {
	case domain.StatusSucceeded:
		event.Description = fmt.Sprintf("Payment of %s %s succeeded", rec.Amount.StringFixed(2), rec.Currency)
		event.Amount = amountRef(rec.Amount)
		event.Currency = rec.Currency
	case domain.StatusFailed:
		event.Description = "Payment failed"
		event.Reason = string(pick(rng, domain.FailureReasons))
		event.Notes = failureNotes
	case domain.StatusRefunded:
		event.Description = fmt.Sprintf("Payment fully refunded (%s %s)", rec.Amount.StringFixed(2), rec.Currency)
		event.Amount = amountRef(rec.Amount)
		event.Currency = rec.Currency
		event.Reason = firstRefundReason(rec)
	case domain.StatusPartiallyRefunded:
		refunded := rec.RefundedAmount()
		event.Description = fmt.Sprintf("Payment partially refunded (%s %s)", refunded.StringFixed(2), rec.Currency)
		event.Amount = amountRef(refunded)
		event.Currency = rec.Currency
		event.Reason = firstRefundReason(rec)
	case domain.StatusDisputed:
		event.Description = "Customer disputed the charge"
		event.Reason = "chargeback_filed"
	case domain.StatusVoided:
		event.Description = "Payment voided before settlement"
		event.Reason = "voided_by_merchant"
	case domain.StatusCancelled:
		event.Description = "Payment cancelled"
		event.Reason = "cancelled_by_customer"
	case domain.StatusPending:
		event.Description = "Payment pending"
		event.Notes = "Awaiting confirmation from the payment provider."
	default:
		event.Description = fmt.Sprintf("Payment marked %s", rec.Status)
	}
	return event
}

func firstRefundReason(rec domain.PaymentRecord) string {
	if len(rec.Refunds) > 0 {
		return rec.Refunds[0].Reason
	}
	return ""
}

func amountRef(d decimal.Decimal) *decimal.Decimal {
	return &d
}
