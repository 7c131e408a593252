// Package generator synthesizes internally-consistent payment records and
// their lifecycle timelines for use as fixture/demo data. Generation is a
// single bounded synchronous computation: no I/O, no shared state between
// batches, and every draw comes from the generator's own random source.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/commercekit/payfix/internal/domain"
	"github.com/commercekit/payfix/pkg/timeutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCount is the batch size produced when consumers do not ask for a
// specific number of records.
const DefaultCount = 50

// Generator produces batches of synthetic PaymentRecords. The zero options
// give an unseeded source for fixture use; tests inject a seeded *rand.Rand
// and a fixed clock to reproduce exact batches.
type Generator struct {
	rng      *rand.Rand
	now      func() time.Time
	statuses []domain.PaymentStatus
	methods  []domain.PaymentMethod
	seq      int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand replaces the random source. Pass rand.New(rand.NewSource(seed))
// for deterministic output.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithNow replaces the clock used as the generation instant.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithStatusPool constrains the terminal-status draw to the given statuses.
// A single-element pool forces every record to that status. An empty pool is
// ignored.
func WithStatusPool(statuses ...domain.PaymentStatus) Option {
	return func(g *Generator) {
		if len(statuses) > 0 {
			g.statuses = statuses
		}
	}
}

// WithMethodPool constrains the payment-method draw to the given methods.
// An empty pool is ignored.
func WithMethodPool(methods ...domain.PaymentMethod) Option {
	return func(g *Generator) {
		if len(methods) > 0 {
			g.methods = methods
		}
	}
}

// New builds a Generator with the default tables, an unseeded random source
// and the UTC clock, then applies opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      timeutil.Now,
		statuses: domain.PaymentStatuses,
		methods:  domain.PaymentMethods,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Batch generates count PaymentRecords. A count of zero or less yields an
// empty, non-nil slice; generation never fails.
func (g *Generator) Batch(count int) []domain.PaymentRecord {
	if count < 0 {
		count = 0
	}
	records := make([]domain.PaymentRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.Record())
	}
	return records
}

// Record generates a single PaymentRecord with the next sequence number.
func (g *Generator) Record() domain.PaymentRecord {
	g.seq++
	now := g.now()

	status := pick(g.rng, g.statuses)
	method := pick(g.rng, g.methods)
	items := g.lineItems()

	rec := domain.PaymentRecord{
		ID:        fmt.Sprintf("PAY-%04d", g.seq),
		Customer:  pick(g.rng, customers),
		Date:      now.Add(-randDuration(g.rng, dateWindow)),
		Currency:  pick(g.rng, currencies),
		Status:    status,
		Method:    method,
		InvoiceID: fmt.Sprintf("INV-%04d", 1000+g.rng.Intn(9000)),
		Items:     items,
		Metadata: domain.Metadata{
			IPAddress: g.ipAddress(),
			Device:    pick(g.rng, devices),
			UserAgent: pick(g.rng, userAgents),
			Country:   pick(g.rng, countries),
		},
		GatewayID: g.gatewayID(method),
		Refunds:   []domain.Refund{},
	}

	// Succeeded payments reconcile exactly against their line items; every
	// other status carries an independently sampled amount.
	if status == domain.StatusSucceeded {
		rec.Amount = rec.ItemTotal()
	} else {
		rec.Amount = g.amount()
	}

	// Fee and net derive from the final amount, except failed payments
	// which settle nothing.
	if status == domain.StatusFailed {
		rec.Fee = decimal.Zero
		rec.NetAmount = decimal.Zero
	} else {
		rate := feeRateMin + g.rng.Float64()*feeRateSpan
		rec.Fee = rec.Amount.Mul(decimal.NewFromFloat(rate)).Round(2)
		rec.NetAmount = rec.Amount.Sub(rec.Fee).Round(2)
	}

	if status.RefundBearing() {
		rec.Refunds = []domain.Refund{g.refund(rec, now)}
	}

	rec.Timeline = SynthesizeTimeline(g.rng, now, rec)
	return rec
}

// Payments generates count records from a process-wide unseeded generator.
// It is the ready-to-use entry point for fixture consumers that do not need
// determinism.
func Payments(count int) []domain.PaymentRecord {
	return defaultGenerator.Batch(count)
}

var defaultGenerator = New()

func (g *Generator) amount() decimal.Decimal {
	return decimal.NewFromFloat(amountMin + g.rng.Float64()*amountSpan).Round(2)
}

func (g *Generator) lineItems() []domain.LineItem {
	n := minItems + g.rng.Intn(maxItems-minItems+1)
	items := make([]domain.LineItem, 0, n)
	for i := 0; i < n; i++ {
		p := pick(g.rng, products)
		qty := 1 + g.rng.Intn(maxQuantity)
		items = append(items, domain.LineItem{
			Name:     p.name,
			Quantity: qty,
			Price:    p.price,
			Amount:   p.price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return items
}

func (g *Generator) refund(rec domain.PaymentRecord, now time.Time) domain.Refund {
	amount := rec.Amount
	if rec.Status == domain.StatusPartiallyRefunded {
		amount = rec.Amount.Div(decimal.NewFromInt(2)).Round(2)
	}
	return domain.Refund{
		ID:          "REF-" + newUUID(g.rng)[:8],
		Amount:      amount,
		Date:        rec.Date.Add(randDuration(g.rng, now.Sub(rec.Date))),
		Reason:      pick(g.rng, refundReasons),
		ProcessedBy: pick(g.rng, refundProcessors),
	}
}

func (g *Generator) gatewayID(method domain.PaymentMethod) string {
	prefix, ok := gatewaySchemes[method]
	if !ok {
		return ""
	}
	return prefix + g.token(14)
}

func (g *Generator) ipAddress() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+g.rng.Intn(223), g.rng.Intn(256), g.rng.Intn(256), 1+g.rng.Intn(254))
}

const tokenCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func (g *Generator) token(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = tokenCharset[g.rng.Intn(len(tokenCharset))]
	}
	return string(b)
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

// newUUID derives a UUID from the generator's random source rather than the
// package-global crypto source, so seeded generators reproduce exact batches
// including identifiers.
func newUUID(rng *rand.Rand) string {
	var b [16]byte
	rng.Read(b[:])
	return uuid.Must(uuid.FromBytes(b[:])).String()
}

// randDuration returns a uniform duration in [0, max). A non-positive max
// yields zero.
func randDuration(rng *rand.Rand, max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rng.Int63n(int64(max)))
}
