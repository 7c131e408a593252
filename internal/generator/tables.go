package generator

import (
	"time"

	"github.com/commercekit/payfix/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed lookup tables the generator draws from. Everything here is closed:
// there is no path for caller-supplied values to enter a batch.

var customers = []domain.Customer{
	{ID: "CUST-001", Name: "Ava Thompson", Email: "ava.thompson@example.com"},
	{ID: "CUST-002", Name: "Liam Patel", Email: "liam.patel@example.com"},
	{ID: "CUST-003", Name: "Sofia Reyes", Email: "sofia.reyes@example.com"},
	{ID: "CUST-004", Name: "Noah Kim", Email: "noah.kim@example.com"},
	{ID: "CUST-005", Name: "Emma Müller", Email: "emma.mueller@example.com"},
	{ID: "CUST-006", Name: "Oliver Santos", Email: "oliver.santos@example.com"},
	{ID: "CUST-007", Name: "Mia Chen", Email: "mia.chen@example.com"},
	{ID: "CUST-008", Name: "Ethan Okafor", Email: "ethan.okafor@example.com"},
}

type product struct {
	name  string
	price decimal.Decimal
}

var products = []product{
	{name: "Wireless Mouse", price: decimal.NewFromFloat(24.99)},
	{name: "Mechanical Keyboard", price: decimal.NewFromFloat(89.00)},
	{name: "USB-C Hub", price: decimal.NewFromFloat(45.50)},
	{name: "Noise-Cancelling Headphones", price: decimal.NewFromFloat(199.99)},
	{name: "27\" Monitor", price: decimal.NewFromFloat(329.00)},
	{name: "Laptop Stand", price: decimal.NewFromFloat(39.95)},
	{name: "Webcam 1080p", price: decimal.NewFromFloat(59.99)},
	{name: "Desk Lamp", price: decimal.NewFromFloat(34.50)},
	{name: "External SSD 1TB", price: decimal.NewFromFloat(119.00)},
	{name: "Phone Charger", price: decimal.NewFromFloat(18.99)},
}

var currencies = []string{"USD", "EUR", "GBP", "INR", "CAD", "AUD"}

var countries = []string{"US", "GB", "DE", "IN", "CA", "AU", "FR", "BR"}

var devices = []string{"desktop", "mobile"}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36",
}

var refundReasons = []string{
	"requested_by_customer",
	"duplicate",
	"fraudulent",
	"product_not_received",
}

var refundProcessors = []string{
	"support.team",
	"finance.ops",
	"risk.review",
	"auto.policy",
}

// failureNotes is the fixed remediation guidance attached to every failed
// payment's terminal event.
const failureNotes = "Ask the customer to retry with a different payment method or contact their bank."

// gatewaySchemes maps each payment method to its gateway reference prefix.
// Methods without an entry (cash, other) have no gateway-side identifier.
var gatewaySchemes = map[domain.PaymentMethod]string{
	domain.MethodCreditCard:   "ch_",
	domain.MethodPayPal:       "PAYID-",
	domain.MethodBankTransfer: "bt_",
	domain.MethodStripe:       "pi_",
	domain.MethodRazorpay:     "pay_",
	domain.MethodCrypto:       "0x",
}

// Generation bounds
const (
	dateWindow = 90 * 24 * time.Hour // payments land within the trailing 90 days

	amountMin  = 50.0
	amountSpan = 3000.0 // amounts sample from [50, 3050]

	feeRateMin  = 0.01
	feeRateSpan = 0.04 // fee rate samples from [1%, 5%]

	minItems    = 1
	maxItems    = 4
	maxQuantity = 5
)
