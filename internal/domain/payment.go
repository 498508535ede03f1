package domain

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "Online"
)

type PaymentProvider string

const (
	ProviderBkash PaymentProvider = "bKash"
	ProviderNagad PaymentProvider = "Nagad"
)

// PaymentSelection is the outcome of the payment sub-flow. TransactionRef is
// only meaningful for the online method and must be non-empty there; the
// provider changes display metadata, never control flow.
type PaymentSelection struct {
	Method         PaymentMethod
	Provider       PaymentProvider
	TransactionRef string
}

// PriceQuote is derived from the price table and the chosen payment method.
// Amounts are whole currency units.
type PriceQuote struct {
	BasePrice     int
	ChargedAmount int
}
