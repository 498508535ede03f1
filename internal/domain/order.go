package domain

import "strings"

type CollarType string

const (
	CollarRound CollarType = "round"
	CollarPolo  CollarType = "polo"
)

type SleeveType string

const (
	SleeveHalf SleeveType = "half"
	SleeveFull SleeveType = "full"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderDraft is the in-progress order collected from the form. JerseyNumber
// stays a digit string so leading zeros survive ("01" is not "1").
type OrderDraft struct {
	Name         string
	ContactID    string
	JerseyNumber string
	Size         string
	CollarType   string
	SleeveType   string
	Email        string
	Batch        *string
	Notes        *string
}

// DraftFromValues builds a draft from raw field values. Name and notes are
// uppercased, an empty batch becomes nil, everything else is trimmed as-is.
func DraftFromValues(values map[string]string) OrderDraft {
	get := func(field string) string { return strings.TrimSpace(values[field]) }

	draft := OrderDraft{
		Name:         strings.ToUpper(get("name")),
		ContactID:    get("contactId"),
		JerseyNumber: get("jerseyNumber"),
		Size:         get("size"),
		CollarType:   get("collarType"),
		SleeveType:   get("sleeveType"),
		Email:        get("email"),
	}

	if batch := get("batch"); batch != "" {
		draft.Batch = &batch
	}
	if notes := strings.ToUpper(get("notes")); notes != "" {
		draft.Notes = &notes
	}

	return draft
}

// OrderPayload is the wire form of an order sent to POST /orders.
type OrderPayload struct {
	Name            string  `json:"name"`
	ContactID       string  `json:"contactId"`
	JerseyNumber    string  `json:"jerseyNumber"`
	Size            string  `json:"size"`
	CollarType      string  `json:"collarType"`
	SleeveType      string  `json:"sleeveType"`
	Email           string  `json:"email"`
	Batch           *string `json:"batch"`
	Notes           *string `json:"notes,omitempty"`
	FinalPrice      int     `json:"finalPrice"`
	OrderDate       string  `json:"orderDate"`
	Department      string  `json:"department"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentProvider string  `json:"paymentProvider,omitempty"`
	TransactionID   *string `json:"transactionId"`
	ChargedAmount   int     `json:"chargedAmount"`
}

// OrderRecord is an order as the backend reports it back.
type OrderRecord struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status"`
	OrderPayload
}
