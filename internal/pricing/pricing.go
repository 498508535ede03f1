// Package pricing resolves a garment price from the (collar, sleeve)
// combination. Prices are deployment configuration, not business rules.
package pricing

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"jerseyform/internal/domain"
)

// Table is a pure lookup from "<collar>-<sleeve>" to a price. Unknown keys
// and missing inputs resolve to the default price.
type Table struct {
	prices       map[string]int
	defaultPrice int
	surcharge    int
}

func NewTable(prices map[string]int, defaultPrice, onlineSurcharge int) Table {
	copied := make(map[string]int, len(prices))
	for k, v := range prices {
		copied[k] = v
	}
	return Table{
		prices:       copied,
		defaultPrice: defaultPrice,
		surcharge:    onlineSurcharge,
	}
}

// Price returns the configured price for the combination, or the default
// when either input is empty or the pair is not configured.
func (t Table) Price(collarType, sleeveType string) int {
	if collarType == "" || sleeveType == "" {
		return t.defaultPrice
	}
	if price, ok := t.prices[collarType+"-"+sleeveType]; ok {
		return price
	}
	return t.defaultPrice
}

// DefaultPrice is what the form shows before both options are selected.
func (t Table) DefaultPrice() int {
	return t.defaultPrice
}

// Surcharge is the fixed amount added on top of the base price for online
// transfers.
func (t Table) Surcharge() int {
	return t.surcharge
}

// Quote computes the charged amount for a payment method. Online transfers
// carry the fixed surcharge; cash pays the base price.
func (t Table) Quote(collarType, sleeveType string, method domain.PaymentMethod) domain.PriceQuote {
	base := t.Price(collarType, sleeveType)
	quote := domain.PriceQuote{
		BasePrice:     base,
		ChargedAmount: base,
	}
	if method == domain.PaymentOnline {
		quote.ChargedAmount = base + t.surcharge
	}
	return quote
}

type tableFile struct {
	Prices          map[string]int `yaml:"prices"`
	DefaultPrice    int            `yaml:"defaultPrice"`
	OnlineSurcharge int            `yaml:"onlineSurcharge"`
}

// LoadTable reads a deployment-specific price table from a yaml file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading price table: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Table{}, fmt.Errorf("parsing price table: %w", err)
	}
	if len(tf.Prices) == 0 {
		return Table{}, fmt.Errorf("price table %s defines no prices", path)
	}

	return NewTable(tf.Prices, tf.DefaultPrice, tf.OnlineSurcharge), nil
}
