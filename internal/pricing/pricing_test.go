package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jerseyform/internal/domain"
)

func testTable() Table {
	return NewTable(map[string]int{
		"round-half": 400,
		"round-full": 500,
		"polo-half":  360,
		"polo-full":  400,
	}, 400, 10)
}

func TestPrice_ConfiguredCombinations(t *testing.T) {
	table := testTable()

	assert.Equal(t, 400, table.Price("round", "half"))
	assert.Equal(t, 500, table.Price("round", "full"))
	assert.Equal(t, 360, table.Price("polo", "half"))
	assert.Equal(t, 400, table.Price("polo", "full"))
}

func TestPrice_IsDeterministic(t *testing.T) {
	table := testTable()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 500, table.Price("round", "full"))
	}
}

func TestPrice_MissingInputFallsBackToDefault(t *testing.T) {
	table := testTable()

	assert.Equal(t, 400, table.Price("", "full"))
	assert.Equal(t, 400, table.Price("round", ""))
	assert.Equal(t, 400, table.Price("", ""))
}

func TestPrice_UnknownCombinationFallsBackToDefault(t *testing.T) {
	table := testTable()

	assert.Equal(t, 400, table.Price("vneck", "full"))
	assert.Equal(t, 400, table.Price("round", "sleeveless"))
}

func TestQuote_CashChargesBasePrice(t *testing.T) {
	quote := testTable().Quote("round", "full", domain.PaymentCOD)

	assert.Equal(t, 500, quote.BasePrice)
	assert.Equal(t, 500, quote.ChargedAmount)
}

func TestQuote_OnlineAddsSurcharge(t *testing.T) {
	quote := testTable().Quote("polo", "half", domain.PaymentOnline)

	assert.Equal(t, 360, quote.BasePrice)
	assert.Equal(t, 370, quote.ChargedAmount)
}

func TestLoadTable_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.yaml")
	content := `
prices:
  round-half: 450
  round-full: 550
defaultPrice: 450
onlineSurcharge: 15
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 550, table.Price("round", "full"))
	assert.Equal(t, 450, table.Price("polo", "half"))
	assert.Equal(t, 15, table.Surcharge())
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTable_EmptyPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultPrice: 400\n"), 0o644))

	_, err := LoadTable(path)
	assert.Error(t, err)
}
