package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftFromValues_NormalizesNameAndNotes(t *testing.T) {
	draft := DraftFromValues(map[string]string{
		"name":  "  rahim uddin ",
		"notes": "print on back",
	})

	assert.Equal(t, "RAHIM UDDIN", draft.Name)
	assert.NotNil(t, draft.Notes)
	assert.Equal(t, "PRINT ON BACK", *draft.Notes)
}

func TestDraftFromValues_PreservesJerseyNumberString(t *testing.T) {
	draft := DraftFromValues(map[string]string{"jerseyNumber": "007"})

	assert.Equal(t, "007", draft.JerseyNumber)
}

func TestDraftFromValues_EmptyBatchIsNil(t *testing.T) {
	draft := DraftFromValues(map[string]string{"batch": ""})
	assert.Nil(t, draft.Batch)

	draft = DraftFromValues(map[string]string{"batch": "2024"})
	assert.NotNil(t, draft.Batch)
	assert.Equal(t, "2024", *draft.Batch)
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusConfirmed.IsValid())
	assert.True(t, OrderStatusDelivered.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("SHIPPED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
