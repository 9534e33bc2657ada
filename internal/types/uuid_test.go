package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDWithPrefix(t *testing.T) {
	id := GenerateUUIDWithPrefix(UUID_PREFIX_VEHICLE)
	assert.True(t, strings.HasPrefix(id, "veh_"))
	assert.Len(t, id, len("veh_")+26)

	noPrefix := GenerateUUIDWithPrefix("")
	assert.Len(t, noPrefix, 26)
	assert.NotContains(t, noPrefix, "_")
}

func TestGenerateUUIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateUUID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateShortIDWithPrefix(t *testing.T) {
	code := GenerateShortIDWithPrefix(SHORT_ID_PREFIX_BOOKING)
	assert.True(t, strings.HasPrefix(code, "TD-"))
	assert.LessOrEqual(t, len(code), 12)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestGenerateShortIDWithOversizedPrefix(t *testing.T) {
	assert.Empty(t, GenerateShortIDWithPrefix(strings.Repeat("X", 12)))
}
