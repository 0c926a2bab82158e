package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4231, test case 2.
func TestHashString_KnownVector(t *testing.T) {
	got := HashString("what do ya want for nothing?", "Jefe")

	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestHashString_IsHex(t *testing.T) {
	got := HashString(`{"workflowId":"wf-1","status":"completed"}`, "callback-key")

	raw, err := hex.DecodeString(got)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestHashString_SamePayload_Deterministic(t *testing.T) {
	payload := `{"workflowId":"wf-1","status":"completed"}`

	assert.Equal(t, HashString(payload, "k"), HashString(payload, "k"))
}

func TestHashString_Differences(t *testing.T) {
	tests := []struct {
		name  string
		dataA string
		keyA  string
		dataB string
		keyB  string
	}{
		{name: "different keys", dataA: "body", keyA: "key-1", dataB: "body", keyB: "key-2"},
		{name: "different payloads", dataA: "body-1", keyA: "key", dataB: "body-2", keyB: "key"},
		{name: "field order matters", dataA: `{"a":1,"b":2}`, keyA: "key", dataB: `{"b":2,"a":1}`, keyB: "key"},
		{name: "whitespace matters", dataA: `{"a":1}`, keyA: "key", dataB: `{"a": 1}`, keyB: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, HashString(tt.dataA, tt.keyA), HashString(tt.dataB, tt.keyB))
		})
	}
}
