package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashID_Deterministic(t *testing.T) {
	t.Parallel()
	a := HashID("8f14e45f-ceea-467f-a8d9-dc3f5f6c0b1a")
	b := HashID("8f14e45f-ceea-467f-a8d9-dc3f5f6c0b1a")
	assert.Equal(t, a, b)
	assert.Len(t, a.String(), 64)
}

func TestHashID_NeverEchoesRawValue(t *testing.T) {
	t.Parallel()
	raw := "secret-user-id"
	assert.NotContains(t, HashID(raw).String(), raw)
}
