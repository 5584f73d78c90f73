package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIdentity(t *testing.T) {
	assert.True(t, NilEntity.IsNil())
	e := Entity{Slot: 3, Gen: 2}
	assert.False(t, e.IsNil())
	assert.Equal(t, "3v2", e.String())
}

func TestEntityGenerationDistinguishesSlotReuse(t *testing.T) {
	old := Entity{Slot: 7, Gen: 1}
	reused := Entity{Slot: 7, Gen: 2}
	assert.NotEqual(t, old, reused)
	assert.False(t, reused.IsNil())
}
