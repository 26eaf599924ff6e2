package dirty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetEqualValueIsNoOp(t *testing.T) {
	g := NewGroup()
	online := NewField(g, "online", false)

	online.Set(false)

	assert.False(t, g.ConsumeDirty())
	assert.Empty(t, g.Changes())
}

func TestSetNewValueMarksDirty(t *testing.T) {
	g := NewGroup()
	online := NewField(g, "online", false)
	code := NewField(g, "code", "de1")

	online.Set(true)

	require.True(t, g.ConsumeDirty())
	changes := g.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, "online", changes[0].Name)
	assert.Equal(t, true, changes[0].Value)
	assert.Equal(t, "de1", code.Get())
}

func TestConsumeDirtyResetsFlagOnly(t *testing.T) {
	g := NewGroup()
	f := NewField(g, "speed", 0)
	f.Set(120)

	assert.True(t, g.ConsumeDirty())
	assert.False(t, g.ConsumeDirty())
	// Change set survives consumption so the frame can still be built.
	assert.Len(t, g.Changes(), 1)
}

func TestSetBackToInitialSuppressed(t *testing.T) {
	g := NewGroup()
	f := NewField(g, "difficulty", 3)

	f.Set(4)
	f.Set(3)

	// The group went dirty on the first write, but the net change is empty.
	assert.True(t, g.ConsumeDirty())
	assert.Empty(t, g.Changes())
}

func TestNullableClear(t *testing.T) {
	g := NewGroup()
	driver := "steam-123"
	f := NewNullableField(g, "driver_id", &driver)

	f.Clear()

	require.True(t, g.ConsumeDirty())
	changes := g.Changes()
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Cleared)
	assert.Nil(t, changes[0].Value)

	_, ok := f.Get()
	assert.False(t, ok)
}

func TestNullableClearWhenAlreadyNull(t *testing.T) {
	g := NewGroup()
	f := NewNullableField[string](g, "driver_id", nil)

	f.Clear()
	f.SetNullable(nil)

	assert.False(t, g.ConsumeDirty())
	assert.Empty(t, g.Changes())
}

func TestNullableNullToValue(t *testing.T) {
	g := NewGroup()
	f := NewNullableField[int](g, "next_signal_distance", nil)

	f.Set(4200)

	require.True(t, g.ConsumeDirty())
	changes := g.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, 4200, changes[0].Value)
	assert.False(t, changes[0].Cleared)
}

func TestResetClearsChangeRecords(t *testing.T) {
	g := NewGroup()
	f := NewField(g, "scenery", "default")
	f.Set("winter")
	g.Reset()

	assert.False(t, g.ConsumeDirty())
	assert.Empty(t, g.Changes())

	// After reset the new baseline is the last written value.
	f.Set("winter")
	assert.False(t, g.ConsumeDirty())
}
