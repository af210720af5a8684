package collision

import (
	"fmt"
	"sync"
	"testing"

	"github.com/automoto/racetrack/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAssignsBitsInOrder(t *testing.T) {
	r := NewRegistry("a", "b")

	c, err := r.Register("c")
	require.NoError(t, err)

	assert.Equal(t, Mask(1), r.Mask("a"))
	assert.Equal(t, Mask(2), r.Mask("b"))
	assert.Equal(t, Mask(4), c)
	assert.Equal(t, []string{"a", "b", "c"}, r.Layers())
}

func TestRegistryIsIdempotent(t *testing.T) {
	r := NewRegistry("a")

	m, err := r.Register("a")
	require.NoError(t, err)
	assert.Equal(t, Mask(1), m)
	assert.Len(t, r.Layers(), 1)
}

func TestRegistryMaskAndNames(t *testing.T) {
	r := NewRegistry("a", "b", "c")

	m := r.Mask("a", "c", "unknown")
	assert.Equal(t, Mask(5), m)
	assert.Equal(t, []string{"a", "c"}, r.Names(m))
	assert.True(t, m.Has(r.Mask("c")))
	assert.False(t, m.Has(r.Mask("b")))
	assert.Empty(t, r.Names(0))
}

func TestRegistryExhausted(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < maxLayers; i++ {
		_, err := r.Register(fmt.Sprintf("layer%d", i))
		require.NoError(t, err)
	}

	_, err := r.Register("one too many")
	assert.ErrorIs(t, err, ErrTooManyLayers)
}

func TestRegistryConcurrentRegister(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Register(fmt.Sprintf("layer%d", i%4))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Layers(), 4)
}

func TestTrackLayersAreDistinct(t *testing.T) {
	all := []Mask{Wall, Floor, Checkpoint, Powerup}
	var seen Mask
	for _, m := range all {
		require.NotZero(t, m)
		assert.Zero(t, seen&m)
		seen |= m
	}
	assert.Equal(t, []string{tags.ResolvWall, tags.ResolvCheckpoint}, Track.Names(Wall|Checkpoint))
}
