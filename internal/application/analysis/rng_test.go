package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsRandSeededStreamsMatch(t *testing.T) {
	a := WithSeed(42).Rand()
	b := WithSeed(42).Rand()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestOptionsRandUnseededSourcesAreIndependent(t *testing.T) {
	a := Options{}.Rand()
	b := Options{}.Rand()
	require.NotSame(t, a, b)

	// Each source must be usable on its own.
	for i := 0; i < 5; i++ {
		j := jitter(a)
		assert.GreaterOrEqual(t, j, -2)
		assert.LessOrEqual(t, j, 2)
		j = jitter(b)
		assert.GreaterOrEqual(t, j, -2)
		assert.LessOrEqual(t, j, 2)
	}
}
