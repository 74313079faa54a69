package id_generator

import (
	"go-hailstorm/internal/errs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonyflakeGenerator(t *testing.T) {
	t.Parallel()
	g, err := NewSonyflakeGenerator(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), g.NodeID())

	var prev uint64
	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		require.NoError(t, err)
		require.Greater(t, id, prev)
		prev = id
	}

	parts := g.Decompose(prev)
	assert.Equal(t, int64(7), parts.NodeID)
	assert.WithinDuration(t, time.Now(), parts.Time, time.Minute)
}

func TestSonyflakeGenerator_InvalidNodeID(t *testing.T) {
	t.Parallel()
	_, err := NewSonyflakeGenerator(MaxNodeID + 1)
	assert.ErrorIs(t, err, errs.ErrInvalidConfiguration)
}
