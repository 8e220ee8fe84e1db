package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQuota_WithinLimit(t *testing.T) {
	q := newEventQuota(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Check())
	}
	assert.Equal(t, 3, q.Current())
}

func TestEventQuota_Exceeded(t *testing.T) {
	q := newEventQuota(2)
	require.NoError(t, q.Check())
	require.NoError(t, q.Check())

	err := q.Check()
	require.Error(t, err)
	assert.True(t, IsEventLimitError(err))
	assert.Equal(t, "recording exceeded event limit: 3 events > 2 limit", err.Error())

	wrapped := fmt.Errorf("analyze: %w", err)
	assert.True(t, IsEventLimitError(wrapped))
}

func TestEventQuota_Disabled(t *testing.T) {
	q := newEventQuota(0)
	for i := 0; i < 100; i++ {
		require.NoError(t, q.Check())
	}
}
