package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		rank int64
		want float64
	}{
		{rank: -1, want: 100.0},
		{rank: 0, want: 100.0}, // unranked reads as 100, callers must treat it as "not in queue"
		{rank: 1, want: 100.0},
		{rank: 2, want: 50.0},
		{rank: 4, want: 25.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, CalculateProgress(tt.rank), 1e-9, "rank %d", tt.rank)
	}
}

func TestQueueStatus_FrontAndBack(t *testing.T) {
	s := NewQueueStatus(3, 10)
	assert.Equal(t, int64(2), s.QueueFront())
	assert.Equal(t, int64(7), s.QueueBack())

	unranked := NewQueueStatus(0, 4)
	assert.Equal(t, int64(0), unranked.QueueFront())
	assert.Equal(t, int64(4), unranked.QueueBack())
	assert.Equal(t, 100.0, unranked.Progress)
}
