package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHashID(t *testing.T) {
	assert.Equal(t, HashID(12), HashID(12))
	assert.NotEqual(t, HashID(1), HashID(2))
}

func TestShard(t *testing.T) {
	assert.Equal(t, 0, Shard(100, 1))
	assert.Equal(t, 0, Shard(100, 0))

	counts := make([]int, 4)
	for id := int64(1); id <= 1000; id++ {
		s := Shard(id, 4)
		assert.Equal(t, s, Shard(id, 4))
		counts[s]++
	}
	for _, c := range counts {
		assert.Greater(t, c, 150)
	}
}
