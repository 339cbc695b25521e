package memtable

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestMemTable(t *testing.T) {
	m := New(512*1024, time.Hour)

	m.SetNum([]byte("key01"), 11)
	m.SetNum([]byte("key02"), 12)

	n, ok := m.GetNum([]byte("key01"))
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(11), n)

	n, ok = m.GetNum([]byte("key02"))
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(12), n)

	n, ok = m.GetNum([]byte("key03"))
	assert.Equal(t, false, ok)
	assert.Equal(t, uint64(0), n)

	_ = m.cache.Set([]byte("key04"), []byte("aa"), 0)
	n, ok = m.GetNum([]byte("key04"))
	assert.Equal(t, false, ok)
	assert.Equal(t, uint64(0), n)
}

func TestMemTable__Next_Due(t *testing.T) {
	m := New(512*1024, time.Hour)

	_, ok := m.GetNextDue(1)
	assert.Equal(t, false, ok)

	due := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	m.SetNextDue(1, due)

	result, ok := m.GetNextDue(1)
	assert.Equal(t, true, ok)
	assert.Equal(t, due, result)

	_, ok = m.GetNextDue(2)
	assert.Equal(t, false, ok)

	m.Invalidate(1)
	_, ok = m.GetNextDue(1)
	assert.Equal(t, false, ok)
}
