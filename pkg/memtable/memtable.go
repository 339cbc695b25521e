package memtable

import (
	"encoding/binary"
	"github.com/coocood/freecache"
	"strconv"
	"time"
)

// MemTable remembers, per campaign, the earliest time the orchestrator has work to do
type MemTable struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// New creates freecache with size, entries expire after ttl
func New(size int, ttl time.Duration) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
		ttl:   ttl,
	}
}

func campaignKey(campaignID int64) []byte {
	return strconv.AppendInt([]byte("due:"), campaignID, 10)
}

// GetNum ...
func (m *MemTable) GetNum(key []byte) (num uint64, ok bool) {
	data, err := m.cache.Get(key)
	if err != nil {
		return 0, false
	}
	if len(data) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data), true
}

// SetNum ...
func (m *MemTable) SetNum(key []byte, num uint64) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], num)
	_ = m.cache.Set(key, data[:], int(m.ttl/time.Second))
}

// GetNextDue returns ok = false when nothing is known about the campaign
func (m *MemTable) GetNextDue(campaignID int64) (time.Time, bool) {
	num, ok := m.GetNum(campaignKey(campaignID))
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(num), 0).UTC(), true
}

// SetNextDue ...
func (m *MemTable) SetNextDue(campaignID int64, due time.Time) {
	m.SetNum(campaignKey(campaignID), uint64(due.Unix()))
}

// Invalidate forces the next orchestrator run to look at the campaign
func (m *MemTable) Invalidate(campaignID int64) {
	m.cache.Del(campaignKey(campaignID))
}
