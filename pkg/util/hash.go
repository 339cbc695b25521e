package util

import (
	"encoding/binary"
	"github.com/twmb/murmur3"
)

// HashID hashes the little endian bytes of id
func HashID(id int64) uint32 {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], uint64(id))
	return murmur3.Sum32(data[:])
}

// Shard returns the shard in [0, numShards) owning id
func Shard(id int64, numShards int) int {
	if numShards <= 1 {
		return 0
	}
	return int(HashID(id) % uint32(numShards))
}
