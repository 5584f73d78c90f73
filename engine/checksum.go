package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum hashes the live world state: slot generations, tag masks and every component table
// Two worlds driven through the same ticks with the same inputs produce the same checksum
func (w *World) Checksum() uint64 {
	d := xxhash.New()

	var buf [16]byte
	for slot, m := range w.slots {
		if !m.alive {
			continue
		}
		binary.LittleEndian.PutUint32(buf[0:4], uint32(slot))
		binary.LittleEndian.PutUint32(buf[4:8], m.gen)
		binary.LittleEndian.PutUint64(buf[8:16], uint64(w.tags[slot]))
		_, _ = d.Write(buf[:])
	}

	for _, s := range w.stores.ordered {
		s.writeState(d)
	}
	return d.Sum64()
}
