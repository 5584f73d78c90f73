package engine

import "math/bits"

// bitset is a growable liveness mask indexed by entity slot
type bitset struct {
	words []uint64
}

func (b *bitset) set(i uint32) {
	w := int(i >> 6)
	if w >= len(b.words) {
		b.words = append(b.words, make([]uint64, w-len(b.words)+1)...)
	}
	b.words[w] |= 1 << (i & 63)
}

func (b *bitset) clear(i uint32) {
	w := int(i >> 6)
	if w < len(b.words) {
		b.words[w] &^= 1 << (i & 63)
	}
}

func (b *bitset) test(i uint32) bool {
	w := int(i >> 6)
	return w < len(b.words) && b.words[w]&(1<<(i&63)) != 0
}

func (b *bitset) reset() {
	clear(b.words)
}

// each calls fn for every set bit in ascending order until fn returns false
func (b *bitset) each(fn func(uint32) bool) bool {
	for w, word := range b.words {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			if !fn(uint32(w<<6 | tz)) {
				return false
			}
			word &= word - 1
		}
	}
	return true
}
