package core

// Tag is a payload-free marker stored as one bit in a per-entity mask
type Tag uint8

// MaxTags is the number of distinct tags a TagMask can hold
const MaxTags = 64

// TagMask is the set of tags attached to one entity
type TagMask uint64

// Has reports whether t is set
func (m TagMask) Has(t Tag) bool {
	return m&(1<<t) != 0
}

// With returns m with t set
func (m TagMask) With(t Tag) TagMask {
	return m | 1<<t
}

// Without returns m with t cleared
func (m TagMask) Without(t Tag) TagMask {
	return m &^ (1 << t)
}
