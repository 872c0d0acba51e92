package beandef

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// valuesEqual compares two configured values for content equality.
// reflect.DeepEqual is used throughout because configured values may be
// slices, maps, or nested definitions that are not comparable with ==.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

// hasher accumulates content hashes. Equal content must produce equal hashes;
// the converse is not guaranteed.
type hasher struct {
	sum uint64
}

func newHasher() *hasher {
	return &hasher{sum: 7}
}

func (h *hasher) writeString(s string) {
	f := fnv.New64a()
	f.Write([]byte(s))
	h.sum = h.sum*31 + f.Sum64()
}

func (h *hasher) writeValue(v any) {
	if v == nil {
		h.sum = h.sum * 31
		return
	}
	// fmt prints maps in sorted key order, so DeepEqual-equal values format
	// identically.
	h.writeString(fmt.Sprintf("%v", v))
}

func (h *hasher) writeUint(v uint64) {
	h.sum = h.sum*31 + v
}
