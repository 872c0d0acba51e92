package beandef

// Mergeable is implemented by configured values whose content can be merged
// with that of a matching value inherited from a parent definition, such as
// managed lists and maps. The argument and property registries invoke this
// contract polymorphically when the same slot is registered twice.
type Mergeable interface {
	// MergeEnabled reports whether merging is enabled for this value.
	MergeEnabled() bool

	// Merge combines the current value with the given parent value, the
	// parent's entries first. The supplied value is the less specific one;
	// the receiver's own content takes precedence where entries collide.
	Merge(parent any) (any, error)
}

// mergeIfPossible applies the Mergeable contract: when the new value declares
// merge support and merging is enabled, the result combines the current value
// with the new one (parent-then-new order). Otherwise the new value is
// returned unchanged.
func mergeIfPossible(newValue, currentValue any) (any, error) {
	mergeable, ok := newValue.(Mergeable)
	if !ok || !mergeable.MergeEnabled() {
		return newValue, nil
	}
	return mergeable.Merge(currentValue)
}
