package beandef

import "reflect"

var (
	_ Mergeable = (*ManagedList)(nil)
	_ Mergeable = (*ManagedSet)(nil)
	_ Mergeable = (*ManagedMap)(nil)
)

// ManagedList is a list value managed by the container, carrying merge
// support and a definition source marker.
type ManagedList struct {
	values       []any
	mergeEnabled bool
	source       any
}

// NewManagedList creates a managed list holding the given values.
func NewManagedList(values ...any) *ManagedList {
	return &ManagedList{values: values}
}

// Add appends a value to the list.
func (l *ManagedList) Add(value any) { l.values = append(l.values, value) }

// Values returns the list content in registration order.
func (l *ManagedList) Values() []any { return l.values }

// Len returns the number of values in the list.
func (l *ManagedList) Len() int { return len(l.values) }

// SetMergeEnabled enables or disables merging for this list.
func (l *ManagedList) SetMergeEnabled(enabled bool) { l.mergeEnabled = enabled }

func (l *ManagedList) MergeEnabled() bool { return l.mergeEnabled }

// Source returns the configuration source marker for this list.
func (l *ManagedList) Source() any { return l.source }

// SetSource sets the configuration source marker for this list.
func (l *ManagedList) SetSource(source any) { l.source = source }

// Merge returns a new managed list holding the parent's values followed by
// this list's own values. A nil parent yields the list itself.
func (l *ManagedList) Merge(parent any) (any, error) {
	if !l.mergeEnabled {
		return nil, IllegalStateError{Msg: "merge not enabled for this managed list"}
	}
	if parent == nil {
		return l, nil
	}
	parentList, ok := parent.(*ManagedList)
	if !ok {
		return nil, IncompatibleMergeError{Expected: reflect.TypeOf(l), Actual: parent}
	}
	merged := NewManagedList()
	merged.mergeEnabled = l.mergeEnabled
	merged.source = l.source
	merged.values = append(merged.values, parentList.values...)
	merged.values = append(merged.values, l.values...)
	return merged, nil
}

// ManagedSet is a set value managed by the container. Insertion order is
// preserved; duplicate content is suppressed on add and on merge.
type ManagedSet struct {
	values       []any
	mergeEnabled bool
	source       any
}

// NewManagedSet creates a managed set holding the given values.
func NewManagedSet(values ...any) *ManagedSet {
	s := &ManagedSet{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value unless equal content is already present.
func (s *ManagedSet) Add(value any) {
	if !s.Contains(value) {
		s.values = append(s.values, value)
	}
}

// Contains reports whether equal content is already present.
func (s *ManagedSet) Contains(value any) bool {
	for _, existing := range s.values {
		if valuesEqual(existing, value) {
			return true
		}
	}
	return false
}

// Values returns the set content in insertion order.
func (s *ManagedSet) Values() []any { return s.values }

// Len returns the number of values in the set.
func (s *ManagedSet) Len() int { return len(s.values) }

// SetMergeEnabled enables or disables merging for this set.
func (s *ManagedSet) SetMergeEnabled(enabled bool) { s.mergeEnabled = enabled }

func (s *ManagedSet) MergeEnabled() bool { return s.mergeEnabled }

// Source returns the configuration source marker for this set.
func (s *ManagedSet) Source() any { return s.source }

// SetSource sets the configuration source marker for this set.
func (s *ManagedSet) SetSource(source any) { s.source = source }

// Merge returns a new managed set holding the parent's values followed by
// this set's own values, with duplicate content suppressed.
func (s *ManagedSet) Merge(parent any) (any, error) {
	if !s.mergeEnabled {
		return nil, IllegalStateError{Msg: "merge not enabled for this managed set"}
	}
	if parent == nil {
		return s, nil
	}
	parentSet, ok := parent.(*ManagedSet)
	if !ok {
		return nil, IncompatibleMergeError{Expected: reflect.TypeOf(s), Actual: parent}
	}
	merged := NewManagedSet()
	merged.mergeEnabled = s.mergeEnabled
	merged.source = s.source
	for _, v := range parentSet.values {
		merged.Add(v)
	}
	for _, v := range s.values {
		merged.Add(v)
	}
	return merged, nil
}

// ManagedMap is a map value managed by the container. Keys must be
// comparable. Key order is preserved for deterministic iteration.
type ManagedMap struct {
	keys         []any
	entries      map[any]any
	mergeEnabled bool
	source       any
}

// NewManagedMap creates an empty managed map.
func NewManagedMap() *ManagedMap {
	return &ManagedMap{entries: make(map[any]any)}
}

// Put sets the value for a key, preserving first-insertion key order.
func (m *ManagedMap) Put(key, value any) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// Get returns the value for a key and whether the key is present.
func (m *ManagedMap) Get(key any) (any, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the map's keys in first-insertion order.
func (m *ManagedMap) Keys() []any { return m.keys }

// Len returns the number of entries in the map.
func (m *ManagedMap) Len() int { return len(m.entries) }

// SetMergeEnabled enables or disables merging for this map.
func (m *ManagedMap) SetMergeEnabled(enabled bool) { m.mergeEnabled = enabled }

func (m *ManagedMap) MergeEnabled() bool { return m.mergeEnabled }

// Source returns the configuration source marker for this map.
func (m *ManagedMap) Source() any { return m.source }

// SetSource sets the configuration source marker for this map.
func (m *ManagedMap) SetSource(source any) { m.source = source }

// Merge returns a new managed map holding the parent's entries overlaid with
// this map's own entries.
func (m *ManagedMap) Merge(parent any) (any, error) {
	if !m.mergeEnabled {
		return nil, IllegalStateError{Msg: "merge not enabled for this managed map"}
	}
	if parent == nil {
		return m, nil
	}
	parentMap, ok := parent.(*ManagedMap)
	if !ok {
		return nil, IncompatibleMergeError{Expected: reflect.TypeOf(m), Actual: parent}
	}
	merged := NewManagedMap()
	merged.mergeEnabled = m.mergeEnabled
	merged.source = m.source
	for _, k := range parentMap.keys {
		merged.Put(k, parentMap.entries[k])
	}
	for _, k := range m.keys {
		merged.Put(k, m.entries[k])
	}
	return merged, nil
}
