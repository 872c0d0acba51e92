package beandef

import (
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/beankit/beandef/internal/typeutil"
)

// ValueHolder holds a single constructor or factory-method argument: its
// value, an optional declared type name, an optional declared parameter name,
// and a one-way cache for the type-converted value.
//
// ValueHolder deliberately keeps reference identity for set membership (the
// used-holder sets passed during resolution are keyed by pointer), while
// exposing content equality through ContentEquals. Multiple holders carrying
// equal content may therefore coexist in the same registry.
type ValueHolder struct {
	rawValue any
	typeName string
	name     string
	source   any

	mu             sync.Mutex
	converted      bool
	convertedValue any
}

// NewValueHolder creates a holder for the given argument value.
func NewValueHolder(value any) *ValueHolder {
	return &ValueHolder{rawValue: value}
}

// NewTypedValueHolder creates a holder with a declared argument type name.
func NewTypedValueHolder(value any, typeName string) *ValueHolder {
	return &ValueHolder{rawValue: value, typeName: typeName}
}

// NewNamedValueHolder creates a holder with a declared type name and a
// declared parameter name.
func NewNamedValueHolder(value any, typeName, name string) *ValueHolder {
	return &ValueHolder{rawValue: value, typeName: typeName, name: name}
}

// Value returns the argument value.
func (vh *ValueHolder) Value() any { return vh.rawValue }

// SetValue sets the argument value.
func (vh *ValueHolder) SetValue(value any) { vh.rawValue = value }

// TypeName returns the declared type name of the argument, or "" if untyped.
func (vh *ValueHolder) TypeName() string { return vh.typeName }

// SetTypeName sets the declared type name of the argument.
func (vh *ValueHolder) SetTypeName(typeName string) { vh.typeName = typeName }

// Name returns the declared parameter name, or "" if unnamed.
func (vh *ValueHolder) Name() string { return vh.name }

// SetName sets the declared parameter name.
func (vh *ValueHolder) SetName(name string) { vh.name = name }

// Source returns the configuration source marker for this holder.
func (vh *ValueHolder) Source() any { return vh.source }

// SetSource sets the configuration source marker for this holder.
func (vh *ValueHolder) SetSource(source any) { vh.source = source }

// Converted reports whether a converted value has been cached. Once set,
// the flag stays true for the lifetime of the holder.
func (vh *ValueHolder) Converted() bool {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	return vh.converted
}

// SetConvertedValue caches the type-converted value of the argument.
func (vh *ValueHolder) SetConvertedValue(value any) {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	vh.converted = true
	vh.convertedValue = value
}

// ConvertedValue returns the cached type-converted value, or nil if no
// conversion has happened yet.
func (vh *ValueHolder) ConvertedValue() any {
	vh.mu.Lock()
	defer vh.mu.Unlock()
	return vh.convertedValue
}

// ContentEquals reports whether this holder carries the same value and
// declared type as the other. Name and source are deliberately excluded so
// that functionally identical arguments registered from different origins
// deduplicate.
func (vh *ValueHolder) ContentEquals(other *ValueHolder) bool {
	if vh == other {
		return true
	}
	if other == nil {
		return false
	}
	return valuesEqual(vh.rawValue, other.rawValue) && vh.typeName == other.typeName
}

// ContentHash returns a hash of the holder's value and declared type,
// consistent with ContentEquals.
func (vh *ValueHolder) ContentHash() uint64 {
	h := newHasher()
	h.writeValue(vh.rawValue)
	h.writeString(vh.typeName)
	return h.sum
}

// Copy creates an independent holder with the same value, type, name, and
// source. The converted-value cache is not carried over.
func (vh *ValueHolder) Copy() *ValueHolder {
	copied := NewNamedValueHolder(vh.rawValue, vh.typeName, vh.name)
	copied.source = vh.source
	return copied
}

// ConstructorArgumentValues aggregates the constructor or factory-method
// arguments of a bean definition: values bound to a fixed positional index,
// plus generic values matched by type or name at resolution time.
type ConstructorArgumentValues struct {
	indexed map[int]*ValueHolder
	generic []*ValueHolder
}

// NewConstructorArgumentValues creates an empty argument registry.
func NewConstructorArgumentValues() *ConstructorArgumentValues {
	return &ConstructorArgumentValues{indexed: make(map[int]*ValueHolder)}
}

// AddArgumentValues deep-copies every holder from the other registry into
// this one. Indexed entries go through the usual add-or-merge rule; generic
// holders whose content is already present are skipped, which keeps repeated
// inheritance of the same parent registry from stacking values. This is how a
// child definition inherits a parent's argument values before layering its
// own on top.
func (cav *ConstructorArgumentValues) AddArgumentValues(other *ConstructorArgumentValues) error {
	if other == nil {
		return nil
	}
	indices := make([]int, 0, len(other.indexed))
	for index := range other.indexed {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	for _, index := range indices {
		if err := cav.addOrMergeIndexed(index, other.indexed[index].Copy()); err != nil {
			return err
		}
	}
	for _, holder := range other.generic {
		if !cav.containsGenericContent(holder) {
			if err := cav.addOrMergeGeneric(holder.Copy()); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddIndexedValue registers a value for the given index in the constructor
// argument list.
func (cav *ConstructorArgumentValues) AddIndexedValue(index int, value any) error {
	return cav.AddIndexedHolder(index, NewValueHolder(value))
}

// AddIndexedTypedValue registers a value with a declared type name for the
// given index in the constructor argument list.
func (cav *ConstructorArgumentValues) AddIndexedTypedValue(index int, value any, typeName string) error {
	return cav.AddIndexedHolder(index, NewTypedValueHolder(value, typeName))
}

// AddIndexedHolder registers a holder for the given index in the constructor
// argument list. The index must not be negative. When a holder already
// occupies the index and the new value supports merging, the new value is
// merged with the existing one (existing first) before replacing the slot.
func (cav *ConstructorArgumentValues) AddIndexedHolder(index int, holder *ValueHolder) error {
	if index < 0 {
		return PreconditionError{Cause: ErrNegativeIndex}
	}
	if holder == nil {
		return PreconditionError{Cause: ErrValueHolderNil}
	}
	return cav.addOrMergeIndexed(index, holder)
}

func (cav *ConstructorArgumentValues) addOrMergeIndexed(index int, newValue *ValueHolder) error {
	if current, ok := cav.indexed[index]; ok {
		merged, err := mergeIfPossible(newValue.Value(), current.Value())
		if err != nil {
			return err
		}
		newValue.SetValue(merged)
	}
	cav.indexed[index] = newValue
	return nil
}

// HasIndexedValue reports whether an argument value is registered for the
// given index.
func (cav *ConstructorArgumentValues) HasIndexedValue(index int) bool {
	_, ok := cav.indexed[index]
	return ok
}

// IndexedArgumentValue returns the holder at the given index, provided its
// declared type (when present) matches the required type's name and its
// declared name (when present) equals the required name. An untyped, unnamed
// holder always matches. Absence of a match yields nil, not an error.
func (cav *ConstructorArgumentValues) IndexedArgumentValue(index int, requiredType reflect.Type, requiredName string) (*ValueHolder, error) {
	if index < 0 {
		return nil, PreconditionError{Cause: ErrNegativeIndex}
	}
	holder, ok := cav.indexed[index]
	if !ok {
		return nil, nil
	}
	if holder.typeName != "" && !typeutil.MatchesTypeName(requiredType, holder.typeName) {
		return nil, nil
	}
	if holder.name != "" && holder.name != requiredName {
		return nil, nil
	}
	return holder, nil
}

// IndexedValues returns a copy of the indexed argument map.
func (cav *ConstructorArgumentValues) IndexedValues() map[int]*ValueHolder {
	values := make(map[int]*ValueHolder, len(cav.indexed))
	for index, holder := range cav.indexed {
		values[index] = holder
	}
	return values
}

// AddGenericValue registers a value to be matched by type at resolution time.
// A single generic value is consumed once per resolution pass, never matched
// multiple times.
func (cav *ConstructorArgumentValues) AddGenericValue(value any) error {
	return cav.AddGenericHolder(NewValueHolder(value))
}

// AddGenericTypedValue registers a value with a declared type name to be
// matched by type at resolution time.
func (cav *ConstructorArgumentValues) AddGenericTypedValue(value any, typeName string) error {
	return cav.AddGenericHolder(NewTypedValueHolder(value, typeName))
}

// AddGenericHolder registers a generic holder. Re-registering the same holder
// instance is a no-op, so a definition can be re-merged without stacking its
// own values; distinct holders carrying equal content all register, each
// consumable once per resolution pass. When the holder declares a parameter
// name, any existing holder sharing that name is merged into the new value
// and removed before the new holder is appended; unnamed holders are never
// merge-matched.
func (cav *ConstructorArgumentValues) AddGenericHolder(holder *ValueHolder) error {
	if holder == nil {
		return PreconditionError{Cause: ErrValueHolderNil}
	}
	if slices.Contains(cav.generic, holder) {
		return nil
	}
	return cav.addOrMergeGeneric(holder)
}

func (cav *ConstructorArgumentValues) addOrMergeGeneric(newValue *ValueHolder) error {
	if newValue.name != "" {
		remaining := cav.generic[:0]
		for _, current := range cav.generic {
			if current.name == newValue.name {
				merged, err := mergeIfPossible(newValue.Value(), current.Value())
				if err != nil {
					return err
				}
				newValue.SetValue(merged)
				continue
			}
			remaining = append(remaining, current)
		}
		cav.generic = remaining
	}
	cav.generic = append(cav.generic, newValue)
	return nil
}

func (cav *ConstructorArgumentValues) containsGenericContent(holder *ValueHolder) bool {
	for _, existing := range cav.generic {
		if existing.ContentEquals(holder) {
			return true
		}
	}
	return false
}

// GenericArgumentValue scans the generic values in registration order and
// returns the first match, or nil if none matches. Holders present in the
// used set (already consumed in the current resolution pass) are skipped, as
// are holders whose declared name or type conflicts with the requirements.
// A fully untyped, unnamed holder is accepted for a required type only when
// its runtime value is assignable to that type; this fallback lets an
// unannotated generic value satisfy a strongly typed parameter.
func (cav *ConstructorArgumentValues) GenericArgumentValue(requiredType reflect.Type, requiredName string, used map[*ValueHolder]struct{}) *ValueHolder {
	for _, holder := range cav.generic {
		if _, consumed := used[holder]; consumed {
			continue
		}
		if holder.name != "" && (requiredName == "" || holder.name != requiredName) {
			continue
		}
		if holder.typeName != "" && !typeutil.MatchesTypeName(requiredType, holder.typeName) {
			continue
		}
		if requiredType != nil && holder.typeName == "" && holder.name == "" &&
			!typeutil.IsAssignableValue(requiredType, holder.rawValue) {
			continue
		}
		return holder
	}
	return nil
}

// GenericValues returns a copy of the generic argument list in registration
// order.
func (cav *ConstructorArgumentValues) GenericValues() []*ValueHolder {
	values := make([]*ValueHolder, len(cav.generic))
	copy(values, cav.generic)
	return values
}

// ArgumentValue returns the holder for a constructor parameter, trying the
// indexed slot first and falling back to a generic match. The composite order
// is load-bearing: explicit positional arguments always win over generically
// typed ones. Absence of a match yields nil so the caller can fall back to
// another resolution strategy such as autowiring.
func (cav *ConstructorArgumentValues) ArgumentValue(index int, requiredType reflect.Type, requiredName string, used map[*ValueHolder]struct{}) (*ValueHolder, error) {
	holder, err := cav.IndexedArgumentValue(index, requiredType, requiredName)
	if err != nil {
		return nil, err
	}
	if holder == nil {
		holder = cav.GenericArgumentValue(requiredType, requiredName, used)
	}
	return holder, nil
}

// ArgumentCount returns the total number of argument values held, counting
// both indexed and generic values.
func (cav *ConstructorArgumentValues) ArgumentCount() int {
	return len(cav.indexed) + len(cav.generic)
}

// IsEmpty reports whether no argument values are registered.
func (cav *ConstructorArgumentValues) IsEmpty() bool {
	return len(cav.indexed) == 0 && len(cav.generic) == 0
}

// Clear removes all argument values.
func (cav *ConstructorArgumentValues) Clear() {
	cav.indexed = make(map[int]*ValueHolder)
	cav.generic = nil
}

// Copy creates a deep copy of this registry with independent holders.
func (cav *ConstructorArgumentValues) Copy() *ConstructorArgumentValues {
	copied := NewConstructorArgumentValues()
	// AddArgumentValues cannot fail when copying: merge only triggers on
	// same-slot collisions, which an empty target has none of.
	_ = copied.AddArgumentValues(cav)
	return copied
}

// Equals compares two registries by holder content, position by position.
func (cav *ConstructorArgumentValues) Equals(other *ConstructorArgumentValues) bool {
	if cav == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(cav.generic) != len(other.generic) || len(cav.indexed) != len(other.indexed) {
		return false
	}
	for i, holder := range cav.generic {
		if !holder.ContentEquals(other.generic[i]) {
			return false
		}
	}
	for index, holder := range cav.indexed {
		otherHolder, ok := other.indexed[index]
		if !ok || !holder.ContentEquals(otherHolder) {
			return false
		}
	}
	return true
}

// ContentHash returns a hash consistent with Equals.
func (cav *ConstructorArgumentValues) ContentHash() uint64 {
	h := newHasher()
	for _, holder := range cav.generic {
		h.writeUint(holder.ContentHash())
	}
	h.writeUint(29)
	indices := make([]int, 0, len(cav.indexed))
	for index := range cav.indexed {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	for _, index := range indices {
		h.writeUint(uint64(index))
		h.writeUint(cav.indexed[index].ContentHash())
	}
	return h.sum
}
