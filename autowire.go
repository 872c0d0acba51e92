package beandef

import (
	"encoding/json"
	"fmt"
)

// AutowireMode specifies how a bean definition's dependencies are wired when
// the container does not receive explicit argument or property values.
type AutowireMode int

const (
	// AutowireNo disables autowiring; all values must be configured explicitly.
	AutowireNo AutowireMode = iota

	// AutowireByName injects properties matched by property name.
	AutowireByName

	// AutowireByType injects properties matched by property type.
	AutowireByType

	// AutowireConstructor resolves the constructor whose parameters can be
	// satisfied and injects through it.
	AutowireConstructor

	// AutowireAutodetect chooses between constructor and by-type autowiring
	// at resolution time. It is never stored resolved: a definition keeps the
	// autodetect marker and resolves it on each query.
	AutowireAutodetect
)

// String returns the string representation of the AutowireMode.
func (m AutowireMode) String() string {
	switch m {
	case AutowireNo:
		return "no"
	case AutowireByName:
		return "byName"
	case AutowireByType:
		return "byType"
	case AutowireConstructor:
		return "constructor"
	case AutowireAutodetect:
		return "autodetect"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// IsValid checks if the autowire mode is valid.
func (m AutowireMode) IsValid() bool {
	return m >= AutowireNo && m <= AutowireAutodetect
}

// MarshalText implements encoding.TextMarshaler.
func (m AutowireMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *AutowireMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "no":
		*m = AutowireNo
	case "byName":
		*m = AutowireByName
	case "byType":
		*m = AutowireByType
	case "constructor":
		*m = AutowireConstructor
	case "autodetect":
		*m = AutowireAutodetect
	default:
		return fmt.Errorf("invalid autowire mode: %q", string(text))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m AutowireMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *AutowireMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}
