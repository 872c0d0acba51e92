package beandef

import (
	"encoding/json"
	"fmt"
)

// DependencyCheck specifies which kinds of bean properties the container
// verifies as populated after wiring.
type DependencyCheck int

const (
	// DependencyCheckNone performs no dependency checking.
	DependencyCheckNone DependencyCheck = iota

	// DependencyCheckObjects checks object references only.
	DependencyCheckObjects

	// DependencyCheckSimple checks simple (primitive and string) properties only.
	DependencyCheckSimple

	// DependencyCheckAll checks both object references and simple properties.
	DependencyCheckAll
)

// String returns the string representation of the DependencyCheck policy.
func (dc DependencyCheck) String() string {
	switch dc {
	case DependencyCheckNone:
		return "none"
	case DependencyCheckObjects:
		return "objects"
	case DependencyCheckSimple:
		return "simple"
	case DependencyCheckAll:
		return "all"
	default:
		return fmt.Sprintf("Unknown(%d)", int(dc))
	}
}

// IsValid checks if the dependency check policy is valid.
func (dc DependencyCheck) IsValid() bool {
	return dc >= DependencyCheckNone && dc <= DependencyCheckAll
}

// MarshalText implements encoding.TextMarshaler.
func (dc DependencyCheck) MarshalText() ([]byte, error) {
	return []byte(dc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dc *DependencyCheck) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*dc = DependencyCheckNone
	case "objects":
		*dc = DependencyCheckObjects
	case "simple":
		*dc = DependencyCheckSimple
	case "all":
		*dc = DependencyCheckAll
	default:
		return fmt.Errorf("invalid dependency check policy: %q", string(text))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (dc DependencyCheck) MarshalJSON() ([]byte, error) {
	return json.Marshal(dc.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (dc *DependencyCheck) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return dc.UnmarshalText([]byte(s))
}

// Role classifies a bean definition's significance to application code, so
// tooling can distinguish user beans from supporting infrastructure.
type Role int

const (
	// RoleApplication marks a definition that is a major part of the application.
	RoleApplication Role = iota

	// RoleSupport marks a definition that supports a larger configuration unit.
	RoleSupport

	// RoleInfrastructure marks a definition registered entirely for internal use.
	RoleInfrastructure
)

// String returns the string representation of the Role.
func (r Role) String() string {
	switch r {
	case RoleApplication:
		return "application"
	case RoleSupport:
		return "support"
	case RoleInfrastructure:
		return "infrastructure"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// IsValid checks if the role is valid.
func (r Role) IsValid() bool {
	return r >= RoleApplication && r <= RoleInfrastructure
}
