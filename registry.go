package beandef

import (
	"errors"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GeneratedBeanNameSeparator separates a generated bean name's base from its
// uniqueness suffix.
const GeneratedBeanNameSeparator = "#"

// BeanDefinitionRegistry is the registration surface for bean definitions
// and their aliases. It deals purely in definition metadata; instantiating
// beans from the registered definitions is a separate concern.
type BeanDefinitionRegistry interface {
	// RegisterBeanDefinition registers a definition under the given name,
	// validating it first.
	RegisterBeanDefinition(name string, definition BeanDefinition) error

	// RemoveBeanDefinition removes the definition registered under the name.
	RemoveBeanDefinition(name string) error

	// BeanDefinition returns the definition registered under the name.
	BeanDefinition(name string) (BeanDefinition, error)

	// ContainsBeanDefinition reports whether a definition is registered
	// under the name.
	ContainsBeanDefinition(name string) bool

	// BeanDefinitionNames returns all registered names in registration order.
	BeanDefinitionNames() []string

	// BeanDefinitionCount returns the number of registered definitions.
	BeanDefinitionCount() int

	// IsBeanNameInUse reports whether the name is taken by a definition or
	// an alias.
	IsBeanNameInUse(name string) bool

	// RegisterAlias registers an alias for the given canonical name.
	RegisterAlias(name, alias string) error

	// RemoveAlias removes the given alias.
	RemoveAlias(alias string) error

	// IsAlias reports whether the name is registered as an alias.
	IsAlias(name string) bool

	// Aliases returns all aliases registered for the given name.
	Aliases(name string) []string

	// CanonicalName resolves an alias chain to the underlying bean name.
	CanonicalName(name string) string
}

// RegistryOption configures a SimpleBeanDefinitionRegistry.
type RegistryOption interface {
	applyRegistryOption(*SimpleBeanDefinitionRegistry)
}

type registryOptionFunc func(*SimpleBeanDefinitionRegistry)

func (f registryOptionFunc) applyRegistryOption(r *SimpleBeanDefinitionRegistry) { f(r) }

// WithLogger sets the logger the registry reports registrations to.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) RegistryOption {
	return registryOptionFunc(func(r *SimpleBeanDefinitionRegistry) {
		if logger != nil {
			r.logger = logger
		}
	})
}

// WithOverridingAllowed sets whether re-registering an already used name
// replaces the previous definition. Defaults to true.
func WithOverridingAllowed(allowed bool) RegistryOption {
	return registryOptionFunc(func(r *SimpleBeanDefinitionRegistry) {
		r.allowOverriding = allowed
	})
}

// SimpleBeanDefinitionRegistry is a plain in-memory BeanDefinitionRegistry,
// safe for concurrent use. It holds definition metadata only and never
// instantiates anything.
type SimpleBeanDefinitionRegistry struct {
	mu              sync.RWMutex
	definitions     map[string]BeanDefinition
	names           []string
	aliases         map[string]string
	nameCounters    map[string]int
	allowOverriding bool
	logger          *zap.Logger
}

var _ BeanDefinitionRegistry = (*SimpleBeanDefinitionRegistry)(nil)

// NewSimpleBeanDefinitionRegistry creates an empty registry.
func NewSimpleBeanDefinitionRegistry(opts ...RegistryOption) *SimpleBeanDefinitionRegistry {
	r := &SimpleBeanDefinitionRegistry{
		definitions:     make(map[string]BeanDefinition),
		aliases:         make(map[string]string),
		nameCounters:    make(map[string]int),
		allowOverriding: true,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt.applyRegistryOption(r)
	}
	return r
}

// RegisterBeanDefinition validates and registers a definition under the
// given name. Re-registering a used name replaces the previous definition
// when overriding is allowed, otherwise it fails with a
// DuplicateDefinitionError.
func (r *SimpleBeanDefinitionRegistry) RegisterBeanDefinition(name string, definition BeanDefinition) error {
	if name == "" {
		return PreconditionError{Cause: ErrBeanNameEmpty}
	}
	if definition == nil {
		return PreconditionError{Cause: ErrDefinitionNil}
	}
	if err := definition.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.definitions[name]
	if exists && !r.allowOverriding {
		return DuplicateDefinitionError{Name: name}
	}
	r.definitions[name] = definition
	if !exists {
		r.names = append(r.names, name)
	}

	if exists {
		r.logger.Debug("overrode bean definition",
			zap.String("beanName", name),
			zap.String("previous", existing.String()),
			zap.String("replacement", definition.String()))
	} else {
		r.logger.Debug("registered bean definition",
			zap.String("beanName", name),
			zap.String("definition", definition.String()))
	}
	return nil
}

// RemoveBeanDefinition removes the definition registered under the name.
func (r *SimpleBeanDefinitionRegistry) RemoveBeanDefinition(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.definitions[name]; !ok {
		return NoSuchDefinitionError{Name: name}
	}
	delete(r.definitions, name)
	for i, registered := range r.names {
		if registered == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	r.logger.Debug("removed bean definition", zap.String("beanName", name))
	return nil
}

// BeanDefinition returns the definition registered under the name, resolving
// aliases first.
func (r *SimpleBeanDefinitionRegistry) BeanDefinition(name string) (BeanDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical := r.canonicalNameLocked(name)
	definition, ok := r.definitions[canonical]
	if !ok {
		return nil, NoSuchDefinitionError{Name: name}
	}
	return definition, nil
}

// ContainsBeanDefinition reports whether a definition is registered under
// the name, resolving aliases first.
func (r *SimpleBeanDefinitionRegistry) ContainsBeanDefinition(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.definitions[r.canonicalNameLocked(name)]
	return ok
}

// BeanDefinitionNames returns all registered names in registration order.
func (r *SimpleBeanDefinitionRegistry) BeanDefinitionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// BeanDefinitionCount returns the number of registered definitions.
func (r *SimpleBeanDefinitionRegistry) BeanDefinitionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}

// IsBeanNameInUse reports whether the name is taken by a definition or an
// alias.
func (r *SimpleBeanDefinitionRegistry) IsBeanNameInUse(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.definitions[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// RegisterAlias registers an alias for the given canonical name. An alias
// equal to the name itself just clears any previous alias registration.
// Circular alias chains are rejected.
func (r *SimpleBeanDefinitionRegistry) RegisterAlias(name, alias string) error {
	if name == "" {
		return PreconditionError{Cause: ErrBeanNameEmpty}
	}
	if alias == "" {
		return PreconditionError{Cause: ErrAliasEmpty}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if alias == name {
		delete(r.aliases, alias)
		return nil
	}
	if registered, ok := r.aliases[alias]; ok {
		if registered == name {
			return nil
		}
		if !r.allowOverriding {
			return AliasError{
				Name:  name,
				Alias: alias,
				Cause: errors.New("alias already registered for name \"" + registered + "\""),
			}
		}
	}
	if r.hasAliasLocked(alias, name) {
		return AliasError{
			Name:  name,
			Alias: alias,
			Cause: errors.New("circular alias chain"),
		}
	}
	r.aliases[alias] = name
	r.logger.Debug("registered alias",
		zap.String("alias", alias),
		zap.String("beanName", name))
	return nil
}

// hasAliasLocked reports whether name is reachable from alias through the
// registered alias chain, which would make the new registration circular.
func (r *SimpleBeanDefinitionRegistry) hasAliasLocked(name, alias string) bool {
	for registered, canonical := range r.aliases {
		if canonical == name {
			if registered == alias {
				return true
			}
			if r.hasAliasLocked(registered, alias) {
				return true
			}
		}
	}
	return false
}

// RemoveAlias removes the given alias.
func (r *SimpleBeanDefinitionRegistry) RemoveAlias(alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.aliases[alias]; !ok {
		return AliasError{Alias: alias, Cause: errors.New("no such alias")}
	}
	delete(r.aliases, alias)
	return nil
}

// IsAlias reports whether the name is registered as an alias.
func (r *SimpleBeanDefinitionRegistry) IsAlias(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.aliases[name]
	return ok
}

// Aliases returns all aliases that resolve to the given name, directly or
// through a chain.
func (r *SimpleBeanDefinitionRegistry) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []string
	r.collectAliasesLocked(name, &result)
	return result
}

func (r *SimpleBeanDefinitionRegistry) collectAliasesLocked(name string, result *[]string) {
	for alias, canonical := range r.aliases {
		if canonical == name {
			*result = append(*result, alias)
			r.collectAliasesLocked(alias, result)
		}
	}
}

// CanonicalName resolves an alias chain to the underlying bean name.
func (r *SimpleBeanDefinitionRegistry) CanonicalName(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.canonicalNameLocked(name)
}

func (r *SimpleBeanDefinitionRegistry) canonicalNameLocked(name string) string {
	canonical := name
	for {
		resolved, ok := r.aliases[canonical]
		if !ok {
			return canonical
		}
		canonical = resolved
	}
}

// RegisterWithGeneratedName generates a unique name for the definition,
// registers it, and returns the name.
func (r *SimpleBeanDefinitionRegistry) RegisterWithGeneratedName(definition BeanDefinition) (string, error) {
	name, err := r.GenerateBeanName(definition)
	if err != nil {
		return "", err
	}
	if err := r.RegisterBeanDefinition(name, definition); err != nil {
		return "", err
	}
	return name, nil
}

// GenerateBeanName derives a unique name for an unnamed definition from its
// class name, falling back to the parent name or factory bean name. A
// numeric suffix is appended until the name is unused.
func (r *SimpleBeanDefinitionRegistry) GenerateBeanName(definition BeanDefinition) (string, error) {
	if definition == nil {
		return "", PreconditionError{Cause: ErrDefinitionNil}
	}
	base, err := beanNameBase(definition)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		r.nameCounters[base]++
		candidate := base + GeneratedBeanNameSeparator + strconv.Itoa(r.nameCounters[base])
		if _, inUse := r.definitions[candidate]; inUse {
			continue
		}
		if _, inUse := r.aliases[candidate]; inUse {
			continue
		}
		return candidate, nil
	}
}

// GenerateInnerBeanName derives a name for a nested definition. Inner beans
// are never looked up by name, so a random suffix suffices and avoids any
// coordination with the outer name space.
func GenerateInnerBeanName(definition BeanDefinition) (string, error) {
	if definition == nil {
		return "", PreconditionError{Cause: ErrDefinitionNil}
	}
	base, err := beanNameBase(definition)
	if err != nil {
		return "", err
	}
	return base + GeneratedBeanNameSeparator + uuid.NewString(), nil
}

func beanNameBase(definition BeanDefinition) (string, error) {
	if className := definition.ClassName(); className != "" {
		return className, nil
	}
	if parentName := definition.ParentName(); parentName != "" {
		return parentName + "$child", nil
	}
	if factoryBeanName := definition.FactoryBeanName(); factoryBeanName != "" {
		return factoryBeanName + "$created", nil
	}
	return "", ValidationError{
		Cause: errors.New("unnamed bean definition specifies neither a class name nor a parent nor a factory bean name"),
	}
}
