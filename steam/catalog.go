package steam

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/x"
)

// Value is one named member of an enum.
type Value struct {
	Name   string
	Number int64
}

func (v Value) String() string { return v.Name + " = " + strconv.FormatInt(v.Number, 10) }

// Enum describes a registered enumeration.
type Enum struct {
	Type   *x.Type
	values []Value
}

// Name returns the enum type name.
func (e *Enum) Name() string { return e.Type.Name }

// Values returns members ordered by number.
func (e *Enum) Values() []Value { return append([]Value{}, e.values...) }

// Match resolves query against the enum.  A number or a case-insensitive
// name match yields exactly one value; otherwise every member whose name
// contains query (ignoring case) is returned, ordered by name.
func (e *Enum) Match(query string) []Value {
	if number, err := strconv.ParseInt(query, 10, 64); err == nil {
		for _, v := range e.values {
			if v.Number == number {
				return []Value{v}
			}
		}
		return []Value{{Name: query, Number: number}}
	}
	for _, v := range e.values {
		if strings.EqualFold(v.Name, query) {
			return []Value{v}
		}
	}
	lower := strings.ToLower(query)
	var out []Value
	for _, v := range e.values {
		if strings.Contains(strings.ToLower(v.Name), lower) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Catalog holds the enums the inspector knows about.  Enum types live in a
// viant/x registry; index maps lower-cased type names to registry keys.
type Catalog struct {
	registry *x.Registry
	index    map[string]string
	values   map[string][]Value
}

// Find returns the enum with the given name, ignoring case, or nil.
func (c *Catalog) Find(name string) *Enum {
	key, ok := c.index[strings.ToLower(name)]
	if !ok {
		return nil
	}
	aType := c.registry.Lookup(key)
	if aType == nil {
		return nil
	}
	return &Enum{Type: aType, values: c.values[key]}
}

// Names returns enum names sorted alphabetically.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.index))
	for _, key := range c.index {
		if aType := c.registry.Lookup(key); aType != nil {
			out = append(out, aType.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Registry returns the type registry backing the catalog.
func (c *Catalog) Registry() *x.Registry { return c.registry }

func register[T ~int32](c *Catalog, names map[T]string) {
	aType := x.NewType(reflect.TypeOf(*new(T)))
	c.registry.Register(aType)
	values := make([]Value, 0, len(names))
	for number, name := range names {
		values = append(values, Value{Name: name, Number: int64(number)})
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Number < values[j].Number })
	key := aType.Key()
	c.index[strings.ToLower(aType.Name)] = key
	c.values[key] = values
}

// NewCatalog returns the catalog of salient Steam enums.
func NewCatalog() *Catalog {
	c := &Catalog{registry: x.NewRegistry(), index: map[string]string{}, values: map[string][]Value{}}
	register(c, eAccountFlagsNames)
	register(c, eAccountTypeNames)
	register(c, eAppTypeNames)
	register(c, eClanPermissionNames)
	register(c, eClanRankNames)
	register(c, eCurrencyCodeNames)
	register(c, eOSTypeNames)
	register(c, ePaymentMethodNames)
	register(c, ePersonaStateNames)
	register(c, ePersonaStateFlagNames)
	register(c, eResultNames)
	register(c, eUniverseNames)
	return c
}
