package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Attr is a single key/value attribute of a Component. Values are
// normalized at construction: every numeric kind becomes float64, bools
// and strings pass through, anything else is rendered with fmt.Sprint.
type Attr struct {
	Key   string
	Value any
}

// Component is an immutable, ordered attribute bag classifying an
// interval: lithology, colour, grain size, whatever the log records.
// The zero value is the null Component (no attributes), used where an
// interval carries no classification.
//
// Equality is structural: attributes with empty values are ignored, keys
// are case-folded, and string values compare case-insensitively. Key()
// returns a canonical identity string consistent with Equal, so
// Components can key maps (e.g. Markov state tracking) without being
// comparable themselves.
type Component struct {
	keys  []string
	attrs map[string]any
}

// NewComponent builds a Component from attributes, preserving their
// order. Attributes with empty keys or empty values are dropped.
func NewComponent(attrs ...Attr) Component {
	c := Component{}
	for _, a := range attrs {
		c = c.with(a.Key, a.Value)
	}

	return c
}

// ComponentFromMap builds a Component from a plain map. Keys are sorted
// for deterministic attribute order.
func ComponentFromMap(m map[string]any) Component {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := Component{}
	for _, k := range keys {
		c = c.with(k, m[k])
	}

	return c
}

// ComponentFromStruct builds a Component from an arbitrary struct or
// map, flattening its fields into attributes via mapstructure. Field
// names (or `mapstructure` tags) become attribute keys.
func ComponentFromStruct(v any) (Component, error) {
	var m map[string]any
	if err := mapstructure.Decode(v, &m); err != nil {
		return Component{}, fmt.Errorf("core: cannot flatten %T into a component: %w", v, err)
	}

	return ComponentFromMap(m), nil
}

// with returns a copy of c extended by one attribute. Empty keys and
// empty values are dropped, matching the weeding done by Equal.
func (c Component) with(key string, value any) Component {
	v := normalizeValue(value)
	if key == "" || v == nil || v == "" {
		return c
	}

	out := Component{
		keys:  make([]string, 0, len(c.keys)+1),
		attrs: make(map[string]any, len(c.attrs)+1),
	}
	out.keys = append(out.keys, c.keys...)
	for k, cv := range c.attrs {
		out.attrs[k] = cv
	}
	if _, seen := out.attrs[key]; !seen {
		out.keys = append(out.keys, key)
	}
	out.attrs[key] = v

	return out
}

// normalizeValue collapses value kinds so equality and hashing are
// well-defined: numerics → float64, bool and string pass through,
// nil stays nil, anything else is stringified.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool, string, float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return fmt.Sprint(x)
	}
}

// Len returns the number of attributes.
func (c Component) Len() int {
	return len(c.keys)
}

// IsZero reports whether c is the null Component.
func (c Component) IsZero() bool {
	return len(c.keys) == 0
}

// Keys returns the attribute keys in their original order.
func (c Component) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)

	return out
}

// Get returns the value for key, matching case-insensitively.
func (c Component) Get(key string) (any, bool) {
	if v, ok := c.attrs[key]; ok {
		return v, true
	}
	folded := strings.ToLower(key)
	for k, v := range c.attrs {
		if strings.ToLower(k) == folded {
			return v, true
		}
	}

	return nil, false
}

// canonical returns the folded key → folded value view used by both
// Equal and Key.
func (c Component) canonical() map[string]string {
	m := make(map[string]string, len(c.attrs))
	for k, v := range c.attrs {
		m[strings.ToLower(k)] = canonicalValue(v)
	}

	return m
}

func canonicalValue(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return strings.ToLower(x)
	default:
		return strings.ToLower(fmt.Sprint(x))
	}
}

// Equal reports structural equality of the two attribute sets.
// Attribute order is irrelevant.
func (c Component) Equal(o Component) bool {
	a, b := c.canonical(), o.canonical()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}

	return true
}

// Key returns a canonical identity string: sorted "key=value" pairs
// joined by "; ". Two Components have the same Key iff they are Equal,
// so Key is safe to use as a map key. The null Component's Key is "".
func (c Component) Key() string {
	m := c.canonical()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+m[k])
	}

	return strings.Join(parts, "; ")
}

// Summary renders a human summary of the attribute values in their
// original order, e.g. "Red, vf-f, sandstone". The first letter is
// capitalized when initial is true. The null Component yields "".
func (c Component) Summary(initial bool) string {
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		parts = append(parts, canonicalValue(c.attrs[k]))
	}
	s := strings.Join(parts, ", ")
	if initial && s != "" {
		s = strings.ToUpper(s[:1]) + s[1:]
	}

	return s
}

// JSON returns the attribute map as a JSON object.
func (c Component) JSON() (string, error) {
	if c.IsZero() {
		return "{}", nil
	}
	b, err := json.Marshal(c.attrs)
	if err != nil {
		return "", fmt.Errorf("core: encoding component: %w", err)
	}

	return string(b), nil
}

// String renders the component for debugging.
func (c Component) String() string {
	if c.IsZero() {
		return "Component{}"
	}
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, c.attrs[k]))
	}

	return "Component{" + strings.Join(parts, ", ") + "}"
}
