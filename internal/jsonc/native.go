package jsonc

import (
	"math"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

type nativeNode struct {
	typ     Type
	b       bool
	i       int64
	f       float64
	s       string // string value, or JSON text for non-strings
	elems   []Value
	entries []Entry
}

// Native is a pure-Go Backend. It accepts standard JSON plus comments and
// trailing commas, and reproduces json-c's value semantics: JSON null is
// represented as Nil, and numbers without a fraction or exponent are ints.
//
// Native is stricter than json_tokener_parse in two ways. Text after the
// first complete value is an error rather than ignored, and single-quoted
// strings are rejected.
//
// Native is not safe for concurrent use.
type Native struct {
	next  Value
	nodes map[Value]*nativeNode
	docs  map[Value][]Value
}

// NewNative returns an empty Native backend.
func NewNative() *Native {
	return &Native{
		nodes: make(map[Value]*nativeNode),
		docs:  make(map[Value][]Value),
	}
}

// Name implements Backend.
func (b *Native) Name() string {
	return BackendNative
}

// Parse implements Backend.
func (b *Native) Parse(text string) Value {
	std, err := hujson.Standardize([]byte(text))
	if err != nil || !gjson.ValidBytes(std) {
		return Nil
	}
	res := gjson.ParseBytes(std)
	if res.Type == gjson.Null {
		return Nil
	}

	var owned []Value
	root := b.build(res, &owned)
	if root != Nil {
		b.docs[root] = owned
	}
	return root
}

func (b *Native) build(r gjson.Result, owned *[]Value) Value {
	n := &nativeNode{s: r.Raw}
	switch r.Type {
	case gjson.Null:
		return Nil
	case gjson.False, gjson.True:
		n.typ = TypeBoolean
		n.b = r.Type == gjson.True
	case gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			n.typ = TypeDouble
			n.f = r.Num
		} else {
			n.typ = TypeInt
			n.i = parseIntClamped(r.Raw)
		}
	case gjson.String:
		n.typ = TypeString
		n.s = r.Str
	case gjson.JSON:
		switch {
		case r.IsArray():
			n.typ = TypeArray
			n.elems = []Value{}
			r.ForEach(func(_, v gjson.Result) bool {
				n.elems = append(n.elems, b.build(v, owned))
				return true
			})
		case r.IsObject():
			n.typ = TypeObject
			r.ForEach(func(k, v gjson.Result) bool {
				n.setEntry(k.Str, b.build(v, owned))
				return true
			})
		default:
			return Nil
		}
	default:
		return Nil
	}

	b.next++
	id := b.next
	b.nodes[id] = n
	*owned = append(*owned, id)
	return id
}

// setEntry adds key, replacing an earlier duplicate in place.
func (n *nativeNode) setEntry(key string, v Value) {
	for i := range n.entries {
		if n.entries[i].Key == key {
			n.entries[i].Value = v
			return
		}
	}
	n.entries = append(n.entries, Entry{Key: key, Value: v})
}

func parseIntClamped(raw string) int64 {
	i, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return i
	}
	if strings.HasPrefix(raw, "-") {
		return math.MinInt64
	}
	return math.MaxInt64
}

func (b *Native) node(v Value) *nativeNode {
	if v == Nil {
		return nil
	}
	return b.nodes[v]
}

// IsType implements Backend.
func (b *Native) IsType(v Value, t Type) bool {
	n := b.node(v)
	if n == nil {
		return v == Nil && t == TypeNull
	}
	return n.typ == t
}

// Array implements Backend.
func (b *Native) Array(v Value) ([]Value, bool) {
	n := b.node(v)
	if n == nil || n.typ != TypeArray {
		return nil, false
	}
	return n.elems, true
}

// Bool implements Backend.
func (b *Native) Bool(v Value) bool {
	n := b.node(v)
	if n == nil {
		return false
	}
	switch n.typ {
	case TypeBoolean:
		return n.b
	case TypeInt:
		return n.i != 0
	case TypeDouble:
		return n.f != 0
	case TypeString:
		return len(n.s) != 0
	default:
		return false
	}
}

// Double implements Backend.
func (b *Native) Double(v Value) float64 {
	n := b.node(v)
	if n == nil {
		return 0
	}
	switch n.typ {
	case TypeDouble:
		return n.f
	case TypeInt:
		return float64(n.i)
	case TypeBoolean:
		if n.b {
			return 1
		}
		return 0
	case TypeString:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.s), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int implements Backend.
func (b *Native) Int(v Value) int32 {
	n := b.node(v)
	if n == nil {
		return 0
	}
	switch n.typ {
	case TypeInt:
		return clampInt32(float64(n.i))
	case TypeDouble:
		return clampInt32(n.f)
	case TypeBoolean:
		if n.b {
			return 1
		}
		return 0
	case TypeString:
		i, err := strconv.ParseInt(strings.TrimSpace(n.s), 10, 64)
		if err != nil {
			return 0
		}
		return clampInt32(float64(i))
	default:
		return 0
	}
}

func clampInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

// StringLen implements Backend.
func (b *Native) StringLen(v Value) int {
	n := b.node(v)
	if n == nil || n.typ != TypeString {
		return 0
	}
	return len(n.s)
}

// String implements Backend.
func (b *Native) String(v Value) (string, bool) {
	n := b.node(v)
	if n == nil {
		return "", false
	}
	return n.s, true
}

// Object implements Backend.
func (b *Native) Object(v Value) ([]Entry, bool) {
	n := b.node(v)
	if n == nil || n.typ != TypeObject {
		return nil, false
	}
	if n.entries == nil {
		return []Entry{}, true
	}
	return n.entries, true
}

// ObjectGet implements Backend.
func (b *Native) ObjectGet(v Value, key string) Value {
	n := b.node(v)
	if n == nil || n.typ != TypeObject {
		return Nil
	}
	for _, e := range n.entries {
		if e.Key == key {
			return e.Value
		}
	}
	return Nil
}

// Put implements Backend. Only roots returned by Parse are released; other
// handles are ignored.
func (b *Native) Put(v Value) {
	owned, ok := b.docs[v]
	if !ok {
		return
	}
	for _, id := range owned {
		delete(b.nodes, id)
	}
	delete(b.docs, v)
}

// Live returns the number of values currently held.
func (b *Native) Live() int {
	return len(b.nodes)
}

// Close implements Backend.
func (b *Native) Close() error {
	clear(b.nodes)
	clear(b.docs)
	return nil
}
