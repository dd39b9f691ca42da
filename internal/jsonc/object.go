package jsonc

// Object is a read-only view of an options object handed to a module.
// The zero Object has no value; every lookup on it reports "not set".
type Object struct {
	backend Backend
	value   Value
}

// NewObject wraps v. If v is Nil the returned Object is empty.
func NewObject(b Backend, v Value) Object {
	if v == Nil {
		return Object{}
	}
	return Object{backend: b, value: v}
}

// Valid reports whether the Object carries a value.
func (o Object) Valid() bool {
	return o.backend != nil && o.value != Nil
}

// Value returns the wrapped handle.
func (o Object) Value() Value {
	return o.value
}

// Lookup returns the raw value stored under key, or Nil.
func (o Object) Lookup(key string) Value {
	if !o.Valid() {
		return Nil
	}
	return o.backend.ObjectGet(o.value, key)
}

// String returns a string property. ok is false if the key is missing or
// not a string.
func (o Object) String(key string) (string, bool) {
	v := o.Lookup(key)
	if v == Nil || !o.backend.IsType(v, TypeString) {
		return "", false
	}
	if o.backend.StringLen(v) == 0 {
		return "", true
	}
	return o.backend.String(v)
}

// Bool returns a boolean property.
func (o Object) Bool(key string) (bool, bool) {
	v := o.Lookup(key)
	if v == Nil || !o.backend.IsType(v, TypeBoolean) {
		return false, false
	}
	return o.backend.Bool(v), true
}

// Int returns an integral property.
func (o Object) Int(key string) (int, bool) {
	v := o.Lookup(key)
	if v == Nil || !o.backend.IsType(v, TypeInt) {
		return 0, false
	}
	return int(o.backend.Int(v)), true
}

// Double returns a numeric property; ints are widened.
func (o Object) Double(key string) (float64, bool) {
	v := o.Lookup(key)
	if v == Nil {
		return 0, false
	}
	if !o.backend.IsType(v, TypeDouble) && !o.backend.IsType(v, TypeInt) {
		return 0, false
	}
	return o.backend.Double(v), true
}

// Keys returns the property names in backend order.
func (o Object) Keys() []string {
	if !o.Valid() {
		return nil
	}
	entries, ok := o.backend.Object(o.value)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}
