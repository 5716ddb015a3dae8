package types

// DefaultMap is a generic map wrapper that returns default values for missing keys.
//
// It avoids key existence checks by lazily initializing entries with a value
// produced by a user-defined function:
//
//	wallets := NewDefaultMap[string](func() Set[string] { return NewSet[string]() })
//	wallets.Get("0xfrom").Add("0xwallet")
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key.
//
// If the key is not present, it invokes the defaultFunc to generate a default value,
// stores it in the map, and then returns it.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}
	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Lookup returns the value stored for key without creating a default entry.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Set manually assigns a value to the given key in the map.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Len returns the number of keys stored in the map.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map used by the DefaultMap.
//
// The returned map shares storage with the DefaultMap; mutations are visible
// on both sides.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
