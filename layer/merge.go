package layer

// Merged is the flattened result of folding layers together.
type Merged struct {
	keys   []string
	values map[string]string
}

// Merge folds layers in order. For a key defined by several layers the last
// one wins. Keys keep the position of their first appearance.
func Merge(layers ...Layer) *Merged {
	m := &Merged{values: make(map[string]string)}
	for _, l := range layers {
		for _, k := range l.keys {
			m.set(k, l.values[k])
		}
	}
	return m
}

func (m *Merged) set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Keys returns the merged keys in first-appearance order.
func (m *Merged) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the merged value for key.
func (m *Merged) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of merged keys.
func (m *Merged) Len() int {
	return len(m.keys)
}

// All returns a copy of all merged key/value pairs.
func (m *Merged) All() map[string]string {
	result := make(map[string]string, len(m.values))
	for k, v := range m.values {
		result[k] = v
	}
	return result
}
