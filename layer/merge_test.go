package layer

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/randalmurphal/overrides/resource"
)

func layerOf(pairs ...string) Layer {
	var keys []string
	values := make(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		keys = append(keys, pairs[i])
		values[pairs[i]] = pairs[i+1]
	}
	return New(resource.Ref{}, keys, values)
}

func TestMerge_LastWins(t *testing.T) {
	l1 := layerOf("timeout", "30", "url", "jdbc:a")
	l2 := layerOf("timeout", "60", "pool", "5")

	m := Merge(l1, l2)

	assert.Equal(t, map[string]string{"timeout": "60", "url": "jdbc:a", "pool": "5"}, m.All())
	assert.Equal(t, []string{"timeout", "url", "pool"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMerge_Empty(t *testing.T) {
	m := Merge()

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if _, ok := m.Get("anything"); ok {
		t.Error("Get() on empty merge should report missing")
	}
}

func TestMerge_PropertyLastLayerWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keyGen := rapid.SampledFrom([]string{"a", "b", "c", "d", "e"})
		n := rapid.IntRange(1, 6).Draw(t, "layers")

		layers := make([]Layer, n)
		for i := range layers {
			pairs := rapid.MapOf(keyGen, rapid.StringMatching(`[a-z0-9]{0,4}`)).Draw(t, fmt.Sprintf("layer%d", i))
			var flat []string
			for k, v := range pairs {
				flat = append(flat, k, v)
			}
			layers[i] = layerOf(flat...)
		}

		m := Merge(layers...)

		for _, k := range []string{"a", "b", "c", "d", "e"} {
			var want string
			var found bool
			for _, l := range layers {
				if v, ok := l.Get(k); ok {
					want, found = v, true
				}
			}
			got, ok := m.Get(k)
			assert.Equal(t, found, ok, "presence of %q", k)
			assert.Equal(t, want, got, "value of %q", k)
		}
	})
}

func TestMerge_PropertyDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pairs := rapid.SliceOf(rapid.StringMatching(`[a-c]`)).Draw(t, "keys")
		var flat []string
		for i, k := range pairs {
			flat = append(flat, k, fmt.Sprint(i))
		}
		l := layerOf(flat...)

		first := Merge(l, l)
		second := Merge(l, l)
		if !reflect.DeepEqual(first.Keys(), second.Keys()) || !reflect.DeepEqual(first.All(), second.All()) {
			t.Fatalf("merge is not deterministic: %v vs %v", first.All(), second.All())
		}
	})
}
