// Package layer reads property resources into layers and folds them into a
// single set of defaults.
package layer

import (
	"fmt"
	"log/slog"

	"github.com/magiconair/properties"

	"github.com/randalmurphal/overrides/resource"
)

// Layer is the ordered key/value content of one property resource.
// A Layer is never modified after it is read.
type Layer struct {
	source resource.Ref
	keys   []string
	values map[string]string
}

// New builds a layer from ordered keys and their values. Keys without a value
// in values are dropped.
func New(source resource.Ref, keys []string, values map[string]string) Layer {
	l := Layer{
		source: source,
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]string, len(keys)),
	}
	for _, k := range keys {
		v, ok := values[k]
		if !ok {
			continue
		}
		if _, seen := l.values[k]; !seen {
			l.keys = append(l.keys, k)
		}
		l.values[k] = v
	}
	return l
}

// Source returns the resource the layer was read from.
func (l Layer) Source() resource.Ref {
	return l.source
}

// Keys returns the layer's keys in file order.
func (l Layer) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Get returns the value for key.
func (l Layer) Get(key string) (string, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Len returns the number of keys in the layer.
func (l Layer) Len() int {
	return len(l.keys)
}

// Encoding selects how resource bytes are decoded.
type Encoding = properties.Encoding

// Supported encodings.
const (
	UTF8     Encoding = properties.UTF8
	ISO88591 Encoding = properties.ISO_8859_1
)

// Reader parses property resources into layers.
type Reader struct {
	// Encoding of the resources. Defaults to UTF8.
	Encoding Encoding

	// Logger receives a warning for every resource that cannot be read.
	Logger *slog.Logger
}

// NewReader creates a reader for UTF-8 resources using the default logger.
func NewReader() *Reader {
	return &Reader{Encoding: UTF8, Logger: slog.Default()}
}

// Read parses every ref in order. A ref that cannot be opened or parsed is
// logged and left out; the rest are still read.
func (r *Reader) Read(refs []resource.Ref) []Layer {
	layers := make([]Layer, 0, len(refs))
	for _, ref := range refs {
		l, err := r.ReadOne(ref)
		if err != nil {
			r.logger().Warn("cannot read property resource",
				slog.String("resource", ref.String()),
				slog.String("error", err.Error()))
			continue
		}
		layers = append(layers, l)
	}
	return layers
}

// ReadOne parses a single ref.
func (r *Reader) ReadOne(ref resource.Ref) (Layer, error) {
	data, err := ref.ReadAll()
	if err != nil {
		return Layer{}, err
	}

	loader := &properties.Loader{
		Encoding:         r.Encoding,
		DisableExpansion: true,
	}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return Layer{}, fmt.Errorf("parse %s: %w", ref, err)
	}

	keys := p.Keys()
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := p.Get(k); ok {
			values[k] = v
		}
	}
	return New(ref, keys, values), nil
}

func (r *Reader) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
