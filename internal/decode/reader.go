// Package decode reads typed fields out of decoded JSON objects.
//
// A Reader collects every problem it meets instead of stopping at the first
// one, so a single MalformedResponseError names all missing or ill-typed
// fields of an entity.
package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-multierror"

	"github.com/iizs/godooray/pkg/doorayerr"
)

// Object is a decoded JSON object.
type Object = map[string]any

// Func decodes one entity from a JSON object.
type Func[T any] func(Object) (T, error)

// Reader reads fields of a single JSON object on behalf of one entity.
type Reader struct {
	entity string
	obj    Object
	errs   *multierror.Error
}

// NewReader returns a Reader over obj. entity names the type being decoded
// and is used in error messages.
func NewReader(entity string, obj Object) *Reader {
	return &Reader{entity: entity, obj: obj}
}

// Failf records a problem with key.
func (r *Reader) Failf(key, format string, args ...any) {
	r.errs = multierror.Append(r.errs, fmt.Errorf("%s: "+format, append([]any{key}, args...)...))
}

// Err returns a MalformedResponseError listing every recorded problem, or
// nil if there were none.
func (r *Reader) Err() error {
	if r.errs == nil {
		return nil
	}
	r.errs.ErrorFormat = listFormat
	return doorayerr.NewMalformed(r.entity, r.errs)
}

// Has reports whether key is present with a non-null value.
func (r *Reader) Has(key string) bool {
	_, ok := r.lookup(key)
	return ok
}

// lookup treats an explicit null the same as an absent key.
func (r *Reader) lookup(key string) (any, bool) {
	v, ok := r.obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *Reader) required(key string) (any, bool) {
	v, ok := r.lookup(key)
	if !ok {
		r.Failf(key, "is required")
	}
	return v, ok
}

// String reads a required string.
func (r *Reader) String(key string) string {
	v, ok := r.required(key)
	if !ok {
		return ""
	}
	return r.toString(key, v)
}

// OptString reads an optional string.
func (r *Reader) OptString(key string) *string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s := r.toString(key, v)
	return &s
}

func (r *Reader) toString(key string, v any) string {
	s, ok := v.(string)
	if !ok {
		r.Failf(key, "has type %T, want string", v)
	}
	return s
}

// Int reads a required integer.
func (r *Reader) Int(key string) int {
	v, ok := r.required(key)
	if !ok {
		return 0
	}
	return r.toInt(key, v)
}

// OptInt reads an optional integer.
func (r *Reader) OptInt(key string) *int {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	n := r.toInt(key, v)
	return &n
}

func (r *Reader) toInt(key string, v any) int {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case float64:
		if n == math.Trunc(n) {
			return int(n)
		}
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	}
	r.Failf(key, "has value %v, want integer", v)
	return 0
}

// Bool reads a required boolean.
func (r *Reader) Bool(key string) bool {
	v, ok := r.required(key)
	if !ok {
		return false
	}
	return r.toBool(key, v)
}

// OptBool reads an optional boolean.
func (r *Reader) OptBool(key string) *bool {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	b := r.toBool(key, v)
	return &b
}

func (r *Reader) toBool(key string, v any) bool {
	b, ok := v.(bool)
	if !ok {
		r.Failf(key, "has type %T, want bool", v)
	}
	return b
}

// Time reads a required timestamp.
func (r *Reader) Time(key string) time.Time {
	v, ok := r.required(key)
	if !ok {
		return time.Time{}
	}
	return r.toTime(key, v)
}

// OptTime reads an optional timestamp.
func (r *Reader) OptTime(key string) *time.Time {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	t := r.toTime(key, v)
	return &t
}

func (r *Reader) toTime(key string, v any) time.Time {
	s, ok := v.(string)
	if !ok {
		r.Failf(key, "has type %T, want timestamp string", v)
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		r.Failf(key, "invalid timestamp %q: %v", s, err)
	}
	return t
}

// Object reads a required nested object.
func (r *Reader) Object(key string) Object {
	v, ok := r.required(key)
	if !ok {
		return nil
	}
	return r.toObject(key, v)
}

// OptObject reads an optional nested object. It returns nil when the key is
// absent or null.
func (r *Reader) OptObject(key string) Object {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	return r.toObject(key, v)
}

func (r *Reader) toObject(key string, v any) Object {
	o, ok := v.(map[string]any)
	if !ok {
		r.Failf(key, "has type %T, want object", v)
	}
	return o
}

// Array reads a required array.
func (r *Reader) Array(key string) []any {
	v, ok := r.required(key)
	if !ok {
		return nil
	}
	return r.toArray(key, v)
}

// OptArray reads an optional array. It returns nil when the key is absent or
// null.
func (r *Reader) OptArray(key string) []any {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	return r.toArray(key, v)
}

func (r *Reader) toArray(key string, v any) []any {
	a, ok := v.([]any)
	if !ok {
		r.Failf(key, "has type %T, want array", v)
	}
	return a
}

// Nested decodes a required nested entity with dec.
func Nested[T any](r *Reader, key string, dec Func[T]) T {
	var zero T
	o := r.Object(key)
	if o == nil {
		return zero
	}
	return apply(r, key, o, dec)
}

// OptNested decodes an optional nested entity with dec. ok is false when the
// key is absent or null.
func OptNested[T any](r *Reader, key string, dec Func[T]) (v T, ok bool) {
	o := r.OptObject(key)
	if o == nil {
		return v, false
	}
	return apply(r, key, o, dec), true
}

// List decodes a required array of entities with dec.
func List[T any](r *Reader, key string, dec Func[T]) []T {
	if !r.Has(key) {
		r.Failf(key, "is required")
		return nil
	}
	return OptList(r, key, dec)
}

// OptList decodes an optional array of entities with dec. An absent or null
// array decodes to an empty, non-nil slice.
func OptList[T any](r *Reader, key string, dec Func[T]) []T {
	items := r.OptArray(key)
	out := make([]T, 0, len(items))
	for i, item := range items {
		elemKey := fmt.Sprintf("%s[%d]", key, i)
		o, ok := item.(map[string]any)
		if !ok {
			r.Failf(elemKey, "has type %T, want object", item)
			continue
		}
		out = append(out, apply(r, elemKey, o, dec))
	}
	return out
}

// Strings decodes an optional array of strings. Absent or null decodes to an
// empty, non-nil slice.
func (r *Reader) Strings(key string) []string {
	items := r.OptArray(key)
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			r.Failf(fmt.Sprintf("%s[%d]", key, i), "has type %T, want string", item)
			continue
		}
		out = append(out, s)
	}
	return out
}

func apply[T any](r *Reader, key string, o Object, dec Func[T]) T {
	v, err := dec(o)
	if err != nil {
		r.Failf(key, "%v", err)
	}
	return v
}

// Items decodes every element of items with dec, collecting all failures
// into one error attributed to entity.
func Items[T any](entity string, items []any, dec Func[T]) ([]T, error) {
	r := NewReader(entity, nil)
	out := make([]T, 0, len(items))
	for i, item := range items {
		key := fmt.Sprintf("[%d]", i)
		o, ok := item.(map[string]any)
		if !ok {
			r.Failf(key, "has type %T, want object", item)
			continue
		}
		out = append(out, apply(r, key, o, dec))
	}
	return out, r.Err()
}

func listFormat(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
