package decode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iizs/godooray/pkg/doorayerr"
)

type pair struct {
	Key   string
	Value *int
}

func decodePair(obj Object) (pair, error) {
	r := NewReader("pair", obj)
	p := pair{
		Key:   r.String("key"),
		Value: r.OptInt("value"),
	}
	return p, r.Err()
}

func TestReader_RequiredAndOptional(t *testing.T) {
	r := NewReader("thing", Object{
		"id":       "1",
		"count":    json.Number("3"),
		"ratio":    float64(2),
		"flag":     true,
		"nothing":  nil,
		"when":     "2021-06-01T10:00:00+09:00",
		"children": []any{map[string]any{"key": "a"}, map[string]any{"key": "b", "value": 7}},
	})

	assert.Equal(t, "1", r.String("id"))
	assert.Equal(t, 3, r.Int("count"))
	assert.Equal(t, 2, *r.OptInt("ratio"))
	assert.True(t, r.Bool("flag"))
	assert.Nil(t, r.OptString("nothing"))
	assert.Nil(t, r.OptString("absent"))
	assert.Nil(t, r.OptObject("nothing"))
	assert.False(t, r.Has("nothing"))

	when := r.Time("when")
	assert.True(t, when.Equal(time.Date(2021, 6, 1, 1, 0, 0, 0, time.UTC)))

	children := List(r, "children", decodePair)
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Key)
	assert.Nil(t, children[0].Value)
	assert.Equal(t, 7, *children[1].Value)

	empty := OptList(r, "missing", decodePair)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.NoError(t, r.Err())
}

func TestReader_CollectsEveryProblem(t *testing.T) {
	r := NewReader("thing", Object{
		"id":    json.Number("12"),
		"name":  nil,
		"when":  "not a date at all",
		"items": []any{"oops"},
	})

	r.String("id")
	r.String("name")
	r.String("code")
	r.OptTime("when")
	OptList(r, "items", decodePair)

	err := r.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)

	msg := err.Error()
	assert.Contains(t, msg, "malformed thing")
	assert.Contains(t, msg, "id: has type json.Number, want string")
	assert.Contains(t, msg, "name: is required")
	assert.Contains(t, msg, "code: is required")
	assert.Contains(t, msg, "when: invalid timestamp")
	assert.Contains(t, msg, "items[0]: has type string, want object")
}

func TestNested_PropagatesInnerErrors(t *testing.T) {
	r := NewReader("outer", Object{
		"inner": map[string]any{"value": 1},
	})

	Nested(r, "inner", decodePair)
	_, ok := OptNested(r, "other", decodePair)
	assert.False(t, ok)

	err := r.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inner: malformed pair: key: is required")
}

func TestItems(t *testing.T) {
	got, err := Items("pair", []any{
		map[string]any{"key": "x"},
		map[string]any{"key": "y", "value": json.Number("2")},
	}, decodePair)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[1].Key)

	_, err = Items("pair", []any{map[string]any{}}, decodePair)
	assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)
}
