package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	t.Run("scalars are replaced by the later value", func(t *testing.T) {
		dst := map[string]any{"a": 1, "b": "old"}
		out := DeepMerge(dst, map[string]any{"b": "new", "c": true})
		assert.Equal(t, map[string]any{"a": 1, "b": "new", "c": true}, out)
	})

	t.Run("nested objects merge key-wise", func(t *testing.T) {
		dst := map[string]any{
			"business": map[string]any{"legal_name": "Acme", "state": "CA"},
		}
		out := DeepMerge(dst, map[string]any{
			"business": map[string]any{"entity_type": "llc"},
		})
		assert.Equal(t, map[string]any{
			"business": map[string]any{
				"legal_name":  "Acme",
				"state":       "CA",
				"entity_type": "llc",
			},
		}, out)
	})

	t.Run("nil values never erase accumulated data", func(t *testing.T) {
		dst := map[string]any{"keep": "me"}
		out := DeepMerge(dst, map[string]any{"keep": nil})
		assert.Equal(t, "me", out["keep"])
	})

	t.Run("arrays are replaced wholesale", func(t *testing.T) {
		dst := map[string]any{"tags": []any{"a", "b"}}
		out := DeepMerge(dst, map[string]any{"tags": []any{"c"}})
		assert.Equal(t, []any{"c"}, out["tags"])
	})

	t.Run("object replaces a scalar at the same key", func(t *testing.T) {
		dst := map[string]any{"x": "scalar"}
		out := DeepMerge(dst, map[string]any{"x": map[string]any{"y": 1}})
		assert.Equal(t, map[string]any{"y": 1}, out["x"])
	})

	t.Run("nil dst allocates", func(t *testing.T) {
		out := DeepMerge(nil, map[string]any{"a": 1})
		assert.Equal(t, map[string]any{"a": 1}, out)
	})
}

func TestMergeAtPath(t *testing.T) {
	t.Run("empty path merges at the root", func(t *testing.T) {
		out := MergeAtPath(map[string]any{"a": 1}, "", map[string]any{"b": 2})
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, out)
	})

	t.Run("creates intermediate objects", func(t *testing.T) {
		out := MergeAtPath(map[string]any{}, "contact.address", map[string]any{"city": "Oakland"})
		assert.Equal(t, map[string]any{
			"contact": map[string]any{
				"address": map[string]any{"city": "Oakland"},
			},
		}, out)
	})

	t.Run("merges into an existing object at the path", func(t *testing.T) {
		dst := map[string]any{
			"contact": map[string]any{"email": "ops@acme.test"},
		}
		out := MergeAtPath(dst, "contact", map[string]any{"phone": "555-0100"})
		assert.Equal(t, map[string]any{
			"contact": map[string]any{"email": "ops@acme.test", "phone": "555-0100"},
		}, out)
	})

	t.Run("replaces a scalar blocking the path", func(t *testing.T) {
		dst := map[string]any{"contact": "just a string"}
		out := MergeAtPath(dst, "contact", map[string]any{"email": "x@y.z"})
		assert.Equal(t, map[string]any{
			"contact": map[string]any{"email": "x@y.z"},
		}, out)
	})
}

func TestLookupPath(t *testing.T) {
	data := map[string]any{
		"business": map[string]any{
			"legal_name": "Acme",
			"address":    map[string]any{"city": "Oakland"},
		},
		"flat": 42,
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"business.legal_name", "Acme", true},
		{"business.address.city", "Oakland", true},
		{"flat", 42, true},
		{"business.missing", nil, false},
		{"flat.nested", nil, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		got, ok := LookupPath(data, tt.path)
		assert.Equal(t, tt.found, ok, "path %q", tt.path)
		if tt.found {
			assert.Equal(t, tt.want, got, "path %q", tt.path)
		}
	}
}
