package projection

import "strings"

// DeepMerge merges src into dst and returns dst. Object values merge key-wise,
// scalars and arrays are replaced by the later value, and nil values are
// skipped so an event can never erase previously accumulated data.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if v == nil {
			continue
		}
		srcMap, srcIsMap := v.(map[string]any)
		if !srcIsMap {
			dst[k] = v
			continue
		}
		dstMap, dstIsMap := dst[k].(map[string]any)
		if !dstIsMap {
			dst[k] = DeepMerge(make(map[string]any, len(srcMap)), srcMap)
			continue
		}
		dst[k] = DeepMerge(dstMap, srcMap)
	}
	return dst
}

// MergeAtPath merges src into dst under a dot-separated key path.
// An empty path merges at the root.
func MergeAtPath(dst map[string]any, path string, src map[string]any) map[string]any {
	if path == "" {
		return DeepMerge(dst, src)
	}
	if dst == nil {
		dst = make(map[string]any)
	}
	cur := dst
	parts := strings.Split(path, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			child, ok := cur[part].(map[string]any)
			if !ok {
				child = make(map[string]any, len(src))
			}
			cur[part] = DeepMerge(child, src)
			return dst
		}
		child, ok := cur[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			cur[part] = child
		}
		cur = child
	}
	return dst
}

// LookupPath resolves a dot-separated key path in nested maps.
func LookupPath(data map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var cur any = data
	for _, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
