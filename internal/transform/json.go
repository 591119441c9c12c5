package transform

import (
	"fmt"
	"math"

	"github.com/bytedance/sonic"
)

// StructuredView parses content as JSON on first lookup.
type StructuredView struct {
	content string
	opts    viewOptions
	doc     *lazy[any]
}

// NewStructuredView wraps content without parsing it.
func NewStructuredView(content string, opts ...ViewOption) *StructuredView {
	v := &StructuredView{content: content, opts: buildViewOptions(opts)}
	v.doc = newLazy(v.parse)
	return v
}

func (v *StructuredView) parse() (any, error) {
	v.opts.hook.fire("json", len(v.content))

	if err := v.opts.checkSize(v.content); err != nil {
		return nil, &ViewError{View: "json", Op: "parse", Err: err}
	}

	var doc any
	if err := sonic.ConfigStd.UnmarshalFromString(v.content, &doc); err != nil {
		return nil, &ViewError{View: "json", Op: "parse", Err: err}
	}
	return doc, nil
}

// Value returns the whole parsed document.
func (v *StructuredView) Value() (any, error) {
	return v.doc.get()
}

// Lookup indexes the parsed document by key, then by each element of path.
func (v *StructuredView) Lookup(key any, path ...any) (any, error) {
	cur, err := v.doc.get()
	if err != nil {
		return nil, err
	}

	for _, k := range append([]any{key}, path...) {
		cur, err = index(cur, k)
		if err != nil {
			return nil, &ViewError{View: "json", Op: "lookup", Err: err}
		}
	}
	return cur, nil
}

// index applies one key to a decoded JSON value.
func index(value any, key any) (any, error) {
	switch container := value.(type) {
	case map[string]any:
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %T", key)
		}
		member, ok := container[name]
		if !ok {
			return nil, fmt.Errorf("key %q not found", name)
		}
		return member, nil

	case []any:
		i, ok := toIndex(key)
		if !ok {
			return nil, fmt.Errorf("array index must be an integer, got %T", key)
		}
		if i < 0 {
			i += len(container)
		}
		if i < 0 || i >= len(container) {
			return nil, fmt.Errorf("index %v out of range (length %d)", key, len(container))
		}
		return container[i], nil

	default:
		return nil, fmt.Errorf("%T is not indexable", value)
	}
}

func toIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int64:
		return int(k), true
	case int32:
		return int(k), true
	case float64:
		if k != math.Trunc(k) {
			return 0, false
		}
		return int(k), true
	default:
		return 0, false
	}
}
