package transform

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sudoguy/kibitzr/internal/transform/engine"
)

// filterSet holds the single-argument filters exposed to templates.
type filterSet struct {
	text      *TextExtractor
	sanitizer *bluemonday.Policy
}

func newFilterSet(text *TextExtractor) *filterSet {
	return &filterSet{
		text:      text,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Filters returns the filter table handed to the engine.
func (f *filterSet) Filters() engine.Filters {
	return engine.Filters{
		"text":     f.text.Text,
		"sanitize": f.sanitize,
		"tojson":   toJSON,
		"trim":     strings.TrimSpace,
		"lower":    strings.ToLower,
		"upper":    strings.ToUpper,
		"first":    first,
		"last":     last,
	}
}

// sanitize keeps user-generated-content safe markup only.
func (f *filterSet) sanitize(input any) (string, error) {
	markup, err := joinMarkup(input)
	if err != nil {
		return "", &ExtractionError{Err: err}
	}
	return f.sanitizer.Sanitize(markup), nil
}

func toJSON(value any) (string, error) {
	return sonic.ConfigStd.MarshalToString(value)
}

func first(list any) (any, error) {
	return element(list, func(n int) int { return 0 })
}

func last(list any) (any, error) {
	return element(list, func(n int) int { return n - 1 })
}

// element picks one item of a slice, array or string; empty input yields "".
func element(list any, pick func(n int) int) (any, error) {
	v := reflect.ValueOf(list)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "", nil
		}
		return v.Index(pick(v.Len())).Interface(), nil
	case reflect.String:
		runes := []rune(v.String())
		if len(runes) == 0 {
			return "", nil
		}
		return string(runes[pick(len(runes))]), nil
	default:
		return nil, fmt.Errorf("cannot take an element of %T", list)
	}
}
