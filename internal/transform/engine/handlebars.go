package engine

import (
	"reflect"

	"github.com/aymerick/raymond"
)

// HandlebarsName is the registry name of the Handlebars engine.
const HandlebarsName = "handlebars"

// Handlebars renders Handlebars templates. Function vars and filters become
// helpers ({{text (css "p")}}); plain vars are context fields ({{content}}).
// Strings are not HTML-escaped. A list printed directly ({{css "p"}}) is
// still escaped; iterate it with {{#each}} or use {{{ }}}.
type Handlebars struct{}

// NewHandlebars creates the Handlebars engine.
func NewHandlebars() *Handlebars {
	return &Handlebars{}
}

// Name returns HandlebarsName.
func (e *Handlebars) Name() string { return HandlebarsName }

// Compile parses source. Helpers resolve at render time, so names is unused.
func (e *Handlebars) Compile(source string, _ []string) (Template, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, &SyntaxError{Engine: HandlebarsName, Err: err}
	}
	return &handlebarsTemplate{tpl: tpl}, nil
}

type handlebarsTemplate struct {
	tpl *raymond.Template
}

func (t *handlebarsTemplate) Render(vars Vars, filters Filters) (string, error) {
	ctx := make(map[string]interface{}, len(vars))
	helpers := make(map[string]interface{}, len(vars)+len(filters))
	for name, value := range vars {
		if isFunc(value) {
			helpers[name] = helperFunc(value)
		} else {
			ctx[name] = markSafe(value)
		}
	}
	for name, filter := range filters {
		helpers[name] = helperFunc(filter)
	}

	// helpers register once per template instance
	tpl := t.tpl.Clone()
	tpl.RegisterHelpers(helpers)

	out, err := tpl.Exec(ctx)
	if err != nil {
		return "", &RuntimeError{Engine: HandlebarsName, Err: err}
	}
	return out, nil
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// helperFunc adapts fn to raymond's single-result helper contract: a
// trailing error result is raised as a panic, which raymond returns from
// Exec unchanged, and a variadic tail is dropped. Results are marked safe so
// double-stash output is not HTML-escaped; safe arguments are unmarked
// before fn sees them.
func helperFunc(fn any) any {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()

	numIn := ft.NumIn()
	if ft.IsVariadic() {
		numIn--
	}
	in := make([]reflect.Type, numIn)
	for i := range in {
		in[i] = ft.In(i)
	}

	wrapper := reflect.MakeFunc(reflect.FuncOf(in, []reflect.Type{anyType}, false), func(args []reflect.Value) []reflect.Value {
		for i, arg := range args {
			if arg.Kind() == reflect.Interface && !arg.IsNil() {
				args[i] = valueOf(in[i], unmarkSafe(arg.Interface()))
			}
		}

		results := fv.Call(args)
		if len(results) == 2 && !results[1].IsNil() {
			panic(results[1].Interface().(error))
		}
		return []reflect.Value{valueOf(anyType, markSafe(results[0].Interface()))}
	})
	return wrapper.Interface()
}

// valueOf returns v as a value of interface type t.
func valueOf(t reflect.Type, v any) reflect.Value {
	out := reflect.New(t).Elem()
	if v != nil {
		out.Set(reflect.ValueOf(v))
	}
	return out
}

// markSafe converts strings, including those nested in lists and maps, to
// raymond.SafeString.
func markSafe(value any) any {
	switch v := value.(type) {
	case string:
		return raymond.SafeString(v)
	case []string:
		out := make([]raymond.SafeString, len(v))
		for i, s := range v {
			out[i] = raymond.SafeString(s)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = markSafe(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = markSafe(item)
		}
		return out
	default:
		return value
	}
}

// unmarkSafe reverses markSafe.
func unmarkSafe(value any) any {
	switch v := value.(type) {
	case raymond.SafeString:
		return string(v)
	case []raymond.SafeString:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = string(s)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = unmarkSafe(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = unmarkSafe(item)
		}
		return out
	default:
		return value
	}
}
