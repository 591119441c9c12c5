package engine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEngine is returned by New for an unregistered engine name.
var ErrUnknownEngine = errors.New("unknown template engine")

// Vars maps template names to values. Function values are exposed as callables.
type Vars map[string]any

// Filters maps filter names to single-argument functions returning a value and
// optionally an error.
type Filters map[string]any

// Engine compiles template source.
type Engine interface {
	// Name identifies the engine in logs and metrics.
	Name() string

	// Compile parses source. names lists every var and filter the template
	// may reference at render time. Fails with *SyntaxError.
	Compile(source string, names []string) (Template, error)
}

// Template is a compiled template, rendered once per context.
type Template interface {
	// Render executes the template. Fails with *RuntimeError.
	Render(vars Vars, filters Filters) (string, error)
}

// SyntaxError reports malformed template source.
type SyntaxError struct {
	Engine string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: failed to compile template: %v", e.Engine, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// RuntimeError reports a failure while rendering. Err may wrap an error
// returned by a var or filter function.
type RuntimeError struct {
	Engine string
	Err    error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: template execution failed: %v", e.Engine, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// IsTemplateError reports whether err is a syntax or runtime template error.
func IsTemplateError(err error) bool {
	var syntaxErr *SyntaxError
	var runtimeErr *RuntimeError
	return errors.As(err, &syntaxErr) || errors.As(err, &runtimeErr)
}

var registry = map[string]func() Engine{
	GoTemplateName: func() Engine { return NewGoTemplate() },
	HandlebarsName: func() Engine { return NewHandlebars() },
}

// New returns the engine registered under name.
func New(name string) (Engine, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return factory(), nil
}

// Names lists registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SymbolNames returns the keys of vars and filters, the set Compile expects.
func SymbolNames(vars Vars, filters Filters) []string {
	names := make([]string, 0, len(vars)+len(filters))
	for name := range vars {
		names = append(names, name)
	}
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
