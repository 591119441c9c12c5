package engine

import (
	"errors"
	"reflect"
	"strings"
	"text/template"
)

// GoTemplateName is the registry name of the text/template engine.
const GoTemplateName = "gotemplate"

// missingKey makes a missing map key a runtime error. Clone drops
// options, so Render applies it again.
const missingKey = "missingkey=error"

var errUnbound = errors.New("function not bound at render time")

// GoTemplate renders text/template source. Every var is callable as a
// function ({{ content }}, {{ css "p" }}) and readable as a field
// ({{ .content }}); filters apply through pipelines ({{ css "p" | text }}).
// Referencing a missing field is a runtime error. A nil var renders empty.
type GoTemplate struct{}

// NewGoTemplate creates the text/template engine.
func NewGoTemplate() *GoTemplate {
	return &GoTemplate{}
}

// Name returns GoTemplateName.
func (e *GoTemplate) Name() string { return GoTemplateName }

// Compile parses source with placeholder functions for names; the real
// functions are bound in Render.
func (e *GoTemplate) Compile(source string, names []string) (Template, error) {
	stubs := make(template.FuncMap, len(names))
	for _, name := range names {
		stubs[name] = unbound
	}

	tmpl, err := template.New("transform").
		Option(missingKey).
		Funcs(stubs).
		Parse(source)
	if err != nil {
		return nil, &SyntaxError{Engine: GoTemplateName, Err: err}
	}
	return &goTemplate{tmpl: tmpl}, nil
}

func unbound(...any) (any, error) {
	return nil, errUnbound
}

type goTemplate struct {
	tmpl *template.Template
}

func (t *goTemplate) Render(vars Vars, filters Filters) (string, error) {
	funcs := make(template.FuncMap, len(vars)+len(filters))
	data := make(map[string]any, len(vars))
	for name, value := range vars {
		if value == nil {
			value = ""
		}
		data[name] = value
		if isFunc(value) {
			funcs[name] = value
		} else {
			funcs[name] = constant(value)
		}
	}
	for name, filter := range filters {
		funcs[name] = filter
	}

	tmpl, err := t.tmpl.Clone()
	if err != nil {
		return "", &RuntimeError{Engine: GoTemplateName, Err: err}
	}

	var out strings.Builder
	if err := tmpl.Option(missingKey).Funcs(funcs).Execute(&out, data); err != nil {
		return "", &RuntimeError{Engine: GoTemplateName, Err: err}
	}
	return out.String(), nil
}

func constant(value any) func() any {
	return func() any { return value }
}

func isFunc(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}
