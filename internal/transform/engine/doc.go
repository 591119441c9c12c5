// Package engine defines the template engine capability used by transforms
// and its two implementations: text/template ("gotemplate") and Handlebars
// ("handlebars").
//
// Compile fails with *SyntaxError and Render with *RuntimeError. Errors
// returned by var or filter functions stay reachable through errors.As.
package engine
