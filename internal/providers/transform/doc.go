// Package transform registers template transforms as pipeline tools.
//
// Tools:
//   - transform.template: text/template engine
//   - transform.handlebars: Handlebars engine
//
// Parameters are code (template source), content (fetched payload) and conf
// (opaque watch configuration). A successful result carries the rendered
// value, its detected content type and the engine name.
//
// Example Usage:
//
//	provider, err := transform.NewProvider(logger, metrics)
//	registry.Register(provider)
//	result, err := registry.Execute(ctx, "transform.template", params, appCtx)
package transform
