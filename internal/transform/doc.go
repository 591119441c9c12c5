// Package transform renders user templates against lazy views of fetched content.
//
// This package is organized into specialized modules:
//   - json: structured-data view, parsed on first lookup
//   - dom: CSS selector view, parsed on first query, run under a stack guard
//   - tree: XPath view with pretty-printed fragments
//   - text: visible-text extraction filter
//   - filters: the filter table exposed to templates
//   - transform: the orchestrator mapping render outcomes to a Result
//
// Built on specialized libraries:
//   - goquery and cascadia: CSS selection
//   - htmlquery and xpath: XPath support for HTML
//   - sonic: JSON decoding and encoding
//   - bluemonday: HTML sanitization
//   - chardet: Character encoding detection
//
// Template symbols: conf, content, lines, json, css, xpath and the text
// filter. Nothing is parsed unless the template calls json, css or xpath,
// and each view parses at most once.
//
// Template syntax and runtime errors produce a failed Result. Malformed
// content, bad selectors and failed text extraction are returned as errors
// (*ViewError, *ExtractionError) so callers cannot mistake them for an empty
// render.
//
// Example Usage:
//
//	t := transform.New(engine.NewGoTemplate(), transform.WithLogger(logger))
//	result, err := t.Transform(`{{ css "h1" | text }}`, page, conf)
package transform
