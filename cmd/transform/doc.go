// Command transform renders templates against fetched content.
//
// Usage:
//
//	transform render -e '{{ css "h1" | text }}' -c page.html
//	transform render -t price.tmpl -c page.html.gz --conf watch.yaml --engine handlebars
//	transform engines
//
// Configuration comes from the environment (LOG_LEVEL, TRANSFORM_ENGINE,
// TRANSFORM_MAX_CONTENT_BYTES, TRANSFORM_MAX_STACK_MB,
// TRANSFORM_DETECT_CHARSET, METRICS_TEXTFILE).
//
// Exit status: 0 success, 1 template failure, 2 fault.
package main
