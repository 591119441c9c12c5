/*
Package monitoring provides Prometheus metrics for template transforms.

# Overview

Metrics live on a private registry per Metrics value so several transformers
(and tests) can coexist in one process.

# Metrics

  - transform_renders_total{engine,outcome}: renders by outcome
    (success, failure, fault)
  - transform_render_duration_seconds{engine}: render latency
  - transform_view_parses_total{view}: lazy view parses (json, css, xpath)

# Usage

	metrics := monitoring.NewMetrics()
	t := transform.New(eng, transform.WithMetrics(metrics))

	// CLI runs have no scrape endpoint; write a textfile instead
	_ = metrics.WriteTextfile("/var/lib/node_exporter/transform.prom")
*/
package monitoring
