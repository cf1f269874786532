// Package prometheus renders goSession engine counters in the Prometheus
// text exposition format, without taking a dependency on the Prometheus
// client library. Mount [Exporter.Handler] wherever the scraper looks.
package prometheus
