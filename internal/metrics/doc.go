// Package metrics provides run metrics for the nodedocs generator.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and does nothing; PrometheusRecorder forwards to a Prometheus
// registry, which WriteTextfile can dump in the node-exporter textfile
// collector format once a run finishes:
//
//	reg := prometheus.NewRegistry()
//	gen := site.NewGenerator(fs, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//	...
//	_ = metrics.WriteTextfile("nodedocs.prom", reg)
package metrics
