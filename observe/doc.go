// Package observe provides wrr.Observer implementations that turn allocation
// trace events into structured logs (logrus) and Prometheus metrics, plus a
// Tee to fan events out to several observers.
//
// Nothing here influences an allocation; observers only watch.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	obs := observe.Tee{
//	  observe.NewLogger(log.WithField("run", runID)),
//	  observe.NewMetrics(reg),
//	}
//	records, err := wrr.Allocate(rights, vals, y, wrr.WithObserver(obs))
package observe
