// Package metrics provides run statistics over rain ticks. Every metric
// implements sim.Metric; Series implements sim.Observer.
package metrics
