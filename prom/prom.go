/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package dcallprom exposes dispatch metrics to Prometheus through a
// dispatch.Hook.
//
//	m, err := dcallprom.New(prometheus.DefaultRegisterer, "myapp")
//	client, err := dispatch.New(dispatch.WithHook(m), ...)
package dcallprom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/dispatch"
)

// CodeOK is the code label of successful calls. Failed calls carry their
// kind, e.g. "RATE_LIMITED".
const CodeOK = "OK"

// Metrics records one counter, one histogram, two byte summaries and an
// in-flight gauge per operation. It implements dispatch.Hook.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	requestSize  *prometheus.SummaryVec
	responseSize *prometheus.SummaryVec
	inFlight     *prometheus.GaugeVec
}

var _ dispatch.Hook = (*Metrics)(nil)

// New registers the collectors on reg under namespace. A nil reg creates
// unregistered collectors.
func New(reg prometheus.Registerer, namespace string) (m *Metrics, err error) {
	// promauto panics on registration conflicts.
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()

	f := promauto.With(reg)
	op := []string{"transport", "operation"}
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dcall",
			Name:      "requests_total",
			Help:      "Total number of dispatched calls by outcome code.",
		}, append(op, "code")),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dcall",
			Name:      "request_duration_seconds",
			Help:      "Duration of dispatched calls in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, op),
		requestSize: f.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "dcall",
			Name:       "request_size_bytes",
			Help:       "Size of encoded request bodies in bytes.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, op),
		responseSize: f.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "dcall",
			Name:       "response_size_bytes",
			Help:       "Size of response bodies in bytes.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, op),
		inFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dcall",
			Name:      "in_flight",
			Help:      "Calls sent and not yet answered.",
		}, op),
	}, nil
}

type token struct {
	start time.Time
}

// OnDispatchStart implements dispatch.Hook.
func (m *Metrics) OnDispatchStart(ctx context.Context, info dispatch.DispatchInfo) (context.Context, dispatch.HookToken) {
	m.inFlight.WithLabelValues(labels(info)...).Inc()
	return ctx, token{start: time.Now()}
}

// OnDispatchEnd implements dispatch.Hook.
func (m *Metrics) OnDispatchEnd(_ context.Context, tok dispatch.HookToken, info dispatch.DispatchInfo, stats *dispatch.CallStatistics, err error) {
	t, ok := tok.(token)
	if !ok {
		return
	}
	lv := labels(info)
	m.inFlight.WithLabelValues(lv...).Dec()
	m.duration.WithLabelValues(lv...).Observe(time.Since(t.start).Seconds())

	code := CodeOK
	if err != nil {
		code = string(dcall.KindOf(err))
	}
	m.requests.WithLabelValues(append(lv, code)...).Inc()

	if stats == nil {
		return
	}
	if stats.RequestBytes > 0 {
		m.requestSize.WithLabelValues(lv...).Observe(float64(stats.RequestBytes))
	}
	if stats.ResponseBytes > 0 {
		m.responseSize.WithLabelValues(lv...).Observe(float64(stats.ResponseBytes))
	}
}

func labels(info dispatch.DispatchInfo) []string {
	return []string{info.Transport.String(), info.Group + "." + info.Action}
}
