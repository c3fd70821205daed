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


// Package dcallotel instruments dcall dispatch with OpenTelemetry. It
// implements dispatch.Hook to add client spans and metrics to every call
// that reaches a transport.
//
// Usage:
//
//	c, err := dispatch.New(
//		dispatch.WithCatalog(cat),
//		dispatch.WithHook(dcallotel.NewHook(dcallotel.DefaultConfig())),
//	)
package dcallotel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/dispatch"
	"dirpx.dev/dcall/mapper"
)

const instrumentationName = "dirpx.dev/dcall"

// Config configures the hook.
type Config struct {
	// TracerProvider supplies the tracer. Defaults to otel.GetTracerProvider().
	TracerProvider trace.TracerProvider
	// MeterProvider supplies the meter. Defaults to otel.GetMeterProvider().
	MeterProvider metric.MeterProvider
	// Propagator injects trace context into outgoing metadata. Defaults to
	// otel.GetTextMapPropagator().
	Propagator propagation.TextMapPropagator
	// EnableTracing enables span creation. Default true.
	EnableTracing bool
	// EnableMetrics enables counter and histogram recording. Default true.
	EnableMetrics bool
	// RecordErrors calls RecordError on the span for failed calls. Default
	// true.
	RecordErrors bool
	// CustomAttributes are added to every span.
	CustomAttributes []attribute.KeyValue
}

// DefaultConfig returns a Config with tracing, metrics and error recording
// enabled. Providers are resolved from the global SDK by NewHook.
func DefaultConfig() Config {
	return Config{
		EnableTracing: true,
		EnableMetrics: true,
		RecordErrors:  true,
	}
}

// Hook implements dispatch.Hook.
type Hook struct {
	cfg      Config
	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

var _ dispatch.Hook = (*Hook)(nil)

// NewHook builds a hook from cfg.
func NewHook(cfg Config) *Hook {
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}
	if cfg.Propagator == nil {
		cfg.Propagator = otel.GetTextMapPropagator()
	}

	h := &Hook{
		cfg:    cfg,
		tracer: cfg.TracerProvider.Tracer(instrumentationName),
	}
	if cfg.EnableMetrics {
		meter := cfg.MeterProvider.Meter(instrumentationName)
		h.requests, _ = meter.Int64Counter("dcall.client.requests",
			metric.WithUnit("{request}"),
			metric.WithDescription("Number of dispatched calls"),
		)
		h.duration, _ = meter.Float64Histogram("dcall.client.duration",
			metric.WithUnit("s"),
			metric.WithDescription("Duration of dispatched calls"),
		)
	}
	return h
}

// spanToken is the HookToken returned by OnDispatchStart.
type spanToken struct {
	span      trace.Span
	startTime time.Time
}

// OnDispatchStart starts a client span and injects its context into the
// outgoing metadata.
func (h *Hook) OnDispatchStart(ctx context.Context, info dispatch.DispatchInfo) (context.Context, dispatch.HookToken) {
	if !h.cfg.EnableTracing {
		return ctx, &spanToken{startTime: time.Now()}
	}

	attrs := []attribute.KeyValue{
		attribute.String("rpc.system", "dcall"),
		attribute.String("dcall.transport", info.Transport.String()),
		attribute.String("dcall.group", info.Group),
		attribute.String("dcall.action", info.Action),
	}
	if info.Method != "" {
		attrs = append(attrs,
			attribute.String("http.request.method", info.Method),
			attribute.String("url.full", info.Address),
		)
	}
	if info.RequestID != "" {
		attrs = append(attrs, attribute.String("dcall.request_id", info.RequestID))
	}
	attrs = append(attrs, h.cfg.CustomAttributes...)

	ctx, span := h.tracer.Start(ctx, SpanName(info),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	if h.cfg.Propagator != nil && info.Metadata != nil {
		h.cfg.Propagator.Inject(ctx, propagation.MapCarrier(info.Metadata))
	}
	return ctx, &spanToken{span: span, startTime: time.Now()}
}

// OnDispatchEnd records metrics, sets the span status and ends the span.
func (h *Hook) OnDispatchEnd(ctx context.Context, token dispatch.HookToken, info dispatch.DispatchInfo, stats *dispatch.CallStatistics, err error) {
	st, ok := token.(*spanToken)
	if !ok {
		return
	}
	duration := time.Since(st.startTime)

	outcome := "ok"
	code := ""
	if err != nil {
		outcome = "error"
		code = string(dcall.KindOf(err))
	}

	if h.cfg.EnableMetrics {
		kv := []attribute.KeyValue{
			attribute.String("dcall.transport", info.Transport.String()),
			attribute.String("dcall.operation", info.Group+"."+info.Action),
			attribute.String("status", outcome),
		}
		if code != "" {
			kv = append(kv, attribute.String("dcall.error_code", code))
		}
		attrs := metric.WithAttributes(kv...)
		if h.requests != nil {
			h.requests.Add(ctx, 1, attrs)
		}
		if h.duration != nil {
			h.duration.Record(ctx, duration.Seconds(), attrs)
		}
	}

	if st.span == nil || !st.span.IsRecording() {
		return
	}
	if stats != nil {
		st.span.SetAttributes(
			attribute.Int64("dcall.request_bytes", stats.RequestBytes),
			attribute.Int64("dcall.response_bytes", stats.ResponseBytes),
		)
		if stats.Status != 0 {
			st.span.SetAttributes(attribute.Int("http.response.status_code", stats.Status))
		}
	}
	if err != nil {
		st.span.SetStatus(codes.Error, err.Error())
		if h.cfg.RecordErrors {
			st.span.RecordError(err)
		}
		st.span.SetAttributes(
			attribute.String("dcall.error_code", code),
			attribute.Bool("dcall.retryable", mapper.IsRetryable(dcall.KindOf(err))),
		)
	} else {
		st.span.SetStatus(codes.Ok, "")
	}
	st.span.End()
}

// SpanName returns "dcall/<group>.<action>".
func SpanName(info dispatch.DispatchInfo) string {
	return fmt.Sprintf("dcall/%s.%s", info.Group, info.Action)
}
