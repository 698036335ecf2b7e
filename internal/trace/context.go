package trace

import "context"

// Трассировщик и текущий span едут через context: команда кладёт их в
// cmd.Context(), driver и parser достают, чтобы вешать свои span-ы под
// родителя (driver -> parse_files -> parse_file -> parse).

type (
	tracerKey  struct{}
	spanCtxKey struct{}
)

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithTracer stores t in ctx; nil stores Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// SpanContext identifies the span new spans should hang under.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

// CurrentSpan returns the span stored in ctx; zero SpanID means "root".
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx != nil {
		if sc, ok := ctx.Value(spanCtxKey{}).(SpanContext); ok {
			return sc
		}
	}
	return SpanContext{}
}

// WithSpanContext makes sc the parent for spans begun under the returned ctx.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	return context.WithValue(ctx, spanCtxKey{}, sc)
}
