package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"supplyfinder/domain/supply"
	"supplyfinder/service"
)

const instrumentationName = "supplyfinder"

// Tracer opens one span per lookup phase.
type Tracer struct {
	tracer trace.Tracer
}

func NewTracer(tp trace.TracerProvider) *Tracer {
	return &Tracer{tracer: tp.Tracer(instrumentationName)}
}

func (t *Tracer) PhaseStarted(ctx context.Context, lookupID uint64, phase service.Phase) context.Context {
	ctx, _ = t.tracer.Start(ctx, "lookup."+phase.String(),
		trace.WithAttributes(attribute.Int64("lookup.id", int64(lookupID))),
	)
	return ctx
}

func (t *Tracer) PhaseFinished(ctx context.Context, _ uint64, _ service.Phase, err error) {
	span := trace.SpanFromContext(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (t *Tracer) ProviderFailed(ctx context.Context, _ uint64, p supply.ProviderDescriptor, err error) {
	trace.SpanFromContext(ctx).AddEvent("provider skipped", trace.WithAttributes(
		attribute.String("provider.address", p.Address),
		attribute.String("error", err.Error()),
	))
}

func (t *Tracer) LookupFinished(ctx context.Context, s service.Summary) {
	trace.SpanFromContext(ctx).AddEvent("lookup finished", trace.WithAttributes(
		attribute.Int64("lookup.id", int64(s.LookupID)),
		attribute.Int("item.id", int(s.ItemID)),
		attribute.Int64("quantity", s.Quantity),
		attribute.Int("providers.discovered", s.Discovered),
		attribute.Int("providers.selected", s.Selected),
		attribute.String("outcome", Outcome(s.Err)),
	))
}
