package dispatch

import (
	"context"

	"crm-notification/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Dispatcher = (*ObservabilityDispatcher)(nil)

// ObservabilityDispatcher 为派发添加链路追踪的装饰器
type ObservabilityDispatcher struct {
	dispatcher Dispatcher
	tracer     trace.Tracer
}

// NewObservabilityDispatcher 创建一个新的带有链路追踪的派发器
func NewObservabilityDispatcher(dispatcher Dispatcher) *ObservabilityDispatcher {
	return &ObservabilityDispatcher{
		dispatcher: dispatcher,
		tracer:     otel.Tracer("crm-notification/dispatch"),
	}
}

func (o *ObservabilityDispatcher) Dispatch(ctx context.Context, batch domain.DispatchBatch) (domain.DispatchSummary, error) {
	ctx, span := o.tracer.Start(ctx, "Dispatcher.Dispatch",
		trace.WithAttributes(
			attribute.Int("dispatch.candidates", len(batch.Customers)),
			attribute.Bool("dispatch.hasCTA", !batch.CTA.IsZero()),
		))
	defer span.End()

	summary, err := o.dispatcher.Dispatch(ctx, batch)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Int("dispatch.sent", summary.Sent),
			attribute.Int("dispatch.failed", summary.Failed),
			attribute.Int("dispatch.skipped", summary.Skipped),
			attribute.Bool("dispatch.success", summary.Success),
		)
	}

	return summary, err
}
