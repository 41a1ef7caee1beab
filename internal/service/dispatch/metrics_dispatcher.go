package dispatch

import (
	"context"
	"time"

	"crm-notification/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsMaxAge        = 5 * time.Minute
	metricsP50Percentile = 0.5
	metricsP50Error      = 0.05
	metricsP90Percentile = 0.9
	metricsP90Error      = 0.01
	metricsP99Percentile = 0.99
	metricsP99Error      = 0.001
)

var _ Dispatcher = (*MetricsDispatcher)(nil)

// MetricsDispatcher 为派发添加指标收集的装饰器
type MetricsDispatcher struct {
	dispatcher              Dispatcher
	dispatchDurationSummary *prometheus.SummaryVec
	dispatchCounter         prometheus.Counter
	outcomeCounter          *prometheus.CounterVec
}

// NewMetricsDispatcher 创建一个新的带有指标收集的派发器
func NewMetricsDispatcher(dispatcher Dispatcher) *MetricsDispatcher {
	dispatchDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "notification_dispatch_duration_seconds",
			Help:       "一次派发调用的耗时统计（秒）",
			Objectives: map[float64]float64{metricsP50Percentile: metricsP50Error, metricsP90Percentile: metricsP90Error, metricsP99Percentile: metricsP99Error},
			MaxAge:     metricsMaxAge,
		},
		[]string{"success"},
	)

	dispatchCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_dispatch_total",
			Help: "派发调用总数",
		},
	)

	outcomeCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_outcome_total",
			Help: "按渠道和状态的发送结果统计",
		},
		[]string{"channel", "status"},
	)

	prometheus.MustRegister(dispatchDurationSummary, dispatchCounter, outcomeCounter)

	return &MetricsDispatcher{
		dispatcher:              dispatcher,
		dispatchDurationSummary: dispatchDurationSummary,
		dispatchCounter:         dispatchCounter,
		outcomeCounter:          outcomeCounter,
	}
}

func (m *MetricsDispatcher) Dispatch(ctx context.Context, batch domain.DispatchBatch) (domain.DispatchSummary, error) {
	startTime := time.Now()
	m.dispatchCounter.Inc()

	summary, err := m.dispatcher.Dispatch(ctx, batch)

	duration := time.Since(startTime).Seconds()
	if err != nil {
		m.dispatchDurationSummary.WithLabelValues("false").Observe(duration)
		return summary, err
	}

	for ch, counter := range summary.Channels {
		if counter.Sent > 0 {
			m.outcomeCounter.WithLabelValues(ch.String(), domain.OutcomeStatusSent.String()).Add(float64(counter.Sent))
		}
		if counter.Failed > 0 {
			m.outcomeCounter.WithLabelValues(ch.String(), domain.OutcomeStatusFailed.String()).Add(float64(counter.Failed))
		}
		if counter.Skipped > 0 {
			m.outcomeCounter.WithLabelValues(ch.String(), domain.OutcomeStatusSkipped.String()).Add(float64(counter.Skipped))
		}
	}

	success := "false"
	if summary.Success {
		success = "true"
	}
	m.dispatchDurationSummary.WithLabelValues(success).Observe(duration)
	return summary, nil
}
