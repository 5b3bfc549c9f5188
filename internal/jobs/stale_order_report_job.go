package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
)

// StaleOrderReportJob periodically reports orders that have been sitting in
// pending status for longer than the configured number of days. The report
// is a log line per stale order; nothing is mutated.
type StaleOrderReportJob struct {
	orders     ports.OrderRepository
	variant    order.Variant
	maxAgeDays int
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleOrderReportJob creates a job running on the given cron schedule
// (with a seconds field) that reports pending orders older than maxAgeDays.
func NewStaleOrderReportJob(
	orders ports.OrderRepository,
	variant order.Variant,
	schedule string,
	maxAgeDays int,
	logger *slog.Logger,
) *StaleOrderReportJob {
	return &StaleOrderReportJob{
		orders:     orders,
		variant:    variant,
		maxAgeDays: maxAgeDays,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_order_report_job"),
	}
}

// Start begins the report job on its configured schedule.
func (j *StaleOrderReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order report job started",
		"schedule", j.schedule, "maxAgeDays", j.maxAgeDays)
	return nil
}

// Stop stops the report job.
func (j *StaleOrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order report job stopped")
}

// Run executes a single report pass.
func (j *StaleOrderReportJob) Run(ctx context.Context) {
	pending, err := j.orders.ByStatus(ctx, order.Pending.Label(j.variant))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order report failed", "error", err)
		return
	}

	threshold := kernel.Today().AddDays(-j.maxAgeDays)
	stale := 0
	for _, pendingOrder := range pending {
		if !pendingOrder.OrderDate().Before(threshold) {
			continue
		}

		stale++
		j.logger.WarnContext(ctx, "Order pending for too long",
			"orderId", pendingOrder.ID(),
			"number", pendingOrder.Number(),
			"counterpartyName", pendingOrder.CounterpartyName(),
			"orderDate", pendingOrder.OrderDate().String(),
		)
	}

	j.logger.InfoContext(ctx, "Stale order report finished",
		"pending", len(pending), "stale", stale)
}
