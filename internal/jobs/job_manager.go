package jobs

import (
	"fmt"
	"log/slog"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderReportJob *StaleOrderReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	orders ports.OrderRepository,
	variant order.Variant,
	reportSchedule string,
	reportMaxAgeDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderReportJob: NewStaleOrderReportJob(orders, variant, reportSchedule, reportMaxAgeDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderReportJob.Stop()
}
