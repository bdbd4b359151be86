package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/domain"
)

// DueSweepJobName is the name of the due-date sweep job
const DueSweepJobName = "due_sweep"

// DefaultSweepTimeout bounds a single sweep run
const DefaultSweepTimeout = 2 * time.Minute

// DueOrderSource lists pending orders approaching their due date.
// This interface allows the job to use the repository without wiring the
// whole service layer into the scheduler.
type DueOrderSource interface {
	ListDueBefore(ctx context.Context, deadline time.Time) ([]domain.ServiceOrder, error)
}

// DueSweepJob scans for pending service orders whose due date falls
// within the configured lookahead window and logs a summary so the
// operations team can chase them before they expire.
type DueSweepJob struct {
	orders  DueOrderSource
	logger  *zap.Logger
	days    int
	timeout time.Duration
}

// NewDueSweepJob creates a new due-date sweep job.
// days is the lookahead window; orders due within it are reported.
func NewDueSweepJob(orders DueOrderSource, logger *zap.Logger, days int, timeout time.Duration) *DueSweepJob {
	return &DueSweepJob{
		orders:  orders,
		logger:  logger,
		days:    days,
		timeout: timeout,
	}
}

// Run executes the sweep. This is called by the scheduler according to
// the cron expression.
func (j *DueSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	now := start.UTC()
	deadline := now.AddDate(0, 0, j.days)

	orders, err := j.orders.ListDueBefore(ctx, deadline)
	if err != nil {
		j.logger.Error("due-date sweep failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	overdue := 0
	for i := range orders {
		if orders[i].DueAt.Before(now) {
			overdue++
			j.logger.Warn("service order past due date",
				zap.String("order_id", orders[i].ID.String()),
				zap.String("order_number", orders[i].Number),
				zap.Time("due_at", orders[i].DueAt))
		}
	}

	j.logger.Info("due-date sweep completed",
		zap.Int("due_soon", len(orders)-overdue),
		zap.Int("overdue", overdue),
		zap.Int("window_days", j.days),
		zap.Duration("duration", time.Since(start)))
}

// RegisterDueSweepJob registers the due-date sweep with the scheduler.
// The cronExpr should be a valid cron expression with a seconds field
// (e.g., "0 0 6 * * *" for every day at 06:00).
func RegisterDueSweepJob(scheduler *Scheduler, orders DueOrderSource, logger *zap.Logger, cronExpr string, days int) error {
	job := NewDueSweepJob(orders, logger, days, DefaultSweepTimeout)
	return scheduler.AddJob(DueSweepJobName, cronExpr, job.Run)
}
