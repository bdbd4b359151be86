package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/jobs"
)

type stubOrderSource struct {
	deadline time.Time
	orders   []domain.ServiceOrder
	err      error
}

func (s *stubOrderSource) ListDueBefore(ctx context.Context, deadline time.Time) ([]domain.ServiceOrder, error) {
	s.deadline = deadline
	return s.orders, s.err
}

func TestDueSweepJobRun(t *testing.T) {
	now := time.Now().UTC()
	source := &stubOrderSource{
		orders: []domain.ServiceOrder{
			{Number: "OS-1", DueAt: now.Add(-48 * time.Hour)},
			{Number: "OS-2", DueAt: now.Add(72 * time.Hour)},
		},
	}

	job := jobs.NewDueSweepJob(source, zap.NewNop(), 7, time.Minute)
	job.Run()

	wantDeadline := now.AddDate(0, 0, 7)
	assert.WithinDuration(t, wantDeadline, source.deadline, 5*time.Second)
}

func TestDueSweepJobRunError(t *testing.T) {
	source := &stubOrderSource{err: errors.New("db down")}

	job := jobs.NewDueSweepJob(source, zap.NewNop(), 7, time.Minute)
	job.Run()
}

func TestRegisterDueSweepJob(t *testing.T) {
	scheduler := jobs.NewScheduler(zap.NewNop())

	err := jobs.RegisterDueSweepJob(scheduler, &stubOrderSource{}, zap.NewNop(), "0 0 6 * * *", 7)
	require.NoError(t, err)
	assert.Contains(t, scheduler.GetJobNames(), jobs.DueSweepJobName)

	err = jobs.RegisterDueSweepJob(scheduler, &stubOrderSource{}, zap.NewNop(), "0 0 6 * * *", 7)
	assert.Error(t, err)
}
