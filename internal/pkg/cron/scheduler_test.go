package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIntegrityService struct {
	integrity.IntegrityService
	sweeps atomic.Int32
	err    error
}

func (s *countingIntegrityService) Sweep(ctx context.Context) error {
	s.sweeps.Add(1)
	return s.err
}

func TestScheduler_AddJobRejectsInvalid(t *testing.T) {
	s := NewScheduler()

	assert.Error(t, s.AddJob(Job{Interval: time.Second, Fn: func(context.Context) error { return nil }}))
	assert.Error(t, s.AddJob(Job{Name: "no-fn", Interval: time.Second}))
	assert.Error(t, s.AddJob(Job{Name: "zero", Fn: func(context.Context) error { return nil }}))
}

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	require.NoError(t, s.AddJob(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	}))

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop")
}

func TestScheduler_JobTimeout(t *testing.T) {
	s := NewScheduler()
	var deadline atomic.Bool
	require.NoError(t, s.AddJob(Job{
		Name:     "slow",
		Interval: time.Hour,
		Timeout:  20 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			<-ctx.Done()
			deadline.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
			return ctx.Err()
		},
	}))

	s.RunOnce(context.Background())
	assert.True(t, deadline.Load())
}

func TestIntegrityJobs_Register(t *testing.T) {
	svc := &countingIntegrityService{err: errors.New("roster down")}
	s := NewScheduler()

	require.NoError(t, NewIntegrityJobs(svc, time.Hour).RegisterJobs(s))
	require.Len(t, s.jobs, 1)
	assert.Equal(t, IntegritySweepJobName, s.jobs[0].Name)
	assert.Equal(t, time.Hour, s.jobs[0].Timeout)

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), svc.sweeps.Load())
}
