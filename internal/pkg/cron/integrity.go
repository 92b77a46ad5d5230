package cron

import (
	"context"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
)

const IntegritySweepJobName = "integrity_sweep"

type IntegrityJobs struct {
	integrityService integrity.IntegrityService
	interval         time.Duration
}

func NewIntegrityJobs(integrityService integrity.IntegrityService, interval time.Duration) *IntegrityJobs {
	return &IntegrityJobs{
		integrityService: integrityService,
		interval:         interval,
	}
}

// RegisterJobs adds the duplicate-device sweep. A run may take at most one
// interval so sweeps never overlap.
func (j *IntegrityJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob(Job{
		Name:     IntegritySweepJobName,
		Interval: j.interval,
		Timeout:  j.interval,
		Fn:       j.Sweep,
	})
}

func (j *IntegrityJobs) Sweep(ctx context.Context) error {
	return j.integrityService.Sweep(ctx)
}
