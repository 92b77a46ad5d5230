package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/utils"
	"golang.org/x/sync/singleflight"
)

type IntegrityServiceImpl struct {
	attendance.AttendanceRepository
	participant.ParticipantRepository
	opts     Options
	location *time.Location
	now      func() time.Time
}

// CheckDuplicates implements integrity.IntegrityService.
func (s *IntegrityServiceImpl) CheckDuplicates(ctx context.Context, userID string, attendanceID string) (integrity.DuplicateCheckResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, userID, attendanceID)
	if err != nil {
		return integrity.DuplicateCheckResponse{}, err
	}

	resp := integrity.DuplicateCheckResponse{
		AttendanceID: record.ID,
		UserID:       record.UserID,
		Participants: []string{},
		Matches:      []integrity.Match{},
		Unchecked:    []integrity.Match{},
	}

	if !record.HasDevice() {
		return resp, nil
	}
	device := record.DeviceID()
	resp.AndroidID = &device

	roster, err := s.ParticipantRepository.ListActive(ctx, s.now().In(s.location))
	if err != nil {
		slog.Error("duplicate check: failed to load roster", "error", err)
		return integrity.DuplicateCheckResponse{}, fmt.Errorf("%w: %v", integrity.ErrDuplicateCheckUnavailable, err)
	}

	result, err := DetectDuplicates(ctx, s.AttendanceRepository, device, record.UserID, roster, s.opts)
	if err != nil {
		return integrity.DuplicateCheckResponse{}, err
	}

	resp.Participants = result.Names()
	resp.Matches = result.Matches
	resp.Unchecked = result.Unchecked
	resp.Checked = result.Checked
	return resp, nil
}

// Sweep implements integrity.IntegrityService.
func (s *IntegrityServiceImpl) Sweep(ctx context.Context) error {
	today := s.now().In(s.location)
	date := utils.TruncateToDate(today)

	records, err := s.AttendanceRepository.ListCheckedInOn(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list today's check-ins: %w", err)
	}
	if len(records) == 0 {
		slog.Debug("integrity sweep: no device check-ins today", "date", date.Format("2006-01-02"))
		return nil
	}

	roster, err := s.ParticipantRepository.ListActive(ctx, today)
	if err != nil {
		return fmt.Errorf("%w: %v", integrity.ErrDuplicateCheckUnavailable, err)
	}

	// every record scans the same roster, so each history is read once per sweep
	fetcher := newCachingFetcher(s.AttendanceRepository)

	suspects := 0
	for _, record := range records {
		result, err := DetectDuplicates(ctx, fetcher, record.DeviceID(), record.UserID, roster, s.opts)
		if err != nil {
			return err
		}
		if len(result.Matches) == 0 {
			continue
		}
		suspects++
		slog.Warn("integrity sweep: device shared across participants",
			"attendance_id", record.ID,
			"user_id", record.UserID,
			"android_id", record.DeviceID(),
			"participants", result.Names(),
			"unchecked", len(result.Unchecked),
		)
	}

	slog.Info("integrity sweep completed",
		"date", date.Format("2006-01-02"),
		"records", len(records),
		"suspects", suspects,
	)
	return nil
}

// cachingFetcher memoizes successful history reads and collapses
// concurrent reads of the same participant into one query.
type cachingFetcher struct {
	next  HistoryFetcher
	group singleflight.Group
	mu    sync.RWMutex
	cache map[string][]attendance.Attendance
}

func newCachingFetcher(next HistoryFetcher) *cachingFetcher {
	return &cachingFetcher{next: next, cache: make(map[string][]attendance.Attendance)}
}

func (c *cachingFetcher) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	c.mu.RLock()
	history, ok := c.cache[userID]
	c.mu.RUnlock()
	if ok {
		return history, nil
	}

	v, err, _ := c.group.Do(userID, func() (interface{}, error) {
		history, err := c.next.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[userID] = history
		c.mu.Unlock()
		return history, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]attendance.Attendance), nil
}

func NewIntegrityService(
	attendanceRepository attendance.AttendanceRepository,
	participantRepository participant.ParticipantRepository,
	opts Options,
	location *time.Location,
) integrity.IntegrityService {
	if location == nil {
		location = time.UTC
	}
	return &IntegrityServiceImpl{
		AttendanceRepository:  attendanceRepository,
		ParticipantRepository: participantRepository,
		opts:                  opts,
		location:              location,
		now:                   time.Now,
	}
}
