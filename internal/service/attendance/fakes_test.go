package attendance

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
)

type memAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
	names   map[string]string
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: map[string]attendance.Attendance{}, names: map[string]string{}}
}

func (r *memAttendanceRepo) hasDate(userID string, date time.Time, exceptID string) bool {
	for _, rec := range r.records {
		if rec.UserID == userID && rec.Date.Equal(date) && rec.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *memAttendanceRepo) CreateMany(ctx context.Context, records []attendance.Attendance) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := 0
	for _, rec := range records {
		if r.hasDate(rec.UserID, rec.Date, "") {
			continue
		}
		r.records[rec.ID] = rec
		created++
	}
	return created, nil
}

func (r *memAttendanceRepo) GetByID(ctx context.Context, userID string, id string) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (r *memAttendanceRepo) GetByIDAnyUser(ctx context.Context, id string) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (r *memAttendanceRepo) sorted(keep func(attendance.Attendance) bool) []attendance.Attendance {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if keep(rec) {
			if name, ok := r.names[rec.UserID]; ok {
				rec.UserName = &name
			}
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r *memAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(a attendance.Attendance) bool { return a.UserID == userID }), nil
}

func (r *memAttendanceRepo) ListLeaveRequests(ctx context.Context, filter attendance.LeaveRequestFilter) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(a attendance.Attendance) bool {
		if a.Status != attendance.StatusLeaveRequested {
			return false
		}
		if filter.Search == nil {
			return true
		}
		return strings.Contains(strings.ToLower(r.names[a.UserID]), strings.ToLower(*filter.Search))
	}), nil
}

func (r *memAttendanceRepo) ListCheckedInOn(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(a attendance.Attendance) bool { return a.Date.Equal(date) && a.DeviceID() != "" }), nil
}

func (r *memAttendanceRepo) Update(ctx context.Context, record attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	if r.hasDate(record.UserID, record.Date, record.ID) {
		return attendance.ErrDuplicateDate
	}
	record.UserName = nil
	r.records[record.ID] = record
	return nil
}

func (r *memAttendanceRepo) Delete(ctx context.Context, userID string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.records, id)
	return nil
}

type memParticipantRepo struct {
	participant.ParticipantRepository
	byID map[string]participant.Participant
}

func (r *memParticipantRepo) GetByID(ctx context.Context, id string) (participant.Participant, error) {
	p, ok := r.byID[id]
	if !ok {
		return participant.Participant{}, participant.ErrParticipantNotFound
	}
	return p, nil
}
