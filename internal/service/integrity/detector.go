package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFetchTimeout   = 5 * time.Second
	DefaultMaxConcurrency = 8
)

// HistoryFetcher reads one participant's attendance history.
// attendance.AttendanceRepository satisfies it.
type HistoryFetcher interface {
	ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error)
}

type Options struct {
	// FetchTimeout bounds each history fetch on its own.
	FetchTimeout time.Duration
	// MaxConcurrency caps in-flight fetches.
	MaxConcurrency int
}

func (o Options) withDefaults() Options {
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = DefaultFetchTimeout
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = DefaultMaxConcurrency
	}
	return o
}

// Result lists matches and unchecked participants in roster order.
type Result struct {
	Matches   []integrity.Match
	Unchecked []integrity.Match
	Checked   int
}

// Names returns the display names of the matches.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		names = append(names, m.Name)
	}
	return names
}

type outcome int

const (
	outcomeNoMatch outcome = iota
	outcomeMatch
	outcomeFailed
)

// DetectDuplicates reports which roster members, other than inspectedID,
// have any attendance record whose Android ID equals targetDeviceID exactly.
// A blank target returns an empty result without touching the fetcher.
//
// A failed or timed out fetch is logged and reported as unchecked, never as
// a match. If ctx ends before every fetch settles the partial result is
// discarded and ctx.Err() is returned.
func DetectDuplicates(ctx context.Context, fetcher HistoryFetcher, targetDeviceID string, inspectedID string, roster []participant.Participant, opts Options) (Result, error) {
	if strings.TrimSpace(targetDeviceID) == "" {
		return Result{}, nil
	}
	opts = opts.withDefaults()

	// one slot per roster entry, so the merge below keeps roster order
	outcomes := make([]outcome, len(roster))
	skip := make([]bool, len(roster))

	// errgroup.Group without WithContext: a failed fetch must not cancel the others
	var g errgroup.Group
	g.SetLimit(opts.MaxConcurrency)

	for i, p := range roster {
		if p.ID == inspectedID {
			skip[i] = true
			continue
		}
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, opts.FetchTimeout)
			defer cancel()

			history, err := fetcher.ListByUser(fetchCtx, p.ID)
			if err != nil {
				slog.Warn("duplicate check: history fetch failed",
					"participant_id", p.ID,
					"participant_name", p.Name,
					"error", err,
				)
				outcomes[i] = outcomeFailed
				return nil
			}

			for _, record := range history {
				if record.DeviceID() == targetDeviceID {
					outcomes[i] = outcomeMatch
					return nil
				}
			}
			outcomes[i] = outcomeNoMatch
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("duplicate check aborted: %w", err)
	}

	result := Result{
		Matches:   []integrity.Match{},
		Unchecked: []integrity.Match{},
	}
	for i, p := range roster {
		if skip[i] {
			continue
		}
		m := integrity.Match{UserID: p.ID, Name: p.Name}
		switch outcomes[i] {
		case outcomeMatch:
			result.Matches = append(result.Matches, m)
			result.Checked++
		case outcomeFailed:
			result.Unchecked = append(result.Unchecked, m)
		default:
			result.Checked++
		}
	}
	return result, nil
}
