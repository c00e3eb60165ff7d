package features

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// RollingRow holds the backward-looking form aggregates for one team event,
// one FormAggregate per configured window size. Row and Side identify the
// source match row the aggregates belong to.
type RollingRow struct {
	Row  int
	Side models.Side
	Team string
	Date time.Time
	Form map[int]models.FormAggregate
}

// windowState is a fixed-capacity FIFO over one team's prior events for one
// window size. Running sums make the average O(1) per event.
type windowState struct {
	capacity int
	entries  [][3]int // goals for, goals against, points
	head     int
	count    int
	sumGF    int
	sumGA    int
	sumPts   int
}

func newWindowState(capacity int) *windowState {
	return &windowState{
		capacity: capacity,
		entries:  make([][3]int, capacity),
	}
}

// push adds an event, evicting the oldest entry once the buffer is full.
func (w *windowState) push(gf, ga, pts int) {
	if w.count == w.capacity {
		old := w.entries[w.head]
		w.sumGF -= old[0]
		w.sumGA -= old[1]
		w.sumPts -= old[2]
	} else {
		w.count++
	}
	w.entries[w.head] = [3]int{gf, ga, pts}
	w.head = (w.head + 1) % w.capacity
	w.sumGF += gf
	w.sumGA += ga
	w.sumPts += pts
}

// aggregate returns the current averages, or invalid NullDecimals when the
// buffer is empty (a team's first-ever event).
func (w *windowState) aggregate() models.FormAggregate {
	if w.count == 0 {
		return models.FormAggregate{}
	}
	n := decimal.NewFromInt(int64(w.count))
	return models.FormAggregate{
		GoalsForAvg:     decimal.NewNullDecimal(decimal.NewFromInt(int64(w.sumGF)).Div(n)),
		GoalsAgainstAvg: decimal.NewNullDecimal(decimal.NewFromInt(int64(w.sumGA)).Div(n)),
		PointsAvg:       decimal.NewNullDecimal(decimal.NewFromInt(int64(w.sumPts)).Div(n)),
	}
}

// ComputeRollingFeatures computes per-event backward-looking form aggregates
// for every configured window size in a single pass.
//
// Events are partitioned by team and stably sorted by date, ties keeping the
// source row order, so recomputation over identical input is byte-identical.
// For each event the aggregates are read from state holding only strictly
// earlier events, and the event is pushed afterwards; events sharing a date
// are all read before any of them is pushed, so same-date events never see
// each other. Rows are returned ordered by source row, home side first.
func ComputeRollingFeatures(matches []models.MatchRecord, windows []int) ([]RollingRow, error) {
	if len(windows) == 0 {
		return nil, fmt.Errorf("no window sizes configured")
	}
	for _, w := range windows {
		if w <= 0 {
			return nil, fmt.Errorf("invalid window size %d", w)
		}
	}
	if err := ValidateMatches(matches); err != nil {
		return nil, err
	}

	events, err := Project(matches)
	if err != nil {
		return nil, err
	}

	// Partition by team, preserving projection order (source row order).
	byTeam := make(map[string][]models.TeamMatchEvent)
	for _, ev := range events {
		byTeam[ev.Team] = append(byTeam[ev.Team], ev)
	}

	rows := make([]RollingRow, 0, len(events))
	for _, teamEvents := range byTeam {
		sort.SliceStable(teamEvents, func(i, j int) bool {
			return teamEvents[i].Date.Before(teamEvents[j].Date)
		})

		states := make(map[int]*windowState, len(windows))
		for _, w := range windows {
			states[w] = newWindowState(w)
		}

		// Walk the team's timeline one date at a time: emit aggregates for
		// every event on the date, then push them all.
		for i := 0; i < len(teamEvents); {
			j := i
			for j < len(teamEvents) && teamEvents[j].Date.Equal(teamEvents[i].Date) {
				j++
			}
			for k := i; k < j; k++ {
				ev := teamEvents[k]
				form := make(map[int]models.FormAggregate, len(windows))
				for _, w := range windows {
					form[w] = states[w].aggregate()
				}
				rows = append(rows, RollingRow{
					Row:  ev.Row,
					Side: ev.Side,
					Team: ev.Team,
					Date: ev.Date,
					Form: form,
				})
			}
			for k := i; k < j; k++ {
				ev := teamEvents[k]
				for _, w := range windows {
					states[w].push(ev.GoalsFor, ev.GoalsAgainst, ev.Points)
				}
			}
			i = j
		}
	}

	// Map iteration order is random; restore source order for determinism.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Row != rows[j].Row {
			return rows[i].Row < rows[j].Row
		}
		return rows[i].Side == models.SideHome
	})

	return rows, nil
}
