package services

import (
	"context"
	"fmt"
	"sort"

	"conferenceplanner/internal/domain"
)

// ScheduleSorter orders scheduled events chronologically and groups them
// by calendar day.
type ScheduleSorter struct {
	schedule domain.ScheduleService
}

// NewScheduleSorter creates a ScheduleSorter reading through the given
// schedule.
func NewScheduleSorter(schedule domain.ScheduleService) *ScheduleSorter {
	return &ScheduleSorter{schedule: schedule}
}

// SortByStart returns eventNames ordered by each event's resolved start
// time. The sort is stable: events starting at the same instant keep their
// input order.
func (s *ScheduleSorter) SortByStart(ctx context.Context, eventNames []string) ([]string, error) {
	type entry struct {
		name     string
		interval domain.Interval
	}

	entries := make([]entry, 0, len(eventNames))
	for _, name := range eventNames {
		interval, err := s.schedule.EventInterval(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve interval for %q: %w", name, err)
		}
		entries = append(entries, entry{name: name, interval: interval})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].interval.Before(entries[j].interval)
	})

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.name)
	}
	return out, nil
}

// GroupByDay buckets a start-ordered list of event names by the calendar
// day of each event's start, preserving within-day order. The returned
// day keys are in chronological order.
func (s *ScheduleSorter) GroupByDay(ctx context.Context, sortedNames []string) (map[domain.Day][]string, []domain.Day, error) {
	byDay := make(map[domain.Day][]string)
	days := []domain.Day{}

	for _, name := range sortedNames {
		interval, err := s.schedule.EventInterval(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve interval for %q: %w", name, err)
		}
		day := domain.DayOf(interval.Start)
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], name)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return byDay, days, nil
}
