package domain

import (
	"sort"
	"time"
)

// Group titles in display order
const (
	GroupToday     = "Today"
	GroupYesterday = "Yesterday"
	GroupLastWeek  = "Last 7 Days"
	GroupUndated   = "Undated"
)

// Group is a titled slice of entries for display
type Group struct {
	Title   string      `json:"title"`
	Entries []WordEntry `json:"entries"`
}

type monthBucket struct {
	key     int
	title   string
	entries []WordEntry
}

// GroupByRecency partitions entries by their calendar distance from now.
// Today, Yesterday and Last 7 Days list the newest entry first; month groups
// of older entries keep insertion order and are sorted most recent first.
// Empty groups are omitted.
func GroupByRecency(entries []WordEntry, now time.Time) []Group {
	loc := now.Location()
	var today, yesterday, lastWeek, undated []WordEntry
	months := map[int]*monthBucket{}

	for _, e := range entries {
		day, err := e.Day(loc)
		if err != nil {
			undated = append(undated, e)
			continue
		}

		switch diff := CalendarDays(day, now); {
		case diff <= 0:
			today = append(today, e)
		case diff == 1:
			yesterday = append(yesterday, e)
		case diff <= 7:
			lastWeek = append(lastWeek, e)
		default:
			key := day.Year()*12 + int(day.Month()) - 1
			b, ok := months[key]
			if !ok {
				b = &monthBucket{key: key, title: day.Format("January 2006")}
				months[key] = b
			}
			b.entries = append(b.entries, e)
		}
	}

	groups := []Group{}
	appendGroup := func(title string, list []WordEntry) {
		if len(list) > 0 {
			groups = append(groups, Group{Title: title, Entries: list})
		}
	}

	appendGroup(GroupToday, reversed(today))
	appendGroup(GroupYesterday, reversed(yesterday))
	appendGroup(GroupLastWeek, reversed(lastWeek))

	older := make([]*monthBucket, 0, len(months))
	for _, b := range months {
		older = append(older, b)
	}
	sort.Slice(older, func(i, j int) bool { return older[i].key > older[j].key })
	for _, b := range older {
		appendGroup(b.title, b.entries)
	}

	appendGroup(GroupUndated, undated)
	return groups
}

// CalendarDays returns how many calendar days lie between from and to
func CalendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func reversed(entries []WordEntry) []WordEntry {
	out := make([]WordEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
