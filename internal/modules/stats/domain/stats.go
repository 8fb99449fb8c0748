package domain

import "time"

// Week is the sliding window used for the weekly rollup.
const Week = 7 * 24 * time.Hour

// Entry is the slice of a study session the aggregates need.
type Entry struct {
	Subject   string
	Minutes   int
	Timestamp time.Time
}

type SubjectMinutes struct {
	Subject string
	Minutes int
}

func TotalMinutes(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Minutes
	}
	return total
}

// Last7DaysMinutes sums entries whose timestamp is at or after now-7*24h.
func Last7DaysMinutes(entries []Entry, now time.Time) int {
	since := now.Add(-Week)
	total := 0
	for _, e := range entries {
		if e.Timestamp.Before(since) {
			continue
		}
		total += e.Minutes
	}
	return total
}

// MinutesBySubject groups minutes per subject, ordered by first appearance.
func MinutesBySubject(entries []Entry) []SubjectMinutes {
	index := make(map[string]int, len(entries))
	out := make([]SubjectMinutes, 0)
	for _, e := range entries {
		i, ok := index[e.Subject]
		if !ok {
			i = len(out)
			index[e.Subject] = i
			out = append(out, SubjectMinutes{Subject: e.Subject})
		}
		out[i].Minutes += e.Minutes
	}
	return out
}

// TopSubject returns the subject with the most minutes. Ties go to the
// subject that appears first.
func TopSubject(entries []Entry) (string, bool) {
	grouped := MinutesBySubject(entries)
	if len(grouped) == 0 {
		return "", false
	}
	best := grouped[0]
	for _, g := range grouped[1:] {
		if g.Minutes > best.Minutes {
			best = g
		}
	}
	return best.Subject, true
}

// Progress is last7/goal clamped to [0, 1]; zero when goal is not positive.
func Progress(last7 int, weeklyGoal int) float64 {
	if weeklyGoal <= 0 {
		return 0
	}
	p := float64(last7) / float64(weeklyGoal)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
