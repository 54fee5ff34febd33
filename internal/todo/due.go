package todo

import "time"

// DefaultDateFormat renders dates the way a US-English locale does (6/8/2024).
const DefaultDateFormat = "1/2/2006"

// Due labels.
const (
	LabelToday    = "Today"
	LabelTomorrow = "Tomorrow"
)

// Bucket groups due dates relative to today.
type Bucket int

const (
	BucketOverdue Bucket = iota
	BucketToday
	BucketTomorrow
	BucketLater
)

// DueInfo is everything the list needs to render a due date.
type DueInfo struct {
	Label  string
	Bucket Bucket
	// Overdue is set only for incomplete tasks.
	Overdue bool
}

// Classifier maps due timestamps to display labels. Day boundaries are taken
// in the location of the "now" passed to each call.
type Classifier struct {
	// DateFormat is the time layout used for dates that are neither today
	// nor tomorrow. Empty means DefaultDateFormat.
	DateFormat string
}

// Label returns "Today", "Tomorrow" or the formatted calendar date of due.
func (c Classifier) Label(due, now time.Time) string {
	switch c.bucket(due, now) {
	case BucketToday:
		return LabelToday
	case BucketTomorrow:
		return LabelTomorrow
	}
	layout := c.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	return due.In(now.Location()).Format(layout)
}

// Describe classifies the due date of t.
func (c Classifier) Describe(t Task, now time.Time) DueInfo {
	return DueInfo{
		Label:   c.Label(t.DueDate, now),
		Bucket:  c.bucket(t.DueDate, now),
		Overdue: !t.Completed && IsOverdue(t.DueDate, now),
	}
}

func (c Classifier) bucket(due, now time.Time) Bucket {
	d := midnight(due, now.Location())
	today := midnight(now, now.Location())
	switch {
	case d.Equal(today):
		return BucketToday
	case d.Equal(today.AddDate(0, 0, 1)):
		return BucketTomorrow
	case d.Before(today):
		return BucketOverdue
	}
	return BucketLater
}

// ClassifyDueDate labels due relative to now with the default date format.
func ClassifyDueDate(due, now time.Time) string {
	return Classifier{}.Label(due, now)
}

// IsOverdue reports whether the calendar day of due is before today.
// It ignores completion; callers hide the flag for completed tasks.
func IsOverdue(due, now time.Time) bool {
	loc := now.Location()
	return midnight(due, loc).Before(midnight(now, loc))
}

// IsDueToday reports whether due falls on the calendar day of now.
func IsDueToday(due, now time.Time) bool {
	loc := now.Location()
	return midnight(due, loc).Equal(midnight(now, loc))
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
