package todo

import (
	"testing"
	"time"
)

func TestClassifyDueDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     string
		label   string
		overdue bool
	}{
		{"overdue", "2024-06-08T23:59:00Z", "6/8/2024", true},
		{"yesterday", "2024-06-09T00:00:00Z", "6/9/2024", true},
		{"today", "2024-06-10T23:59:00Z", "Today", false},
		{"today early", "2024-06-10T00:00:00Z", "Today", false},
		{"tomorrow", "2024-06-11T23:59:00Z", "Tomorrow", false},
		{"later", "2024-07-01T23:59:00Z", "7/1/2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := mustDate(t, tt.due)
			if got := ClassifyDueDate(due, now); got != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, got)
			}
			if got := IsOverdue(due, now); got != tt.overdue {
				t.Errorf("expected overdue=%v, got %v", tt.overdue, got)
			}
		})
	}
}

func TestClassifierUsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, tokyo)

	// 23:59 UTC on the 9th is 08:59 on the 10th in Tokyo.
	due := mustDate(t, "2024-06-09T23:59:00Z")
	if got := ClassifyDueDate(due, now); got != LabelToday {
		t.Errorf("expected Today in JST, got %q", got)
	}
	if IsOverdue(due, now) {
		t.Error("task due today in JST should not be overdue")
	}
	if !IsDueToday(due, now) {
		t.Error("expected IsDueToday in JST")
	}
}

func TestClassifierDateFormat(t *testing.T) {
	c := Classifier{DateFormat: "Jan 2"}
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	if got := c.Label(mustDate(t, "2024-06-20T23:59:00Z"), now); got != "Jun 20" {
		t.Errorf("expected Jun 20, got %q", got)
	}
}

func TestDescribeHidesOverdueWhenCompleted(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	task := Task{ID: 1, Title: "late", DueDate: mustDate(t, "2024-06-08T23:59:00Z"), Priority: PriorityLow}

	info := Classifier{}.Describe(task, now)
	if !info.Overdue || info.Bucket != BucketOverdue || info.Label != "6/8/2024" {
		t.Errorf("unexpected info for incomplete task: %+v", info)
	}

	task.Completed = true
	info = Classifier{}.Describe(task, now)
	if info.Overdue {
		t.Error("completed task should not be flagged overdue")
	}
	if info.Bucket != BucketOverdue {
		t.Errorf("bucket should not depend on completion, got %v", info.Bucket)
	}
}

func TestPriority(t *testing.T) {
	if PriorityHigh.Rank() != 3 || PriorityMedium.Rank() != 2 || PriorityLow.Rank() != 1 {
		t.Error("unexpected priority ranks")
	}
	if p, err := ParsePriority("low"); err != nil || p != PriorityLow {
		t.Errorf("ParsePriority(low) = %q, %v", p, err)
	}
	if PriorityLow.Next() != PriorityHigh || PriorityHigh.Prev() != PriorityLow {
		t.Error("priority cycle should wrap")
	}

	var p Priority
	if err := p.UnmarshalText([]byte("high")); err == nil {
		t.Error("wire priorities are uppercase only")
	}
	if err := p.UnmarshalText([]byte("HIGH")); err != nil || p != PriorityHigh {
		t.Errorf("UnmarshalText(HIGH) = %q, %v", p, err)
	}
}
