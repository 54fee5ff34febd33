package api

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Course is an entry of the course catalogue.
type Course struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Instructor       string `json:"instructor"`
	ThumbnailURL     string `json:"thumbnailUrl"`
	Progress         int    `json:"progress"`
	TotalLessons     int    `json:"totalLessons"`
	CompletedLessons int    `json:"completedLessons"`
	Category         string `json:"category"`
	Level            string `json:"level"`
}

// Validate implements record.
func (c Course) Validate() error {
	if c.ID == "" {
		return errors.New("course id is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("course %s has no title", c.ID)
	}
	if c.Progress < 0 || c.Progress > 100 {
		return fmt.Errorf("course %s progress %d out of range", c.ID, c.Progress)
	}
	if c.CompletedLessons < 0 || c.CompletedLessons > c.TotalLessons {
		return fmt.Errorf("course %s has %d of %d lessons completed", c.ID, c.CompletedLessons, c.TotalLessons)
	}
	return nil
}

// Project is an entry of the project marketplace.
type Project struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Difficulty       string    `json:"difficulty"`
	EstimatedHours   int       `json:"estimatedHours"`
	ThumbnailURL     string    `json:"thumbnailUrl"`
	ShortDescription string    `json:"shortDescription"`
	Tags             []string  `json:"tags"`
	Collaborators    int       `json:"collaborators"`
	Applications     int       `json:"applications"`
	Deadline         time.Time `json:"deadline"`
}

// Validate implements record.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project %d has no title", p.ID)
	}
	if p.EstimatedHours < 0 {
		return fmt.Errorf("project %d has negative estimate", p.ID)
	}
	if p.Deadline.IsZero() {
		return fmt.Errorf("project %d has no deadline", p.ID)
	}
	return nil
}

// DaysRemaining counts calendar days from now until the deadline, both
// taken as dates in now's location. Past deadlines are negative.
func (p Project) DaysRemaining(now time.Time) int {
	d := p.Deadline.In(now.Location())
	deadline := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(deadline.Sub(today).Hours() / 24)
}

// Event is a calendar entry.
type Event struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Speaker      string    `json:"speaker"`
	Capacity     int       `json:"capacity"`
	Registered   int       `json:"registered"`
	ThumbnailURL string    `json:"thumbnailUrl"`
}

// Validate implements record.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event %d has no title", e.ID)
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("event %d has no start date", e.ID)
	}
	if !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("event %d ends before it starts", e.ID)
	}
	return nil
}

// SeatsLeft returns the remaining capacity, never negative.
func (e Event) SeatsLeft() int {
	return max(0, e.Capacity-e.Registered)
}

// Categories returns the distinct categories of items in first-seen order.
func Categories[T any](items []T, category func(T) string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		c := strings.ToLower(category(item))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
