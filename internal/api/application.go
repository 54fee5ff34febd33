package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// EndpointApplications receives project applications.
const EndpointApplications = "/api/applications"

// Application limits.
const (
	MinFullNameLength   = 3
	MinMotivationLength = 50
	MinAvailability     = 5
	MaxAvailability     = 40
	DefaultAvailability = 10
)

// ExperienceLevel is the self-assessed experience of an applicant.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// ExperienceLevels lists the levels in selection order.
var ExperienceLevels = []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

// Label returns the level with its years of experience.
func (l ExperienceLevel) Label() string {
	switch l {
	case ExperienceBeginner:
		return "Beginner (0-1 years)"
	case ExperienceIntermediate:
		return "Intermediate (1-3 years)"
	case ExperienceAdvanced:
		return "Advanced (3+ years)"
	}
	return "Not selected"
}

// Application is a request to join a project.
type Application struct {
	ProjectID       int             `json:"projectId"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Skills          []string        `json:"skills"`
	Motivation      string          `json:"motivation"`
	Availability    int             `json:"availability"`
	TermsAgreed     bool            `json:"termsAgreed"`
}

// ApplicationError reports the first field of an application that failed
// validation.
type ApplicationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ApplicationError) Error() string {
	return fmt.Sprintf("invalid application %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ApplicationError {
	return &ApplicationError{Field: field, Reason: reason}
}

// Validate checks the fields in form order and returns an *ApplicationError
// for the first one that fails.
func (a Application) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(a.FullName)) < MinFullNameLength {
		return invalid("fullName", "Name must be at least 3 characters")
	}
	if !validEmail(a.Email) {
		return invalid("email", "Invalid email address")
	}
	switch a.ExperienceLevel {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
	default:
		return invalid("experienceLevel", "Please select your experience level")
	}
	if len(a.Skills) == 0 {
		return invalid("skills", "Select at least one skill")
	}
	if utf8.RuneCountInString(strings.TrimSpace(a.Motivation)) < MinMotivationLength {
		return invalid("motivation", "Please write at least 50 characters")
	}
	if a.Availability < MinAvailability {
		return invalid("availability", "Minimum 5 hours required")
	}
	if a.Availability > MaxAvailability {
		return invalid("availability", "Maximum 40 hours allowed")
	}
	if !a.TermsAgreed {
		return invalid("termsAgreed", "You must agree to the terms")
	}
	return nil
}

// validEmail accepts a bare address whose domain has a dot.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(strings.Trim(domain, "."), ".")
}

// SubmitApplication validates app and posts it. Invalid applications are
// never sent.
func (c *Client) SubmitApplication(ctx context.Context, app Application) error {
	if err := app.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to encode application: %w", err)
	}

	start := time.Now()
	if _, err := c.source.Post(ctx, EndpointApplications, body); err != nil {
		c.logger.Printf("POST %s failed after %v: %v", EndpointApplications, time.Since(start), err)
		return fmt.Errorf("failed to submit application: %w", err)
	}
	c.logger.Printf("POST %s ok (project %d, %v)", EndpointApplications, app.ProjectID, time.Since(start))
	return nil
}
