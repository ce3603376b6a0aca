package contact

import (
	"errors"
	"time"
)

// Status is where a lead is in follow-up.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusClosed    Status = "closed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusClosed:
		return true
	}
	return false
}

// ErrNotFound is returned when a submission id does not exist.
var ErrNotFound = errors.New("submission not found")

// Submission is one contact form post. Name, Phone, Email and Brand mirror
// the form fields with those ids; Fields holds every declared field.
type Submission struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Brand      string            `json:"brand"`
	Fields     map[string]string `json:"fields"`
	Status     Status            `json:"status"`
	SourcePage string            `json:"source_page"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ListFilter controls which submissions to return.
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}
