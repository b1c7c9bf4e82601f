package domain

import "time"

// LeadKind represents the website form a lead came from
type LeadKind string

const (
	LeadKindBooking LeadKind = "booking"
	LeadKindQuote   LeadKind = "quote"
	LeadKindContact LeadKind = "contact"
	LeadKindGuide   LeadKind = "guide"
)

// IsValid returns true if the kind is one of the known forms
func (k LeadKind) IsValid() bool {
	switch k {
	case LeadKindBooking, LeadKindQuote, LeadKindContact, LeadKindGuide:
		return true
	default:
		return false
	}
}

// RequiresTour returns true if the form must reference a tour
func (k LeadKind) RequiresTour() bool {
	return k == LeadKindBooking
}

// Lead represents a form submission from the website
type Lead struct {
	ID         int64
	Reference  string // public lead identifier (UUID)
	Kind       LeadKind
	Name       string
	Email      string
	Phone      *string
	TourID     *int64
	TravelDate *time.Time
	GroupSize  *int
	Message    *string
	CreatedAt  time.Time
}
