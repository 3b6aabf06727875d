package model

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidActivityType = goerr.New("invalid activity type")
)

type ItineraryID string

// NewItineraryID generates a new unique ItineraryID
func NewItineraryID() ItineraryID {
	return ItineraryID(uuid.New().String())
}

type ActivityType string

const (
	ActivityTypeActivity ActivityType = "activity"
	ActivityTypeMeal     ActivityType = "meal"
	ActivityTypeTransit  ActivityType = "transit"
	ActivityTypeRest     ActivityType = "rest"
)

// Validate checks if the activity type is valid
func (t ActivityType) Validate() error {
	switch t {
	case ActivityTypeActivity, ActivityTypeMeal, ActivityTypeTransit, ActivityTypeRest:
		return nil
	default:
		return ErrInvalidActivityType
	}
}

// Activity is one scheduled unit within a day. Fields are fixed once
// generated; edits replace the containing slice rather than mutating it.
type Activity struct {
	Time         string       `json:"time"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         ActivityType `json:"type"`
	Location     string       `json:"location,omitempty"`
	EcoTip       string       `json:"ecoTip,omitempty"`
	DurationHint string       `json:"durationHint,omitempty"`
}

// DaySchedule is the ordered plan for one numbered day of the trip.
// Activity order is chronological and is the only ordering the editor
// manipulates.
type DaySchedule struct {
	DayNumber  int        `json:"dayNumber"`
	Date       string     `json:"date,omitempty"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the generated trip document. ID is assigned exactly once at
// creation and CreatedAt (epoch milliseconds) marks the first successful
// generation, not later edits.
type Itinerary struct {
	ID             ItineraryID   `json:"id"`
	Destination    string        `json:"destination"`
	Title          string        `json:"title"`
	Summary        string        `json:"summary"`
	Days           []DaySchedule `json:"days"`
	LocalEtiquette []string      `json:"localEtiquette"`
	SeasonalEvents []string      `json:"seasonalEvents"`
	CreatedAt      int64         `json:"createdAt"`
}
