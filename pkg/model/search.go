package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidPace = goerr.New("invalid pace")
	ErrInvalidMood = goerr.New("invalid mood")
)

type Pace string

const (
	PaceRelaxed   Pace = "Relaxed"
	PaceModerate  Pace = "Moderate"
	PaceFastPaced Pace = "Fast-Paced"
)

// Validate checks if the pace is valid
func (p Pace) Validate() error {
	switch p {
	case PaceRelaxed, PaceModerate, PaceFastPaced:
		return nil
	default:
		return ErrInvalidPace
	}
}

type Mood string

const (
	MoodAdventure Mood = "Adventure"
	MoodCulture   Mood = "Culture & History"
	MoodCulinary  Mood = "Culinary"
	MoodNature    Mood = "Nature & Scenery"
	MoodFamily    Mood = "Family Friendly"
)

// Validate checks if the mood is valid
func (m Mood) Validate() error {
	switch m {
	case MoodAdventure, MoodCulture, MoodCulinary, MoodNature, MoodFamily:
		return nil
	default:
		return ErrInvalidMood
	}
}

// DateFormat is the wire format for trip dates.
const DateFormat = "2006-01-02"

// SearchParams is the ephemeral input to one generation cycle. It lives
// only until the request completes or is replaced.
type SearchParams struct {
	OriginCity  string `json:"originCity"`
	City        string `json:"city"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Pace        Pace   `json:"pace"`
	Mood        Mood   `json:"mood"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	PeopleCount int    `json:"peopleCount"`
	Describe    string `json:"describe,omitempty"`
}

// Validate checks that every mandatory field is present and well formed.
// Describe is the only optional field.
func (p *SearchParams) Validate() error {
	if p.OriginCity == "" {
		return goerr.New("originCity is required")
	}
	if p.City == "" {
		return goerr.New("city is required")
	}
	start, err := time.Parse(DateFormat, p.StartDate)
	if err != nil {
		return goerr.Wrap(err, "invalid startDate", goerr.V("startDate", p.StartDate))
	}
	end, err := time.Parse(DateFormat, p.EndDate)
	if err != nil {
		return goerr.Wrap(err, "invalid endDate", goerr.V("endDate", p.EndDate))
	}
	if end.Before(start) {
		return goerr.New("endDate is before startDate",
			goerr.V("startDate", p.StartDate), goerr.V("endDate", p.EndDate))
	}
	if err := p.Pace.Validate(); err != nil {
		return goerr.Wrap(err, "invalid pace", goerr.V("pace", p.Pace))
	}
	if err := p.Mood.Validate(); err != nil {
		return goerr.Wrap(err, "invalid mood", goerr.V("mood", p.Mood))
	}
	if p.StartTime == "" || p.EndTime == "" {
		return goerr.New("daily startTime and endTime are required")
	}
	if p.PeopleCount < 1 {
		return goerr.New("peopleCount must be positive", goerr.V("peopleCount", p.PeopleCount))
	}
	return nil
}
