package planner

import (
	"time"

	"github.com/m-mizutani/ecotravel/pkg/adapter"
	"github.com/m-mizutani/goerr/v2"
)

// ErrGenerationFailed is returned for every upstream failure of a
// generation cycle. Its message is the only detail shown to the user;
// the cause is logged for operators.
var ErrGenerationFailed = goerr.New("failed to generate itinerary, please try again")

// UseCase produces itineraries through the generative collaborator. It is
// stateless between invocations.
type UseCase struct {
	gemini adapter.Gemini
	now    func() time.Time
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// New creates a new planner UseCase instance
func New(gemini adapter.Gemini, opts ...Option) *UseCase {
	uc := &UseCase{
		gemini: gemini,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// TripDuration returns the trip length in whole days, inclusive of both
// endpoints: equal dates count as one day.
func TripDuration(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days + 1
}
