package editor

import (
	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/m-mizutani/goerr/v2"
)

var ErrInvalidDirection = goerr.New("invalid direction")

// Direction selects the neighbor an activity is swapped with.
type Direction string

const (
	DirectionEarlier Direction = "earlier"
	DirectionLater   Direction = "later"
)

// Validate checks if the direction is valid
func (d Direction) Validate() error {
	switch d {
	case DirectionEarlier, DirectionLater:
		return nil
	default:
		return ErrInvalidDirection
	}
}

// UseCase edits the store's current itinerary. Every edit replaces the day
// and its activity slice with fresh copies and commits the whole document
// back, so observers always see a consistent new value.
type UseCase struct {
	store *store.Store
}

// New creates a new editor UseCase instance
func New(s *store.Store) *UseCase {
	return &UseCase{store: s}
}

// Move swaps the activity at activityIndex with its neighbor in the given
// direction within the same day. A missing current document or an
// out-of-bounds neighbor is a silent no-op: the editor is a pairwise swap,
// not a general move.
func (u *UseCase) Move(dayIndex, activityIndex int, direction Direction) {
	current := u.store.Current()
	if current == nil {
		return
	}
	if dayIndex < 0 || dayIndex >= len(current.Days) {
		return
	}

	activities := current.Days[dayIndex].Activities
	if activityIndex < 0 || activityIndex >= len(activities) {
		return
	}

	neighbor := activityIndex - 1
	if direction == DirectionLater {
		neighbor = activityIndex + 1
	}
	if neighbor < 0 || neighbor >= len(activities) {
		return
	}

	updated := cloneActivities(activities)
	updated[activityIndex], updated[neighbor] = updated[neighbor], updated[activityIndex]

	u.commit(current, dayIndex, updated)
}

// Delete removes the activity at activityIndex from the day; later
// activities shift down by one. A missing current document or an
// out-of-bounds position is a silent no-op.
func (u *UseCase) Delete(dayIndex, activityIndex int) {
	current := u.store.Current()
	if current == nil {
		return
	}
	if dayIndex < 0 || dayIndex >= len(current.Days) {
		return
	}

	activities := current.Days[dayIndex].Activities
	if activityIndex < 0 || activityIndex >= len(activities) {
		return
	}

	updated := make([]model.Activity, 0, len(activities)-1)
	updated = append(updated, activities[:activityIndex]...)
	updated = append(updated, activities[activityIndex+1:]...)

	u.commit(current, dayIndex, updated)
}

func cloneActivities(activities []model.Activity) []model.Activity {
	out := make([]model.Activity, len(activities))
	copy(out, activities)
	return out
}

// commit rebuilds the document with the edited day and stores it as the
// new current itinerary.
func (u *UseCase) commit(current *model.Itinerary, dayIndex int, activities []model.Activity) {
	days := make([]model.DaySchedule, len(current.Days))
	copy(days, current.Days)

	day := days[dayIndex]
	day.Activities = activities
	days[dayIndex] = day

	updated := *current
	updated.Days = days
	u.store.SetCurrent(&updated)
}
