package store

import (
	"context"
	"sync"

	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/repository"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Store owns the canonical in-memory copies of the active search
// parameters, the current itinerary, and the saved list. The saved list is
// hydrated from the repository at construction and written back wholesale
// after every save or delete.
type Store struct {
	mu sync.Mutex

	repo         repository.Repository
	searchParams *model.SearchParams
	current      *model.Itinerary
	saved        []model.Itinerary
}

// New creates a Store hydrated from repo. An unreadable repository yields
// an empty saved list rather than a failure.
func New(ctx context.Context, repo repository.Repository) *Store {
	saved, err := repo.Load(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to load saved itineraries, starting empty", "err", err)
		saved = []model.Itinerary{}
	}

	return &Store{
		repo:  repo,
		saved: saved,
	}
}

// SetSearchParams replaces the active search parameters. Passing nil
// clears them.
func (s *Store) SetSearchParams(params *model.SearchParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchParams = params
}

func (s *Store) SearchParams() *model.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchParams
}

// SetCurrent replaces the active document. A non-nil value commits a
// freshly generated plan into view; nil clears it for a new cycle.
func (s *Store) SetCurrent(itinerary *model.Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = itinerary
}

func (s *Store) Current() *model.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Save inserts the itinerary at the front of the saved list unless an
// entry with the same ID already exists, then persists the list. Repeated
// saves of the same document are no-ops after the first.
func (s *Store) Save(ctx context.Context, itinerary model.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.saved {
		if existing.ID == itinerary.ID {
			return nil
		}
	}

	s.saved = append([]model.Itinerary{itinerary}, s.saved...)

	if err := s.repo.Save(ctx, s.saved); err != nil {
		return goerr.Wrap(err, "failed to persist saved itineraries", goerr.V("id", itinerary.ID))
	}
	return nil
}

// Delete removes the entry with the given ID, if present, and persists the
// list. An absent ID is a silent no-op.
func (s *Store) Delete(ctx context.Context, id model.ItineraryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]model.Itinerary, 0, len(s.saved))
	for _, existing := range s.saved {
		if existing.ID != id {
			updated = append(updated, existing)
		}
	}
	s.saved = updated

	if err := s.repo.Save(ctx, s.saved); err != nil {
		return goerr.Wrap(err, "failed to persist saved itineraries", goerr.V("id", id))
	}
	return nil
}

// Saved returns a copy of the saved list, newest first.
func (s *Store) Saved() []model.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Itinerary, len(s.saved))
	copy(out, s.saved)
	return out
}
