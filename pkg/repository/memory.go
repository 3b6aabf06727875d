package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/ecotravel/pkg/model"
)

// Memory is an in-memory Repository for tests and ephemeral sessions.
type Memory struct {
	mu          sync.Mutex
	itineraries []model.Itinerary
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]model.Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Itinerary, len(m.itineraries))
	copy(out, m.itineraries)
	return out, nil
}

func (m *Memory) Save(ctx context.Context, itineraries []model.Itinerary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.itineraries = make([]model.Itinerary, len(itineraries))
	copy(m.itineraries, itineraries)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
