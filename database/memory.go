package database

import (
	"sync"

	"github.com/Austinjohnson7039/saffar/planner"
)

// Memory is the in-process store used for development and tests. It comes
// pre-seeded with the demo trip history.
type Memory struct {
	mu       sync.RWMutex
	plans    map[string]*Plan
	bookings map[string]*Booking
	trips    []Trip
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		plans:    make(map[string]*Plan),
		bookings: make(map[string]*Booking),
		trips:    seedTrips(),
	}
}

func (m *Memory) SavePlan(p *Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.plans[p.ID] = &cp
	return nil
}

func (m *Memory) GetPlan(id string) (*Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *Memory) UpdatePlanSelection(id string, sel planner.Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[id]
	if !ok {
		return ErrNotFound
	}
	p.Selection = sel
	return nil
}

func (m *Memory) SaveBooking(b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *Memory) GetBooking(id string) (*Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *Memory) SaveTrip(t *Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, *t)
	return nil
}

func (m *Memory) ListTrips(status, query string) ([]Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Trip, 0, len(m.trips))
	for _, t := range m.trips {
		if matchTrip(t, status, query) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Memory) Ping() error {
	return nil
}
