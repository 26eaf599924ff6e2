package collector

import (
	"context"
	"log/slog"
	"time"
)

// Periods holds the tick periods of the collector loops.
type Periods struct {
	Servers   time.Duration
	Posts     time.Duration
	Trains    time.Duration
	Vehicles  time.Duration
	Timetable time.Duration
}

// DefaultPeriods are the production tick rates.
func DefaultPeriods() Periods {
	return Periods{
		Servers:   30 * time.Second,
		Posts:     10 * time.Second,
		Trains:    4 * time.Second,
		Vehicles:  15 * time.Second,
		Timetable: 5 * time.Minute,
	}
}

func (p Periods) withDefaults() Periods {
	d := DefaultPeriods()
	if p.Servers <= 0 {
		p.Servers = d.Servers
	}
	if p.Posts <= 0 {
		p.Posts = d.Posts
	}
	if p.Trains <= 0 {
		p.Trains = d.Trains
	}
	if p.Vehicles <= 0 {
		p.Vehicles = d.Vehicles
	}
	if p.Timetable <= 0 {
		p.Timetable = d.Timetable
	}
	return p
}

// Manager owns the collector loops and their lifecycle.
type Manager struct {
	schedulers []*Scheduler
	ticks      []func()
}

// NewManager builds one scheduler per collector. Any collector may be nil
// and is then skipped, which the tests use to run loops in isolation.
func NewManager(p Periods, servers *ServerCollector, posts *PostCollector, trains *TrainCollector, vehicles *VehicleCollector, timetable *TimetableCollector, logger *slog.Logger) *Manager {
	p = p.withDefaults()
	m := &Manager{}
	if servers != nil {
		m.add(NewScheduler("servers", p.Servers, logger), servers.Tick)
	}
	if posts != nil {
		m.add(NewScheduler("dispatch-posts", p.Posts, logger), posts.Tick)
	}
	if trains != nil {
		m.add(NewScheduler("trains", p.Trains, logger), trains.Tick)
	}
	if vehicles != nil {
		m.add(NewScheduler("vehicles", p.Vehicles, logger), vehicles.Tick)
	}
	if timetable != nil {
		m.add(NewScheduler("timetable", p.Timetable, logger), timetable.Tick)
	}
	return m
}

func (m *Manager) add(s *Scheduler, tick func(ctx context.Context)) {
	m.schedulers = append(m.schedulers, s)
	m.ticks = append(m.ticks, func() { s.Start(tick) })
}

// Start launches every collector loop.
func (m *Manager) Start() {
	for _, start := range m.ticks {
		start()
	}
}

// Stop halts the loops and waits for in-flight ticks, newest first so the
// fast loops drain before the slow ones.
func (m *Manager) Stop() {
	for i := len(m.schedulers) - 1; i >= 0; i-- {
		m.schedulers[i].Stop()
	}
}
