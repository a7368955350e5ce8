package utils

import "time"

const historyLen = 5

// Status summarises what the population is doing.
type Status string

const (
	StatusActive   Status = "Active"
	StatusStagnant Status = "Stagnant"
	StatusExtinct  Status = "Extinct"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	Population           int
	StartTime            time.Time

	lastUpdate time.Time
	history    []string // recent grid hashes for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a newly displayed generation.
func (s *Stats) Update(generation uint64, population int, hash string, now time.Time) {
	if !s.lastUpdate.IsZero() && generation > s.TotalGenerations {
		if d := now.Sub(s.lastUpdate); d > 0 {
			s.GenerationsPerSecond = float64(generation-s.TotalGenerations) / d.Seconds()
		}
	}
	s.lastUpdate = now
	s.TotalGenerations = generation
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.history = append(s.history, hash)
	if len(s.history) > historyLen {
		s.history = s.history[1:]
	}
}

// Reset forgets rates and history, e.g. after the grid was cleared.
func (s *Stats) Reset(now time.Time) {
	*s = Stats{StartTime: now}
}

// Status reports Extinct when nothing is alive, Stagnant when the latest
// grid repeats one of the few before it (still life or short oscillator),
// and Active otherwise.
func (s *Stats) Status() Status {
	if s.lastUpdate.IsZero() {
		return StatusActive
	}
	if s.Population == 0 {
		return StatusExtinct
	}
	if len(s.history) < 3 {
		return StatusActive
	}
	current := s.history[len(s.history)-1]
	for _, h := range s.history[:len(s.history)-1] {
		if h == current {
			return StatusStagnant
		}
	}
	return StatusActive
}

// Runtime returns the time since the stats were started.
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
