package models

import "github.com/artie-labs/sampler/lib/numbers"

// NoChangeThreshold is the absolute percentage change at or below which a household is considered unaffected.
const NoChangeThreshold = 0.01

type Summary struct {
	RowsRead    int
	RowsWritten int
	// NullValues is keyed by the output key, e.g. `income`.
	NullValues map[string]int

	Gained   int
	Lost     int
	NoChange int
}

func NewSummary() Summary {
	return Summary{NullValues: make(map[string]int)}
}

// Observe records a sampled item, households without a percentage change are not bucketed.
func (s *Summary) Observe(item Item) {
	s.RowsWritten++
	if item.PctChange == nil {
		return
	}

	switch pctChange := *item.PctChange; {
	case pctChange > NoChangeThreshold:
		s.Gained++
	case pctChange < -NoChangeThreshold:
		s.Lost++
	default:
		s.NoChange++
	}
}

func (s *Summary) ObserveNull(key string) {
	if s.NullValues == nil {
		s.NullValues = make(map[string]int)
	}

	s.NullValues[key]++
}

func (s Summary) bucketed() int {
	return s.Gained + s.Lost + s.NoChange
}

func (s Summary) GainedPercentage() int {
	return numbers.Percentage(s.Gained, s.bucketed())
}

func (s Summary) LostPercentage() int {
	return numbers.Percentage(s.Lost, s.bucketed())
}

func (s Summary) NoChangePercentage() int {
	return numbers.Percentage(s.NoChange, s.bucketed())
}
