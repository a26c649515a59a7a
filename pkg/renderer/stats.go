package renderer

import "time"

// Stats contains statistics about a completed render
type Stats struct {
	TotalPixels   int           // number of pixels traced
	PrimaryHits   int           // primary rays that hit an object
	PrimaryMisses int           // primary rays that left the scene
	Workers       int           // worker goroutines used
	Elapsed       time.Duration // wall-clock render time
}

// merge folds per-worker counters into the totals
func (s *Stats) merge(other Stats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryHits += other.PrimaryHits
	s.PrimaryMisses += other.PrimaryMisses
}
