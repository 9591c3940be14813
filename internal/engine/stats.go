package engine

import (
	"log/slog"
	"time"
)

// Stats - counters collected during one search.
type Stats struct {
	Depth   int
	Nodes   int
	Leaves  int
	Cutoffs int
	Elapsed time.Duration
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("depth", s.Depth),
		slog.Int("nodes", s.Nodes),
		slog.Int("leaves", s.Leaves),
		slog.Int("cutoffs", s.Cutoffs),
		slog.Duration("elapsed", s.Elapsed),
	)
}
