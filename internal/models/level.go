// Package models contains the shared domain types for the FFT publication
// pipeline: hierarchy levels, aggregated entities, and suppression decisions.
package models

import "fmt"

// Level identifies one tier of the organisational hierarchy, most-aggregate
// first. Processing order is always ICB -> Trust -> Site -> Ward.
type Level int

const (
	LevelICB Level = iota
	LevelTrust
	LevelSite
	LevelWard
)

// Levels lists all hierarchy levels in processing order.
var Levels = []Level{LevelICB, LevelTrust, LevelSite, LevelWard}

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case LevelICB:
		return "icb"
	case LevelTrust:
		return "trust"
	case LevelSite:
		return "site"
	case LevelWard:
		return "ward"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Child returns the next level down and true, or false at the bottom.
func (l Level) Child() (Level, bool) {
	if l >= LevelWard {
		return 0, false
	}
	return l + 1, true
}

// ParseLevel converts a level name ("icb", "trust", "site", "ward") to a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
