package components

import (
	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State cfg.MatchStateID

	Timer    float64 // seconds remaining
	Duration float64 // total match duration (seconds)

	StartingStocks     int
	KOPercentThreshold float64

	WinnerIndex int // PlayerIndex of winner (-1 if no winner yet)
}

var Match = donburi.NewComponentType[MatchData]()

// Finished reports whether the match has ended.
func (m *MatchData) Finished() bool {
	return m.State == cfg.MatchStateFinished
}
