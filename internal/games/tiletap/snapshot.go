package tiletap

// Snapshot captures the game state for determinism testing and session logs.
type Snapshot struct {
	Tick      uint64
	Variant   string
	State     string // "idle", "running" or "over"
	Score     int
	Misses    int
	Remaining float64
	Paused    bool
	Missed    bool // Some tap of the latest frame was a miss
	MissEnded bool // The round ended on a miss
	Hidden    []Coord
	Visible   [][]bool
	MenuIndex int
	Cursor    Coord
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Variant: g.ID(),
		Cursor:  g.cursor,
		Missed:  g.missed,
	}
	if g.menu != nil {
		s.MenuIndex = g.menu.Index()
	}
	if g.round == nil {
		s.State = StateIdle.String()
		return s
	}

	s.State = g.round.State().String()
	s.Score = g.round.Score()
	s.Misses = g.round.Misses()
	s.Remaining = g.round.Remaining()
	s.Paused = g.round.Paused()
	s.MissEnded = g.round.EndedByMiss()
	s.Hidden = g.round.Hidden()
	s.Visible = g.round.Visibility()
	return s
}
