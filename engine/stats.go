package engine

import "github.com/kamstrup/intmap"

// maxClearSize bounds the clear histogram: the tallest catalog piece spans four rows.
const maxClearSize = 4

// Stats accumulates lifetime counters for an Engine. They survive Reset.
type Stats struct {
	games   int
	locked  int
	holds   int
	spawned *intmap.Map[Kind, int]
	clears  *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[Kind, int](int(kindCount)),
		clears:  intmap.New[int, int](maxClearSize),
	}
}

func (s *Stats) recordSpawn(k Kind) {
	n, _ := s.spawned.Get(k)
	s.spawned.Put(k, n+1)
}

func (s *Stats) recordClear(lines int) {
	if lines <= 0 {
		return
	}
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Games  int
	Locked int
	Holds  int
	// Spawned counts pieces drawn from the catalog, indexed by Kind.
	Spawned [kindCount]int
	// Clears counts clear events by size; Clears[n] is how often n rows went at once.
	// Index 0 is unused.
	Clears [maxClearSize + 1]int
}

// TotalClears returns the number of clear events of any size.
func (s StatsSnapshot) TotalClears() int {
	total := 0
	for _, n := range s.Clears[1:] {
		total += n
	}
	return total
}

// TotalLines returns the number of rows removed over all games.
func (s StatsSnapshot) TotalLines() int {
	total := 0
	for size, n := range s.Clears {
		total += size * n
	}
	return total
}

func (s *Stats) snapshot() StatsSnapshot {
	out := StatsSnapshot{
		Games:  s.games,
		Locked: s.locked,
		Holds:  s.holds,
	}
	for _, k := range Kinds() {
		out.Spawned[k], _ = s.spawned.Get(k)
	}
	for size := 1; size <= maxClearSize; size++ {
		out.Clears[size], _ = s.clears.Get(size)
	}
	return out
}
