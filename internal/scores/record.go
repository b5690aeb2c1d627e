// Package scores keeps the best result per game and turns scores into stars.
//
// All records live in one JSON document stored under a single key, so
// reading one game's record means reading the whole document. Storage
// problems never reach the game loop: unreadable data is treated as "no
// record yet" and failed writes are logged and dropped.
package scores

import "fmt"

// Direction tells which way a score improves.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

func (d Direction) String() string {
	if d == LowerIsBetter {
		return "lower-is-better"
	}
	return "higher-is-better"
}

// MarshalText writes the direction as "higher" or "lower".
func (d Direction) MarshalText() ([]byte, error) {
	if d == LowerIsBetter {
		return []byte("lower"), nil
	}
	return []byte("higher"), nil
}

// UnmarshalText accepts "higher" or "lower".
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lower", "lower-is-better":
		*d = LowerIsBetter
	case "", "higher", "higher-is-better":
		*d = HigherIsBetter
	default:
		return fmt.Errorf("scores: unknown direction %q", text)
	}
	return nil
}

// Better reports whether a beats b in this direction.
func (d Direction) Better(a, b int) bool {
	if d == LowerIsBetter {
		return a < b
	}
	return a > b
}

// Record is the persisted best result of one game.
type Record struct {
	BestScore int `json:"bestScore"`
	BestStars int `json:"bestStars"`
}

// Empty reports whether no best score has been recorded. A stored zero counts
// as empty, so the first real result of a lower-is-better game always wins.
func (r Record) Empty() bool {
	return r.BestScore == 0
}

// Merge folds a new result into the record. The score replaces the best only
// when there is none yet or it is a strict improvement; stars only go up.
func (r Record) Merge(score, stars int, dir Direction) Record {
	next := r
	if r.Empty() || dir.Better(score, r.BestScore) {
		next.BestScore = score
	}
	next.BestStars = max(r.BestStars, stars)
	return next
}
