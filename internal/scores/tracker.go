package scores

import "github.com/charmbracelet/log"

// History receives every submitted round, alongside the best-record book.
type History interface {
	SaveScore(gameID string, score, stars int) (int64, error)
}

// Result describes one submitted round.
type Result struct {
	Score   int
	Stars   int
	Record  Record
	NewBest bool
}

// Tracker submits the final result of each round of one game exactly once.
type Tracker struct {
	book    *Book
	history History
	logger  *log.Logger
	gameID  string
	scale   StarScale
	armed   bool
}

// NewTracker returns an armed tracker for gameID.
func NewTracker(book *Book, gameID string, scale StarScale) *Tracker {
	return &Tracker{
		book:   book,
		logger: book.logger,
		gameID: gameID,
		scale:  scale,
		armed:  true,
	}
}

// WithHistory also records every round in h.
func (t *Tracker) WithHistory(h History) *Tracker {
	t.history = h
	return t
}

// Arm allows the next Submit. Call it whenever a new round starts.
func (t *Tracker) Arm() {
	t.armed = true
}

// Best returns the stored record for the tracked game.
func (t *Tracker) Best() Record {
	return t.book.Get(t.gameID)
}

// Scale returns the star scale the tracker rates with.
func (t *Tracker) Scale() StarScale {
	return t.scale
}

// Submit records a final score. Only the first call per round does
// anything, and scores of zero or less are never recorded; ok reports
// whether the round was recorded.
func (t *Tracker) Submit(score int) (res Result, ok bool) {
	if !t.armed {
		return Result{}, false
	}
	t.armed = false
	if score <= 0 {
		return Result{Score: score, Record: t.Best()}, false
	}

	stars := t.scale.Stars(score)
	before := t.book.Get(t.gameID)
	after := t.book.Submit(t.gameID, score, stars, t.scale.Direction)

	if t.history != nil {
		if _, err := t.history.SaveScore(t.gameID, score, stars); err != nil {
			t.logger.Warn("could not record round", "game", t.gameID, "error", err)
		}
	}
	return Result{
		Score:   score,
		Stars:   stars,
		Record:  after,
		NewBest: after.BestScore != before.BestScore || before.Empty(),
	}, true
}
