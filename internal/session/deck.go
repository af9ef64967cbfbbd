package session

import "github.com/abhisek/quizday/internal/questionbank"

// Deck is the flashcard state machine: no scoring and no timer, a flip
// flag per card and bidirectional navigation clamped at both ends.
type Deck struct {
	cards     []questionbank.Question
	index     int
	flipped   bool
	completed bool
	trackEnd  bool
}

// NewDeck creates a deck over cards. When trackCompletion is set, Next on
// the last card marks the deck completed instead of doing nothing.
func NewDeck(cards []questionbank.Question, trackCompletion bool) *Deck {
	return &Deck{cards: cards, trackEnd: trackCompletion}
}

// Current returns the card being shown. ok is false for an empty deck.
func (d *Deck) Current() (questionbank.Question, bool) {
	if len(d.cards) == 0 {
		return questionbank.Question{}, false
	}
	return d.cards[d.index], true
}

// Flip toggles between the question and answer side.
func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

// Next moves forward one card, showing its question side.
func (d *Deck) Next() {
	if d.index < len(d.cards)-1 {
		d.index++
		d.flipped = false
		return
	}
	if d.trackEnd && len(d.cards) > 0 {
		d.completed = true
	}
}

// Prev moves back one card, showing its question side.
func (d *Deck) Prev() {
	if d.index > 0 {
		d.index--
		d.flipped = false
	}
	d.completed = false
}

func (d *Deck) Flipped() bool   { return d.flipped }
func (d *Deck) Completed() bool { return d.completed }
func (d *Deck) Index() int      { return d.index }
func (d *Deck) Len() int        { return len(d.cards) }
