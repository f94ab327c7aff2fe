// Package rules holds the closed-form legality checks for Revolution. Every
// function is a pure predicate over card values; the game engine owns all
// state and wraps these results in its own error taxonomy.
package rules

import (
	"errors"

	"github.com/axelbellec/revolution/deck"
)

var (
	ErrNoCards      = errors.New("a play must contain at least one card")
	ErrMixedRanks   = errors.New("all cards in a play must share one rank")
	ErrWrongSize    = errors.New("play must match the size of the previous play")
	ErrRankTooLow   = errors.New("play must outrank the previous play")
	ErrNotInHand    = errors.New("exchange cards must come from the hand")
	ErrNotBestCards = errors.New("exchange must give up the best cards in the hand")
)

// ValidatePlay checks a play against the previous one. Twos have top power
// in every mode, so a play of Twos is always legal and skips the size and
// rank checks. Anything else must match the previous play's size exactly and
// strictly outrank it under the active order.
func ValidatePlay(cards, last []deck.Card, revolution bool) error {
	if len(cards) == 0 {
		return ErrNoCards
	}
	if !deck.AllSameRank(cards) {
		return ErrMixedRanks
	}
	if cards[0].Rank == deck.Two {
		return nil
	}
	if len(last) == 0 {
		return nil
	}
	if len(cards) != len(last) {
		return ErrWrongSize
	}
	if deck.CompareRank(cards[0].Rank, last[0].Rank, revolution) != deck.Greater {
		return ErrRankTooLow
	}
	return nil
}

// ClearsPile reports whether a play resets the discard pile: any play of
// Twos, or any four-card same-rank play.
func ClearsPile(cards []deck.Card) bool {
	if len(cards) == 0 || !deck.AllSameRank(cards) {
		return false
	}
	if cards[0].Rank == deck.Two {
		return true
	}
	return len(cards) == 4
}

// TriggersRevolution reports whether a play toggles the rank order: a
// four-card same-rank play whose rank is not Two.
func TriggersRevolution(cards []deck.Card) bool {
	return len(cards) == 4 && deck.AllSameRank(cards) && cards[0].Rank != deck.Two
}

// ExchangeQuality constrains which cards satisfy an exchange transfer.
type ExchangeQuality int

const (
	// QualityAny accepts any subset of the hand.
	QualityAny ExchangeQuality = iota
	// QualityBest accepts only the literal top-N cards of the sorted hand.
	QualityBest
)

var qualityNames = []string{"Any", "Best"}

func (q ExchangeQuality) String() string {
	return qualityNames[q]
}

// ValidateExchange checks an exchange transfer. The cards must come from the
// hand; QualityBest additionally requires them to be set-equal,
// card-for-card, to the top-N of the hand sorted under the active order. A
// rank-equivalent but different card is rejected.
func ValidateExchange(cards []deck.Card, quality ExchangeQuality, hand []deck.Card, revolution bool) error {
	if len(cards) == 0 {
		return ErrNoCards
	}
	if !deck.Contains(hand, cards) {
		return ErrNotInHand
	}
	if quality == QualityAny {
		return nil
	}
	best := deck.SortByRank(hand, revolution)[:len(cards)]
	if len(deck.Remove(cards, best)) != 0 {
		return ErrNotBestCards
	}
	return nil
}

// CanPass reports whether passing is legal: the player opening a new trick
// may never pass.
func CanPass(isLeadingTrick bool) bool {
	return !isLeadingTrick
}
