package deck

import (
	"fmt"
	"sort"
)

// Size is the number of cards in a full deck.
const Size = 52

// Deck represents a deck of cards
type Deck []Card

// New creates a full deck of 52 distinct cards.
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, Card{Rank: Rank(rank), Suit: Suit(suit)})
		}
	}
	return cards
}

// Validate checks that a deck holds exactly 52 unique cards.
func Validate(d Deck) error {
	if len(d) != Size {
		return fmt.Errorf("deck has %d cards, want %d", len(d), Size)
	}
	if !Unique(d) {
		return fmt.Errorf("deck contains duplicate cards")
	}
	return nil
}

// Deal splits a deck into n hands of floor(len/n) cards each, dealt one card
// at a time in seating order. Remainder cards are left out of play.
func Deal(d Deck, n int) [][]Card {
	if n <= 0 {
		return nil
	}
	handSize := len(d) / n
	hands := make([][]Card, n)
	for i := range hands {
		hands[i] = make([]Card, 0, handSize)
	}
	for i := 0; i < handSize*n; i++ {
		seat := i % n
		hands[seat] = append(hands[seat], d[i])
	}
	return hands
}

// SortByRank returns a copy of cards sorted descending by effective rank
// under the given order. Suit breaks ties so the result is deterministic.
func SortByRank(cards []Card, revolution bool) []Card {
	out := append([]Card{}, cards...)
	sort.Slice(out, func(i, j int) bool {
		vi, vj := RankValue(out[i].Rank, revolution), RankValue(out[j].Rank, revolution)
		if vi != vj {
			return vi > vj
		}
		return out[i].Suit > out[j].Suit
	})
	return out
}

// AllSameRank reports whether every card shares one rank.
func AllSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

// CountRank counts the cards of the given rank.
func CountRank(cards []Card, r Rank) int {
	n := 0
	for _, c := range cards {
		if c.Rank == r {
			n++
		}
	}
	return n
}

// Contains reports whether hand holds every card in cards, respecting
// multiplicity.
func Contains(hand, cards []Card) bool {
	remaining := append([]Card{}, hand...)
	for _, c := range cards {
		found := false
		for i := range remaining {
			if remaining[i] == c {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Remove returns a copy of hand with each card in cards removed once.
func Remove(hand, cards []Card) []Card {
	out := append([]Card{}, hand...)
	for _, c := range cards {
		for i := range out {
			if out[i] == c {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

// Unique reports whether no card appears twice.
func Unique(cards []Card) bool {
	seen := map[Card]struct{}{}
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}
