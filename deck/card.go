package deck

import "fmt"

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	return suitNames[s]
}

// Rank represents a rank in a deck of cards, declared in the normal game
// order: Three is the weakest card, Two the strongest.
type Rank int

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

var rankNames = []string{"Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace", "Two"}

func (r Rank) String() string {
	return rankNames[r]
}

// Card represents a playing card. Two cards are the same card only if both
// rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// RankValue returns the comparison value of a rank under the given order.
// The normal order runs Three (1) up to Two (13); the revolution order is
// the full inversion, Two (1) up to Three (13). The values are used only for
// comparison and are never stored.
func RankValue(r Rank, revolution bool) int {
	if revolution {
		return int(Two) - int(r) + 1
	}
	return int(r) + 1
}

// Ordering is the result of a three-way rank comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// CompareRank compares two ranks under the given order.
func CompareRank(a, b Rank, revolution bool) Ordering {
	av, bv := RankValue(a, revolution), RankValue(b, revolution)
	switch {
	case av < bv:
		return Less
	case av > bv:
		return Greater
	}
	return Equal
}
