package deck

import (
	"testing"

	utils "github.com/axelbellec/revolution/internal"
	"github.com/stretchr/testify/assert"
)

func TestCardString(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest card", Card{Rank: Three, Suit: Clubs}, "Three of Clubs"},
		{"Court card", Card{Rank: Queen, Suit: Hearts}, "Queen of Hearts"},
		{"Highest card", Card{Rank: Two, Suit: Spades}, "Two of Spades"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.card.String(), c.expected)
	}
}

func TestRankValue(t *testing.T) {
	t.Run("normal order runs Three to Two", func(t *testing.T) {
		utils.AssertEqual(t, RankValue(Three, false), 1)
		utils.AssertEqual(t, RankValue(Ace, false), 12)
		utils.AssertEqual(t, RankValue(Two, false), 13)
	})

	t.Run("revolution order is the full inversion", func(t *testing.T) {
		utils.AssertEqual(t, RankValue(Two, true), 1)
		utils.AssertEqual(t, RankValue(Ace, true), 2)
		utils.AssertEqual(t, RankValue(Three, true), 13)
	})
}

func TestCompareRank(t *testing.T) {
	t.Run("Three vs Two flips with the mode", func(t *testing.T) {
		assert.Equal(t, Less, CompareRank(Three, Two, false))
		assert.Equal(t, Greater, CompareRank(Three, Two, true))
	})

	t.Run("every rank equals itself in both modes", func(t *testing.T) {
		for r := Three; r <= Two; r++ {
			assert.Equal(t, Equal, CompareRank(r, r, false))
			assert.Equal(t, Equal, CompareRank(r, r, true))
		}
	})

	t.Run("middle ranks keep their relative order flipped", func(t *testing.T) {
		assert.Equal(t, Less, CompareRank(Seven, Jack, false))
		assert.Equal(t, Greater, CompareRank(Seven, Jack, true))
	})
}
