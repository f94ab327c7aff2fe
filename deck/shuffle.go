package deck

import (
	"crypto/rand"
	"math/big"
)

// Shuffler produces a permutation of a deck. Implementations must leave the
// input deck untouched.
type Shuffler interface {
	Shuffle(d Deck) Deck
}

// SeededShuffler is a deterministic shuffler: the same seed always yields
// the same permutation. It is not cryptographically secure; swap in
// CryptoShuffler where that matters.
type SeededShuffler struct {
	Seed int64
}

// NewSeededShuffler constructs a SeededShuffler.
func NewSeededShuffler(seed int64) SeededShuffler {
	return SeededShuffler{Seed: seed}
}

// Shuffle repeatedly draws the card at index lcg(seed+i) mod remaining from
// the cards not yet drawn, incrementing the seed each draw.
func (s SeededShuffler) Shuffle(d Deck) Deck {
	remaining := append(Deck{}, d...)
	out := make(Deck, 0, len(d))
	seed := s.Seed
	for len(remaining) > 0 {
		idx := int(lcg(uint64(seed)) % uint64(len(remaining)))
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		seed++
	}
	return out
}

// lcg is one step of the Knuth MMIX linear congruential generator.
func lcg(x uint64) uint64 {
	return x*6364136223846793005 + 1442695040888963407
}

// CryptoShuffler is a Fisher-Yates shuffle over crypto/rand, for deployments
// that need an unpredictable permutation behind the same interface.
type CryptoShuffler struct{}

func (CryptoShuffler) Shuffle(d Deck) Deck {
	out := append(Deck{}, d...)
	for i := len(out) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			// crypto/rand failing means the platform has no entropy source
			panic(err)
		}
		j := int(n.Int64())
		out[i], out[j] = out[j], out[i]
	}
	return out
}
