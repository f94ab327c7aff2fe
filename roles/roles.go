// Package roles maps a round's finishing order onto the fixed hierarchy of
// positional tiers and describes the exchange relationships between them.
// Tiers are the only identity the rules ever see; display labels live in a
// separate lookup.
package roles

// Tier represents one of the five positional role tiers, declared from best
// finishing position to worst.
type Tier int

const (
	Top Tier = iota
	Second
	Middle
	Fourth
	Bottom
)

var tierNames = []string{"Top", "Second", "Middle", "Fourth", "Bottom"}

func (t Tier) String() string {
	return tierNames[t]
}

// Compare orders two tiers: -1 if a outranks b, 1 if b outranks a, 0 if
// equal.
func Compare(a, b Tier) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var assignments = map[int][]Tier{
	3: {Top, Middle, Bottom},
	4: {Top, Middle, Middle, Bottom},
	5: {Top, Second, Middle, Fourth, Bottom},
	6: {Top, Second, Middle, Middle, Fourth, Bottom},
}

// Assign returns the tier for each finishing position, first to last, for
// the given player count. Unsupported counts yield nil.
func Assign(playerCount int) []Tier {
	tiers, ok := assignments[playerCount]
	if !ok {
		return nil
	}
	return append([]Tier{}, tiers...)
}

// HasViceRoles reports whether the player count is large enough for the
// Second and Fourth tiers, which gates the card-exchange phase.
func HasViceRoles(playerCount int) bool {
	return playerCount >= 5
}

// ExchangePartner returns the tier a given tier exchanges cards with.
// Middle tiers exchange with nobody.
func ExchangePartner(t Tier) (Tier, bool) {
	switch t {
	case Top:
		return Bottom, true
	case Bottom:
		return Top, true
	case Second:
		return Fourth, true
	case Fourth:
		return Second, true
	}
	return Middle, false
}

// ExchangeCount returns how many cards a tier sends to its partner.
func ExchangeCount(t Tier) int {
	switch t {
	case Top, Bottom:
		return 2
	case Second, Fourth:
		return 1
	}
	return 0
}
